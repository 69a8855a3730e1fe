// Package spline provides B-spline curve fitting over strictly increasing
// sample coordinates, with evaluation and analytic differentiation.
//
// [Fit] builds the interpolating B-spline of a chosen degree (1 to 5)
// through the given points using a clamped knot vector with interior knots
// placed by the standard coordinate-averaging rule. The returned [Curve]
// supports:
//
//   - [Curve.Eval] / [Curve.EvalAll]: de Boor evaluation at arbitrary
//     query coordinates, clamped to the fitted domain
//   - [Curve.Derivative]: the exact derivative as another Curve of one
//     degree lower
//
// Typical use in this module is fitting integral-space control points and
// differentiating the fit back to signal space.
package spline
