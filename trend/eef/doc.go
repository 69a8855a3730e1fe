// Package eef extracts a smooth trend curve, the equivalent effect
// function, from a noisy one-dimensional sequence.
//
// The engine picks a small set of control points from the data, either at
// the extrema of a driving signal ([Extrema]) or by recursive weighted
// bi-partition of the domain ([Partition]), carries them into integral
// space, fits a spline there and differentiates the fit back:
//
//	res, err := eef.Extrema(nil, ys)
//	// res.Trend is the smooth curve, res.Diff = ys - res.Trend
//
// The driving signal is chosen with [WithDependOn]: the raw values or
// their first or second derivative for Extrema, the absolute-value
// variants for Partition. Both entry points default to the
// first-derivative variant, which places control points at inflections of
// the input and keeps the fit robust to local noise. Passing nil
// coordinates selects unit-step mode.
//
// The spline capability is consumed through the [Fitter] interface;
// [WithFitter] swaps in a custom implementation, the default adapts
// dsp/spline. Spline degree is always polynomial order + 1.
//
// Calls are pure and deterministic: identical inputs produce identical
// results, and different series may be processed concurrently.
package eef
