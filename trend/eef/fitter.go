package eef

import "github.com/cwbudde/algo-trend/dsp/spline"

// Curve is a fitted curve that can be evaluated and differentiated.
type Curve interface {
	// Eval evaluates the curve at x.
	Eval(x float64) float64
	// Derivative returns the first derivative as another Curve.
	Derivative() Curve
}

// Fitter fits a curve of the given spline degree through the points
// (xs[i], ys[i]). Degree is in [1,5]; xs is strictly increasing.
type Fitter interface {
	Fit(xs, ys []float64, degree int) (Curve, error)
}

// SplineFitter is the default [Fitter], backed by dsp/spline B-spline
// interpolation.
type SplineFitter struct{}

// Fit implements [Fitter].
func (SplineFitter) Fit(xs, ys []float64, degree int) (Curve, error) {
	c, err := spline.Fit(xs, ys, degree)
	if err != nil {
		return nil, err
	}

	return splineCurve{c}, nil
}

type splineCurve struct {
	c *spline.Curve
}

func (s splineCurve) Eval(x float64) float64 { return s.c.Eval(x) }

func (s splineCurve) Derivative() Curve { return splineCurve{s.c.Derivative()} }
