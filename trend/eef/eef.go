package eef

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-trend/dsp/calculus"
	"github.com/cwbudde/algo-trend/trend/controlpoints"
)

// Result holds an extracted trend and the residual of the input against
// it. Both slices have the input length, and Trend[i]+Diff[i] == ys[i].
type Result struct {
	Trend []float64
	Diff  []float64
}

// Extrema extracts the trend by selecting control points at the extrema
// of the driving signal. Passing nil xs selects unit-step coordinates;
// otherwise xs must be strictly increasing and match ys in length.
//
// Valid driving signals are [DependValue], [DependFirstDeriv] (default)
// and [DependSecondDeriv].
func Extrema(xs, ys []float64, opts ...Option) (Result, error) {
	cfg := applyOptions(defaultExtremaConfig(), opts)

	if err := validateConfig(cfg, false); err != nil {
		return Result{}, err
	}

	set, err := newSet(xs, ys)
	if err != nil {
		return Result{}, err
	}

	hs := drivingSignal(set, cfg.dependOn)
	if _, err := set.SelectExtrema(hs); err != nil {
		return Result{}, err
	}

	return finish(set, cfg)
}

// Partition extracts the trend by recursive weighted bi-partition of the
// domain into 2^levels sub-ranges. Passing nil xs selects unit-step
// coordinates; otherwise xs must be strictly increasing and match ys in
// length. levels must be >= 1 with 2^levels+1 <= len(ys).
//
// Valid driving signals are [DependAbsValue], [DependAbsFirstDeriv]
// (default) and [DependAbsSecondDeriv].
func Partition(xs, ys []float64, levels int, opts ...Option) (Result, error) {
	cfg := applyOptions(defaultPartitionConfig(), opts)

	if err := validateConfig(cfg, true); err != nil {
		return Result{}, err
	}

	set, err := newSet(xs, ys)
	if err != nil {
		return Result{}, err
	}

	hs := drivingSignal(set, cfg.dependOn)
	if _, err := set.SelectPartition(hs, levels); err != nil {
		return Result{}, err
	}

	return finish(set, cfg)
}

func validateConfig(cfg config, partition bool) error {
	if cfg.polyOrder < MinPolyOrder || cfg.polyOrder > MaxPolyOrder {
		return ErrPolyOrder
	}

	switch cfg.dependOn {
	case DependValue, DependFirstDeriv, DependSecondDeriv:
		if partition {
			return ErrDependOn
		}
	case DependAbsValue, DependAbsFirstDeriv, DependAbsSecondDeriv:
		if !partition {
			return ErrDependOn
		}
	default:
		return ErrDependOn
	}

	return nil
}

func newSet(xs, ys []float64) (*controlpoints.Set, error) {
	if xs == nil {
		return controlpoints.NewUnitStep(ys)
	}

	return controlpoints.New(xs, ys)
}

// drivingSignal derives the selection signal from the Set's own copies of
// the input. The partition selector takes absolute values itself, so the
// abs variants share the plain derivations here.
func drivingSignal(set *controlpoints.Set, d DependOn) []float64 {
	xs := set.Coordinates()
	ys := set.Values()

	switch d {
	case DependFirstDeriv, DependAbsFirstDeriv:
		return calculus.DerivXY(xs, ys)
	case DependSecondDeriv, DependAbsSecondDeriv:
		return calculus.Deriv2XY(xs, ys)
	default:
		return ys
	}
}

// finish runs the shared tail of both entry points: extend the boundary,
// fit the integral-space control points, differentiate back and subtract.
func finish(set *controlpoints.Set, cfg config) (Result, error) {
	if err := set.ExtendEnds(); err != nil {
		return Result{}, err
	}

	curve, err := cfg.fitter.Fit(set.X, set.G, cfg.polyOrder+1)
	if err != nil {
		return Result{}, fmt.Errorf("eef: fitting integral-space control points: %w", err)
	}

	deriv := curve.Derivative()

	xs := set.Coordinates()
	ys := set.Values()

	trend := make([]float64, len(ys))
	for i, x := range xs {
		trend[i] = deriv.Eval(x)
	}

	diff := make([]float64, len(ys))
	vecmath.ScaleBlock(diff, trend, -1)
	vecmath.AddBlockInPlace(diff, ys)

	return Result{Trend: trend, Diff: diff}, nil
}
