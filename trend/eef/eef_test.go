package eef

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-trend/dsp/spline"
	"github.com/cwbudde/algo-trend/internal/testutil"
	"github.com/cwbudde/algo-trend/trend/controlpoints"
)

func TestExtrema_Validation(t *testing.T) {
	ys := testutil.NoisySine(1, 0.01, 0.1, 3, 50)

	cases := []struct {
		name string
		xs   []float64
		ys   []float64
		opts []Option
		want error
	}{
		{"order too low", nil, ys, []Option{WithPolyOrder(-1)}, ErrPolyOrder},
		{"order too high", nil, ys, []Option{WithPolyOrder(5)}, ErrPolyOrder},
		{"abs option rejected", nil, ys, []Option{WithDependOn(DependAbsValue)}, ErrDependOn},
		{"unknown option", nil, ys, []Option{WithDependOn(DependOn(99))}, ErrDependOn},
		{"too short", nil, []float64{1}, nil, controlpoints.ErrTooShort},
		{"bad coordinates", []float64{3, 2, 1}, []float64{1, 2, 3}, nil, controlpoints.ErrBadCoordinates},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Extrema(tc.xs, tc.ys, tc.opts...); err != tc.want {
				t.Fatalf("Extrema() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestPartition_Validation(t *testing.T) {
	ys := testutil.NoisySine(1, 0.01, 0.1, 3, 50)

	if _, err := Partition(nil, ys, 2, WithDependOn(DependFirstDeriv)); err != ErrDependOn {
		t.Fatalf("plain option must be rejected, got %v", err)
	}

	if _, err := Partition(nil, ys, 0); err != controlpoints.ErrSplitDepth {
		t.Fatalf("Partition(levels=0) error = %v, want ErrSplitDepth", err)
	}

	if _, err := Partition(nil, ys, 9); err != controlpoints.ErrSplitDepth {
		t.Fatalf("Partition(levels too deep) error = %v, want ErrSplitDepth", err)
	}
}

func TestExtrema_ConstantSignal(t *testing.T) {
	// A constant input has an all-flat first derivative: selection
	// degenerates to the two endpoints and the trend is the constant
	// itself, leaving a zero residual.
	ys := testutil.Constant(2.5, 10)

	res, err := Extrema(nil, ys, WithPolyOrder(2))
	if err != nil {
		t.Fatalf("Extrema() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, res.Trend, ys, 1e-9)
	testutil.RequireSliceNearlyEqual(t, res.Diff, make([]float64, 10), 1e-9)
}

func TestExtrema_ConstantSignalTooFewPointsForOrder(t *testing.T) {
	// The degenerate flat selection leaves 4 control points after end
	// extension; the default order 3 needs a degree-4 fit through at
	// least 5, so the fitter error surfaces, wrapped.
	ys := testutil.Constant(1, 10)

	_, err := Extrema(nil, ys)
	if !errors.Is(err, spline.ErrTooFewPoints) {
		t.Fatalf("Extrema() error = %v, want wrapped spline.ErrTooFewPoints", err)
	}
}

func TestPartition_ConstantSignalZeroWeights(t *testing.T) {
	// |first derivative| of a constant is identically zero, forcing the
	// midpoint fallback in every sub-range; the trend must still come
	// out as the constant itself.
	ys := testutil.Constant(-1.25, 9)

	res, err := Partition(nil, ys, 2)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, res.Trend, ys, 1e-9)
	testutil.RequireSliceNearlyEqual(t, res.Diff, make([]float64, 9), 1e-9)
}

func TestExtrema_Deterministic(t *testing.T) {
	ys := testutil.NoisySine(1, 0.05, 0.3, 6, 240)

	first, err := Extrema(nil, ys)
	if err != nil {
		t.Fatalf("Extrema() error = %v", err)
	}

	second, err := Extrema(nil, ys)
	if err != nil {
		t.Fatalf("Extrema() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, first.Trend, second.Trend, 0)
	testutil.RequireSliceNearlyEqual(t, first.Diff, second.Diff, 0)
}

func TestExtrema_TrendPlusDiffReconstructs(t *testing.T) {
	ys := testutil.NoisySine(2, -0.03, 0.4, 8, 300)

	for _, d := range []DependOn{DependValue, DependFirstDeriv, DependSecondDeriv} {
		res, err := Extrema(nil, ys, WithDependOn(d))
		if err != nil {
			t.Fatalf("%v: Extrema() error = %v", d, err)
		}

		if len(res.Trend) != len(ys) || len(res.Diff) != len(ys) {
			t.Fatalf("%v: output lengths %d/%d, want %d", d, len(res.Trend), len(res.Diff), len(ys))
		}

		testutil.RequireFinite(t, res.Trend)

		sum := make([]float64, len(ys))
		for i := range sum {
			sum[i] = res.Trend[i] + res.Diff[i]
		}
		testutil.RequireSliceNearlyEqual(t, sum, ys, 1e-12)
	}
}

func TestPartition_AllDependOptions(t *testing.T) {
	ys := testutil.NoisySine(2, 0.02, 0.4, 8, 300)

	for _, d := range []DependOn{DependAbsValue, DependAbsFirstDeriv, DependAbsSecondDeriv} {
		res, err := Partition(nil, ys, 5, WithDependOn(d))
		if err != nil {
			t.Fatalf("%v: Partition() error = %v", d, err)
		}

		testutil.RequireFinite(t, res.Trend)

		sum := make([]float64, len(ys))
		for i := range sum {
			sum[i] = res.Trend[i] + res.Diff[i]
		}
		testutil.RequireSliceNearlyEqual(t, sum, ys, 1e-12)
	}
}

func TestExtrema_UnitStepMatchesExplicitCoordinates(t *testing.T) {
	ys := testutil.NoisySine(1, 0.01, 0.2, 4, 128)
	xs := testutil.UnitSteps(128)

	implicit, err := Extrema(nil, ys)
	if err != nil {
		t.Fatalf("Extrema(nil) error = %v", err)
	}

	explicit, err := Extrema(xs, ys)
	if err != nil {
		t.Fatalf("Extrema(xs) error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, implicit.Trend, explicit.Trend, 0)
	testutil.RequireSliceNearlyEqual(t, implicit.Diff, explicit.Diff, 0)
}

// zeroFitter satisfies Fitter with a curve whose derivative is zero
// everywhere, so the extracted trend must be all zeros.
type zeroFitter struct{}

type flatCurve struct{ value float64 }

func (f flatCurve) Eval(float64) float64 { return f.value }
func (f flatCurve) Derivative() Curve    { return flatCurve{} }

func (zeroFitter) Fit(xs, ys []float64, degree int) (Curve, error) {
	return flatCurve{value: ys[0]}, nil
}

func TestWithFitter_CustomBackend(t *testing.T) {
	ys := testutil.NoisySine(1, 0.01, 0.1, 3, 64)

	res, err := Extrema(nil, ys, WithFitter(zeroFitter{}))
	if err != nil {
		t.Fatalf("Extrema() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, res.Trend, make([]float64, 64), 0)
	testutil.RequireSliceNearlyEqual(t, res.Diff, ys, 0)
}

func BenchmarkExtrema(b *testing.B) {
	ys := testutil.NoisySine(1, 0.001, 0.2, 16, 4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Extrema(nil, ys); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPartition(b *testing.B) {
	ys := testutil.NoisySine(1, 0.001, 0.2, 16, 4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Partition(nil, ys, 7); err != nil {
			b.Fatal(err)
		}
	}
}
