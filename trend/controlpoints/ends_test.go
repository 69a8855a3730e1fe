package controlpoints

import (
	"testing"

	"github.com/cwbudde/algo-trend/internal/testutil"
)

func TestExtendEnds_EvenReflection(t *testing.T) {
	ys := []float64{1, 2, 3, 2, 1}

	s, err := NewUnitStep(ys)
	if err != nil {
		t.Fatalf("NewUnitStep() error = %v", err)
	}

	if _, err := s.SelectExtrema(ys); err != nil {
		t.Fatalf("SelectExtrema() error = %v", err)
	}

	// Selection before extension: X=[0,2,4], Y=[1,3,1], G=[0,4,8].
	if err := s.ExtendEnds(); err != nil {
		t.Fatalf("ExtendEnds() error = %v", err)
	}

	if s.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", s.Count())
	}

	// Coordinates and integral values are mirrored; sample values are
	// copied from the second point in on each side.
	testutil.RequireSliceNearlyEqual(t, s.X, []float64{-2, 0, 2, 4, 6}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, s.Y, []float64{3, 1, 3, 1, 3}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, s.G, []float64{-4, 0, 4, 8, 12}, 1e-12)

	// The index set still describes only the real samples.
	testutil.RequireIntSliceEqual(t, s.Indices, []int{0, 2, 4})
}

func TestExtendEnds_PreservesInterior(t *testing.T) {
	ys := testutil.NoisySine(1, 0.05, 0.2, 4, 120)

	s, err := NewUnitStep(ys)
	if err != nil {
		t.Fatalf("NewUnitStep() error = %v", err)
	}

	if _, err := s.SelectPartition(ys, 4); err != nil {
		t.Fatalf("SelectPartition() error = %v", err)
	}

	before := s.Count()
	wantX := append([]float64(nil), s.X...)
	wantY := append([]float64(nil), s.Y...)
	wantG := append([]float64(nil), s.G...)

	if err := s.ExtendEnds(); err != nil {
		t.Fatalf("ExtendEnds() error = %v", err)
	}

	if s.Count() != before+2 {
		t.Fatalf("Count() = %d, want %d", s.Count(), before+2)
	}

	testutil.RequireSliceNearlyEqual(t, s.X[1:before+1], wantX, 0)
	testutil.RequireSliceNearlyEqual(t, s.Y[1:before+1], wantY, 0)
	testutil.RequireSliceNearlyEqual(t, s.G[1:before+1], wantG, 0)

	// Synthetic coordinates extend strictly beyond the real domain.
	if s.X[0] >= wantX[0] || s.X[before+1] <= wantX[before-1] {
		t.Fatalf("synthetic ends not outside domain: %v ... %v", s.X[0], s.X[before+1])
	}
}

func TestExtendEnds_DegenerateFlatSelection(t *testing.T) {
	// An all-flat driving signal leaves only the two endpoint control
	// points; extension must still work on them.
	s, err := NewUnitStep(testutil.Constant(2, 10))
	if err != nil {
		t.Fatalf("NewUnitStep() error = %v", err)
	}

	if _, err := s.SelectExtrema(testutil.Constant(0, 10)); err != nil {
		t.Fatalf("SelectExtrema() error = %v", err)
	}

	if err := s.ExtendEnds(); err != nil {
		t.Fatalf("ExtendEnds() error = %v", err)
	}

	if s.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", s.Count())
	}
}

func TestExtendEnds_RequiresSelection(t *testing.T) {
	s, err := NewUnitStep([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewUnitStep() error = %v", err)
	}

	if err := s.ExtendEnds(); err != ErrNotSelected {
		t.Fatalf("ExtendEnds() error = %v, want ErrNotSelected", err)
	}
}
