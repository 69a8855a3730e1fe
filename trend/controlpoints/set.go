package controlpoints

import "github.com/cwbudde/algo-trend/dsp/calculus"

// Set is the control-point aggregate: the input sequence, its coordinates
// and cumulative integral, and the current selection.
//
// A Set is built once per extraction call, mutated by exactly one
// selector and then by [Set.ExtendEnds], and read afterwards. It is not
// safe for concurrent mutation.
type Set struct {
	xs       []float64
	ys       []float64
	unitStep bool
	gs       []float64 // cumulative integral of ys, filled by selectors

	// Indices is the strictly increasing selection of sample indices.
	Indices []int

	// X, Y and G hold xs, ys and gs sampled at Indices. After
	// ExtendEnds they additionally carry one synthetic point per side
	// and are no longer index-backed.
	X, Y, G []float64
}

// New builds a Set over explicit, strictly increasing coordinates.
// Both slices are copied; the caller's data is never aliased.
func New(xs, ys []float64) (*Set, error) {
	if len(ys) < 2 {
		return nil, ErrTooShort
	}

	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrBadCoordinates
		}
	}

	s := &Set{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}

	return s, nil
}

// NewUnitStep builds a Set over implicit unit-step coordinates 0..n-1.
// ys is copied.
func NewUnitStep(ys []float64) (*Set, error) {
	if len(ys) < 2 {
		return nil, ErrTooShort
	}

	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}

	s := &Set{
		xs:       xs,
		ys:       append([]float64(nil), ys...),
		unitStep: true,
	}

	return s, nil
}

// Len returns the sample count of the underlying sequence.
func (s *Set) Len() int { return len(s.ys) }

// Count returns the current number of control points, including any
// synthetic boundary points.
func (s *Set) Count() int { return len(s.X) }

// Coordinates returns the coordinate sequence the Set was built over.
// The returned slice must not be modified.
func (s *Set) Coordinates() []float64 { return s.xs }

// Values returns the sample values the Set was built over.
// The returned slice must not be modified.
func (s *Set) Values() []float64 { return s.ys }

// integrate computes the cumulative integral of ys over the Set's
// coordinate base. Unit-step mode avoids the coordinate multiplies.
func (s *Set) integrate(ys []float64) []float64 {
	if s.unitStep {
		return calculus.Integral(ys)
	}

	return calculus.IntegralXY(s.xs, ys)
}

// commit stores indices as the selection and (re)samples the parallel
// arrays, recomputing the cumulative integral from scratch.
func (s *Set) commit(indices []int) {
	s.gs = s.integrate(s.ys)
	s.Indices = indices

	s.X = make([]float64, len(indices))
	s.Y = make([]float64, len(indices))
	s.G = make([]float64, len(indices))

	for i, idx := range indices {
		s.X[i] = s.xs[idx]
		s.Y[i] = s.ys[idx]
		s.G[i] = s.gs[idx]
	}
}
