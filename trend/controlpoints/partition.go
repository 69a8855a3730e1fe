package controlpoints

import "math"

// SelectPartition populates the Set by recursive weighted bi-partition of
// the domain, splitting levels times at weighted centroids of |hs|.
//
// Level 1 is the three-point skeleton {first, whole-range centroid,
// last}; every further level inserts the centroid index of each adjacent
// sub-range and drops duplicates, so level L yields at most 2^L+1
// points. A sub-range whose weight integrates to exactly zero splits at
// its arithmetic coordinate midpoint instead.
//
// levels must be >= 1 and satisfy 2^levels+1 <= n; validation happens
// before any mutation. Returns the resulting control-point count.
func (s *Set) SelectPartition(hs []float64, levels int) (int, error) {
	n := s.Len()
	if len(hs) != n {
		return 0, ErrLengthMismatch
	}

	if levels < 1 || levels > 62 || (1<<uint(levels))+1 > n {
		return 0, ErrSplitDepth
	}

	// Weight and first-moment prefix integrals over the coordinate base.
	w := make([]float64, n)
	wx := make([]float64, n)
	for i, h := range hs {
		w[i] = math.Abs(h)
		wx[i] = w[i] * s.xs[i]
	}

	ws := s.integrate(w)
	ms := s.integrate(wx)

	indices := collapse([]int{0, s.centroidIndex(ws, ms, 0, n-1), n - 1})

	for level := 2; level <= levels; level++ {
		doubled := make([]int, 0, 2*len(indices)-1)
		doubled = append(doubled, indices[0])

		for i := 1; i < len(indices); i++ {
			k1, k2 := indices[i-1], indices[i]
			doubled = append(doubled, s.centroidIndex(ws, ms, k1, k2), k2)
		}

		indices = collapse(doubled)
	}

	s.commit(indices)

	return s.Count(), nil
}

// collapse drops duplicate indices in place, keeping only entries
// strictly greater than their predecessor. A sub-range whose centroid
// search lands on its own left endpoint contributes no new index.
func collapse(indices []int) []int {
	out := indices[:1]
	for _, idx := range indices[1:] {
		if idx > out[len(out)-1] {
			out = append(out, idx)
		}
	}

	return out
}

// centroidIndex locates the weighted centroid of [k1, k2] and maps it to
// the sample index of the bracket containing it.
func (s *Set) centroidIndex(ws, ms []float64, k1, k2 int) int {
	var centroid float64

	weight := ws[k2] - ws[k1]
	if weight == 0 {
		centroid = 0.5 * (s.xs[k1] + s.xs[k2])
	} else {
		centroid = (ms[k2] - ms[k1]) / weight
	}

	// Round-off can push the quotient marginally outside the sub-range.
	if centroid < s.xs[k1] {
		centroid = s.xs[k1]
	} else if centroid > s.xs[k2] {
		centroid = s.xs[k2]
	}

	for i := k1; i < k2; i++ {
		if s.xs[i] <= centroid && centroid < s.xs[i+1] {
			return i
		}
	}

	// The centroid can only miss every bracket by coinciding with the
	// right coordinate exactly; that belongs to the last bracket.
	return k2 - 1
}
