package controlpoints

// ExtendEnds appends one synthetic boundary control point per side by
// even reflection: the coordinate and integral values are mirrored
// through the outermost real point, while the sample value is copied from
// the second point in (not mirrored). The parallel arrays are replaced by
// fresh snapshots of length +2; the index set is left untouched.
//
// Requires at least 2 selected control points, so the degenerate all-flat
// extrema selection still extends cleanly.
func (s *Set) ExtendEnds() error {
	m := len(s.X)
	if m < 2 {
		return ErrNotSelected
	}

	x := make([]float64, m+2)
	y := make([]float64, m+2)
	g := make([]float64, m+2)

	copy(x[1:], s.X)
	copy(y[1:], s.Y)
	copy(g[1:], s.G)

	x[0] = 2*s.X[0] - s.X[1]
	y[0] = s.Y[1]
	g[0] = 2*s.G[0] - s.G[1]

	x[m+1] = 2*s.X[m-1] - s.X[m-2]
	y[m+1] = s.Y[m-2]
	g[m+1] = 2*s.G[m-1] - s.G[m-2]

	s.X, s.Y, s.G = x, y, g

	return nil
}
