package controlpoints

// SelectExtrema populates the Set with one control point per monotonic
// run of the driving signal hs, plus the mandatory first and last sample.
//
// Consecutive equal values are flat steps: they extend the current run
// without ending or starting one. When the direction reverses at sample
// i, the completed run is represented by the integer-floored midpoint
// between the run's first arrival index and i; a single-step run is
// therefore represented by its arrival index itself. Callers typically
// pass a first derivative as hs so that the selected points sit at
// inflections of the original signal.
//
// An all-flat driving signal degenerates to the two mandatory endpoint
// control points. Returns the resulting control-point count.
func (s *Set) SelectExtrema(hs []float64) (int, error) {
	n := s.Len()
	if len(hs) != n {
		return 0, ErrLengthMismatch
	}

	indices := make([]int, 0, n/2+2)
	indices = append(indices, 0)

	lastDir := 0
	runStart := 0

	for i := 1; i < n; i++ {
		dir := 0
		switch {
		case hs[i] > hs[i-1]:
			dir = 1
		case hs[i] < hs[i-1]:
			dir = -1
		}

		if dir == 0 {
			continue
		}

		if lastDir != 0 && dir != lastDir {
			// Reversal: the run that began at runStart ended here.
			indices = append(indices, (runStart+i)/2)
			runStart = i
		} else if lastDir == 0 {
			runStart = i
		}

		lastDir = dir
	}

	if last := indices[len(indices)-1]; last != n-1 {
		indices = append(indices, n-1)
	}

	s.commit(indices)

	return s.Count(), nil
}
