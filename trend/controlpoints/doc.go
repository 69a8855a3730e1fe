// Package controlpoints selects a small, shape-preserving set of sample
// indices from a one-dimensional sequence, for use as spline control
// points in integral space.
//
// A [Set] owns the input sequence, its coordinates and its cumulative
// integral, plus the evolving index selection and the parallel X/Y/G
// sample arrays. Two selection strategies populate it:
//
//   - [Set.SelectExtrema]: one representative index per monotonic run of
//     a driving signal, placed at the run midpoint on plateaus
//   - [Set.SelectPartition]: recursive weighted bi-partition of the
//     domain at centroids of the driving signal's absolute value
//
// [Set.ExtendEnds] then appends one synthetic boundary point per side by
// even reflection, so a downstream spline fit sees mirrored neighbors
// instead of extrapolating at the domain edges.
//
// The first and last sample index are always part of a selection. All
// validation happens before any mutation, so a failed call leaves the Set
// unchanged.
package controlpoints
