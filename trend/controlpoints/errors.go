package controlpoints

import "errors"

var (
	ErrTooShort       = errors.New("controlpoints: sequence must have at least 2 samples")
	ErrLengthMismatch = errors.New("controlpoints: slice lengths must match the sample count")
	ErrBadCoordinates = errors.New("controlpoints: coordinates must be strictly increasing")
	ErrSplitDepth     = errors.New("controlpoints: split depth must be >= 1 and satisfy 2^depth+1 <= n")
	ErrNotSelected    = errors.New("controlpoints: at least 2 control points must be selected before extending ends")
)
