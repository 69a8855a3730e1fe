package spline

import "errors"

var (
	ErrDegree         = errors.New("spline: degree must be in [1,5]")
	ErrTooFewPoints   = errors.New("spline: need at least degree+1 points")
	ErrBadCoordinates = errors.New("spline: coordinates must be strictly increasing and match values in length")
	ErrSingular       = errors.New("spline: collocation system is singular")
)
