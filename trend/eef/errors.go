package eef

import "errors"

var (
	ErrPolyOrder = errors.New("eef: polynomial order must be in [0,4]")
	ErrDependOn  = errors.New("eef: driving-signal option not valid for this method")
)
