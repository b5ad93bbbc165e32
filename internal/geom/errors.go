package geom

import "errors"

var (
	// ErrOutOfRange is returned for an axis index other than 0 or 1.
	ErrOutOfRange = errors.New("index out of range")

	// ErrDegenerateInput is returned when a computation would divide by zero
	// because a motion or direction has no extent along the required axis.
	ErrDegenerateInput = errors.New("degenerate input")
)
