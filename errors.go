package mandel

import "errors"

// Error kinds surfaced by viewport and evaluator entry points. Call sites
// wrap them with the offending values; callers match with errors.Is.
var (
	// ErrInvalidArgument reports a precondition violation such as a
	// non-positive zoom factor, half width, resolution or iteration cap.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a pixel coordinate or tile outside the grid.
	ErrOutOfRange = errors.New("out of range")
)
