package board

import "errors"

var (
	// ErrOutOfRange reports a square outside [0,63] or a coordinate component
	// outside [0,7].
	ErrOutOfRange = errors.New("out of range")
)
