package vec

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid insert position or element index.
	ErrIndexOutOfBounds = errors.New("vec: index out of bounds")
	// ErrInvalidRange signals an invalid [start, end) range for erasure.
	ErrInvalidRange = errors.New("vec: invalid range")
)
