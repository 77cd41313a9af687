package omap

import "errors"

var (
	// ErrKindMismatch signals a comparison or insertion mixing key kinds.
	ErrKindMismatch = errors.New("omap: key kind mismatch")
	// ErrInvalidKey signals a key which cannot take part in ordering
	// (NaN floats, strings with NUL bytes, unknown kinds).
	ErrInvalidKey = errors.New("omap: invalid key")
	// ErrDestroyed signals use of a map after Destroy.
	ErrDestroyed = errors.New("omap: map has been destroyed")
	// ErrInvariant signals a violated red-black tree invariant.
	ErrInvariant = errors.New("omap: invariant violated")
	// ErrSnapshot signals a malformed snapshot stream.
	ErrSnapshot = errors.New("omap: malformed snapshot")
)
