package resource

import "errors"

var (
	// ErrInvalidConfig is returned for a malformed cache configuration.
	ErrInvalidConfig = errors.New("resource: invalid config")
	// ErrClosed is returned for loads on a closed cache.
	ErrClosed = errors.New("resource: cache closed")
	// ErrBackend wraps failures reported by the backend.
	ErrBackend = errors.New("resource: backend failure")
)
