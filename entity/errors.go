package entity

import "errors"

var (
	// ErrInvalidConfig is returned for malformed pool configuration.
	ErrInvalidConfig = errors.New("entity: invalid config")
	// ErrNoSuchBrick is returned for a brick index outside the level.
	ErrNoSuchBrick = errors.New("entity: no such brick")
	// ErrMalformedLevel is returned when level data cannot be turned into bricks.
	ErrMalformedLevel = errors.New("entity: malformed level")
)
