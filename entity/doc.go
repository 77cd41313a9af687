/*
Package entity holds the game-object collections which are built on top of
package vec: bricks of a level, falling power-ups and a fixed pool of
particles.

Every collection keeps its objects by pointer in a vec.Vec and removes them
with the two-step compact-and-erase protocol, wrapped up in Sweep.

Collections are not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package entity

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arcade.entity'
func tracer() tracing.Trace {
	return tracing.Select("arcade.entity")
}
