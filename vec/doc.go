/*
Package vec provides a growable, typed sequence with explicit capacity
management.

A Vec keeps its elements in a contiguous buffer. Capacity doubles whenever an
append or a batch insert would overflow it, and it is never shrunk
implicitly. Element order is significant: callers use the index as drawing
order (z-order) and as iteration order.

Declaring a sequence over a pointer type, e.g. Vec[*Particle], makes it hold
pointers which are copied in and out but never dereferenced. Whether the
pointees are owned by the sequence is up to the client: Clear and Destroy
accept a cleanup callback which receives every live element.

Removal follows a two-step protocol:

	n := v.Compact(isRemovable) // condense survivors to the front
	v.EraseRange(n, v.Len())    // drop the tail

A Vec is not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arcade.vec'
func tracer() tracing.Trace {
	return tracing.Select("arcade.vec")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
