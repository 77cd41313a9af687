/*
Package omap provides an ordered map implemented as a red-black tree.

Keys are a closed variant over strings, integers and floats (see Key). A map
is homogeneous in its key kind: the first insertion fixes the kind, and keys
of a different kind are rejected rather than silently treated as equal.

Nodes live in an arena owned by the map. Arena slot 0 holds the sentinel, a
black pseudo-node which stands in for every leaf and for the parent of the
root. Rotation and fix-up code never has to test for missing links.

The map is built for accumulate-then-bulk-clear workloads such as resource
caches and glyph tables: there is insert-or-update and lookup, ordered
traversal in both directions, and clearing of the whole map. Single entries
cannot be removed.

	m := omap.New[int]()
	m.Put(omap.StringKey("b"), 1)
	m.Put(omap.StringKey("a"), 2)
	m.Walk(func(k omap.Key, v int) bool {
	    fmt.Println(k, v)   // a 2, then b 1
	    return true
	})

A Map is not safe for concurrent use; clients wrap it with their own
synchronization if they need to share it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package omap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arcade.omap'
func tracer() tracing.Trace {
	return tracing.Select("arcade.omap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
