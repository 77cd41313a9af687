/*
Package resource manages named shaders and textures.

A Cache owns every resource loaded through it and keeps them in two ordered
maps keyed by name. Creating and deleting the underlying GPU objects is
delegated to a Backend, so the cache itself has no graphics dependency.

	cache, _ := resource.New(backend, resource.Config{})
	defer cache.Close()
	sprite, err := cache.LoadShaderFiles("sprite", "sprite.vs", "sprite.frag", "")
	...
	cache.Shader("sprite")

Clients may follow what happens inside a cache by subscribing to its event
stream. Every load and every release is published as an Event.

A Cache is not safe for concurrent use; event subscriptions are.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package resource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arcade.resource'
func tracer() tracing.Trace {
	return tracing.Select("arcade.resource")
}
