package resource

import (
	"context"
	"fmt"
)

// EventKind tells what happened to a resource.
type EventKind int8

// Event kinds.
const (
	ShaderLoaded EventKind = iota
	TextureLoaded
	ShaderReleased
	TextureReleased
)

func (k EventKind) String() string {
	switch k {
	case ShaderLoaded:
		return "shader-loaded"
	case TextureLoaded:
		return "texture-loaded"
	case ShaderReleased:
		return "shader-released"
	case TextureReleased:
		return "texture-released"
	}
	return fmt.Sprintf("event(%d)", int8(k))
}

// Event is published for every load and release of a resource.
type Event struct {
	Kind EventKind
	Name string
	ID   uint32
}

func (e Event) String() string {
	return fmt.Sprintf("%s %q #%d", e.Kind, e.Name, e.ID)
}

// Subscribe returns a channel receiving the events of the cache, in the
// order they happen. The channel is closed when ctx is done or the cache is
// closed. Subscribers must drain their channel, otherwise publishing blocks.
func (c *Cache) Subscribe(ctx context.Context) (<-chan Event, error) {
	if c.closed {
		return nil, ErrClosed
	}
	sub, ok := c.cast.Sub(ctx, uint(c.conf.EventBuffer))
	if !ok {
		return nil, ErrClosed
	}
	events := make(chan Event, c.conf.EventBuffer)
	go func() {
		defer close(events)
		for msg := range sub {
			e, ok := msg.(Event)
			if !ok {
				continue
			}
			select {
			case events <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

func (c *Cache) publish(e Event) {
	tracer().Debugf("resource: %v", e)
	c.cast.Pub(e)
}
