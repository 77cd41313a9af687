package entity

import (
	"iter"
	"slices"

	"github.com/npillmayer/arcade/vec"
)

// Power-up kinds known to the game. Kinds are plain strings; collections
// accept any kind.
const (
	Speed           = "speed"
	Sticky          = "sticky"
	PassThrough     = "pass-through"
	PadSizeIncrease = "pad-size-increase"
	Confuse         = "confuse"
	Chaos           = "chaos"
)

// PowerUpSize is the extent of a falling power-up.
var PowerUpSize = Vec2{60, 20}

// PowerUpVelocity is the speed at which a spawned power-up falls.
var PowerUpVelocity = Vec2{0, 150}

// PowerUp is a collectable item falling down from a destroyed brick.
// Once collected it is destroyed but stays activated for Duration seconds.
type PowerUp struct {
	Kind      string
	Color     Color
	Position  Vec2
	Size      Vec2
	Velocity  Vec2
	Duration  float32 // seconds of effect left once activated
	Destroyed bool
	Activated bool
}

// PowerUps is the list of power-ups currently in play, in spawn order.
type PowerUps struct {
	list *vec.Vec[*PowerUp]
}

// NewPowerUps creates an empty power-up list.
func NewPowerUps() *PowerUps {
	return &PowerUps{list: vec.New[*PowerUp](128)}
}

// Len returns the number of power-ups in play, including activated ones.
func (pu *PowerUps) Len() int {
	return pu.list.Len()
}

// All iterates over the power-ups in spawn order.
func (pu *PowerUps) All() iter.Seq[*PowerUp] {
	return pu.list.Values()
}

// Spawn adds a new power-up of the given kind at position pos.
func (pu *PowerUps) Spawn(kind string, color Color, duration float32, pos Vec2) *PowerUp {
	p := &PowerUp{
		Kind:     kind,
		Color:    color,
		Position: pos,
		Size:     PowerUpSize,
		Velocity: PowerUpVelocity,
		Duration: duration,
	}
	pu.list.Append(p)
	tracer().Debugf("entity: spawned power-up %q at %v", kind, pos)
	return p
}

// Activate marks p as collected: it disappears from the screen and its
// effect starts.
func (pu *PowerUps) Activate(p *PowerUp) {
	p.Destroyed = true
	p.Activated = true
}

// IsActive reports whether any power-up of the given kind is activated.
func (pu *PowerUps) IsActive(kind string) bool {
	for p := range pu.list.Values() {
		if p.Activated && p.Kind == kind {
			return true
		}
	}
	return false
}

// Tick advances all power-ups by dt seconds: they move along their
// velocity, and activated ones count down their duration. A power-up whose
// duration runs out is deactivated. Tick returns the kinds whose effect
// ended, i.e. for which no other power-up of the same kind is still active.
func (pu *PowerUps) Tick(dt float32) []string {
	var expired []string
	for p := range pu.list.Values() {
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		if !p.Activated {
			continue
		}
		p.Duration -= dt
		if p.Duration <= 0 {
			p.Activated = false
			expired = append(expired, p.Kind)
		}
	}
	var ended []string
	for _, kind := range expired {
		if !pu.IsActive(kind) && !slices.Contains(ended, kind) {
			ended = append(ended, kind)
		}
	}
	return ended
}

// Sweep drops power-ups which are destroyed and no longer active. It
// returns the number of power-ups removed.
func (pu *PowerUps) Sweep() int {
	return Sweep(pu.list, func(p *PowerUp) bool {
		return p.Destroyed && !p.Activated
	})
}

// Clear removes all power-ups.
func (pu *PowerUps) Clear() {
	pu.list.Clear(nil)
}
