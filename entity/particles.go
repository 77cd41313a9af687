package entity

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/npillmayer/arcade/vec"
)

// DefaultParticleAmount is the pool size used if PoolConfig.Amount is 0.
const DefaultParticleAmount = 500

// PoolConfig configures a ParticlePool.
type PoolConfig struct {
	// Amount is the fixed number of particles in the pool.
	Amount int
	// Seed initializes the random jitter of respawned particles.
	Seed uint64
}

func (cfg PoolConfig) normalized() PoolConfig {
	if cfg.Amount == 0 {
		cfg.Amount = DefaultParticleAmount
	}
	return cfg
}

func (cfg PoolConfig) validate() error {
	cfg = cfg.normalized()
	if cfg.Amount < 0 {
		return fmt.Errorf("%w: particle amount %d", ErrInvalidConfig, cfg.Amount)
	}
	return nil
}

// Particle is a short-lived sprite trailing the ball. A particle with
// Life <= 0 is unused.
type Particle struct {
	Position Vec2
	Velocity Vec2
	Color    Color
	Life     float32
}

// Alive reports whether the particle is in use.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// ParticlePool is a fixed set of particles which are recycled instead of
// being allocated and freed.
type ParticlePool struct {
	particles *vec.Vec[*Particle]
	lastUsed  int
	rnd       *rand.Rand
}

// NewParticlePool creates a pool with all particles allocated and unused.
func NewParticlePool(conf PoolConfig) (*ParticlePool, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}
	conf = conf.normalized()
	pool := &ParticlePool{
		particles: vec.New[*Particle](256),
		rnd:       rand.New(rand.NewPCG(conf.Seed, conf.Seed^0x9e3779b97f4a7c15)),
	}
	for i := 0; i < conf.Amount; i++ {
		pool.particles.Append(&Particle{Color: Color{1, 1, 1, 1}})
	}
	return pool, nil
}

// Len returns the pool size.
func (pool *ParticlePool) Len() int {
	return pool.particles.Len()
}

// At returns particle i, or nil if i is out of range.
func (pool *ParticlePool) At(i int) *Particle {
	p, err := pool.particles.At(i)
	if err != nil {
		return nil
	}
	return p
}

// FirstUnused returns the index of an unused particle. The search starts at
// the particle used last and wraps around. If every particle is alive, the
// first one is sacrificed and 0 is returned.
func (pool *ParticlePool) FirstUnused() int {
	ps := pool.particles.Slice()
	for i := pool.lastUsed; i < len(ps); i++ {
		if !ps[i].Alive() {
			pool.lastUsed = i
			return i
		}
	}
	for i := 0; i < pool.lastUsed && i < len(ps); i++ {
		if !ps[i].Alive() {
			pool.lastUsed = i
			return i
		}
	}
	pool.lastUsed = 0
	return 0
}

// Respawn brings n particles to life at origin+offset, with a little random
// jitter, moving at a tenth of velocity.
func (pool *ParticlePool) Respawn(n int, origin, velocity, offset Vec2) {
	if pool.Len() == 0 {
		return
	}
	for i := 0; i < n; i++ {
		p := pool.At(pool.FirstUnused())
		jitter := float32(pool.rnd.IntN(100)-50) / 10
		shade := 0.5 + float32(pool.rnd.IntN(100))/100
		p.Position = origin.Add(Vec2{offset.X + jitter, offset.Y + jitter})
		p.Color = Color{shade, shade, shade, 1}
		p.Life = 1
		p.Velocity = velocity.Scale(0.1)
	}
}

// Update decays every particle by dt seconds. Living particles drift
// against their velocity and fade out.
func (pool *ParticlePool) Update(dt float32) {
	for p := range pool.particles.Values() {
		p.Life -= dt
		if p.Alive() {
			p.Position = p.Position.Add(p.Velocity.Scale(-dt))
			p.Color.A -= dt * 2.5
		}
	}
}

// Live iterates over the particles currently alive, in pool order.
func (pool *ParticlePool) Live() iter.Seq[*Particle] {
	return func(yield func(*Particle) bool) {
		for p := range pool.particles.Values() {
			if p.Alive() && !yield(p) {
				return
			}
		}
	}
}

// Close hands every particle to cleanup (if non-nil) and empties the pool.
func (pool *ParticlePool) Close(cleanup func(*Particle)) {
	pool.particles.Destroy(cleanup)
	pool.lastUsed = 0
}
