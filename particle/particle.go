// Package particle implements a small CPU particle system rendered
// through the sr immediate-mode API.
//
// An Emitter spawns particles at a fixed rate, integrates velocity and
// gravity each Update, fades their color over their lifetime, and draws
// the live set as points or textured quads. Given the same seed and the
// same sequence of Update calls, an Emitter is fully deterministic.
package particle

import (
	"math/rand"

	"github.com/gogpu/sr"
)

// Particle is one live particle. Position and velocity are in world
// units, age and lifetime in seconds.
type Particle struct {
	Position sr.Vec3
	Velocity sr.Vec3
	Age      float64
	Lifetime float64
	Size     float64
}

// Config describes an emitter's behavior.
type Config struct {
	// Origin is the spawn point.
	Origin sr.Vec3

	// Rate is particles spawned per second.
	Rate float64

	// Lifetime is the base particle lifetime in seconds. Each particle
	// gets Lifetime +- LifetimeVar/2.
	Lifetime    float64
	LifetimeVar float64

	// Velocity is the base initial velocity. Each component is jittered
	// by +- Spread/2.
	Velocity sr.Vec3
	Spread   float64

	// Gravity is added to velocity every second.
	Gravity sr.Vec3

	// StartColor and EndColor are lerped over each particle's lifetime.
	StartColor sr.Color
	EndColor   sr.Color

	// Size is the particle size in world units. Zero draws points
	// instead of quads.
	Size float64

	// Max caps the number of live particles. Zero means 1024.
	Max int
}

// DefaultConfig returns a white upward fountain.
func DefaultConfig() Config {
	return Config{
		Rate:       60,
		Lifetime:   2,
		Velocity:   sr.V3(0, -40, 0),
		Spread:     20,
		Gravity:    sr.V3(0, 50, 0),
		StartColor: sr.White,
		EndColor:   sr.Color{R: 255, G: 255, B: 255, A: 0},
		Max:        1024,
	}
}

// Emitter spawns, integrates, and draws particles. It is not safe for
// concurrent use; drive it from the goroutine that owns the Context.
type Emitter struct {
	config Config
	rng    *rand.Rand

	particles []Particle

	// spawnDebt accumulates fractional spawns between updates.
	spawnDebt float64
}

// NewEmitter creates an emitter with the given config and seed. The seed
// fixes the spawn jitter, making runs reproducible.
func NewEmitter(config Config, seed int64) *Emitter {
	if config.Max <= 0 {
		config.Max = 1024
	}
	return &Emitter{
		config:    config,
		rng:       rand.New(rand.NewSource(seed)),
		particles: make([]Particle, 0, config.Max),
	}
}

// Len returns the number of live particles.
func (e *Emitter) Len() int { return len(e.particles) }

// Particles returns the live particles. The slice is owned by the
// emitter and valid until the next Update.
func (e *Emitter) Particles() []Particle { return e.particles }

// Update advances the simulation by dt seconds: ages and retires
// particles, integrates velocity and gravity, and spawns new particles
// per the configured rate. Non-positive dt is a no-op.
func (e *Emitter) Update(dt float64) {
	if dt <= 0 {
		return
	}

	// Integrate and retire in place.
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		p.Velocity = p.Velocity.Add(e.config.Gravity.Mul(dt))
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		alive = append(alive, p)
	}
	e.particles = alive

	// Spawn, carrying the fractional remainder to the next update.
	e.spawnDebt += e.config.Rate * dt
	for e.spawnDebt >= 1 {
		e.spawnDebt--
		if len(e.particles) >= e.config.Max {
			continue
		}
		e.particles = append(e.particles, e.spawn())
	}
}

// spawn creates one particle with jittered velocity and lifetime.
func (e *Emitter) spawn() Particle {
	c := e.config
	jitter := func(spread float64) float64 {
		return (e.rng.Float64() - 0.5) * spread
	}
	lifetime := c.Lifetime + jitter(c.LifetimeVar)
	if lifetime <= 0 {
		lifetime = c.Lifetime
	}
	return Particle{
		Position: c.Origin,
		Velocity: sr.V3(
			c.Velocity.X+jitter(c.Spread),
			c.Velocity.Y+jitter(c.Spread),
			c.Velocity.Z+jitter(c.Spread),
		),
		Lifetime: lifetime,
		Size:     c.Size,
	}
}

// colorAt returns the faded color for a particle.
func (e *Emitter) colorAt(p Particle) sr.Color {
	t := p.Age / p.Lifetime
	return e.config.StartColor.Lerp(e.config.EndColor, t)
}

// Draw renders all live particles through dc's immediate-mode API: quads
// when the config has a size, points otherwise.
func (e *Emitter) Draw(dc *sr.Context) {
	if len(e.particles) == 0 {
		return
	}

	if e.config.Size <= 0 {
		dc.Begin(sr.Points)
		for _, p := range e.particles {
			dc.SetColor(e.colorAt(p))
			dc.Vertex3(p.Position.X, p.Position.Y, p.Position.Z)
		}
		dc.End()
		return
	}

	dc.Begin(sr.Quads)
	for _, p := range e.particles {
		dc.SetColor(e.colorAt(p))
		h := p.Size / 2
		x, y, z := p.Position.X, p.Position.Y, p.Position.Z
		dc.TexCoord(0, 0)
		dc.Vertex3(x-h, y-h, z)
		dc.TexCoord(1, 0)
		dc.Vertex3(x+h, y-h, z)
		dc.TexCoord(1, 1)
		dc.Vertex3(x+h, y+h, z)
		dc.TexCoord(0, 1)
		dc.Vertex3(x-h, y+h, z)
	}
	dc.End()
}
