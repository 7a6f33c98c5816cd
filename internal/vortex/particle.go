package vortex

import (
	"math"
	"math/rand"
)

// DefaultCap bounds the pool size; every particle costs full-population work
// each frame, so the engine is not designed for unbounded counts.
const DefaultCap = 250

const (
	jitterRange   = 40.0 // orbit radius perturbation, +/-
	launchDrop    = 400.0 // how far below the floor particles spawn
	minSpeedMul   = 0.7
	speedMulRange = 0.6
	minEntrySpeed = 0.02
	entrySpeedRng = 0.05
	maxRotSpeed   = 0.06 // per-axis tumble, radians per tick
)

type Vec2 struct{ X, Y float64 }

type Vec3 struct{ X, Y, Z float64 }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Item is the engine's view of one visualized thing. The payload fields are
// copied at init and immutable thereafter.
type Item struct {
	ID     string
	Title  string
	URL    string
	Domain string
}

// Particle is one simulated body. The orbit fields describe the ideal
// trajectory; Pos is the actual rendered position, which equals the orbit
// outside the entry phase.
type Particle struct {
	Item

	Angle    float64 // orbit angle, radians
	Height   float64 // vertical position along the column
	Jitter   float64 // radius perturbation, re-rolled on every wrap
	SpeedMul float64 // per-particle orbit speed multiplier

	Pos Vec3

	Rot      Vec3 // tumble angles
	RotSpeed Vec3

	Entry      float64 // arrival progress, 0..1
	EntrySpeed float64

	// Landing slot, resolved once on the first assemble tick and stable for
	// the rest of the session.
	HasTarget bool
	Target    Vec2
}

// Pool owns all particle state. It is mutated only by the physics step; the
// projector reads it strictly after each update pass within the same frame.
type Pool struct {
	Particles []Particle
	rng       *rand.Rand
}

// NewPool builds one particle per item, truncating at capLimit. Particles
// spawn at an off-screen launch point below the column so entry easing can
// animate arrival, with orbit angle, radius jitter and height independently
// randomized so the population enters staggered.
func NewPool(items []Item, capLimit int, p Params, rng *rand.Rand) *Pool {
	if capLimit <= 0 {
		capLimit = DefaultCap
	}
	if len(items) > capLimit {
		items = items[:capLimit]
	}
	floor := -p.ColumnHeight / 2
	ceiling := p.ColumnHeight / 2
	launch := launchPoint(p)

	pool := &Pool{Particles: make([]Particle, len(items)), rng: rng}
	for i, it := range items {
		pt := &pool.Particles[i]
		pt.Item = it
		pt.Angle = rng.Float64() * 2 * math.Pi
		pt.Height = floor + rng.Float64()*(ceiling-floor)
		pt.Jitter = rollJitter(rng)
		pt.SpeedMul = minSpeedMul + rng.Float64()*speedMulRange
		pt.Pos = launch
		pt.RotSpeed = Vec3{
			X: (rng.Float64()*2 - 1) * maxRotSpeed,
			Y: (rng.Float64()*2 - 1) * maxRotSpeed,
			Z: (rng.Float64()*2 - 1) * maxRotSpeed,
		}
		pt.EntrySpeed = minEntrySpeed + rng.Float64()*entrySpeedRng
	}
	return pool
}

func launchPoint(p Params) Vec3 {
	return Vec3{X: p.OffsetX, Y: -p.ColumnHeight/2 - launchDrop, Z: 0}
}

func rollJitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * jitterRange
}
