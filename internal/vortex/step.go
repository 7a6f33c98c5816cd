package vortex

import "math"

const (
	baseRadius   = 200.0
	radiusSwell  = 600.0
	heightRate   = 150.0 // column descent per tick, times BaseSpeed*speedMod
	wobbleFreq   = 0.01
	assembleRate = 0.08 // fraction of remaining distance closed per frame
	rotDamping   = 0.90 // tumble settle-out during assembly
)

// Step advances the whole pool by one frame: momentum decay first, then a
// full update pass over the population. Projection happens strictly after,
// never interleaved.
func (e *Engine) Step() {
	e.phase.Advance()
	e.momentum.Decay()

	m := e.momentum.Value()
	speedMod := 1 + m
	zoomMod := 1 - m
	e.speedMod = speedMod

	p := *e.store.Live()
	phase := e.phase.Phase()

	for i := range e.pool.Particles {
		pt := &e.pool.Particles[i]
		if phase == PhaseAssemble {
			e.stepAssemble(pt, p)
		} else {
			e.stepOrbit(pt, p, speedMod, zoomMod)
		}
	}
}

// stepOrbit is the suction/storm update: orbit advance, entry easing,
// vertical recycling and tumble.
func (e *Engine) stepOrbit(pt *Particle, p Params, speedMod, zoomMod float64) {
	floor := -p.ColumnHeight / 2
	ceiling := p.ColumnHeight / 2

	pt.Angle += p.BaseSpeed * pt.SpeedMul * speedMod

	// Radius profile over the column: heightFactor runs 0 at the floor to 2
	// at the ceiling, giving the funnel its waist.
	hf := 0.0
	if p.ColumnHeight > 0 {
		hf = (pt.Height - floor) / p.ColumnHeight * 2
	}
	shape := 1 - math.Abs(1-hf)
	radius := (baseRadius+radiusSwell*shape*shape)*zoomMod*p.RadiusScale + pt.Jitter

	ideal := Vec3{
		X: p.OffsetX + math.Cos(pt.Angle)*radius,
		Y: pt.Height,
		Z: math.Sin(pt.Angle)*radius + math.Sin(pt.Height*wobbleFreq+pt.Angle)*p.Wobble,
	}

	if pt.Entry < 1 {
		pt.Entry += pt.EntrySpeed
		if pt.Entry >= 1 {
			pt.Entry = 1
		}
		t := easeOutCubic(pt.Entry)
		launch := launchPoint(p)
		pt.Pos = Vec3{
			X: launch.X + (ideal.X-launch.X)*t,
			Y: launch.Y + (ideal.Y-launch.Y)*t,
			Z: launch.Z + (ideal.Z-launch.Z)*t,
		}
	} else {
		// Outside entry the orbit is the literal rendered position.
		pt.Pos = ideal
	}

	pt.Height -= p.BaseSpeed * speedMod * heightRate
	if pt.Height < floor {
		pt.Height = ceiling
		pt.Jitter = rollJitter(e.pool.rng)
	}

	rotScale := speedMod
	if DefaultWobble > 0 {
		rotScale *= p.Wobble / DefaultWobble
	}
	pt.Rot = pt.Rot.Add(pt.RotSpeed.Scale(rotScale))
}

// stepAssemble interpolates toward the resolved landing slot; the approach
// is exponential and never quite lands, which is invisible after a few dozen
// frames.
func (e *Engine) stepAssemble(pt *Particle, p Params) {
	if !pt.HasTarget {
		e.resolveTarget(pt, p)
	}
	pt.Pos.X += (pt.Target.X - pt.Pos.X) * assembleRate
	pt.Pos.Y += (pt.Target.Y - pt.Pos.Y) * assembleRate
	pt.Pos.Z -= pt.Pos.Z * assembleRate
	pt.Rot = pt.Rot.Scale(rotDamping)
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
