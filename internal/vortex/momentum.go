package vortex

import "math"

const (
	momentumStep  = 0.1
	momentumMax   = 0.5
	momentumDecay = 0.98
	momentumEps   = 1e-3
)

// Momentum is the bounded scalar driven by scroll input. Positive values
// speed rotation and tighten the orbit; negative values do the inverse.
// There is no event queue: rapid events just keep nudging the clamped value.
type Momentum struct {
	v float64
}

// Nudge shifts momentum by one step in the given direction. The value is
// re-rounded to the nearest step so repeated nudges cannot accumulate
// floating-point drift.
func (m *Momentum) Nudge(sign int) {
	if sign > 0 {
		m.v += momentumStep
	} else if sign < 0 {
		m.v -= momentumStep
	}
	m.v = math.Round(m.v*10) / 10
	if m.v > momentumMax {
		m.v = momentumMax
	}
	if m.v < -momentumMax {
		m.v = -momentumMax
	}
}

// Decay is applied once per physics tick. Near zero the value snaps to
// exactly zero so it cannot oscillate forever.
func (m *Momentum) Decay() {
	m.v *= momentumDecay
	if math.Abs(m.v) < momentumEps {
		m.v = 0
	}
}

func (m *Momentum) Value() float64 { return m.v }
