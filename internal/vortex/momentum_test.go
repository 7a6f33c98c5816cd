package vortex

import "testing"

func TestMomentumClamp(t *testing.T) {
	var m Momentum
	for i := 0; i < 50; i++ {
		m.Nudge(1)
	}
	if m.Value() != momentumMax {
		t.Errorf("expected clamp at %v, got %v", momentumMax, m.Value())
	}
	for i := 0; i < 100; i++ {
		m.Nudge(-1)
	}
	if m.Value() != -momentumMax {
		t.Errorf("expected clamp at %v, got %v", -momentumMax, m.Value())
	}
}

func TestMomentumStepRounding(t *testing.T) {
	var m Momentum
	// Up, down, repeat: any drift would leave a residue that rounding must
	// scrub out.
	for i := 0; i < 1000; i++ {
		m.Nudge(1)
		m.Nudge(-1)
	}
	if m.Value() != 0 {
		t.Errorf("expected exactly 0 after balanced nudges, got %v", m.Value())
	}
	m.Nudge(1)
	m.Nudge(1)
	m.Nudge(-1)
	if m.Value() != 0.1 {
		t.Errorf("expected exactly 0.1, got %v", m.Value())
	}
}

func TestMomentumDecaysToExactZero(t *testing.T) {
	var m Momentum
	for i := 0; i < 5; i++ {
		m.Nudge(1)
	}
	for i := 0; i < 400; i++ {
		m.Decay()
		if m.Value() == 0 {
			return
		}
	}
	t.Errorf("momentum did not reach exactly 0 within 400 idle frames, at %v", m.Value())
}

func TestMomentumNoOpNudge(t *testing.T) {
	var m Momentum
	m.Nudge(0)
	if m.Value() != 0 {
		t.Errorf("sign 0 should not move momentum, got %v", m.Value())
	}
}
