package vortex

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPhaseSuctionToStorm(t *testing.T) {
	clk := newFakeClock()
	pc := NewPhaseController(clk.now, nil)
	pc.Start()

	clk.advance(transitionDelay - time.Millisecond)
	pc.Advance()
	if pc.Phase() != PhaseSuction {
		t.Fatalf("transitioned early: %v", pc.Phase())
	}

	clk.advance(time.Millisecond)
	pc.Advance()
	if pc.Phase() != PhaseStorm {
		t.Fatalf("expected storm, got %v", pc.Phase())
	}
}

func TestPhaseStormWaitsForResult(t *testing.T) {
	clk := newFakeClock()
	pc := NewPhaseController(clk.now, nil)
	pc.Start()

	// No result ever: storm forever, no timeout fallback.
	for i := 0; i < 100; i++ {
		clk.advance(time.Minute)
		pc.Advance()
	}
	if pc.Phase() != PhaseStorm {
		t.Fatalf("expected to stay in storm without a result, got %v", pc.Phase())
	}

	pc.ResultArrived()
	clk.advance(transitionDelay - time.Millisecond)
	pc.Advance()
	if pc.Phase() != PhaseStorm {
		t.Fatal("assemble entered before the result-arrival delay elapsed")
	}
	clk.advance(time.Millisecond)
	pc.Advance()
	if pc.Phase() != PhaseAssemble {
		t.Fatalf("expected assemble, got %v", pc.Phase())
	}
}

func TestPhaseCompletionFiresOnce(t *testing.T) {
	clk := newFakeClock()
	fired := 0
	pc := NewPhaseController(clk.now, func() { fired++ })
	pc.Start()
	pc.ResultArrived()

	clk.advance(transitionDelay)
	pc.Advance() // storm
	clk.advance(transitionDelay)
	pc.Advance() // assemble

	clk.advance(settleDelay - time.Millisecond)
	pc.Advance()
	if fired != 0 {
		t.Fatal("completion fired before the settle delay")
	}

	clk.advance(time.Millisecond)
	for i := 0; i < 10; i++ {
		pc.Advance()
		clk.advance(time.Second)
	}
	if fired != 1 {
		t.Fatalf("completion should fire exactly once, fired %d times", fired)
	}
	if !pc.Settled() {
		t.Fatal("Settled() should report true after the signal")
	}
}

func TestPhaseResultArrivedIdempotent(t *testing.T) {
	clk := newFakeClock()
	pc := NewPhaseController(clk.now, nil)
	pc.Start()
	clk.advance(transitionDelay)
	pc.Advance()

	pc.ResultArrived()
	first := pc.resultAt
	clk.advance(time.Hour)
	pc.ResultArrived()
	if pc.resultAt != first {
		t.Fatal("second ResultArrived call must not reset the arrival time")
	}
}
