package vortex

import "time"

// Phase is the visualization lifecycle stage.
type Phase int

const (
	PhaseSuction Phase = iota
	PhaseStorm
	PhaseAssemble
)

func (p Phase) String() string {
	switch p {
	case PhaseSuction:
		return "suction"
	case PhaseStorm:
		return "storm"
	case PhaseAssemble:
		return "assemble"
	}
	return "unknown"
}

const (
	// suction->storm, and storm->assemble measured from result arrival. The
	// latter exists so a result landing mid-swirl does not cut abruptly.
	transitionDelay = 2500 * time.Millisecond
	// assemble->completion signal.
	settleDelay = 3 * time.Second
)

// PhaseController drives the suction -> storm -> assemble machine. Assemble
// is terminal; the settled callback fires exactly once per session. It has
// no error states: if a clustering result never arrives the controller stays
// in storm forever, which is the host's problem to abort.
type PhaseController struct {
	now       func() time.Time
	onSettled func()

	phase      Phase
	startedAt  time.Time
	resultAt   time.Time
	hasResult  bool
	assembleAt time.Time
	settled    bool
}

// NewPhaseController wires an injectable clock (nil means time.Now) and an
// optional completion callback.
func NewPhaseController(now func() time.Time, onSettled func()) *PhaseController {
	if now == nil {
		now = time.Now
	}
	return &PhaseController{now: now, onSettled: onSettled, phase: PhaseSuction}
}

// Start marks session start. Always enters suction.
func (c *PhaseController) Start() {
	c.startedAt = c.now()
	c.phase = PhaseSuction
}

// ResultArrived records clustering-result availability. Only the first call
// counts.
func (c *PhaseController) ResultArrived() {
	if c.hasResult {
		return
	}
	c.hasResult = true
	c.resultAt = c.now()
}

// Advance evaluates at most one transition per tick.
func (c *PhaseController) Advance() {
	now := c.now()
	switch c.phase {
	case PhaseSuction:
		if now.Sub(c.startedAt) >= transitionDelay {
			c.phase = PhaseStorm
		}
	case PhaseStorm:
		if c.hasResult && now.Sub(c.resultAt) >= transitionDelay {
			c.phase = PhaseAssemble
			c.assembleAt = now
		}
	case PhaseAssemble:
		if !c.settled && now.Sub(c.assembleAt) >= settleDelay {
			c.settled = true
			if c.onSettled != nil {
				c.onSettled()
			}
		}
	}
}

func (c *PhaseController) Phase() Phase { return c.phase }

// Settled reports whether the completion signal has fired; the host may poll
// this instead of registering a callback.
func (c *PhaseController) Settled() bool { return c.settled }
