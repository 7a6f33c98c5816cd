package vortex

import (
	"context"
	"math/rand"
	"time"

	"tabnado/internal/cluster"
)

// Engine composes the pool, momentum, phase controller and parameter store
// into the per-frame simulation. It is single-threaded by contract: the
// frame scheduler calls Step, then reads the pool; nothing else touches
// particle state.
type Engine struct {
	store    *Store
	pool     *Pool
	momentum Momentum
	phase    *PhaseController
	rng      *rand.Rand

	index        *cluster.Index
	overflowRows int

	// effective speed modifier of the last step, consumed by the projector
	// for motion stretch
	speedMod float64
}

// Options tune engine construction. Zero values mean defaults.
type Options struct {
	Cap       int
	Seed      int64
	Now       func() time.Time
	OnSettled func()
}

// New builds the engine and its pool. The session starts in suction.
func New(items []Item, store *Store, opts Options) *Engine {
	if store == nil {
		store = NewStore("")
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	e := &Engine{
		store:    store,
		rng:      rng,
		phase:    NewPhaseController(opts.Now, opts.OnSettled),
		speedMod: 1,
	}
	e.pool = NewPool(items, opts.Cap, *store.Live(), rng)
	e.phase.Start()
	return e
}

// SetResult hands over the clustering result. The membership index is built
// once here; only the first non-nil result counts.
func (e *Engine) SetResult(res *cluster.Result) {
	if res == nil || e.index != nil {
		return
	}
	e.index = cluster.BuildIndex(res)
	e.phase.ResultArrived()
}

// Scroll feeds one discrete scroll/gesture event into the momentum
// integrator. sign is -1, 0 or +1.
func (e *Engine) Scroll(sign int) { e.momentum.Nudge(sign) }

func (e *Engine) Pool() *Pool           { return e.pool }
func (e *Engine) Store() *Store         { return e.store }
func (e *Engine) Phase() Phase          { return e.phase.Phase() }
func (e *Engine) Settled() bool         { return e.phase.Settled() }
func (e *Engine) Momentum() float64     { return e.momentum.Value() }
func (e *Engine) SpeedMod() float64     { return e.speedMod }
func (e *Engine) Index() *cluster.Index { return e.index }

// Run drives the engine headless at fps until ctx is canceled or onFrame
// returns false. The interactive path uses the TUI's own tick instead.
func (e *Engine) Run(ctx context.Context, fps int, onFrame func(*Pool) bool) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.Step()
			if onFrame != nil && !onFrame(e.pool) {
				return nil
			}
		}
	}
}
