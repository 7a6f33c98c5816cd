// Package vortex is the particle-tornado engine: a frame-driven simulation
// that represents each browser tab as a body orbiting inside a vortex until
// a clustering result arrives and the population settles onto a 2D grid.
//
// The moving parts:
//
//   - [Pool]: the authoritative particle arena, built once per session and
//     mutated in place every frame by [Engine.Step]
//   - [Momentum]: bounded, decaying scroll momentum modulating orbit speed
//     and radius in opposite directions
//   - [PhaseController]: the suction -> storm -> assemble machine with a
//     one-shot completion signal
//   - [Store]: tunable parameters in two speeds, a live copy read every
//     frame and a committed copy persisted with coalesced writes
//   - [Project]: pure per-particle mapping to screen transform, depth key,
//     opacity and culling
//
// # Frame contract
//
// One goroutine drives the engine: call [Engine.Step] once per display
// refresh, then read the pool through [Project]. Steady-state stepping
// allocates nothing. [Engine.Run] wraps this in a ticker loop for headless
// use:
//
//	e := vortex.New(items, store, vortex.Options{})
//	e.SetResult(res)
//	e.Run(ctx, 60, func(p *vortex.Pool) bool { return render(p) })
package vortex
