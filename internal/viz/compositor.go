package viz

import (
	"math"
	"sort"

	"tabnado/internal/vortex"
)

// World window mapped onto the canvas. Matches the simulation's coordinate
// scale: orbits reach ~840 horizontally at full swell.
const (
	worldHalfW = 900.0
	worldHalfH = 760.0
)

// Compositor draws a projected pool onto a canvas back-to-front. The scratch
// slice is reused across frames so steady-state compositing allocates
// nothing.
type Compositor struct {
	scratch []vortex.Projection
}

// Draw projects every particle and paints visible ones in depth order.
// It must run strictly after the frame's physics step; it only reads the
// pool.
func (cp *Compositor) Draw(c *Canvas, pool *vortex.Pool, speedMod float64) {
	if cap(cp.scratch) < len(pool.Particles) {
		cp.scratch = make([]vortex.Projection, 0, len(pool.Particles))
	}
	proj := cp.scratch[:0]
	for i := range pool.Particles {
		pr := vortex.Project(&pool.Particles[i], speedMod)
		if pr.Visible {
			proj = append(proj, pr)
		}
	}
	cp.scratch = proj

	// Painter's order: smaller depth keys are farther from the viewer.
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })

	subW := float64(c.Width * 2)
	subH := float64(c.Height * 4)
	for i := range proj {
		pr := &proj[i]
		sx := int((pr.X + worldHalfW) / (2 * worldHalfW) * subW)
		// Simulation y grows upward, screen y downward.
		sy := int((1 - (pr.Y+worldHalfH)/(2*worldHalfH)) * subH)
		lv := intensity(pr.Opacity)
		if pr.ScaleY > 1 {
			streak := int(math.Round((pr.ScaleY - 1) * 6))
			c.VLine(sx, sy-streak, sy+streak, lv)
		} else {
			c.Set(sx, sy, lv)
		}
	}
}

// intensity buckets opacity into the canvas's three shades.
func intensity(op float64) uint8 {
	switch {
	case op >= 0.75:
		return 3
	case op >= 0.4:
		return 2
	default:
		return 1
	}
}
