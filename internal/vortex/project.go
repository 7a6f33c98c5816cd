package vortex

import "math"

const (
	// Camera-proximity fade: particles swinging closer than nearFadeStart
	// ramp out over nearFadeRange and vanish in the viewer's face.
	nearFadeStart = 320.0
	nearFadeRange = 160.0
	// Far fade past the rear of the simulated volume.
	farFadeStart = -600.0
	farFadeRange = 200.0

	// Below this opacity a particle is culled outright instead of being
	// rendered fully transparent.
	minVisibleOpacity = 0.05

	// Depth keys are shifted into a non-negative range for stable stacking.
	depthBias = 800

	stretchThreshold = 1.15
	stretchGain      = 0.8
)

// Projection is the screen-space transform for one particle. When Visible
// is false no other field besides Depth is meaningful; the compositor must
// skip the particle without further work.
type Projection struct {
	X, Y    float64
	Depth   int
	Opacity float64
	ScaleY  float64
	Rot     Vec3
	Visible bool
}

// Project maps a particle's simulated position to its visual transform.
// It is a pure function of the particle's current state and speedMod; the
// physics step must have finished for the frame before any projection runs.
func Project(pt *Particle, speedMod float64) Projection {
	z := pt.Pos.Z

	depth := int(math.Round(z)) + depthBias
	if depth < 0 {
		depth = 0
	}

	op := opacityAt(z)
	if op < minVisibleOpacity {
		return Projection{Depth: depth}
	}

	scaleY := 1.0
	if speedMod > stretchThreshold {
		scaleY = 1 + (speedMod-1)*stretchGain
	}

	return Projection{
		X:       pt.Pos.X,
		Y:       pt.Pos.Y,
		Depth:   depth,
		Opacity: op,
		ScaleY:  scaleY,
		Rot:     pt.Rot,
		Visible: true,
	}
}

// opacityAt is the fade profile: 1.0 inside the volume, linear ramps at the
// near and far windows, floored at 0.
func opacityAt(z float64) float64 {
	op := 1.0
	if z > nearFadeStart {
		op = 1 - (z-nearFadeStart)/nearFadeRange
	} else if z < farFadeStart {
		op = 1 - (farFadeStart-z)/farFadeRange
	}
	if op < 0 {
		return 0
	}
	return op
}
