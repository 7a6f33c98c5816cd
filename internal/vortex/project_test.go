package vortex

import (
	"math"
	"testing"
)

func TestOpacityProfile(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"origin", 0, 1.0},
		{"exactly at near threshold", nearFadeStart, 1.0},
		{"exactly at far threshold", farFadeStart, 1.0},
		{"halfway into near fade", nearFadeStart + nearFadeRange/2, 0.5},
		{"end of near fade", nearFadeStart + nearFadeRange, 0.0},
		{"halfway into far fade", farFadeStart - farFadeRange/2, 0.5},
		{"far beyond the volume", farFadeStart - 10*farFadeRange, 0.0},
		{"in the viewer's face", nearFadeStart + 10*nearFadeRange, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := opacityAt(tt.z); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("opacityAt(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestOpacityIsDeterministic(t *testing.T) {
	for z := -2000.0; z <= 2000; z += 13.7 {
		if opacityAt(z) != opacityAt(z) {
			t.Fatalf("opacity not deterministic at z=%v", z)
		}
		if op := opacityAt(z); op < 0 || op > 1 {
			t.Fatalf("opacity %v out of [0,1] at z=%v", op, z)
		}
	}
}

func TestProjectCullsInvisible(t *testing.T) {
	pt := &Particle{Pos: Vec3{Z: farFadeStart - 10*farFadeRange}}
	pr := Project(pt, 1.0)
	if pr.Visible {
		t.Fatal("particle far beyond the volume should be culled")
	}
	if pr.Opacity != 0 {
		t.Errorf("culled projection should carry zero opacity, got %v", pr.Opacity)
	}
}

func TestProjectDepthKeyNonNegative(t *testing.T) {
	for _, z := range []float64{-5000, -800, 0, 800, 5000} {
		pt := &Particle{Pos: Vec3{Z: z}}
		if d := Project(pt, 1.0).Depth; d < 0 {
			t.Errorf("depth key %d negative for z=%v", d, z)
		}
	}
	// Deeper z must order behind shallower z.
	a := Project(&Particle{Pos: Vec3{Z: -100}}, 1.0)
	b := Project(&Particle{Pos: Vec3{Z: 100}}, 1.0)
	if a.Depth >= b.Depth {
		t.Errorf("depth ordering broken: z=-100 -> %d, z=100 -> %d", a.Depth, b.Depth)
	}
}

func TestProjectMotionStretch(t *testing.T) {
	pt := &Particle{}
	if pr := Project(pt, 1.0); pr.ScaleY != 1.0 {
		t.Errorf("no stretch expected at speedMod 1, got %v", pr.ScaleY)
	}
	if pr := Project(pt, 1.1); pr.ScaleY != 1.0 {
		t.Errorf("no stretch expected below threshold, got %v", pr.ScaleY)
	}
	pr := Project(pt, 1.4)
	want := 1 + 0.4*stretchGain
	if math.Abs(pr.ScaleY-want) > 1e-12 {
		t.Errorf("stretch at speedMod 1.4: got %v, want %v", pr.ScaleY, want)
	}
}
