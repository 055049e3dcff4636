package integrator

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func colorNear(a, b core.Color, tolerance float32) bool {
	return math32.Abs(a.X-b.X) <= tolerance &&
		math32.Abs(a.Y-b.Y) <= tolerance &&
		math32.Abs(a.Z-b.Z) <= tolerance
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewColor(0.7, 0.3, 0.3))),
	)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Test with depth 0 (should return black)
	colorDepth0 := NewPathTracingIntegrator(0).RayColor(ray, world, sampler)
	if colorDepth0 != core.Black() {
		t.Errorf("Expected black color for depth 0, got %v", colorDepth0)
	}

	// Depth 0 is black even when the ray would miss everything
	skyRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if c := NewPathTracingIntegrator(0).RayColor(skyRay, world, sampler); c != core.Black() {
		t.Errorf("Expected black color for depth 0 miss, got %v", c)
	}

	// Test with positive depth (should return some color)
	colorDepth3 := NewPathTracingIntegrator(3).RayColor(ray, world, sampler)
	if colorDepth3 == core.Black() {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestBackgroundGradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewColor(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewColor(1, 1, 1)},
		{"horizon", core.NewVec3(0, 0, -1), core.NewColor(0.75, 0.85, 1.0)},
		{"unnormalized up", core.NewVec3(0, 10, 0), core.NewColor(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := BackgroundGradient(core.NewRay(core.NewVec3(1, 2, 3), tt.direction))
			if !colorNear(c, tt.expected, 1e-6) {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}
}

func TestPathTracingMissReturnsSky(t *testing.T) {
	integrator := NewPathTracingIntegrator(10)
	sampler := core.NewSeededSampler(1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.3, 0.4, -1))

	got := integrator.RayColor(ray, geometry.NewWorld(), sampler)
	if got != BackgroundGradient(ray) {
		t.Errorf("Expected sky color %v, got %v", BackgroundGradient(ray), got)
	}
}

func TestPathTracingNormalMaterial(t *testing.T) {
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewNormal()))
	integrator := NewPathTracingIntegrator(1)
	sampler := core.NewSeededSampler(1)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, sampler)

	expected := core.NewColor(0.5, 0.5, 1.0)
	if !colorNear(got, expected, 1e-6) {
		t.Errorf("Expected normal color %v, got %v", expected, got)
	}
}

func TestPathTracingMirrorAttenuation(t *testing.T) {
	mirror := material.NewMetal(core.NewColor(0.5, 0.5, 0.5), 0)
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, mirror))
	sampler := core.NewSeededSampler(1)

	// Reflects straight back along +z and escapes to the horizon color
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	expected := core.NewColor(0.75, 0.85, 1.0).Multiply(0.5)

	tests := []struct {
		name     string
		depth    int
		expected core.Color
	}{
		{"no room for the bounce", 1, core.Black()},
		{"one bounce", 2, expected},
		{"plenty of depth", 50, expected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPathTracingIntegrator(tt.depth).RayColor(ray, world, sampler)
			if !colorNear(got, tt.expected, 1e-5) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingIndexOneGlassIsInvisible(t *testing.T) {
	glass := material.NewDielectric(1.0)
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -3), 1, glass))
	sampler := core.NewSeededSampler(3)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := NewPathTracingIntegrator(10).RayColor(ray, world, sampler)

	if !colorNear(got, BackgroundGradient(ray), 1e-5) {
		t.Errorf("Expected glass with index 1 to pass the sky through, got %v", got)
	}
}

func TestPathTracingEnclosedDiffuseAbsorbs(t *testing.T) {
	// The camera sits inside a closed diffuse sphere, so no path ever reaches the sky
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 5, material.NewLambertian(core.NewColor(0.9, 0.9, 0.9))),
	)
	integrator := NewPathTracingIntegrator(5)
	sampler := core.NewSeededSampler(5)

	for i := 0; i < 20; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.RandomUnitVector(sampler))
		if got := integrator.RayColor(ray, world, sampler); got != core.Black() {
			t.Fatalf("Expected black inside a closed diffuse sphere, got %v", got)
		}
	}
}

func TestPathTracingSkipsSelfIntersection(t *testing.T) {
	// Ray starts a hair inside the surface, so its exit lies within the epsilon band
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewNormal())
	world := geometry.NewWorld(sphere)
	integrator := NewPathTracingIntegrator(1)
	sampler := core.NewSeededSampler(9)

	ray := core.NewRay(core.NewVec3(0, 0.9999, 0), core.NewVec3(0, 1, 0))
	got := integrator.RayColor(ray, world, sampler)
	if got != BackgroundGradient(ray) {
		t.Errorf("Expected ray leaving the surface to see the sky, got %v", got)
	}
}

func TestPathTracingEmissiveSphere(t *testing.T) {
	emission := core.NewColor(4, 2, 1)
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewEmissive(emission)),
	)
	sampler := core.NewSeededSampler(42)

	// A lamp seen directly contributes its emission and nothing else
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := NewPathTracingIntegrator(5).RayColor(ray, world, sampler); got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}

	// From inside the shell only the back face is visible
	inside := core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 1, 0))
	if got := NewPathTracingIntegrator(5).RayColor(inside, world, sampler); got != core.Black() {
		t.Errorf("Expected black from inside the lamp, got %v", got)
	}
}

func TestPathTracingImplementsIntegrator(t *testing.T) {
	var _ Integrator = NewPathTracingIntegrator(1)
}
