package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShadowAcneEpsilon is the lower bound of the hit interval for every traced ray.
// Hits closer than this are treated as self-intersections of the surface the ray left.
const ShadowAcneEpsilon float32 = 0.001

var (
	skyTop    = core.NewColor(0.5, 0.7, 1.0)
	skyBottom = core.White()
)

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color {
	return pt.rayColor(ray, pt.MaxDepth, world, sampler)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, depth int, world geometry.Shape, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Black()
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math32.Inf(1)))
	if !isHit {
		return BackgroundGradient(ray)
	}

	// Start with emitted light from the hit material
	colorEmitted := emittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, depth-1, world, sampler))
	return colorEmitted.Add(colorScattered)
}

// emittedLight returns the emitted light from a material if it's emissive
func emittedLight(ray core.Ray, hit *material.HitRecord) core.Color {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}
	return core.Black()
}

// BackgroundGradient returns the sky color seen along r, blending from white
// straight down to light blue straight up
func BackgroundGradient(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	a := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-a)*bottom + a*top
	return skyBottom.Multiply(1.0 - a).Add(skyTop.Multiply(a))
}
