package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Color {
	hRad := h * math32.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	unit := core.NewInterval(0, 1)
	return core.NewColor(unit.Clamp(r), unit.Clamp(g), unit.Clamp(blue))
}

// NewSphereGridScene creates a grid of metallic spheres on a gray ground sphere,
// hue varying along x and chroma along z
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := applyOverrides(geometry.CameraConfig{
		Width:           800,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        40,
		VFov:            40,
		LookFrom:        core.NewVec3(4.5, 6, 18),
		LookAt:          core.NewVec3(4.5, 0.8, 4.5),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.2,
		FocusDistance:   0, // focus on LookAt
	}, cameraOverrides)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(4.5, -1000, 4.5), 1000, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))),
	)

	gridSize := 10

	// Fit the grid in roughly 9x9 units centered on the look-at point
	targetArea := float32(9.0)
	spacing := targetArea / float32(gridSize-1)
	sphereRadius := math32.Max(0.02, math32.Min(0.35, spacing*0.35))

	baseLightness := float32(0.65)
	minChroma := float32(0.05)
	maxChroma := float32(0.25)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2 + 4.5
			z := float32(j)*spacing - targetArea/2 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := float32(i) / float32(gridSize-1) * 360
			chroma := minChroma + float32(j)/float32(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)

			roughness := 0.05 + 0.1*float32((i+j)%3)/2
			metal := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			world.Add(geometry.NewSphere(position, sphereRadius, metal))
		}
	}

	return &Scene{World: world, CameraConfig: cameraConfig}
}
