package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBasicScene creates a small sphere resting on a large ground sphere, both shaded
// by surface normal. One sample per pixel is enough since nothing scatters.
func NewBasicScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := applyOverrides(geometry.CameraConfig{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 1,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   1,
	}, cameraOverrides)

	normals := material.NewNormal()
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, normals),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, normals),
	)

	return &Scene{World: world, CameraConfig: cameraConfig}
}
