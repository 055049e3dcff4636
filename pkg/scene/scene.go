package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World        *geometry.World       // Objects in the scene
	CameraConfig geometry.CameraConfig // Camera and sampling setup for this scene
}

// Camera builds the render-ready camera for the scene's current configuration
func (s *Scene) Camera() *geometry.Camera {
	return geometry.NewCamera(s.CameraConfig)
}

// ApplyOverride replaces the camera settings set in o, including zero values
func (s *Scene) ApplyOverride(o geometry.CameraOverride) {
	s.CameraConfig = o.Apply(s.CameraConfig)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// Create builds a built-in scene by ID. The seed only affects randomly generated scenes.
func Create(id string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	switch id {
	case "final":
		return NewFinalScene(rand.New(rand.NewSource(seed)), cameraOverrides...), nil
	case "basic":
		return NewBasicScene(cameraOverrides...), nil
	case "materials":
		return NewMaterialsScene(cameraOverrides...), nil
	case "sphere-grid":
		return NewSphereGridScene(cameraOverrides...), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", id)
	}
}

// applyOverrides merges the first override, if any, into the scene defaults
func applyOverrides(defaults geometry.CameraConfig, cameraOverrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(cameraOverrides) > 0 {
		return geometry.MergeCameraConfig(defaults, cameraOverrides[0])
	}
	return defaults
}
