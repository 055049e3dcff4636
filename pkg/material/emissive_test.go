package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestEmissive_Scatter(t *testing.T) {
	tests := []struct {
		name     string
		emission core.Color
	}{
		{"Red emission", core.NewColor(1.0, 0.0, 0.0)},
		{"White emission", core.NewColor(1.0, 1.0, 1.0)},
		{"Zero emission", core.NewColor(0.0, 0.0, 0.0)},
		{"High intensity emission", core.NewColor(10.0, 5.0, 2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emissive := NewEmissive(tt.emission)

			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
			hit := HitRecord{
				Point:     core.NewVec3(1, 0, 0),
				Normal:    core.NewVec3(-1, 0, 0),
				T:         1.0,
				FrontFace: true,
			}

			if _, scattered := emissive.Scatter(ray, hit, core.NewSeededSampler(42)); scattered {
				t.Error("Emissive material should not scatter rays")
			}
			if emitted := emissive.Emit(ray, hit); emitted != tt.emission {
				t.Errorf("Expected emission %v, got %v", tt.emission, emitted)
			}
		})
	}
}

func TestEmissive_BackFaceIsDark(t *testing.T) {
	emissive := NewEmissive(core.NewColor(4, 4, 4))

	// A ray leaving the inside of a lamp shell
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := HitRecord{}
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))

	if hit.FrontFace {
		t.Fatal("Expected a back-face hit")
	}
	if emitted := emissive.Emit(ray, hit); emitted != core.Black() {
		t.Errorf("Expected no emission from the back face, got %v", emitted)
	}
}

func TestEmissive_InterfaceCompliance(t *testing.T) {
	emissive := NewEmissive(core.NewColor(1.0, 1.0, 1.0))

	var _ Material = emissive
	var _ Emitter = emissive
}
