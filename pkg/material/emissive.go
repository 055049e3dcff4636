package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Color // Emitted radiance, may exceed 1 per channel
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Color) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface; emissive surfaces absorb every incoming ray
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emission seen from outside the surface and black from inside
func (e *Emissive) Emit(rayIn core.Ray, hit HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Black()
	}
	return e.Emission
}

func (e *Emissive) sealed() {}
