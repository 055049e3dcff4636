package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Normal shades a surface by its normal, mapped from [-1,1] into [0,1] per channel.
// It never scatters, which makes it useful for checking geometry and camera setup.
type Normal struct{}

// NewNormal creates a normal-visualization material
func NewNormal() *Normal {
	return &Normal{}
}

// Scatter implements the Material interface; normal shading absorbs every ray
func (n *Normal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns (normal + white) / 2
func (n *Normal) Emit(rayIn core.Ray, hit HitRecord) core.Color {
	return hit.Normal.Add(core.White()).Multiply(0.5)
}

func (n *Normal) sealed() {}
