package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how light scatters off a surface.
// The set of implementations is closed: Lambertian, Metal, Dielectric, Emissive and Normal.
type Material interface {
	// Scatter returns the attenuation and outgoing ray, or false when the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	sealed()
}

// Emitter is implemented by materials that contribute light of their own
type Emitter interface {
	Emit(rayIn core.Ray, hit HitRecord) core.Color
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray, carrying the incoming ray's time
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point // Point of intersection
	Normal    core.Vec3  // Unit surface normal, always facing against the incoming ray
	T         float32    // Parameter t along the ray
	FrontFace bool       // Whether the geometric normal already faced the ray
	Material  Material   // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
