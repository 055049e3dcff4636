package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly between two centers
// over ray time [0,1]
type Sphere struct {
	Center   core.Ray // Center at time 0 plus displacement to the center at time 1
	Radius   float32
	Material material.Material
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Point, radius float32, mat material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: mat,
	}
}

// NewMovingSphere creates a sphere whose center moves from center0 at time 0 to center1 at time 1
func NewMovingSphere(center0, center1 core.Point, radius float32, mat material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center0, center1.Subtract(center0)),
		Radius:   radius,
		Material: mat,
	}
}

// CenterAt returns the sphere center at the given ray time
func (s *Sphere) CenterAt(time float32) core.Point {
	return s.Center.At(time)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic with b = -2h: a*t² - 2h*t + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Contains(root) {
		root = (h + sqrtD) / a
		if !rayT.Contains(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
