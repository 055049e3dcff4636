package core

// Ray represents a ray with an origin, a direction and a sample time in [0,1]
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float32
}

// NewRay creates a new ray at time 0
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtTime creates a new ray at the given sample time
func NewRayAtTime(origin, direction Vec3, time float32) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
