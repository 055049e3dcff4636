package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to set up a camera
type CameraConfig struct {
	Width           int        // Image width in pixels
	AspectRatio     float32    // Width / height
	SamplesPerPixel int        // Rays averaged per pixel
	MaxDepth        int        // Maximum ray bounce depth
	VFov            float32    // Vertical field of view in degrees
	LookFrom        core.Point // Camera position
	LookAt          core.Point // Point the camera looks at
	Up              core.Vec3  // Up direction
	DefocusAngle    float32    // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDistance   float32    // Distance to the plane of perfect focus (0 = distance to LookAt)
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// MergeCameraConfig merges a partial camera config with a base config.
// Zero values in override are ignored.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}

// CameraOverride changes selected settings of an existing camera config.
// Nil fields keep the base value, so zero is a real setting (MaxDepth 0, DefocusAngle 0).
type CameraOverride struct {
	Width           *int
	SamplesPerPixel *int
	MaxDepth        *int
	DefocusAngle    *float32
	FocusDistance   *float32
}

// Apply returns base with every set field of o replaced
func (o CameraOverride) Apply(base CameraConfig) CameraConfig {
	result := base

	if o.Width != nil {
		result.Width = *o.Width
	}
	if o.SamplesPerPixel != nil {
		result.SamplesPerPixel = *o.SamplesPerPixel
	}
	if o.MaxDepth != nil {
		result.MaxDepth = *o.MaxDepth
	}
	if o.DefocusAngle != nil {
		result.DefocusAngle = *o.DefocusAngle
	}
	if o.FocusDistance != nil {
		result.FocusDistance = *o.FocusDistance
	}

	return result
}

// Camera is the render-ready snapshot derived from a CameraConfig.
// It is never mutated after NewCamera and is safe to share between workers.
type Camera struct {
	config CameraConfig

	width, height int
	sampleScale   float32
	center        core.Point
	pixel00       core.Point // Location of pixel 0, 0
	pixelDeltaU   core.Vec3  // Offset to pixel to the right
	pixelDeltaV   core.Vec3  // Offset to pixel below
	u, v, w       core.Vec3  // Camera frame basis vectors
	defocusDiskU  core.Vec3  // Defocus disk horizontal radius
	defocusDiskV  core.Vec3  // Defocus disk vertical radius
}

// NewCamera derives the viewport, pixel grid and defocus disk from config
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config, width: config.Width}

	c.height = int(float32(config.Width) / config.AspectRatio)
	if c.height < 1 {
		c.height = 1
	}

	c.sampleScale = 1.0 / float32(config.SamplesPerPixel)
	c.center = config.LookFrom

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	// Viewport dimensions
	theta := degreesToRadians(config.VFov)
	h := math32.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * (float32(c.width) / float32(c.height))

	// Orthonormal basis for the camera frame
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float32(c.width))
	c.pixelDeltaV = viewportV.Divide(float32(c.height))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math32.Tan(degreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// SampleScale returns the weight of a single sample in the pixel average
func (c *Camera) SampleScale() float32 { return c.sampleScale }

// Center returns the camera position
func (c *Camera) Center() core.Point { return c.center }

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 { return c.w.Negate() }

// GetRay builds a ray from the defocus disk toward a random point in pixel (i, j).
// Row j = 0 is the top of the image.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float32(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float32(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// sampleSquare returns a point in the [-0.5,0.5) unit square
func sampleSquare(sampler core.Sampler) core.Vec2 {
	s := sampler.Get2D()
	return core.NewVec2(s.X-0.5, s.Y-0.5)
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}
