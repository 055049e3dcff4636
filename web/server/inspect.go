package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// InspectResponse contains information about the first surface behind a pixel
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float32             `json:"point,omitempty"`
	Normal       [3]float32             `json:"normal,omitempty"`
	Distance     float32                `json:"distance,omitempty"`
	FrontFace    bool                   `json:"frontFace,omitempty"`
	Background   [3]float32             `json:"background,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// fixedSampler places an inspected ray through a chosen point of the pixel.
// Every 1D draw is 0.5, which is the center of the lens and the middle of the shutter.
type fixedSampler struct {
	u, v float32
}

func (f fixedSampler) Get1D() float32 { return 0.5 }

func (f fixedSampler) Get2D() core.Vec2 { return core.NewVec2(f.u, f.v) }

// handleInspect casts a single camera ray and reports what it hits first
func (s *Server) handleInspect(c echo.Context) error {
	values := c.QueryParams()
	req, err := parseRenderRequest(values)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
	}

	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
	}

	// Offsets within the pixel default to its center
	u, err := parseFloatParam(values, "u", 0.5, 0, 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	v, err := parseFloatParam(values, "v", 0.5, 0, 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sceneObj, err := req.createScene()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	camera := sceneObj.Camera()
	if pixelX < 0 || pixelX >= camera.Width() || pixelY < 0 || pixelY >= camera.Height() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
	}

	ray := camera.GetRay(pixelX, pixelY, fixedSampler{u: float32(u), v: float32(v)})
	return c.JSON(http.StatusOK, inspectRay(ray, sceneObj.World))
}

// inspectRay finds the nearest shape along ray, using the same hit interval as rendering
func inspectRay(ray core.Ray, world *geometry.World) InspectResponse {
	closestHit, closestShape, isHit := world.HitShape(ray, core.NewInterval(integrator.ShadowAcneEpsilon, math32.Inf(1)))
	if !isHit {
		return InspectResponse{Background: vecToArray(integrator.BackgroundGradient(ray))}
	}

	materialType, properties := extractMaterialInfo(closestHit.Material)
	geometryType, geometryProperties := extractGeometryInfo(closestShape)
	for key, value := range geometryProperties {
		properties[key] = value
	}

	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecToArray(closestHit.Point),
		Normal:       vecToArray(closestHit.Normal),
		Distance:     closestHit.T * ray.Direction.Length(),
		FrontFace:    closestHit.FrontFace,
		Properties:   properties,
	}
}

// extractMaterialInfo extracts detailed material information
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = vecToArray(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecToArray(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties

	case *material.Emissive:
		properties["emission"] = vecToArray(m.Emission)
		return "emissive", properties

	case *material.Normal:
		return "normal", properties

	default:
		properties["type"] = fmt.Sprintf("%T", mat)
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecToArray(geom.CenterAt(0))
		properties["radius"] = geom.Radius
		if geom.Center.Direction != (core.Vec3{}) {
			properties["centerAtShutterClose"] = vecToArray(geom.CenterAt(1))
			return "moving_sphere", properties
		}
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

func vecToArray(v core.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
