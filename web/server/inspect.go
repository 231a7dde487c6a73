package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult is the closest hit along an inspection ray and the shape that produced it
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Shape     geometry.Shape
}

// inspectPixel casts a ray through the center of the given pixel and returns the first object hit
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResult {
	s := float32(pixelX) / float32(max(1, width-1))
	t := float32(height-1-pixelY) / float32(max(1, height-1))

	// A fixed seed keeps the lens sample, and so the answer, stable between requests
	ray := sceneObj.Camera.GetRay(s, t, core.NewSeededSampler(1))

	result := InspectResult{}
	closestSoFar := float32(integrator.DefaultTMax)
	for _, shape := range sceneObj.World.Shapes {
		if hit, isHit := shape.Hit(ray, integrator.DefaultTMin, closestSoFar); isHit {
			closestSoFar = hit.T
			result = InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}
	return result
}

// extractMaterialInfo describes a material with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = vecToArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecToArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo describes a shape with type assertions
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecToArray(geom.Center)
		properties["radius"] = geom.Radius
		properties["hollow"] = geom.Radius < 0
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

func vecToArray(v core.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	channel := func(v float32) int {
		return int(min(max(v, 0), 1) * 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.X), channel(c.Y), channel(c.Z))
}

// handleInspect reports what the camera sees through one pixel
func (s *Server) handleInspect(c echo.Context) error {
	values := c.QueryParams()
	sceneName := values.Get("scene")
	if sceneName == "" {
		sceneName = "test"
	}

	width, err := parseIntParam(values, "width", 400, 16, 1200)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	height, err := parseIntParam(values, "height", 225, 16, 1200)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid x coordinate")
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid y coordinate")
	}
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		return echo.NewHTTPError(http.StatusBadRequest, "Pixel coordinates out of bounds")
	}

	seed := int64(1)
	if value := values.Get("seed"); value != "" {
		if seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid seed: %s", value))
		}
	}

	aspect := geometry.CameraConfig{AspectRatio: float32(width) / float32(height)}
	sceneObj, err := scene.Create(sceneName, seed, aspect)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result := inspectPixel(sceneObj, width, height, pixelX, pixelY)
	if !result.Hit {
		return c.JSON(http.StatusOK, InspectResponse{Hit: false})
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	return c.JSON(http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecToArray(result.HitRecord.Point),
		Normal:       vecToArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
