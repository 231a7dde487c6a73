package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTestScene creates three spheres (hollow glass, diffuse, fuzzy gold) on a large ground sphere
func NewTestScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(3, 3, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	s := newScene(defaultCameraConfig, SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}, cameraOverrides)

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter))
	// Hollow glass: the inner negative-radius sphere shares the outer sphere's material
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, materialLeft))
	s.World.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround))

	return s
}
