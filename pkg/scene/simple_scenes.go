package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// pinholeCamera looks down -z from the origin with a 90 degree field of view
func pinholeCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90.0,
		AspectRatio:   2.0,
		FocusDistance: 1.0,
	}
}

// NewGroundScene creates a single large diffuse sphere directly below the camera
func NewGroundScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene(pinholeCamera(), SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 50,
		MaxDepth:        10,
	}, cameraOverrides)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))

	return s
}

// NewMirrorScene creates perfect mirrors only, so a pinhole render at one sample per pixel
// involves no randomness at all
func NewMirrorScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene(pinholeCamera(), SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 1,
		MaxDepth:        10,
	}, cameraOverrides)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5,
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0)))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
		material.NewMetal(core.NewVec3(0.6, 0.6, 0.6), 0)))

	return s
}
