package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	gridExtent        = 11
	smallSphereRadius = 0.2
)

// NewRandomScene creates a ground sphere covered in a grid of small randomly placed spheres
// with random materials, plus three large feature spheres. The layout is fully determined by random.
func NewRandomScene(random *rand.Rand, cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s := newScene(defaultCameraConfig, SamplingConfig{
		Width:           1200,
		Height:          675,
		SamplesPerPixel: 500,
		MaxDepth:        50,
	}, cameraOverrides)

	sampler := core.NewRandomSampler(random)
	randomColor := func() core.Vec3 {
		return core.NewVec3(sampler.Get1D(), sampler.Get1D(), sampler.Get1D())
	}

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// Spheres too close to the large metal sphere are skipped
	clearing := core.NewVec3(4, smallSphereRadius, 0)
	glass := material.NewDielectric(1.5)

	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMaterial := sampler.Get1D()
			center := core.NewVec3(
				float32(a)+0.9*sampler.Get1D(),
				smallSphereRadius,
				float32(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.8:
				mat = material.NewLambertian(randomColor().MultiplyVec(randomColor()))
			case chooseMaterial < 0.95:
				albedo := randomColor().MultiplyVec(randomColor())
				mat = material.NewMetal(albedo, core.RandomInRange(sampler, 0, 0.5))
			default:
				mat = glass
			}
			s.World.Add(geometry.NewSphere(center, smallSphereRadius, mat))
		}
	}

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}
