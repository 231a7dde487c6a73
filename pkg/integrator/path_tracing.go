package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

const (
	// DefaultTMin keeps bounce rays from re-hitting the surface they start on
	DefaultTMin = 0.001
	// DefaultTMax is the far limit of the hit search
	DefaultTMax = 100.0
)

var (
	skyBottomColor = core.NewVec3(1.0, 1.0, 1.0)
	skyTopColor    = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce budget
type PathTracingIntegrator struct {
	MaxDepth int
	TMin     float32
	TMax     float32
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth: maxDepth,
		TMin:     DefaultTMin,
		TMax:     DefaultTMax,
	}
}

// RayColor implements Integrator using the configured bounce budget
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.rayColorRecursive(ray, world, sampler, pt.MaxDepth)
}

// rayColorRecursive returns the color for a given ray with material support
func (pt *PathTracingIntegrator) rayColorRecursive(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, pt.TMin, pt.TMax)
	if !isHit {
		return BackgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Absorbed paths end with the attenuation itself, not black
		return scatter.Attenuation
	}

	return scatter.Attenuation.MultiplyVec(
		pt.rayColorRecursive(scatter.Scattered, world, sampler, depth-1))
}

// BackgroundGradient returns the sky color seen along the ray: white at the horizon
// below, light blue overhead
func BackgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return skyBottomColor.Multiply(1.0 - t).Add(skyTopColor.Multiply(t))
}
