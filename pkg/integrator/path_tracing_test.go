package integrator

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// stubMaterial scatters every ray straight up with a fixed attenuation, or absorbs it
type stubMaterial struct {
	attenuation core.Vec3
	scatters    bool
	calls       int
}

func (m *stubMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	m.calls++
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
		Attenuation: m.attenuation,
	}, m.scatters
}

// stubShape is hit by every ray and records the interval it was queried with
type stubShape struct {
	mat        material.Material
	tMin, tMax float32
	queries    int
}

func (s *stubShape) Hit(ray core.Ray, tMin, tMax float32) (*material.HitRecord, bool) {
	s.tMin, s.tMax = tMin, tMax
	s.queries++
	hit := &material.HitRecord{T: 1, Point: ray.At(1), Material: s.mat}
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return hit, true
}

func closeTo(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-5
}

func TestRayColor_DepthExhaustedIsBlack(t *testing.T) {
	pt := NewPathTracingIntegrator(0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	color := pt.RayColor(ray, geometry.NewHittableList(), core.NewSeededSampler(1))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black at zero depth, got %v", color)
	}
}

func TestRayColor_MissReturnsSkyGradient(t *testing.T) {
	pt := NewPathTracingIntegrator(10)
	empty := geometry.NewHittableList()
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 5, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -2, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), tt.direction), empty, sampler)
			if !closeTo(color, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestRayColor_AbsorbedPathReturnsAttenuation(t *testing.T) {
	attenuation := core.NewVec3(0.3, 0.2, 0.1)
	mat := &stubMaterial{attenuation: attenuation, scatters: false}
	pt := NewPathTracingIntegrator(5)

	color := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), &stubShape{mat: mat}, core.NewSeededSampler(1))
	if color != attenuation {
		t.Errorf("Expected absorbed path to return %v, got %v", attenuation, color)
	}
}

func TestRayColor_AttenuatesSkyThroughBounce(t *testing.T) {
	mat := material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0)
	floor := geometry.NewSphere(core.NewVec3(0, -100, 0), 99, mat)
	pt := NewPathTracingIntegrator(5)

	// Falls straight onto the mirror floor at y=-1, reflects straight up into the sky
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	color := pt.RayColor(ray, geometry.NewHittableList(floor), core.NewSeededSampler(1))

	expected := core.NewVec3(0.25, 0.35, 0.5)
	if !closeTo(color, expected) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestRayColor_BounceBudgetAndInterval(t *testing.T) {
	mat := &stubMaterial{attenuation: core.NewVec3(1, 1, 1), scatters: true}
	shape := &stubShape{mat: mat}
	pt := NewPathTracingIntegrator(7)

	color := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), shape, core.NewSeededSampler(1))

	if color != (core.Vec3{}) {
		t.Errorf("A path that never escapes should end black, got %v", color)
	}
	if shape.queries != 7 || mat.calls != 7 {
		t.Errorf("Expected exactly 7 bounces, got %d hit queries and %d scatters", shape.queries, mat.calls)
	}
	if shape.tMin != DefaultTMin || shape.tMax != DefaultTMax {
		t.Errorf("Expected hit interval (%v, %v), got (%v, %v)", DefaultTMin, DefaultTMax, shape.tMin, shape.tMax)
	}
}
