package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"pointing away", core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0)},
		{"offset beyond radius", core.NewVec3(-5, 1.01, 0), core.NewVec3(1, 0, 0)},
		{"offset far beyond radius", core.NewVec3(0, 3, -5), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(core.NewRay(tt.origin, tt.direction), 0.001, 1000.0)
			if isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestSphere_Hit_DistanceToSurface(t *testing.T) {
	center := core.NewVec3(1, -2, 3)
	radius := float32(1.5)
	sphere := NewSphere(center, radius, nil)

	origins := []core.Vec3{
		core.NewVec3(10, -2, 3),
		core.NewVec3(1, 8, 3),
		core.NewVec3(-4, 1, -2),
	}

	for _, origin := range origins {
		// Direction aimed at the center, deliberately not unit length
		direction := center.Subtract(origin).Normalize()
		hit, isHit := sphere.Hit(core.NewRay(origin, direction), 0.001, 1000.0)
		if !isHit {
			t.Fatalf("Expected hit from %v", origin)
		}

		expected := center.Subtract(origin).Length() - radius
		if math32.Abs(hit.T-expected) > 1e-4 {
			t.Errorf("From %v: expected t=%f, got t=%f", origin, expected, hit.T)
		}
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float32
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math32.Abs(hit.T-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-6 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_NegativeRadiusFlipsOutwardNormal(t *testing.T) {
	hollow := NewSphere(core.NewVec3(0, 0, 0), -0.4, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := hollow.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit on hollow sphere")
	}
	if math32.Abs(hit.T-1.6) > 1e-6 {
		t.Errorf("Expected t=1.6, got %f", hit.T)
	}
	// The outward normal points at the center, so the ray arrives from the back side
	if hit.FrontFace {
		t.Error("Expected back-face hit on negative-radius sphere")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-6 {
		t.Errorf("Normal should still face the incoming ray, got %v", hit.Normal)
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	// Near root at t=2 is excluded, so the far root at t=4 is used
	hit, isHit := sphere.Hit(ray, 2.5, 10)
	if !isHit || math32.Abs(hit.T-4) > 1e-6 {
		t.Errorf("Expected far root t=4, got hit=%t", isHit)
	}

	// Both roots outside the interval
	if _, isHit := sphere.Hit(ray, 0.001, 1.5); isHit {
		t.Error("Expected no hit when both roots exceed tMax")
	}
}

func TestSphere_Hit_CarriesMaterial(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.3))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)

	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != mat {
		t.Errorf("Expected hit material %v, got %v", mat, hit.Material)
	}
	if math32.Abs(hit.Normal.Length()-1) > 1e-6 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}
