package material

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectric_UnitIndexDoesNotBend(t *testing.T) {
	glass := NewDielectric(1.0)
	sampler := core.NewSeededSampler(42)
	normal := core.NewVec3(0, 1, 0)

	directions := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(5, -1, 2),
		core.NewVec3(-20, -1, 3),
	}

	for _, dir := range directions {
		for _, frontFace := range []bool{true, false} {
			hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: frontFace}
			scatter, didScatter := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), dir), hit, sampler)
			if !didScatter {
				t.Fatal("Dielectric should always scatter")
			}
			expected := dir.Normalize()
			if !vecClose(scatter.Scattered.Direction.Normalize(), expected, 1e-4) {
				t.Errorf("Index 1.0 bent %v into %v", expected, scatter.Scattered.Direction)
			}
		}
	}
}

func TestDielectric_AttenuationIsWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	scatter, _ := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, NewTestSampler(0.99))
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected white attenuation, got %v", scatter.Attenuation)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	normal := core.NewVec3(0, 1, 0)
	// Exiting glass (back face) at a steep angle: 1.5 * sin(60deg) > 1
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: false}
	dir := core.NewVec3(math32.Sin(math32.Pi/3), -math32.Cos(math32.Pi/3), 0)

	// A draw of 0.999 would refract whenever refraction is possible
	scatter, _ := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), dir), hit, NewTestSampler(0.999))

	expected := core.Reflect(dir, normal)
	if !vecClose(scatter.Scattered.Direction, expected, 1e-5) {
		t.Errorf("Expected total internal reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestDielectric_RefractsAtNormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}

	// Reflectance at normal incidence is 0.04, a draw of 0.5 refracts straight through
	scatter, _ := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -2, 0)), hit, NewTestSampler(0.5))
	if !vecClose(scatter.Scattered.Direction, core.NewVec3(0, -1, 0), 1e-5) {
		t.Errorf("Expected straight refraction, got %v", scatter.Scattered.Direction)
	}

	// A draw below the reflectance reflects instead
	scatter, _ = glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -2, 0)), hit, NewTestSampler(0.01))
	if !vecClose(scatter.Scattered.Direction, core.NewVec3(0, 1, 0), 1e-5) {
		t.Errorf("Expected reflection, got %v", scatter.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float32
		ratio    float32
		expected float32
	}{
		{"normal incidence glass", 1.0, 1.0 / 1.5, 0.04},
		{"grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"matched indices", 0.3, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math32.Abs(got-tt.expected) > 1e-5 {
				t.Errorf("Reflectance(%f, %f) = %f, expected %f", tt.cosine, tt.ratio, got, tt.expected)
			}
		})
	}
}
