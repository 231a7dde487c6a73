package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; each worker owns its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded by seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// RandomInRange returns a random float32 in [min, max)
func RandomInRange(sampler Sampler, minVal, maxVal float32) float32 {
	return minVal + (maxVal-minVal)*sampler.Get1D()
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere.
// Points are drawn from the [-1,1] cube and rejected until they fall inside the unit ball.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := NewVec3(
			RandomInRange(sampler, -1, 1),
			RandomInRange(sampler, -1, 1),
			RandomInRange(sampler, -1, 1),
		)
		lengthSquared := p.LengthSquared()
		// The lower bound keeps the normalization finite
		if lengthSquared > 1e-12 && lengthSquared <= 1.0 {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in the z=0 unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(RandomInRange(sampler, -1, 1), RandomInRange(sampler, -1, 1), 0)
		// Accept if inside unit disk
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}
