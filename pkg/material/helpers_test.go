package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// TestSampler provides predetermined values for testing
type TestSampler struct {
	values []float32
	index  int
}

// NewTestSampler creates a sampler that replays values in order
func NewTestSampler(values ...float32) *TestSampler {
	return &TestSampler{values: values}
}

// Get1D returns the next predetermined value
func (t *TestSampler) Get1D() float32 {
	if t.index >= len(t.values) {
		panic("TestSampler ran out of values")
	}
	val := t.values[t.index]
	t.index++
	return val
}

func vecClose(a, b core.Vec3, tolerance float32) bool {
	return a.Subtract(b).Length() <= tolerance
}
