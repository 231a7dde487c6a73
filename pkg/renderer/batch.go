package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Camera maps viewport coordinates to world-space rays
type Camera interface {
	GetRay(s, t float32, sampler core.Sampler) core.Ray
}

// Batch is a contiguous range [Start, End) of flat pixel indices
type Batch struct {
	Index int
	Start int
	End   int
}

// Len returns the number of pixels in the batch
func (b Batch) Len() int {
	return b.End - b.Start
}

// PartitionPixels splits totalPixels into contiguous batches of at most batchSize pixels
func PartitionPixels(totalPixels, batchSize int) []Batch {
	if totalPixels <= 0 || batchSize <= 0 {
		return nil
	}

	batches := make([]Batch, 0, (totalPixels+batchSize-1)/batchSize)
	for start := 0; start < totalPixels; start += batchSize {
		batches = append(batches, Batch{
			Index: len(batches),
			Start: start,
			End:   min(start+batchSize, totalPixels),
		})
	}
	return batches
}

// BatchRenderer renders the pixels of a batch using an integrator
type BatchRenderer struct {
	world           geometry.Shape
	camera          Camera
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
}

// NewBatchRenderer creates a batch renderer for an image of the given size
func NewBatchRenderer(world geometry.Shape, camera Camera, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *BatchRenderer {
	return &BatchRenderer{
		world:           world,
		camera:          camera,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderBatch renders every pixel of batch into pixels, which holds exactly that range
func (br *BatchRenderer) RenderBatch(batch Batch, pixels []RGB, sampler core.Sampler) (BatchStats, error) {
	if len(pixels) != batch.Len() {
		return BatchStats{}, fmt.Errorf("batch %d covers %d pixels but was given %d", batch.Index, batch.Len(), len(pixels))
	}

	for index := batch.Start; index < batch.End; index++ {
		x := index % br.width
		y := index / br.width
		pixels[index-batch.Start] = br.samplePixel(x, y, sampler)
	}

	return BatchStats{
		Pixels:  batch.Len(),
		Samples: batch.Len() * br.samplesPerPixel,
	}, nil
}

// samplePixel estimates the color of the pixel at column x of output row y
func (br *BatchRenderer) samplePixel(x, y int, sampler core.Sampler) RGB {
	// Output row 0 is the top of the image, viewport t=0 is the bottom
	j := br.height - 1 - y
	uScale := 1.0 / float32(max(1, br.width-1))
	vScale := 1.0 / float32(max(1, br.height-1))

	colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}
	for sample := 0; sample < br.samplesPerPixel; sample++ {
		var du, dv float32
		// A lone sample has nothing to antialias and stays on the pixel grid
		if br.samplesPerPixel > 1 {
			du, dv = sampler.Get1D(), sampler.Get1D()
		}

		s := (float32(x) + du) * uScale
		t := (float32(j) + dv) * vScale

		ray := br.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(br.integrator.RayColor(ray, br.world, sampler))
	}

	return PostprocessColor(colorAccum, br.samplesPerPixel)
}
