package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Raytracer renders a world through a camera into a framebuffer
type Raytracer struct {
	world      geometry.Shape
	camera     Camera
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using a path tracing integrator bounded by config.MaxDepth
func NewRaytracer(world geometry.Shape, camera Camera, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDiscardLogger()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Config returns the raytracer's configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render traces every pixel and returns the finished framebuffer.
// The world and its materials must not change while Render runs.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}

	seed := rt.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	framebuffer := NewFramebuffer(rt.config.Width, rt.config.Height)
	batches := PartitionPixels(len(framebuffer.Pixels), rt.config.BatchSize)
	batchRenderer := NewBatchRenderer(rt.world, rt.camera, rt.integrator,
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel)

	workerPool, err := NewWorkerPool(batchRenderer, rt.config.NumWorkers, len(batches))
	if err != nil {
		return nil, RenderStats{}, err
	}

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (%d batches, %d workers)...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, len(batches), workerPool.GetNumWorkers())

	startTime := time.Now()
	workerPool.Start()
	for _, batch := range batches {
		workerPool.SubmitTask(BatchTask{
			Batch:  batch,
			Pixels: framebuffer.Span(batch.Start, batch.End),
			Seed:   seed + int64(batch.Index),
		})
	}
	workerPool.Stop()

	stats := RenderStats{
		Batches: len(batches),
		Workers: workerPool.GetNumWorkers(),
		Seed:    seed,
	}
	for {
		result, ok := workerPool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			return nil, RenderStats{}, fmt.Errorf("batch %d failed: %w", result.TaskID, result.Error)
		}
		stats.addBatch(result.Stats)
	}
	stats.Elapsed = time.Since(startTime)
	stats.finalize()

	rt.logger.Printf("Render completed in %v\n", stats.Elapsed)
	return framebuffer, stats, nil
}
