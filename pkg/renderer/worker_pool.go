package renderer

import (
	"fmt"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BatchTask represents a batch rendering task for the worker pool
type BatchTask struct {
	Batch  Batch
	Pixels []RGB // The batch's own span of the framebuffer
	Seed   int64 // Seed for the batch's private random generator
}

// BatchResult contains the result from rendering a batch
type BatchResult struct {
	TaskID int
	Stats  BatchStats
	Error  error
}

// WorkerPool manages parallel batch rendering
type WorkerPool struct {
	taskQueue   chan BatchTask
	resultQueue chan BatchResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual batch rendering tasks
type Worker struct {
	ID          int
	renderer    *BatchRenderer
	taskQueue   chan BatchTask
	resultQueue chan BatchResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize bounds the number of queued tasks and undelivered results.
func NewWorkerPool(renderer *BatchRenderer, numWorkers, queueSize int) (*WorkerPool, error) {
	if numWorkers <= 0 {
		return nil, fmt.Errorf("worker pool needs at least one worker, got %d", numWorkers)
	}
	if queueSize < 0 {
		queueSize = 0
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BatchTask, queueSize),
		resultQueue: make(chan BatchResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp, nil
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to finish and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a batch task to the worker pool
func (wp *WorkerPool) SubmitTask(task BatchTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed batch result
func (wp *WorkerPool) GetResult() (BatchResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each batch owns its generator so workers never contend on one
		sampler := core.NewSeededSampler(task.Seed)

		// Batches cover disjoint spans of the framebuffer, so no locking is needed
		stats, err := w.renderer.RenderBatch(task.Batch, task.Pixels, sampler)

		w.resultQueue <- BatchResult{
			TaskID: task.Batch.Index,
			Stats:  stats,
			Error:  err,
		}
	}
}
