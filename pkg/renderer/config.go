package renderer

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers
	BatchSize       int   // Pixels per work batch
	Seed            int64 // Base random seed, 0 picks one from the clock
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      DefaultWorkerCount(),
		BatchSize:       256,
	}
}

// DefaultWorkerCount returns the number of physical cores, or the logical CPU count
// when the host does not report physical cores
func DefaultWorkerCount() int {
	if count, err := cpu.Counts(false); err == nil && count > 0 {
		return count
	}
	return runtime.NumCPU()
}

// Validate reports the first configuration problem that would prevent a render
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	case c.NumWorkers <= 0:
		return fmt.Errorf("worker count must be positive, got %d", c.NumWorkers)
	case c.BatchSize <= 0:
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	return nil
}
