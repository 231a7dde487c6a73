package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Batches        int           // Number of work batches
	Workers        int           // Number of workers that rendered them
	Seed           int64         // Base seed the batches were derived from
	Elapsed        time.Duration // Wall time of the render
}

// BatchStats contains statistics for a single rendered batch
type BatchStats struct {
	Pixels  int
	Samples int
}

func (s *RenderStats) addBatch(batch BatchStats) {
	s.TotalPixels += batch.Pixels
	s.TotalSamples += batch.Samples
}

func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}
