package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	width     int // 0 keeps the scene's default width
	height    int // 0 derives the height from the scene's aspect ratio
	samples   int // 0 keeps the scene's default
	maxDepth  int // 0 keeps the scene's default
	workers   int
	batchSize int
	seed      int64
	output    string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.sceneType, "scene", "test", "Scene type: test, random, ground or mirror")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = keep scene aspect ratio)")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.maxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.IntVar(&opts.workers, "workers", renderer.DefaultWorkerCount(), "Number of parallel workers")
	flag.IntVar(&opts.batchSize, "batch", renderer.DefaultConfig().BatchSize, "Pixels per work batch")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed (0 = seed from the clock)")
	flag.StringVar(&opts.output, "out", "", "Output file, .png or .ppm (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func showHelp() {
	fmt.Println("Go Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -out is given")
}

// run renders the selected scene and writes the image
func run(opts options, logger core.Logger) error {
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	selectedScene, config, err := createScene(opts)
	if err != nil {
		return err
	}

	logger.Printf("Scene %q: %d primitives, seed %d\n", opts.sceneType, selectedScene.GetPrimitiveCount(), config.Seed)

	raytracer := renderer.NewRaytracer(selectedScene.World, selectedScene.Camera, config, logger)
	framebuffer, stats, err := raytracer.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Traced %d samples (%.1f per pixel) in %d batches\n",
		stats.TotalSamples, stats.AverageSamples, stats.Batches)

	filename := opts.output
	if filename == "" {
		filename = defaultOutputPath(opts.sceneType, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := output.Save(filename, framebuffer); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the scene and a render configuration from the scene's defaults and the
// command line. The camera aspect ratio always matches the final image size.
func createScene(opts options) (*scene.Scene, renderer.Config, error) {
	defaults, err := scene.Create(opts.sceneType, opts.seed)
	if err != nil {
		return nil, renderer.Config{}, err
	}

	config := renderer.DefaultConfig()
	config.Width, config.Height = defaults.SamplingConfig.Width, defaults.SamplingConfig.Height
	config.SamplesPerPixel = defaults.SamplingConfig.SamplesPerPixel
	config.MaxDepth = defaults.SamplingConfig.MaxDepth

	if opts.width > 0 {
		config.Width = opts.width
		if opts.height <= 0 {
			config.Height = max(1, opts.width*defaults.SamplingConfig.Height/defaults.SamplingConfig.Width)
		}
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.samples > 0 {
		config.SamplesPerPixel = opts.samples
	}
	if opts.maxDepth > 0 {
		config.MaxDepth = opts.maxDepth
	}
	config.NumWorkers = opts.workers
	config.BatchSize = opts.batchSize
	config.Seed = opts.seed

	if err := config.Validate(); err != nil {
		return nil, renderer.Config{}, err
	}

	aspect := geometry.CameraConfig{AspectRatio: float32(config.Width) / float32(config.Height)}
	selectedScene, err := scene.Create(opts.sceneType, opts.seed, aspect)
	if err != nil {
		return nil, renderer.Config{}, err
	}
	return selectedScene, config, nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneType string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s.png", timestamp))
}
