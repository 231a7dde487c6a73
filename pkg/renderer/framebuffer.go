package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RGB is a gamma-corrected pixel with channels in [0, 255]
type RGB [3]uint8

// Framebuffer is a row-major grid of pixels, top row first
type Framebuffer struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// At returns the pixel at column x of row y, where row 0 is the top of the image
func (fb *Framebuffer) At(x, y int) RGB {
	return fb.Pixels[y*fb.Width+x]
}

// Row returns the pixels of row y
func (fb *Framebuffer) Row(y int) []RGB {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// Span returns the pixels with flat indices in [start, end).
// The returned slice has its capacity capped so appends never spill into a neighbor's range.
func (fb *Framebuffer) Span(start, end int) []RGB {
	return fb.Pixels[start:end:end]
}

// PostprocessColor averages an accumulated sample sum, applies gamma 2 correction
// and quantizes each channel to [0, 255]
func PostprocessColor(colorSum core.Vec3, samples int) RGB {
	scale := 1.0 / float32(samples)
	return RGB{
		quantize(colorSum.X * scale),
		quantize(colorSum.Y * scale),
		quantize(colorSum.Z * scale),
	}
}

func quantize(linear float32) uint8 {
	// NaN and negative values map to black
	if !(linear > 0) {
		return 0
	}
	gamma := mgl32.Clamp(math32.Sqrt(linear), 0.0, 0.999)
	return uint8(256 * gamma)
}
