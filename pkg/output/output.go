// Package output encodes rendered framebuffers into image files.
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ToImage converts a framebuffer into an opaque RGBA image
func ToImage(fb *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x, p := range fb.Row(y) {
			img.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return img
}

// WritePPM writes the framebuffer as a plain-text PPM: a "P3" header with the
// dimensions and maximum channel value, then one pixel triple per line
func WritePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for _, p := range fb.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePNG encodes the framebuffer as PNG
func WritePNG(w io.Writer, fb *renderer.Framebuffer) error {
	return gg.NewContextForRGBA(ToImage(fb)).EncodePNG(w)
}

// Save writes the framebuffer to path, choosing the format from the extension (.png or .ppm)
func Save(path string, fb *renderer.Framebuffer) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := gg.SavePNG(path, ToImage(fb)); err != nil {
			return fmt.Errorf("failed to save PNG %s: %w", path, err)
		}
		return nil
	case ".ppm":
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := WritePPM(file, fb); err != nil {
			file.Close()
			return fmt.Errorf("failed to write PPM %s: %w", path, err)
		}
		return file.Close()
	default:
		return fmt.Errorf("unsupported file extension %q (supported: png, ppm)", filepath.Ext(path))
	}
}
