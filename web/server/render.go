package server

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string `json:"scene"`           // Scene name (e.g., "test")
	Width           int    `json:"width"`           // Image width
	Height          int    `json:"height"`          // Image height
	SamplesPerPixel int    `json:"samplesPerPixel"` // Rays per pixel
	MaxDepth        int    `json:"maxDepth"`        // Maximum bounce depth
	Seed            int64  `json:"seed"`            // Random seed, 0 seeds from the clock
}

// handleRender renders a scene and responds with the PNG image
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	aspect := geometry.CameraConfig{AspectRatio: float32(req.Width) / float32(req.Height)}
	sceneObj, err := scene.Create(req.Scene, seed, aspect)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	config := renderer.DefaultConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.SamplesPerPixel = req.SamplesPerPixel
	config.MaxDepth = req.MaxDepth
	config.Seed = seed

	renderID := fmt.Sprintf("%s-%d", req.Scene, seed)
	raytracer := renderer.NewRaytracer(sceneObj.World, sceneObj.Camera, config, NewWebLogger(renderID, c.Logger()))
	framebuffer, stats, err := raytracer.Render()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	var buf bytes.Buffer
	if err := output.WritePNG(&buf, framebuffer); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
	}

	c.Response().Header().Set("X-Render-Seed", strconv.FormatInt(seed, 10))
	c.Response().Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// parseRenderRequest parses and validates query parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "test"}
	if name := values.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, 16, 1200); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 225, 16, 1200); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "samples", 10, 1, 1000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", 10, 1, 100); err != nil {
		return nil, err
	}
	if value := values.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
	}

	if req.Width*req.Height > 800*600 && req.SamplesPerPixel > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
