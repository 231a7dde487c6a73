package scene

import (
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// It is populated once and read concurrently during rendering.
type Scene struct {
	Camera         *geometry.Camera
	World          *geometry.HittableList
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// SamplingConfig contains the scene's recommended rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// newScene builds the camera from defaults merged with the first override, if any
func newScene(defaultCameraConfig geometry.CameraConfig, sampling SamplingConfig, cameraOverrides []geometry.CameraConfig) *Scene {
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          geometry.NewHittableList(),
		SamplingConfig: sampling,
		CameraConfig:   cameraConfig,
	}
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
