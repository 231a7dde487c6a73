package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`        // Scene name used on the command line and API
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Short description
}

var builtinScenes = []SceneInfo{
	{Name: "test", DisplayName: "Three Spheres", Description: "Hollow glass, diffuse and fuzzy gold spheres on a yellow ground"},
	{Name: "random", DisplayName: "Random Spheres", Description: "Hundreds of small random spheres around three large ones"},
	{Name: "ground", DisplayName: "Ground", Description: "A single diffuse ground sphere under the sky"},
	{Name: "mirror", DisplayName: "Mirrors", Description: "Perfect mirror spheres on a mirror ground"},
}

// ListScenes returns the built-in scenes
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	return scenes
}

// Create builds the named scene. seed drives the random layout where the scene has one.
func Create(name string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	switch name {
	case "test":
		return NewTestScene(cameraOverrides...), nil
	case "random":
		return NewRandomScene(rand.New(rand.NewSource(seed)), cameraOverrides...), nil
	case "ground":
		return NewGroundScene(cameraOverrides...), nil
	case "mirror":
		return NewMirrorScene(cameraOverrides...), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", name)
	}
}
