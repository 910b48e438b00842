package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned for scene names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Short description
}

type builtin struct {
	description string
	create      func() *Scene
}

var builtins = map[string]builtin{
	"default": {"Single sphere in front of the camera", NewDefaultScene},
	"ground":  {"Sphere resting on a large ground sphere", NewGroundScene},
	"plane":   {"Sphere resting on an infinite ground plane", NewPlaneScene},
	"classic": {"Unit sphere four units away, inverted shading, 800x800", NewClassicScene},
}

// New creates a fresh instance of the named built-in scene
func New(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.create(), nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by name
func ListScenes() []SceneInfo {
	names := Names()
	scenes := make([]SceneInfo, 0, len(names))
	for _, name := range names {
		scenes = append(scenes, SceneInfo{Name: name, Description: builtins[name].description})
	}
	return scenes
}
