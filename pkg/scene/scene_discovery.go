package scene

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name passed to CreateScene
	Description string
	build       func() *Scene
}

var builtinScenes = []SceneInfo{
	{ID: "default", Description: "Matte and gold spheres with a glass ball on a ground plane", build: func() *Scene { return NewDefaultScene() }},
	{ID: "single-sphere", Description: "One grey diffuse sphere straight ahead of the camera", build: func() *Scene { return NewSingleSphereScene() }},
	{ID: "glass", Description: "Glass sphere between a matte and a mirror sphere", build: func() *Scene { return NewGlassScene() }},
	{ID: "mirror-corridor", Description: "Two facing mirrors that exercise the bounce cutoffs", build: func() *Scene { return NewMirrorCorridorScene() }},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// CreateScene returns a built-in scene by ID, or loads a scene file when the
// argument ends in .json
func CreateScene(nameOrPath string) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return LoadFile(nameOrPath)
	}

	for _, info := range builtinScenes {
		if info.ID == nameOrPath {
			return info.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, nameOrPath)
}
