package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

func writeSceneFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	return path
}

func TestLoadFile_BuildsScene(t *testing.T) {
	path := writeSceneFile(t, `{
		"camera": {"width": 200, "aspectRatio": 2, "focalLength": 1.5},
		"sampling": {"samplesPerPixel": 8, "maxDepth": 5, "seed": 3},
		"background": {"top": [0.2, 0.3, 0.4]},
		"materials": {
			"grey": {"type": "diffuse", "absorb": [0.5, 0.5, 0.5]},
			"mirror": {"type": "reflective", "absorb": [0.9, 0.9, 0.9], "roughness": 0.1, "clamp": "override"},
			"glass": {"type": "dielectric", "refractiveIndex": 1.5, "fresnel": true}
		},
		"spheres": [
			{"center": [0, 0, -1], "radius": 0.5, "material": "grey"},
			{"center": [1, 0, -1], "radius": 0.25, "material": "glass"}
		],
		"planes": [
			{"normal": [0, 2, 0], "point": [0, -0.5, 0], "material": "mirror"},
			{"normal": [0, 0, 1], "distance": -10, "material": "grey"}
		]
	}`)

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	width, height := s.ImageSize()
	if width != 200 || height != 100 {
		t.Errorf("Expected 200x100, got %dx%d", width, height)
	}
	if s.CameraConfig.FocalLength != 1.5 || s.CameraConfig.ViewportHeight != 2.0 {
		t.Errorf("Camera defaults/overrides wrong: %+v", s.CameraConfig)
	}
	if s.SamplingConfig.SamplesPerPixel != 8 || s.SamplingConfig.MaxDepth != 5 || s.SamplingConfig.Seed != 3 {
		t.Errorf("Sampling overrides wrong: %+v", s.SamplingConfig)
	}
	if math.Abs(s.SamplingConfig.KillThreshold-1.0/255.0) > 1e-15 {
		t.Errorf("Expected default kill threshold, got %f", s.SamplingConfig.KillThreshold)
	}
	if s.Background.Bottom != core.White || s.Background.Top != core.NewColor(0.2, 0.3, 0.4) {
		t.Errorf("Background wrong: %+v", s.Background)
	}
	if len(s.Shapes) != 4 {
		t.Fatalf("Expected 4 shapes, got %d", len(s.Shapes))
	}

	ground, ok := s.Shapes[2].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected third shape to be a plane, got %T", s.Shapes[2])
	}
	if ground.Normal != core.UnitY || ground.OriginDistance != -0.5 {
		t.Errorf("Plane from point wrong: %+v", ground)
	}
	mirror, ok := ground.Material.(*material.Reflective)
	if !ok || mirror.Clamp != material.ClampOverride || mirror.Roughness != 0.1 {
		t.Errorf("Mirror material wrong: %+v", ground.Material)
	}

	glassSphere := s.Shapes[1].(*geometry.Sphere)
	glass, ok := glassSphere.Material.(*material.Dielectric)
	if !ok || !glass.Fresnel || glass.Absorb != core.White {
		t.Errorf("Glass material wrong: %+v", glassSphere.Material)
	}
}

func TestLoadFile_Validation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		expected error
	}{
		{
			name:     "unknown material reference",
			contents: `{"materials": {}, "spheres": [{"center": [0,0,-1], "radius": 1, "material": "nope"}]}`,
			expected: ErrUnknownMaterial,
		},
		{
			name:     "non-positive radius",
			contents: `{"materials": {"m": {"type": "diffuse"}}, "spheres": [{"center": [0,0,-1], "radius": 0, "material": "m"}]}`,
			expected: ErrInvalidSphere,
		},
		{
			name:     "zero plane normal",
			contents: `{"materials": {"m": {"type": "diffuse"}}, "planes": [{"normal": [0,0,0], "distance": 1, "material": "m"}]}`,
			expected: ErrInvalidPlane,
		},
		{
			name:     "plane without position",
			contents: `{"materials": {"m": {"type": "diffuse"}}, "planes": [{"normal": [0,1,0], "material": "m"}]}`,
			expected: ErrInvalidPlane,
		},
		{
			name:     "unknown material type",
			contents: `{"materials": {"m": {"type": "velvet"}}}`,
			expected: ErrInvalidMaterial,
		},
		{
			name:     "roughness out of range",
			contents: `{"materials": {"m": {"type": "reflective", "roughness": 2}}}`,
			expected: ErrInvalidMaterial,
		},
		{
			name:     "dielectric without index",
			contents: `{"materials": {"m": {"type": "dielectric"}}}`,
			expected: ErrInvalidMaterial,
		},
		{
			name:     "unknown clamp policy",
			contents: `{"materials": {"m": {"type": "reflective", "clamp": "bounce"}}}`,
			expected: ErrInvalidMaterial,
		},
		{
			name:     "negative width",
			contents: `{"camera": {"width": -1}}`,
			expected: ErrInvalidCamera,
		},
		{
			name:     "vfov too wide",
			contents: `{"camera": {"vfov": 180}}`,
			expected: ErrInvalidCamera,
		},
		{
			name:     "negative samples",
			contents: `{"sampling": {"samplesPerPixel": -4}}`,
			expected: ErrInvalidSampling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeSceneFile(t, tt.contents))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	if _, err := LoadFile(writeSceneFile(t, `{"camera": `)); err == nil {
		t.Error("Expected parse error for malformed JSON")
	}
}
