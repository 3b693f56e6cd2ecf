package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"single sphere scene", "single-sphere", false},
		{"glass scene", "glass", false},
		{"mirror corridor scene", "mirror-corridor", false},
		{"scene file", "../../scenes/three-spheres.json", false},

		{"unknown scene", "nonexistent", true},
		{"missing scene file", "../../scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CreateScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if len(s.Shapes) == 0 {
				t.Errorf("Scene '%s' should have shapes", tt.sceneType)
			}
			if s.Camera == nil {
				t.Errorf("Scene '%s' should have a camera", tt.sceneType)
			}
			width, height := s.ImageSize()
			if width <= 0 || height <= 0 {
				t.Errorf("Scene '%s' has invalid size %dx%d", tt.sceneType, width, height)
			}
		})
	}
}

func TestCreateScene_UnknownIsSentinel(t *testing.T) {
	_, err := CreateScene("nonexistent")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestListScenes_SortedAndCreatable(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtinScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtinScenes), len(scenes))
	}

	for i, info := range scenes {
		if i > 0 && scenes[i-1].ID >= info.ID {
			t.Errorf("Scenes not sorted: %q before %q", scenes[i-1].ID, info.ID)
		}
		if _, err := CreateScene(info.ID); err != nil {
			t.Errorf("Listed scene %q could not be created: %v", info.ID, err)
		}
	}
}

func TestBackground_Sample(t *testing.T) {
	bg := DefaultBackground()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up", core.NewVec3(0, 5, 0), core.SkyBlue},
		{"straight down", core.NewVec3(0, -1, 0), core.White},
		{"horizon", core.NewVec3(0, 0, -3), core.Blend(core.White, core.SkyBlue, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bg.Sample(tt.direction)
			if math.Abs(got.R-tt.expected.R) > 1e-12 ||
				math.Abs(got.G-tt.expected.G) > 1e-12 ||
				math.Abs(got.B-tt.expected.B) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMergeSamplingConfig(t *testing.T) {
	base := DefaultSamplingConfig()
	merged := MergeSamplingConfig(base, SamplingConfig{SamplesPerPixel: 4, Seed: 9})

	if merged.SamplesPerPixel != 4 || merged.Seed != 9 {
		t.Errorf("Overrides not applied: %+v", merged)
	}
	if merged.MaxDepth != base.MaxDepth || merged.KillThreshold != base.KillThreshold {
		t.Errorf("Zero overrides should keep base values: %+v", merged)
	}
}

func TestScene_Override(t *testing.T) {
	s := NewDefaultScene()
	s.Override(geometry.CameraConfig{Width: 160}, SamplingConfig{SamplesPerPixel: 2})

	width, height := s.ImageSize()
	if width != 160 || height != 90 {
		t.Errorf("Expected 160x90, got %dx%d", width, height)
	}
	if s.SamplingConfig.SamplesPerPixel != 2 || s.SamplingConfig.MaxDepth != 50 {
		t.Errorf("Unexpected sampling config %+v", s.SamplingConfig)
	}
	if s.Camera.AspectRatio() != s.CameraConfig.AspectRatio {
		t.Errorf("Camera was not rebuilt from the merged config")
	}
}

func TestScene_EnableFresnel(t *testing.T) {
	glass := material.NewDielectric(1.5)
	s := NewScene(geometry.DefaultCameraConfig(), DefaultSamplingConfig())
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDiffuse(core.White)),
	)

	if changed := s.EnableFresnel(); changed != 1 {
		t.Errorf("Expected one shared dielectric to change, got %d", changed)
	}
	if !glass.Fresnel {
		t.Error("Expected Fresnel to be enabled")
	}
}
