package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sky-pathtracer/pkg/core"
)

func TestCamera_DefaultViewport(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	tests := []struct {
		name      string
		u, v      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-16.0/9.0, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(16.0/9.0, 1, -1)},
		{"jitter outside", 1.01, -0.01, core.NewVec3(1.01*32.0/9.0-16.0/9.0, -1.02, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)

			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Expected origin at the eye, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
			if ray.Color != core.White {
				t.Errorf("Camera rays should carry white, got %v", ray.Color)
			}
		})
	}
}

func TestCamera_VFovOverridesViewportHeight(t *testing.T) {
	config := DefaultCameraConfig()
	config.VFov = 90
	config.FocalLength = 2
	camera := NewCamera(config)

	// tan(45°) * focal = 2, so the top edge sits at y = 2 on the viewport
	ray := camera.GetRay(0.5, 1)
	if math.Abs(ray.Direction.Y-2) > 1e-9 || math.Abs(ray.Direction.Z+2) > 1e-9 {
		t.Errorf("Expected top edge direction (0, 2, -2), got %v", ray.Direction)
	}
}

func TestCamera_OffsetCenter(t *testing.T) {
	config := DefaultCameraConfig()
	config.Center = core.NewVec3(1, 2, 3)
	camera := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5)
	if ray.Origin != config.Center {
		t.Errorf("Expected origin %v, got %v", config.Center, ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected direction (0,0,-1), got %v", ray.Direction)
	}
}

func TestCameraConfig_ImageHeightTruncates(t *testing.T) {
	tests := []struct {
		width       int
		aspectRatio float64
		expected    int
	}{
		{400, 16.0 / 9.0, 225},
		{700, 16.0 / 9.0, 393},
		{100, 1.0, 100},
		{101, 2.0, 50},
	}

	for _, tt := range tests {
		config := CameraConfig{Width: tt.width, AspectRatio: tt.aspectRatio}
		if got := config.ImageHeight(); got != tt.expected {
			t.Errorf("Width %d aspect %f: expected height %d, got %d", tt.width, tt.aspectRatio, tt.expected, got)
		}
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 800, VFov: 60})

	if merged.Width != 800 || merged.VFov != 60 {
		t.Errorf("Overrides not applied: %+v", merged)
	}
	if merged.AspectRatio != base.AspectRatio || merged.FocalLength != base.FocalLength {
		t.Errorf("Zero overrides should keep base values: %+v", merged)
	}
}
