package scene

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is read-only once built
// and may be shared by any number of render workers.
type Scene struct {
	Camera         *geometry.Camera
	Shapes         []geometry.Shape // Objects in the scene, scanned in order
	Background     Background
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// Background is the vertical sky gradient that lights the scene
type Background struct {
	Bottom core.Color // Color for rays pointing straight down
	Top    core.Color // Color for rays pointing straight up
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{Bottom: core.White, Top: core.SkyBlue}
}

// Sample returns the sky color seen along direction
func (b Background) Sample(direction core.Vec3) core.Color {
	t := (direction.Normalize().Y + 1.0) / 2.0
	return core.Blend(b.Bottom, b.Top, t)
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	KillThreshold   float64 // Carried color below which a path stops
	Seed            int64   // Global seed; each scanline derives its own stream
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		KillThreshold:   1.0 / 255.0,
		Seed:            42,
	}
}

// MergeSamplingConfig applies the non-zero fields of override on top of base
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.KillThreshold != 0 {
		result.KillThreshold = override.KillThreshold
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// NewScene creates an empty scene around a camera configuration
func NewScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		Shapes:         make([]geometry.Shape, 0),
		Background:     DefaultBackground(),
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// GetShapes returns the shapes in scan order
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// ImageSize returns the output dimensions in pixels
func (s *Scene) ImageSize() (width, height int) {
	return s.CameraConfig.Width, s.CameraConfig.ImageHeight()
}

// Override merges the non-zero camera and sampling settings into the scene and
// rebuilds the camera
func (s *Scene) Override(cameraOverride geometry.CameraConfig, samplingOverride SamplingConfig) {
	s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, cameraOverride)
	s.SamplingConfig = MergeSamplingConfig(s.SamplingConfig, samplingOverride)
	s.Camera = geometry.NewCamera(s.CameraConfig)
}

// EnableFresnel turns on Schlick reflection for every dielectric in the scene and
// returns how many distinct materials were changed
func (s *Scene) EnableFresnel() int {
	changed := make(map[*material.Dielectric]bool)
	for _, shape := range s.Shapes {
		if d, ok := shape.GetMaterial().(*material.Dielectric); ok && !changed[d] {
			d.Fresnel = true
			changed[d] = true
		}
	}
	return len(changed)
}
