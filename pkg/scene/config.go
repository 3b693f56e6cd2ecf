package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

// Vec3 converts the array to a core.Vec3
func (v Vec3Cfg) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Color converts the array to a core.Color
func (v Vec3Cfg) Color() core.Color {
	return core.NewColor(v[0], v[1], v[2])
}

type CameraCfg struct {
	Center         *Vec3Cfg `json:"center,omitempty"`
	Width          int      `json:"width,omitempty"`
	AspectRatio    float64  `json:"aspectRatio,omitempty"`
	ViewportHeight float64  `json:"viewportHeight,omitempty"`
	VFov           float64  `json:"vfov,omitempty"`
	FocalLength    float64  `json:"focalLength,omitempty"`
}

type SamplingCfg struct {
	SamplesPerPixel int     `json:"samplesPerPixel,omitempty"`
	MaxDepth        int     `json:"maxDepth,omitempty"`
	KillThreshold   float64 `json:"killThreshold,omitempty"`
	Seed            int64   `json:"seed,omitempty"`
}

type BackgroundCfg struct {
	Bottom *Vec3Cfg `json:"bottom,omitempty"`
	Top    *Vec3Cfg `json:"top,omitempty"`
}

type MaterialCfg struct {
	Type            string   `json:"type"` // "diffuse", "reflective" or "dielectric"
	Absorb          *Vec3Cfg `json:"absorb,omitempty"`
	Roughness       float64  `json:"roughness,omitempty"`
	RefractiveIndex float64  `json:"refractiveIndex,omitempty"`
	Fresnel         bool     `json:"fresnel,omitempty"`
	Clamp           string   `json:"clamp,omitempty"` // "attenuate" (default) or "override"
}

type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// PlaneCfg describes a plane by its normal and either a point on it or its distance from the origin
type PlaneCfg struct {
	Normal   Vec3Cfg  `json:"normal"`
	Point    *Vec3Cfg `json:"point,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
	Material string   `json:"material"`
}

// Config is the on-disk JSON scene description
type Config struct {
	Camera     CameraCfg              `json:"camera"`
	Sampling   SamplingCfg            `json:"sampling"`
	Background BackgroundCfg          `json:"background"`
	Materials  map[string]MaterialCfg `json:"materials"`
	Spheres    []SphereCfg            `json:"spheres,omitempty"`
	Planes     []PlaneCfg             `json:"planes,omitempty"`
}

// LoadFile reads a JSON scene file and builds the scene
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	return cfg.Build()
}

// Build validates the configuration, fills in defaults and assembles the scene
func (c Config) Build() (*Scene, error) {
	cameraConfig, err := c.Camera.build()
	if err != nil {
		return nil, err
	}
	samplingConfig, err := c.Sampling.build()
	if err != nil {
		return nil, err
	}

	s := NewScene(cameraConfig, samplingConfig)
	if c.Background.Bottom != nil {
		s.Background.Bottom = c.Background.Bottom.Color()
	}
	if c.Background.Top != nil {
		s.Background.Top = c.Background.Top.Color()
	}

	// Build materials in name order so errors are reported deterministically
	names := make([]string, 0, len(c.Materials))
	for name := range c.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]material.Material, len(c.Materials))
	for _, name := range names {
		m, err := c.Materials[name].build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	for i, sc := range c.Spheres {
		m, ok := materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w %q", i, ErrUnknownMaterial, sc.Material)
		}
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: %w: radius must be > 0, got %f", i, ErrInvalidSphere, sc.Radius)
		}
		s.Add(geometry.NewSphere(sc.Center.Vec3(), sc.Radius, m))
	}

	for i, pc := range c.Planes {
		m, ok := materials[pc.Material]
		if !ok {
			return nil, fmt.Errorf("plane %d: %w %q", i, ErrUnknownMaterial, pc.Material)
		}
		normal := pc.Normal.Vec3()
		if normal.LengthSquared() == 0 {
			return nil, fmt.Errorf("plane %d: %w: normal must be non-zero", i, ErrInvalidPlane)
		}
		switch {
		case pc.Point != nil && pc.Distance != nil:
			return nil, fmt.Errorf("plane %d: %w: set either point or distance, not both", i, ErrInvalidPlane)
		case pc.Point != nil:
			s.Add(geometry.NewPlane(normal, pc.Point.Vec3(), m))
		case pc.Distance != nil:
			s.Add(geometry.NewPlaneFromDistance(normal.Normalize(), *pc.Distance, m))
		default:
			return nil, fmt.Errorf("plane %d: %w: point or distance is required", i, ErrInvalidPlane)
		}
	}

	return s, nil
}

func (c CameraCfg) build() (geometry.CameraConfig, error) {
	override := geometry.CameraConfig{
		Width:          c.Width,
		AspectRatio:    c.AspectRatio,
		ViewportHeight: c.ViewportHeight,
		VFov:           c.VFov,
		FocalLength:    c.FocalLength,
	}
	if c.Center != nil {
		override.Center = c.Center.Vec3()
	}
	config := geometry.MergeCameraConfig(geometry.DefaultCameraConfig(), override)

	if config.Width < 0 || config.AspectRatio < 0 || config.ViewportHeight < 0 || config.FocalLength < 0 {
		return config, fmt.Errorf("%w: dimensions must be positive: %+v", ErrInvalidCamera, config)
	}
	if config.VFov < 0 || config.VFov >= 180 {
		return config, fmt.Errorf("%w: vfov must be in [0, 180), got %f", ErrInvalidCamera, config.VFov)
	}
	if config.ImageHeight() < 1 {
		return config, fmt.Errorf("%w: width %d gives an empty image at aspect ratio %f", ErrInvalidCamera, config.Width, config.AspectRatio)
	}
	return config, nil
}

func (c SamplingCfg) build() (SamplingConfig, error) {
	config := MergeSamplingConfig(DefaultSamplingConfig(), SamplingConfig{
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		KillThreshold:   c.KillThreshold,
		Seed:            c.Seed,
	})
	if config.SamplesPerPixel < 0 || config.MaxDepth < 0 || config.KillThreshold < 0 {
		return config, fmt.Errorf("%w: values must not be negative: %+v", ErrInvalidSampling, config)
	}
	return config, nil
}

func (c MaterialCfg) build() (material.Material, error) {
	absorb := core.White
	if c.Absorb != nil {
		absorb = c.Absorb.Color()
	}
	if absorb.R < 0 || absorb.G < 0 || absorb.B < 0 {
		return nil, fmt.Errorf("%w: absorb must not be negative", ErrInvalidMaterial)
	}
	if c.Roughness < 0 || c.Roughness > 1 {
		return nil, fmt.Errorf("%w: roughness must be in [0, 1], got %f", ErrInvalidMaterial, c.Roughness)
	}

	clamp, err := parseClampPolicy(c.Clamp)
	if err != nil {
		return nil, err
	}

	switch c.Type {
	case "diffuse":
		return material.NewDiffuse(absorb), nil
	case "reflective":
		m := material.NewReflective(absorb, c.Roughness)
		m.Clamp = clamp
		return m, nil
	case "dielectric":
		if c.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("%w: refractiveIndex must be > 0, got %f", ErrInvalidMaterial, c.RefractiveIndex)
		}
		return &material.Dielectric{
			Absorb:          absorb,
			Roughness:       c.Roughness,
			RefractiveIndex: c.RefractiveIndex,
			Fresnel:         c.Fresnel,
			Clamp:           clamp,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidMaterial, c.Type)
	}
}

func parseClampPolicy(name string) (material.ClampPolicy, error) {
	switch name {
	case "", "attenuate":
		return material.ClampAttenuate, nil
	case "override":
		return material.ClampOverride, nil
	default:
		return material.ClampAttenuate, fmt.Errorf("%w: unknown clamp policy %q", ErrInvalidMaterial, name)
	}
}
