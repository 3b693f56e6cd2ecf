package integrator

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/scene"
)

// PathTracingIntegrator follows a single path per camera ray, multiplying the ray's
// carried color at every bounce until it escapes to the sky
type PathTracingIntegrator struct {
	shapes     []geometry.Shape
	background scene.Background
	config     scene.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(s *scene.Scene) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		shapes:     s.GetShapes(),
		background: s.Background,
		config:     s.SamplingConfig,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sampler core.Sampler) (core.Color, PathStats) {
	var stats PathStats

	for depth := pt.config.MaxDepth; ; depth-- {
		// Nothing this dim can still show up in an 8-bit pixel
		if ray.Color.MaxComponent() < pt.config.KillThreshold {
			stats.Termination = TerminatedWeight
			return ray.Color, stats
		}

		// If we've exceeded the ray bounce limit, no more light is gathered
		if depth <= 0 {
			stats.Termination = TerminatedDepth
			return core.Black, stats
		}

		hit, isHit := geometry.NearestHit(pt.shapes, ray)
		if !isHit {
			stats.Termination = TerminatedSky
			return ray.Color.Attenuate(pt.background.Sample(ray.Direction)), stats
		}

		ray = hit.Material.Scatter(ray, *hit, sampler).Scattered
		stats.Bounces++
	}
}
