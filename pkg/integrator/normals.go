package integrator

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/scene"
)

// NormalsIntegrator shades the first hit by its surface normal. Useful for checking
// geometry and camera setup without waiting for a converged image.
type NormalsIntegrator struct {
	shapes     []geometry.Shape
	background scene.Background
}

// NewNormalsIntegrator creates a normal-shading integrator
func NewNormalsIntegrator(s *scene.Scene) *NormalsIntegrator {
	return &NormalsIntegrator{shapes: s.GetShapes(), background: s.Background}
}

// RayColor maps the normal at the first hit from [-1,1] to [0,1] per channel
func (n *NormalsIntegrator) RayColor(ray core.Ray, sampler core.Sampler) (core.Color, PathStats) {
	hit, isHit := geometry.NearestHit(n.shapes, ray)
	if !isHit {
		return n.background.Sample(ray.Direction), PathStats{Termination: TerminatedSky}
	}
	return core.FromUnit(hit.Normal), PathStats{Termination: TerminatedDepth}
}
