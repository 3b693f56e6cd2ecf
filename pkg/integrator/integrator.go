package integrator

import (
	"fmt"

	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/scene"
)

// Termination records why a path stopped
type Termination int

const (
	TerminatedSky    Termination = iota // Ray escaped and picked up the background
	TerminatedDepth                     // Bounce budget exhausted
	TerminatedWeight                    // Carried color fell below the kill threshold
)

func (t Termination) String() string {
	switch t {
	case TerminatedSky:
		return "sky"
	case TerminatedDepth:
		return "depth"
	case TerminatedWeight:
		return "weight"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

// PathStats describes a single traced path
type PathStats struct {
	Bounces     int // Number of scatter events
	Termination Termination
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray. The ray carries its own
	// accumulated color, which is White for a fresh camera ray.
	RayColor(ray core.Ray, sampler core.Sampler) (core.Color, PathStats)
}

// Names of the available integrators
const (
	PathTracing = "path"
	Normals     = "normals"
)

// NewIntegrator creates the named integrator for a scene
func NewIntegrator(name string, s *scene.Scene) (Integrator, error) {
	switch name {
	case PathTracing, "":
		return NewPathTracingIntegrator(s), nil
	case Normals:
		return NewNormalsIntegrator(s), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q (expected %q or %q)", name, PathTracing, Normals)
	}
}
