package material

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
)

// ClampPolicy selects the carried color when a fuzzed reflection points into the surface
type ClampPolicy int

const (
	// ClampAttenuate multiplies the incoming color by the absorb color, as for any other bounce
	ClampAttenuate ClampPolicy = iota
	// ClampOverride replaces the carried color with the absorb color
	ClampOverride
)

// String returns the policy name used in scene files
func (p ClampPolicy) String() string {
	switch p {
	case ClampOverride:
		return "override"
	default:
		return "attenuate"
	}
}

// Reflective represents a mirror-like material with optional fuzz
type Reflective struct {
	Absorb    core.Color
	Roughness float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
	Clamp     ClampPolicy
}

// NewReflective creates a new reflective material
func NewReflective(absorb core.Color, roughness float64) *Reflective {
	// Clamp roughness to valid range
	if roughness > 1.0 {
		roughness = 1.0
	}
	if roughness < 0.0 {
		roughness = 0.0
	}
	return &Reflective{Absorb: absorb, Roughness: roughness}
}

// Scatter mirrors the incoming direction about the normal and perturbs it by the roughness
func (r *Reflective) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	direction := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if r.Roughness > 0 {
		direction = direction.Add(core.RandomInUnitSphere(sampler).Multiply(r.Roughness))
	}

	// A fuzzed ray must not sink into the surface
	if direction.Dot(hit.Normal) < 0 {
		color := rayIn.Color.Attenuate(r.Absorb)
		if r.Clamp == ClampOverride {
			color = r.Absorb
		}
		return ScatterResult{
			Scattered:   core.NewColoredRay(hit.Point, hit.Normal, color),
			Attenuation: r.Absorb,
		}
	}

	return ScatterResult{
		Scattered:   core.NewColoredRay(hit.Point, direction, rayIn.Color.Attenuate(r.Absorb)),
		Attenuation: r.Absorb,
	}
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
