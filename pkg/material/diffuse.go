package material

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
)

// Diffuse represents a matte (Lambertian) material
type Diffuse struct {
	Absorb core.Color
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(absorb core.Color) *Diffuse {
	return &Diffuse{Absorb: absorb}
}

// Scatter sends the ray towards normal + random unit vector, falling back to the
// normal itself when the two nearly cancel.
func (d *Diffuse) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewColoredRay(hit.Point, direction, rayIn.Color.Attenuate(d.Absorb)),
		Attenuation: d.Absorb,
	}
}
