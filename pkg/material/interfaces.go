package material

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
)

// Material interface for surfaces that redirect rays. Every interaction produces
// exactly one outgoing ray; energy loss is carried in the ray's color.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // Outgoing ray, carrying the attenuated color
	Attenuation core.Color // Absorb color applied at this bounce
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit normal at the intersection
	T        float64   // Parameter t along the ray
	Material Material  // Material of the hit object
}
