package material

import (
	"math"

	"github.com/df07/go-sky-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass. Transmitted rays keep
// their color; only reflections off the surface are tinted by Absorb.
type Dielectric struct {
	Absorb          core.Color
	Roughness       float64 // Fuzz applied when the ray is reflected
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
	Fresnel         bool    // Also reflect with Schlick probability, not only on total internal reflection
	Clamp           ClampPolicy
}

// NewDielectric creates a new untinted dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{Absorb: core.White, RefractiveIndex: refractiveIndex}
}

// Scatter refracts the ray through the surface, reflecting instead on total internal reflection
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	unitDirection := rayIn.Direction.Normalize()

	// Work with the normal on the incoming side
	normal := hit.Normal
	refractionRatio := 1.0 / d.RefractiveIndex // entering: air to material
	if unitDirection.Dot(normal) > 0 {
		normal = normal.Negate()
		refractionRatio = d.RefractiveIndex // exiting: material to air
	}

	cosIncident := math.Min(-unitDirection.Dot(normal), 1.0)
	sin2Transmitted := refractionRatio * refractionRatio * (1.0 - cosIncident*cosIncident)

	if sin2Transmitted > 1.0 || (d.Fresnel && Reflectance(cosIncident, refractionRatio) > sampler.Get1D()) {
		mirror := Reflective{Absorb: d.Absorb, Roughness: d.Roughness, Clamp: d.Clamp}
		facing := hit
		facing.Normal = normal
		return mirror.Scatter(rayIn, facing, sampler)
	}

	direction := Refract(unitDirection, normal, refractionRatio)
	return ScatterResult{
		Scattered:   core.NewColoredRay(hit.Point, direction, rayIn.Color),
		Attenuation: core.White,
	}
}

// Refract bends the unit direction uv through a surface with unit normal n facing
// uv, for the ratio etaiOverEtat of incident to transmitted refractive index.
// It assumes no total internal reflection occurs.
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosIncident := math.Min(-uv.Dot(n), 1.0)
	sin2Transmitted := etaiOverEtat * etaiOverEtat * (1.0 - cosIncident*cosIncident)
	cosTransmitted := math.Sqrt(math.Max(0, 1.0-sin2Transmitted))
	return uv.Multiply(etaiOverEtat).Add(n.Multiply(etaiOverEtat*cosIncident - cosTransmitted))
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
