package geometry

import (
	"math"

	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

// smallestNormal is the smallest positive normal float64
const smallestNormal = 0x1p-1022

// Plane represents an infinite plane of points p with Normal·p = OriginDistance
type Plane struct {
	Normal         core.Vec3 // Unit normal
	OriginDistance float64   // Signed distance from the origin along Normal
	Material       material.Material
}

// NewPlane creates a plane through a point; the normal is normalized
func NewPlane(normal, pointInPlane core.Vec3, material material.Material) *Plane {
	unitNormal := normal.Normalize()
	return &Plane{
		Normal:         unitNormal,
		OriginDistance: pointInPlane.Dot(unitNormal),
		Material:       material,
	}
}

// NewPlaneFromDistance creates a plane from a unit normal and its distance from the origin
func NewPlaneFromDistance(unitNormal core.Vec3, originDistance float64, material material.Material) *Plane {
	return &Plane{
		Normal:         unitNormal,
		OriginDistance: originDistance,
		Material:       material,
	}
}

// Intersect tests if a ray intersects with the plane. Parallel rays divide by
// zero and are filtered out with every other non-finite or subnormal distance.
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	t := (p.OriginDistance - p.Normal.Dot(ray.Origin)) / p.Normal.Dot(ray.Direction)
	if !isPositiveNormal(t) {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() material.Material {
	return p.Material
}

func isPositiveNormal(t float64) bool {
	return t >= smallestNormal && !math.IsInf(t, 1)
}
