package geometry

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

// ShadowAcneTolerance is the smallest hit distance accepted; closer hits are the
// surface a ray just left re-intersecting itself.
const ShadowAcneTolerance = 1e-4

// Shape interface for surfaces that can be hit by rays
type Shape interface {
	// Intersect returns the distance along the ray to the surface, if any
	Intersect(ray core.Ray) (float64, bool)
	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	GetMaterial() material.Material
}

// NearestHit scans every shape and returns the closest valid intersection.
// Ties keep the earlier shape, which is fine for non-overlapping scenes.
func NearestHit(shapes []Shape, ray core.Ray) (*material.HitRecord, bool) {
	var closest Shape
	closestT := 0.0

	for _, shape := range shapes {
		t, ok := shape.Intersect(ray)
		if !ok || t <= ShadowAcneTolerance {
			continue
		}
		if closest == nil || t < closestT {
			closest = shape
			closestT = t
		}
	}

	if closest == nil {
		return nil, false
	}

	point := ray.At(closestT)
	return &material.HitRecord{
		Point:    point,
		Normal:   closest.NormalAt(point),
		T:        closestT,
		Material: closest.GetMaterial(),
	}, true
}
