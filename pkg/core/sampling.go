package core

import (
	"math/rand"
)

// Vec2 is a pair of samples
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomRange returns a uniform float64 in [lo, hi)
func RandomRange(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}

// randomInCube returns a point uniformly distributed in [-1,1]³
func randomInCube(sampler Sampler) Vec3 {
	s := sampler.Get3D()
	return NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
}

// RandomInUnitSphere generates a random point inside the unit sphere by rejection sampling
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := randomInCube(sampler)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector generates a direction uniformly distributed over the unit sphere.
// Points outside the sphere and the exact origin are rejected before normalizing.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := randomInCube(sampler)
		lengthSquared := p.LengthSquared()
		if lengthSquared < 1 && lengthSquared > 0 {
			return p.Normalize()
		}
	}
}
