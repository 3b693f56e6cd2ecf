package core

// Ray represents a ray with an origin, a direction and the color weight it carries.
// Direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Color     Color // Remaining energy; starts White and is attenuated at each bounce
}

// NewRay creates a new ray carrying full energy
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Color: White}
}

// NewColoredRay creates a ray carrying the given color weight
func NewColoredRay(origin, direction Vec3, color Color) Ray {
	return Ray{Origin: origin, Direction: direction, Color: color}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
