package geometry

import (
	"math"

	"github.com/df07/go-sky-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center         core.Vec3 // Eye position
	Width          int       // Image width in pixels
	AspectRatio    float64   // Width / height
	ViewportHeight float64   // Viewport height at the focal plane; ignored when VFov is set
	VFov           float64   // Vertical field of view in degrees (0 = use ViewportHeight)
	FocalLength    float64   // Distance from the eye to the viewport along -z
}

// DefaultCameraConfig returns the 16:9 camera looking down -z from the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:         core.NewVec3(0, 0, 0),
		Width:          400,
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// MergeCameraConfig applies the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ViewportHeight != 0 {
		result.ViewportHeight = override.ViewportHeight
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.FocalLength != 0 {
		result.FocalLength = override.FocalLength
	}
	return result
}

// ImageHeight returns the image height derived from the width and aspect ratio, truncated
func (c CameraConfig) ImageHeight() int {
	return int(float64(c.Width) / c.AspectRatio)
}

// Camera generates rays for rendering. It is immutable once built.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	aspectRatio     float64
}

// NewCamera creates a camera from configuration
func NewCamera(config CameraConfig) *Camera {
	viewportHeight := config.ViewportHeight
	if config.VFov > 0 {
		theta := config.VFov * math.Pi / 180.0
		viewportHeight = 2.0 * math.Tan(theta/2) * config.FocalLength
	}
	viewportWidth := config.AspectRatio * viewportHeight

	origin := config.Center
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		aspectRatio:     config.AspectRatio,
	}
}

// GetRay generates a full-energy ray for viewport coordinates (u, v).
// u and v are nominally in [0, 1]; jittered samples may land slightly outside.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// AspectRatio returns the camera's aspect ratio
func (c *Camera) AspectRatio() float64 {
	return c.aspectRatio
}
