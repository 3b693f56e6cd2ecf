package core

import (
	"math"
	"strconv"
)

// Color is an RGB value in linear radiance space. Channels are left unclamped
// while accumulating and are only clamped when quantized.
type Color struct {
	R, G, B float64
}

// Named colors
var (
	White   = Color{1, 1, 1}
	Black   = Color{0, 0, 0}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	SkyBlue = Color{0.5, 0.7, 1.0}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromUnit maps a unit vector with components in [-1,1] onto a color in [0,1]
func FromUnit(n Vec3) Color {
	return Color{n.X + 1, n.Y + 1, n.Z + 1}.Scale(0.5)
}

// Blend linearly interpolates from a to b. t is expected in [0,1] but not enforced.
func Blend(a, b Color, t float64) Color {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// AddAssign accumulates other into c
func (c *Color) AddAssign(other Color) {
	c.R += other.R
	c.G += other.G
	c.B += other.B
}

// Scale multiplies every channel by s
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Attenuate returns the component-wise product, the absorption of light by a colored surface
func (c Color) Attenuate(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// MaxComponent returns the largest channel
func (c Color) MaxComponent() float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// RGB8 quantizes the color: clamp to 1, square-root gamma, scale by 255, round to nearest
func (c Color) RGB8() (r, g, b uint8) {
	return quantize(c.R), quantize(c.G), quantize(c.B)
}

// ToBytes formats the quantized color as a P3 pixel line: "r g b\n"
func (c Color) ToBytes() string {
	r, g, b := c.RGB8()
	buf := make([]byte, 0, 12)
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	buf = append(buf, '\n')
	return string(buf)
}

func quantize(channel float64) uint8 {
	// channels are non-negative by construction; the lower bound only guards sqrt
	channel = math.Max(0, math.Min(channel, 1))
	return uint8(math.Round(255 * math.Sqrt(channel)))
}
