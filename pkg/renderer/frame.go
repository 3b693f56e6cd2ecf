package renderer

import "github.com/df07/go-sky-pathtracer/pkg/core"

// Frame is a finished image in linear color. Rows are stored top to bottom and
// pixels left to right, which is the order they are written out in.
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the pixel in column x of row y, counting rows from the top
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores the pixel in column x of row y
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// Row returns the pixels of row y. The slice aliases the frame.
func (f *Frame) Row(y int) []core.Color {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}
