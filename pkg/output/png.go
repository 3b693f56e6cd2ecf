package output

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-sky-pathtracer/pkg/renderer"
)

// ToImage quantizes the frame into an 8-bit image using the same gamma as the PPM writer
func ToImage(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x, pixel := range frame.Row(y) {
			r, g, b := pixel.RGB8()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG writes the frame as a PNG image
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	return png.Encode(w, ToImage(frame))
}
