package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sky-pathtracer/pkg/renderer"
)

// WritePPM writes the frame as a plain-text P3 image, top row first
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}
	for _, pixel := range frame.Pixels {
		if _, err := bw.WriteString(pixel.ToBytes()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
