package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sky-pathtracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Writer encodes a frame onto a stream
type Writer func(w io.Writer, frame *renderer.Frame) error

// WriterFor picks the encoder from the file extension (.ppm or .png)
func WriterFor(path string) (Writer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return WritePPM, nil
	case ".png":
		return WritePNG, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected .ppm or .png)", ErrUnsupportedFormat, path)
	}
}

// Encode writes the frame to path in the format implied by its extension.
// Missing parent directories are created.
func Encode(path string, frame *renderer.Frame) (err error) {
	write, err := WriterFor(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := write(file, frame); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
