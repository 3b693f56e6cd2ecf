package renderer

import (
	"time"

	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/integrator"
	"github.com/df07/go-sky-pathtracer/pkg/scene"
)

// Config controls how a frame is scheduled
type Config struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{NumWorkers: 0}
}

// Raytracer drives the integrator over every pixel of the scene's image
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	width      int
	height     int
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = nopLogger{}
	}
	width, height := s.ImageSize()
	return &Raytracer{
		scene:      s,
		integrator: integ,
		width:      width,
		height:     height,
		config:     config,
		logger:     logger,
	}
}

// Render traces the whole frame using the worker pool. The result depends only on
// the scene and its seed, never on the number of workers.
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	start := time.Now()
	frame := NewFrame(rt.width, rt.height)

	pool := NewWorkerPool(rt, frame, rt.config.NumWorkers)
	pool.Start()

	for row := 0; row < rt.height; row++ {
		pool.SubmitTask(RowTask{Row: row})
	}

	stats := RenderStats{
		Width:      rt.width,
		Height:     rt.height,
		NumWorkers: pool.GetNumWorkers(),
	}

	remaining := rt.height
	for remaining > 0 {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
		remaining--
		rt.logger.Debugf("Scanlines remaining %d", remaining)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	return frame, stats
}

// RenderRow renders frame row y (0 is the top) into pixels, which must hold one
// color per column
func (rt *Raytracer) RenderRow(y int, pixels []core.Color) RenderStats {
	var stats RenderStats
	sampling := rt.scene.SamplingConfig
	sampler := core.NewSeededSampler(rowSeed(sampling.Seed, y))
	camera := rt.scene.Camera

	// The top row sees the highest v
	j := rt.height - 1 - y

	for i := 0; i < rt.width; i++ {
		var pixel PixelStats
		for s := 0; s < sampling.SamplesPerPixel; s++ {
			// A single sample looks through the pixel corner so unjittered renders stay exact
			du, dv := 0.0, 0.0
			if sampling.SamplesPerPixel > 1 {
				du, dv = sampler.Get1D(), sampler.Get1D()
			}
			u := (float64(i) + du) / span(rt.width)
			v := (float64(j) + dv) / span(rt.height)

			color, path := rt.integrator.RayColor(camera.GetRay(u, v), sampler)
			pixel.AddSample(color)
			stats.addPath(path)
		}
		pixels[i] = pixel.GetColor()
		stats.TotalPixels++
	}

	return stats
}

// span is the divisor that maps pixel indices onto [0,1]
func span(n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(n - 1)
}

// rowSeed derives an independent random stream per scanline (splitmix64 finalizer)
func rowSeed(seed int64, row int) int64 {
	z := uint64(seed) + uint64(row+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{})  {}
func (nopLogger) Infof(format string, args ...interface{})   {}
func (nopLogger) Noticef(format string, args ...interface{}) {}
