package renderer

import (
	"time"

	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width        int
	Height       int
	NumWorkers   int
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	TotalBounces int           // Scatter events summed over every path
	MaxBounces   int           // Longest path seen
	Terminations [3]int        // Path counts indexed by integrator.Termination
	Duration     time.Duration // Wall time of the whole render
}

// AverageSamples returns samples per pixel
func (rs RenderStats) AverageSamples() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}

// AverageBounces returns bounces per path
func (rs RenderStats) AverageBounces() float64 {
	if rs.TotalSamples == 0 {
		return 0
	}
	return float64(rs.TotalBounces) / float64(rs.TotalSamples)
}

// TerminatedBy returns how many paths stopped for the given reason
func (rs RenderStats) TerminatedBy(reason integrator.Termination) int {
	if int(reason) < 0 || int(reason) >= len(rs.Terminations) {
		return 0
	}
	return rs.Terminations[reason]
}

// addPath records one traced path
func (rs *RenderStats) addPath(path integrator.PathStats) {
	rs.TotalSamples++
	rs.TotalBounces += path.Bounces
	if path.Bounces > rs.MaxBounces {
		rs.MaxBounces = path.Bounces
	}
	if int(path.Termination) >= 0 && int(path.Termination) < len(rs.Terminations) {
		rs.Terminations[path.Termination]++
	}
}

// merge folds the counters of a partial render into rs
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.TotalBounces += other.TotalBounces
	if other.MaxBounces > rs.MaxBounces {
		rs.MaxBounces = other.MaxBounces
	}
	for i := range rs.Terminations {
		rs.Terminations[i] += other.Terminations[i]
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator for final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum.AddAssign(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Scale(1.0 / float64(ps.SampleCount))
}
