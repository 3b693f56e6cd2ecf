package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/integrator"
	"github.com/df07/go-sky-pathtracer/pkg/log"
	"github.com/df07/go-sky-pathtracer/pkg/output"
	"github.com/df07/go-sky-pathtracer/pkg/renderer"
	"github.com/df07/go-sky-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// StdoutPath makes the render command stream a PPM to standard output
const StdoutPath = "-"

// RenderFlags are the flags accepted by the render command.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name or path to a .json scene file",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width; the height follows the camera aspect ratio (0 = scene value)",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (0 = scene value)",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum number of bounces per path (0 = scene value)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed (0 = scene value)",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of render workers (0 = one per CPU)",
	},
	cli.StringFlag{
		Name:  "integrator",
		Value: integrator.PathTracing,
		Usage: "light transport: path or normals",
	},
	cli.BoolFlag{
		Name:  "fresnel",
		Usage: "enable Schlick reflection on every dielectric",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.ppm",
		Usage: "output image (.ppm or .png), or - for a PPM on stdout",
	},
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	out := ctx.String("out")
	if out == StdoutPath {
		// Keep the image stream clean
		log.SetSink(os.Stderr)
	}

	if out != StdoutPath {
		if _, err := output.WriterFor(out); err != nil {
			return err
		}
	}

	for _, name := range []string{"width", "spp", "depth", "workers"} {
		if ctx.Int(name) < 0 {
			return fmt.Errorf("--%s must not be negative", name)
		}
	}

	sc, err := scene.CreateScene(ctx.String("scene"))
	if err != nil {
		return err
	}
	sc.Override(
		geometry.CameraConfig{Width: ctx.Int("width")},
		scene.SamplingConfig{
			SamplesPerPixel: ctx.Int("spp"),
			MaxDepth:        ctx.Int("depth"),
			Seed:            ctx.Int64("seed"),
		},
	)
	if ctx.Bool("fresnel") {
		logger.Infof("enabled fresnel on %d dielectric material(s)", sc.EnableFresnel())
	}

	width, height := sc.ImageSize()
	if width < 1 || height < 1 {
		return errors.New("frame is empty; increase --width")
	}

	integ, err := integrator.NewIntegrator(ctx.String("integrator"), sc)
	if err != nil {
		return err
	}

	logger.Noticef(
		"rendering %q at %dx%d with %d spp, depth %d, seed %d",
		ctx.String("scene"), width, height,
		sc.SamplingConfig.SamplesPerPixel, sc.SamplingConfig.MaxDepth, sc.SamplingConfig.Seed,
	)

	rt := renderer.NewRaytracer(sc, integ, renderer.Config{NumWorkers: ctx.Int("workers")}, logger)
	frame, stats := rt.Render()

	if out == StdoutPath {
		err = output.WritePPM(os.Stdout, frame)
	} else {
		err = output.Encode(out, frame)
	}
	if err != nil {
		return err
	}

	displayFrameStats(stats)
	if out != StdoutPath {
		logger.Noticef("frame saved to %s", out)
	}
	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Workers", "Samples", "Avg bounces", "Max bounces", "Sky", "Depth", "Weight"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.NumWorkers),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.2f", stats.AverageBounces()),
		fmt.Sprintf("%d", stats.MaxBounces),
		percentOf(stats.TerminatedBy(integrator.TerminatedSky), stats.TotalSamples),
		percentOf(stats.TerminatedBy(integrator.TerminatedDepth), stats.TotalSamples),
		percentOf(stats.TerminatedBy(integrator.TerminatedWeight), stats.TotalSamples),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
	return buf.String()
}

func percentOf(count, total int) string {
	if total == 0 {
		return "0.0 %"
	}
	return fmt.Sprintf("%02.1f %%", 100*float64(count)/float64(total))
}
