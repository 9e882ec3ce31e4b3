package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/lseper/raytracer/renderer"
	"github.com/lseper/raytracer/scene"
	"github.com/lseper/raytracer/scene/reader"
	"github.com/lseper/raytracer/tracer"
	"github.com/lseper/raytracer/tracer/cpu"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	dims, err := uintFlags(ctx, "width", "height", "spp", "depth", "workers")
	if err != nil {
		return err
	}

	accel, err := cpu.ParseAccel(ctx.String("accel"))
	if err != nil {
		return err
	}

	scheduler, err := newScheduler(ctx.String("scheduler"))
	if err != nil {
		return err
	}

	opts := renderer.Options{
		FrameW:          dims[0],
		FrameH:          dims[1],
		SamplesPerPixel: dims[2],
		MaxDepth:        dims[3],
		NumTracers:      int(dims[4]),
		Seed:            ctx.Int64("seed"),
		Accel:           accel,
	}
	if !ctx.Bool("quiet") {
		opts.Progress = reportProgress
	}

	// Load scene
	if ctx.NArg() > 1 {
		return errors.New("too many scene file arguments")
	}

	var sc *scene.Scene
	if ctx.NArg() == 0 {
		logger.Notice("no scene file specified; rendering the default scene")
		sc = scene.DefaultScene()
		if err = sc.Validate(); err != nil {
			return err
		}
	} else {
		sc, err = reader.LoadScene(ctx.Args().First())
		if sc == nil {
			return err
		}
		if err != nil {
			logger.Warning(err.Error())
		}
	}

	if info, hostErr := cpu.GetHostInfo(); hostErr == nil {
		logger.Infof("host: %s, %d logical cores at %.2f GHz, %d GB RAM", info.Model, info.LogicalCores, info.ClockGHz, info.TotalMemGB)
	}

	// Create renderer
	r, err := renderer.NewDefault(sc, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	renderCtx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancelFn()

	logger.Noticef("rendering frame using %s acceleration", accel)
	err = r.Render(renderCtx)
	if opts.Progress != nil {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	if err = r.Frame().WriteFile(outFile); err != nil {
		return err
	}
	if outFile != "-" {
		logger.Noticef("wrote frame to %s", outFile)
	}

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

// Create a sample scheduler by name.
func newScheduler(name string) (tracer.SampleScheduler, error) {
	switch name {
	case "even", "":
		return tracer.NewEvenScheduler(), nil
	case "perfect":
		return tracer.NewPerfectScheduler(), nil
	}
	return nil, fmt.Errorf("unknown scheduler %q", name)
}

func reportProgress(done, total int) {
	fmt.Fprintf(os.Stderr, "\rscanlines remaining: %d ", total-done)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Samples/pixel", "% of samples", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.SamplesPerPixel),
			fmt.Sprintf("%02.1f %%", stat.SamplePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", stats.SamplesPerPixel), "", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
