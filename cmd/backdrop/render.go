package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"backdrop/internal/logging"
	"backdrop/internal/render"
	"backdrop/internal/scheduler"
	"backdrop/internal/stats"
	"backdrop/internal/theme"
)

type renderOptions struct {
	width       int
	height      int
	frames      int
	interval    time.Duration
	outDir      string
	csvPath     string
	plot        bool
	transparent bool
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	var fps int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "render frames headlessly to PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if o.width <= 0 {
				o.width = e.cfg.Window.Width
			}
			if o.height <= 0 {
				o.height = e.cfg.Window.Height
			}
			if fps <= 0 {
				fps = e.cfg.Window.TPS
			}
			o.interval = time.Second / time.Duration(fps)
			_, err = renderFrames(e, o, cmd.OutOrStdout())
			return err
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.width, "width", 0, "surface width (defaults to window.width)")
	f.IntVar(&o.height, "height", 0, "surface height (defaults to window.height)")
	f.IntVar(&o.frames, "frames", 10, "number of frames to write after the initial one")
	f.IntVar(&fps, "tps", 0, "simulated host callback rate (defaults to window.tps)")
	f.StringVar(&o.outDir, "out", "frames", "output directory")
	f.StringVar(&o.csvPath, "csv", "", "write per-frame stats to this CSV file")
	f.BoolVar(&o.plot, "plot", false, "print a draw-time plot when done")
	f.BoolVar(&o.transparent, "transparent", false, "keep the background transparent")
	return cmd
}

// renderFrames drives the scheduler on a simulated clock and writes the
// initial frame plus o.frames accepted frames. It returns the number of PNG
// files written.
func renderFrames(e *env, o renderOptions, stdout io.Writer) (int, error) {
	log := logging.Component(e.log, "render")
	if o.interval <= 0 {
		o.interval = time.Second / 60
	}
	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	var csvOut io.Writer
	if o.csvPath != "" {
		f, err := os.Create(o.csvPath)
		if err != nil {
			return 0, fmt.Errorf("creating stats file: %w", err)
		}
		defer f.Close()
		csvOut = f
	}
	rec := stats.NewRecorder(csvOut)

	canvas := render.NewCanvas(o.width, o.height)
	sched := scheduler.New(scheduler.Options{
		Variant:  e.cfg.Scheduler.Variant,
		Params:   e.cfg.Variants,
		Rand:     e.rng,
		Palette:  e.theme,
		Logger:   e.log,
		Debounce: e.cfg.Scheduler.Debounce(),
	})
	var statErr error
	sched.OnFrame(func(st scheduler.FrameStat) {
		if err := rec.Observe(st); err != nil && statErr == nil {
			statErr = err
		}
	})

	now := time.Now()
	if err := sched.Start(canvas, now); err != nil {
		return 0, err
	}
	save := func(i int) error {
		path := filepath.Join(o.outDir, fmt.Sprintf("%s-%04d.png", sched.Current(), i))
		if o.transparent {
			return canvas.SavePNG(path)
		}
		bg, err := theme.Resolve(e.theme, theme.Background)
		if err != nil {
			return err
		}
		return gg.SavePNG(path, canvas.Flatten(bg))
	}
	if err := save(0); err != nil {
		return 0, fmt.Errorf("saving frame: %w", err)
	}
	written := 1

	// A variant capped at 1 fps needs at most one host second per frame.
	maxTicks := o.frames * int(time.Second/o.interval+1)
	for tick := 0; written <= o.frames && tick < maxTicks; tick++ {
		now = now.Add(o.interval)
		ran, err := sched.Frame(now)
		if err != nil {
			return written, err
		}
		if statErr != nil {
			return written, statErr
		}
		if !ran {
			continue
		}
		if err := save(written); err != nil {
			return written, fmt.Errorf("saving frame: %w", err)
		}
		written++
	}
	log.Info("frames written", "variant", sched.Current(), "count", written, "dir", o.outDir)

	if o.plot {
		fmt.Fprintln(stdout, rec.Plot(60, 10))
	}
	return written, nil
}
