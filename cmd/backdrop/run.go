package main

import (
	"time"

	"github.com/spf13/cobra"

	"backdrop/internal/app"
	"backdrop/internal/render"
	"backdrop/internal/scheduler"
)

func newRunCmd() *cobra.Command {
	var overlay bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "open a window and animate (build with -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			w := e.cfg.Window
			canvas := render.NewCanvas(w.Width, w.Height)
			sched := scheduler.New(scheduler.Options{
				Variant:  e.cfg.Scheduler.Variant,
				Params:   e.cfg.Variants,
				Rand:     e.rng,
				Palette:  e.theme,
				Logger:   e.log,
				Debounce: e.cfg.Scheduler.Debounce(),
			})
			if err := sched.Start(canvas, time.Now()); err != nil {
				return err
			}
			game := app.New(sched, canvas, e.theme, app.Options{
				Title:   w.Title,
				Width:   w.Width,
				Height:  w.Height,
				TPS:     w.TPS,
				Overlay: overlay || w.Overlay,
				Logger:  e.log,
			})
			return app.Run(game)
		},
	}
	cmd.Flags().BoolVar(&overlay, "overlay", false, "show the variant name")
	return cmd
}
