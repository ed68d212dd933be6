//go:build !ebiten

package app

import (
	"backdrop/internal/render"
	"backdrop/internal/scheduler"
	"backdrop/internal/theme"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct {
	opts Options
}

// New returns a Game that cannot be run.
func New(_ *scheduler.Scheduler, _ *render.Canvas, _ *theme.Theme, opts Options) *Game {
	return &Game{opts: opts}
}

// Run always reports that the GUI build tag is missing.
func Run(g *Game) error {
	g.opts.logger().Error("window support not compiled in")
	return ErrHeadless
}
