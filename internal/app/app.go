//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"backdrop/internal/core"
	"backdrop/internal/render"
	"backdrop/internal/scheduler"
	"backdrop/internal/theme"
	"backdrop/internal/ui"
)

// Game adapts the scheduler to the ebiten.Game interface.
type Game struct {
	sched  *scheduler.Scheduler
	canvas *render.Canvas
	theme  *theme.Theme
	opts   Options
	log    *slog.Logger

	hud     *ui.HUD
	frame   *ebiten.Image
	w, h    int
	focused bool
	fps     float64
}

// New wires a started scheduler and its canvas into a Game.
func New(s *scheduler.Scheduler, c *render.Canvas, th *theme.Theme, opts Options) *Game {
	w, h := c.Size()
	g := &Game{
		sched:   s,
		canvas:  c,
		theme:   th,
		opts:    opts,
		log:     opts.logger(),
		hud:     ui.NewHUD(),
		w:       w,
		h:       h,
		focused: true,
	}
	s.OnFrame(func(st scheduler.FrameStat) {
		g.fps = ui.Smooth(g.fps, st.Delta.Seconds())
	})
	return g
}

// Update handles input and focus, then offers the scheduler a frame.
func (g *Game) Update() error {
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		mode := g.theme.Toggle()
		g.log.Info("theme toggled", "mode", mode)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.sched.Next(now); err != nil {
			return fmt.Errorf("next variant: %w", err)
		}
		g.fps = 0
		ebiten.SetWindowTitle(g.opts.Title + " - " + g.sched.Current())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.opts.Overlay = !g.opts.Overlay
	}

	focused := ebiten.IsFocused()
	if focused != g.focused {
		g.focused = focused
		if focused {
			g.sched.Resume(now)
		} else {
			g.sched.Pause()
		}
	}

	if _, err := g.sched.Frame(now); err != nil {
		return err
	}
	return nil
}

// Draw uploads the canvas over the themed background.
func (g *Game) Draw(screen *ebiten.Image) {
	if bg, err := theme.Resolve(g.theme, theme.Background); err == nil {
		screen.Fill(bg)
	}
	w, h := g.canvas.Size()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(g.canvas.Pixels())
	screen.DrawImage(g.frame, nil)

	if g.opts.Overlay {
		var fg, bg color.Color = color.White, color.Black
		if c, err := theme.Resolve(g.theme, theme.Foreground); err == nil {
			fg = c
		}
		if c, err := theme.Resolve(g.theme, theme.Background); err == nil {
			bg = c
		}
		g.hud.Draw(screen, g.info(), fg, bg)
	}
}

func (g *Game) info() ui.Info {
	st := g.sched.State()
	info := ui.Info{
		Variant: g.sched.Current(),
		MaxFPS:  st.MaxFPS(),
		FPS:     g.fps,
		Theme:   g.theme.Mode(),
		Paused:  g.sched.Paused(),
	}
	if p, ok := st.Variant.(core.ParameterProvider); ok {
		info.Params = p.Parameters()
	}
	return info
}

// Layout tracks the window size and forwards changes to the scheduler.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.sched.Resize(outsideWidth, outsideHeight, time.Now())
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.opts.Title + " - " + g.sched.Current())
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.opts.TPS > 0 {
		ebiten.SetTPS(g.opts.TPS)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
