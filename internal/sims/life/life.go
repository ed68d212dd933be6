// Package life implements Conway's Game of Life on a toroidal grid with a
// trickle of random revivals and an optional text highlight mask.
package life

import (
	"fmt"
	"time"

	"backdrop/internal/colors"
	"backdrop/internal/core"
	"backdrop/internal/textmask"
	"backdrop/internal/theme"
)

// Name identifies the variant in the registry.
const Name = "life"

// Life implements core.Variant.
type Life struct {
	cfg     Config
	rng     core.Rand
	palette core.Palette

	surface core.Surface
	cur     *core.Grid
	nxt     *core.Grid
	mask    [][]bool
}

// New returns a Life variant. It owns no grid until Load.
func New(cfg Config, rng core.Rand, palette core.Palette) *Life {
	return &Life{cfg: cfg, rng: rng, palette: palette}
}

// Name returns the variant identifier.
func (l *Life) Name() string { return Name }

// MaxFPS returns the frame cap.
func (l *Life) MaxFPS() int { return l.cfg.MaxFPS }

// Parameters lists the effective configuration.
func (l *Life) Parameters() []core.Parameter { return l.cfg.Parameters() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Masked reports whether the text mask covers cell (x, y).
func (l *Life) Masked(x, y int) bool {
	return l.mask != nil && l.mask[y][x]
}

// Load sizes the grid to the surface and seeds it randomly.
func (l *Life) Load(s core.Surface) error {
	l.surface = s
	w, h := s.Size()
	gw, gh := max(w/l.cfg.CellSize, 1), max(h/l.cfg.CellSize, 1)
	l.cur = core.NewGrid(gw, gh, 0)
	l.nxt = core.NewGrid(gw, gh, 0)
	core.FillRandom(l.rng, l.cur, l.cfg.Density)
	l.mask = nil
	if l.cfg.Text != "" {
		l.mask = textmask.Rasterize(l.cfg.Text, gw, gh, l.cfg.CellSize)
		if textmask.Count(l.mask) == 0 {
			l.mask = nil
		}
	}
	if l.cfg.Settle {
		l.Update(0)
	}
	return nil
}

// Update revives a few random cells then advances one generation.
func (l *Life) Update(time.Duration) {
	if l.cur == nil {
		return
	}
	l.revive()
	l.Step()
}

func (l *Life) revive() {
	for i := 0; i < l.cfg.Revive; i++ {
		l.cur.Set(l.rng.IntN(l.cur.W), l.rng.IntN(l.cur.H), 1)
	}
}

// Step advances the grid by one generation without revivals.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := l.neighbors(x, y)
			switch {
			case n == 3:
				l.nxt.Set(x, y, 1)
			case n < 2 || n > 3:
				l.nxt.Set(x, y, 0)
			default:
				l.nxt.Set(x, y, l.cur.At(x, y))
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func (l *Life) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := l.cur.Wrap(x+dx, y+dy)
			n += int(l.cur.At(nx, ny))
		}
	}
	return n
}

// Draw renders live cells, highlighting those under the text mask.
func (l *Life) Draw() error {
	if l.surface == nil || l.cur == nil {
		return nil
	}
	fg, err := theme.Resolve(l.palette, theme.Foreground)
	if err != nil {
		return fmt.Errorf("life: %w", err)
	}
	accent, err := theme.Resolve(l.palette, theme.Accent)
	if err != nil {
		return fmt.Errorf("life: %w", err)
	}
	muted, err := theme.Resolve(l.palette, theme.Muted)
	if err != nil {
		return fmt.Errorf("life: %w", err)
	}

	l.surface.Clear()
	for y := 0; y < l.cur.H; y++ {
		for x := 0; x < l.cur.W; x++ {
			alive, masked := l.cur.Alive(x, y), l.Masked(x, y)
			switch {
			case alive && masked:
				l.dot(x, y, accent)
			case alive:
				l.dot(x, y, fg)
			case masked:
				l.dot(x, y, muted)
			}
		}
	}
	return nil
}

func (l *Life) dot(x, y int, c colors.Color) {
	size := float64(l.cfg.CellSize)
	cx := float64(x)*size + size/2
	cy := float64(y)*size + size/2
	if l.cfg.Jitter {
		cx += core.Jitter(l.rng, 1)
		cy += core.Jitter(l.rng, 1)
	}
	if l.cfg.Shape == ShapeSquare {
		l.surface.FillRect(cx-size/2, cy-size/2, size, size, c)
		return
	}
	l.surface.FillCircle(cx, cy, size/2, c)
}

func init() {
	core.Register(Name, func(env core.Env) core.Variant {
		return New(FromMap(env.Params), env.Rand, env.Palette)
	})
}
