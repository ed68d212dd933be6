// Package briansbrain implements Brian's Brain, a three-state automaton whose
// firing cells leave a one-generation dying trail.
package briansbrain

import (
	"fmt"
	"time"

	"backdrop/internal/core"
	"backdrop/internal/theme"
)

// Name identifies the variant in the registry.
const Name = "briansbrain"

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config controls the Brian's Brain variant.
type Config struct {
	CellSize int
	Density  float64
	Revive   int
	MaxFPS   int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{CellSize: 6, Density: 0.125, Revive: 8, MaxFPS: 15}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ReadInt(cfg, "cell_size", &c.CellSize, 1)
	core.ReadFloat(cfg, "density", &c.Density, 0)
	core.ReadInt(cfg, "revive", &c.Revive, 0)
	core.ReadInt(cfg, "max_fps", &c.MaxFPS, 1)
	return c
}

// Brain implements core.Variant.
type Brain struct {
	cfg     Config
	rng     core.Rand
	palette core.Palette

	surface core.Surface
	cur     *core.Grid
	nxt     *core.Grid
}

// New creates a Brian's Brain variant.
func New(cfg Config, rng core.Rand, palette core.Palette) *Brain {
	return &Brain{cfg: cfg, rng: rng, palette: palette}
}

// Name identifies the variant.
func (b *Brain) Name() string { return Name }

// MaxFPS returns the frame cap.
func (b *Brain) MaxFPS() int { return b.cfg.MaxFPS }

// Grid exposes the current state buffer.
func (b *Brain) Grid() *core.Grid { return b.cur }

// Parameters lists the effective configuration.
func (b *Brain) Parameters() []core.Parameter {
	return []core.Parameter{
		core.IntParam("cell_size", b.cfg.CellSize, "cell edge in pixels"),
		core.FloatParam("density", b.cfg.Density, "probability a cell starts firing"),
		core.IntParam("revive", b.cfg.Revive, "random cells fired each generation"),
		core.IntParam("max_fps", b.cfg.MaxFPS, "frame cap"),
	}
}

// Load randomizes cells into dead or firing states.
func (b *Brain) Load(s core.Surface) error {
	b.surface = s
	w, h := s.Size()
	gw, gh := max(w/b.cfg.CellSize, 1), max(h/b.cfg.CellSize, 1)
	b.cur = core.NewGrid(gw, gh, 0)
	b.nxt = core.NewGrid(gw, gh, 0)
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			if core.Chance(b.rng, b.cfg.Density) {
				b.cur.Set(x, y, stateOn)
			}
		}
	}
	return nil
}

// Update fires a few random dead cells then advances one tick.
func (b *Brain) Update(time.Duration) {
	if b.cur == nil {
		return
	}
	for i := 0; i < b.cfg.Revive; i++ {
		x, y := b.rng.IntN(b.cur.W), b.rng.IntN(b.cur.H)
		if b.cur.At(x, y) == stateDead {
			b.cur.Set(x, y, stateOn)
		}
	}
	b.Step()
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	w, h := b.cur.W, b.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch b.cur.At(x, y) {
			case stateOn:
				b.nxt.Set(x, y, stateDying)
			case stateDying:
				b.nxt.Set(x, y, stateDead)
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := b.cur.Wrap(x+dx, y+dy)
						if b.cur.At(nx, ny) == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt.Set(x, y, stateOn)
				} else {
					b.nxt.Set(x, y, stateDead)
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

// Draw paints firing cells in the foreground color and dying cells muted.
func (b *Brain) Draw() error {
	if b.surface == nil || b.cur == nil {
		return nil
	}
	on, err := theme.Resolve(b.palette, theme.Foreground)
	if err != nil {
		return fmt.Errorf("briansbrain: %w", err)
	}
	dying, err := theme.Resolve(b.palette, theme.Muted)
	if err != nil {
		return fmt.Errorf("briansbrain: %w", err)
	}
	b.surface.Clear()
	size := float64(b.cfg.CellSize)
	for y := 0; y < b.cur.H; y++ {
		for x := 0; x < b.cur.W; x++ {
			switch b.cur.At(x, y) {
			case stateOn:
				b.surface.FillRect(float64(x)*size, float64(y)*size, size, size, on)
			case stateDying:
				b.surface.FillRect(float64(x)*size, float64(y)*size, size, size, dying)
			}
		}
	}
	return nil
}

func init() {
	core.Register(Name, func(env core.Env) core.Variant {
		return New(FromMap(env.Params), env.Rand, env.Palette)
	})
}
