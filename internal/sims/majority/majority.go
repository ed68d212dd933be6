// Package majority implements a majority-vote automaton over a grid whose
// invisible border is held alive, drawn as the squares of one polarity.
package majority

import (
	"fmt"
	"time"

	"backdrop/internal/core"
	"backdrop/internal/theme"
)

// Name identifies the variant in the registry.
const Name = "majority"

// Config controls the majority variant.
type Config struct {
	CellSize    int
	Density     float64
	DrawAlive   bool
	SquareScale float64
	MaxFPS      int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:    10,
		Density:     0.5,
		SquareScale: 0.5,
		MaxFPS:      10,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ReadInt(cfg, "cell_size", &c.CellSize, 1)
	core.ReadFloat(cfg, "density", &c.Density, 0)
	core.ReadBool(cfg, "draw_alive", &c.DrawAlive)
	core.ReadFloat(cfg, "square_scale", &c.SquareScale, 0)
	if c.SquareScale > 1 {
		c.SquareScale = 1
	}
	core.ReadInt(cfg, "max_fps", &c.MaxFPS, 1)
	return c
}

// Majority implements core.Variant.
type Majority struct {
	cfg     Config
	rng     core.Rand
	palette core.Palette

	surface core.Surface
	cur     *core.Grid
	nxt     *core.Grid
}

// New returns a majority variant.
func New(cfg Config, rng core.Rand, palette core.Palette) *Majority {
	return &Majority{cfg: cfg, rng: rng, palette: palette}
}

// Name returns the variant identifier.
func (m *Majority) Name() string { return Name }

// MaxFPS returns the frame cap.
func (m *Majority) MaxFPS() int { return m.cfg.MaxFPS }

// Grid exposes the current generation; its padding is the alive border.
func (m *Majority) Grid() *core.Grid { return m.cur }

// Parameters lists the effective configuration.
func (m *Majority) Parameters() []core.Parameter {
	return []core.Parameter{
		core.IntParam("cell_size", m.cfg.CellSize, "cell edge in pixels"),
		core.FloatParam("density", m.cfg.Density, "probability a cell starts alive"),
		core.BoolParam("draw_alive", m.cfg.DrawAlive, "draw live cells instead of dead ones"),
		core.FloatParam("square_scale", m.cfg.SquareScale, "square edge as a fraction of the cell"),
		core.IntParam("max_fps", m.cfg.MaxFPS, "frame cap"),
	}
}

// Load seeds a padded grid sized to the surface and settles it once.
func (m *Majority) Load(s core.Surface) error {
	m.surface = s
	w, h := s.Size()
	gw, gh := max(w/m.cfg.CellSize, 1), max(h/m.cfg.CellSize, 1)
	m.cur = core.NewGrid(gw, gh, 1)
	m.nxt = core.NewGrid(gw, gh, 1)
	core.FillRandom(m.rng, m.cur, m.cfg.Density)
	m.cur.FillBorder(1)
	m.nxt.FillBorder(1)
	m.Step()
	return nil
}

// Update advances one generation.
func (m *Majority) Update(time.Duration) {
	if m.cur == nil {
		return
	}
	m.Step()
}

// Step applies the majority rule to every visible cell.
func (m *Majority) Step() {
	for y := 0; y < m.cur.H; y++ {
		for x := 0; x < m.cur.W; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n += int(m.cur.At(x+dx, y+dy))
				}
			}
			switch {
			case n > 4:
				m.nxt.Set(x, y, 1)
			case n < 4:
				m.nxt.Set(x, y, 0)
			default:
				m.nxt.Set(x, y, m.cur.At(x, y))
			}
		}
	}
	m.cur, m.nxt = m.nxt, m.cur
}

// Draw renders a centered square for every cell of the drawn polarity.
func (m *Majority) Draw() error {
	if m.surface == nil || m.cur == nil {
		return nil
	}
	fg, err := theme.Resolve(m.palette, theme.Foreground)
	if err != nil {
		return fmt.Errorf("majority: %w", err)
	}
	m.surface.Clear()
	size := float64(m.cfg.CellSize)
	side := size * m.cfg.SquareScale
	off := (size - side) / 2
	for y := 0; y < m.cur.H; y++ {
		for x := 0; x < m.cur.W; x++ {
			if m.cur.Alive(x, y) != m.cfg.DrawAlive {
				continue
			}
			m.surface.FillRect(float64(x)*size+off, float64(y)*size+off, side, side, fg)
		}
	}
	return nil
}

func init() {
	core.Register(Name, func(env core.Env) core.Variant {
		return New(FromMap(env.Params), env.Rand, env.Palette)
	})
}
