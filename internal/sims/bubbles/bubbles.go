// Package bubbles layers translucent noise-colored circles at several
// lattice resolutions.
package bubbles

import (
	"fmt"
	"math"
	"time"

	"backdrop/internal/colors"
	"backdrop/internal/core"
	"backdrop/internal/noise"
	"backdrop/internal/theme"
)

// Name identifies the variant in the registry.
const Name = "bubbles"

// Config controls the bubbles variant.
type Config struct {
	CellSize int
	Octaves  int
	Scale    float64
	Opacity  float64
	Step     float64
	Noise    string
	MaxFPS   int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize: 12,
		Octaves:  4,
		Scale:    0.08,
		Opacity:  0.35,
		Step:     0.01,
		Noise:    "perlin",
		MaxFPS:   30,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ReadInt(cfg, "cell_size", &c.CellSize, 1)
	core.ReadInt(cfg, "octaves", &c.Octaves, 1)
	core.ReadFloat(cfg, "scale", &c.Scale, 0)
	core.ReadFloat(cfg, "opacity", &c.Opacity, 0)
	if c.Opacity > 1 {
		c.Opacity = 1
	}
	core.ReadFloat(cfg, "step", &c.Step, 0)
	core.ReadString(cfg, "noise", &c.Noise)
	core.ReadInt(cfg, "max_fps", &c.MaxFPS, 1)
	return c
}

// Bubbles implements core.Variant.
type Bubbles struct {
	cfg     Config
	rng     core.Rand
	palette core.Palette

	surface core.Surface
	src     noise.Source
	t       float64
}

// New returns a bubbles variant.
func New(cfg Config, rng core.Rand, palette core.Palette) *Bubbles {
	return &Bubbles{cfg: cfg, rng: rng, palette: palette}
}

// Name returns the variant identifier.
func (b *Bubbles) Name() string { return Name }

// MaxFPS returns the frame cap.
func (b *Bubbles) MaxFPS() int { return b.cfg.MaxFPS }

// Time returns the simulation clock.
func (b *Bubbles) Time() float64 { return b.t }

// Parameters lists the effective configuration.
func (b *Bubbles) Parameters() []core.Parameter {
	c := b.cfg
	return []core.Parameter{
		core.IntParam("cell_size", c.CellSize, "finest lattice spacing in pixels"),
		core.IntParam("octaves", c.Octaves, "number of lattice layers"),
		core.FloatParam("scale", c.Scale, "noise frequency per lattice point"),
		core.FloatParam("opacity", c.Opacity, "alpha of the finest layer"),
		core.FloatParam("step", c.Step, "time added per update"),
		core.StringParam("noise", c.Noise, "perlin or simplex"),
		core.IntParam("max_fps", c.MaxFPS, "frame cap"),
	}
}

// Load binds the surface, reseeds the noise source and restarts time.
func (b *Bubbles) Load(s core.Surface) error {
	b.surface = s
	b.src = noise.ByName(b.cfg.Noise, int64(b.rng.IntN(math.MaxInt32)))
	b.t = 0
	return nil
}

// Update advances time by a fixed step.
func (b *Bubbles) Update(time.Duration) { b.t += b.cfg.Step }

// Layer describes one octave of circles.
type Layer struct {
	Stride  int
	Spacing float64
	Alpha   float64
}

// Layers returns the octaves in draw order, coarsest first.
func (b *Bubbles) Layers() []Layer {
	layers := make([]Layer, 0, b.cfg.Octaves)
	for i := b.cfg.Octaves - 1; i >= 0; i-- {
		stride := 1 << i
		layers = append(layers, Layer{
			Stride:  stride,
			Spacing: float64(stride * b.cfg.CellSize),
			Alpha:   b.cfg.Opacity * float64(i+1) / float64(b.cfg.Octaves),
		})
	}
	return layers
}

// Draw paints every layer.
func (b *Bubbles) Draw() error {
	if b.surface == nil {
		return nil
	}
	bg, err := theme.Resolve(b.palette, theme.Background)
	if err != nil {
		return fmt.Errorf("bubbles: %w", err)
	}
	fg, err := theme.Resolve(b.palette, theme.Foreground)
	if err != nil {
		return fmt.Errorf("bubbles: %w", err)
	}

	b.surface.Clear()
	w, h := b.surface.Size()
	for _, l := range b.Layers() {
		cols := int(math.Ceil(float64(w) / l.Spacing))
		rows := int(math.Ceil(float64(h) / l.Spacing))
		s := float64(l.Stride)
		for gy := 0; gy < rows; gy++ {
			for gx := 0; gx < cols; gx++ {
				n := b.src.Noise3(float64(gx)*s*b.cfg.Scale, float64(gy)*s*b.cfg.Scale, b.t*s)
				v := math.Min(math.Max((n+1)/2, 0), 1)
				c := colors.Lerp(v*v, bg, fg).WithAlpha(l.Alpha)
				b.surface.FillCircle(float64(gx)*l.Spacing+l.Spacing/2, float64(gy)*l.Spacing+l.Spacing/2, l.Spacing/2, c)
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
