// Package gradients animates two radial gradients orbiting the surface
// center, multiplied together and overlaid with a static film grain.
package gradients

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"backdrop/internal/core"
	"backdrop/internal/theme"
)

// Name identifies the variant in the registry.
const Name = "gradients"

// Config controls the gradients variant.
type Config struct {
	AngularSpeed float64
	Radius       float64
	GrainSize    int
	GrainAlpha   float64
	MaxFPS       int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		AngularSpeed: 0.15,
		Radius:       0.6,
		GrainSize:    128,
		GrainAlpha:   0.08,
		MaxFPS:       30,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ReadFloat(cfg, "angular_speed", &c.AngularSpeed, math.Inf(-1))
	core.ReadFloat(cfg, "radius", &c.Radius, 0)
	core.ReadInt(cfg, "grain_size", &c.GrainSize, 1)
	core.ReadFloat(cfg, "grain_alpha", &c.GrainAlpha, 0)
	if c.GrainAlpha > 1 {
		c.GrainAlpha = 1
	}
	core.ReadInt(cfg, "max_fps", &c.MaxFPS, 1)
	return c
}

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Rotate turns p about c by theta radians.
func Rotate(p, c Point, theta float64) Point {
	sin, cos := math.Sincos(theta)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}

// Gradients implements core.Variant.
type Gradients struct {
	cfg     Config
	rng     core.Rand
	palette core.Palette

	surface core.Surface
	grain   *image.NRGBA
	angle   float64
}

// New returns a gradients variant.
func New(cfg Config, rng core.Rand, palette core.Palette) *Gradients {
	return &Gradients{cfg: cfg, rng: rng, palette: palette}
}

// Name returns the variant identifier.
func (g *Gradients) Name() string { return Name }

// MaxFPS returns the frame cap.
func (g *Gradients) MaxFPS() int { return g.cfg.MaxFPS }

// Grain exposes the grain tile generated at load.
func (g *Gradients) Grain() *image.NRGBA { return g.grain }

// Angle returns the current orbit angle in radians.
func (g *Gradients) Angle() float64 { return g.angle }

// Parameters lists the effective configuration.
func (g *Gradients) Parameters() []core.Parameter {
	c := g.cfg
	return []core.Parameter{
		core.FloatParam("angular_speed", c.AngularSpeed, "orbit speed in radians per second"),
		core.FloatParam("radius", c.Radius, "gradient radius as a fraction of the longer side"),
		core.IntParam("grain_size", c.GrainSize, "grain tile edge in pixels"),
		core.FloatParam("grain_alpha", c.GrainAlpha, "grain opacity"),
		core.IntParam("max_fps", c.MaxFPS, "frame cap"),
	}
}

// Load binds the surface, restarts the orbit and generates the grain tile.
func (g *Gradients) Load(s core.Surface) error {
	g.surface = s
	g.angle = 0
	n := g.cfg.GrainSize
	g.grain = image.NewNRGBA(image.Rect(0, 0, n, n))
	a := uint8(math.Round(g.cfg.GrainAlpha * 255))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			l := uint8(g.rng.IntN(256))
			g.grain.SetNRGBA(x, y, color.NRGBA{R: l, G: l, B: l, A: a})
		}
	}
	return nil
}

// Update advances the orbit by the elapsed time.
func (g *Gradients) Update(dt time.Duration) {
	g.angle = math.Mod(g.angle+g.cfg.AngularSpeed*dt.Seconds(), 2*math.Pi)
}

// Centers returns both gradient centers at the current angle.
func (g *Gradients) Centers() (Point, Point) {
	w, h := g.surface.Size()
	fw, fh := float64(w), float64(h)
	c := Point{X: fw / 2, Y: fh / 2}
	return Rotate(Point{X: fw / 4, Y: fh / 2}, c, g.angle),
		Rotate(Point{X: 3 * fw / 4, Y: fh / 2}, c, g.angle)
}

// Draw fills the background, multiplies both gradients over it and tiles the
// grain on top.
func (g *Gradients) Draw() error {
	if g.surface == nil {
		return nil
	}
	bg, err := theme.Resolve(g.palette, theme.Background)
	if err != nil {
		return fmt.Errorf("gradients: %w", err)
	}
	fg, err := theme.Resolve(g.palette, theme.Foreground)
	if err != nil {
		return fmt.Errorf("gradients: %w", err)
	}
	accent, err := theme.Resolve(g.palette, theme.Accent)
	if err != nil {
		return fmt.Errorf("gradients: %w", err)
	}

	w, h := g.surface.Size()
	radius := g.cfg.Radius * float64(max(w, h))
	p1, p2 := g.Centers()

	g.surface.FillRect(0, 0, float64(w), float64(h), bg)
	g.surface.FillRadialGradient(core.RadialGradient{
		X: p1.X, Y: p1.Y, Radius: radius,
		Stops: []core.ColorStop{{Offset: 0, Color: fg}, {Offset: 1, Color: bg}},
	}, core.BlendMultiply)
	g.surface.FillRadialGradient(core.RadialGradient{
		X: p2.X, Y: p2.Y, Radius: radius,
		Stops: []core.ColorStop{{Offset: 0, Color: accent}, {Offset: 1, Color: bg}},
	}, core.BlendMultiply)
	if g.grain != nil {
		g.surface.FillPattern(g.grain)
	}
	return nil
}

func init() {
	core.Register(Name, func(env core.Env) core.Variant {
		return New(FromMap(env.Params), env.Rand, env.Palette)
	})
}
