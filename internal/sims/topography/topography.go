// Package topography animates a drifting noise height field drawn as filled
// plateaus outlined by marching-squares isolines.
package topography

import (
	"fmt"
	"math"
	"time"

	"backdrop/internal/colors"
	"backdrop/internal/contour"
	"backdrop/internal/core"
	"backdrop/internal/noise"
	"backdrop/internal/theme"
)

// Name identifies the variant in the registry.
const Name = "topography"

// Config controls the topography variant.
type Config struct {
	CellSize       int
	Scale          float64
	DriftX         float64
	DriftY         float64
	DriftZ         float64
	Octaves        int
	Persistence    float64
	Step           float64
	ScaleByElapsed bool
	Threshold      float64
	LineWidth      float64
	Noise          string
	MaxFPS         int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:    10,
		Scale:       0.05,
		DriftX:      0.4,
		DriftY:      0.3,
		DriftZ:      0.2,
		Octaves:     4,
		Persistence: 0.5,
		Step:        0.05,
		Threshold:   0.5,
		LineWidth:   1,
		Noise:       "perlin",
		MaxFPS:      30,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ReadInt(cfg, "cell_size", &c.CellSize, 1)
	core.ReadFloat(cfg, "scale", &c.Scale, 0)
	core.ReadFloat(cfg, "k1", &c.DriftX, math.Inf(-1))
	core.ReadFloat(cfg, "k2", &c.DriftY, math.Inf(-1))
	core.ReadFloat(cfg, "k3", &c.DriftZ, math.Inf(-1))
	core.ReadInt(cfg, "octaves", &c.Octaves, 1)
	core.ReadFloat(cfg, "persistence", &c.Persistence, 0)
	core.ReadFloat(cfg, "step", &c.Step, 0)
	core.ReadBool(cfg, "scale_by_elapsed", &c.ScaleByElapsed)
	core.ReadFloat(cfg, "threshold", &c.Threshold, 0)
	if c.Threshold >= 1 {
		c.Threshold = DefaultConfig().Threshold
	}
	core.ReadFloat(cfg, "line_width", &c.LineWidth, 0)
	core.ReadString(cfg, "noise", &c.Noise)
	core.ReadInt(cfg, "max_fps", &c.MaxFPS, 1)
	return c
}

// Topography implements core.Variant.
type Topography struct {
	cfg     Config
	rng     core.Rand
	palette core.Palette

	surface core.Surface
	src     noise.Source
	field   *core.Field
	t       float64
}

// New returns a topography variant.
func New(cfg Config, rng core.Rand, palette core.Palette) *Topography {
	return &Topography{cfg: cfg, rng: rng, palette: palette}
}

// Name returns the variant identifier.
func (tp *Topography) Name() string { return Name }

// MaxFPS returns the frame cap.
func (tp *Topography) MaxFPS() int { return tp.cfg.MaxFPS }

// Field exposes the sampled height field.
func (tp *Topography) Field() *core.Field { return tp.field }

// Time returns the simulation clock.
func (tp *Topography) Time() float64 { return tp.t }

// Parameters lists the effective configuration.
func (tp *Topography) Parameters() []core.Parameter {
	c := tp.cfg
	return []core.Parameter{
		core.IntParam("cell_size", c.CellSize, "lattice spacing in pixels"),
		core.FloatParam("scale", c.Scale, "noise frequency per lattice point"),
		core.FloatParam("k1", c.DriftX, "horizontal drift per unit time"),
		core.FloatParam("k2", c.DriftY, "vertical drift per unit time"),
		core.FloatParam("k3", c.DriftZ, "evolution rate along the noise z axis"),
		core.IntParam("octaves", c.Octaves, "noise octaves"),
		core.FloatParam("persistence", c.Persistence, "amplitude falloff per octave"),
		core.FloatParam("step", c.Step, "time added per update"),
		core.BoolParam("scale_by_elapsed", c.ScaleByElapsed, "scale step by real elapsed time"),
		core.FloatParam("threshold", c.Threshold, "isoline level"),
		core.FloatParam("line_width", c.LineWidth, "isoline stroke width"),
		core.StringParam("noise", c.Noise, "perlin or simplex"),
		core.IntParam("max_fps", c.MaxFPS, "frame cap"),
	}
}

// Load allocates a field covering the surface, reseeds the noise source and
// samples it at t = 0.
func (tp *Topography) Load(s core.Surface) error {
	tp.surface = s
	w, h := s.Size()
	cols := (w + tp.cfg.CellSize - 1) / tp.cfg.CellSize
	rows := (h + tp.cfg.CellSize - 1) / tp.cfg.CellSize
	tp.field = core.NewField(cols+1, rows+1)
	tp.src = noise.ByName(tp.cfg.Noise, int64(tp.rng.IntN(math.MaxInt32)))
	tp.t = 0
	tp.sample()
	return nil
}

// Update advances time and resamples the field.
func (tp *Topography) Update(dt time.Duration) {
	if tp.field == nil {
		return
	}
	step := tp.cfg.Step
	if tp.cfg.ScaleByElapsed {
		interval := time.Second / time.Duration(max(tp.cfg.MaxFPS, 1))
		step *= float64(dt) / float64(interval)
	}
	tp.t += step
	tp.sample()
}

func (tp *Topography) sample() {
	c := tp.cfg
	for y := 0; y < tp.field.H; y++ {
		for x := 0; x < tp.field.W; x++ {
			n := noise.OctavesOf(tp.src,
				float64(x)*c.Scale-c.DriftX*tp.t,
				float64(y)*c.Scale+c.DriftY*tp.t,
				c.DriftZ*tp.t,
				c.Octaves, c.Persistence)
			tp.field.Set(x, y, math.Min(math.Max((n+1)/2, 0), 1))
		}
	}
}

// Draw fills cells above the threshold and strokes the threshold isolines.
func (tp *Topography) Draw() error {
	if tp.surface == nil || tp.field == nil {
		return nil
	}
	bg, err := theme.Resolve(tp.palette, theme.Background)
	if err != nil {
		return fmt.Errorf("topography: %w", err)
	}
	accent, err := theme.Resolve(tp.palette, theme.Accent)
	if err != nil {
		return fmt.Errorf("topography: %w", err)
	}
	fg, err := theme.Resolve(tp.palette, theme.Foreground)
	if err != nil {
		return fmt.Errorf("topography: %w", err)
	}

	tp.surface.Clear()
	size := float64(tp.cfg.CellSize)
	th := tp.cfg.Threshold
	for y := 0; y+1 < tp.field.H; y++ {
		for x := 0; x+1 < tp.field.W; x++ {
			v := tp.cellValue(x, y)
			if v <= th {
				continue
			}
			c := colors.Lerp((v-th)/(1-th), bg, accent)
			tp.surface.FillRect(float64(x)*size, float64(y)*size, size, size, c)
		}
	}

	segs := contour.Segments(tp.field, th, size)
	if len(segs) == 0 {
		return nil
	}
	for _, s := range segs {
		tp.surface.MoveTo(s.A.X, s.A.Y)
		tp.surface.LineTo(s.B.X, s.B.Y)
	}
	tp.surface.Stroke(fg, tp.cfg.LineWidth)
	return nil
}

// cellValue averages the four corner samples of cell (x, y).
func (tp *Topography) cellValue(x, y int) float64 {
	f := tp.field
	return (f.At(x, y) + f.At(x+1, y) + f.At(x+1, y+1) + f.At(x, y+1)) / 4
}

func init() {
	core.Register(Name, func(env core.Env) core.Variant {
		return New(FromMap(env.Params), env.Rand, env.Palette)
	})
}
