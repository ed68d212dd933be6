package life

import "backdrop/internal/core"

// Shapes a live cell can be drawn as.
const (
	ShapeCircle = "circle"
	ShapeSquare = "square"
)

// Config controls the Game of Life variant.
type Config struct {
	CellSize int
	Density  float64
	Revive   int
	Settle   bool
	Jitter   bool
	Text     string
	Shape    string
	MaxFPS   int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize: 8,
		Density:  0.65,
		Revive:   5,
		Jitter:   true,
		Shape:    ShapeCircle,
		MaxFPS:   10,
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
	if c.Density > 1 {
		c.Density = 1
	}
	core.ReadInt(cfg, "revive", &c.Revive, 0)
	core.ReadBool(cfg, "settle", &c.Settle)
	core.ReadBool(cfg, "jitter", &c.Jitter)
	core.ReadString(cfg, "text", &c.Text)
	core.ReadString(cfg, "shape", &c.Shape)
	if c.Shape != ShapeSquare {
		c.Shape = ShapeCircle
	}
	core.ReadInt(cfg, "max_fps", &c.MaxFPS, 1)
	return c
}

// Parameters lists the tunables with their effective values.
func (c Config) Parameters() []core.Parameter {
	return []core.Parameter{
		core.IntParam("cell_size", c.CellSize, "cell edge in pixels"),
		core.FloatParam("density", c.Density, "probability a cell starts alive"),
		core.IntParam("revive", c.Revive, "random cells forced alive each generation"),
		core.BoolParam("settle", c.Settle, "run one generation right after loading"),
		core.BoolParam("jitter", c.Jitter, "offset each dot by up to one pixel"),
		core.StringParam("text", c.Text, "text rendered as a highlight mask"),
		core.StringParam("shape", c.Shape, "circle or square"),
		core.IntParam("max_fps", c.MaxFPS, "frame cap"),
	}
}
