package core

import (
	"image"
	"sort"
	"time"

	"backdrop/internal/colors"
)

// Size describes the dimensions of a grid or surface.
type Size struct {
	W int
	H int
}

// Variant is the contract every animation implements. The scheduler owns a
// single instance and calls Load once per surface size, then Update followed
// by Draw for every accepted frame.
type Variant interface {
	Name() string
	MaxFPS() int
	Load(s Surface) error
	Update(dt time.Duration)
	Draw() error
}

// BlendMode selects how a fill is composited onto the surface.
type BlendMode int

const (
	// BlendNormal is source-over compositing.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and destination channels.
	BlendMultiply
)

// ColorStop is one stop of a gradient; Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  colors.Color
}

// RadialGradient fades outwards from (X, Y) up to Radius.
type RadialGradient struct {
	X, Y   float64
	Radius float64
	Stops  []ColorStop
}

// Surface is the immediate-mode 2-D drawing API variants render into.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillCircle(x, y, r float64, c colors.Color)
	FillRect(x, y, w, h float64, c colors.Color)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(c colors.Color, width float64)
	FillRadialGradient(g RadialGradient, mode BlendMode)
	FillPattern(tile image.Image)
}

// Resizable surfaces can be reallocated to new pixel dimensions.
type Resizable interface {
	Resize(w, h int)
}

// Palette resolves named theme colors, falling back to the given encoding
// when the name is unset.
type Palette interface {
	Color(name, fallback string) (colors.Color, error)
}

// Env carries the collaborators a Factory may use.
type Env struct {
	Params  map[string]string
	Rand    Rand
	Palette Palette
}

// Factory constructs a Variant from its environment.
type Factory func(env Env) Variant

var variants = map[string]Factory{}

// Register adds a variant factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	variants[name] = f
}

// Variants exposes the registry of available factories.
func Variants() map[string]Factory {
	return variants
}

// Names returns the registered variant names in sorted order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
