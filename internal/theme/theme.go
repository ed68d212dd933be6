// Package theme resolves named color variables against light and dark
// palettes, mirroring the style variables of the embedding page.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"backdrop/internal/colors"
	"backdrop/internal/core"
)

// Variable names shared by every variant.
const (
	Background = "background"
	Foreground = "foreground"
	Accent     = "accent"
	Muted      = "muted"
)

// Fallback encodings used when a palette leaves a variable unset.
const (
	FallbackBackground = "#f5f3ef"
	FallbackForeground = "#ff4500"
	FallbackAccent     = "#8b0000"
	FallbackMuted      = "#d3d3d3"
)

// Modes.
const (
	Light = "light"
	Dark  = "dark"
)

// ErrUnknownMode is returned by SetMode for modes without a palette.
var ErrUnknownMode = errors.New("theme: unknown mode")

// Palette maps variable names to color encodings.
type Palette map[string]string

// Theme holds one palette per mode and the active mode.
type Theme struct {
	mode     string
	palettes map[string]Palette
}

// DefaultPalettes returns the built-in light and dark palettes.
func DefaultPalettes() map[string]Palette {
	return map[string]Palette{
		Light: {
			Background: FallbackBackground,
			Foreground: FallbackForeground,
			Accent:     FallbackAccent,
			Muted:      FallbackMuted,
		},
		Dark: {
			Background: "#111216",
			Foreground: "#e4572e",
			Accent:     "#f3a712",
			Muted:      "#2e2f36",
		},
	}
}

// New builds a theme. A nil palette map uses DefaultPalettes; an unknown mode
// falls back to the first mode in sorted order.
func New(palettes map[string]Palette, mode string) *Theme {
	if len(palettes) == 0 {
		palettes = DefaultPalettes()
	}
	t := &Theme{palettes: palettes}
	if err := t.SetMode(mode); err != nil {
		t.mode = t.Modes()[0]
	}
	return t
}

// Mode returns the active mode.
func (t *Theme) Mode() string { return t.mode }

// Modes lists the configured modes in sorted order.
func (t *Theme) Modes() []string {
	modes := make([]string, 0, len(t.palettes))
	for m := range t.palettes {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}

// SetMode activates mode.
func (t *Theme) SetMode(mode string) error {
	if _, ok := t.palettes[mode]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	t.mode = mode
	return nil
}

// Toggle switches between light and dark, or cycles through the configured
// modes when they are named differently. It returns the new mode.
func (t *Theme) Toggle() string {
	modes := t.Modes()
	for i, m := range modes {
		if m == t.mode {
			t.mode = modes[(i+1)%len(modes)]
			break
		}
	}
	return t.mode
}

// Lookup returns the raw encoding for name in the active palette, or "".
func (t *Theme) Lookup(name string) string {
	return strings.TrimSpace(t.palettes[t.mode][name])
}

// Names lists the variables of the active palette in sorted order.
func (t *Theme) Names() []string {
	p := t.palettes[t.mode]
	names := make([]string, 0, len(p))
	for n := range p {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Color resolves name to a parsed color. Unset or empty variables use
// fallback; a set but malformed variable is an error.
func (t *Theme) Color(name, fallback string) (colors.Color, error) {
	text := t.Lookup(name)
	if text == "" {
		text = fallback
	}
	c, err := colors.Parse(text)
	if err != nil {
		return colors.Color{}, fmt.Errorf("theme variable %s: %w", name, err)
	}
	return c, nil
}

// Fallback returns the built-in encoding for a shared variable name, or ""
// for names outside the shared set.
func Fallback(name string) string {
	switch name {
	case Background:
		return FallbackBackground
	case Foreground:
		return FallbackForeground
	case Accent:
		return FallbackAccent
	case Muted:
		return FallbackMuted
	}
	return ""
}

// Resolve looks name up in p with its built-in fallback. A nil palette
// resolves every shared name to its fallback.
func Resolve(p core.Palette, name string) (colors.Color, error) {
	if p == nil {
		return colors.Parse(Fallback(name))
	}
	return p.Color(name, Fallback(name))
}
