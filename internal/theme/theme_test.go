package theme

import (
	"errors"
	"testing"

	"backdrop/internal/colors"
)

func TestColorFallsBackWhenUnset(t *testing.T) {
	th := New(map[string]Palette{
		Light: {Foreground: "#000", Background: "   "},
	}, Light)

	fg, err := th.Color(Foreground, "#fff")
	if err != nil || fg != (colors.Color{A: 1}) {
		t.Fatalf("foreground = %+v, %v", fg, err)
	}
	bg, err := th.Color(Background, "#ffffff")
	if err != nil || bg != (colors.Color{R: 1, G: 1, B: 1, A: 1}) {
		t.Fatalf("empty variable must use fallback, got %+v, %v", bg, err)
	}
	if _, err := th.Color(Accent, "#00ff00"); err != nil {
		t.Fatalf("missing variable must use fallback: %v", err)
	}
}

func TestColorPropagatesFormatError(t *testing.T) {
	th := New(map[string]Palette{Dark: {Accent: "not-a-color"}}, Dark)
	_, err := th.Color(Accent, "#fff")
	var fe *colors.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestToggleAndModes(t *testing.T) {
	th := New(nil, Dark)
	if th.Mode() != Dark {
		t.Fatalf("mode = %q", th.Mode())
	}
	if got := th.Toggle(); got != Light {
		t.Fatalf("Toggle() = %q, want light", got)
	}
	if got := th.Toggle(); got != Dark {
		t.Fatalf("Toggle() = %q, want dark", got)
	}
	if err := th.SetMode("sepia"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("SetMode(sepia) = %v", err)
	}
	if New(nil, "sepia").Mode() != Dark {
		t.Fatal("unknown initial mode must fall back to the first sorted mode")
	}
}

func TestDefaultPalettesParse(t *testing.T) {
	for mode, p := range DefaultPalettes() {
		for name, text := range p {
			if _, err := colors.Parse(text); err != nil {
				t.Fatalf("%s/%s: %v", mode, name, err)
			}
		}
	}
}

func TestResolveUsesBuiltInFallbacks(t *testing.T) {
	c, err := Resolve(nil, Foreground)
	if err != nil || c.ToHex() != FallbackForeground {
		t.Fatalf("nil palette foreground = %v, %v", c.ToHex(), err)
	}
	th := New(map[string]Palette{Light: {Muted: ""}}, Light)
	c, err = Resolve(th, Muted)
	if err != nil || c.ToHex() != FallbackMuted {
		t.Fatalf("unset muted = %v, %v", c.ToHex(), err)
	}
	if Fallback("nope") != "" {
		t.Fatal("unknown names have no fallback")
	}
}
