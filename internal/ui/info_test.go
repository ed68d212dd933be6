package ui

import (
	"strings"
	"testing"

	"backdrop/internal/core"
)

func TestLinesAlignParameters(t *testing.T) {
	lines := Lines(Info{
		Variant: "life",
		MaxFPS:  10,
		FPS:     9.94,
		Theme:   "dark",
		Params: []core.Parameter{
			core.IntParam("cell_size", 8, ""),
			core.IntParam("revive", 5, ""),
		},
	})
	want := []string{
		"life  9.9/10 fps",
		"theme dark",
		"cell_size  8",
		"revive     5",
		KeyHelp,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLinesPaused(t *testing.T) {
	lines := Lines(Info{Paused: true})
	if !strings.HasPrefix(lines[0], "(none)  paused") {
		t.Fatalf("title line = %q", lines[0])
	}
}

func TestSmooth(t *testing.T) {
	if got := Smooth(0, 0.1); got != 10 {
		t.Fatalf("first sample = %v", got)
	}
	if got := Smooth(10, 0.05); got < 10.99 || got > 11.01 {
		t.Fatalf("smoothed = %v, want 11", got)
	}
	if got := Smooth(10, 0); got != 10 {
		t.Fatalf("zero delta changed estimate to %v", got)
	}
}
