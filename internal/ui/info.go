// Package ui lays out the heads-up panel shown over the animation.
package ui

import (
	"fmt"
	"strings"

	"backdrop/internal/core"
)

// Info is the state the HUD describes.
type Info struct {
	Variant string
	MaxFPS  int
	FPS     float64
	Theme   string
	Paused  bool
	Params  []core.Parameter
}

// KeyHelp lists the window key bindings.
const KeyHelp = "N next  T theme  O overlay  Q quit"

// Lines formats info as the HUD text, one entry per row.
func Lines(info Info) []string {
	title := info.Variant
	if title == "" {
		title = "(none)"
	}
	status := fmt.Sprintf("%.1f/%d fps", info.FPS, info.MaxFPS)
	if info.Paused {
		status = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  %s", title, status),
		"theme " + info.Theme,
	}
	width := 0
	for _, p := range info.Params {
		width = max(width, len(p.Key))
	}
	for _, p := range info.Params {
		lines = append(lines, fmt.Sprintf("%s%s  %s", p.Key, strings.Repeat(" ", width-len(p.Key)), p.Value))
	}
	return append(lines, KeyHelp)
}

// Smooth folds one frame delta in seconds into a running FPS estimate.
func Smooth(fps, deltaSeconds float64) float64 {
	if deltaSeconds <= 0 {
		return fps
	}
	sample := 1 / deltaSeconds
	if fps == 0 {
		return sample
	}
	return fps*0.9 + sample*0.1
}
