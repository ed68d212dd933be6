//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
	baseline     = 12
	charWidth    = 7
)

// HUD draws Info as a translucent panel in the top-left corner.
type HUD struct {
	panel *ebiten.Image
}

// NewHUD constructs an empty HUD; the panel is sized on first draw.
func NewHUD() *HUD { return &HUD{} }

// Draw paints the panel using fg for text over a translucent bg.
func (h *HUD) Draw(screen *ebiten.Image, info Info, fg, bg color.Color) {
	lines := Lines(info)
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	w := width*charWidth + 2*panelPadding
	ht := len(lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != w || h.panel.Bounds().Dy() != ht {
		h.panel = ebiten.NewImage(w, ht)
	}

	r, g, b, _ := bg.RGBA()
	h.panel.Fill(color.RGBA{R: uint8(r >> 8 * 200 / 255), G: uint8(g >> 8 * 200 / 255), B: uint8(b >> 8 * 200 / 255), A: 200})
	face := basicfont.Face7x13
	for i, l := range lines {
		text.Draw(h.panel, l, face, panelPadding, panelPadding+i*lineHeight+baseline, fg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}
