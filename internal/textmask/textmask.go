// Package textmask rasterizes a line of text into a per-cell boolean mask.
package textmask

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Threshold is the alpha a sampled pixel must exceed for its cell to be set.
const Threshold = 128

// PixelsPerCell scales the font size from the cell size.
const PixelsPerCell = 30

var (
	parseOnce sync.Once
	mono      *opentype.Font
)

func monoFont() *opentype.Font {
	parseOnce.Do(func() {
		f, err := opentype.Parse(gomono.TTF)
		if err == nil {
			mono = f
		}
	})
	return mono
}

// face returns a monospace face of the given pixel size, or the built-in
// bitmap face if the TrueType font cannot be loaded.
func face(size float64) font.Face {
	f := monoFont()
	if f == nil {
		return basicfont.Face7x13
	}
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return basicfont.Face7x13
	}
	return fc
}

// Rasterize renders text centered horizontally with its vertical middle at
// 4/7 of the height of a (w*cellSize) x (h*cellSize) canvas, then samples
// the top-left pixel of every cell. The result has h rows of w cells.
func Rasterize(text string, w, h, cellSize int) [][]bool {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if cellSize < 1 {
		cellSize = 1
	}
	mask := make([][]bool, h)
	for y := range mask {
		mask[y] = make([]bool, w)
	}
	if text == "" {
		return mask
	}

	cw, ch := w*cellSize, h*cellSize
	img := image.NewAlpha(image.Rect(0, 0, cw, ch))
	fc := face(float64(cellSize * PixelsPerCell))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: fc}

	m := fc.Metrics()
	width := d.MeasureString(text)
	mid := fixed.I(ch * 4 / 7)
	d.Dot = fixed.Point26_6{
		X: fixed.I(cw/2) - width/2,
		Y: mid + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask[y][x] = img.AlphaAt(x*cellSize, y*cellSize).A > Threshold
		}
	}
	return mask
}

// Count reports how many cells of mask are set.
func Count(mask [][]bool) int {
	n := 0
	for _, row := range mask {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}
