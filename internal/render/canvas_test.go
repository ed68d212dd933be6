package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"backdrop/internal/colors"
	"backdrop/internal/core"
)

func TestCanvasClampsSize(t *testing.T) {
	c := NewCanvas(0, -5)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Fatalf("Size() = %dx%d, want 1x1", w, h)
	}
	c.Resize(40, 30)
	if w, h := c.Size(); w != 40 || h != 30 {
		t.Fatalf("Size() after Resize = %dx%d", w, h)
	}
	if len(c.Pixels()) != 40*30*4 {
		t.Fatalf("pixel buffer has %d bytes", len(c.Pixels()))
	}
}

func TestFillRectAndClear(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(0, 0, 10, 10, colors.Color{R: 1, A: 1})
	if got := c.Image().RGBAAt(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("pixel after FillRect = %+v", got)
	}
	c.Clear()
	if got := c.Image().RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Fatalf("pixel after Clear = %+v", got)
	}
}

func TestFillCircleCoversCenterOnly(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillCircle(10, 10, 4, colors.Color{G: 1, A: 1})
	if got := c.Image().RGBAAt(10, 10); got.G != 255 {
		t.Fatalf("circle center = %+v", got)
	}
	if got := c.Image().RGBAAt(1, 1); got.A != 0 {
		t.Fatalf("corner outside the circle painted: %+v", got)
	}
}

func TestStrokeDrawsLine(t *testing.T) {
	c := NewCanvas(20, 20)
	c.MoveTo(0, 10)
	c.LineTo(20, 10)
	c.Stroke(colors.Color{B: 1, A: 1}, 2)
	if got := c.Image().RGBAAt(10, 10); got.B == 0 {
		t.Fatalf("line pixel not painted: %+v", got)
	}
	if got := c.Image().RGBAAt(10, 2); got.A != 0 {
		t.Fatalf("pixel away from the line painted: %+v", got)
	}
}

func TestMultiplyGradient(t *testing.T) {
	c := NewCanvas(8, 8)
	c.FillRect(0, 0, 8, 8, colors.Color{R: 1, G: 1, B: 1, A: 1})
	half := colors.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	c.FillRadialGradient(core.RadialGradient{
		X: 4, Y: 4, Radius: 100,
		Stops: []core.ColorStop{{Offset: 0, Color: half}, {Offset: 1, Color: half}},
	}, core.BlendMultiply)
	got := c.Image().RGBAAt(4, 4)
	if got.R < 126 || got.R > 130 || got.A != 255 {
		t.Fatalf("white multiplied by gray = %+v", got)
	}
	c.FillRadialGradient(core.RadialGradient{
		X: 4, Y: 4, Radius: 100,
		Stops: []core.ColorStop{{Offset: 0, Color: colors.Black}, {Offset: 1, Color: colors.Black}},
	}, core.BlendMultiply)
	if got := c.Image().RGBAAt(4, 4); got.R != 0 || got.A != 255 {
		t.Fatalf("multiply by black = %+v", got)
	}
}

func TestMultiplyIdentities(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	dst.Pix = []uint8{200, 100, 50, 255}
	src.Pix = []uint8{0, 0, 0, 0}
	multiply(dst, src)
	if dst.Pix[0] != 200 || dst.Pix[1] != 100 || dst.Pix[2] != 50 || dst.Pix[3] != 255 {
		t.Fatalf("transparent source changed destination: %v", dst.Pix)
	}
	src.Pix = []uint8{255, 255, 255, 255}
	multiply(dst, src)
	if dst.Pix[0] != 200 || dst.Pix[1] != 100 || dst.Pix[2] != 50 {
		t.Fatalf("white source changed destination: %v", dst.Pix)
	}
}

func TestFillPatternTiles(t *testing.T) {
	tile := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	tile.Set(0, 0, color.NRGBA{R: 255, A: 255})
	c := NewCanvas(6, 6)
	c.FillPattern(tile)
	for _, p := range []image.Point{{0, 0}, {2, 2}, {4, 0}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got.R != 255 {
			t.Fatalf("tile origin repeated at %v = %+v", p, got)
		}
	}
	if got := c.Image().RGBAAt(1, 1); got.A != 0 {
		t.Fatalf("transparent tile pixel painted: %+v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	c := NewCanvas(3, 2)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("decoded bounds %v", img.Bounds())
	}
}

func TestFlattenIsOpaque(t *testing.T) {
	c := NewCanvas(4, 4)
	c.FillRect(0, 0, 2, 4, colors.Color{R: 1, A: 1})
	img := c.Flatten(colors.Color{B: 1, A: 1})
	if r, _, _, a := img.At(0, 0).RGBA(); r != 0xffff || a != 0xffff {
		t.Fatalf("painted pixel = %v", img.At(0, 0))
	}
	if _, _, b, a := img.At(3, 3).RGBA(); b != 0xffff || a != 0xffff {
		t.Fatalf("background pixel = %v", img.At(3, 3))
	}
}
