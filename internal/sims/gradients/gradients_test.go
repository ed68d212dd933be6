package gradients

import (
	"math"
	"testing"
	"time"

	"backdrop/internal/core"
	"backdrop/internal/render"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRotateQuarterTurn(t *testing.T) {
	p := Rotate(Point{X: 2, Y: 1}, Point{X: 1, Y: 1}, math.Pi/2)
	if !near(p.X, 1) || !near(p.Y, 2) {
		t.Fatalf("rotated point = %+v, want (1,2)", p)
	}
}

func TestCentersOrbitSymmetrically(t *testing.T) {
	g := New(DefaultConfig(), core.NewRNG(1), nil)
	if err := g.Load(render.NewCanvas(200, 100)); err != nil {
		t.Fatal(err)
	}
	p1, p2 := g.Centers()
	if p1 != (Point{X: 50, Y: 50}) || p2 != (Point{X: 150, Y: 50}) {
		t.Fatalf("initial centers %+v %+v", p1, p2)
	}

	g.Update(10 * time.Second)
	if !near(g.Angle(), 1.5) {
		t.Fatalf("angle = %v after 10s at 0.15 rad/s", g.Angle())
	}
	p1, p2 = g.Centers()
	if !near(p1.X+p2.X, 200) || !near(p1.Y+p2.Y, 100) {
		t.Fatalf("centers %+v %+v are not mirrored about the middle", p1, p2)
	}
	if !near(math.Hypot(p1.X-100, p1.Y-50), 50) {
		t.Fatalf("orbit radius changed: %+v", p1)
	}
}

func TestGrainGeneratedOnceAtLoad(t *testing.T) {
	g := New(DefaultConfig(), core.NewRNG(3), nil)
	canvas := render.NewCanvas(64, 64)
	if err := g.Load(canvas); err != nil {
		t.Fatal(err)
	}
	grain := g.Grain()
	if b := grain.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("grain bounds %v", b)
	}
	if a := grain.NRGBAAt(7, 9).A; a != 20 {
		t.Fatalf("grain alpha %d, want round(0.08*255)", a)
	}
	snapshot := append([]uint8(nil), grain.Pix...)
	for i := 0; i < 3; i++ {
		g.Update(time.Second)
		if err := g.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	if g.Grain() != grain {
		t.Fatal("grain tile was replaced")
	}
	for i := range snapshot {
		if snapshot[i] != grain.Pix[i] {
			t.Fatal("grain tile changed between draws")
		}
	}
}

func TestDrawIsOpaque(t *testing.T) {
	canvas := render.NewCanvas(80, 40)
	g := New(DefaultConfig(), core.NewRNG(4), nil)
	if err := g.Load(canvas); err != nil {
		t.Fatal(err)
	}
	if err := g.Draw(); err != nil {
		t.Fatal(err)
	}
	img := canvas.Image()
	for _, p := range [][2]int{{0, 0}, {20, 20}, {79, 39}} {
		if a := img.RGBAAt(p[0], p[1]).A; a != 255 {
			t.Fatalf("pixel %v alpha %d, want opaque", p, a)
		}
	}
}

func TestLoadRestartsOrbit(t *testing.T) {
	g := New(DefaultConfig(), core.NewRNG(1), nil)
	canvas := render.NewCanvas(200, 100)
	if err := g.Load(canvas); err != nil {
		t.Fatal(err)
	}
	g.Update(2 * time.Second)
	if g.Angle() == 0 {
		t.Fatal("angle did not advance")
	}
	if err := g.Load(canvas); err != nil {
		t.Fatal(err)
	}
	if g.Angle() != 0 {
		t.Fatalf("angle = %v after reload, want 0", g.Angle())
	}
}
