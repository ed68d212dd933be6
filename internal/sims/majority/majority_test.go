package majority

import (
	"image/color"
	"testing"

	"backdrop/internal/core"
	"backdrop/internal/render"
)

func loadEmpty(t *testing.T, w, h int) *Majority {
	t.Helper()
	m := New(DefaultConfig(), core.NewRNG(1), nil)
	if err := m.Load(render.NewCanvas(w*10, h*10)); err != nil {
		t.Fatalf("load: %v", err)
	}
	m.Grid().Clear()
	m.Grid().FillBorder(1)
	return m
}

func TestBorderGrowsInward(t *testing.T) {
	m := loadEmpty(t, 3, 3)

	m.Step()
	want := map[[2]int]bool{{0, 0}: true, {2, 0}: true, {0, 2}: true, {2, 2}: true}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := m.Grid().Alive(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("step 1: cell (%d,%d) alive=%v", x, y, got)
			}
		}
	}

	// The center sees exactly four live neighbors and keeps its state.
	m.Step()
	if m.Grid().Alive(1, 1) {
		t.Fatal("step 2: center with four neighbors must stay dead")
	}
	if m.Grid().Population() != 8 {
		t.Fatalf("step 2: population %d, want 8", m.Grid().Population())
	}

	m.Step()
	if m.Grid().Population() != 9 {
		t.Fatalf("step 3: population %d, want 9", m.Grid().Population())
	}
}

func TestBorderStaysAlive(t *testing.T) {
	m := New(DefaultConfig(), core.NewRNG(4), nil)
	if err := m.Load(render.NewCanvas(60, 40)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		m.Update(0)
	}
	g := m.Grid()
	for y := -1; y <= g.H; y++ {
		for x := -1; x <= g.W; x++ {
			if (x < 0 || y < 0 || x >= g.W || y >= g.H) && !g.Alive(x, y) {
				t.Fatalf("border cell (%d,%d) died", x, y)
			}
		}
	}
}

func TestDrawRendersDeadCells(t *testing.T) {
	m := loadEmpty(t, 2, 1)
	m.Grid().Set(0, 0, 1)
	canvas := render.NewCanvas(20, 10)
	m.surface = canvas
	if err := m.Draw(); err != nil {
		t.Fatal(err)
	}
	img := canvas.Image()
	if got := img.RGBAAt(15, 5); got != (color.RGBA{R: 0xff, G: 0x45, A: 0xff}) {
		t.Fatalf("dead cell square = %v", got)
	}
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Fatalf("live cell should not be drawn, got %v", got)
	}
	if got := img.RGBAAt(11, 1); got.A != 0 {
		t.Fatalf("square must leave a margin, got %v", got)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"draw_alive": "true", "square_scale": "3", "cell_size": "0"})
	if !c.DrawAlive || c.SquareScale != 1 || c.CellSize != 10 {
		t.Fatalf("unexpected config %+v", c)
	}
}
