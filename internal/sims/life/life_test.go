package life

import (
	"image/color"
	"testing"

	"backdrop/internal/core"
	"backdrop/internal/render"
)

// load builds a Life over a w x h cell grid with no revivals and clears it.
func load(t *testing.T, w, h int) *Life {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CellSize = 4
	cfg.Revive = 0
	cfg.Jitter = false
	l := New(cfg, core.NewRNG(1), nil)
	if err := l.Load(render.NewCanvas(w*cfg.CellSize, h*cfg.CellSize)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if g := l.Grid(); g.W != w || g.H != h {
		t.Fatalf("grid %dx%d, want %dx%d", g.W, g.H, w, h)
	}
	l.Grid().Clear()
	return l
}

func expectAlive(t *testing.T, l *Life, want map[[2]int]bool, step string) {
	t.Helper()
	g := l.Grid()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if alive := g.Alive(x, y); alive != want[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, !alive)
			}
		}
	}
}

func TestBlockOnSmallTorus(t *testing.T) {
	l := load(t, 5, 5)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			l.Grid().Set(x, y, 1)
		}
	}
	l.Update(0)

	expectAlive(t, l, map[[2]int]bool{
		{1, 1}: true, {3, 1}: true, {1, 3}: true, {3, 3}: true,
		{2, 0}: true, {0, 2}: true, {4, 2}: true, {2, 4}: true,
	}, "first generation")
}

func TestBlinkerOscillation(t *testing.T) {
	l := load(t, 10, 10)
	l.Grid().Set(4, 5, 1)
	l.Grid().Set(5, 5, 1)
	l.Grid().Set(6, 5, 1)

	l.Update(0)
	expectAlive(t, l, map[[2]int]bool{{5, 4}: true, {5, 5}: true, {5, 6}: true}, "first step")

	l.Update(0)
	expectAlive(t, l, map[[2]int]bool{{4, 5}: true, {5, 5}: true, {6, 5}: true}, "second step")
}

func TestNeighborsWrapAcrossEdges(t *testing.T) {
	l := load(t, 6, 6)
	// A blinker straddling the left and right edges.
	l.Grid().Set(5, 2, 1)
	l.Grid().Set(0, 2, 1)
	l.Grid().Set(1, 2, 1)

	l.Step()
	expectAlive(t, l, map[[2]int]bool{{0, 1}: true, {0, 2}: true, {0, 3}: true}, "wrapped step")
}

func TestReviveSetsCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 0
	cfg.Revive = 3
	l := New(cfg, core.NewRNG(7), nil)
	if err := l.Load(render.NewCanvas(80, 80)); err != nil {
		t.Fatal(err)
	}
	if n := l.Grid().Population(); n != 0 {
		t.Fatalf("density 0 seeded %d cells", n)
	}
	l.revive()
	if n := l.Grid().Population(); n < 1 || n > cfg.Revive {
		t.Fatalf("revived %d cells, want between 1 and %d", n, cfg.Revive)
	}
}

func TestDrawUsesForegroundForLiveCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jitter = false
	cfg.Shape = ShapeSquare
	l := New(cfg, core.NewRNG(3), nil)
	canvas := render.NewCanvas(24, 24)
	if err := l.Load(canvas); err != nil {
		t.Fatal(err)
	}
	l.Grid().Clear()
	l.Grid().Set(1, 1, 1)
	if err := l.Draw(); err != nil {
		t.Fatalf("draw: %v", err)
	}

	img := canvas.Image()
	if got := img.RGBAAt(12, 12); got != (color.RGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xff}) {
		t.Fatalf("live cell pixel = %v", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Fatalf("dead cell pixel should be transparent, got %v", got)
	}
}

func TestTextMaskHighlightsCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 2
	cfg.Text = "#"
	l := New(cfg, core.NewRNG(5), nil)
	if err := l.Load(render.NewCanvas(120, 80)); err != nil {
		t.Fatal(err)
	}
	masked := 0
	for y := 0; y < l.Grid().H; y++ {
		for x := 0; x < l.Grid().W; x++ {
			if l.Masked(x, y) {
				masked++
			}
		}
	}
	if masked == 0 {
		t.Fatal("text mask covered no cells")
	}
	if l.Masked(0, 0) {
		t.Fatal("corner cell should be outside the glyph")
	}
}

func TestBlankTextDropsMask(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "   "
	l := New(cfg, core.NewRNG(5), nil)
	if err := l.Load(render.NewCanvas(80, 80)); err != nil {
		t.Fatal(err)
	}
	if l.mask != nil {
		t.Fatal("a mask with no covered cells should be dropped")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"cell_size": "12",
		"density":   "2",
		"revive":    "-1",
		"shape":     "hexagon",
		"jitter":    "false",
		"max_fps":   "24",
	})
	if c.CellSize != 12 || c.Density != 1 || c.Revive != 5 || c.Shape != ShapeCircle || c.Jitter || c.MaxFPS != 24 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestRegistered(t *testing.T) {
	f, ok := core.Variants()[Name]
	if !ok {
		t.Fatal("life is not registered")
	}
	v := f(core.Env{Params: map[string]string{"max_fps": "15"}, Rand: core.NewRNG(1)})
	if v.Name() != Name || v.MaxFPS() != 15 {
		t.Fatalf("factory built %s at %d fps", v.Name(), v.MaxFPS())
	}
}
