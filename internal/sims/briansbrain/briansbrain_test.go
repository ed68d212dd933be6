package briansbrain

import (
	"testing"

	"backdrop/internal/core"
	"backdrop/internal/render"
)

func TestStateCycle(t *testing.T) {
	b := New(DefaultConfig(), core.NewRNG(1), nil)
	if err := b.Load(render.NewCanvas(60, 60)); err != nil {
		t.Fatal(err)
	}
	g := b.Grid()
	g.Clear()
	g.Set(4, 4, stateOn)
	g.Set(5, 4, stateOn)

	b.Step()
	g = b.Grid()
	if g.At(4, 4) != stateDying || g.At(5, 4) != stateDying {
		t.Fatalf("firing cells should start dying: %d %d", g.At(4, 4), g.At(5, 4))
	}
	// Cells touching exactly two firing cells ignite.
	for _, p := range [][2]int{{4, 3}, {5, 3}, {4, 5}, {5, 5}} {
		if g.At(p[0], p[1]) != stateOn {
			t.Fatalf("cell %v = %d, want firing", p, g.At(p[0], p[1]))
		}
	}
	if g.At(3, 4) != stateDead {
		t.Fatalf("cell with one firing neighbor ignited")
	}

	b.Step()
	if b.Grid().At(4, 4) != stateDead {
		t.Fatal("dying cell must die next tick")
	}
}

func TestDrawAndRegistry(t *testing.T) {
	v := core.Variants()[Name](core.Env{Rand: core.NewRNG(2)})
	canvas := render.NewCanvas(30, 30)
	if err := v.Load(canvas); err != nil {
		t.Fatal(err)
	}
	v.Update(0)
	if err := v.Draw(); err != nil {
		t.Fatal(err)
	}
	if v.MaxFPS() != 15 {
		t.Fatalf("max fps = %d", v.MaxFPS())
	}
}
