package core

// Grid stores a 2D grid of 0/1 cells in row-major order. The visible area is
// W x H; Pad extra cells surround it on every side and are addressed with
// coordinates in [-Pad, W+Pad).
type Grid struct {
	W, H   int
	Pad    int
	stride int
	data   []uint8
}

// NewGrid allocates a grid with the given visible dimensions and padding.
func NewGrid(w, h, pad int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if pad < 0 {
		pad = 0
	}
	stride := w + 2*pad
	return &Grid{W: w, H: h, Pad: pad, stride: stride, data: make([]uint8, stride*(h+2*pad))}
}

// Cells exposes the backing slice, padding included.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for visible coordinates (x, y).
func (g *Grid) Index(x, y int) int { return (y+g.Pad)*g.stride + x + g.Pad }

// At returns the cell value at (x, y).
func (g *Grid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Alive reports whether the cell at (x, y) is set.
func (g *Grid) Alive(x, y int) bool { return g.data[g.Index(x, y)] != 0 }

// Set stores v at (x, y).
func (g *Grid) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// Wrap applies toroidal wrapping over the visible area.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// FillBorder sets every padding cell to v.
func (g *Grid) FillBorder(v uint8) {
	if g.Pad == 0 {
		return
	}
	for y := -g.Pad; y < g.H+g.Pad; y++ {
		for x := -g.Pad; x < g.W+g.Pad; x++ {
			if x < 0 || y < 0 || x >= g.W || y >= g.H {
				g.Set(x, y, v)
			}
		}
	}
}

// Population counts live cells in the visible area.
func (g *Grid) Population() int {
	n := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Alive(x, y) {
				n++
			}
		}
	}
	return n
}

// Field is a row-major grid of scalar samples, normally kept in [0, 1].
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a field with the given dimensions.
func NewField(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice.
func (f *Field) Values() []float64 { return f.data }

// At returns the sample at (x, y).
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }
