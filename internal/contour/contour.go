// Package contour extracts isoline segments from a scalar field with the
// marching-squares lookup.
package contour

import "backdrop/internal/core"

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Segment is one straight piece of an isoline.
type Segment struct {
	A, B Point
}

// edge identifies a side of a 2x2 cell block.
type edge uint8

const (
	top edge = iota
	right
	bottom
	left
)

// table maps a corner code to the edge pairs crossed by the isoline. Codes 5
// and 10 are saddles and emit two segments each.
var table = [16][][2]edge{
	0:  nil,
	1:  {{left, bottom}},
	2:  {{bottom, right}},
	3:  {{left, right}},
	4:  {{top, right}},
	5:  {{left, top}, {bottom, right}},
	6:  {{top, bottom}},
	7:  {{left, top}},
	8:  {{left, top}},
	9:  {{top, bottom}},
	10: {{top, right}, {left, bottom}},
	11: {{top, right}},
	12: {{left, right}},
	13: {{bottom, right}},
	14: {{left, bottom}},
	15: nil,
}

// Classify thresholds the four corners of a block, clockwise from top-left,
// into a 4-bit code tl<<3 | tr<<2 | br<<1 | bl.
func Classify(tl, tr, br, bl, threshold float64) uint8 {
	var code uint8
	if tl > threshold {
		code |= 8
	}
	if tr > threshold {
		code |= 4
	}
	if br > threshold {
		code |= 2
	}
	if bl > threshold {
		code |= 1
	}
	return code
}

// SegmentCount returns how many segments a block with code emits.
func SegmentCount(code uint8) int {
	return len(table[code&15])
}

// Segments walks every 2x2 block of f and returns the isoline segments at
// threshold. Field samples sit on a lattice spaced cellSize pixels apart.
func Segments(f *core.Field, threshold, cellSize float64) []Segment {
	var segs []Segment
	for y := 0; y+1 < f.H; y++ {
		for x := 0; x+1 < f.W; x++ {
			segs = appendCell(segs, f, x, y, threshold, cellSize)
		}
	}
	return segs
}

func appendCell(segs []Segment, f *core.Field, x, y int, threshold, cellSize float64) []Segment {
	tl := f.At(x, y)
	tr := f.At(x+1, y)
	br := f.At(x+1, y+1)
	bl := f.At(x, y+1)
	pairs := table[Classify(tl, tr, br, bl, threshold)]
	if len(pairs) == 0 {
		return segs
	}
	x0 := float64(x) * cellSize
	y0 := float64(y) * cellSize
	x1 := float64(x+1) * cellSize
	y1 := float64(y+1) * cellSize
	// Horizontal edges always run left to right and vertical edges top to
	// bottom so a shared edge yields the same point from both cells.
	at := func(e edge) Point {
		switch e {
		case top:
			return Point{X: crossing(x0, x1, tl, tr, threshold), Y: y0}
		case right:
			return Point{X: x1, Y: crossing(y0, y1, tr, br, threshold)}
		case bottom:
			return Point{X: crossing(x0, x1, bl, br, threshold), Y: y1}
		default:
			return Point{X: x0, Y: crossing(y0, y1, tl, bl, threshold)}
		}
	}
	for _, p := range pairs {
		segs = append(segs, Segment{A: at(p[0]), B: at(p[1])})
	}
	return segs
}

// crossing interpolates where the field crosses threshold between positions
// p0 (value v0) and p1 (value v1).
func crossing(p0, p1, v0, v1, threshold float64) float64 {
	d := v1 - v0
	if d == 0 {
		return (p0 + p1) / 2
	}
	t := (threshold - v0) / d
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p0 + t*(p1-p0)
}
