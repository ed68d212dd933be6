package noise

import (
	"math"
	"testing"
)

func TestNoiseBounded(t *testing.T) {
	for x := -20.0; x < 20; x += 0.37 {
		for y := -5.0; y < 5; y += 0.41 {
			for _, z := range []float64{-3.3, 0, 0.5, 7.77, 300.1} {
				v := Noise3(x, y, z)
				if v < -1 || v > 1 || math.IsNaN(v) {
					t.Fatalf("Noise3(%v,%v,%v) = %v out of range", x, y, z, v)
				}
			}
		}
	}
}

func TestNoiseZeroAtLatticePoints(t *testing.T) {
	for _, p := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-4, 7, 255}, {256, 512, -1}} {
		if v := Noise3(p[0], p[1], p[2]); v != 0 {
			t.Fatalf("Noise3%v = %v, want 0", p, v)
		}
	}
}

func TestNoiseWrappers(t *testing.T) {
	if Noise1(1.7) != Noise3(1.7, 0, 0) {
		t.Fatal("Noise1 must sample the x axis")
	}
	if Noise2(1.7, -2.2) != Noise3(1.7, -2.2, 0) {
		t.Fatal("Noise2 must sample the z=0 plane")
	}
	if Noise3(3.1, 4.1, 5.9) != Noise3(3.1, 4.1, 5.9) {
		t.Fatal("Noise3 must be deterministic")
	}
	if (Perlin{}).Noise3(0.3, 0.6, 0.9) != Noise3(0.3, 0.6, 0.9) {
		t.Fatal("Perlin source must match Noise3")
	}
}

func TestNoiseContinuousAcrossLattice(t *testing.T) {
	points := [][3]float64{
		{2, 0.3, 0.7},
		{5, 1.5, 2.25},
		{-3, 0.1, 9.6},
		{0.42, 7, 1.3},
	}
	for _, p := range points {
		prev := math.Inf(1)
		for eps := 1e-2; eps >= 1e-7; eps /= 10 {
			d := math.Abs(Noise3(p[0]+eps, p[1], p[2]) - Noise3(p[0], p[1], p[2]))
			if d > prev {
				t.Fatalf("difference at %v grew from %g to %g as eps shrank to %g", p, prev, d, eps)
			}
			prev = d
		}
		if prev > 1e-5 {
			t.Fatalf("difference at %v did not vanish: %g", p, prev)
		}
		jump := math.Abs(Noise3(p[0]-1e-9, p[1], p[2]) - Noise3(p[0]+1e-9, p[1], p[2]))
		if jump > 1e-6 {
			t.Fatalf("discontinuity at %v: %g", p, jump)
		}
	}
}

func TestOctavesBounded(t *testing.T) {
	for octaves := 0; octaves <= 6; octaves++ {
		for _, persistence := range []float64{0.1, 0.5, 1} {
			for x := -4.0; x < 4; x += 0.53 {
				for y := -4.0; y < 4; y += 0.61 {
					v := Octaves(x, y, 1.3, octaves, persistence)
					if v < -1 || v > 1 {
						t.Fatalf("Octaves(%v,%v,octaves=%d,p=%v) = %v", x, y, octaves, persistence, v)
					}
				}
			}
		}
	}
}

func TestSingleOctaveMatchesNoise(t *testing.T) {
	if got, want := Octaves(1.25, 2.5, 3.75, 1, 0.5), Noise3(1.25, 2.5, 3.75); got != want {
		t.Fatalf("Octaves with one octave = %v, want %v", got, want)
	}
}

func TestSimplexSource(t *testing.T) {
	src := ByName("simplex", 7)
	if _, ok := src.(*Simplex); !ok {
		t.Fatalf("ByName(simplex) = %T", src)
	}
	if _, ok := ByName("", 0).(Perlin); !ok {
		t.Fatal("ByName fallback must be Perlin")
	}
	for x := -3.0; x < 3; x += 0.7 {
		v := OctavesOf(src, x, x*0.5, 2, 3, 0.5)
		if v < -1 || v > 1 {
			t.Fatalf("simplex octave sample %v out of range", v)
		}
	}
	if src.Noise3(1, 2, 3) != NewSimplex(7).Noise3(1, 2, 3) {
		t.Fatal("simplex source must be deterministic for a seed")
	}
}
