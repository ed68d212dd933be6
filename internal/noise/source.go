package noise

import "github.com/ojrac/opensimplex-go"

// Source is a three-dimensional scalar noise function.
type Source interface {
	Noise3(x, y, z float64) float64
}

// Perlin is the canonical improved Perlin generator. It has no state.
type Perlin struct{}

// Noise3 implements Source.
func (Perlin) Noise3(x, y, z float64) float64 { return Noise3(x, y, z) }

// Simplex adapts OpenSimplex noise to Source. Unlike Perlin it is seeded.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex returns an OpenSimplex source for seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Noise3 implements Source.
func (s *Simplex) Noise3(x, y, z float64) float64 {
	v := s.n.Eval3(x, y, z)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// ByName resolves a source identifier used in variant params. Unknown names
// fall back to Perlin.
func ByName(name string, seed int64) Source {
	switch name {
	case "simplex", "opensimplex":
		return NewSimplex(seed)
	default:
		return Perlin{}
	}
}

// OctavesOf is Octaves over an arbitrary source. octaves below one are
// treated as a single octave.
func OctavesOf(src Source, x, y, z float64, octaves int, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	totalAmplitude := 0.0
	for i := 0; i < octaves; i++ {
		total += src.Noise3(x*frequency, y*frequency, z*frequency) * amplitude
		totalAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if totalAmplitude == 0 {
		return 0
	}
	return total / totalAmplitude
}
