// Package refdomain provides reference Domain implementations ported
// from the original C++ implementation's domain_circle and
// domain_sphere. These are not part of the growth engine's core. They
// exist for tests and cmd/synthdemo, standing in for the real
// application-supplied domain that domain.Domain is meant to consume.
package refdomain

import (
	"math"
	"math/rand"

	"github.com/nikolausrauch/vessel-synthesizer/geom"
)

// Sphere samples points uniformly distributed inside a ball, mirroring
// domain_sphere from the original header. The original's exact
// distribution construction (a std::normal_distribution paired with a
// uniform one) is not specified beyond the member declarations; this
// implementation uses the standard technique for uniform-in-ball
// sampling: a normalized Gaussian direction scaled by a cube-rooted
// uniform radius.
type Sphere struct {
	Center geom.Point
	Radius float32

	rng *rand.Rand
}

// NewSphere creates a sphere domain centered at center with the given
// radius. Its generator starts seeded with 42; Seed replaces it.
func NewSphere(center geom.Point, radius float32) *Sphere {
	return &Sphere{Center: center, Radius: radius, rng: rand.New(rand.NewSource(42))}
}

func (s *Sphere) Seed(n uint32) {
	s.rng = rand.New(rand.NewSource(int64(n)))
}

func (s *Sphere) Sample() geom.Point {
	dir := geom.Point{
		X: float32(s.rng.NormFloat64()),
		Y: float32(s.rng.NormFloat64()),
		Z: float32(s.rng.NormFloat64()),
	}
	dir = geom.Normalize(dir)
	r := s.Radius * float32(math.Cbrt(s.rng.Float64()))
	return geom.Add(s.Center, geom.Scale(r, dir))
}

func (s *Sphere) MinExtends() geom.Point {
	return geom.Sub(s.Center, geom.Point{X: s.Radius, Y: s.Radius, Z: s.Radius})
}

func (s *Sphere) MaxExtends() geom.Point {
	return geom.Add(s.Center, geom.Point{X: s.Radius, Y: s.Radius, Z: s.Radius})
}
