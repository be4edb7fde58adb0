package refdomain

import (
	"math"
	"math/rand"

	"github.com/nikolausrauch/vessel-synthesizer/geom"
)

// Circle samples points uniformly distributed on a disk in the XY plane
// (Z fixed at the center's Z), mirroring domain_circle from
// original_source/vessel_synthesis/domain.h.
type Circle struct {
	Center geom.Point
	Radius float32

	rng *rand.Rand
}

// NewCircle creates a circle domain centered at center with the given
// radius.
func NewCircle(center geom.Point, radius float32) *Circle {
	return &Circle{Center: center, Radius: radius, rng: rand.New(rand.NewSource(42))}
}

func (c *Circle) Seed(n uint32) {
	c.rng = rand.New(rand.NewSource(int64(n)))
}

func (c *Circle) Sample() geom.Point {
	theta := c.rng.Float64() * 2 * math.Pi
	r := c.Radius * float32(math.Sqrt(c.rng.Float64()))
	return geom.Point{
		X: c.Center.X + r*float32(math.Cos(theta)),
		Y: c.Center.Y + r*float32(math.Sin(theta)),
		Z: c.Center.Z,
	}
}

func (c *Circle) MinExtends() geom.Point {
	return geom.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, Z: c.Center.Z}
}

func (c *Circle) MaxExtends() geom.Point {
	return geom.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius, Z: c.Center.Z}
}
