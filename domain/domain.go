// Package domain defines the external sampling collaborator the growth
// engine consumes. Concrete domains such as boundary enforcement, voxel
// grids, and visualization are out of scope for this repository; only
// the interface and the small reference samplers under refdomain/ (used
// by tests and the demo command) live here.
package domain

import "github.com/nikolausrauch/vessel-synthesizer/geom"

// Domain samples points used to seed attraction points. Reproducibility
// is per-domain; the engine makes no guarantees if the domain is
// nondeterministic.
type Domain interface {
	Seed(n uint32)
	Sample() geom.Point
	MinExtends() geom.Point
	MaxExtends() geom.Point
}

// Samples calls d.Sample count times and returns the points, in the
// role of a samples(out, count) convenience. It is a package-level
// helper; Domain implementations do not provide their own.
func Samples(d Domain, count uint32) []geom.Point {
	out := make([]geom.Point, count)
	for i := range out {
		out[i] = d.Sample()
	}
	return out
}
