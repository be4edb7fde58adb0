// Package spatialindex provides a bounded 3-D point index: an octree
// over a fixed extent supporting euclidean range queries under
// continuous insertion. It mirrors the teacher's systems.SpatialGrid
// contract (Insert/Clear/QueryRadius) but recursively partitions 3-D
// space into octants instead of a flat 2-D cell grid, and holds entries
// by value so the same type serves both node handles and
// attraction-point copies.
package spatialindex

import "github.com/nikolausrauch/vessel-synthesizer/geom"

// leafCapacity matches the oc_tree(min, max, 32) construction in the
// original C++ implementation; every split node has 8 children.
const leafCapacity = 32

type entry[T comparable] struct {
	pos   geom.Point
	value T
}

// Octree is a bounded octree keyed by position, holding payloads of type T
// by value. T must be comparable so Remove can identify a specific entry.
type Octree[T comparable] struct {
	min, max geom.Point
	root     *octnode[T]
}

type octnode[T comparable] struct {
	min, max geom.Point
	entries  []entry[T]
	children [8]*octnode[T]
	split    bool
}

// New creates an empty octree over the given extent. Points outside
// [min,max] need not be supported.
func New[T comparable](min, max geom.Point) *Octree[T] {
	return &Octree[T]{
		min:  min,
		max:  max,
		root: &octnode[T]{min: min, max: max},
	}
}

// Clear removes all entries, keeping the original extent.
func (o *Octree[T]) Clear() {
	o.root = &octnode[T]{min: o.min, max: o.max}
}

// Insert adds value at pos.
func (o *Octree[T]) Insert(pos geom.Point, value T) {
	o.root.insert(entry[T]{pos: pos, value: value})
}

// Remove deletes a previously inserted (pos, value) pair, if present.
func (o *Octree[T]) Remove(pos geom.Point, value T) {
	o.root.remove(pos, value)
}

// EuclideanRange appends to out every value within radius of center.
// Ordering is unspecified.
func (o *Octree[T]) EuclideanRange(center geom.Point, radius float32, out []T) []T {
	return o.root.rangeQuery(center, radius, out)
}

// Traverse visits every live value exactly once, in arbitrary order.
func (o *Octree[T]) Traverse(fn func(pos geom.Point, value T)) {
	o.root.traverse(fn)
}

func (n *octnode[T]) insert(e entry[T]) {
	if n.split {
		n.children[n.octantOf(e.pos)].insert(e)
		return
	}

	n.entries = append(n.entries, e)
	if len(n.entries) > leafCapacity && canSubdivide(n.min, n.max) {
		n.subdivide()
	}
}

func canSubdivide(min, max geom.Point) bool {
	// Stop subdividing once an axis can no longer be halved meaningfully;
	// guards against infinite recursion on coincident/near-coincident points.
	const minExtent = 1e-6
	return (max.X-min.X) > minExtent || (max.Y-min.Y) > minExtent || (max.Z-min.Z) > minExtent
}

func (n *octnode[T]) subdivide() {
	mid := geom.Scale(0.5, geom.Add(n.min, n.max))
	for i := 0; i < 8; i++ {
		cmin, cmax := octantBounds(n.min, n.max, mid, i)
		n.children[i] = &octnode[T]{min: cmin, max: cmax}
	}
	n.split = true

	pending := n.entries
	n.entries = nil
	for _, e := range pending {
		n.children[n.octantOf(e.pos)].insert(e)
	}
}

// octantOf returns which of the 8 children contains pos, by comparing
// against this node's midpoint.
func (n *octnode[T]) octantOf(pos geom.Point) int {
	mid := geom.Scale(0.5, geom.Add(n.min, n.max))
	idx := 0
	if pos.X >= mid.X {
		idx |= 1
	}
	if pos.Y >= mid.Y {
		idx |= 2
	}
	if pos.Z >= mid.Z {
		idx |= 4
	}
	return idx
}

func octantBounds(min, max, mid geom.Point, i int) (cmin, cmax geom.Point) {
	cmin, cmax = min, max
	if i&1 != 0 {
		cmin.X = mid.X
	} else {
		cmax.X = mid.X
	}
	if i&2 != 0 {
		cmin.Y = mid.Y
	} else {
		cmax.Y = mid.Y
	}
	if i&4 != 0 {
		cmin.Z = mid.Z
	} else {
		cmax.Z = mid.Z
	}
	return cmin, cmax
}

func (n *octnode[T]) remove(pos geom.Point, value T) bool {
	if n.split {
		return n.children[n.octantOf(pos)].remove(pos, value)
	}
	for i, e := range n.entries {
		if e.pos == pos && e.value == value {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (n *octnode[T]) rangeQuery(center geom.Point, radius float32, out []T) []T {
	if !sphereIntersectsBox(center, radius, n.min, n.max) {
		return out
	}

	if n.split {
		for _, c := range n.children {
			out = c.rangeQuery(center, radius, out)
		}
		return out
	}

	r2 := radius * radius
	for _, e := range n.entries {
		if geom.Dot(geom.Sub(e.pos, center), geom.Sub(e.pos, center)) <= r2 {
			out = append(out, e.value)
		}
	}
	return out
}

func sphereIntersectsBox(center geom.Point, radius float32, min, max geom.Point) bool {
	d := axisDist(center.X, min.X, max.X)
	d += axisDist(center.Y, min.Y, max.Y)
	d += axisDist(center.Z, min.Z, max.Z)
	return d <= radius*radius
}

func axisDist(v, min, max float32) float32 {
	if v < min {
		return (min - v) * (min - v)
	}
	if v > max {
		return (v - max) * (v - max)
	}
	return 0
}

func (n *octnode[T]) traverse(fn func(pos geom.Point, value T)) {
	if n.split {
		for _, c := range n.children {
			c.traverse(fn)
		}
		return
	}
	for _, e := range n.entries {
		fn(e.pos, e.value)
	}
}
