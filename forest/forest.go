package forest

import "github.com/nikolausrauch/vessel-synthesizer/geom"

// Forest is an ordered collection of trees. It only grows by appending
// whole trees via CreateRoot; trees never merge or split.
type Forest struct {
	trees []*Tree
}

// Ref identifies a node across the whole forest: which tree, and which
// node within that tree's arena.
type Ref struct {
	TreeIndex int
	ID        NodeID
}

// CreateRoot appends a new single-node tree to the forest and returns a
// Ref to its root.
func (f *Forest) CreateRoot(pos geom.Point, radius float32) Ref {
	t := NewTree(pos, radius)
	f.trees = append(f.trees, t)
	return Ref{TreeIndex: len(f.trees) - 1, ID: t.Root()}
}

// Trees returns the forest's trees in creation order.
func (f *Forest) Trees() []*Tree { return f.trees }

// Tree returns the tree at index i.
func (f *Forest) Tree(i int) *Tree { return f.trees[i] }

// Empty reports whether the forest has no trees.
func (f *Forest) Empty() bool { return len(f.trees) == 0 }

// Node resolves a Ref to its node.
func (f *Forest) Node(ref Ref) *Node {
	return f.trees[ref.TreeIndex].GetNode(ref.ID)
}

// BreadthFirst invokes fn(tree, node) for every node of every tree, in
// forest order, parents before children within each tree.
func (f *Forest) BreadthFirst(fn func(t *Tree, n *Node)) {
	for _, t := range f.trees {
		t.BreadthFirst(fn)
	}
}
