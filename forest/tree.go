package forest

import (
	"fmt"

	"github.com/nikolausrauch/vessel-synthesizer/geom"
)

// Tree is an in-arena collection of nodes with exactly one root. The tree
// owns its nodes; references between nodes are by NodeID, never by
// pointer across tree boundaries.
type Tree struct {
	nodes []Node
	root  NodeID
}

// NewTree creates a tree with a single root node at pos with radius r.
func NewTree(pos geom.Point, radius float32) *Tree {
	t := &Tree{
		nodes: []Node{{ID: 0, Parent: noParent, Pos: pos, Radius: radius}},
		root:  0,
	}
	return t
}

// Root returns the tree's root node ID.
func (t *Tree) Root() NodeID { return t.root }

// GetNode returns the node for id. Panics if id is out of range; that
// would be a programmer error, since every NodeID in circulation was
// handed out by this same tree.
func (t *Tree) GetNode(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("forest: GetNode: id %d out of range (len=%d)", id, len(t.nodes)))
	}
	return &t.nodes[id]
}

// CreateChild appends a new child node to parentID. Panics if the parent
// already has two children; callers, i.e. the engine itself, must never
// trigger this.
func (t *Tree) CreateChild(parentID NodeID, pos geom.Point, radius float32) NodeID {
	parent := t.GetNode(parentID)
	if len(parent.Children) >= 2 {
		panic(fmt.Sprintf("forest: CreateChild: parent %d already has two children", parentID))
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{ID: id, Parent: parentID, Pos: pos, Radius: radius})

	parent = t.GetNode(parentID) // re-fetch: append above may have reallocated nodes
	parent.Children = append(parent.Children, id)
	return id
}

// ToRoot invokes fn(node) on start, then its parent, up to and including
// the root.
func (t *Tree) ToRoot(fn func(n *Node), start NodeID) {
	id := start
	for {
		n := t.GetNode(id)
		fn(n)
		if n.IsRoot() {
			return
		}
		id = n.Parent
	}
}

// BreadthFirst invokes fn(tree, node) on every node, parents before
// children.
func (t *Tree) BreadthFirst(fn func(t *Tree, n *Node)) {
	queue := []NodeID{t.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n := t.GetNode(id)
		fn(t, n)
		queue = append(queue, n.Children...)
	}
}

// NodeCount returns the number of nodes in the tree's arena.
func (t *Tree) NodeCount() int { return len(t.nodes) }
