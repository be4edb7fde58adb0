// Package forest implements the node arena, tree, and forest containers.
// Nodes carry only a stable identifier; a tree is an arena indexed by
// that identifier, and the engine holds (tree, node id) pairs wherever
// the original C++ implementation held a raw node pointer. Dropping a
// node's back-pointer to its owning tree avoids the cyclic reference
// that pointer would otherwise create.
package forest

import "github.com/nikolausrauch/vessel-synthesizer/geom"

// NodeID identifies a node within its owning tree's arena. It is stable
// for the tree's lifetime.
type NodeID int

// noParent marks a root node.
const noParent NodeID = -1

// Node holds position, radius, and topology. Role (root/leaf/intermediate/
// joint) is derived from Parent/Children, never stored.
type Node struct {
	ID       NodeID
	Parent   NodeID
	Children []NodeID // len 0, 1, or 2
	Pos      geom.Point
	Radius   float32
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.Parent == noParent }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// IsIntermediate reports whether the node has exactly one child.
func (n *Node) IsIntermediate() bool { return len(n.Children) == 1 }

// IsJoint reports whether the node has exactly two children.
func (n *Node) IsJoint() bool { return len(n.Children) == 2 }
