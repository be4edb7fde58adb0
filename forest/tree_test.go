package forest

import (
	"testing"

	"github.com/nikolausrauch/vessel-synthesizer/geom"
)

func TestTreeRootIsRootAndLeaf(t *testing.T) {
	tree := NewTree(geom.Point{}, 1.0)
	root := tree.GetNode(tree.Root())

	if !root.IsRoot() {
		t.Error("root should be root")
	}
	if !root.IsLeaf() {
		t.Error("fresh root should be leaf")
	}
}

func TestCreateChildPromotesRoles(t *testing.T) {
	tree := NewTree(geom.Point{}, 1.0)
	root := tree.Root()

	c0 := tree.CreateChild(root, geom.Point{X: 1}, 0.5)
	if !tree.GetNode(root).IsIntermediate() {
		t.Error("root with one child should be intermediate")
	}
	if !tree.GetNode(c0).IsLeaf() {
		t.Error("new child should be a leaf")
	}

	tree.CreateChild(root, geom.Point{X: -1}, 0.5)
	if !tree.GetNode(root).IsJoint() {
		t.Error("root with two children should be joint")
	}
}

func TestCreateChildPanicsOnThirdChild(t *testing.T) {
	tree := NewTree(geom.Point{}, 1.0)
	root := tree.Root()
	tree.CreateChild(root, geom.Point{X: 1}, 0.5)
	tree.CreateChild(root, geom.Point{X: -1}, 0.5)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on third child")
		}
	}()
	tree.CreateChild(root, geom.Point{Y: 1}, 0.5)
}

func TestToRootVisitsAncestorsInOrder(t *testing.T) {
	tree := NewTree(geom.Point{}, 1.0)
	root := tree.Root()
	child := tree.CreateChild(root, geom.Point{X: 1}, 0.5)
	grandchild := tree.CreateChild(child, geom.Point{X: 2}, 0.25)

	var visited []NodeID
	tree.ToRoot(func(n *Node) { visited = append(visited, n.ID) }, grandchild)

	want := []NodeID{grandchild, child, root}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestBreadthFirstParentsBeforeChildren(t *testing.T) {
	tree := NewTree(geom.Point{}, 1.0)
	root := tree.Root()
	c0 := tree.CreateChild(root, geom.Point{X: 1}, 0.5)
	tree.CreateChild(c0, geom.Point{X: 2}, 0.25)

	seen := map[NodeID]bool{}
	tree.BreadthFirst(func(tr *Tree, n *Node) {
		if !n.IsRoot() && !seen[n.Parent] {
			t.Errorf("node %d visited before its parent %d", n.ID, n.Parent)
		}
		seen[n.ID] = true
	})
}
