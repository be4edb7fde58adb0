package engine

import (
	"math"

	"github.com/nikolausrauch/vessel-synthesizer/forest"
	"github.com/nikolausrauch/vessel-synthesizer/geom"
	"github.com/nikolausrauch/vessel-synthesizer/settings"
)

// stepGrowth grows, for each node/attraction-list pair, either a
// Murray-angle bifurcation or a single sprout, then recomputes radii
// root-ward.
func (e *Engine) stepGrowth(sys settings.System, assoc attrMap) {
	data := e.data(sys)
	sett := e.sysSettings(sys)

	for ref, attrs := range assoc {
		tree := data.forest.Tree(ref.TreeIndex)
		node := tree.GetNode(ref.ID)

		dir := averageDirection(node.Pos, attrs)

		bifurcate := false
		var dParent geom.Point
		if !node.IsRoot() {
			parent := tree.GetNode(node.Parent)
			dParent = geom.Normalize(geom.Sub(node.Pos, parent.Pos))

			if node.IsLeaf() && len(attrs) > 1 && sett.BifThresh >= 0 {
				bifurcate = angleStdDev(node.Pos, dParent, attrs) >= sett.BifThresh
			}

			bias := dir
			switch {
			case node.IsLeaf():
				bias = dParent
			case node.IsIntermediate():
				perfect := perfectAngle(tree, node, sett)
				normal := geom.Normalize(geom.Cross(dParent, dir))
				bias = geom.Normalize(geom.Rotate(dParent, perfect, normal))
			}

			dir = geom.Normalize(geom.Add(
				geom.Scale(1-sett.ParentInertia, dir),
				geom.Scale(sett.ParentInertia, bias),
			))
		}

		if node.IsLeaf() && bifurcate {
			e.growBifurcation(data, tree, ref.TreeIndex, node, dParent, attrs, sett)
			continue
		}

		if sett.OnlyLeafDevelopment && !node.IsLeaf() && !node.IsIntermediate() {
			continue
		}
		if node.IsRoot() && node.IsIntermediate() {
			continue // root is forced to have at most one child
		}

		e.growSprout(data, tree, ref.TreeIndex, node, dir, sett)
	}
}

func averageDirection(from geom.Point, attrs []geom.Point) geom.Point {
	var sum geom.Point
	for _, p := range attrs {
		sum = geom.Add(sum, geom.Normalize(geom.Sub(p, from)))
	}
	return geom.Normalize(sum)
}

// angleStdDev computes the spread of per-point angles from dParent as
// sqrt(sum((theta_i - mean)^2)), matching step_growth's bifurcation
// threshold check in synthesizer.cpp verbatim: the sum of squared
// deviations is never divided by N, so this is a scaled RMS rather than
// a textbook standard deviation.
func angleStdDev(from, dParent geom.Point, attrs []geom.Point) float32 {
	angles := make([]float32, len(attrs))
	var sum float32
	for i, p := range attrs {
		angles[i] = angleDegrees(dParent, geom.Normalize(geom.Sub(p, from)))
		sum += angles[i]
	}
	mean := sum / float32(len(angles))

	var sq float32
	for _, a := range angles {
		d := a - mean
		sq += d * d
	}
	return float32(math.Sqrt(float64(sq)))
}

func (e *Engine) growBifurcation(data *systemData, tree *forest.Tree, treeIndex int, node *forest.Node, dParent geom.Point, attrs []geom.Point, sett settings.SystemSettings) {
	rl, rr := sett.TermRadius, sett.TermRadius
	rp := geom.MurrayRadius(rl, rr, sett.BifIndex)
	thetaL, thetaR := geom.MurrayAngles(rp, rl, rr)

	centroid, axis := geom.BestLineFit(attrs)
	up := geom.Cross(geom.Normalize(geom.Sub(centroid, node.Pos)), axis)

	left := geom.Normalize(geom.Rotate(dParent, thetaL, up))
	right := geom.Normalize(geom.Rotate(dParent, thetaR, up))

	growthDistance := data.params.growthDistance
	nodeID := node.ID

	endL := tree.CreateChild(nodeID, geom.Add(node.Pos, geom.Scale(growthDistance, left)), rl)
	endR := tree.CreateChild(nodeID, geom.Add(node.Pos, geom.Scale(growthDistance, right)), rr)

	recomputeRadii(tree, nodeID, sett)

	data.nodeSearch.Insert(tree.GetNode(endL).Pos, forest.Ref{TreeIndex: treeIndex, ID: endL})
	data.nodeSearch.Insert(tree.GetNode(endR).Pos, forest.Ref{TreeIndex: treeIndex, ID: endR})

	data.telemetry.RecordBifurcation()
}

func (e *Engine) growSprout(data *systemData, tree *forest.Tree, treeIndex int, node *forest.Node, dir geom.Point, sett settings.SystemSettings) {
	growthDistance := data.params.growthDistance
	nodeID := node.ID

	end := tree.CreateChild(nodeID, geom.Add(node.Pos, geom.Scale(growthDistance, geom.Normalize(dir))), sett.TermRadius)
	recomputeRadii(tree, nodeID, sett)

	data.nodeSearch.Insert(tree.GetNode(end).Pos, forest.Ref{TreeIndex: treeIndex, ID: end})
	data.telemetry.RecordSprout()
}

// recomputeRadii walks from the mutated node to the root, recomputing
// intermediate/joint radii along the way. Leaves and childless roots
// are unchanged because the mutated node itself just gained a child
// (so it is never a leaf by the time this runs).
func recomputeRadii(tree *forest.Tree, start forest.NodeID, sett settings.SystemSettings) {
	tree.ToRoot(func(n *forest.Node) {
		switch {
		case n.IsIntermediate():
			n.Radius = tree.GetNode(n.Children[0]).Radius
		case n.IsJoint():
			c0 := tree.GetNode(n.Children[0])
			c1 := tree.GetNode(n.Children[1])
			n.Radius = geom.MurrayRadius(c0.Radius, c1.Radius, sett.BifIndex)
		}
	}, start)
}
