package engine

import (
	"math"

	"github.com/nikolausrauch/vessel-synthesizer/forest"
	"github.com/nikolausrauch/vessel-synthesizer/geom"
	"github.com/nikolausrauch/vessel-synthesizer/settings"
)

// attrMap associates each node that will grow this step with the
// attraction points that influenced it.
type attrMap map[forest.Ref][]geom.Point

// stepClosest finds, for every attraction point, the nearest eligible
// node within influence range, applies the perception-volume filter,
// and records the association.
func (e *Engine) stepClosest(sys settings.System) attrMap {
	data := e.data(sys)
	sett := e.sysSettings(sys)
	result := attrMap{}

	data.attrSearch.Traverse(func(pos geom.Point, _ geom.Point) {
		nodes := data.nodeSearch.EuclideanRange(pos, data.params.influenceAttr, nil)
		if len(nodes) == 0 {
			return
		}

		var minDist float32 = math.MaxFloat32
		var minRef forest.Ref
		found := false

		for _, ref := range nodes {
			n := data.forest.Node(ref)
			if n.IsJoint() {
				continue
			}
			d := geom.Distance(pos, n.Pos)
			if d < minDist {
				minDist = d
				minRef = ref
				found = true
			}
		}
		if !found {
			return
		}

		if !e.passesPerception(data, sett, minRef, pos) {
			return
		}

		result[minRef] = append(result[minRef], pos)
	})

	return result
}

// passesPerception applies the perception-volume filter. Roots have no
// filter. Leaves reject attractions outside the half-cone around the
// parent direction. Intermediates reject attractions whose angle from
// the parent direction deviates from the Murray-ideal outgoing angle by
// more than half the cone.
func (e *Engine) passesPerception(data *systemData, sett settings.SystemSettings, ref forest.Ref, attr geom.Point) bool {
	tree := data.forest.Tree(ref.TreeIndex)
	n := tree.GetNode(ref.ID)

	if n.IsRoot() {
		return true
	}

	parent := tree.GetNode(n.Parent)
	dParent := geom.Normalize(geom.Sub(n.Pos, parent.Pos))
	dAttr := geom.Normalize(geom.Sub(attr, n.Pos))
	angle := angleDegrees(dParent, dAttr)

	if n.IsLeaf() {
		return angle <= sett.PerceptVol*0.5
	}

	// Intermediate.
	perfect := perfectAngle(tree, n, sett)
	return absf(angle-perfect) <= sett.PerceptVol*0.5
}

// perfectAngle returns the Murray-ideal outgoing angle for an
// intermediate node with a single child.
func perfectAngle(tree *forest.Tree, n *forest.Node, sett settings.SystemSettings) float32 {
	child0 := tree.GetNode(n.Children[0])
	rParent := geom.MurrayRadius(child0.Radius, sett.TermRadius, sett.BifIndex)
	_, thetaR := geom.MurrayAngles(rParent, child0.Radius, sett.TermRadius)
	return absf(thetaR)
}

func angleDegrees(a, b geom.Point) float32 {
	d := geom.Dot(a, b)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return float32(math.Acos(float64(d)) * 180 / math.Pi)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
