package engine

import (
	"github.com/nikolausrauch/vessel-synthesizer/settings"
)

// stepKill checks every attraction point that influenced a node this
// step: if any node now lies within KillAttr, the attraction is removed
// and its position recorded as satisfied.
func (e *Engine) stepKill(sys settings.System, assoc attrMap) {
	data := e.data(sys)

	for _, attrs := range assoc {
		for _, p := range attrs {
			if len(data.nodeSearch.EuclideanRange(p, data.params.killAttr, nil)) == 0 {
				continue
			}

			data.attrSearch.Remove(p, p)
			data.killedAttr = append(data.killedAttr, p)
			data.telemetry.RecordKilled()
		}
	}
}
