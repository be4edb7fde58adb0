package engine

import "github.com/nikolausrauch/vessel-synthesizer/settings"

// combineSystems seeds each satisfied arterial position as a venous
// attraction, if the venous forest is non-empty, gated by the same
// birth-distance predicate as sampleAttraction. The original C++
// combine_systems instead calls the unconditional create_attr here;
// this uses the gated TryAttr so a freshly coupled point still has to
// clear BirthNode/BirthAttr against the venous system.
func (e *Engine) combineSystems() {
	arterial := e.data(settings.Arterial)
	venous := e.data(settings.Venous)

	if venous.forest.Empty() {
		return
	}

	for _, pos := range arterial.killedAttr {
		if e.TryAttr(settings.Venous, pos) {
			arterial.telemetry.RecordCoupled()
		}
	}
	arterial.killedAttr = nil
}
