package engine

import (
	"github.com/nikolausrauch/vessel-synthesizer/domain"
	"github.com/nikolausrauch/vessel-synthesizer/settings"
)

// initRuntimeParams resets the mutable per-step distance parameters to
// the settings values with scaling 1.0, matching the original's
// init_runtime_params.
func (e *Engine) initRuntimeParams() {
	e.stepCount = 0
	for _, sys := range [...]settings.System{settings.Arterial, settings.Venous} {
		data := e.data(sys)
		sett := e.sysSettings(sys)
		data.params = runtimeParams{
			scaling:        1.0,
			birthAttr:      sett.BirthAttr,
			birthNode:      sett.BirthNode,
			influenceAttr:  sett.InfluenceAttr,
			killAttr:       sett.KillAttr,
			growthDistance: sett.GrowthDistance,
		}
	}
}

// sampleAttraction draws SampleCount points from the domain and tries
// to insert each as an arterial attraction point.
func (e *Engine) sampleAttraction() {
	data := e.data(settings.Arterial)
	points := domain.Samples(e.domain, e.settings.SampleCount)
	for _, p := range points {
		data.telemetry.RecordAttrSampled()
		e.TryAttr(settings.Arterial, p)
	}
}

// runStep runs closest -> growth -> kill, strictly sequential, for one
// system.
func (e *Engine) runStep(sys settings.System) {
	data := e.data(sys)
	if data.forest.Empty() {
		return
	}

	assoc := e.stepClosest(sys)
	e.stepGrowth(sys, assoc)
	e.stepKill(sys, assoc)
}

// Run executes the main synthesis loop: sample -> step (arterial) ->
// combine -> step (venous) -> domain growth (both), for up to
// Settings.Steps iterations or until Stop is called. A forest.Empty()
// arterial system is a silent no-op. Run is not safe to call
// concurrently with itself; Stop may be called from another goroutine.
func (e *Engine) Run() {
	if e.data(settings.Arterial).forest.Empty() {
		return
	}

	e.initRuntimeParams()
	e.running.Store(true)

	for e.stepCount < e.settings.Steps && e.running.Load() {
		e.sampleAttraction()
		e.runStep(settings.Arterial)
		e.combineSystems()
		e.runStep(settings.Venous)
		e.domainGrowth(settings.Arterial)
		e.domainGrowth(settings.Venous)

		e.stepCount++
		e.data(settings.Arterial).telemetry.SetStep(e.stepCount)
		e.data(settings.Venous).telemetry.SetStep(e.stepCount)
	}

	e.running.Store(false)
}
