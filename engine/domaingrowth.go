package engine

import "github.com/nikolausrauch/vessel-synthesizer/settings"

// domainGrowth advances sys's scaling factor per its configured
// GrowFunc, then derives every runtime distance parameter as
// settings-value / scaling.
func (e *Engine) domainGrowth(sys settings.System) {
	data := e.data(sys)
	sett := e.sysSettings(sys)

	switch sett.GrowFunc.Kind {
	case settings.GrowLinear:
		data.params.scaling += sett.GrowFunc.Value
	case settings.GrowExponential:
		data.params.scaling += data.params.scaling * sett.GrowFunc.Value
	}

	inv := 1 / data.params.scaling
	data.params.birthAttr = sett.BirthAttr * inv
	data.params.birthNode = sett.BirthNode * inv
	data.params.influenceAttr = sett.InfluenceAttr * inv
	data.params.killAttr = sett.KillAttr * inv
	data.params.growthDistance = sett.GrowthDistance * inv

	data.telemetry.SetScaling(data.params.scaling)
}
