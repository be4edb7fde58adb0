// Package settings holds the immutable per-run tunables consumed by the
// growth engine. Settings are owned by whichever engine instance builds
// them; there is no process-wide global here, unlike the teacher's own
// config.Cfg() singleton.
package settings

// System selects which of the two coupled trees a SystemSettings or
// engine operation applies to.
type System int

const (
	Arterial System = iota
	Venous
	systemCount
)

// String names a System for logging.
func (s System) String() string {
	switch s {
	case Arterial:
		return "arterial"
	case Venous:
		return "venous"
	default:
		return "unknown"
	}
}

// GrowFuncKind tags the variant of GrowFunc in effect.
type GrowFuncKind int

const (
	GrowNone GrowFuncKind = iota
	GrowLinear
	GrowExponential
)

// GrowFunc is the domain-growth schedule, one of
// none | linear(v) | exponential(v), held as a Kind tag plus a Value
// field. Value is present for every kind; it is read only for
// GrowLinear and GrowExponential and ignored for GrowNone.
type GrowFunc struct {
	Kind  GrowFuncKind
	Value float32
}

// None is the no-op growth schedule.
func None() GrowFunc { return GrowFunc{Kind: GrowNone} }

// Linear grows scaling by += v each domain-growth step.
func Linear(v float32) GrowFunc { return GrowFunc{Kind: GrowLinear, Value: v} }

// Exponential grows scaling by += scaling*v each domain-growth step.
func Exponential(v float32) GrowFunc { return GrowFunc{Kind: GrowExponential, Value: v} }

// SystemSettings holds the per-system tunables.
type SystemSettings struct {
	BirthAttr           float32
	BirthNode           float32
	InfluenceAttr       float32
	KillAttr            float32
	GrowthDistance      float32
	TermRadius          float32
	PerceptVol          float32 // degrees, full cone
	BifThresh           float32 // degrees; negative disables bifurcation
	BifIndex            float32 // Murray exponent gamma
	ParentInertia       float32 // in [0,1]
	OnlyLeafDevelopment bool
	GrowFunc            GrowFunc
}

// DefaultSystemSettings returns reasonable starting values; all distance
// parameters are in the same length unit as the domain extents.
func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		BirthAttr:           1.0,
		BirthNode:           1.0,
		InfluenceAttr:       5.0,
		KillAttr:            1.5,
		GrowthDistance:      1.0,
		TermRadius:          0.1,
		PerceptVol:          180,
		BifThresh:           -1,
		BifIndex:            3,
		ParentInertia:       0.2,
		OnlyLeafDevelopment: false,
		GrowFunc:            None(),
	}
}

// Settings is the full immutable per-run configuration: per-system
// tunables plus the top-level loop parameters.
type Settings struct {
	System      [systemCount]SystemSettings
	Steps       uint32
	SampleCount uint32
}

// New returns a Settings with default values for both systems.
func New() Settings {
	return Settings{
		System:      [systemCount]SystemSettings{DefaultSystemSettings(), DefaultSystemSettings()},
		Steps:       1000,
		SampleCount: 1,
	}
}

// For returns a copy of Settings with the given system's tunables replaced.
func (s Settings) For(sys System, ss SystemSettings) Settings {
	s.System[sys] = ss
	return s
}

// WithSteps returns a copy of Settings with Steps replaced.
func (s Settings) WithSteps(steps uint32) Settings {
	s.Steps = steps
	return s
}

// WithSampleCount returns a copy of Settings with SampleCount replaced.
func (s Settings) WithSampleCount(n uint32) Settings {
	s.SampleCount = n
	return s
}
