// Package settingsconfig loads settings.Settings from YAML, the way the
// teacher's config package loads its own Config: embedded defaults
// merged with an optional on-disk override. It is ambient tooling for
// the demo command and tests. engine.Engine never reaches into this
// package itself, keeping its settings free of any process-wide state.
package settingsconfig

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nikolausrauch/vessel-synthesizer/settings"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// systemFile mirrors settings.SystemSettings for YAML decoding; GrowFunc
// is flattened into a kind tag plus a single value field in the file
// format and re-assembled into the tagged union on load.
type systemFile struct {
	BirthAttr           float32 `yaml:"birth_attr"`
	BirthNode           float32 `yaml:"birth_node"`
	InfluenceAttr       float32 `yaml:"influence_attr"`
	KillAttr            float32 `yaml:"kill_attr"`
	GrowthDistance      float32 `yaml:"growth_distance"`
	TermRadius          float32 `yaml:"term_radius"`
	PerceptVol          float32 `yaml:"percept_vol"`
	BifThresh           float32 `yaml:"bif_thresh"`
	BifIndex            float32 `yaml:"bif_index"`
	ParentInertia       float32 `yaml:"parent_inertia"`
	OnlyLeafDevelopment bool    `yaml:"only_leaf_development"`
	GrowFuncKind        string  `yaml:"grow_func"`       // "none" | "linear" | "exponential"
	GrowFuncValue       float32 `yaml:"grow_func_value"` // meaningful for linear/exponential
}

type settingsFile struct {
	Steps       uint32     `yaml:"steps"`
	SampleCount uint32     `yaml:"sample_count"`
	Arterial    systemFile `yaml:"arterial"`
	Venous      systemFile `yaml:"venous"`
}

func (s systemFile) toSettings() (settings.SystemSettings, error) {
	var gf settings.GrowFunc
	switch s.GrowFuncKind {
	case "", "none":
		gf = settings.None()
	case "linear":
		gf = settings.Linear(s.GrowFuncValue)
	case "exponential":
		gf = settings.Exponential(s.GrowFuncValue)
	default:
		return settings.SystemSettings{}, fmt.Errorf("settingsconfig: unknown grow_func %q", s.GrowFuncKind)
	}

	return settings.SystemSettings{
		BirthAttr:           s.BirthAttr,
		BirthNode:           s.BirthNode,
		InfluenceAttr:       s.InfluenceAttr,
		KillAttr:            s.KillAttr,
		GrowthDistance:      s.GrowthDistance,
		TermRadius:          s.TermRadius,
		PerceptVol:          s.PerceptVol,
		BifThresh:           s.BifThresh,
		BifIndex:            s.BifIndex,
		ParentInertia:       s.ParentInertia,
		OnlyLeafDevelopment: s.OnlyLeafDevelopment,
		GrowFunc:            gf,
	}, nil
}

// Load reads settings from path, merged over the embedded defaults. An
// empty path uses only the embedded defaults.
func Load(path string) (settings.Settings, error) {
	var file settingsFile
	if err := yaml.Unmarshal(defaultsYAML, &file); err != nil {
		return settings.Settings{}, fmt.Errorf("settingsconfig: parse embedded defaults: %w", err)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("settingsconfig: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return settings.Settings{}, fmt.Errorf("settingsconfig: parse %s: %w", path, err)
		}
	}

	arterial, err := file.Arterial.toSettings()
	if err != nil {
		return settings.Settings{}, err
	}
	venous, err := file.Venous.toSettings()
	if err != nil {
		return settings.Settings{}, err
	}

	return settings.Settings{
		Steps:       file.Steps,
		SampleCount: file.SampleCount,
		System:      [2]settings.SystemSettings{arterial, venous},
	}, nil
}

// MustLoad is like Load but panics on error, matching the teacher's
// config.MustInit.
func MustLoad(path string) settings.Settings {
	s, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("settingsconfig: failed to load: %v", err))
	}
	return s
}
