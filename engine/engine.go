// Package engine implements the growth engine (C5): the per-step state
// machine that samples attraction points, associates them with tree
// nodes under perception-volume and influence-range constraints, grows
// sprouts or Murray-angle bifurcations, kills satisfied attractions,
// couples the arterial and venous systems, and scales runtime distance
// parameters through a domain-growth schedule.
package engine

import (
	"sync/atomic"

	"github.com/nikolausrauch/vessel-synthesizer/domain"
	"github.com/nikolausrauch/vessel-synthesizer/forest"
	"github.com/nikolausrauch/vessel-synthesizer/geom"
	"github.com/nikolausrauch/vessel-synthesizer/settings"
	"github.com/nikolausrauch/vessel-synthesizer/spatialindex"
	"github.com/nikolausrauch/vessel-synthesizer/telemetry"
)

// systemData holds everything owned by one system: its forest, the two
// spatial indices keyed by node/attraction position, the satisfied-
// attraction buffer, and its runtime (scaled) parameters.
type systemData struct {
	forest forest.Forest

	nodeSearch *spatialindex.Octree[forest.Ref]
	attrSearch *spatialindex.Octree[geom.Point]

	killedAttr []geom.Point

	params runtimeParams

	telemetry *telemetry.Collector
}

// runtimeParams are the mutable, per-step derived distance parameters
// that domainGrowth scales down over time.
type runtimeParams struct {
	scaling float32

	birthAttr      float32
	birthNode      float32
	influenceAttr  float32
	killAttr       float32
	growthDistance float32
}

// Engine owns the growth state for a synthesis run: two coupled systems
// (arterial, venous), the settings that parameterize them, and a
// non-blocking cancellation flag checked at step boundaries.
type Engine struct {
	domain   domain.Domain
	settings settings.Settings

	systems [2]systemData

	stepCount uint32
	running   atomic.Bool
}

// New creates an Engine bound to the given domain, with zero-valued
// systems until CreateRoot seeds each one.
func New(d domain.Domain) *Engine {
	min, max := d.MinExtends(), d.MaxExtends()
	e := &Engine{domain: d, settings: settings.New()}
	for i := range e.systems {
		e.systems[i] = systemData{
			nodeSearch: spatialindex.New[forest.Ref](min, max),
			attrSearch: spatialindex.New[geom.Point](min, max),
			telemetry:  telemetry.NewCollector(),
		}
	}
	return e
}

// SetSettings replaces the engine's settings. Settings are immutable
// during a run; callers must not call SetSettings concurrently with Run.
func (e *Engine) SetSettings(s settings.Settings) { e.settings = s }

// Settings returns the engine's current settings.
func (e *Engine) Settings() settings.Settings { return e.settings }

// Telemetry returns the growth-event collector for sys.
func (e *Engine) Telemetry(sys settings.System) *telemetry.Collector {
	return e.systems[sys].telemetry
}

// Step returns the current step counter.
func (e *Engine) Step() uint32 { return e.stepCount }

func (e *Engine) data(sys settings.System) *systemData { return &e.systems[sys] }

func (e *Engine) sysSettings(sys settings.System) settings.SystemSettings {
	return e.settings.System[sys]
}

// CreateRoot creates a new tree with a single root at pos, using the
// system's configured terminal radius, and indexes it. Returns a Ref
// identifying the new root within the system's forest.
func (e *Engine) CreateRoot(sys settings.System, pos geom.Point) forest.Ref {
	data := e.data(sys)
	ref := data.forest.CreateRoot(pos, e.sysSettings(sys).TermRadius)
	data.nodeSearch.Insert(pos, ref)
	return ref
}

// CreateAttr unconditionally inserts an attraction point at pos.
func (e *Engine) CreateAttr(sys settings.System, pos geom.Point) {
	e.data(sys).attrSearch.Insert(pos, pos)
}

// TryAttr attempts to insert an attraction point at pos, subject to the
// birth-distance predicate: rejected if any node of sys lies within
// BirthNode, or any existing attraction lies within BirthAttr.
func (e *Engine) TryAttr(sys settings.System, pos geom.Point) bool {
	data := e.data(sys)

	if len(data.nodeSearch.EuclideanRange(pos, data.params.birthNode, nil)) > 0 {
		data.telemetry.RecordAttrRejectedNode()
		return false
	}
	if len(data.attrSearch.EuclideanRange(pos, data.params.birthAttr, nil)) > 0 {
		data.telemetry.RecordAttrRejectedAttr()
		return false
	}

	data.attrSearch.Insert(pos, pos)
	data.telemetry.RecordAttrAccepted()
	return true
}

// SetForest replaces sys's forest and rebuilds the node index by
// breadth-first traversal, matching the original's set_forest.
func (e *Engine) SetForest(sys settings.System, f forest.Forest) {
	data := e.data(sys)
	data.forest = f
	data.nodeSearch.Clear()
	data.attrSearch.Clear()
	data.killedAttr = nil

	for i, t := range f.Trees() {
		ti := i
		t.BreadthFirst(func(_ *forest.Tree, n *forest.Node) {
			data.nodeSearch.Insert(n.Pos, forest.Ref{TreeIndex: ti, ID: n.ID})
		})
	}
}

// GetForest returns sys's forest.
func (e *Engine) GetForest(sys settings.System) forest.Forest {
	return e.data(sys).forest
}

// Stop requests cancellation of a running Run. Non-blocking; the loop
// observes this at the next step boundary.
func (e *Engine) Stop() { e.running.Store(false) }

// IsRunning reports whether Run is currently executing.
func (e *Engine) IsRunning() bool { return e.running.Load() }
