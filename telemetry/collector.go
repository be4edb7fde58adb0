package telemetry

// Collector accumulates growth-engine event counts for one system.
// The growth engine holds one Collector per system and calls its
// Record* methods inline as each step runs; callers read Snapshot() to
// log or inspect the totals.
type Collector struct {
	snapshot Snapshot
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordAttrSampled records a candidate attraction point drawn from the
// domain, before the birth-distance checks are applied.
func (c *Collector) RecordAttrSampled() { c.snapshot.AttrSampled++ }

// RecordAttrAccepted records an attraction point that passed both
// birth-distance checks and was inserted.
func (c *Collector) RecordAttrAccepted() { c.snapshot.AttrAccepted++ }

// RecordAttrRejectedNode records a candidate rejected for being too
// close to an existing tree node.
func (c *Collector) RecordAttrRejectedNode() { c.snapshot.AttrRejectedNode++ }

// RecordAttrRejectedAttr records a candidate rejected for being too
// close to an existing attraction point.
func (c *Collector) RecordAttrRejectedAttr() { c.snapshot.AttrRejectedAttr++ }

// RecordSprout records a single-child growth event.
func (c *Collector) RecordSprout() { c.snapshot.NodesSprouted++ }

// RecordBifurcation records a two-child growth event.
func (c *Collector) RecordBifurcation() { c.snapshot.NodesBifurcated++ }

// RecordKilled records a satisfied attraction point removed from the
// index.
func (c *Collector) RecordKilled() { c.snapshot.AttrKilled++ }

// RecordCoupled records a satisfied attraction fed to the partner system.
func (c *Collector) RecordCoupled() { c.snapshot.AttrCoupledToPeer++ }

// SetStep updates the current step counter recorded in the snapshot.
func (c *Collector) SetStep(step uint32) { c.snapshot.Step = step }

// SetScaling updates the current scaling factor recorded in the snapshot.
func (c *Collector) SetScaling(scaling float32) { c.snapshot.Scaling = scaling }

// Snapshot returns the current accumulated totals.
func (c *Collector) Snapshot() Snapshot { return c.snapshot }
