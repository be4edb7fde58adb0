// Package telemetry accumulates growth-engine counters for a synthesis
// run, adapted from the teacher's Collector/WindowStats pair: an
// accumulator type paired with a LogValue-implementing snapshot struct,
// so a caller can slog.Info("step", "arterial", collector.Snapshot())
// the same way the teacher logs simulation windows.
package telemetry

import "log/slog"

// Snapshot holds the running totals for one system. Collector has no
// reset, so the totals accumulate over the collector's whole lifetime.
type Snapshot struct {
	Step uint32

	AttrSampled      int // candidates drawn from the domain
	AttrAccepted     int // passed both birth-distance checks
	AttrRejectedNode int // rejected: too close to an existing node
	AttrRejectedAttr int // rejected: too close to an existing attraction

	NodesSprouted     int
	NodesBifurcated   int // counts bifurcation events, each producing 2 nodes
	AttrKilled        int
	AttrCoupledToPeer int // satisfied attractions fed to the partner system

	Scaling float32
}

// LogValue implements slog.LogValuer for structured logging.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("step", int(s.Step)),
		slog.Int("attr_sampled", s.AttrSampled),
		slog.Int("attr_accepted", s.AttrAccepted),
		slog.Int("attr_rejected_node", s.AttrRejectedNode),
		slog.Int("attr_rejected_attr", s.AttrRejectedAttr),
		slog.Int("nodes_sprouted", s.NodesSprouted),
		slog.Int("nodes_bifurcated", s.NodesBifurcated),
		slog.Int("attr_killed", s.AttrKilled),
		slog.Int("attr_coupled_to_peer", s.AttrCoupledToPeer),
		slog.Float64("scaling", float64(s.Scaling)),
	)
}
