package telemetry

import "testing"

func TestCollectorAccumulates(t *testing.T) {
	c := NewCollector()
	c.RecordAttrSampled()
	c.RecordAttrSampled()
	c.RecordAttrAccepted()
	c.RecordSprout()
	c.RecordBifurcation()
	c.RecordKilled()
	c.RecordCoupled()
	c.SetStep(3)
	c.SetScaling(1.1)

	got := c.Snapshot()
	want := Snapshot{
		Step:              3,
		AttrSampled:       2,
		AttrAccepted:      1,
		NodesSprouted:     1,
		NodesBifurcated:   1,
		AttrKilled:        1,
		AttrCoupledToPeer: 1,
		Scaling:           1.1,
	}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}
