package cost

import (
	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/inst"
)

type (
	// Target is a Model made of tables.
	Target struct {
		TargetName string
		Of         *inst.Arch
		Width      int

		UnitTable       Table[Units]
		LatencyTable    Table[Latency]
		ThroughputTable Table[int]

		// Rules take precedence over LatencyTable, first match wins.
		Rules []LatencyRule

		Further func(s Scheduler)

		Objective *Objective
	}
)

var _ Model = &Target{}

func (t *Target) Name() string { return t.TargetName }

func (t *Target) Arch() *inst.Arch { return t.Of }

func (t *Target) IssueWidth() int { return t.Width }

func (t *Target) Units(i *inst.Inst) (Units, error) {
	return t.UnitTable.Lookup(i)
}

func (t *Target) Latency(src *inst.Inst, out int, dst *inst.Inst) (Latency, error) {
	for k := range t.Rules {
		r := &t.Rules[k]

		if r.applies(src, out, dst) {
			if tlog.If("latency") {
				tlog.Printw("latency exception", "rule", r.Name, "src", src.V.Name, "dst", dst.V.Name, "cycles", r.Latency.Cycles)
			}

			return r.Latency, nil
		}
	}

	return t.LatencyTable.Lookup(src)
}

func (t *Target) InverseThroughput(i *inst.Inst) (int, error) {
	return t.ThroughputTable.Lookup(i)
}

func (t *Target) AddFurtherConstraints(s Scheduler) {
	if t.Further != nil {
		t.Further(s)
	}
}

func (t *Target) HasMinMaxObjective() bool { return t.Objective != nil }

func (t *Target) MinMaxObjective() Objective {
	if t.Objective == nil {
		return Objective{}
	}

	return *t.Objective
}

// Check queries every table for the instruction.
func Check(m Model, i *inst.Inst) error {
	if _, err := m.Units(i); err != nil {
		return err
	}

	if _, err := m.InverseThroughput(i); err != nil {
		return err
	}

	if len(i.Writes()) != 0 {
		if _, err := m.Latency(i, 0, i); err != nil {
			return err
		}
	}

	return nil
}
