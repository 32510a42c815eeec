// Package cortexm7 is the cost model of the dual issue Cortex-M7 core.
package cortexm7

import (
	"github.com/slowlang/sloth/model/arch/armv7m"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

const (
	alu0 cost.Unit = "alu0"
	alu1 cost.Unit = "alu1"
	mac  cost.Unit = "mac"
	ls0  cost.Unit = "ls0"
	ls1  cost.Unit = "ls1"
	fpu  cost.Unit = "fpu"
)

var (
	loads  = cost.Tagged(inst.Load)
	stores = cost.Tagged(inst.Store)

	multiple = cost.Classes("ldm", "stm", "ldrd", "strd")
)

var Target = &cost.Target{
	TargetName: "cortex-m7",
	Of:         armv7m.Arch,
	Width:      2,

	UnitTable: cost.Table[cost.Units]{Name: "units", Rows: []cost.Row[cost.Units]{
		{Key: multiple, Val: cost.Both(ls0, ls1)},
		{Key: stores, Val: cost.Either(ls0)},
		{Key: loads, Val: cost.Either(ls0, ls1)},
		{Key: cost.Class("mul"), Val: cost.Either(mac)},
		{Key: cost.Class("vmov"), Val: cost.Either(fpu)},
		// the second alu has no shifter
		{Key: cost.Class("alu_shift"), Val: cost.Either(alu0)},
		{Key: cost.Class("alu"), Val: cost.Either(alu0, alu1)},
	}},

	LatencyTable: cost.Table[cost.Latency]{Name: "latency", Rows: []cost.Row[cost.Latency]{
		{Key: cost.Class("vmov"), Val: cost.L(1)},
		{Key: loads, Val: cost.L(2)},
		{Key: stores, Val: cost.L(1)},
		{Key: cost.Class("mul"), Val: cost.L(2)},
		{Key: cost.Class("alu_shift"), Val: cost.L(2)},
		{Key: cost.Class("alu"), Val: cost.L(1)},
	}},

	ThroughputTable: cost.Table[int]{Name: "throughput", Rows: []cost.Row[int]{
		{Key: cost.Classes("ldm", "stm"), Val: 2},
		{Key: cost.Any{}, Val: 1},
	}},

	Rules: []cost.LatencyRule{{
		Name:    "mul to accumulator",
		Src:     cost.Class("mul"),
		Dst:     cost.Tagged(inst.MulAcc),
		Check:   cost.FeedsAccumulator,
		Latency: cost.L(1),
	}},

	Further: func(s cost.Scheduler) {
		s.MaxPerCycle(cost.Class("mul"), 1)
		s.MaxPerCycle(stores, 1)
		s.MaxPerCycle(cost.Class("vmov"), 1)
	},
}
