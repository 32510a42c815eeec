// Package x60 is the cost model of the SpacemiT X60, an in-order dual issue RV64 core with the vector extension.
package x60

import (
	"github.com/slowlang/sloth/model/arch/riscv64"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

const (
	alu0 cost.Unit = "alu0"
	alu1 cost.Unit = "alu1"
	mul  cost.Unit = "mul"
	lsu  cost.Unit = "lsu"
	valu cost.Unit = "valu"
	vmul cost.Unit = "vmul"
	vlsu cost.Unit = "vlsu"
)

var (
	loads  = cost.Tagged(inst.Load)
	stores = cost.Tagged(inst.Store)

	vmem = cost.Classes("vload", "vstore")
)

var Target = &cost.Target{
	TargetName: "x60",
	Of:         riscv64.Arch,
	Width:      2,

	UnitTable: cost.Table[cost.Units]{Name: "units", Rows: []cost.Row[cost.Units]{
		{Key: vmem, Val: cost.Either(vlsu)},
		{Key: cost.AnyOf{loads, stores}, Val: cost.Either(lsu)},
		{Key: cost.Class("vmul"), Val: cost.Either(vmul)},
		{Key: cost.Classes("valu", "vset"), Val: cost.Either(valu)},
		{Key: cost.Class("mul"), Val: cost.Either(mul)},
		// only the first pipe has the shifter
		{Key: cost.Classes("shift", "shadd"), Val: cost.Either(alu0)},
		{Key: cost.Class("alu"), Val: cost.Either(alu0, alu1)},
	}},

	LatencyTable: cost.Table[cost.Latency]{Name: "latency", Rows: []cost.Row[cost.Latency]{
		{Key: cost.Class("vload"), Val: cost.L(4)},
		{Key: loads, Val: cost.L(3)},
		{Key: stores, Val: cost.L(1)},
		{Key: cost.Class("vset"), Val: cost.L(1)},
		{Key: cost.Class("vmul"), Val: cost.L(5)},
		{Key: cost.Class("valu"), Val: cost.L(3)},
		{Key: cost.Class("mul"), Val: cost.L(3)},
		{Key: cost.Class("shadd"), Val: cost.L(2)},
		{Key: cost.Class("alu"), Val: cost.L(1)},
	}},

	ThroughputTable: cost.Table[int]{Name: "throughput", Rows: []cost.Row[int]{
		{Key: vmem, Val: 2},
		{Key: cost.Class("vmul"), Val: 2},
		{Key: cost.Any{}, Val: 1},
	}},

	Rules: []cost.LatencyRule{{
		Name:    "multiply to accumulator",
		Src:     cost.Class("vmul"),
		Dst:     cost.Tagged(inst.Vector | inst.MulAcc),
		Check:   cost.FeedsAccumulator,
		Latency: cost.L(2),
	}},

	Further: func(s cost.Scheduler) {
		s.MaxPerCycle(cost.Tagged(inst.Vector), 1)
		s.MaxPerCycle(cost.AnyOf{loads, stores}, 1)
	},
}
