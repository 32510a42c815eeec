// Package cortexm85 is the cost model of the dual issue Cortex-M85 core with the MVE extension.
package cortexm85

import (
	"github.com/slowlang/sloth/model/arch/armv81m"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

const (
	alu0 cost.Unit = "alu0"
	alu1 cost.Unit = "alu1"
	mac  cost.Unit = "mac"
	lsu  cost.Unit = "lsu"
	vint cost.Unit = "vint"
	vmul cost.Unit = "vmul"
	vls  cost.Unit = "vls"
)

var (
	vector = cost.Tagged(inst.Vector)

	vloads  = cost.Tagged(inst.Load | inst.Vector)
	vstores = cost.Tagged(inst.Store | inst.Vector)
)

var Target = &cost.Target{
	TargetName: "cortex-m85",
	Of:         armv81m.Arch,
	Width:      2,

	UnitTable: cost.Table[cost.Units]{Name: "units", Rows: []cost.Row[cost.Units]{
		{Key: cost.AnyOf{vloads, vstores}, Val: cost.Either(vls)},
		{Key: cost.Class("vec_mul"), Val: cost.Either(vmul)},
		{Key: cost.Class("vec_alu"), Val: cost.Either(vint)},
		{Key: cost.AnyOf{cost.Tagged(inst.Load), cost.Tagged(inst.Store)}, Val: cost.Either(lsu)},
		{Key: cost.Class("mul"), Val: cost.Either(mac)},
		{Key: cost.Class("alu"), Val: cost.Either(alu0, alu1)},
	}},

	LatencyTable: cost.Table[cost.Latency]{Name: "latency", Rows: []cost.Row[cost.Latency]{
		{Key: cost.Class("vld4"), Val: cost.L(4)},
		{Key: vloads, Val: cost.L(3)},
		{Key: vstores, Val: cost.L(1)},
		{Key: cost.Class("vec_mul"), Val: cost.L(3)},
		{Key: cost.Class("vec_alu"), Val: cost.L(2)},
		{Key: cost.Tagged(inst.Load), Val: cost.L(2)},
		{Key: cost.Tagged(inst.Store), Val: cost.L(1)},
		{Key: cost.Class("mul"), Val: cost.L(2)},
		{Key: cost.Class("alu"), Val: cost.L(1)},
	}},

	ThroughputTable: cost.Table[int]{Name: "throughput", Rows: []cost.Row[int]{
		{Key: cost.Class("vld4"), Val: 2},
		{Key: cost.Any{}, Val: 1},
	}},

	Rules: []cost.LatencyRule{{
		Name:    "chained vector stores",
		Src:     cost.Tagged(inst.Store | inst.Vector | inst.Writeback),
		Dst:     vstores,
		Check:   cost.FeedsBase,
		Latency: cost.Latency{Cycles: 1, Constraint: apart(2)},
	}, {
		Name:    "multiply to accumulator",
		Src:     cost.Class("vec_mul"),
		Dst:     cost.Class("vmla"),
		Check:   cost.FeedsAccumulator,
		Latency: cost.L(2),
	}},

	Further: func(s cost.Scheduler) {
		s.MaxPerCycle(vector, 1)
		s.NotAdjacent(cost.Class("vstr"), cost.Class("vstr"))
	},

	Objective: &cost.Objective{Name: "latest_vector_load", Select: cost.Class("vldr")},
}

func apart(n int) func(src, dst cost.Placement) bool {
	return func(src, dst cost.Placement) bool {
		return dst.Cycle >= src.Cycle+n
	}
}
