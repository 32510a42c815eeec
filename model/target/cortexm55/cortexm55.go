// Package cortexm55 is the cost model of the Cortex-M55 core with the MVE extension.
//
// Vector instructions execute in beats, two per cycle, so a 128-bit
// instruction occupies its pipeline for two cycles and the next vector
// instruction overlaps with it.
package cortexm55

import (
	"github.com/slowlang/sloth/model/arch/armv81m"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

const (
	alu  cost.Unit = "alu"
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

	// post- and pre-increment stores writing the base of the next store
	chainedStores = cost.LatencyRule{
		Name:    "chained vector stores",
		Src:     cost.Tagged(inst.Store | inst.Vector | inst.Writeback),
		Dst:     vstores,
		Check:   cost.FeedsBase,
		Latency: cost.Latency{Cycles: 1, Constraint: apart(2)},
	}
)

var Target = &cost.Target{
	TargetName: "cortex-m55",
	Of:         armv81m.Arch,
	Width:      1,

	UnitTable: cost.Table[cost.Units]{Name: "units", Rows: []cost.Row[cost.Units]{
		{Key: cost.AnyOf{vloads, vstores}, Val: cost.Either(vls)},
		{Key: cost.Class("vec_mul"), Val: cost.Either(vmul)},
		{Key: cost.Class("vec_alu"), Val: cost.Either(vint)},
		{Key: cost.Tagged(inst.Load), Val: cost.Either(lsu)},
		{Key: cost.Tagged(inst.Store), Val: cost.Either(lsu)},
		{Key: cost.Class("mul"), Val: cost.Either(mac)},
		{Key: cost.Class("alu"), Val: cost.Either(alu)},
	}},

	LatencyTable: cost.Table[cost.Latency]{Name: "latency", Rows: []cost.Row[cost.Latency]{
		{Key: cost.Class("vld4"), Val: cost.L(3)},
		{Key: vloads, Val: cost.L(2)},
		{Key: vstores, Val: cost.L(1)},
		{Key: cost.Class("vec_mul"), Val: cost.L(2)},
		{Key: cost.Class("vec_alu"), Val: cost.L(1)},
		{Key: cost.Tagged(inst.Load), Val: cost.L(2)},
		{Key: cost.Tagged(inst.Store), Val: cost.L(1)},
		{Key: cost.Class("mul"), Val: cost.L(2)},
		{Key: cost.Class("alu"), Val: cost.L(1)},
	}},

	ThroughputTable: cost.Table[int]{Name: "throughput", Rows: []cost.Row[int]{
		{Key: vector, Val: 2},
		{Key: cost.Any{}, Val: 1},
	}},

	Rules: []cost.LatencyRule{
		chainedStores,
		{
			Name:    "multiply to accumulator",
			Src:     cost.Class("vec_mul"),
			Dst:     cost.Class("vmla"),
			Check:   cost.FeedsAccumulator,
			Latency: cost.L(1),
		},
	},

	Further: func(s cost.Scheduler) {
		s.MaxPerCycle(vector, 1)
	},

	Objective: &cost.Objective{Name: "latest_vector_load", Select: cost.Class("vldr")},
}

// apart requires the consumer to issue at least n cycles after the producer.
func apart(n int) func(src, dst cost.Placement) bool {
	return func(src, dst cost.Placement) bool {
		return dst.Cycle >= src.Cycle+n
	}
}
