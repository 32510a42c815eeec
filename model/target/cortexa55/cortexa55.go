// Package cortexa55 is the cost model of the in-order dual issue Cortex-A55 core.
package cortexa55

import (
	"github.com/slowlang/sloth/model/arch/aarch64"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

const (
	alu0 cost.Unit = "alu0"
	alu1 cost.Unit = "alu1"
	mac  cost.Unit = "mac"
	load cost.Unit = "load"
	str  cost.Unit = "store"
	vec0 cost.Unit = "vec0"
	vec1 cost.Unit = "vec1"
)

var (
	loads  = cost.Tagged(inst.Load)
	stores = cost.Tagged(inst.Store)
	vload  = cost.Tagged(inst.Load | inst.Vector)

	vecSimple = cost.Classes("vec_alu", "vec_perm", "vec_shift", "vec_ins")

	// low multiplies forward into the accumulator of the next one
	mulLow = cost.Pred(func(i *inst.Inst) bool { return i.Is("mul") && !i.Is("mulh") })
)

var Target = &cost.Target{
	TargetName: "cortex-a55",
	Of:         aarch64.Arch,
	Width:      2,

	UnitTable: cost.Table[cost.Units]{Name: "units", Rows: []cost.Row[cost.Units]{
		{Key: loads, Val: cost.Either(load)},
		{Key: stores, Val: cost.Either(str)},
		{Key: cost.Class("mul"), Val: cost.Either(mac)},
		{Key: cost.Classes("alu", "alu_shift"), Val: cost.Either(alu0, alu1)},
		// 128-bit multiplies take both halves of the vector datapath
		{Key: cost.Classes("vec_mul", "aes"), Val: cost.Both(vec0, vec1)},
		{Key: vecSimple, Val: cost.Either(vec0, vec1)},
		{Key: cost.Class("vec_ext"), Val: cost.Either(vec0)},
	}},

	LatencyTable: cost.Table[cost.Latency]{Name: "latency", Rows: []cost.Row[cost.Latency]{
		{Key: vload, Val: cost.L(5)},
		{Key: loads, Val: cost.L(3)},
		{Key: stores, Val: cost.L(1)},
		{Key: cost.Class("mulh"), Val: cost.L(4)},
		{Key: cost.Class("mul"), Val: cost.L(3)},
		{Key: cost.Class("alu_shift"), Val: cost.L(2)},
		{Key: cost.Class("alu"), Val: cost.L(1)},
		{Key: cost.Class("vec_mul"), Val: cost.L(4)},
		{Key: cost.Classes("aes", "vec_ext"), Val: cost.L(3)},
		{Key: vecSimple, Val: cost.L(2)},
	}},

	ThroughputTable: cost.Table[int]{Name: "throughput", Rows: []cost.Row[int]{
		{Key: cost.Classes("ld_struct", "st_struct"), Val: 4},
		{Key: cost.Class("mulh"), Val: 2},
		{Key: cost.Class("vec_mul"), Val: 2},
		{Key: cost.Any{}, Val: 1},
	}},

	Rules: []cost.LatencyRule{{
		Name:    "mul to accumulator",
		Src:     mulLow,
		Dst:     cost.Tagged(inst.Mul | inst.MulAcc),
		Check:   cost.FeedsAccumulator,
		Latency: cost.L(1),
	}},

	Further: func(s cost.Scheduler) {
		s.MaxPerCycle(cost.AnyOf{loads, stores}, 1)
		s.MaxPerCycle(cost.Class("mul"), 1)
	},
}
