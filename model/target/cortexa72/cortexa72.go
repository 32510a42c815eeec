// Package cortexa72 is the cost model of the out-of-order Cortex-A72 core.
package cortexa72

import (
	"github.com/slowlang/sloth/model/arch/aarch64"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

const (
	i0 cost.Unit = "i0"
	i1 cost.Unit = "i1"
	m  cost.Unit = "m"
	l  cost.Unit = "l"
	s  cost.Unit = "s"
	f0 cost.Unit = "f0"
	f1 cost.Unit = "f1"
)

var (
	loads  = cost.Tagged(inst.Load)
	stores = cost.Tagged(inst.Store)

	vecMulAcc = cost.Tagged(inst.Vector | inst.Mul | inst.MulAcc)
)

var Target = &cost.Target{
	TargetName: "cortex-a72",
	Of:         aarch64.Arch,
	Width:      3,

	UnitTable: cost.Table[cost.Units]{Name: "units", Rows: []cost.Row[cost.Units]{
		{Key: cost.Classes("ld_struct", "st_struct"), Val: cost.Both(l, s)},
		{Key: loads, Val: cost.Either(l)},
		{Key: stores, Val: cost.Either(s)},
		{Key: cost.Classes("mul", "alu_shift"), Val: cost.Either(m)},
		{Key: cost.Class("alu"), Val: cost.Either(i0, i1)},
		{Key: cost.Classes("vec_mul", "aes"), Val: cost.Either(f0)},
		{Key: cost.Classes("vec_shift", "vec_ext"), Val: cost.Either(f1)},
		{Key: cost.Classes("vec_alu", "vec_perm", "vec_ins"), Val: cost.Either(f0, f1)},
	}},

	LatencyTable: cost.Table[cost.Latency]{Name: "latency", Rows: []cost.Row[cost.Latency]{
		{Key: cost.Tagged(inst.Load | inst.Vector), Val: cost.L(5)},
		{Key: loads, Val: cost.L(4)},
		{Key: stores, Val: cost.L(1)},
		{Key: cost.Class("mulh"), Val: cost.L(6)},
		{Key: cost.Class("mul"), Val: cost.L(3)},
		{Key: cost.Class("alu_shift"), Val: cost.L(2)},
		{Key: cost.Class("alu"), Val: cost.L(1)},
		{Key: cost.Class("vec_mul"), Val: cost.L(5)},
		{Key: cost.Class("vec_ext"), Val: cost.L(5)},
		{Key: cost.Classes("vec_alu", "vec_perm", "vec_shift", "vec_ins", "aes"), Val: cost.L(3)},
	}},

	ThroughputTable: cost.Table[int]{Name: "throughput", Rows: []cost.Row[int]{
		{Key: cost.Classes("ld_struct", "st_struct"), Val: 4},
		{Key: cost.Class("mulh"), Val: 4},
		{Key: cost.Tagged(inst.Vector | inst.Mul), Val: 2},
		{Key: cost.Any{}, Val: 1},
	}},

	Rules: []cost.LatencyRule{{
		// accumulator is forwarded late into the accumulate stage
		Name:    "vector multiply to accumulator",
		Src:     cost.Class("vec_mul"),
		Dst:     vecMulAcc,
		Check:   cost.FeedsAccumulator,
		Latency: cost.L(1),
	}, {
		Name:    "mul to accumulator",
		Src:     cost.Pred(func(i *inst.Inst) bool { return i.Is("mul") && !i.Is("mulh") }),
		Dst:     cost.Tagged(inst.MulAcc),
		Check:   cost.FeedsAccumulator,
		Latency: cost.L(1),
	}, {
		Name:    "aes pair",
		Src:     cost.Class("aese"),
		Dst:     cost.Class("aesmc"),
		Check:   reads,
		Latency: cost.L(0),
	}},

	Further: func(sch cost.Scheduler) {
		sch.MaxPerCycle(cost.Classes("ld_struct", "st_struct"), 1)
	},
}

func reads(src *inst.Inst, out int, dst *inst.Inst) bool {
	ws := src.Writes()
	if out >= len(ws) {
		return false
	}

	for _, r := range dst.Reads() {
		if r == ws[out] {
			return true
		}
	}

	return false
}
