// Package cortexm4 is the cost model of the single issue Cortex-M4 core.
package cortexm4

import (
	"github.com/slowlang/sloth/model/arch/armv7m"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

const pipe cost.Unit = "pipe"

var (
	loads  = cost.Tagged(inst.Load)
	stores = cost.Tagged(inst.Store)
)

var Target = &cost.Target{
	TargetName: "cortex-m4",
	Of:         armv7m.Arch,
	Width:      1,

	UnitTable: cost.Table[cost.Units]{Name: "units", Rows: []cost.Row[cost.Units]{
		{Key: cost.AnyOf{loads, stores}, Val: cost.Either(pipe)},
		{Key: cost.Class("mul"), Val: cost.Either(pipe)},
		{Key: cost.Classes("alu", "alu_shift", "vmov"), Val: cost.Either(pipe)},
	}},

	LatencyTable: cost.Table[cost.Latency]{Name: "latency", Rows: []cost.Row[cost.Latency]{
		{Key: cost.Class("vmov"), Val: cost.L(1)},
		{Key: cost.Classes("ldrd", "ldm"), Val: cost.L(3)},
		{Key: loads, Val: cost.L(2)},
		{Key: stores, Val: cost.L(1)},
		{Key: cost.Class("mul"), Val: cost.L(1)},
		{Key: cost.Classes("alu", "alu_shift"), Val: cost.L(1)},
	}},

	// multiple transfers take a cycle per register plus one
	ThroughputTable: cost.Table[int]{Name: "throughput", Rows: []cost.Row[int]{
		{Key: transfers(4), Val: 5},
		{Key: transfers(2), Val: 3},
		{Key: cost.Class("vmov_pair_from_s"), Val: 2},
		{Key: cost.Any{}, Val: 1},
	}},

	Rules: []cost.LatencyRule{{
		// store data is read late in the pipeline
		Name:    "load to store data",
		Src:     loads,
		Dst:     stores,
		Check:   storesData,
		Latency: cost.L(1),
	}},
}

// transfers matches load and store multiple of n registers.
func transfers(n int) cost.Pred {
	return func(i *inst.Inst) bool {
		return (i.Is("ldm") || i.Is("stm")) && i.V.Mem != nil && len(i.V.Mem.Data) == n
	}
}

func storesData(src *inst.Inst, out int, dst *inst.Inst) bool {
	ws := src.Writes()
	if dst.V.Mem == nil || out >= len(ws) || cost.FeedsBase(src, out, dst) {
		return false
	}

	for _, f := range dst.V.Mem.Data {
		if dst.Arg(f) == ws[out] {
			return true
		}
	}

	return false
}
