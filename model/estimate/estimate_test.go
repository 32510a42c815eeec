package estimate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/sloth/model/arch/aarch64"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/target/cortexa55"
)

func parse(t *testing.T, lines ...string) (r []*inst.Inst) {
	t.Helper()

	for _, l := range lines {
		i, err := aarch64.Arch.ParseText(l)
		require.NoError(t, err, l)

		r = append(r, i)
	}

	return r
}

func target(further func(s cost.Scheduler), rules ...cost.LatencyRule) *cost.Target {
	return &cost.Target{
		TargetName: "test",
		Of:         aarch64.Arch,
		Width:      2,
		UnitTable: cost.Table[cost.Units]{Name: "units", Rows: []cost.Row[cost.Units]{
			{Key: cost.AnyOf{cost.Tagged(inst.Load), cost.Tagged(inst.Store)}, Val: cost.Either("ls")},
			{Key: cost.Class("mul"), Val: cost.Either("mac")},
			{Key: cost.Classes("alu", "alu_shift"), Val: cost.Either("a0", "a1")},
		}},
		LatencyTable: cost.Table[cost.Latency]{Name: "latency", Rows: []cost.Row[cost.Latency]{
			{Key: cost.Tagged(inst.Load), Val: cost.L(3)},
			{Key: cost.Class("mul"), Val: cost.L(3)},
			{Key: cost.Any{}, Val: cost.L(1)},
		}},
		ThroughputTable: cost.Table[int]{Name: "throughput", Rows: []cost.Row[int]{
			{Key: cost.Class("mulh"), Val: 2},
			{Key: cost.Any{}, Val: 1},
		}},
		Rules:     rules,
		Further:   further,
		Objective: &cost.Objective{Name: "last_load", Select: cost.Tagged(inst.Load)},
	}
}

func cycles(s *Schedule) (r []int) {
	for _, p := range s.Place {
		r = append(r, p.Cycle)
	}

	return r
}

func TestDualIssue(t *testing.T) {
	s, err := Run(context.Background(), target(nil), parse(t,
		"add x1, x2, x3",
		"add x4, x5, x6",
		"add x7, x1, x4",
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 1}, cycles(s))
	assert.Equal(t, 2, s.Cycles)
	assert.Equal(t, -1, s.Objective)
	assert.Equal(t, []int{0, 1, 2}, s.Order)
}

func TestMaxPerCycle(t *testing.T) {
	m := target(func(s cost.Scheduler) {
		s.MaxPerCycle(cost.Class("alu"), 1)
	})

	s, err := Run(context.Background(), m, parse(t,
		"add x1, x2, x3",
		"add x4, x5, x6",
		"add x7, x1, x4",
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, cycles(s))
}

func TestUnitsBusy(t *testing.T) {
	s, err := Run(context.Background(), target(nil), parse(t,
		"umulh x1, x2, x3",
		"umulh x4, x5, x6",
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, cycles(s))
}

func TestNotAdjacent(t *testing.T) {
	m := target(func(s cost.Scheduler) {
		s.NotAdjacent(cost.Tagged(inst.Store), cost.Tagged(inst.Store))
	})

	s, err := Run(context.Background(), m, parse(t,
		"str x1, [x0]",
		"str x2, [x3]",
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, cycles(s))
}

func TestConstraint(t *testing.T) {
	m := target(nil, cost.LatencyRule{
		Name:  "base forwarding",
		Src:   cost.Tagged(inst.Writeback),
		Dst:   cost.Tagged(inst.Load),
		Check: cost.FeedsBase,
		Latency: cost.Latency{Cycles: 1, Constraint: func(src, dst cost.Placement) bool {
			return dst.Cycle >= src.Cycle+4
		}},
	})

	s, err := Run(context.Background(), m, parse(t,
		"ldr x1, [x0], #8",
		"ldr x2, [x0]",
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 4}, cycles(s))
	assert.Equal(t, 4, s.Objective)
}

func TestMemoryOrder(t *testing.T) {
	s, err := Run(context.Background(), target(nil), parse(t,
		"str x1, [x0]",
		"ldr x2, [x3]",
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, cycles(s))
}

func TestPriority(t *testing.T) {
	// the load chain is longer, so it goes first
	s, err := Run(context.Background(), target(func(s cost.Scheduler) {
		s.MaxPerCycle(cost.Any{}, 1)
	}), parse(t,
		"add x9, x8, x7",
		"ldr x1, [x0]",
		"add x2, x1, x1",
	))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 2}, s.Order)
	assert.Equal(t, []int{1, 0, 3}, cycles(s))
}

func TestCortexA55(t *testing.T) {
	s, err := Run(context.Background(), cortexa55.Target, parse(t,
		"mul x1, x2, x3",
		"madd x4, x5, x6, x1",
	))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, cycles(s))

	s, err = Run(context.Background(), cortexa55.Target, parse(t,
		"mul x1, x2, x3",
		"madd x4, x1, x6, x7",
	))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, cycles(s))
}

func TestUnknown(t *testing.T) {
	m := target(nil)
	m.UnitTable.Rows = m.UnitTable.Rows[:1]

	_, err := Run(context.Background(), m, parse(t, "add x1, x2, x3"))
	assert.ErrorIs(t, err, cost.ErrUnknownInstruction)
	assert.True(t, inst.IsFatal(err))
}
