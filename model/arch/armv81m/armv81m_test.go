package armv81m

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/sloth/model/dfg"
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

func parse(t *testing.T, lines ...string) (r []*inst.Inst) {
	t.Helper()

	for _, l := range lines {
		i, err := Arch.ParseText(l)
		require.NoError(t, err, l)

		r = append(r, i)
	}

	return r
}

func write(t *testing.T, is []*inst.Inst) (r []string) {
	t.Helper()

	for _, i := range is {
		s, err := Arch.Write(i)
		require.NoError(t, err)

		r = append(r, s)
	}

	return r
}

func TestExamples(t *testing.T) {
	for _, v := range Arch.Variants {
		require.NotEmpty(t, v.Example, "%v", v.Name)

		var i *inst.Inst
		var err error

		if v.Internal {
			i, err = Arch.MakeText(v.Name, v.Example)
		} else {
			i, err = Arch.ParseText(v.Example)
		}

		if !assert.NoError(t, err, "%v: %v", v.Name, v.Example) {
			continue
		}

		assert.Equal(t, v.Name, i.V.Name, "%v", v.Example)

		out, err := Arch.Write(i)
		if assert.NoError(t, err, "%v", v.Name) {
			assert.Equal(t, v.Example, out)
		}
	}
}

func TestRegisters(t *testing.T) {
	for _, tp := range Regs.Types() {
		for _, name := range Regs.List(tp, reg.WithAliases) {
			got, ok := Regs.FindType(name)
			if assert.True(t, ok, "%v", name) {
				assert.Equal(t, tp, got, "%v", name)
			}
		}
	}

	assert.Len(t, Regs.Allocatable(reg.Vector), 8)
	assert.NotContains(t, Regs.Allocatable(reg.GPR), "sp")
}

func TestQuads(t *testing.T) {
	_, err := Arch.ParseText("vld40.32 {q1, q2, q3, q4}, [r0]")
	assert.NoError(t, err)

	_, err = Arch.ParseText("vld40.32 {q1, q2, q4, q5}, [r0]")
	assert.ErrorIs(t, err, inst.ErrNoMatch)

	_, err = Arch.ParseText("vst43.32 {q5, q6, q7, q0}, [r0]!")
	assert.ErrorIs(t, err, inst.ErrNoMatch)

	// symbolic quads are left to the allocator
	i, err := Arch.ParseText("vld41.16 {qa, qb, qc, qd}, [src]")
	require.NoError(t, err)
	assert.Equal(t, []string{"qa", "qb", "qc", "qd"}, i.Args[inst.InOut])
}

func TestWriteback(t *testing.T) {
	i, err := Arch.ParseText("vld43.32 {q0, q1, q2, q3}, [r0]!")
	require.NoError(t, err)
	assert.Equal(t, "vld43_wb", i.V.Name)
	assert.Equal(t, []string{"q0", "q1", "q2", "q3", "r0"}, i.Args[inst.InOut])
	assert.Equal(t, "64", i.Increment)

	i, err = Arch.ParseText("vstrw.u32 q3, [r1], #-32")
	require.NoError(t, err)
	assert.Equal(t, "-32", i.Increment)
}

func TestQuartet(t *testing.T) {
	ctx := context.Background()

	g := dfg.New(Arch, parse(t,
		"vld40.32 {q0, q1, q2, q3}, [r0]",
		"vld41.32 {q0, q1, q2, q3}, [r0]",
		"vld42.32 {q0, q1, q2, q3}, [r0]",
		"vld43.32 {q0, q1, q2, q3}, [r0]!",
	), "q0", "q1", "q2", "q3", "r0")

	changed, err := g.Parsing(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	is := g.Insts()

	assert.Equal(t, "vld40_force_output", is[0].V.Name)
	assert.Equal(t, []string{"q0", "q1", "q2", "q3"}, is[0].Args[inst.Out])
	assert.Equal(t, []string{"r0"}, is[0].Args[inst.In])
	assert.True(t, is[0].Marked(inst.MarkReclassified))

	for _, i := range is[1:] {
		assert.NotEmpty(t, i.Args[inst.InOut])
	}

	assert.Equal(t, "vld40.32 {q0, q1, q2, q3}, [r0]", write(t, is)[0])
}

func TestQuartetIncomplete(t *testing.T) {
	ctx := context.Background()

	for _, lines := range [][]string{
		{
			"vld40.32 {q0, q1, q2, q3}, [r0]",
			"vld41.32 {q0, q1, q2, q3}, [r0]",
			"vld42.32 {q0, q1, q2, q3}, [r0]",
		},
		{
			"vld40.32 {q0, q1, q2, q3}, [r0]",
			"vld41.32 {q0, q1, q2, q3}, [r0]",
			"vld42.32 {q0, q1, q2, q3}, [r1]",
			"vld43.32 {q0, q1, q2, q3}, [r0]",
		},
		{
			"vld40.32 {q0, q1, q2, q3}, [r0]",
			"vld41.32 {q0, q1, q2, q3}, [r0]",
			"add r0, r0, #64",
			"vld42.32 {q0, q1, q2, q3}, [r0]",
			"vld43.32 {q0, q1, q2, q3}, [r0]",
		},
		{
			"vld40.32 {q0, q1, q2, q3}, [r0]",
			"vadd.i32 q4, q0, q1",
			"vld41.32 {q0, q1, q2, q3}, [r0]",
			"vld42.32 {q0, q1, q2, q3}, [r0]",
			"vld43.32 {q0, q1, q2, q3}, [r0]",
		},
	} {
		g := dfg.New(Arch, parse(t, lines...), "q0", "q1", "q2", "q3", "q4")

		changed, err := g.Parsing(ctx)
		require.NoError(t, err)
		assert.Zero(t, changed, "%q", lines)
		assert.Equal(t, "vld40", g.Insts()[0].V.Name)
	}
}

func TestSplitPost(t *testing.T) {
	ctx := context.Background()

	in := parse(t,
		"vldrw.u32 q0, [r0], #16",
		"vstrw.u32 q0, [r1], #16",
	)

	g := dfg.New(Arch, in, "r0", "r1")

	err := g.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"vldrw.u32 q0, [r0]",
		"add r0, r0, #16",
		"vstrw.u32 q0, [r1]",
		"add r1, r1, #16",
	}, write(t, g.Insts()))

	before, err := Arch.Footprint(in, nil)
	require.NoError(t, err)

	after, err := Arch.Footprint(g.Insts(), nil)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestStackSlots(t *testing.T) {
	i, err := Arch.ParseText("vldrw.u32 q1, [sp, #qstack2]")
	require.NoError(t, err)
	assert.Equal(t, "restore_q", i.V.Name)

	i, err = Arch.ParseText("vldrw.u32 q1, [sp, #32]")
	require.NoError(t, err)
	assert.Equal(t, "vldrw_imm", i.V.Name)

	i, err = Arch.ParseText("ldr r1, [sp, #stack4]")
	require.NoError(t, err)
	assert.Equal(t, "restore", i.V.Name)
}

func TestStackSlotSymbolicOffset(t *testing.T) {
	i, err := Arch.ParseText("ldr r1, [sp, #frame]")
	require.NoError(t, err)
	assert.Equal(t, "ldr_imm", i.V.Name)
	assert.Equal(t, "frame", i.PreIndex)

	i, err = Arch.ParseText("vldrw.u32 q1, [sp, #frame]")
	require.NoError(t, err)
	assert.Equal(t, "vldrw_imm", i.V.Name)
}

func TestRegisterInImmediate(t *testing.T) {
	i, err := Arch.ParseText("lsl r1, r2, r3")
	require.NoError(t, err)
	assert.Equal(t, "lsl_reg", i.V.Name)
	assert.Equal(t, []string{"r2", "r3"}, i.Args[inst.In])

	r := Arch.Rename(i, map[string]string{"r3": "r9"})

	out, err := Arch.Write(r)
	require.NoError(t, err)
	assert.Equal(t, "lsl r1, r2, r9", out)

	_, err = Arch.MakeText("add_imm", "add r1, r2, r3")
	assert.ErrorIs(t, err, inst.ErrNoMatch)

	_, err = Arch.MakeText("lsl", "lsl r1, r2, shift")
	assert.ErrorIs(t, err, inst.ErrNoMatch)

	// no register offset form here
	_, err = Arch.ParseText("ldr r1, [r0, r2]")
	assert.ErrorIs(t, err, inst.ErrNoMatch)
	assert.False(t, inst.IsFatal(err))
}
