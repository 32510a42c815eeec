package riscv64

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/sloth/model/dfg"
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

func TestExamples(t *testing.T) {
	for _, v := range Arch.Variants {
		require.NotEmpty(t, v.Example, "%v", v.Name)

		i, err := Arch.ParseText(v.Example)
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

	assert.Equal(t, "a0", Regs.Canonical("x10"))
	assert.Equal(t, "s0", Regs.Canonical("fp"))
	assert.Equal(t, "t6", Regs.Canonical("x31"))

	gpr := Regs.Allocatable(reg.GPR)
	assert.NotContains(t, gpr, "zero")
	assert.NotContains(t, gpr, "sp")
	assert.NotContains(t, gpr, "ra")
	assert.Contains(t, gpr, "a0")
	assert.Contains(t, gpr, "t6")

	tp, ok := Regs.FindType("vl")
	require.True(t, ok)
	assert.Equal(t, reg.Special, tp)
	assert.False(t, Regs.IsRenamed(tp))
}

func TestNumericNames(t *testing.T) {
	i, err := Arch.ParseText("add x10, x11, x12")
	require.NoError(t, err)
	assert.Equal(t, []string{"a0"}, i.Args[inst.Out])
	assert.Equal(t, []string{"a1", "a2"}, i.Args[inst.In])

	out, err := Arch.Write(i)
	require.NoError(t, err)
	assert.Equal(t, "add a0, a1, a2", out)
}

func TestMemory(t *testing.T) {
	i, err := Arch.ParseText("ld a0, 8(a1)")
	require.NoError(t, err)
	assert.Equal(t, "ld", i.V.Name)
	assert.Equal(t, "a1", i.Addr)
	assert.Equal(t, "8", i.PreIndex)

	i, err = Arch.ParseText("sd t0, -16(sp)")
	require.NoError(t, err)
	assert.Equal(t, "sd", i.V.Name)
	assert.Equal(t, []string{"t0", "sp"}, i.Args[inst.In])

	i, err = Arch.ParseText("ld a0, stack3(sp)")
	require.NoError(t, err)
	assert.Equal(t, "restore", i.V.Name)
	assert.Equal(t, []reg.Type{reg.StackGPR}, i.Types[inst.In])

	i, err = Arch.ParseText("ld a0, off(sp)")
	require.NoError(t, err)
	assert.Equal(t, "ld", i.V.Name)
	assert.Equal(t, "off", i.PreIndex)
}

func TestVectorLength(t *testing.T) {
	i, err := Arch.ParseText("vadd.vv v1, v2, v3")
	require.NoError(t, err)
	assert.Equal(t, []string{"v2", "v3", "vl"}, i.Args[inst.In])

	r := Arch.Rename(i, map[string]string{"v2": "v8", "vl": "v9"})
	assert.Equal(t, []string{"v8", "v3", "vl"}, r.Args[inst.In])

	i, err = Arch.ParseText("vsetvli t0, a2, e32, m1, ta, ma")
	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "vl"}, i.Args[inst.Out])
	assert.Equal(t, "e32", i.Field("dt"))

	i, err = Arch.ParseText("vle16.v v4, (a0)")
	require.NoError(t, err)
	assert.Equal(t, "16", i.Field("dt"))
	assert.Equal(t, "a0", i.Addr)
}

func TestShiftAddFusion(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		outputs []string
		in      []string
		out     []string
	}{{
		outputs: []string{"a0"},
		in:      []string{"slli t0, a1, 3", "add a0, t0, a2"},
		out:     []string{"sh3add a0, a1, a2"},
	}, {
		outputs: []string{"a0"},
		in:      []string{"slli t0, a1, 1", "xor a3, a3, a4", "add a0, a2, t0"},
		out:     []string{"xor a3, a3, a4", "sh1add a0, a1, a2"},
	}, {
		// no shNadd for this amount
		outputs: []string{"a0"},
		in:      []string{"slli t0, a1, 4", "add a0, t0, a2"},
		out:     []string{"slli t0, a1, 4", "add a0, t0, a2"},
	}, {
		// shifted value escapes
		outputs: []string{"a0", "t0"},
		in:      []string{"slli t0, a1, 2", "add a0, t0, a2"},
		out:     []string{"slli t0, a1, 2", "add a0, t0, a2"},
	}, {
		// source overwritten in between
		outputs: []string{"a0"},
		in:      []string{"slli t0, a1, 2", "li a1, 5", "add a0, t0, a2"},
		out:     []string{"slli t0, a1, 2", "li a1, 5", "add a0, t0, a2"},
	}} {
		var is []*inst.Inst

		for _, l := range tc.in {
			i, err := Arch.ParseText(l)
			require.NoError(t, err, l)

			is = append(is, i)
		}

		g := dfg.New(Arch, is, tc.outputs...)

		err := g.Run(ctx)
		require.NoError(t, err)

		var got []string

		for _, i := range g.Insts() {
			s, err := Arch.Write(i)
			require.NoError(t, err)

			got = append(got, s)
		}

		assert.Equal(t, tc.out, got, "%q", tc.in)
	}
}

func TestRegisterInImmediate(t *testing.T) {
	for _, text := range []string{
		"addi a0, a1, a2",
		"slli a0, a1, a2",
		"addi x1, x2, x3",
		"ld a0, a1(a2)",
	} {
		_, err := Arch.ParseText(text)
		assert.ErrorIs(t, err, inst.ErrNoMatch, text)
		assert.False(t, inst.IsFatal(err), text)
	}

	// without an immediate prefix a symbol is a constant
	i, err := Arch.ParseText("addi a0, a0, step")
	require.NoError(t, err)
	assert.Equal(t, "addi", i.V.Name)
	assert.Equal(t, "step", i.Imm())
	assert.Equal(t, []string{"a0"}, i.Args[inst.In])
}
