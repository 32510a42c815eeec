package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"

	"github.com/slowlang/sloth/model/arch/aarch64"
	"github.com/slowlang/sloth/model/inst"
)

func parse(t *testing.T, text string) *inst.Inst {
	t.Helper()

	i, err := aarch64.Arch.ParseText(text)
	require.NoError(t, err, text)

	return i
}

func TestFirstMatch(t *testing.T) {
	tab := Table[int]{Name: "test", Rows: []Row[int]{
		{Key: Class("mulh"), Val: 5},
		{Key: Class("mul"), Val: 3},
		{Key: AnyOf{Tagged(inst.Load), Pred(func(i *inst.Inst) bool { return i.V.Name == "eor" })}, Val: 4},
		{Key: Class("alu"), Val: 1},
	}}

	for text, exp := range map[string]int{
		"umulh x1, x2, x3": 5,
		"mul x1, x2, x3":   3,
		"ldr x1, [x0]":     4,
		"eor x1, x2, x3":   4,
		"orr x1, x2, x3":   1,
	} {
		v, err := tab.Lookup(parse(t, text))
		require.NoError(t, err, text)
		assert.Equal(t, exp, v, text)
	}

	_, err := tab.Lookup(parse(t, "str x1, [x0]"))
	assert.True(t, errors.Is(err, ErrUnknownInstruction))
	assert.True(t, inst.IsFatal(err))
	assert.Contains(t, err.Error(), "test table: str")
}

func TestUnits(t *testing.T) {
	assert.Equal(t, Units{{"a"}, {"b"}}, Either("a", "b"))
	assert.Equal(t, Units{{"a", "b"}}, Both("a", "b"))
	assert.Equal(t, "a|b", Either("a", "b").String())
	assert.Equal(t, "a+b", Both("a", "b").String())
}

func TestRulesFirst(t *testing.T) {
	m := &Target{
		TargetName: "test",
		Of:         aarch64.Arch,
		Width:      1,
		LatencyTable: Table[Latency]{Name: "latency", Rows: []Row[Latency]{
			{Key: Class("mul"), Val: L(4)},
			{Key: Any{}, Val: L(1)},
		}},
		Rules: []LatencyRule{{
			Name:    "acc",
			Src:     Class("mul"),
			Dst:     Tagged(inst.MulAcc),
			Check:   FeedsAccumulator,
			Latency: L(2),
		}},
	}

	mul := parse(t, "mul x1, x2, x3")

	l, err := m.Latency(mul, 0, parse(t, "madd x4, x5, x6, x1"))
	require.NoError(t, err)
	assert.Equal(t, L(2), l)

	l, err = m.Latency(mul, 0, parse(t, "madd x4, x1, x6, x7"))
	require.NoError(t, err)
	assert.Equal(t, L(4), l)

	assert.False(t, m.HasMinMaxObjective())
	assert.Equal(t, Objective{}, m.MinMaxObjective())
}

func TestAccumulator(t *testing.T) {
	acc, ok := Accumulator(parse(t, "madd x1, x2, x3, x4"))
	assert.True(t, ok)
	assert.Equal(t, "x4", acc)

	acc, ok = Accumulator(parse(t, "mla v0.4s, v1.4s, v2.4s"))
	assert.True(t, ok)
	assert.Equal(t, "v0", acc)

	_, ok = Accumulator(parse(t, "mul x1, x2, x3"))
	assert.False(t, ok)

	assert.False(t, FeedsAccumulator(parse(t, "mul x1, x2, x3"), 3, parse(t, "madd x4, x5, x6, x1")))
}

func TestFeedsBase(t *testing.T) {
	post := parse(t, "ldr x1, [x0], #8")

	// writes are data first then the base
	assert.True(t, FeedsBase(post, 1, parse(t, "ldr x2, [x0]")))
	assert.False(t, FeedsBase(post, 0, parse(t, "ldr x2, [x0]")))
	assert.False(t, FeedsBase(post, 1, parse(t, "add x2, x0, x3")))
}
