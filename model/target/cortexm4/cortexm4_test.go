package cortexm4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/sloth/model/arch/armv7m"
	"github.com/slowlang/sloth/model/cost/costtest"
	"github.com/slowlang/sloth/model/inst"
)

func parse(t *testing.T, text string) *inst.Inst {
	t.Helper()

	i, err := armv7m.Arch.ParseText(text)
	require.NoError(t, err, text)

	return i
}

func TestTotal(t *testing.T) {
	costtest.Total(t, Target)
	costtest.Unknown(t, Target)
}

func TestMultiple(t *testing.T) {
	for text, exp := range map[string]int{
		"ldm r0, {r1, r2}":          3,
		"ldm r0!, {r1, r2, r3, r4}": 5,
		"stm r0!, {r1, r2, r3, r4}": 5,
		"ldr r1, [r0, #4]":          1,
		"vmov r2, r3, s4, s5":       2,
	} {
		n, err := Target.InverseThroughput(parse(t, text))
		require.NoError(t, err)
		assert.Equal(t, exp, n, "%v", text)
	}
}

func TestStoreData(t *testing.T) {
	ld := parse(t, "ldr r1, [r0, #4]")

	l, err := Target.Latency(ld, 0, parse(t, "str r1, [r2, #8]"))
	require.NoError(t, err)
	assert.Equal(t, 1, l.Cycles)

	// used as the address
	l, err = Target.Latency(ld, 0, parse(t, "str r3, [r1, #8]"))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Cycles)

	l, err = Target.Latency(ld, 0, parse(t, "add r3, r1, r2"))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Cycles)
}

func TestSingleIssue(t *testing.T) {
	assert.Equal(t, 1, Target.IssueWidth())
	assert.False(t, Target.HasMinMaxObjective())

	u, err := Target.Units(parse(t, "smlabb r1, r2, r3, r4"))
	require.NoError(t, err)
	assert.Equal(t, "pipe", u.String())
}
