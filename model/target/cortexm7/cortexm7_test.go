package cortexm7

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/sloth/model/arch/armv7m"
	"github.com/slowlang/sloth/model/cost"
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

func TestAccumulator(t *testing.T) {
	for _, tc := range []struct {
		src, dst string
		cycles   int
	}{
		{"mul r1, r2, r3", "mla r5, r6, r7, r1", 1},
		{"smlabb r1, r2, r3, r4", "smlabt r1, r5, r6, r1", 1},
		{"smull r1, r2, r3, r4", "smlal r1, r2, r5, r6", 1},
		{"mul r1, r2, r3", "mla r5, r1, r7, r8", 2},
		{"mul r1, r2, r3", "add r5, r1, r7", 2},
	} {
		l, err := Target.Latency(parse(t, tc.src), 0, parse(t, tc.dst))
		require.NoError(t, err)
		assert.Equal(t, tc.cycles, l.Cycles, "%v -> %v", tc.src, tc.dst)
	}
}

type limits struct {
	per []cost.Matcher
}

func (l *limits) MaxPerCycle(m cost.Matcher, n int) { l.per = append(l.per, m) }
func (l *limits) NotAdjacent(a, b cost.Matcher)     {}

func TestFurther(t *testing.T) {
	var l limits

	Target.AddFurtherConstraints(&l)
	require.Len(t, l.per, 3)

	assert.True(t, l.per[1].Match(parse(t, "str r1, [r0]")))
	assert.False(t, l.per[1].Match(parse(t, "ldr r1, [r0]")))
}
