// Package costtest holds checks shared by target tests.
package costtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

// Example returns the example instance of the variant.
func Example(t testing.TB, a *inst.Arch, name string) *inst.Inst {
	t.Helper()

	v := a.MustVariant(name)

	var i *inst.Inst
	var err error

	if v.Internal {
		i, err = a.MakeText(v.Name, v.Example)
	} else {
		i, err = a.ParseText(v.Example)
	}

	require.NoError(t, err, "%v: %v", v.Name, v.Example)
	require.Equal(t, v.Name, i.V.Name, "%v", v.Example)

	return i
}

// Total checks every variant of the model architecture is covered by every table.
func Total(t *testing.T, m cost.Model) {
	t.Helper()

	for _, v := range m.Arch().Variants {
		i := Example(t, m.Arch(), v.Name)

		assert.NoError(t, cost.Check(m, i), "%v", v.Name)
	}
}

// Unknown checks an instruction out of the model fails fatally.
func Unknown(t *testing.T, m cost.Model) {
	t.Helper()

	i := &inst.Inst{V: &inst.Variant{Name: "frobnicate", Classes: []string{"frob"}}}

	_, err := m.Units(i)
	assert.ErrorIs(t, err, cost.ErrUnknownInstruction)
	assert.True(t, inst.IsFatal(err))

	_, err = m.Latency(i, 0, i)
	assert.ErrorIs(t, err, cost.ErrUnknownInstruction)
	assert.True(t, inst.IsFatal(err))
}
