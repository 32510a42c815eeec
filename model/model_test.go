package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/sloth/model/arch/aarch64"
	"github.com/slowlang/sloth/model/arch/armv81m"
	"github.com/slowlang/sloth/model/dfg"
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

const listing = `// keccak round fragment
.text
loop:
	eor x1, x2, x3 // @reads: x9
	ldr x4, [x0], #8
	add x5, x1, x4
	subs x20, x20, #1
`

func TestLookup(t *testing.T) {
	a, err := LookupArch("aarch64")
	require.NoError(t, err)
	assert.Same(t, aarch64.Arch, a)

	_, err = LookupArch("mips")
	assert.ErrorIs(t, err, ErrUnknownArch)

	m, err := LookupTarget("cortex-m55")
	require.NoError(t, err)
	assert.Same(t, armv81m.Arch, m.Arch())

	_, err = LookupTarget("cortex-x4")
	assert.ErrorIs(t, err, ErrUnknownTarget)

	assert.Equal(t, []string{"aarch64", "armv7m", "armv81m", "riscv64"}, Arches())
	assert.Equal(t, []string{"cortex-a55", "cortex-a72"}, Targets(aarch64.Arch))
	assert.Len(t, Targets(nil), 7)

	for _, name := range Targets(nil) {
		m, err := LookupTarget(name)
		require.NoError(t, err)

		_, err = LookupArch(m.Arch().Name)
		assert.NoError(t, err, "%v", name)
	}
}

func TestRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "a.s")

	err := os.WriteFile(name, []byte(listing), 0o644)
	require.NoError(t, err)

	l, err := ParseFile(context.Background(), aarch64.Arch, name)
	require.NoError(t, err)

	is := l.Seq()
	require.Len(t, is, 4)
	assert.Nil(t, l.Insts[2])
	assert.Equal(t, []string{"x2", "x3", "hint_x9"}, is[0].Args[inst.In])
	assert.Equal(t, []reg.Type{reg.GPR, reg.GPR, reg.Hint}, is[0].Types[inst.In])

	out, err := Format(nil, l, is)
	require.NoError(t, err)
	assert.Equal(t, listing, string(out))
}

func TestFormatRewritten(t *testing.T) {
	ctx := context.Background()

	l, err := Parse(ctx, aarch64.Arch, "a.s", []byte(listing))
	require.NoError(t, err)

	g := dfg.New(l.Arch, l.Seq(), "x5", "x20", "x0")

	err = g.Run(ctx)
	require.NoError(t, err)

	out, err := Format(nil, l, g.Insts())
	require.NoError(t, err)

	assert.Equal(t, `// keccak round fragment
.text
loop:
	eor x1, x2, x3 // @reads: x9
	ldr x4, [x0]
	add x0, x0, #8
	add x5, x1, x4
	subs x20, x20, #1
`, string(out))
}

func TestFormatKeepsDroppedComments(t *testing.T) {
	ctx := context.Background()

	l, err := Parse(ctx, aarch64.Arch, "a.s", []byte("f:\n\tldr x1, [x0] // first\n\tldr x2, [x0, #8] // second\n"))
	require.NoError(t, err)

	g := dfg.New(l.Arch, l.Seq(), "x1", "x2")
	g.Verify = true

	err = g.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())

	out, err := Format(nil, l, g.Insts())
	require.NoError(t, err)

	assert.Equal(t, "f:\n\t// first\n\tldp x1, x2, [x0]\n\t// second\n", string(out))
}

func TestParseErrors(t *testing.T) {
	l, err := Parse(context.Background(), aarch64.Arch, "bad.s", []byte("add x1, x2, x3\nfrob x1\nmul x1\n"))
	assert.ErrorIs(t, err, inst.ErrNoMatch)
	assert.False(t, inst.IsFatal(err))

	var pe ParseErrors
	require.ErrorAs(t, err, &pe)
	assert.Len(t, pe, 2)
	assert.Contains(t, pe[0].Error(), "bad.s:2")

	require.NotNil(t, l)
	assert.Len(t, l.Seq(), 1)
}
