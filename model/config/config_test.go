package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/sloth/model"
	"github.com/slowlang/sloth/model/arch/armv81m"
)

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sloth.yaml")

	err := os.WriteFile(name, []byte(`
target: cortex-m55
reserved: [r12, r14]
rename:
  q0: q4
fusion: false
window: 32
verbosity: fusion,estimate
`), 0o644)
	require.NoError(t, err)

	c, err := Load(name)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Target:    "cortex-m55",
		Reserved:  []string{"r12", "r14"},
		Rename:    map[string]string{"q0": "q4"},
		Window:    32,
		Verbosity: "fusion,estimate",
	}, c)

	r, err := c.Resolve()
	require.NoError(t, err)
	assert.Same(t, armv81m.Arch, r.A)
	assert.Equal(t, "armv81m", r.Arch)
	assert.Equal(t, "cortex-m55", r.M.Name())
}

func TestDefaults(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.True(t, c.Fusion)

	_, err = c.Resolve()
	assert.ErrorIs(t, err, ErrInvalid)

	c, err = Parse([]byte("arch: riscv64\n"))
	require.NoError(t, err)

	r, err := c.Resolve()
	require.NoError(t, err)
	assert.Nil(t, r.M)
	assert.True(t, r.Fusion)
}

func TestUnknownKey(t *testing.T) {
	_, err := Parse([]byte("arch: aarch64\nfusoin: false\n"))
	assert.Error(t, err)
}

func TestInvalid(t *testing.T) {
	for _, tc := range []struct {
		text string
		err  error
	}{
		{"arch: mips\n", model.ErrUnknownArch},
		{"target: cortex-x4\n", model.ErrUnknownTarget},
		{"arch: aarch64\ntarget: cortex-m4\n", ErrInvalid},
		{"arch: aarch64\nreserved: [r1]\n", ErrInvalid},
		{"arch: aarch64\nrename: {x1: v1}\n", ErrInvalid},
		{"arch: aarch64\nrename: {flags: x1}\n", ErrInvalid},
		{"arch: aarch64\nwindow: -1\n", ErrInvalid},
	} {
		c, err := Parse([]byte(tc.text))
		require.NoError(t, err, tc.text)

		_, err = c.Resolve()
		assert.ErrorIs(t, err, tc.err, tc.text)
	}
}
