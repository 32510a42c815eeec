package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	for _, tc := range []struct {
		In  string
		Exp int64
	}{
		{"16", 16},
		{"#16", 16},
		{"-16", -16},
		{"0x10", 16},
		{"0b101", 5},
		{"1 << 4", 16},
		{"4*8+1", 33},
		{"4*(8+1)", 36},
		{"-(2+3)", -5},
		{"~0", -1},
		{"7 & 3 | 8", 11},
		{"10 - 3 - 2", 5},
		{"  64 / 8 % 5 ", 3},
	} {
		v, err := Value(tc.In, nil)
		if assert.NoError(t, err, "%q", tc.In) {
			assert.Equal(t, tc.Exp, v, "%q", tc.In)
		}
	}
}

func TestSymbols(t *testing.T) {
	env := func(n string) (int64, bool) {
		if n == "STACK_OFF" {
			return 48, true
		}

		return 0, false
	}

	v, err := Value("STACK_OFF + 8", env)
	require.NoError(t, err)
	assert.Equal(t, int64(56), v)

	_, err = Value("OTHER", env)
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "1 +", "(1", "1 2", "8/0"} {
		_, err := Value(in, nil)
		assert.Error(t, err, "%q", in)
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, "24", Add("16", 8))
	assert.Equal(t, "8", Add("", 8))
	assert.Equal(t, "(OFF)+8", Add("OFF", 8))
	assert.Equal(t, "(OFF)-4", Add("OFF", -4))
	assert.Equal(t, "OFF", Add("OFF", 0))

	x, err := Parse("a+2*3")
	require.NoError(t, err)
	assert.Equal(t, "(a+(2*3))", Format(x))
}
