package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSyntax = &Syntax{
	Name: "test",
	Registers: map[string]string{
		"X": `x\d+|sp`,
		"V": `v\d+`,
	},
	ImmPrefix: "#",
	Datatype:  `\d*[bhsdq]`,
	Flag:      `eq|ne|lt|ge`,
}

func TestMatchWrite(t *testing.T) {
	p, err := Compile(testSyntax, "add <Xd>, <Xa>, <imm>")
	require.NoError(t, err)

	b, ok := p.Match("add x1,x2,#16")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"Xd": "x1", "Xa": "x2", "imm": "16"}, b.Values)
	assert.True(t, b.Hash["imm"])
	assert.Empty(t, b.Symbolic)

	out, err := p.Write(b)
	require.NoError(t, err)
	assert.Equal(t, "add x1, x2, #16", out)

	b, ok = p.Match("  add   acc , x2 , 1 << 4  ")
	require.True(t, ok)
	assert.Equal(t, "acc", b.Values["Xd"])
	assert.True(t, b.Symbolic["Xd"])
	assert.Equal(t, "1 << 4", b.Values["imm"])
	assert.False(t, b.Hash["imm"])

	out, err = p.Write(b)
	require.NoError(t, err)
	assert.Equal(t, "add acc, x2, 1 << 4", out)

	_, ok = p.Match("addx x1, x2, #16")
	assert.False(t, ok)

	_, ok = p.Match("add x1, x2")
	assert.False(t, ok)
}

func TestSymbolicPrefixOfRaw(t *testing.T) {
	p := MustCompile(testSyntax, "mov <Xd>, <Xa>")

	b, ok := p.Match("mov x1_tmp, x10")
	require.True(t, ok)
	assert.Equal(t, "x1_tmp", b.Values["Xd"])
	assert.True(t, b.Symbolic["Xd"])
	assert.Equal(t, "x10", b.Values["Xa"])
	assert.False(t, b.Symbolic["Xa"])
}

func TestLists(t *testing.T) {
	p := MustCompile(testSyntax, "ld4 {<Va>.<dt0>, <Vb>.<dt1>, <Vc>.<dt2>, <Vd>.<dt3>}, [<Xc>]")

	b, ok := p.Match("ld4 { v0.4s ,v1.4s, v2.4s, v3.4s }, [ x0 ]")
	require.True(t, ok)
	assert.Equal(t, "v3", b.Values["Vd"])
	assert.Equal(t, "4s", b.Values["dt2"])
	assert.Equal(t, "x0", b.Values["Xc"])

	out, err := p.Write(b)
	require.NoError(t, err)
	assert.Equal(t, "ld4 {v0.4s, v1.4s, v2.4s, v3.4s}, [x0]", out)

	p = MustCompile(testSyntax, "ldr <Xd>, [<Xa>], <imm>")

	b, ok = p.Match("ldr x1, [x0], #-8")
	require.True(t, ok)
	assert.Equal(t, "-8", b.Values["imm"])

	p = MustCompile(testSyntax, "ins <Vd>.d[<index>], <Xa>")

	b, ok = p.Match("ins v0.d[1], x2")
	require.True(t, ok)
	assert.Equal(t, "1", b.Values["index"])
}

func TestUpper(t *testing.T) {
	p := MustCompile(testSyntax, "csel <Xd>, <Xa>, <Xb>, <flag>")

	b, ok := p.Match("CSEL X1, X2, X3, NE")
	require.True(t, ok)
	assert.True(t, b.Upper)
	assert.Equal(t, "x1", b.Values["Xd"])
	assert.Equal(t, "ne", b.Values["flag"])

	out, err := p.Write(b)
	require.NoError(t, err)
	assert.Equal(t, "CSEL x1, x2, x3, NE", out)
}

func TestWriteErrors(t *testing.T) {
	p := MustCompile(testSyntax, "add <Xd>, <Xa>, <imm>")

	_, err := p.Write(Binding{Values: map[string]string{"Xd": "x1", "Xa": "x2"}})
	assert.Error(t, err)

	_, err = p.Write(Binding{Values: map[string]string{"Xd": "x1", "Xa": "x2,", "imm": "1"}})
	assert.Error(t, err)
}

func TestMalformed(t *testing.T) {
	for _, tmpl := range []string{
		"add <Xd>, <Xd>, <Xb>",
		"add <Qd>, <Xa>",
		"add <Xd, <Xa>",
		"add <>, <Xa>",
		"add <X>, <Xa>",
	} {
		_, err := Compile(testSyntax, tmpl)
		assert.Error(t, err, "%q", tmpl)
	}
}

func TestMemo(t *testing.T) {
	a := MustCompile(testSyntax, "sub <Xd>, <Xa>, <Xb>")
	n := CacheSize()

	b := MustCompile(testSyntax, "sub <Xd>, <Xa>, <Xb>")
	assert.True(t, a == b)
	assert.Equal(t, n, CacheSize())

	other := *testSyntax
	other.Name = "other"

	c := MustCompile(&other, "sub <Xd>, <Xa>, <Xb>")
	assert.False(t, a == c)
}
