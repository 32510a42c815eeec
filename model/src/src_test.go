package src

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	l := ParseLine("\tadd x1, x2, x3   // acc @reads: buf, tmp @writes=out", "//")

	assert.Equal(t, "\t", l.Indent)
	assert.Equal(t, "add x1, x2, x3", l.Text)
	assert.Equal(t, "   ", l.Gap)
	assert.Equal(t, "// acc @reads: buf, tmp @writes=out", l.Comment)
	assert.Equal(t, []string{"buf", "tmp"}, l.Tags.Get("reads"))
	assert.Equal(t, []string{"out"}, l.Tags.Get("writes"))
	assert.True(t, l.IsStatement())

	assert.Equal(t, "\tadd x1, x2, x3   // acc @reads: buf, tmp @writes=out", l.String())
}

func TestRoundTrip(t *testing.T) {
	text := "loop:\n    ld a0, 8(a1)  # load\n\n    .p2align 2\n  mul a0, a0, a2\n"

	ls := Split(text, "#")
	if assert.Len(t, ls, 5) {
		assert.True(t, ls[0].IsLabel())
		assert.True(t, ls[1].IsStatement())
		assert.True(t, ls[2].IsEmpty())
		assert.True(t, ls[3].IsDirective())
		assert.Nil(t, ls[4].Tags)
	}

	assert.Equal(t, text, Join(ls))
}

func TestWithText(t *testing.T) {
	l := ParseLine("  ldr x1, [x0]  // first", "//")

	n := l.WithText("ldr x1, [x0, #8]")
	assert.Equal(t, "  ldr x1, [x0, #8]  // first", n.String())

	c := ParseLine("// only comment", "//")
	assert.Equal(t, "nop // only comment", c.WithText("nop").String())
	assert.Equal(t, "  ldr x1, [x0]", l.Bare().String())
}

func TestTagsClone(t *testing.T) {
	tg := ParseTags("@reads: a @reads: b")
	assert.Equal(t, []string{"a", "b"}, tg.Get("reads"))

	c := tg.Clone()
	c["reads"][0] = "z"
	assert.Equal(t, "a", tg["reads"][0])

	assert.Nil(t, Tags(nil).Clone())
	assert.False(t, tg.Has("writes"))
}
