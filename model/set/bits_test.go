package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	s := MakeBits(10)

	s.Set(3)
	s.Set(70)
	s.Set(129)

	assert.True(t, s.IsSet(70))
	assert.False(t, s.IsSet(71))
	assert.False(t, s.IsSet(1000))

	var got []int
	s.Range(func(i int) bool {
		got = append(got, i)
		return true
	})

	assert.Equal(t, []int{3, 70, 129}, got)

	got = got[:0]
	s.Range(func(i int) bool {
		got = append(got, i)
		return i < 70
	})

	assert.Equal(t, []int{3, 70}, got)
}

func TestBitsSubset(t *testing.T) {
	a := MakeBits(0)
	a.Set(1)
	a.Set(65)

	b := MakeBits(0)
	b.Set(1)
	b.Set(2)
	b.Set(65)

	assert.True(t, a.Subset(b))
	assert.False(t, b.Subset(a))

	// trailing zero words do not matter
	c := MakeBits(500)
	c.Set(1)
	c.Set(65)

	assert.True(t, a.Subset(c))
	assert.True(t, c.Subset(a))
}
