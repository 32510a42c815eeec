package set

import (
	"math/bits"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Bits is a growable bitset of small non-negative integers.
	Bits struct {
		b  []uint64
		b0 [1]uint64
	}
)

func MakeBits(Len int) Bits {
	s := Bits{}
	s.b = s.b0[:]

	Len = (Len + 63) / 64

	if Len > len(s.b) {
		s.b = make([]uint64, Len)
	}

	return s
}

func (s *Bits) Set(i int) {
	i, j := s.ij(i)

	s.grow(i)

	s.b[i] |= 1 << j
}

func (s *Bits) IsSet(i int) bool {
	i, j := s.ij(i)

	if i >= len(s.b) {
		return false
	}

	return (s.b[i] & (1 << j)) != 0
}

// Subset reports whether every element of s is in x.
func (s *Bits) Subset(x Bits) bool {
	for i, w := range s.b {
		var o uint64
		if i < len(x.b) {
			o = x.b[i]
		}

		if w&^o != 0 {
			return false
		}
	}

	return true
}

func (s *Bits) Range(f func(i int) bool) {
	for i, x := range s.b {
		for x != 0 {
			j := bits.TrailingZeros64(x)
			x &^= 1 << j

			if !f(i*64 + j) {
				return
			}
		}
	}
}

func (s Bits) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	if s.b == nil {
		return e.AppendNil(b)
	}

	b = e.AppendTag(b, tlwire.Array, -1)

	s.Range(func(i int) bool {
		b = e.AppendInt(b, i)

		return true
	})

	b = e.AppendBreak(b)

	return b
}

func (s *Bits) ij(pos int) (i int, j int) {
	return pos / 64, pos % 64
}

func (s *Bits) grow(i int) {
	for i >= len(s.b) {
		s.b = append(s.b, 0)
	}
}
