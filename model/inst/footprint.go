package inst

import (
	"fmt"
	"sort"

	"tlog.app/go/errors"

	"github.com/slowlang/sloth/model/expr"
	"github.com/slowlang/sloth/model/set"
)

type (
	// Access is one memory access relative to the value a base register
	// had at the start of the sequence.
	Access struct {
		Store  bool
		Base   string
		Offset int64
		Size   int
		Reg    string
	}

	// Trace is the memory behavior of an instruction sequence:
	// what it touches and where pointers end up.
	Trace struct {
		Accesses []Access
		Pointers map[string]string // register -> "base+offset" for moved pointers
	}

	ptr struct {
		base string
		off  int64
	}

	area struct {
		base  string
		store bool
	}
)

// Footprint simulates loads, stores and pointer arithmetic of a sequence.
// Two sequences with equal traces touch the same memory and leave
// pointers in the same state.
func (a *Arch) Footprint(seq []*Inst, env expr.Env) (t Trace, err error) {
	state := map[string]ptr{}

	get := func(r string) ptr {
		if p, ok := state[r]; ok {
			return p
		}

		return ptr{base: r}
	}

	imm := func(i *Inst, s string) (int64, error) {
		if s == "" {
			return 0, nil
		}

		v, err := expr.Value(s, env)
		if err != nil {
			return 0, errors.Wrap(err, "%v: immediate %q", i.V.Name, s)
		}

		return v, nil
	}

	for _, i := range seq {
		var defined []string

		switch {
		case i.V.Mem != nil:
			m := i.V.Mem

			p := get(i.Addr)
			if p.base == "" {
				return t, errors.New("%v: base %v is not a pointer", i.V.Name, i.Addr)
			}

			pre, err := imm(i, i.PreIndex)
			if err != nil {
				return t, err
			}

			base, off := p.base, p.off+pre

			if m.Index != "" {
				x := get(i.Arg(m.Index))
				if x.base == "" {
					return t, errors.New("%v: index %v is not known", i.V.Name, i.Arg(m.Index))
				}

				base, off = base+"+"+x.base, off+x.off
			}

			if m.Span != 0 {
				t.Accesses = append(t.Accesses, Access{Store: m.Store, Base: base, Offset: off, Size: m.Span})
			} else {
				for k, d := range m.Data {
					t.Accesses = append(t.Accesses, Access{
						Store:  m.Store,
						Base:   base,
						Offset: off + int64(k*m.Size),
						Size:   m.Size,
						Reg:    i.Arg(d),
					})
				}
			}

			if i.Increment != "" {
				inc, err := imm(i, i.Increment)
				if err != nil {
					return t, err
				}

				state[i.Addr] = ptr{base: p.base, off: p.off + inc}
			}

			if !m.Store {
				for _, d := range m.Data {
					defined = append(defined, i.Arg(d))
				}
			}
		case i.V.AddImm != nil:
			s := i.V.AddImm

			d, err := imm(i, i.Field(s.Imm))
			if err != nil {
				return t, err
			}

			if s.Neg {
				d = -d
			}

			p := get(i.Arg(s.Src))
			state[i.Arg(s.Dst)] = ptr{base: p.base, off: p.off + d}

			continue
		default:
			defined = i.Writes()
		}

		for _, w := range defined {
			state[w] = ptr{}
		}
	}

	sort.Slice(t.Accesses, func(x, y int) bool {
		l, r := t.Accesses[x], t.Accesses[y]

		if l.Base != r.Base {
			return l.Base < r.Base
		}

		if l.Offset != r.Offset {
			return l.Offset < r.Offset
		}

		return !l.Store && r.Store
	})

	t.Pointers = map[string]string{}

	for r, p := range state {
		if p.base == "" || p.base == r && p.off == 0 {
			continue
		}

		t.Pointers[r] = fmt.Sprintf("%s%+d", p.base, p.off)
	}

	return t, nil
}

// Bytes returns the bytes accessed through base, numbered from the lowest offset.
func (t Trace) Bytes(base string, store bool) (from int64, b set.Bits) {
	from, ok := t.lowest(area{base: base, store: store})
	if !ok {
		return 0, set.MakeBits(0)
	}

	return from, t.bytes(area{base: base, store: store}, from)
}

// Same reports whether two traces read and write the same bytes
// and leave pointers in the same state.
// Unlike comparing traces as values it ignores how accesses are split.
func (t Trace) Same(x Trace) bool {
	if len(t.Pointers) != len(x.Pointers) {
		return false
	}

	for r, p := range t.Pointers {
		if x.Pointers[r] != p {
			return false
		}
	}

	areas := map[area]int64{}

	for _, tr := range []Trace{t, x} {
		for _, acc := range tr.Accesses {
			k := area{base: acc.Base, store: acc.Store}

			if from, ok := areas[k]; !ok || acc.Offset < from {
				areas[k] = acc.Offset
			}
		}
	}

	for k, from := range areas {
		l, r := t.bytes(k, from), x.bytes(k, from)

		if !l.Subset(r) || !r.Subset(l) {
			return false
		}
	}

	return true
}

func (t Trace) lowest(k area) (from int64, ok bool) {
	for _, acc := range t.Accesses {
		if acc.Base != k.base || acc.Store != k.store {
			continue
		}

		if !ok || acc.Offset < from {
			from, ok = acc.Offset, true
		}
	}

	return from, ok
}

func (t Trace) bytes(k area, from int64) set.Bits {
	b := set.MakeBits(0)

	for _, acc := range t.Accesses {
		if acc.Base != k.base || acc.Store != k.store {
			continue
		}

		for j := 0; j < acc.Size; j++ {
			b.Set(int(acc.Offset-from) + j)
		}
	}

	return b
}
