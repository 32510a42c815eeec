package reg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

type (
	// Type is a register class. Every concrete register name has exactly one.
	Type int

	// Filter narrows List results.
	Filter uint8

	// Class describes one register class of an architecture.
	// Normal registers are handed to the allocator by default,
	// Extra ones exist but are only used when asked for explicitly.
	Class struct {
		Type    Type
		Normal  []string
		Extra   []string
		Aliases map[string]string // alias -> canonical name
		Prefix  string            // open-ended class, any name with the prefix belongs to it
	}

	// File is the register file of an architecture.
	File struct {
		classes  [NumTypes]*Class
		byName   map[string]Type
		canon    map[string]string
		reserved []string

		ids   map[string]int
		names []string
	}
)

const (
	GPR Type = iota
	Vector
	StackGPR
	StackVector
	Flags
	Hint
	Acc
	Special

	NumTypes
)

const (
	OnlyNormal Filter = 1 << iota
	OnlyExtra
	WithAliases
)

var typeNames = [NumTypes]string{
	GPR:         "gpr",
	Vector:      "vector",
	StackGPR:    "stack_gpr",
	StackVector: "stack_vector",
	Flags:       "flags",
	Hint:        "hint",
	Acc:         "acc",
	Special:     "special",
}

// NewFile builds a register file. Overlapping names across classes
// are a table defect and panic.
func NewFile(reserved []string, classes ...Class) *File {
	f := &File{
		byName: map[string]Type{},
		canon:  map[string]string{},
		ids:    map[string]int{},
	}

	for i := range classes {
		c := &classes[i]

		if f.classes[c.Type] != nil {
			panic(fmt.Sprintf("register class %v defined twice", c.Type))
		}

		f.classes[c.Type] = c

		add := func(name string) {
			if t, ok := f.byName[name]; ok {
				panic(fmt.Sprintf("register %v is both %v and %v", name, t, c.Type))
			}

			f.byName[name] = c.Type
		}

		for _, n := range c.Normal {
			add(n)
			f.addID(n)
		}

		for _, n := range c.Extra {
			add(n)
			f.addID(n)
		}

		for a, n := range c.Aliases {
			if f.byName[n] != c.Type {
				panic(fmt.Sprintf("alias %v of unknown %v register %v", a, c.Type, n))
			}

			add(a)
			f.canon[a] = n
		}
	}

	for _, r := range reserved {
		if _, ok := f.FindType(r); !ok {
			panic(fmt.Sprintf("reserved register %v is unknown", r))
		}
	}

	f.reserved = reserved

	return f
}

func (f *File) addID(name string) {
	f.ids[name] = len(f.names)
	f.names = append(f.names, name)
}

// Types returns register classes the architecture has.
func (f *File) Types() (r []Type) {
	for t, c := range f.classes {
		if c != nil {
			r = append(r, Type(t))
		}
	}

	return r
}

func (f *File) Has(t Type) bool {
	return t >= 0 && t < NumTypes && f.classes[t] != nil
}

// List returns register names of the given type in table order.
func (f *File) List(t Type, flt Filter) []string {
	if !f.Has(t) {
		return nil
	}

	c := f.classes[t]

	var r []string

	if flt&OnlyExtra == 0 {
		r = append(r, c.Normal...)
	}

	if flt&OnlyNormal == 0 {
		r = append(r, c.Extra...)
	}

	if flt&WithAliases != 0 {
		as := lo.Keys(c.Aliases)
		sort.Strings(as)

		r = append(r, as...)
	}

	return r
}

// Allocatable returns normal registers of type t not reserved by default
// nor in the extra reserved list.
func (f *File) Allocatable(t Type, reserved ...string) []string {
	l := f.List(t, OnlyNormal)
	l = lo.Without(l, f.reserved...)

	return lo.Without(l, reserved...)
}

// FindType returns the class of a register name.
// Aliases resolve to the class of their canonical register.
func (f *File) FindType(name string) (Type, bool) {
	if t, ok := f.byName[name]; ok {
		return t, true
	}

	for t, c := range f.classes {
		if c != nil && c.Prefix != "" && strings.HasPrefix(name, c.Prefix) && len(name) > len(c.Prefix) {
			return Type(t), true
		}
	}

	return 0, false
}

// Canonical resolves an alias to its canonical register name.
func (f *File) Canonical(name string) string {
	if c, ok := f.canon[name]; ok {
		return c
	}

	return name
}

func (f *File) IsRenamed(t Type) bool { return t.Renamed() }

// DefaultReserved returns registers the allocator must not touch.
func (f *File) DefaultReserved() []string { return f.reserved }

// EmulatorID maps a register to the numbering used by the self-test harness.
func (f *File) EmulatorID(name string) (int, bool) {
	id, ok := f.ids[f.Canonical(name)]
	return id, ok
}

func (f *File) NameOf(id int) (string, bool) {
	if id < 0 || id >= len(f.names) {
		return "", false
	}

	return f.names[id], true
}

// Renamed reports whether registers of this type take part in renaming.
func (t Type) Renamed() bool {
	switch t {
	case GPR, Vector, StackGPR, StackVector:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	if t >= 0 && t < NumTypes {
		return typeNames[t]
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType is the inverse of String.
func ParseType(s string) (Type, bool) {
	for t, n := range typeNames {
		if n == s {
			return Type(t), true
		}
	}

	return 0, false
}

// Seq returns prefix+from .. prefix+to inclusive.
func Seq(prefix string, from, to int) []string {
	return lo.Map(lo.RangeFrom(from, to-from+1), func(i, _ int) string {
		return fmt.Sprintf("%s%d", prefix, i)
	})
}
