package inst

import (
	"strings"

	"tlog.app/go/tlog/tlwire"

	"github.com/slowlang/sloth/model/pattern"
	"github.com/slowlang/sloth/model/reg"
	"github.com/slowlang/sloth/model/src"
)

type (
	// Role is how an instruction uses an operand.
	Role int

	// Tag is a set of capabilities of a variant.
	Tag uint32

	// Mark is a set of idempotence flags callbacks put on instances they processed.
	Mark uint32

	// Variant is one concrete instruction form.
	Variant struct {
		Name    string
		Pattern string

		// Register placeholders of the template by role.
		In, Out, InOut []string

		// Fixed operands not present in the text, e.g. condition flags.
		ImplicitIn, ImplicitOut, ImplicitInOut []string

		Classes []string // abstract categories the variant is-a
		Tags    Tag

		Mem    *MemSpec
		AddImm *AddSpec

		Restrict     map[string][]string // placeholder -> allowed registers
		Combinations []Combination

		// Internal variants are never tried by Arch.Parse.
		// They are reached through callbacks only.
		Internal bool

		// Example is a statement the variant parses, used in tests and docs.
		Example string

		// Check validates a structurally matched instance.
		// ErrNoMatch rejects the instance, other errors are fatal.
		Check func(a *Arch, i *Inst) error

		ParsingCB Callback
		FusionCB  Callback

		pat   *pattern.Pattern
		types [NumRoles][]reg.Type
	}

	// MemSpec describes memory access of load and store variants.
	MemSpec struct {
		Store  bool
		Base   string   // placeholder of the address register
		Index  string   // register added to the base
		Offset string   // immediate added before the access
		Post   string   // immediate added to the base after the access
		Pre    bool     // Offset is written back to the base
		Block  bool     // base is advanced by the transfer size
		Data   []string // data register placeholders in memory order
		Size   int      // bytes per data register
		Span   int      // if set, a single access of Span bytes
	}

	// AddSpec marks pointer arithmetic: Dst = Src + Imm (or - Imm).
	AddSpec struct {
		Dst, Src, Imm string
		Neg           bool
	}

	// Combination restricts a group of operands to listed register tuples.
	Combination struct {
		Fields []string
		Tuples [][]string
	}

	// Inst is a parsed instruction.
	// Operands of each role are ordered as template placeholders,
	// then implicit operands, then hint operands.
	Inst struct {
		V *Variant

		Args     [NumRoles][]string
		Types    [NumRoles][]reg.Type
		Restrict [NumRoles][][]string
		Hints    [NumRoles]int

		Fields map[string]string // immediates, datatypes, lane indices, flags, barrel shifts
		Hash   map[string]bool
		Upper  bool

		// memory bookkeeping
		Addr      string
		PreIndex  string
		Increment string

		Source src.Line

		marks Mark
	}
)

const (
	In Role = iota
	Out
	InOut

	NumRoles
)

const (
	Load Tag = 1 << iota
	Store
	Arith
	Logic
	Shift
	Mul
	MulAcc
	Move
	Compare
	Vector
	Lane
	Crypto
	Pair
	Writeback
	Pseudo
	Branch
)

var roleNames = [NumRoles]string{"in", "out", "inout"}

func (r Role) String() string { return roleNames[r] }

func (t Tag) Has(x Tag) bool { return t&x == x }

// Fields returns template placeholders of the role.
func (v *Variant) Fields(r Role) []string {
	switch r {
	case In:
		return v.In
	case Out:
		return v.Out
	case InOut:
		return v.InOut
	default:
		panic(r)
	}
}

func (v *Variant) Implicit(r Role) []string {
	switch r {
	case In:
		return v.ImplicitIn
	case Out:
		return v.ImplicitOut
	case InOut:
		return v.ImplicitInOut
	default:
		panic(r)
	}
}

// Where returns role and operand index of a register placeholder.
func (v *Variant) Where(field string) (Role, int, bool) {
	for r := In; r < NumRoles; r++ {
		for j, f := range v.Fields(r) {
			if f == field {
				return r, j, true
			}
		}
	}

	return 0, 0, false
}

// Is reports whether the variant is the named leaf or belongs to the named class.
func (v *Variant) Is(class string) bool {
	if v.Name == class {
		return true
	}

	for _, c := range v.Classes {
		if c == class {
			return true
		}
	}

	return false
}

func (v *Variant) Pat() *pattern.Pattern { return v.pat }

func (v *Variant) String() string { return v.Name }

func (i *Inst) Is(class string) bool { return i.V.Is(class) }

func (i *Inst) Has(t Tag) bool { return i.V.Tags.Has(t) }

// Arg returns the register bound to a template placeholder.
func (i *Inst) Arg(field string) string {
	r, j, ok := i.V.Where(field)
	if !ok {
		return ""
	}

	return i.Args[r][j]
}

// SetArg rebinds a template placeholder.
func (i *Inst) SetArg(field, name string) {
	r, j, ok := i.V.Where(field)
	if !ok {
		panic(field)
	}

	i.Args[r][j] = name
}

func (i *Inst) Field(name string) string { return i.Fields[name] }

func (i *Inst) SetField(name, val string) {
	if i.Fields == nil {
		i.Fields = map[string]string{}
	}

	i.Fields[name] = val
}

func (i *Inst) Imm() string { return i.Fields["imm"] }

// Reads returns every register the instruction reads.
func (i *Inst) Reads() []string {
	r := append([]string{}, i.Args[In]...)
	return append(r, i.Args[InOut]...)
}

// Writes returns every register the instruction writes.
func (i *Inst) Writes() []string {
	r := append([]string{}, i.Args[Out]...)
	return append(r, i.Args[InOut]...)
}

func (i *Inst) Mark(m Mark) { i.marks |= m }

func (i *Inst) Marked(m Mark) bool { return i.marks&m == m }

func (i *Inst) Clone() *Inst {
	c := *i

	for r := In; r < NumRoles; r++ {
		c.Args[r] = append([]string(nil), i.Args[r]...)
		c.Types[r] = append([]reg.Type(nil), i.Types[r]...)
		c.Restrict[r] = append([][]string(nil), i.Restrict[r]...)
	}

	c.Fields = make(map[string]string, len(i.Fields))
	for k, v := range i.Fields {
		c.Fields[k] = v
	}

	c.Hash = make(map[string]bool, len(i.Hash))
	for k, v := range i.Hash {
		c.Hash[k] = v
	}

	c.Source.Tags = i.Source.Tags.Clone()

	return &c
}

func (i *Inst) String() string {
	var b strings.Builder

	b.WriteString(i.V.Name)
	b.WriteString("(")
	b.WriteString(strings.Join(i.Writes(), ", "))
	b.WriteString(" <- ")
	b.WriteString(strings.Join(i.Reads(), ", "))
	b.WriteString(")")

	return b.String()
}

func (i *Inst) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 4)

	b = e.AppendKeyValue(b, "variant", i.V.Name)
	b = e.AppendKeyValue(b, "in", i.Args[In])
	b = e.AppendKeyValue(b, "out", i.Args[Out])
	b = e.AppendKeyValue(b, "inout", i.Args[InOut])

	return b
}
