package inst

import (
	"fmt"
	"regexp"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/pattern"
	"github.com/slowlang/sloth/model/reg"
	"github.com/slowlang/sloth/model/src"
)

type (
	// Arch is an instruction set: register file, syntax and ordered variants.
	Arch struct {
		Name     string
		Regs     *reg.File
		Syntax   *pattern.Syntax
		Comments []string

		// Prefixes maps template placeholder prefixes to register types.
		Prefixes map[string]reg.Type

		// Render writes a canonical register name the way the prefix wants it,
		// e.g. x3 as w3 for <Wd>. nil means canonical names are written as is.
		Render func(prefix, name string) string

		Variants []*Variant

		byName map[string]*Variant
	}
)

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewArch compiles every template and validates variant tables.
// Inconsistent tables panic: they are defects found at load time.
func NewArch(a *Arch) *Arch {
	a.byName = make(map[string]*Variant, len(a.Variants))

	for pref := range a.Syntax.Registers {
		if _, ok := a.Prefixes[pref]; !ok {
			panic(fmt.Sprintf("%v: register prefix %v has no type", a.Name, pref))
		}
	}

	for _, v := range a.Variants {
		if _, ok := a.byName[v.Name]; ok {
			panic(fmt.Sprintf("%v: duplicate variant %v", a.Name, v.Name))
		}

		a.byName[v.Name] = v

		if err := a.prepare(v); err != nil {
			panic(fmt.Sprintf("%v: variant %v: %v", a.Name, v.Name, err))
		}
	}

	return a
}

func (a *Arch) prepare(v *Variant) (err error) {
	v.pat, err = pattern.Compile(a.Syntax, v.Pattern)
	if err != nil {
		return errors.Wrap(err, "compile %q", v.Pattern)
	}

	bound := map[string]bool{}

	for r := In; r < NumRoles; r++ {
		v.types[r] = nil

		for _, name := range v.Fields(r) {
			f, ok := v.pat.Field(name)
			if !ok || f.Kind != pattern.Register {
				return errors.New("%v operand <%s> is not a register placeholder", r, name)
			}

			if bound[name] {
				return errors.New("operand <%s> has two roles", name)
			}

			bound[name] = true
			v.types[r] = append(v.types[r], a.Prefixes[f.Prefix])
		}

		for _, name := range v.Implicit(r) {
			t, ok := a.Regs.FindType(name)
			if !ok {
				return errors.New("implicit operand %v is not a register", name)
			}

			v.types[r] = append(v.types[r], t)
		}
	}

	for _, f := range v.pat.Fields {
		if f.Kind == pattern.Register && !bound[f.Name] {
			return errors.New("register placeholder <%s> has no role", f.Name)
		}
	}

	if m := v.Mem; m != nil {
		names := append([]string{m.Base, m.Index, m.Offset, m.Post}, m.Data...)

		for _, n := range names {
			if _, ok := v.pat.Field(n); n != "" && !ok {
				return errors.New("memory spec refers to missing <%s>", n)
			}
		}
	}

	for name := range v.Restrict {
		if !bound[name] {
			return errors.New("restriction on unknown operand <%s>", name)
		}
	}

	for _, c := range v.Combinations {
		for _, name := range c.Fields {
			if !bound[name] {
				return errors.New("combination on unknown operand <%s>", name)
			}
		}
	}

	return nil
}

// Variant returns a variant by name.
func (a *Arch) Variant(name string) *Variant {
	return a.byName[name]
}

// MustVariant panics if the variant is missing.
func (a *Arch) MustVariant(name string) *Variant {
	v := a.byName[name]
	if v == nil {
		panic(fmt.Sprintf("%v: no variant %v", a.Name, name))
	}

	return v
}

// Make builds an instance of variant v from a source line.
// A mismatch returns ErrNoMatch.
func (a *Arch) Make(v *Variant, line src.Line) (_ *Inst, err error) {
	b, ok := v.pat.Match(line.Text)
	if !ok {
		return nil, ErrNoMatch
	}

	i := &Inst{
		V:      v,
		Fields: map[string]string{},
		Hash:   b.Hash,
		Upper:  b.Upper,
		Source: line,
	}

	for r := In; r < NumRoles; r++ {
		for j, name := range v.Fields(r) {
			f, _ := v.pat.Field(name)

			val, err := a.bind(f, b.Values[name], b.Symbolic[name])
			if err != nil {
				return nil, err
			}

			if allowed := v.Restrict[name]; allowed != nil && !b.Symbolic[name] && !contains(allowed, val) {
				return nil, errors.Wrap(ErrNoMatch, "%v not allowed for <%s>", val, name)
			}

			i.Args[r] = append(i.Args[r], val)
			i.Types[r] = append(i.Types[r], v.types[r][j])
			i.Restrict[r] = append(i.Restrict[r], v.Restrict[name])
		}

		for j, name := range v.Implicit(r) {
			i.Args[r] = append(i.Args[r], name)
			i.Types[r] = append(i.Types[r], v.types[r][len(v.Fields(r))+j])
			i.Restrict[r] = append(i.Restrict[r], nil)
		}
	}

	for _, f := range v.pat.Fields {
		if f.Kind == pattern.Register {
			continue
		}

		if f.Kind == pattern.Imm {
			if err = a.immediate(f.Name, b.Values[f.Name], b.Hash); err != nil {
				return nil, err
			}
		}

		i.Fields[f.Name] = b.Values[f.Name]
	}

	if err = a.combinations(i); err != nil {
		return nil, err
	}

	if v.Mem != nil {
		a.memory(i)
	}

	if v.Check != nil {
		switch err = v.Check(a, i); {
		case err == nil:
		case errors.Is(err, ErrNoMatch), IsFatal(err):
			return nil, err
		default:
			return nil, WrapFatal(err, "%v: check", v.Name)
		}
	}

	if err = a.addHints(i, line.Tags); err != nil {
		return nil, err
	}

	if err = i.checkArity(); err != nil {
		return nil, err
	}

	return i, nil
}

func (a *Arch) bind(f pattern.Field, val string, sym bool) (string, error) {
	want := a.Prefixes[f.Prefix]

	t, known := a.Regs.FindType(val)

	switch {
	case known && sym:
		return "", errors.Wrap(ErrNoMatch, "%v is not a <%s> register", val, f.Name)
	case known && t != want:
		return "", errors.Wrap(ErrNoMatch, "%v is %v, <%s> wants %v", val, t, f.Name, want)
	case known:
		return a.Regs.Canonical(val), nil
	case !sym:
		return "", Fatalf("%v: register %v of <%s> is not in the register file", a.Name, val, f.Name)
	}

	return val, nil
}

// immediate rejects registers bound to an immediate placeholder.
// With an immediate prefix in the syntax a bare identifier is a symbolic register.
func (a *Arch) immediate(name, val string, hash map[string]bool) error {
	if _, known := a.Regs.FindType(strings.ToLower(val)); known {
		return errors.Wrap(ErrNoMatch, "<%s>: %v is a register", name, val)
	}

	if a.Syntax.ImmPrefix != "" && !hash[name] && identRE.MatchString(val) {
		return errors.Wrap(ErrNoMatch, "<%s>: %v is a symbolic register", name, val)
	}

	return nil
}

func (a *Arch) combinations(i *Inst) error {
outer:
	for _, c := range i.V.Combinations {
		vals := make([]string, len(c.Fields))

		for k, f := range c.Fields {
			vals[k] = i.Arg(f)

			if _, known := a.Regs.FindType(vals[k]); !known {
				continue outer // symbolic operands are left to the allocator
			}
		}

		for _, t := range c.Tuples {
			if equal(t, vals) {
				continue outer
			}
		}

		return errors.Wrap(ErrNoMatch, "registers %v are not an allowed combination", vals)
	}

	return nil
}

func (a *Arch) memory(i *Inst) {
	m := i.V.Mem

	i.Addr = i.Arg(m.Base)

	if m.Offset != "" {
		i.PreIndex = i.Fields[m.Offset]
	}

	switch {
	case m.Post != "":
		i.Increment = i.Fields[m.Post]
	case m.Pre:
		i.Increment = i.PreIndex
	case m.Block:
		i.Increment = fmt.Sprintf("%d", m.transfer())
	}
}

func (m *MemSpec) transfer() int {
	if m.Span != 0 {
		return m.Span
	}

	return m.Size * len(m.Data)
}

func (i *Inst) checkArity() error {
	v := i.V

	for r := In; r < NumRoles; r++ {
		exp := len(v.Fields(r)) + len(v.Implicit(r)) + i.Hints[r]

		if len(i.Args[r]) != exp || len(i.Types[r]) != exp || len(i.Restrict[r]) != exp {
			return Fatalf("%v: %v operands: have %d args %d types, declared %d", v.Name, r, len(i.Args[r]), len(i.Types[r]), exp)
		}
	}

	return nil
}

// Parse tries every variant in order and returns the first that matches.
func (a *Arch) Parse(line src.Line) (*Inst, error) {
	var attempts []Attempt

	for _, v := range a.Variants {
		if v.Internal {
			continue
		}

		i, err := a.Make(v, line)
		if err == nil {
			return i, nil
		}

		if IsFatal(err) {
			return nil, err
		}

		attempts = append(attempts, Attempt{Variant: v.Name, Err: err})
	}

	if tlog.If("parse") {
		tlog.Printw("no variant matches", "arch", a.Name, "line", line.Text, "tried", len(attempts))
	}

	return nil, &NoMatchError{Line: line.Text, Attempts: attempts}
}

// ParseText parses a single statement with an optional comment.
func (a *Arch) ParseText(text string) (*Inst, error) {
	return a.Parse(src.ParseLine(text, a.Comments...))
}

// MakeText builds an instance of the named variant from text.
func (a *Arch) MakeText(variant, text string) (*Inst, error) {
	v := a.Variant(variant)
	if v == nil {
		return nil, Fatalf("%v: no variant %v", a.Name, variant)
	}

	return a.Make(v, src.ParseLine(text, a.Comments...))
}

// Write serializes the instruction back to statement text.
// Case is normalized to the case of the mnemonic: literals, registers,
// datatypes and flags are written upper case after an upper case mnemonic
// and lower case otherwise. Immediates and symbolic names are written as given.
func (a *Arch) Write(i *Inst) (string, error) {
	v := i.V

	b := pattern.Binding{
		Values: make(map[string]string, len(i.Fields)+4),
		Hash:   i.Hash,
		Upper:  i.Upper,
	}

	for k, val := range i.Fields {
		b.Values[k] = val
	}

	if m := v.Mem; m != nil {
		if m.Offset != "" {
			b.Values[m.Offset] = i.PreIndex
		}

		if m.Post != "" {
			b.Values[m.Post] = i.Increment
		}
	}

	for r := In; r < NumRoles; r++ {
		if len(i.Args[r]) < len(v.Fields(r)) {
			return "", Fatalf("%v: %v operands missing", v.Name, r)
		}

		for j, name := range v.Fields(r) {
			f, _ := v.pat.Field(name)
			b.Values[name] = a.render(f.Prefix, i.Args[r][j], i.Upper)
		}
	}

	out, err := v.pat.Write(b)
	if err != nil {
		return "", WrapFatal(err, "%v: write fields back", v.Name)
	}

	return out, nil
}

// WriteLine serializes the instruction keeping indentation and comment of its source line.
func (a *Arch) WriteLine(i *Inst) (src.Line, error) {
	text, err := a.Write(i)
	if err != nil {
		return src.Line{}, err
	}

	return i.Source.WithText(text), nil
}

func (a *Arch) render(prefix, name string, upper bool) string {
	t, known := a.Regs.FindType(name)
	if !known || t == reg.Hint {
		return name
	}

	if a.Render != nil {
		name = a.Render(prefix, name)
	}

	if upper {
		name = strings.ToUpper(name)
	}

	return name
}

// Convert reclassifies an instance as another variant with the same placeholders.
func (a *Arch) Convert(i *Inst, to *Variant) (*Inst, error) {
	c := i.Clone()
	c.Sync()
	c.V = to

	for k := range c.Fields {
		if f, ok := to.pat.Field(k); !ok || f.Kind == pattern.Register {
			delete(c.Fields, k)
			delete(c.Hash, k)
		}
	}

	vals := map[string]string{}

	for r := In; r < NumRoles; r++ {
		for j, name := range i.V.Fields(r) {
			vals[name] = i.Args[r][j]
		}
	}

	for r := In; r < NumRoles; r++ {
		hints := i.Args[r][len(i.Args[r])-i.Hints[r]:]

		c.Args[r] = nil
		c.Types[r] = nil
		c.Restrict[r] = nil

		for j, name := range to.Fields(r) {
			val, ok := vals[name]
			if !ok {
				return nil, Fatalf("convert %v to %v: no operand <%s>", i.V.Name, to.Name, name)
			}

			c.Args[r] = append(c.Args[r], val)
			c.Types[r] = append(c.Types[r], to.types[r][j])
			c.Restrict[r] = append(c.Restrict[r], to.Restrict[name])
		}

		for j, name := range to.Implicit(r) {
			c.Args[r] = append(c.Args[r], name)
			c.Types[r] = append(c.Types[r], to.types[r][len(to.Fields(r))+j])
			c.Restrict[r] = append(c.Restrict[r], nil)
		}

		for _, h := range hints {
			c.Args[r] = append(c.Args[r], h)
			c.Types[r] = append(c.Types[r], reg.Hint)
			c.Restrict[r] = append(c.Restrict[r], nil)
		}
	}

	c.Addr, c.PreIndex, c.Increment = "", "", ""

	if to.Mem != nil {
		a.memory(c)
	}

	if err := c.checkArity(); err != nil {
		return nil, err
	}

	return c, nil
}

// Rename applies a register assignment. Operands of types
// that do not take part in renaming are left untouched.
func (a *Arch) Rename(i *Inst, m map[string]string) *Inst {
	c := i.Clone()

	for r := In; r < NumRoles; r++ {
		for j, name := range c.Args[r] {
			if !c.Types[r][j].Renamed() {
				continue
			}

			if to, ok := m[name]; ok {
				c.Args[r][j] = to
			}
		}
	}

	if c.V.Mem != nil {
		c.Addr = c.Arg(c.V.Mem.Base)
	}

	return c
}

func contains(l []string, s string) bool {
	for _, x := range l {
		if x == s {
			return true
		}
	}

	return false
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
