package pattern

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"tlog.app/go/errors"
)

type (
	// Syntax holds the architecture-specific sub-expressions templates are compiled with.
	// All expressions must only use non-capturing groups.
	Syntax struct {
		Name string

		Registers map[string]string // placeholder prefix -> raw register expression
		Symbol    string            // symbolic register name

		Imm       string
		ImmPrefix string // "#" on Arm, empty elsewhere
		Datatype  string
		Index     string
		Flag      string
		Barrel    string
	}

	Kind int

	Field struct {
		Name   string
		Kind   Kind
		Prefix string // register placeholders only
	}

	// Pattern is a compiled template. It is immutable and shared.
	Pattern struct {
		Syntax   *Syntax
		Template string
		Fields   []Field

		re    *regexp.Regexp
		segs  []seg
		index map[string]int

		mnemonic string
		exact    bool
	}

	seg struct {
		lit   string
		field int // -1 for literals
	}

	// Binding is the set of field values of one statement.
	Binding struct {
		Values   map[string]string
		Symbolic map[string]bool // register fields bound to non-architectural names
		Hash     map[string]bool // immediates written with ImmPrefix; missing means yes
		Upper    bool            // mnemonic was written in upper case
	}

	cacheKey struct {
		syntax, template string
	}
)

const (
	Register Kind = iota
	Imm
	Datatype
	Index
	Flag
	Barrel
)

var kindNames = map[string]Kind{
	"imm":    Imm,
	"dt":     Datatype,
	"index":  Index,
	"flag":   Flag,
	"barrel": Barrel,
}

var cache struct {
	sync.Mutex
	m map[cacheKey]*Pattern
}

const (
	defaultSymbol = `[A-Za-z_][A-Za-z0-9_]*`
	defaultImm    = `[-+~(]*[\w.]+(?:[\w.+\-*/%()<>~^&| ]*?[\w.)])?`
	defaultIndex  = `\d+`
)

// Compile returns the compiled pattern for the template.
// Patterns are memoized by syntax name and template text.
func Compile(syn *Syntax, template string) (*Pattern, error) {
	k := cacheKey{syntax: syn.Name, template: template}

	cache.Lock()
	defer cache.Unlock()

	if p, ok := cache.m[k]; ok {
		return p, nil
	}

	p, err := compile(syn, template)
	if err != nil {
		return nil, err
	}

	if cache.m == nil {
		cache.m = make(map[cacheKey]*Pattern)
	}

	cache.m[k] = p

	return p, nil
}

func MustCompile(syn *Syntax, template string) *Pattern {
	p, err := Compile(syn, template)
	if err != nil {
		panic(err)
	}

	return p
}

// CacheSize reports the number of memoized patterns.
func CacheSize() int {
	cache.Lock()
	defer cache.Unlock()

	return len(cache.m)
}

func compile(syn *Syntax, template string) (p *Pattern, err error) {
	p = &Pattern{
		Syntax:   syn,
		Template: template,
	}

	var re strings.Builder

	re.WriteString(`(?i)^\s*`)

	seen := map[string]bool{}
	prevWord := false

	for i := 0; i < len(template); {
		c := template[i]

		switch {
		case c == '<':
			end := strings.IndexByte(template[i:], '>')
			if end < 0 {
				return nil, errors.New("unterminated placeholder at %d", i)
			}

			name := template[i+1 : i+end]
			i += end + 1

			if name == "" || strings.IndexFunc(name, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }) >= 0 {
				return nil, errors.New("bad placeholder <%s>", name)
			}

			if seen[name] {
				return nil, errors.New("duplicate placeholder <%s>", name)
			}

			seen[name] = true

			f, err := classify(syn, name)
			if err != nil {
				return nil, err
			}

			p.segs = append(p.segs, seg{field: len(p.Fields)})
			p.Fields = append(p.Fields, f)

			re.WriteString(fieldExpr(syn, f))
			prevWord = true
		case c == ' ' || c == '\t':
			j := i
			for j < len(template) && (template[j] == ' ' || template[j] == '\t') {
				j++
			}

			p.appendLit(template[i:j])

			if prevWord && j < len(template) && isWord(template[j]) {
				re.WriteString(`\s+`)
			} else {
				re.WriteString(`\s*`)
			}

			i = j
		case strings.IndexByte(",[]{}()!:", c) >= 0:
			p.appendLit(template[i : i+1])
			re.WriteString(`\s*`)
			re.WriteString(regexp.QuoteMeta(template[i : i+1]))
			re.WriteString(`\s*`)

			i++
			prevWord = false
		default:
			p.appendLit(template[i : i+1])
			re.WriteString(regexp.QuoteMeta(template[i : i+1]))

			i++
			prevWord = isWord(c)
		}
	}

	re.WriteString(`\s*$`)

	p.re, err = regexp.Compile(re.String())
	if err != nil {
		return nil, errors.Wrap(err, "template %q", template)
	}

	p.index = map[string]int{}

	for i, n := range p.re.SubexpNames() {
		if n != "" {
			p.index[n] = i
		}
	}

	p.mnemonic, p.exact = mnemonic(template)

	return p, nil
}

func classify(syn *Syntax, name string) (Field, error) {
	base := strings.TrimRightFunc(name, unicode.IsDigit)

	if k, ok := kindNames[base]; ok {
		return Field{Name: name, Kind: k}, nil
	}

	best := ""

	for pref := range syn.Registers {
		if len(pref) <= len(best) || len(name) <= len(pref) || !strings.HasPrefix(name, pref) {
			continue
		}

		if r := rune(name[len(pref)]); !unicode.IsLower(r) && !unicode.IsDigit(r) {
			continue
		}

		best = pref
	}

	if best == "" {
		return Field{}, errors.New("unknown placeholder <%s>", name)
	}

	return Field{Name: name, Kind: Register, Prefix: best}, nil
}

func fieldExpr(syn *Syntax, f Field) string {
	or := func(x, def string) string {
		if x != "" {
			return x
		}

		return def
	}

	switch f.Kind {
	case Register:
		return `(?:(?P<r_` + f.Name + `>` + syn.Registers[f.Prefix] + `)|(?P<s_` + f.Name + `>` + or(syn.Symbol, defaultSymbol) + `))`
	case Imm:
		var b strings.Builder

		if syn.ImmPrefix != "" {
			b.WriteString(`(?P<h_` + f.Name + `>` + regexp.QuoteMeta(syn.ImmPrefix) + `?)\s*`)
		}

		b.WriteString(`(?P<v_` + f.Name + `>` + or(syn.Imm, defaultImm) + `)`)

		return b.String()
	case Datatype:
		return `(?P<v_` + f.Name + `>` + or(syn.Datatype, `\w+`) + `)`
	case Index:
		return `(?P<v_` + f.Name + `>` + or(syn.Index, defaultIndex) + `)`
	case Flag:
		return `(?P<v_` + f.Name + `>` + or(syn.Flag, `[a-z]{2}`) + `)`
	case Barrel:
		return `(?P<v_` + f.Name + `>` + or(syn.Barrel, `lsl|lsr|asr|ror`) + `)`
	default:
		panic(f.Kind)
	}
}

func (p *Pattern) appendLit(s string) {
	if l := len(p.segs); l != 0 && p.segs[l-1].field < 0 {
		p.segs[l-1].lit += s
		return
	}

	p.segs = append(p.segs, seg{lit: s, field: -1})
}

func mnemonic(template string) (string, bool) {
	end := strings.IndexAny(template, " \t")
	if end < 0 {
		end = len(template)
	}

	m := template[:end]

	if p := strings.IndexByte(m, '<'); p >= 0 {
		return strings.ToLower(m[:p]), false
	}

	return strings.ToLower(m), true
}

func isWord(c byte) bool {
	return c == '_' || c == '<' || c == '#' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Mnemonic returns the literal head of the template and whether it is the whole first word.
func (p *Pattern) Mnemonic() (string, bool) { return p.mnemonic, p.exact }

func (p *Pattern) Field(name string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Prefilter reports whether the first word of text can possibly match.
func (p *Pattern) Prefilter(text string) bool {
	w := firstWord(text)

	if p.exact {
		return strings.EqualFold(w, p.mnemonic)
	}

	return len(w) >= len(p.mnemonic) && strings.EqualFold(w[:len(p.mnemonic)], p.mnemonic)
}

// Match binds the template fields against the statement text.
func (p *Pattern) Match(text string) (b Binding, ok bool) {
	if !p.Prefilter(text) {
		return b, false
	}

	m := p.re.FindStringSubmatchIndex(text)
	if m == nil {
		return b, false
	}

	group := func(name string) (string, bool) {
		i, ok := p.index[name]
		if !ok || m[2*i] < 0 {
			return "", false
		}

		return text[m[2*i]:m[2*i+1]], true
	}

	b = Binding{
		Values:   make(map[string]string, len(p.Fields)),
		Symbolic: map[string]bool{},
		Hash:     map[string]bool{},
		Upper:    isUpper(firstWord(text)),
	}

	for _, f := range p.Fields {
		switch f.Kind {
		case Register:
			if v, ok := group("r_" + f.Name); ok {
				b.Values[f.Name] = strings.ToLower(v)
				break
			}

			v, _ := group("s_" + f.Name)
			b.Values[f.Name] = v
			b.Symbolic[f.Name] = true
		case Imm:
			v, _ := group("v_" + f.Name)
			b.Values[f.Name] = strings.TrimSpace(v)

			if p.Syntax.ImmPrefix != "" {
				h, _ := group("h_" + f.Name)
				b.Hash[f.Name] = h != ""
			}
		default:
			v, _ := group("v_" + f.Name)
			b.Values[f.Name] = strings.ToLower(v)
		}
	}

	return b, true
}

// Write substitutes field values into the template.
// The result is matched back and a mismatch is an error.
func (p *Pattern) Write(b Binding) (string, error) {
	var buf []byte

	for _, s := range p.segs {
		if s.field < 0 {
			if b.Upper {
				buf = append(buf, strings.ToUpper(s.lit)...)
			} else {
				buf = append(buf, s.lit...)
			}

			continue
		}

		f := p.Fields[s.field]

		v, ok := b.Values[f.Name]
		if !ok || v == "" {
			return "", errors.New("field <%s> is not bound", f.Name)
		}

		switch f.Kind {
		case Imm:
			if h, ok := b.Hash[f.Name]; p.Syntax.ImmPrefix != "" && (!ok || h) {
				buf = append(buf, p.Syntax.ImmPrefix...)
			}
		case Datatype, Flag, Barrel:
			if b.Upper {
				v = strings.ToUpper(v)
			}
		}

		buf = append(buf, v...)
	}

	out := string(buf)

	if _, ok := p.Match(out); !ok {
		return "", errors.New("%q does not match template %q", out, p.Template)
	}

	return out, nil
}

func (b Binding) Clone() Binding {
	c := Binding{Upper: b.Upper}

	c.Values = make(map[string]string, len(b.Values))
	for k, v := range b.Values {
		c.Values[k] = v
	}

	c.Symbolic = make(map[string]bool, len(b.Symbolic))
	for k, v := range b.Symbolic {
		c.Symbolic[k] = v
	}

	c.Hash = make(map[string]bool, len(b.Hash))
	for k, v := range b.Hash {
		c.Hash[k] = v
	}

	return c
}

func firstWord(text string) string {
	text = strings.TrimLeft(text, " \t")

	if end := strings.IndexAny(text, " \t"); end >= 0 {
		return text[:end]
	}

	return text
}

func isUpper(w string) bool {
	return w != "" && strings.ToUpper(w) == w && strings.ToLower(w) != w
}
