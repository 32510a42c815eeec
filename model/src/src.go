package src

import (
	"regexp"
	"strings"
)

type (
	// Line is one source statement. Indent+Text+Gap+Comment reproduces
	// the original text byte for byte.
	Line struct {
		Indent  string
		Text    string
		Gap     string
		Comment string // including the marker

		Tags Tags
	}

	// Tags are key: value lists attached to a line through its comment,
	// e.g. "// @reads: buf, tmp @writes=out".
	Tags map[string][]string
)

var tagRE = regexp.MustCompile(`@([A-Za-z_][\w-]*)\s*[:=]\s*([^@]*)`)

// ParseLine splits a line into indentation, statement text and comment.
// markers are comment openers such as "//" or "#".
func ParseLine(s string, markers ...string) (l Line) {
	s = strings.TrimRight(s, "\r\n")

	body := strings.TrimLeft(s, " \t")
	l.Indent = s[:len(s)-len(body)]

	cut := len(body)

	for _, m := range markers {
		if m == "" {
			continue
		}

		if p := strings.Index(body, m); p >= 0 && p < cut {
			cut = p
		}
	}

	l.Comment = body[cut:]
	text := body[:cut]

	l.Text = strings.TrimRight(text, " \t")
	l.Gap = text[len(l.Text):]

	l.Tags = ParseTags(l.Comment)

	return l
}

// Split parses multi-line text.
func Split(text string, markers ...string) []Line {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	ls := strings.Split(text, "\n")

	r := make([]Line, len(ls))

	for i, s := range ls {
		r[i] = ParseLine(s, markers...)
	}

	return r
}

// Join is the inverse of Split.
func Join(ls []Line) string {
	var b strings.Builder

	for _, l := range ls {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}

	return b.String()
}

func ParseTags(comment string) Tags {
	ms := tagRE.FindAllStringSubmatch(comment, -1)
	if len(ms) == 0 {
		return nil
	}

	t := Tags{}

	for _, m := range ms {
		vals := strings.FieldsFunc(m[2], func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})

		t[m[1]] = append(t[m[1]], vals...)
	}

	return t
}

func (l Line) String() string {
	return l.Indent + l.Text + l.Gap + l.Comment
}

// WithText returns a copy of the line carrying another statement.
func (l Line) WithText(text string) Line {
	l.Text = text

	if l.Gap == "" && l.Comment != "" && text != "" {
		l.Gap = " "
	}

	return l
}

// Bare returns the line without its comment and tags.
func (l Line) Bare() Line {
	return Line{Indent: l.Indent, Text: l.Text}
}

func (l Line) IsEmpty() bool { return l.Text == "" }

func (l Line) IsLabel() bool {
	return strings.HasSuffix(l.Text, ":") && !strings.ContainsAny(l.Text, " \t,")
}

func (l Line) IsDirective() bool { return strings.HasPrefix(l.Text, ".") }

// IsStatement reports whether the line holds an instruction.
func (l Line) IsStatement() bool {
	return !l.IsEmpty() && !l.IsLabel() && !l.IsDirective()
}

func (t Tags) Get(k string) []string { return t[k] }

func (t Tags) Has(k string) bool {
	_, ok := t[k]
	return ok
}

func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}

	c := make(Tags, len(t))

	for k, v := range t {
		c[k] = append([]string(nil), v...)
	}

	return c
}
