package expr

import (
	"bytes"
	"context"
	"strings"

	"tlog.app/go/errors"
)

type (
	Const []byte

	// Ops matches the longest of the listed operators.
	Ops []string

	// Op is a parsed operator.
	Op string
)

func (p Const) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	if bytes.HasPrefix(b[st:], p) {
		return Const(b[st : st+len(p)]), st + len(p), nil
	}

	return nil, st, errors.New("%q expected", []byte(p))
}

func (p Ident) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	if st == len(b) {
		return nil, st, errors.New("Ident expected")
	}

	i = st

	c := b[i]

	switch {
	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '.':
		i++
	default:
		return nil, st, errors.New("Ident expected")
	}

	for i < len(b) {
		c := b[i]

		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.' {
			i++
			continue
		}

		break
	}

	return Ident(b[st:i]), i, nil
}

func (p Ops) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	best := ""

	for _, op := range p {
		if len(op) > len(best) && bytes.HasPrefix(b[st:], []byte(op)) {
			best = op
		}
	}

	if best == "" {
		return nil, st, errors.New("one of %v expected", strings.Join(p, " "))
	}

	return Op(best), st + len(best), nil
}
