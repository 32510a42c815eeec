package expr

import (
	"context"
	"fmt"
	"reflect"

	"tlog.app/go/errors"
)

type (
	Parser interface {
		Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error)
	}

	// Node is Int, Ident, Unary or Binary.
	Node interface{}

	PartialReadError struct {
		End int
	}

	TypeExpectedError struct {
		T interface{}
	}
)

// Grammar parses C-like integer expressions used as immediates:
// literals in any base, symbols, unary - ~ +, and binary
// * / % + - << >> & ^ | with the usual precedence.
var Grammar = build()

func build() Parser {
	or := &LeftToRight{}

	prim := AnyOf{
		SpacedBy(Int{}, ' ', '\t'),
		SpacedBy(Ident{}, ' ', '\t'),
		Context{
			Pre:  SpacedBy(Const("("), ' ', '\t'),
			Of:   or,
			Post: SpacedBy(Const(")"), ' ', '\t'),
		},
	}

	un := Unary{Op: SpacedBy(Ops{"-", "~", "+"}, ' ', '\t'), Arg: prim}

	level := func(arg Parser, ops ...string) Parser {
		return LeftToRight{Op: SpacedBy(Ops(ops), ' ', '\t'), Arg: arg}
	}

	mul := level(un, "*", "/", "%")
	add := level(mul, "+", "-")
	shift := level(add, "<<", ">>")
	and := level(shift, "&")
	xor := level(and, "^")

	*or = LeftToRight{Op: SpacedBy(Ops{"|"}, ' ', '\t'), Arg: xor}

	return or
}

// Parse parses the whole text as an expression.
func Parse(text string) (x Node, err error) {
	b := []byte(text)

	x, i, err := Grammar.Parse(context.Background(), b, 0)
	if err != nil {
		return nil, errors.Wrap(err, "parse %q", text)
	}

	i = SpaceTab.Skip(b, i)

	if i != len(b) {
		return x, PartialReadError{End: i}
	}

	return x, nil
}

func NewTypeExpectedError(t interface{}) TypeExpectedError {
	return TypeExpectedError{
		T: t,
	}
}

func (e TypeExpectedError) Error() string {
	return fmt.Sprintf("%v expected", reflect.TypeOf(e.T))
}

func (e PartialReadError) Error() string {
	return fmt.Sprintf("partial read: trailing text at %d", e.End)
}
