package expr

import (
	"context"

	"tlog.app/go/errors"
)

type (
	LeftToRight struct {
		Op  Parser
		Arg Parser
	}

	Unary struct {
		Op  Parser
		Arg Parser
	}

	BinOper interface {
		BinOp(l, r Node) (Node, error)
	}

	UnaryExpr struct {
		Op Op
		X  Node
	}

	BinaryExpr struct {
		Op   Op
		L, R Node
	}
)

func (p LeftToRight) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	x, i, err = p.Arg.Parse(ctx, b, st)
	if err != nil {
		return nil, i, errors.Wrap(err, "first arg")
	}

	for i < len(b) {
		var op Node
		opst := i
		op, i, err = p.Op.Parse(ctx, b, i)
		if i == opst {
			err = nil
			break
		}
		if err != nil {
			return nil, i, errors.Wrap(err, "op")
		}

		c, ok := op.(BinOper)
		if !ok {
			return nil, i, errors.New("BinOper expected, got %T", op)
		}

		var r Node
		r, i, err = p.Arg.Parse(ctx, b, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "arg")
		}

		x, err = c.BinOp(x, r)
		if err != nil {
			return nil, i, errors.Wrap(err, "%T", c)
		}
	}

	return
}

func (p Unary) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	op, i, err := p.Op.Parse(ctx, b, st)
	if err != nil || i == st {
		return p.Arg.Parse(ctx, b, st)
	}

	x, i, err = p.Parse(ctx, b, i)
	if err != nil {
		return nil, i, errors.Wrap(err, "unary %v", op)
	}

	return UnaryExpr{Op: op.(Op), X: x}, i, nil
}

func (o Op) BinOp(l, r Node) (Node, error) {
	return BinaryExpr{Op: o, L: l, R: r}, nil
}
