package expr

import (
	"context"
	"strconv"

	"tlog.app/go/errors"
)

type (
	Int struct{}

	Ident []byte

	Lit int64
)

func (p Int) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	i = st
	digit := isDec

	if i+1 < len(b) && b[i] == '0' {
		switch b[i+1] {
		case 'x', 'X':
			digit = isHex
			i += 2
		case 'o', 'O', 'b', 'B':
			i += 2
		}
	}

	dst := i

	for i < len(b) && digit(b[i]) {
		i++
	}

	if i == dst {
		return nil, st, errors.New("Int expected")
	}

	v, err := strconv.ParseInt(string(b[st:i]), 0, 64)
	if err != nil {
		u, uerr := strconv.ParseUint(string(b[st:i]), 0, 64)
		if uerr != nil {
			return nil, st, errors.Wrap(err, "bad int")
		}

		v = int64(u)
	}

	return Lit(v), i, nil
}

func isDec(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
