package expr

import (
	"fmt"
	"strconv"
	"strings"

	"tlog.app/go/errors"
)

// Env resolves symbols. nil Env resolves nothing.
type Env func(name string) (int64, bool)

var ErrUnresolved = errors.New("unresolved symbol")

func Eval(x Node, env Env) (v int64, err error) {
	switch x := x.(type) {
	case Lit:
		return int64(x), nil
	case Ident:
		if env != nil {
			if v, ok := env(string(x)); ok {
				return v, nil
			}
		}

		return 0, errors.Wrap(ErrUnresolved, "%s", x)
	case UnaryExpr:
		v, err = Eval(x.X, env)
		if err != nil {
			return 0, err
		}

		switch x.Op {
		case "-":
			return -v, nil
		case "~":
			return ^v, nil
		case "+":
			return v, nil
		}
	case BinaryExpr:
		l, err := Eval(x.L, env)
		if err != nil {
			return 0, err
		}

		r, err := Eval(x.R, env)
		if err != nil {
			return 0, err
		}

		switch x.Op {
		case "+":
			return l + r, nil
		case "-":
			return l - r, nil
		case "*":
			return l * r, nil
		case "/", "%":
			if r == 0 {
				return 0, errors.New("division by zero")
			}

			if x.Op == "/" {
				return l / r, nil
			}

			return l % r, nil
		case "<<":
			return l << uint64(r), nil
		case ">>":
			return l >> uint64(r), nil
		case "&":
			return l & r, nil
		case "^":
			return l ^ r, nil
		case "|":
			return l | r, nil
		}
	}

	return 0, NewTypeExpectedError(x)
}

// Value parses and evaluates an immediate. A leading '#' is ignored.
func Value(text string, env Env) (int64, error) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "#")

	x, err := Parse(text)
	if err != nil {
		return 0, err
	}

	return Eval(x, env)
}

// Add returns an immediate equal to text+d. Constant expressions are folded,
// symbolic ones are extended textually. Empty text stands for zero.
func Add(text string, d int64) string {
	text = strings.TrimSpace(text)

	if text == "" {
		return strconv.FormatInt(d, 10)
	}

	if v, err := Value(text, nil); err == nil {
		return strconv.FormatInt(v+d, 10)
	}

	switch {
	case d == 0:
		return text
	case d < 0:
		return fmt.Sprintf("(%s)-%d", text, -d)
	default:
		return fmt.Sprintf("(%s)+%d", text, d)
	}
}

// Format prints an expression back in fully parenthesized form.
func Format(x Node) string {
	switch x := x.(type) {
	case Lit:
		return strconv.FormatInt(int64(x), 10)
	case Ident:
		return string(x)
	case UnaryExpr:
		return string(x.Op) + Format(x.X)
	case BinaryExpr:
		return "(" + Format(x.L) + string(x.Op) + Format(x.R) + ")"
	default:
		panic(x)
	}
}
