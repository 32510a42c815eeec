package inst

import (
	"fmt"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
)

type (
	// NoMatchError is returned when no variant parses a statement.
	NoMatchError struct {
		Line     string
		Attempts []Attempt
	}

	Attempt struct {
		Variant string
		Err     error
	}

	// FatalError is a modeling bug: a table or callback is inconsistent.
	// It must not be recovered from.
	FatalError struct {
		Msg string
		PC  loc.PC
		Err error
	}
)

// ErrNoMatch is the routine mismatch of one variant against a statement.
var ErrNoMatch = errors.New("no match")

func Fatalf(format string, args ...interface{}) error {
	return &FatalError{
		Msg: fmt.Sprintf(format, args...),
		PC:  loc.Caller(1),
	}
}

// WrapFatal makes err fatal.
func WrapFatal(err error, format string, args ...interface{}) error {
	return &FatalError{
		Msg: fmt.Sprintf(format, args...),
		PC:  loc.Caller(1),
		Err: err,
	}
}

func IsFatal(err error) bool {
	var f *FatalError
	return errors.As(err, &f)
}

func (e *FatalError) Error() string {
	_, file, line := e.PC.NameFileLine()

	if e.Err != nil {
		return fmt.Sprintf("fatal: %s (%s:%d): %v", e.Msg, file, line, e.Err)
	}

	return fmt.Sprintf("fatal: %s (%s:%d)", e.Msg, file, line)
}

func (e *FatalError) Unwrap() error { return e.Err }

func (e *NoMatchError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "no instruction variant matches %q", e.Line)

	if len(e.Attempts) != 0 {
		fmt.Fprintf(&b, " (%d tried)", len(e.Attempts))
	}

	return b.String()
}

// Is makes errors.Is(err, ErrNoMatch) hold for a failed Parse.
func (e *NoMatchError) Is(target error) bool { return target == ErrNoMatch }

// Report lists every attempted variant with its mismatch reason.
func (e *NoMatchError) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%v\n", e)

	for _, a := range e.Attempts {
		fmt.Fprintf(&b, "\t%-24s %v\n", a.Variant, a.Err)
	}

	return b.String()
}
