package model

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/samber/lo"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/arch/aarch64"
	"github.com/slowlang/sloth/model/arch/armv7m"
	"github.com/slowlang/sloth/model/arch/armv81m"
	"github.com/slowlang/sloth/model/arch/riscv64"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/src"
	"github.com/slowlang/sloth/model/target/cortexa55"
	"github.com/slowlang/sloth/model/target/cortexa72"
	"github.com/slowlang/sloth/model/target/cortexm4"
	"github.com/slowlang/sloth/model/target/cortexm55"
	"github.com/slowlang/sloth/model/target/cortexm7"
	"github.com/slowlang/sloth/model/target/cortexm85"
	"github.com/slowlang/sloth/model/target/x60"
)

type (
	// Listing is a parsed assembly file.
	Listing struct {
		Name  string
		Arch  *inst.Arch
		Lines []src.Line

		// Insts is parallel to Lines, nil for labels, directives and blank lines.
		Insts []*inst.Inst
	}

	// ParseErrors lists every statement that failed to parse.
	ParseErrors []error
)

var (
	ErrUnknownArch   = errors.New("unknown architecture")
	ErrUnknownTarget = errors.New("unknown target")
)

var arches = map[string]*inst.Arch{
	aarch64.Arch.Name: aarch64.Arch,
	armv7m.Arch.Name:  armv7m.Arch,
	armv81m.Arch.Name: armv81m.Arch,
	riscv64.Arch.Name: riscv64.Arch,
}

var targets = map[string]cost.Model{}

func init() {
	for _, t := range []cost.Model{
		cortexa55.Target,
		cortexa72.Target,
		cortexm4.Target,
		cortexm7.Target,
		cortexm55.Target,
		cortexm85.Target,
		x60.Target,
	} {
		targets[t.Name()] = t
	}
}

func LookupArch(name string) (*inst.Arch, error) {
	a, ok := arches[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownArch, "%q", name)
	}

	return a, nil
}

func LookupTarget(name string) (cost.Model, error) {
	t, ok := targets[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownTarget, "%q", name)
	}

	return t, nil
}

func Arches() []string {
	r := lo.Keys(arches)
	sort.Strings(r)

	return r
}

// Targets lists target names, of the architecture if a is not nil.
func Targets(a *inst.Arch) []string {
	r := lo.FilterMap(lo.Values(targets), func(t cost.Model, _ int) (string, bool) {
		return t.Name(), a == nil || t.Arch() == a
	})

	sort.Strings(r)

	return r
}

func ParseFile(ctx context.Context, a *inst.Arch, name string) (*Listing, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Parse(ctx, a, name, text)
}

// Parse parses every statement of the text.
// Unparsable statements are reported all together.
func Parse(ctx context.Context, a *inst.Arch, name string, text []byte) (l *Listing, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse", "name", name, "arch", a.Name)
	defer tr.Finish("err", &err)

	l = &Listing{
		Name:  name,
		Arch:  a,
		Lines: src.Split(string(text), a.Comments...),
	}

	l.Insts = make([]*inst.Inst, len(l.Lines))

	var bad ParseErrors

	for n, line := range l.Lines {
		if !line.IsStatement() {
			continue
		}

		i, err := a.Parse(line)
		if inst.IsFatal(err) {
			return nil, errors.Wrap(err, "%v:%d", name, n+1)
		}
		if err != nil {
			bad = append(bad, errors.Wrap(err, "%v:%d", name, n+1))
			continue
		}

		if tr.If("dump_insts") {
			tr.Printw("parsed", "line", n+1, "inst", i)
		}

		l.Insts[n] = i
	}

	if len(bad) != 0 {
		return l, bad
	}

	tr.V("parse").Printw("parsed", "lines", len(l.Lines), "insts", len(l.Seq()))

	return l, nil
}

// Seq returns the instructions in order.
func (l *Listing) Seq() []*inst.Inst {
	return lo.Compact(l.Insts)
}

func (e ParseErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}

	return fmt.Sprintf("%v (and %d more)", e[0], len(e)-1)
}

func (e ParseErrors) Unwrap() []error { return e }
