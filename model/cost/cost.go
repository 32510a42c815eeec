// Package cost answers scheduling questions about parsed instructions:
// which functional units they occupy, how long results take
// and how often they can issue.
//
// Targets are built from ordered tables. The first row whose key
// matches an instruction wins, so exceptions go before general rows.
package cost

import (
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog/tlwire"

	"github.com/slowlang/sloth/model/inst"
)

type (
	// Matcher selects instructions.
	Matcher interface {
		Match(i *inst.Inst) bool
	}

	// Class matches variants that are or belong to the named class.
	Class string

	// Pred is an arbitrary predicate over an instance.
	Pred func(i *inst.Inst) bool

	// Tagged matches variants having all the tags.
	Tagged inst.Tag

	// AnyOf matches if any alternative matches.
	AnyOf []Matcher

	Any struct{}

	Row[V any] struct {
		Key Matcher
		Val V
	}

	Table[V any] struct {
		Name string
		Rows []Row[V]
	}

	Unit string

	// Units lists alternatives. Each alternative is a bundle of units
	// occupied together.
	Units [][]Unit

	// Placement is where the scheduler put an instruction.
	Placement struct {
		Pos   int // position in the output sequence
		Cycle int
		Slot  int
	}

	// Latency is the number of cycles until a result can be consumed.
	// Constraint, if set, is an extra condition on producer and consumer
	// placements the scheduler must enforce.
	Latency struct {
		Cycles     int
		Constraint func(src, dst Placement) bool
	}

	// LatencyRule refines table latencies for particular producer-consumer pairs.
	LatencyRule struct {
		Name string
		Src  Matcher
		Dst  Matcher

		// Check looks at the actual operands. Nil means the rule always applies.
		Check func(src *inst.Inst, out int, dst *inst.Inst) bool

		Latency Latency
	}

	// Scheduler is the part of the scheduler targets can add constraints to.
	Scheduler interface {
		// MaxPerCycle limits the number of matching instructions issued in one cycle.
		MaxPerCycle(m Matcher, n int)

		// NotAdjacent forbids an instruction matching a to issue
		// in the cycle right before one matching b.
		NotAdjacent(a, b Matcher)
	}

	// Objective is a secondary goal: minimize the latest issue cycle
	// among instructions matching Select.
	Objective struct {
		Name   string
		Select Matcher
	}

	// Model is what the scheduler needs from a target.
	Model interface {
		Name() string
		Arch() *inst.Arch
		IssueWidth() int

		Units(i *inst.Inst) (Units, error)

		// Latency of output out of src (index into src.Writes()) as read by dst.
		Latency(src *inst.Inst, out int, dst *inst.Inst) (Latency, error)

		InverseThroughput(i *inst.Inst) (int, error)

		AddFurtherConstraints(s Scheduler)

		HasMinMaxObjective() bool
		MinMaxObjective() Objective
	}
)

var ErrUnknownInstruction = errors.New("unknown instruction in cost model")

func (c Class) Match(i *inst.Inst) bool { return i.Is(string(c)) }

func (p Pred) Match(i *inst.Inst) bool { return p(i) }

func (t Tagged) Match(i *inst.Inst) bool { return i.V.Tags.Has(inst.Tag(t)) }

func (Any) Match(i *inst.Inst) bool { return true }

func (a AnyOf) Match(i *inst.Inst) bool {
	for _, m := range a {
		if m.Match(i) {
			return true
		}
	}

	return false
}

// Classes is a shortcut for AnyOf of several classes.
func Classes(cs ...string) AnyOf {
	r := make(AnyOf, len(cs))

	for k, c := range cs {
		r[k] = Class(c)
	}

	return r
}

// Lookup returns the value of the first matching row.
// No match is a modeling bug and is fatal.
func (t *Table[V]) Lookup(i *inst.Inst) (v V, err error) {
	for _, r := range t.Rows {
		if r.Key.Match(i) {
			return r.Val, nil
		}
	}

	return v, inst.WrapFatal(ErrUnknownInstruction, "%v table: %v", t.Name, i.V.Name)
}

// Either returns units any one of which can execute the instruction.
func Either(us ...Unit) Units {
	r := make(Units, len(us))

	for k, u := range us {
		r[k] = []Unit{u}
	}

	return r
}

// Both returns a single bundle of units used at once.
func Both(us ...Unit) Units {
	return Units{us}
}

func (u Units) String() string {
	var b strings.Builder

	for k, alt := range u {
		if k != 0 {
			b.WriteString("|")
		}

		for j, x := range alt {
			if j != 0 {
				b.WriteString("+")
			}

			b.WriteString(string(x))
		}
	}

	return b.String()
}

func (u Units) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	b = e.AppendTag(b, tlwire.Array, len(u))

	for _, alt := range u {
		b = e.AppendTag(b, tlwire.Array, len(alt))

		for _, x := range alt {
			b = e.AppendString(b, string(x))
		}
	}

	return b
}

// L is a plain latency.
func L(n int) Latency { return Latency{Cycles: n} }

func (l Latency) Plain() bool { return l.Constraint == nil }

func (r *LatencyRule) applies(src *inst.Inst, out int, dst *inst.Inst) bool {
	if !r.Src.Match(src) || !r.Dst.Match(dst) {
		return false
	}

	return r.Check == nil || r.Check(src, out, dst)
}
