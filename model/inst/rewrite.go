package inst

import (
	"tlog.app/go/errors"
)

type (
	// Node is an instruction placed in a data-flow graph.
	// The graph is owned by the scheduler. Callbacks inspect it
	// through this interface and never mutate it.
	Node interface {
		Inst() *Inst

		// Producer returns the node defining the value read by operand j of role r (In or InOut).
		Producer(r Role, j int) (Node, bool)

		// Consumers returns the uses of the value defined by operand j of role r (Out or InOut).
		Consumers(r Role, j int) []Use

		// LiveOut reports whether the value defined by operand j of role r is visible after the block.
		LiveOut(r Role, j int) bool

		// Between returns the nodes strictly between this node and other in program order.
		Between(other Node) []Node

		Next() (Node, bool)
		Prev() (Node, bool)
	}

	Use struct {
		Node Node
		Role Role
		Idx  int
	}

	// Callback inspects a node and returns a rewrite for the graph to apply.
	Callback func(a *Arch, n Node) (Rewrite, error)

	// Rewrite is a set of node replacements.
	Rewrite struct {
		Edits []Edit
	}

	// Edit replaces Node with the With sequence. Empty With deletes the node.
	Edit struct {
		Node Node
		With []*Inst
	}
)

const (
	MarkReclassified Mark = 1 << iota
	MarkSplit
	MarkFused
)

// Replace returns a single edit rewrite.
func Replace(n Node, with ...*Inst) Rewrite {
	return Rewrite{Edits: []Edit{{Node: n, With: with}}}
}

func (r Rewrite) Changed() bool { return len(r.Edits) != 0 }

// And joins rewrites.
func (r Rewrite) And(o Rewrite) Rewrite {
	return Rewrite{Edits: append(append([]Edit(nil), r.Edits...), o.Edits...)}
}

// ParsingCB runs the parsing callback of the node variant if any.
// Parsing callbacks run once per instance after the graph is built.
func (a *Arch) ParsingCB(n Node) (Rewrite, error) {
	return a.run(n, n.Inst().V.ParsingCB, "parsing")
}

// FusionCB runs the fusion callback of the node variant if any.
func (a *Arch) FusionCB(n Node) (Rewrite, error) {
	return a.run(n, n.Inst().V.FusionCB, "fusion")
}

func (a *Arch) run(n Node, cb Callback, kind string) (rw Rewrite, err error) {
	if cb == nil {
		return Rewrite{}, nil
	}

	rw, err = cb(a, n)
	if err != nil {
		if IsFatal(err) {
			return Rewrite{}, err
		}

		return Rewrite{}, errors.Wrap(err, "%v callback of %v", kind, n.Inst().V.Name)
	}

	for _, e := range rw.Edits {
		if e.Node == nil {
			return Rewrite{}, Fatalf("%v callback of %v: edit without node", kind, n.Inst().V.Name)
		}

		for _, i := range e.With {
			if err = i.checkArity(); err != nil {
				return Rewrite{}, err
			}
		}
	}

	return rw, nil
}

// SoleUse returns the only consumer of an output if the value
// does not escape the block.
func SoleUse(n Node, r Role, j int) (Use, bool) {
	if n.LiveOut(r, j) {
		return Use{}, false
	}

	us := n.Consumers(r, j)
	if len(us) != 1 {
		return Use{}, false
	}

	return us[0], true
}

// WrittenBy reports whether any of the nodes writes one of the registers.
func WrittenBy(ns []Node, regs ...string) bool {
	for _, n := range ns {
		for _, w := range n.Inst().Writes() {
			if contains(regs, w) {
				return true
			}
		}
	}

	return false
}

// ReadBy reports whether any of the nodes reads one of the registers.
func ReadBy(ns []Node, regs ...string) bool {
	for _, n := range ns {
		for _, w := range n.Inst().Reads() {
			if contains(regs, w) {
				return true
			}
		}
	}

	return false
}

// TouchesMemory reports whether any of the nodes loads or stores.
func TouchesMemory(ns []Node) bool {
	for _, n := range ns {
		if n.Inst().V.Mem != nil {
			return true
		}
	}

	return false
}
