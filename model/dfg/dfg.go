// Package dfg is a reference data-flow graph over a straight-line block.
//
// It gives callbacks their view of the neighborhood through inst.Node,
// applies the rewrites they return and rebuilds def-use edges from
// program order. It is what the scheduler does around the model, in small.
package dfg

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
	"github.com/slowlang/sloth/model/set"
)

type (
	Graph struct {
		Arch *inst.Arch

		// Outputs are registers visible after the block.
		Outputs []string

		// MaxRounds bounds fusion passes. Zero means DefaultMaxRounds.
		MaxRounds int

		// Verify makes Apply reject rewrites that change
		// the memory footprint of the edited span.
		Verify bool

		nodes []*Node
	}

	Node struct {
		g   *Graph
		i   *inst.Inst
		pos int
	}
)

const DefaultMaxRounds = 64

var ErrNoFixpoint = errors.New("fusion does not converge")

var _ inst.Node = &Node{}

func New(a *inst.Arch, is []*inst.Inst, outputs ...string) *Graph {
	g := &Graph{
		Arch:    a,
		Outputs: outputs,
	}

	g.reset(is)

	return g
}

func (g *Graph) reset(is []*inst.Inst) {
	g.nodes = g.nodes[:0]

	for _, i := range is {
		g.nodes = append(g.nodes, &Node{g: g, i: i, pos: len(g.nodes)})
	}
}

func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) Nodes() []*Node { return g.nodes }

func (g *Graph) Node(pos int) *Node { return g.nodes[pos] }

// Insts returns instructions in program order.
func (g *Graph) Insts() []*inst.Inst {
	r := make([]*inst.Inst, len(g.nodes))

	for k, n := range g.nodes {
		r[k] = n.i
	}

	return r
}

// Run applies parsing callbacks once per instruction and then
// fusion callbacks until nothing changes.
func (g *Graph) Run(ctx context.Context) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "dfg: run", "arch", g.Arch.Name, "insts", len(g.nodes))
	defer tr.Finish("err", &err)

	changed, err := g.Parsing(ctx)
	if err != nil {
		return errors.Wrap(err, "parsing callbacks")
	}

	rounds, err := g.Fusion(ctx)
	if err != nil {
		return errors.Wrap(err, "fusion callbacks")
	}

	tr.Printw("callbacks applied", "reclassified", changed, "fusion_rounds", rounds, "insts", len(g.nodes))

	return nil
}

// Parsing runs parsing callbacks on every instruction present at the start.
// Instructions replaced in the meantime are skipped.
func (g *Graph) Parsing(ctx context.Context) (changed int, err error) {
	todo := append([]*Node(nil), g.nodes...)

	for _, n := range todo {
		if n.g == nil {
			continue
		}

		rw, err := g.Arch.ParsingCB(n)
		if err != nil {
			return changed, errors.Wrap(err, "line %q", n.i.Source.Text)
		}

		if !rw.Changed() {
			continue
		}

		if err = g.Apply(rw); err != nil {
			return changed, err
		}

		changed++
	}

	return changed, nil
}

// Fusion runs fusion callbacks to a fixpoint.
func (g *Graph) Fusion(ctx context.Context) (rounds int, err error) {
	max := g.MaxRounds
	if max == 0 {
		max = DefaultMaxRounds
	}

	for rounds = 0; rounds < max; rounds++ {
		applied := false

		for k := 0; k < len(g.nodes); k++ {
			n := g.nodes[k]

			rw, err := g.Arch.FusionCB(n)
			if err != nil {
				return rounds, errors.Wrap(err, "line %q", n.i.Source.Text)
			}

			if !rw.Changed() {
				continue
			}

			if tlog.If("fusion") {
				tlog.Printw("apply rewrite", "inst", n.i, "edits", len(rw.Edits))
			}

			if err = g.Apply(rw); err != nil {
				return rounds, err
			}

			applied = true
		}

		if !applied {
			return rounds, nil
		}
	}

	return rounds, ErrNoFixpoint
}

// Apply replaces edited nodes and renumbers the graph.
func (g *Graph) Apply(rw inst.Rewrite) error {
	with := map[*Node][]*inst.Inst{}
	seen := set.MakeBits(len(g.nodes))

	for _, e := range rw.Edits {
		n, ok := e.Node.(*Node)
		if !ok || n.g != g {
			return inst.Fatalf("rewrite edits a node of another graph")
		}

		if seen.IsSet(n.pos) {
			return inst.Fatalf("rewrite edits %v twice", n.i.V.Name)
		}

		seen.Set(n.pos)
		with[n] = e.With
	}

	if g.Verify && len(rw.Edits) != 0 {
		if err := g.verify(with); err != nil {
			return err
		}
	}

	nodes := make([]*Node, 0, len(g.nodes))

	for _, n := range g.nodes {
		repl, ok := with[n]
		if !ok {
			nodes = append(nodes, n)
			continue
		}

		n.g = nil

		for _, i := range repl {
			nodes = append(nodes, &Node{g: g, i: i})
		}
	}

	for k, n := range nodes {
		n.pos = k
	}

	g.nodes = nodes

	return nil
}

// verify compares the footprint of the edited span before and after the rewrite.
// Spans with offsets or bases the footprint can't resolve are not checked.
func (g *Graph) verify(with map[*Node][]*inst.Inst) error {
	lo, hi := len(g.nodes), -1

	for n := range with {
		lo, hi = min(lo, n.pos), max(hi, n.pos)
	}

	var before, after []*inst.Inst

	for _, n := range g.nodes[lo : hi+1] {
		before = append(before, n.i)

		if repl, ok := with[n]; ok {
			after = append(after, repl...)
		} else {
			after = append(after, n.i)
		}
	}

	tb, err := g.Arch.Footprint(before, nil)
	if err != nil {
		return nil
	}

	ta, err := g.Arch.Footprint(after, nil)
	if err != nil {
		return inst.WrapFatal(err, "footprint after rewrite of %v", g.nodes[lo].i.V.Name)
	}

	if tb.Same(ta) {
		return nil
	}

	if tlog.If("verify") {
		for _, acc := range tb.Accesses {
			from, b := tb.Bytes(acc.Base, acc.Store)
			_, a := ta.Bytes(acc.Base, acc.Store)

			tlog.Printw("footprint", "base", acc.Base, "store", acc.Store, "from", from, "before", b, "after", a)
		}
	}

	return inst.Fatalf("rewrite of %v changes memory footprint", g.nodes[lo].i.V.Name)
}

func (n *Node) Inst() *inst.Inst { return n.i }

func (n *Node) Pos() int { return n.pos }

func (n *Node) Producer(r inst.Role, j int) (inst.Node, bool) {
	name := n.i.Args[r][j]

	for k := n.pos - 1; k >= 0; k-- {
		p := n.g.nodes[k]

		if contains(p.i.Writes(), name) {
			return p, true
		}
	}

	return nil, false
}

func (n *Node) Consumers(r inst.Role, j int) (us []inst.Use) {
	name := n.i.Args[r][j]

	for _, c := range n.g.nodes[n.pos+1:] {
		for _, role := range []inst.Role{inst.In, inst.InOut} {
			for idx, a := range c.i.Args[role] {
				if a == name {
					us = append(us, inst.Use{Node: c, Role: role, Idx: idx})
				}
			}
		}

		if contains(c.i.Writes(), name) {
			break
		}
	}

	return us
}

func (n *Node) LiveOut(r inst.Role, j int) bool {
	name := n.i.Args[r][j]

	if n.i.Types[r][j] == reg.Hint {
		return false
	}

	for _, c := range n.g.nodes[n.pos+1:] {
		if contains(c.i.Writes(), name) {
			return false
		}
	}

	return contains(n.g.Outputs, name)
}

func (n *Node) Between(other inst.Node) (r []inst.Node) {
	o, ok := other.(*Node)
	if !ok || o.g != n.g {
		return nil
	}

	from, to := n.pos, o.pos
	if from > to {
		from, to = to, from
	}

	for _, x := range n.g.nodes[from+1 : to] {
		r = append(r, x)
	}

	return r
}

func (n *Node) Next() (inst.Node, bool) {
	if n.pos+1 >= len(n.g.nodes) {
		return nil, false
	}

	return n.g.nodes[n.pos+1], true
}

func (n *Node) Prev() (inst.Node, bool) {
	if n.pos == 0 {
		return nil, false
	}

	return n.g.nodes[n.pos-1], true
}

func contains(l []string, s string) bool {
	for _, x := range l {
		if x == s {
			return true
		}
	}

	return false
}
