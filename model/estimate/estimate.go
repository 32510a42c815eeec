// Package estimate is a list scheduler over a cost model.
// It is a reference consumer of the model, not an optimizer:
// it keeps the data dependencies of the input and issues greedily.
package estimate

import (
	"context"

	"nikand.dev/go/heap"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

type (
	Schedule struct {
		Target string

		// Place is indexed by input position.
		Place []cost.Placement

		// Order is input positions in issue order.
		Order []int

		Cycles int

		// Objective is the latest issue cycle of instructions
		// selected by the target objective, -1 if none.
		Objective int
	}

	edge struct {
		src, dst int
		lat      cost.Latency
		reg      string
	}

	node struct {
		i *inst.Inst

		units cost.Units
		tp    int

		in, out []*edge

		preds int // unscheduled predecessors
		prio  int // longest latency path to the end
		goal  bool
	}

	scheduler struct {
		m  cost.Model
		ns []node

		maxPer   []limit
		adjacent [][2]cost.Matcher

		place []cost.Placement

		busy map[cost.Unit]int // unit -> first free cycle
	}

	limit struct {
		m cost.Matcher
		n int
	}

	ready struct {
		heap.Heap[int]
	}
)

var ErrStuck = errors.New("scheduler made no progress")

// Run schedules the sequence on the target.
func Run(ctx context.Context, m cost.Model, is []*inst.Inst) (s *Schedule, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "estimate", "target", m.Name(), "insts", len(is))
	defer tr.Finish("err", &err)

	sch := &scheduler{
		m:     m,
		ns:    make([]node, len(is)),
		place: make([]cost.Placement, len(is)),
		busy:  map[cost.Unit]int{},
	}

	m.AddFurtherConstraints(sch)

	err = sch.build(is)
	if err != nil {
		return nil, err
	}

	sch.priorities()

	s, err = sch.run(ctx)
	if err != nil {
		return nil, err
	}

	tr.Printw("estimated", "cycles", s.Cycles, "objective", s.Objective)

	return s, nil
}

func (s *scheduler) MaxPerCycle(m cost.Matcher, n int) {
	s.maxPer = append(s.maxPer, limit{m: m, n: n})
}

func (s *scheduler) NotAdjacent(a, b cost.Matcher) {
	s.adjacent = append(s.adjacent, [2]cost.Matcher{a, b})
}

func (s *scheduler) build(is []*inst.Inst) (err error) {
	var obj cost.Objective
	if s.m.HasMinMaxObjective() {
		obj = s.m.MinMaxObjective()
	}

	writer := map[string]int{}    // reg -> last writer
	readers := map[string][]int{} // reg -> reads since last write
	var stores, loads []int

	for j, i := range is {
		n := &s.ns[j]
		n.i = i
		n.goal = obj.Select != nil && obj.Select.Match(i)

		n.units, err = s.m.Units(i)
		if err != nil {
			return err
		}

		n.tp, err = s.m.InverseThroughput(i)
		if err != nil {
			return err
		}

		for _, r := range i.Reads() {
			w, ok := writer[r]
			if !ok {
				continue
			}

			out := index(is[w].Writes(), r)

			lat, err := s.m.Latency(is[w], out, i)
			if err != nil {
				return err
			}

			s.link(w, j, lat, r)
		}

		for _, r := range i.Writes() {
			for _, k := range readers[r] {
				if k != j {
					s.link(k, j, cost.L(0), r)
				}
			}

			if w, ok := writer[r]; ok && w != j {
				s.link(w, j, cost.L(0), r)
			}
		}

		// memory is kept in order around stores
		switch {
		case i.Has(inst.Store):
			for _, k := range loads {
				s.link(k, j, cost.L(0), "")
			}

			for _, k := range stores {
				s.link(k, j, cost.L(0), "")
			}

			loads = loads[:0]
			stores = append(stores[:0], j)
		case i.Has(inst.Load):
			for _, k := range stores {
				s.link(k, j, cost.L(1), "")
			}

			loads = append(loads, j)
		}

		for _, r := range i.Reads() {
			readers[r] = append(readers[r], j)
		}

		for _, r := range i.Writes() {
			writer[r] = j
			readers[r] = nil
		}
	}

	return nil
}

func (s *scheduler) link(src, dst int, lat cost.Latency, reg string) {
	e := &edge{src: src, dst: dst, lat: lat, reg: reg}

	s.ns[src].out = append(s.ns[src].out, e)
	s.ns[dst].in = append(s.ns[dst].in, e)
	s.ns[dst].preds++
}

func (s *scheduler) priorities() {
	for j := len(s.ns) - 1; j >= 0; j-- {
		n := &s.ns[j]

		n.prio = n.tp

		for _, e := range n.out {
			if p := e.lat.Cycles + s.ns[e.dst].prio; p > n.prio {
				n.prio = p
			}
		}
	}
}

func (s *scheduler) less(d []int, i, j int) bool {
	a, b := &s.ns[d[i]], &s.ns[d[j]]

	if a.prio != b.prio {
		return a.prio > b.prio
	}

	if a.goal != b.goal {
		return a.goal
	}

	return d[i] < d[j]
}

func (s *scheduler) run(ctx context.Context) (*Schedule, error) {
	q := ready{Heap: heap.Heap[int]{Less: s.less}}

	for j := range s.ns {
		if s.ns[j].preds == 0 {
			q.Push(j)
		}
	}

	res := &Schedule{
		Target:    s.m.Name(),
		Objective: -1,
	}

	var prev []int
	idle := 0

	for cycle := 0; len(res.Order) < len(s.ns); cycle++ {
		var issued, later []int

		for q.Len() != 0 && len(issued) < s.m.IssueWidth() {
			j := q.Pop()

			p := cost.Placement{Pos: len(res.Order), Cycle: cycle, Slot: len(issued)}

			if !s.fits(j, p, issued, prev) {
				later = append(later, j)
				continue
			}

			s.issue(j, p)

			issued = append(issued, j)
			res.Order = append(res.Order, j)

			for _, e := range s.ns[j].out {
				d := &s.ns[e.dst]
				d.preds--

				if d.preds == 0 {
					later = append(later, e.dst)
				}
			}
		}

		for _, j := range later {
			q.Push(j)
		}

		if tlog.If("estimate") && len(issued) != 0 {
			tlog.Printw("cycle", "cycle", cycle, "issued", names(s.ns, issued))
		}

		if len(issued) == 0 {
			idle++
		} else {
			idle = 0
		}

		// nothing issues for longer than any latency or throughput allows
		if idle > s.horizon() {
			return nil, errors.Wrap(ErrStuck, "cycle %d", cycle)
		}

		prev = issued
	}

	for j, p := range s.place {
		if p.Cycle+1 > res.Cycles {
			res.Cycles = p.Cycle + 1
		}

		if s.ns[j].goal && p.Cycle > res.Objective {
			res.Objective = p.Cycle
		}
	}

	res.Place = s.place

	return res, nil
}

func (s *scheduler) fits(j int, p cost.Placement, issued, prev []int) bool {
	n := &s.ns[j]

	for _, e := range n.in {
		sp := s.place[e.src]

		if sp.Cycle+e.lat.Cycles > p.Cycle {
			return false
		}

		if e.lat.Constraint != nil && !e.lat.Constraint(sp, p) {
			return false
		}
	}

	if _, ok := s.unit(n, p.Cycle); !ok {
		return false
	}

	for _, l := range s.maxPer {
		if !l.m.Match(n.i) {
			continue
		}

		c := 1

		for _, k := range issued {
			if l.m.Match(s.ns[k].i) {
				c++
			}
		}

		if c > l.n {
			return false
		}
	}

	for _, a := range s.adjacent {
		if !a[1].Match(n.i) {
			continue
		}

		for _, k := range prev {
			if a[0].Match(s.ns[k].i) {
				return false
			}
		}
	}

	return true
}

// unit returns the first alternative with all its units free.
func (s *scheduler) unit(n *node, cycle int) (int, bool) {
alts:
	for k, alt := range n.units {
		for _, u := range alt {
			if s.busy[u] > cycle {
				continue alts
			}
		}

		return k, true
	}

	return 0, false
}

func (s *scheduler) issue(j int, p cost.Placement) {
	n := &s.ns[j]

	k, _ := s.unit(n, p.Cycle)

	for _, u := range n.units[k] {
		s.busy[u] = p.Cycle + n.tp
	}

	s.place[j] = p
}

func (s *scheduler) horizon() int {
	h := 1

	for _, n := range s.ns {
		if n.tp > h {
			h = n.tp
		}

		for _, e := range n.in {
			if e.lat.Cycles > h {
				h = e.lat.Cycles
			}
		}
	}

	return 2*h + 32
}

func index(l []string, s string) int {
	for k, x := range l {
		if x == s {
			return k
		}
	}

	return -1
}

func names(ns []node, js []int) []string {
	r := make([]string, len(js))

	for k, j := range js {
		r[k] = ns[j].i.V.Name
	}

	return r
}
