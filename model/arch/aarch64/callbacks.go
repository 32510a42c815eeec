package aarch64

import (
	"fmt"

	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/expr"
	"github.com/slowlang/sloth/model/inst"
)

// insPair handles a pair of lane inserts filling both halves of a register:
//
//	ins v0.d[0], x1
//	ins v0.d[1], x2
//
// The old value of v0 is dead, so the first insert does not depend on it.
func insPair(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Marked(inst.MarkReclassified) {
		return inst.Rewrite{}, nil
	}

	u, ok := inst.SoleUse(n, inst.InOut, 0)
	if !ok || u.Role != inst.InOut || u.Idx != 0 {
		return inst.Rewrite{}, nil
	}

	next := u.Node.Inst()
	if !next.Is("vins_d") || next.Field("index") == i.Field("index") {
		return inst.Rewrite{}, nil
	}

	c, err := a.Convert(i, a.MustVariant("vins_d_force_output"))
	if err != nil {
		return inst.Rewrite{}, err
	}

	c.Mark(inst.MarkReclassified)
	next.Mark(inst.MarkReclassified)

	tlog.V("parsing").Printw("ins pair", "first", i.Source.Text, "second", next.Source.Text)

	return inst.Replace(n, c), nil
}

// splitPost splits a post-increment load or store into the access and the pointer update.
// Hints stay on the access.
func splitPost(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Marked(inst.MarkSplit) {
		return inst.Rewrite{}, nil
	}

	base := i.Addr
	if !i.V.Mem.Store && contains(i.Args[inst.Out], base) {
		return inst.Rewrite{}, nil
	}

	plain := map[string]string{
		"ldr_post":   "ldr",
		"str_post":   "str",
		"ldr_q_post": "ldr_q",
		"str_q_post": "str_q",
	}[i.V.Name]

	access, err := a.Convert(i, a.MustVariant(plain))
	if err != nil {
		return inst.Rewrite{}, err
	}

	update, err := a.Build(i, "add_imm", fmt.Sprintf("add %s, %s, #%s", base, base, i.Increment))
	if err != nil {
		return inst.Rewrite{}, err
	}

	access.Mark(inst.MarkSplit)
	update.Mark(inst.MarkSplit)

	return inst.Replace(n, access, update), nil
}

// splitPairPost splits ldp/stp with writeback into two single accesses and the pointer update.
func splitPairPost(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Marked(inst.MarkSplit) || i.Hints[inst.In]+i.Hints[inst.Out] != 0 {
		return inst.Rewrite{}, nil
	}

	base := i.Addr

	var first, second string

	if i.V.Mem.Store {
		d0, d1 := i.Arg("Xa"), i.Arg("Xb")

		first = fmt.Sprintf("str %s, [%s]", d0, base)
		second = fmt.Sprintf("str %s, [%s, #8]", d1, base)
	} else {
		d0, d1 := i.Arg("Xd"), i.Arg("Xe")
		if d0 == base || d1 == base {
			return inst.Rewrite{}, nil
		}

		first = fmt.Sprintf("ldr %s, [%s]", d0, base)
		second = fmt.Sprintf("ldr %s, [%s, #8]", d1, base)
	}

	one, two := "ldr", "ldr_imm"
	if i.V.Mem.Store {
		one, two = "str", "str_imm"
	}

	var with []*inst.Inst

	for _, x := range []struct{ v, text string }{
		{one, first},
		{two, second},
		{"add_imm", fmt.Sprintf("add %s, %s, #%s", base, base, i.Increment)},
	} {
		c, err := a.Build(i, x.v, x.text)
		if err != nil {
			return inst.Rewrite{}, err
		}

		c.Mark(inst.MarkSplit)
		with = append(with, c)
	}

	return inst.Replace(n, with...), nil
}

// fuseLoadPair merges two adjacent loads of neighboring doublewords into ldp.
func fuseLoadPair(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()

	nn, ok := n.Next()
	if !ok {
		return inst.Rewrite{}, nil
	}

	j := nn.Inst()
	if !j.Is("ldr") && !j.Is("ldr_imm") {
		return inst.Rewrite{}, nil
	}

	// split halves stay split
	if i.Marked(inst.MarkSplit) || j.Marked(inst.MarkSplit) {
		return inst.Rewrite{}, nil
	}

	if i.Hints != j.Hints || i.Hints[inst.In]+i.Hints[inst.Out] != 0 {
		return inst.Rewrite{}, nil
	}

	base := i.Addr
	d0, d1 := i.Arg("Xd"), j.Arg("Xd")

	if j.Addr != base || d0 == base || d1 == base || d0 == d1 {
		return inst.Rewrite{}, nil
	}

	off0, err0 := expr.Value(i.PreIndex, nil)
	off1, err1 := expr.Value(j.PreIndex, nil)

	if i.PreIndex == "" {
		off0, err0 = 0, nil
	}

	if j.PreIndex == "" {
		off1, err1 = 0, nil
	}

	if err0 != nil || err1 != nil || off1 != off0+8 || off0%8 != 0 || off0 < -512 || off0 > 504 {
		return inst.Rewrite{}, nil
	}

	var text, v string

	if off0 == 0 {
		text, v = fmt.Sprintf("ldp %s, %s, [%s]", d0, d1, base), "ldp"
	} else {
		text, v = fmt.Sprintf("ldp %s, %s, [%s, #%d]", d0, d1, base, off0), "ldp_imm"
	}

	p, err := a.Build(i, v, text)
	if err != nil {
		return inst.Rewrite{}, err
	}

	p.Mark(inst.MarkFused)

	return inst.Rewrite{Edits: []inst.Edit{
		{Node: n, With: []*inst.Inst{p}},
		{Node: nn},
	}}, nil
}

// fuseMulAdd merges mul into its only consumer add as madd.
func fuseMulAdd(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Hints[inst.In]+i.Hints[inst.Out] != 0 {
		return inst.Rewrite{}, nil
	}

	u, ok := inst.SoleUse(n, inst.Out, 0)
	if !ok || u.Role != inst.In {
		return inst.Rewrite{}, nil
	}

	add := u.Node.Inst()
	if !add.Is("add") || add.Hints[inst.In]+add.Hints[inst.Out] != 0 {
		return inst.Rewrite{}, nil
	}

	prod := i.Arg("Xd")

	acc := add.Arg("Xb")
	if u.Idx == 1 {
		acc = add.Arg("Xa")
	}

	xa, xb := i.Arg("Xa"), i.Arg("Xb")

	if acc == prod || xa == prod || xb == prod {
		return inst.Rewrite{}, nil
	}

	if inst.WrittenBy(n.Between(u.Node), xa, xb) {
		return inst.Rewrite{}, nil
	}

	m, err := a.Build(add, "madd", fmt.Sprintf("madd %s, %s, %s, %s", add.Arg("Xd"), xa, xb, acc))
	if err != nil {
		return inst.Rewrite{}, err
	}

	m.Mark(inst.MarkFused)

	return inst.Rewrite{Edits: []inst.Edit{
		{Node: n},
		{Node: u.Node, With: []*inst.Inst{m}},
	}}, nil
}

func contains(l []string, s string) bool {
	for _, x := range l {
		if x == s {
			return true
		}
	}

	return false
}
