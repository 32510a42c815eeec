package armv7m

import (
	"fmt"
	"strconv"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

var stackSlot = inst.StackSlot(reg.StackGPR)

// ascending checks register lists of ldm/stm are written in increasing order.
// Symbolic registers are left to the allocator.
func ascending(a *inst.Arch, i *inst.Inst) error {
	prev := -1

	for _, d := range i.V.Mem.Data {
		n, ok := number(i.Arg(d), "r")
		if !ok {
			continue
		}

		if n <= prev {
			return errors.Wrap(inst.ErrNoMatch, "register list is not ascending")
		}

		prev = n
	}

	return nil
}

func consecutiveS(a *inst.Arch, i *inst.Inst) error {
	x, okx := number(i.Arg("Sa"), "s")
	y, oky := number(i.Arg("Sb"), "s")

	if okx && oky && y != x+1 {
		return errors.Wrap(inst.ErrNoMatch, "%v, %v are not consecutive", i.Arg("Sa"), i.Arg("Sb"))
	}

	return nil
}

func number(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}

	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil {
		return 0, false
	}

	return n, true
}

// splitPost separates a post-increment access into the access and the pointer update.
func splitPost(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Marked(inst.MarkSplit) {
		return inst.Rewrite{}, nil
	}

	base := i.Addr

	if !i.V.Mem.Store && i.Arg("Rd") == base {
		return inst.Rewrite{}, nil
	}

	access, err := a.Convert(i, a.MustVariant(strings.TrimSuffix(i.V.Name, "_post")))
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

// splitBlock expands ldm/stm into single word accesses
// followed by the pointer update if the base is written back.
func splitBlock(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Marked(inst.MarkSplit) || i.Hints[inst.In]+i.Hints[inst.Out] != 0 {
		return inst.Rewrite{}, nil
	}

	m := i.V.Mem
	base := i.Addr

	op := "ldr"
	if m.Store {
		op = "str"
	}

	var with []*inst.Inst

	for k, d := range m.Data {
		r := i.Arg(d)

		if r == base {
			return inst.Rewrite{}, nil
		}

		v, text := op, fmt.Sprintf("%s %s, [%s]", op, r, base)

		if k != 0 {
			v, text = op+"_imm", fmt.Sprintf("%s %s, [%s, #%d]", op, r, base, k*m.Size)
		}

		c, err := a.Build(i, v, text)
		if err != nil {
			return inst.Rewrite{}, err
		}

		with = append(with, c)
	}

	if i.Increment != "" {
		c, err := a.Build(i, "add_imm", fmt.Sprintf("add %s, %s, #%s", base, base, i.Increment))
		if err != nil {
			return inst.Rewrite{}, err
		}

		with = append(with, c)
	}

	for _, c := range with {
		c.Mark(inst.MarkSplit)
	}

	if tlog.If("fusion") {
		tlog.Printw("split block access", "inst", i.Source.Text, "into", len(with))
	}

	return inst.Replace(n, with...), nil
}

// fuseMulAdd merges mul into its only consumer add as mla.
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
	if add.V.Name != "add" || add.Hints[inst.In]+add.Hints[inst.Out] != 0 {
		return inst.Rewrite{}, nil
	}

	prod := i.Arg("Rd")

	acc := add.Arg("Rb")
	if u.Idx == 1 {
		acc = add.Arg("Ra")
	}

	ra, rb := i.Arg("Ra"), i.Arg("Rb")

	if acc == prod || ra == prod || rb == prod {
		return inst.Rewrite{}, nil
	}

	if inst.WrittenBy(n.Between(u.Node), ra, rb) {
		return inst.Rewrite{}, nil
	}

	m, err := a.Build(add, "mla", fmt.Sprintf("mla %s, %s, %s, %s", add.Arg("Rd"), ra, rb, acc))
	if err != nil {
		return inst.Rewrite{}, err
	}

	m.Mark(inst.MarkFused)

	return inst.Rewrite{Edits: []inst.Edit{
		{Node: n},
		{Node: u.Node, With: []*inst.Inst{m}},
	}}, nil
}
