package riscv64

import (
	"fmt"

	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/expr"
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

var stackSlot = inst.StackSlot(reg.StackGPR)

// fuseShiftAdd merges slli by 1, 2 or 3 into its only consumer add as sh<n>add.
func fuseShiftAdd(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Hints[inst.In]+i.Hints[inst.Out] != 0 {
		return inst.Rewrite{}, nil
	}

	sh, err := expr.Value(i.Imm(), nil)
	if err != nil || sh < 1 || sh > 3 {
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

	shifted := i.Arg("Xd")
	src := i.Arg("Xa")

	other := add.Arg("Xb")
	if u.Idx == 1 {
		other = add.Arg("Xa")
	}

	if other == shifted || src == shifted {
		return inst.Rewrite{}, nil
	}

	if inst.WrittenBy(n.Between(u.Node), src) {
		return inst.Rewrite{}, nil
	}

	v := fmt.Sprintf("sh%dadd", sh)

	f, err := a.Build(add, v, fmt.Sprintf("%s %s, %s, %s", v, add.Arg("Xd"), src, other))
	if err != nil {
		return inst.Rewrite{}, err
	}

	f.Mark(inst.MarkFused)

	if tlog.If("fusion") {
		tlog.Printw("fused shift into add", "shift", i.Source.Text, "add", add.Source.Text, "into", v)
	}

	return inst.Rewrite{Edits: []inst.Edit{
		{Node: n},
		{Node: u.Node, With: []*inst.Inst{f}},
	}}, nil
}
