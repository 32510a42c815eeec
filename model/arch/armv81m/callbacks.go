package armv81m

import (
	"strings"

	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

var stackSlot = inst.StackSlot(reg.StackGPR, reg.StackVector)

// splitPost separates a post-increment access into the access and the pointer update.
func splitPost(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Marked(inst.MarkSplit) {
		return inst.Rewrite{}, nil
	}

	base := i.Addr

	access, err := a.Convert(i, a.MustVariant(strings.TrimSuffix(i.V.Name, "_post")))
	if err != nil {
		return inst.Rewrite{}, err
	}

	update, err := a.Build(i, "add_imm", name("add %s, %s, #%s", base, base, i.Increment))
	if err != nil {
		return inst.Rewrite{}, err
	}

	access.Mark(inst.MarkSplit)
	update.Mark(inst.MarkSplit)

	return inst.Replace(n, access, update), nil
}

// quartet finds vld41, vld42 and vld43 completing a vld40 on the same
// registers and address. Together they overwrite every lane, so the
// first one does not depend on the old register values.
func quartet(a *inst.Arch, n inst.Node) (inst.Rewrite, error) {
	i := n.Inst()
	if i.Marked(inst.MarkReclassified) || i.Hints[inst.In]+i.Hints[inst.Out] != 0 {
		return inst.Rewrite{}, nil
	}

	cur := n

	for _, want := range []string{"vld41", "vld42", "vld43"} {
		next, ok := chained(cur, want)
		if !ok {
			return inst.Rewrite{}, nil
		}

		cur = next
	}

	if inst.WrittenBy(n.Between(cur), i.Addr) {
		return inst.Rewrite{}, nil
	}

	c, err := a.Convert(i, a.MustVariant("vld40_force_output"))
	if err != nil {
		return inst.Rewrite{}, err
	}

	c.Mark(inst.MarkReclassified)

	if tlog.If("parsing") {
		tlog.Printw("vld40 overwrites all lanes", "inst", i.Source.Text, "regs", i.Args[inst.InOut][:4])
	}

	return inst.Replace(n, c), nil
}

// chained returns the only consumer of all four quartet registers of n
// if it is the next quarter with the same operands.
func chained(n inst.Node, want string) (inst.Node, bool) {
	i := n.Inst()

	var next inst.Node

	for j := 0; j < 4; j++ {
		u, ok := inst.SoleUse(n, inst.InOut, j)
		if !ok || u.Role != inst.InOut || u.Idx != j {
			return nil, false
		}

		if next != nil && u.Node != next {
			return nil, false
		}

		next = u.Node
	}

	c := next.Inst()
	if !strings.HasPrefix(c.V.Name, want) || c.Addr != i.Addr {
		return nil, false
	}

	return next, true
}
