package riscv64

import (
	"github.com/slowlang/sloth/model/inst"
)

func load(size int) *inst.MemSpec {
	return &inst.MemSpec{Base: "Xc", Offset: "imm", Data: l("Xd"), Size: size}
}

func store(size int) *inst.MemSpec {
	return &inst.MemSpec{Store: true, Base: "Xc", Offset: "imm", Data: l("Xa"), Size: size}
}

var memory = []*inst.Variant{
	{Name: "restore", Pattern: "ld <Xd>, <Sa>(sp)", In: l("Sa"), Out: l("Xd"),
		Classes: l("load", "restore"), Tags: inst.Load | inst.Pseudo, Check: stackSlot, Example: "ld a0, stack2(sp)"},
	{Name: "spill", Pattern: "sd <Xa>, <Sd>(sp)", In: l("Xa"), Out: l("Sd"),
		Classes: l("store", "spill"), Tags: inst.Store | inst.Pseudo, Check: stackSlot, Example: "sd a0, stack2(sp)"},

	{Name: "ld", Pattern: "ld <Xd>, <imm>(<Xc>)", In: l("Xc"), Out: l("Xd"),
		Classes: l("load"), Tags: inst.Load, Mem: load(8), Example: "ld a0, 8(a1)"},
	{Name: "lw", Pattern: "lw <Xd>, <imm>(<Xc>)", In: l("Xc"), Out: l("Xd"),
		Classes: l("load"), Tags: inst.Load, Mem: load(4), Example: "lw a0, -4(a1)"},
	{Name: "lh", Pattern: "lh <Xd>, <imm>(<Xc>)", In: l("Xc"), Out: l("Xd"),
		Classes: l("load"), Tags: inst.Load, Mem: load(2), Example: "lh a0, 2(a1)"},
	{Name: "sd", Pattern: "sd <Xa>, <imm>(<Xc>)", In: l("Xa", "Xc"),
		Classes: l("store"), Tags: inst.Store, Mem: store(8), Example: "sd a0, 16(a1)"},
	{Name: "sw", Pattern: "sw <Xa>, <imm>(<Xc>)", In: l("Xa", "Xc"),
		Classes: l("store"), Tags: inst.Store, Mem: store(4), Example: "sw a0, 0(a1)"},
	{Name: "sh", Pattern: "sh <Xa>, <imm>(<Xc>)", In: l("Xa", "Xc"),
		Classes: l("store"), Tags: inst.Store, Mem: store(2), Example: "sh a0, 2(a1)"},
}
