package riscv64

import (
	"github.com/slowlang/sloth/model/inst"
)

func rrr(name string, tags inst.Tag, example string, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: name + " <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: classes, Tags: tags, Example: example}
}

func rri(name string, tags inst.Tag, example string, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: name + " <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: classes, Tags: tags, Example: example}
}

var scalar = []*inst.Variant{
	rrr("add", inst.Arith, "add a0, a1, a2", "alu"),
	{Name: "addi", Pattern: "addi <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Arith, AddImm: &inst.AddSpec{Dst: "Xd", Src: "Xa", Imm: "imm"}, Example: "addi a0, a0, 64"},
	rrr("sub", inst.Arith, "sub a0, a1, a2", "alu"),
	rrr("addw", inst.Arith, "addw a0, a1, a2", "alu"),
	rrr("subw", inst.Arith, "subw a0, a1, a2", "alu"),

	rrr("and", inst.Logic, "and a0, a1, a2", "alu"),
	rrr("or", inst.Logic, "or a0, a1, a2", "alu"),
	rrr("xor", inst.Logic, "xor a0, a1, a2", "alu"),
	rri("andi", inst.Logic, "andi a0, a1, 255", "alu"),
	rri("xori", inst.Logic, "xori a0, a1, -1", "alu"),
	rrr("andn", inst.Logic, "andn a0, a1, a2", "alu"),
	rrr("rol", inst.Shift, "rol a0, a1, a2", "alu"),
	rri("rori", inst.Shift, "rori a0, a1, 7", "alu"),

	{Name: "slli", Pattern: "slli <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu", "shift"), Tags: inst.Shift, FusionCB: fuseShiftAdd, Example: "slli t0, a1, 3"},
	rri("srli", inst.Shift, "srli a0, a1, 32", "alu", "shift"),
	rri("srai", inst.Shift, "srai a0, a1, 63", "alu", "shift"),

	rrr("sh1add", inst.Arith|inst.Shift, "sh1add a0, a1, a2", "alu", "shadd"),
	rrr("sh2add", inst.Arith|inst.Shift, "sh2add a0, a1, a2", "alu", "shadd"),
	rrr("sh3add", inst.Arith|inst.Shift, "sh3add a0, a1, a2", "alu", "shadd"),

	{Name: "mv", Pattern: "mv <Xd>, <Xa>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Move, Example: "mv a0, a1"},
	{Name: "li", Pattern: "li <Xd>, <imm>", Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Move, Example: "li a0, 3329"},

	rrr("mul", inst.Mul, "mul a0, a1, a2", "mul"),
	rrr("mulh", inst.Mul, "mulh a0, a1, a2", "mul"),
	rrr("mulhu", inst.Mul, "mulhu a0, a1, a2", "mul"),
	rrr("mulw", inst.Mul, "mulw a0, a1, a2", "mul"),
}
