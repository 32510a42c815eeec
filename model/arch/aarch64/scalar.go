package aarch64

import (
	"github.com/slowlang/sloth/model/inst"
)

var flags = l("flags")

var scalar = []*inst.Variant{
	{Name: "add", Pattern: "add <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Arith, Example: "add x1, x2, x3"},
	{Name: "add_imm", Pattern: "add <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Arith, AddImm: &inst.AddSpec{Dst: "Xd", Src: "Xa", Imm: "imm"}, Example: "add x0, x0, #16"},
	{Name: "add_shift", Pattern: "add <Xd>, <Xa>, <Xb>, <barrel> <imm>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu_shift"), Tags: inst.Arith | inst.Shift, Example: "add x1, x2, x3, lsl #3"},
	{Name: "add_w", Pattern: "add <Wd>, <Wa>, <Wb>", In: l("Wa", "Wb"), Out: l("Wd"),
		Classes: l("alu"), Tags: inst.Arith, Example: "add w1, w2, w3"},
	{Name: "sub", Pattern: "sub <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Arith, Example: "sub x1, x2, x3"},
	{Name: "sub_imm", Pattern: "sub <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Arith, AddImm: &inst.AddSpec{Dst: "Xd", Src: "Xa", Imm: "imm", Neg: true}, Example: "sub x0, x0, #32"},
	{Name: "sub_shift", Pattern: "sub <Xd>, <Xa>, <Xb>, <barrel> <imm>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu_shift"), Tags: inst.Arith | inst.Shift, Example: "sub x1, x2, x3, asr #2"},
	{Name: "adds", Pattern: "adds <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"), ImplicitOut: flags,
		Classes: l("alu"), Tags: inst.Arith, Example: "adds x1, x2, x3"},
	{Name: "adcs", Pattern: "adcs <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"), ImplicitInOut: flags,
		Classes: l("alu"), Tags: inst.Arith, Example: "adcs x4, x5, x6"},
	{Name: "adc", Pattern: "adc <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"), ImplicitIn: flags,
		Classes: l("alu"), Tags: inst.Arith, Example: "adc x4, x5, xzr"},
	{Name: "subs_imm", Pattern: "subs <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"), ImplicitOut: flags,
		Classes: l("alu"), Tags: inst.Arith, Example: "subs x20, x20, #1"},
	{Name: "cmp", Pattern: "cmp <Xa>, <Xb>", In: l("Xa", "Xb"), ImplicitOut: flags,
		Classes: l("alu"), Tags: inst.Compare, Example: "cmp x1, x2"},
	{Name: "cmp_imm", Pattern: "cmp <Xa>, <imm>", In: l("Xa"), ImplicitOut: flags,
		Classes: l("alu"), Tags: inst.Compare, Example: "cmp x1, #0"},
	{Name: "csel", Pattern: "csel <Xd>, <Xa>, <Xb>, <flag>", In: l("Xa", "Xb"), Out: l("Xd"), ImplicitIn: flags,
		Classes: l("alu"), Tags: inst.Move, Example: "csel x1, x2, x3, ne"},

	{Name: "mul", Pattern: "mul <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("mul"), Tags: inst.Mul, FusionCB: fuseMulAdd, Example: "mul x1, x2, x3"},
	{Name: "madd", Pattern: "madd <Xd>, <Xa>, <Xb>, <Xc>", In: l("Xa", "Xb", "Xc"), Out: l("Xd"),
		Classes: l("mul"), Tags: inst.Mul | inst.MulAcc, Example: "madd x1, x2, x3, x4"},
	{Name: "msub", Pattern: "msub <Xd>, <Xa>, <Xb>, <Xc>", In: l("Xa", "Xb", "Xc"), Out: l("Xd"),
		Classes: l("mul"), Tags: inst.Mul | inst.MulAcc, Example: "msub x1, x2, x3, x4"},
	{Name: "umulh", Pattern: "umulh <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("mul", "mulh"), Tags: inst.Mul, Example: "umulh x1, x2, x3"},
	{Name: "smulh", Pattern: "smulh <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("mul", "mulh"), Tags: inst.Mul, Example: "smulh x1, x2, x3"},

	{Name: "and", Pattern: "and <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Logic, Example: "and x1, x2, x3"},
	{Name: "and_imm", Pattern: "and <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Logic, Example: "and x1, x2, #0xff"},
	{Name: "orr", Pattern: "orr <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Logic, Example: "orr x1, x2, x3"},
	{Name: "eor", Pattern: "eor <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Logic, Example: "eor x1, x2, x3"},
	{Name: "bic", Pattern: "bic <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Logic, Example: "bic x1, x2, x3"},
	{Name: "eor_shift", Pattern: "eor <Xd>, <Xa>, <Xb>, <barrel> <imm>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu_shift"), Tags: inst.Logic | inst.Shift, Example: "eor x1, x2, x3, ror #7"},
	{Name: "orr_shift", Pattern: "orr <Xd>, <Xa>, <Xb>, <barrel> <imm>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu_shift"), Tags: inst.Logic | inst.Shift, Example: "orr x1, x2, x3, lsl #32"},
	{Name: "bic_shift", Pattern: "bic <Xd>, <Xa>, <Xb>, <barrel> <imm>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu_shift"), Tags: inst.Logic | inst.Shift, Example: "bic x1, x2, x3, lsr #1"},

	{Name: "lsl", Pattern: "lsl <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "lsl x1, x2, #3"},
	{Name: "lsr", Pattern: "lsr <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "lsr x1, x2, #3"},
	{Name: "asr", Pattern: "asr <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "asr x1, x2, #63"},
	{Name: "ror", Pattern: "ror <Xd>, <Xa>, <imm>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "ror x1, x2, #14"},
	{Name: "lsl_reg", Pattern: "lsl <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "lsl x1, x2, x3"},
	{Name: "lsr_reg", Pattern: "lsr <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "lsr x1, x2, x3"},
	{Name: "asr_reg", Pattern: "asr <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "asr x1, x2, x3"},
	{Name: "ror_reg", Pattern: "ror <Xd>, <Xa>, <Xb>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "ror x1, x2, x3"},
	{Name: "extr", Pattern: "extr <Xd>, <Xa>, <Xb>, <imm>", In: l("Xa", "Xb"), Out: l("Xd"),
		Classes: l("alu_shift"), Tags: inst.Shift, Example: "extr x1, x2, x3, #52"},

	{Name: "mov", Pattern: "mov <Xd>, <Xa>", In: l("Xa"), Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Move, Example: "mov x1, x2"},
	{Name: "mov_imm", Pattern: "mov <Xd>, <imm>", Out: l("Xd"),
		Classes: l("alu"), Tags: inst.Move, Example: "mov x1, #-1"},
	{Name: "movk", Pattern: "movk <Xd>, <imm0>, lsl <imm1>", InOut: l("Xd"),
		Classes: l("alu"), Tags: inst.Move, Example: "movk x1, #0x1234, lsl #16"},
}
