package armv81m

import (
	"github.com/slowlang/sloth/model/inst"
)

// vv is a lane-wise operation of two vectors, vr takes a scalar second operand.
func vv(mnemonic, example string, tags inst.Tag, classes ...string) *inst.Variant {
	return &inst.Variant{Name: mnemonic + "_vv", Pattern: mnemonic + ".<dt> <Qd>, <Qa>, <Qb>", In: l("Qa", "Qb"), Out: l("Qd"),
		Classes: classes, Tags: tags | inst.Vector, Example: example}
}

func vr(mnemonic, example string, tags inst.Tag, classes ...string) *inst.Variant {
	return &inst.Variant{Name: mnemonic + "_vr", Pattern: mnemonic + ".<dt> <Qd>, <Qa>, <Rb>", In: l("Qa", "Rb"), Out: l("Qd"),
		Classes: classes, Tags: tags | inst.Vector, Example: example}
}

func acc(v *inst.Variant) *inst.Variant {
	v.Out, v.InOut = nil, l("Qd")
	v.Tags |= inst.MulAcc

	return v
}

func bitwise(mnemonic, example string) *inst.Variant {
	return &inst.Variant{Name: mnemonic, Pattern: mnemonic + " <Qd>, <Qa>, <Qb>", In: l("Qa", "Qb"), Out: l("Qd"),
		Classes: l("vec_alu", "vec_logic"), Tags: inst.Vector | inst.Logic, Example: example}
}

var mve = []*inst.Variant{
	vv("vadd", "vadd.i32 q0, q1, q2", inst.Arith, "vec_alu", "vadd"),
	vr("vadd", "vadd.i32 q0, q1, r2", inst.Arith, "vec_alu", "vadd"),
	vv("vsub", "vsub.i16 q0, q1, q2", inst.Arith, "vec_alu", "vsub"),
	vr("vsub", "vsub.i16 q0, q1, r2", inst.Arith, "vec_alu", "vsub"),
	vv("vhadd", "vhadd.s32 q0, q1, q2", inst.Arith, "vec_alu"),
	vv("vhsub", "vhsub.s32 q0, q1, q2", inst.Arith, "vec_alu"),

	vv("vmul", "vmul.i32 q0, q1, q2", inst.Mul, "vec_mul", "vmul"),
	vr("vmul", "vmul.u32 q0, q1, r2", inst.Mul, "vec_mul", "vmul"),
	vv("vmulh", "vmulh.s32 q0, q1, q2", inst.Mul, "vec_mul"),
	vv("vrmulh", "vrmulh.s32 q0, q1, q2", inst.Mul, "vec_mul"),
	vv("vqrdmulh", "vqrdmulh.s16 q0, q1, q2", inst.Mul, "vec_mul", "vqrdmulh"),
	vr("vqrdmulh", "vqrdmulh.s16 q0, q1, r2", inst.Mul, "vec_mul", "vqrdmulh"),
	vv("vqdmulh", "vqdmulh.s32 q0, q1, q2", inst.Mul, "vec_mul", "vqdmulh"),
	vr("vqdmulh", "vqdmulh.s32 q0, q1, r2", inst.Mul, "vec_mul", "vqdmulh"),
	acc(vr("vmla", "vmla.s32 q0, q1, r2", inst.Mul, "vec_mul", "vmla")),
	acc(vr("vqdmlah", "vqdmlah.s32 q0, q1, r2", inst.Mul, "vec_mul", "vmla")),
	acc(vr("vqrdmlah", "vqrdmlah.s16 q0, q1, r2", inst.Mul, "vec_mul", "vmla")),

	bitwise("vand", "vand q0, q1, q2"),
	bitwise("veor", "veor q0, q1, q2"),
	bitwise("vorr", "vorr q0, q1, q2"),
	bitwise("vbic", "vbic q0, q1, q2"),

	{Name: "vshr", Pattern: "vshr.<dt> <Qd>, <Qa>, <imm>", In: l("Qa"), Out: l("Qd"),
		Classes: l("vec_alu", "vec_shift"), Tags: inst.Vector | inst.Shift, Example: "vshr.s32 q0, q1, #16"},
	{Name: "vshl", Pattern: "vshl.<dt> <Qd>, <Qa>, <imm>", In: l("Qa"), Out: l("Qd"),
		Classes: l("vec_alu", "vec_shift"), Tags: inst.Vector | inst.Shift, Example: "vshl.u32 q0, q1, #3"},
	{Name: "vsli", Pattern: "vsli.<dt> <Qd>, <Qa>, <imm>", In: l("Qa"), InOut: l("Qd"),
		Classes: l("vec_alu", "vec_shift"), Tags: inst.Vector | inst.Shift, Example: "vsli.32 q0, q1, #16"},
	{Name: "vshlc", Pattern: "vshlc <Qd>, <Ra>, <imm>", InOut: l("Qd", "Ra"),
		Classes: l("vec_alu", "vec_shift"), Tags: inst.Vector | inst.Shift, Example: "vshlc q0, r1, #32"},
	{Name: "vmov", Pattern: "vmov <Qd>, <Qa>", In: l("Qa"), Out: l("Qd"),
		Classes: l("vec_alu"), Tags: inst.Vector | inst.Move, Example: "vmov q0, q1"},
	{Name: "vdup", Pattern: "vdup.<dt> <Qd>, <Ra>", In: l("Ra"), Out: l("Qd"),
		Classes: l("vec_alu"), Tags: inst.Vector | inst.Move, Example: "vdup.32 q0, r1"},
	{Name: "vrev", Pattern: "vrev64.<dt> <Qd>, <Qa>", In: l("Qa"), Out: l("Qd"),
		Classes: l("vec_alu"), Tags: inst.Vector, Example: "vrev64.32 q0, q1"},
}
