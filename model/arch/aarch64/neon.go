package aarch64

import (
	"github.com/slowlang/sloth/model/inst"
)

const (
	vvv  = "<Vd>.<dt0>, <Va>.<dt1>, <Vb>.<dt2>"
	vvvl = "<Vd>.<dt0>, <Va>.<dt1>, <Vb>.<dt2>[<index>]"
	vvi  = "<Vd>.<dt0>, <Va>.<dt1>, <imm>"
)

// vec builds a three-operand vector variant. acc marks the destination as accumulated into.
func vec(name, mnemonic, form, example string, class string, tags inst.Tag, acc bool) *inst.Variant {
	v := &inst.Variant{
		Name:    name,
		Pattern: mnemonic + " " + form,
		In:      l("Va", "Vb"),
		Out:     l("Vd"),
		Classes: l(class),
		Tags:    tags | inst.Vector,
		Example: example,
	}

	if form == vvi {
		v.In = l("Va")
	}

	if acc {
		v.Out, v.InOut = nil, l("Vd")
		v.Tags |= inst.MulAcc
	}

	if form == vvvl {
		v.Tags |= inst.Lane
	}

	return v
}

var neon = []*inst.Variant{
	vec("vadd", "add", vvv, "add v0.4s, v1.4s, v2.4s", "vec_alu", inst.Arith, false),
	vec("vsub", "sub", vvv, "sub v0.8h, v1.8h, v2.8h", "vec_alu", inst.Arith, false),
	vec("vmul", "mul", vvv, "mul v0.4s, v1.4s, v2.4s", "vec_mul", inst.Mul, false),
	vec("vmul_lane", "mul", vvvl, "mul v0.8h, v1.8h, v2.h[3]", "vec_mul", inst.Mul, false),
	vec("vmla", "mla", vvv, "mla v0.4s, v1.4s, v2.4s", "vec_mul", inst.Mul, true),
	vec("vmla_lane", "mla", vvvl, "mla v0.4s, v1.4s, v2.s[1]", "vec_mul", inst.Mul, true),
	vec("vmls", "mls", vvv, "mls v0.4s, v1.4s, v2.4s", "vec_mul", inst.Mul, true),
	vec("vmls_lane", "mls", vvvl, "mls v0.8h, v1.8h, v2.h[0]", "vec_mul", inst.Mul, true),
	vec("vsqrdmulh", "sqrdmulh", vvv, "sqrdmulh v0.8h, v1.8h, v2.8h", "vec_mul", inst.Mul, false),
	vec("vsqrdmulh_lane", "sqrdmulh", vvvl, "sqrdmulh v0.8h, v1.8h, v2.h[1]", "vec_mul", inst.Mul, false),
	vec("vsqdmulh", "sqdmulh", vvv, "sqdmulh v0.4s, v1.4s, v2.4s", "vec_mul", inst.Mul, false),
	vec("vsqdmulh_lane", "sqdmulh", vvvl, "sqdmulh v0.4s, v1.4s, v2.s[2]", "vec_mul", inst.Mul, false),
	vec("vumull", "umull", vvv, "umull v0.2d, v1.2s, v2.2s", "vec_mul", inst.Mul, false),
	vec("vumull2", "umull2", vvv, "umull2 v0.2d, v1.4s, v2.4s", "vec_mul", inst.Mul, false),
	vec("vumlal", "umlal", vvv, "umlal v0.2d, v1.2s, v2.2s", "vec_mul", inst.Mul, true),
	vec("vumlal2", "umlal2", vvv, "umlal2 v0.2d, v1.4s, v2.4s", "vec_mul", inst.Mul, true),
	vec("vsmull", "smull", vvv, "smull v0.4s, v1.4h, v2.4h", "vec_mul", inst.Mul, false),
	vec("vsmlal", "smlal", vvv, "smlal v0.4s, v1.4h, v2.4h", "vec_mul", inst.Mul, true),

	vec("vuzp1", "uzp1", vvv, "uzp1 v0.4s, v1.4s, v2.4s", "vec_perm", 0, false),
	vec("vuzp2", "uzp2", vvv, "uzp2 v0.4s, v1.4s, v2.4s", "vec_perm", 0, false),
	vec("vzip1", "zip1", vvv, "zip1 v0.2d, v1.2d, v2.2d", "vec_perm", 0, false),
	vec("vzip2", "zip2", vvv, "zip2 v0.2d, v1.2d, v2.2d", "vec_perm", 0, false),
	vec("vtrn1", "trn1", vvv, "trn1 v0.4s, v1.4s, v2.4s", "vec_perm", 0, false),
	vec("vtrn2", "trn2", vvv, "trn2 v0.4s, v1.4s, v2.4s", "vec_perm", 0, false),

	vec("veor", "eor", vvv, "eor v0.16b, v1.16b, v2.16b", "vec_alu", inst.Logic, false),
	vec("vand", "and", vvv, "and v0.16b, v1.16b, v2.16b", "vec_alu", inst.Logic, false),
	vec("vorr", "orr", vvv, "orr v0.16b, v1.16b, v2.16b", "vec_alu", inst.Logic, false),
	vec("vbic", "bic", vvv, "bic v0.16b, v1.16b, v2.16b", "vec_alu", inst.Logic, false),

	vec("vshl", "shl", vvi, "shl v0.4s, v1.4s, #3", "vec_shift", inst.Shift, false),
	vec("vushr", "ushr", vvi, "ushr v0.2d, v1.2d, #32", "vec_shift", inst.Shift, false),
	vec("vsshr", "sshr", vvi, "sshr v0.8h, v1.8h, #15", "vec_shift", inst.Shift, false),
	vec("vsli", "sli", vvi, "sli v0.2d, v1.2d, #32", "vec_shift", inst.Shift, true),
	vec("vsri", "sri", vvi, "sri v0.4s, v1.4s, #25", "vec_shift", inst.Shift, true),
	vec("vusra", "usra", vvi, "usra v0.2d, v1.2d, #26", "vec_shift", inst.Shift, true),

	{Name: "vext", Pattern: "ext <Vd>.<dt0>, <Va>.<dt1>, <Vb>.<dt2>, <imm>", In: l("Va", "Vb"), Out: l("Vd"),
		Classes: l("vec_perm"), Tags: inst.Vector, Example: "ext v0.16b, v1.16b, v2.16b, #8"},
	{Name: "vmov", Pattern: "mov <Vd>.<dt0>, <Va>.<dt1>", In: l("Va"), Out: l("Vd"),
		Classes: l("vec_alu"), Tags: inst.Vector | inst.Move, Example: "mov v0.16b, v1.16b"},
	{Name: "vdup", Pattern: "dup <Vd>.<dt>, <Xa>", In: l("Xa"), Out: l("Vd"),
		Classes: l("vec_ins"), Tags: inst.Vector | inst.Move, Example: "dup v0.2d, x1"},
	{Name: "vdup_lane", Pattern: "dup <Vd>.<dt0>, <Va>.<dt1>[<index>]", In: l("Va"), Out: l("Vd"),
		Classes: l("vec_perm"), Tags: inst.Vector | inst.Lane, Example: "dup v0.4s, v1.s[2]"},
	{Name: "vins_d", Pattern: "ins <Vd>.d[<index>], <Xa>", In: l("Xa"), InOut: l("Vd"),
		Classes: l("vec_ins", "vins"), Tags: inst.Vector | inst.Lane, ParsingCB: insPair, Example: "ins v0.d[1], x1"},
	{Name: "vins_d_force_output", Pattern: "ins <Vd>.d[<index>], <Xa>", In: l("Xa"), Out: l("Vd"),
		Classes: l("vec_ins", "vins"), Tags: inst.Vector | inst.Lane, Internal: true, Example: "ins v0.d[0], x1"},
	{Name: "vumov", Pattern: "umov <Xd>, <Va>.d[<index>]", In: l("Va"), Out: l("Xd"),
		Classes: l("vec_ext"), Tags: inst.Vector | inst.Lane, Example: "umov x1, v0.d[1]"},
	{Name: "vmov_to_x", Pattern: "mov <Xd>, <Va>.d[<index>]", In: l("Va"), Out: l("Xd"),
		Classes: l("vec_ext"), Tags: inst.Vector | inst.Lane, Example: "mov x1, v0.d[0]"},
	{Name: "fmov_d", Pattern: "fmov <Dd>, <Xa>", In: l("Xa"), Out: l("Dd"),
		Classes: l("vec_ins"), Tags: inst.Vector | inst.Move, Example: "fmov d0, x1"},

	{Name: "aese", Pattern: "aese <Vd>.16b, <Va>.16b", In: l("Va"), InOut: l("Vd"),
		Classes: l("aes"), Tags: inst.Vector | inst.Crypto, Example: "aese v0.16b, v1.16b"},
	{Name: "aesmc", Pattern: "aesmc <Vd>.16b, <Va>.16b", In: l("Va"), Out: l("Vd"),
		Classes: l("aes"), Tags: inst.Vector | inst.Crypto, Example: "aesmc v0.16b, v0.16b"},
	{Name: "eor3", Pattern: "eor3 <Vd>.16b, <Va>.16b, <Vb>.16b, <Vc>.16b", In: l("Va", "Vb", "Vc"), Out: l("Vd"),
		Classes: l("vec_alu"), Tags: inst.Vector | inst.Logic | inst.Crypto, Example: "eor3 v0.16b, v1.16b, v2.16b, v3.16b"},
}
