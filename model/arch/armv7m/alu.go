package armv7m

import (
	"github.com/slowlang/sloth/model/inst"
)

var flags = l("flags")

func rrr(name, mnemonic, example string, tags inst.Tag, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: mnemonic + " <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: classes, Tags: tags, Example: example}
}

func rri(name, mnemonic, example string, tags inst.Tag, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: mnemonic + " <Rd>, <Ra>, <imm>", In: l("Ra"), Out: l("Rd"),
		Classes: classes, Tags: tags, Example: example}
}

func rrs(name, mnemonic, example string, tags inst.Tag, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: mnemonic + " <Rd>, <Ra>, <Rb>, <barrel> <imm>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: classes, Tags: tags | inst.Shift, Example: example}
}

var alu = []*inst.Variant{
	rrr("add", "add", "add r1, r2, r3", inst.Arith, "alu"),
	{Name: "add_short", Pattern: "add <Rd>, <Ra>", In: l("Ra"), InOut: l("Rd"),
		Classes: l("alu"), Tags: inst.Arith, Example: "add r1, r2"},
	withAdd(rri("add_imm", "add", "add r0, r0, #16", inst.Arith, "alu"), false),
	rrs("add_shift", "add", "add r1, r2, r3, lsl #2", inst.Arith, "alu_shift"),
	rrr("sub", "sub", "sub r1, r2, r3", inst.Arith, "alu"),
	withAdd(rri("sub_imm", "sub", "sub r0, r0, #32", inst.Arith, "alu"), true),
	rrs("sub_shift", "sub", "sub r1, r2, r3, asr #16", inst.Arith, "alu_shift"),
	{Name: "subs_imm", Pattern: "subs <Rd>, <Ra>, <imm>", In: l("Ra"), Out: l("Rd"), ImplicitOut: flags,
		Classes: l("alu"), Tags: inst.Arith, Example: "subs r12, r12, #1"},
	{Name: "cmp", Pattern: "cmp <Ra>, <Rb>", In: l("Ra", "Rb"), ImplicitOut: flags,
		Classes: l("alu"), Tags: inst.Compare, Example: "cmp r1, r2"},
	{Name: "cmp_imm", Pattern: "cmp <Ra>, <imm>", In: l("Ra"), ImplicitOut: flags,
		Classes: l("alu"), Tags: inst.Compare, Example: "cmp r1, #0"},
	rrr("rsb", "rsb", "rsb r1, r2, r3", inst.Arith, "alu"),

	rrr("and", "and", "and r1, r2, r3", inst.Logic, "alu"),
	rri("and_imm", "and", "and r1, r2, #0xfff", inst.Logic, "alu"),
	rrr("orr", "orr", "orr r1, r2, r3", inst.Logic, "alu"),
	rrr("eor", "eor", "eor r1, r2, r3", inst.Logic, "alu"),
	rri("eor_imm", "eor", "eor r1, r2, #1", inst.Logic, "alu"),
	rrr("bic", "bic", "bic r1, r2, r3", inst.Logic, "alu"),
	rrs("eor_shift", "eor", "eor r1, r2, r3, ror #25", inst.Logic, "alu_shift"),
	rrs("orr_shift", "orr", "orr r1, r2, r3, lsl #16", inst.Logic, "alu_shift"),
	rrs("bic_shift", "bic", "bic r1, r2, r3, lsr #8", inst.Logic, "alu_shift"),

	rri("lsl", "lsl", "lsl r1, r2, #3", inst.Shift, "alu"),
	rri("lsr", "lsr", "lsr r1, r2, #16", inst.Shift, "alu"),
	rri("asr", "asr", "asr r1, r2, #16", inst.Shift, "alu"),
	rri("ror", "ror", "ror r1, r2, #7", inst.Shift, "alu"),
	rrr("lsl_reg", "lsl", "lsl r1, r2, r3", inst.Shift, "alu"),
	rrr("lsr_reg", "lsr", "lsr r1, r2, r3", inst.Shift, "alu"),
	rrr("asr_reg", "asr", "asr r1, r2, r3", inst.Shift, "alu"),
	rrr("ror_reg", "ror", "ror r1, r2, r3", inst.Shift, "alu"),

	{Name: "ubfx", Pattern: "ubfx <Rd>, <Ra>, <imm0>, <imm1>", In: l("Ra"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "ubfx r1, r2, #0, #12"},
	{Name: "sbfx", Pattern: "sbfx <Rd>, <Ra>, <imm0>, <imm1>", In: l("Ra"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "sbfx r1, r2, #16, #16"},

	{Name: "mov", Pattern: "mov <Rd>, <Ra>", In: l("Ra"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Move, Example: "mov r1, r2"},
	{Name: "mov_imm", Pattern: "mov <Rd>, <imm>", Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Move, Example: "mov r1, #3329"},
	{Name: "movw", Pattern: "movw <Rd>, <imm>", Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Move, Example: "movw r1, #0xd01"},
	{Name: "movt", Pattern: "movt <Rd>, <imm>", InOut: l("Rd"),
		Classes: l("alu"), Tags: inst.Move, Example: "movt r1, #0x1"},

	// FPv4 registers serve as spill space for general purpose registers
	{Name: "vmov_to_s", Pattern: "vmov <Sd>, <Ra>", In: l("Ra"), Out: l("Sd"),
		Classes: l("vmov", "spill"), Tags: inst.Move | inst.Vector, Example: "vmov s1, r2"},
	{Name: "vmov_from_s", Pattern: "vmov <Rd>, <Sa>", In: l("Sa"), Out: l("Rd"),
		Classes: l("vmov", "restore"), Tags: inst.Move | inst.Vector, Example: "vmov r2, s1"},
	{Name: "vmov_pair_from_s", Pattern: "vmov <Rd>, <Re>, <Sa>, <Sb>", In: l("Sa", "Sb"), Out: l("Rd", "Re"),
		Classes: l("vmov", "restore"), Tags: inst.Move | inst.Vector | inst.Pair, Check: consecutiveS, Example: "vmov r2, r3, s4, s5"},
}

func withAdd(v *inst.Variant, neg bool) *inst.Variant {
	v.AddImm = &inst.AddSpec{Dst: "Rd", Src: "Ra", Imm: "imm", Neg: neg}
	return v
}
