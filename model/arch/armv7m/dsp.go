package armv7m

import (
	"github.com/slowlang/sloth/model/inst"
)

// rrrr is a multiply with an accumulator operand read from <Rc>.
func rrrr(name, mnemonic, example string, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: mnemonic + " <Rd>, <Ra>, <Rb>, <Rc>", In: l("Ra", "Rb", "Rc"), Out: l("Rd"),
		Classes: classes, Tags: inst.Mul | inst.MulAcc, Example: example}
}

// long multiplies write a register pair, the accumulating ones read it too.
func long(name, mnemonic, example string, acc bool) *inst.Variant {
	v := &inst.Variant{Name: name, Pattern: mnemonic + " <Rd>, <Re>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd", "Re"),
		Classes: l("mul", "mul_long"), Tags: inst.Mul | inst.Pair, Example: example}

	if acc {
		v.Out, v.InOut = nil, l("Rd", "Re")
		v.Tags |= inst.MulAcc
	}

	return v
}

var dsp = []*inst.Variant{
	{Name: "mul", Pattern: "mul <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("mul"), Tags: inst.Mul, FusionCB: fuseMulAdd, Example: "mul r1, r2, r3"},
	rrrr("mla", "mla", "mla r1, r2, r3, r4", "mul"),
	rrrr("mls", "mls", "mls r1, r2, r3, r4", "mul"),

	long("smull", "smull", "smull r1, r2, r3, r4", false),
	long("umull", "umull", "umull r1, r2, r3, r4", false),
	long("smlal", "smlal", "smlal r1, r2, r3, r4", true),
	long("umlal", "umlal", "umlal r1, r2, r3, r4", true),
	long("umaal", "umaal", "umaal r1, r2, r3, r4", true),

	rrr("smulbb", "smulbb", "smulbb r1, r2, r3", inst.Mul, "mul", "mul_half"),
	rrr("smulbt", "smulbt", "smulbt r1, r2, r3", inst.Mul, "mul", "mul_half"),
	rrr("smultb", "smultb", "smultb r1, r2, r3", inst.Mul, "mul", "mul_half"),
	rrr("smultt", "smultt", "smultt r1, r2, r3", inst.Mul, "mul", "mul_half"),
	rrr("smulwb", "smulwb", "smulwb r1, r2, r3", inst.Mul, "mul", "mul_half"),
	rrr("smulwt", "smulwt", "smulwt r1, r2, r3", inst.Mul, "mul", "mul_half"),
	rrrr("smlabb", "smlabb", "smlabb r1, r2, r3, r4", "mul", "mul_half"),
	rrrr("smlabt", "smlabt", "smlabt r1, r2, r3, r4", "mul", "mul_half"),
	rrrr("smlatb", "smlatb", "smlatb r1, r2, r3, r4", "mul", "mul_half"),
	rrrr("smlatt", "smlatt", "smlatt r1, r2, r3, r4", "mul", "mul_half"),

	rrr("smuad", "smuad", "smuad r1, r2, r3", inst.Mul, "mul", "mul_dual"),
	rrr("smuadx", "smuadx", "smuadx r1, r2, r3", inst.Mul, "mul", "mul_dual"),
	rrr("smusd", "smusd", "smusd r1, r2, r3", inst.Mul, "mul", "mul_dual"),
	rrr("smusdx", "smusdx", "smusdx r1, r2, r3", inst.Mul, "mul", "mul_dual"),
	rrrr("smlad", "smlad", "smlad r1, r2, r3, r4", "mul", "mul_dual"),
	rrrr("smladx", "smladx", "smladx r1, r2, r3, r4", "mul", "mul_dual"),
	rrrr("smlsd", "smlsd", "smlsd r1, r2, r3, r4", "mul", "mul_dual"),

	rrr("smmul", "smmul", "smmul r1, r2, r3", inst.Mul, "mul", "mul_high"),
	rrr("smmulr", "smmulr", "smmulr r1, r2, r3", inst.Mul, "mul", "mul_high"),
	rrrr("smmla", "smmla", "smmla r1, r2, r3, r4", "mul", "mul_high"),
	rrrr("smmlar", "smmlar", "smmlar r1, r2, r3, r4", "mul", "mul_high"),
	rrrr("smmls", "smmls", "smmls r1, r2, r3, r4", "mul", "mul_high"),
	rrrr("smmlsr", "smmlsr", "smmlsr r1, r2, r3, r4", "mul", "mul_high"),

	{Name: "pkhbt", Pattern: "pkhbt <Rd>, <Ra>, <Rb>, lsl <imm>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("alu_shift", "pkh"), Tags: inst.Shift, Example: "pkhbt r1, r2, r3, lsl #16"},
	{Name: "pkhbt_plain", Pattern: "pkhbt <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("alu", "pkh"), Example: "pkhbt r1, r2, r3"},
	{Name: "pkhtb", Pattern: "pkhtb <Rd>, <Ra>, <Rb>, asr <imm>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("alu_shift", "pkh"), Tags: inst.Shift, Example: "pkhtb r1, r2, r3, asr #16"},

	// parallel halfword arithmetic sets the GE bits
	{Name: "sadd16", Pattern: "sadd16 <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"), ImplicitOut: flags,
		Classes: l("alu", "simd"), Tags: inst.Arith, Example: "sadd16 r1, r2, r3"},
	{Name: "ssub16", Pattern: "ssub16 <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"), ImplicitOut: flags,
		Classes: l("alu", "simd"), Tags: inst.Arith, Example: "ssub16 r1, r2, r3"},
	{Name: "uadd16", Pattern: "uadd16 <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"), ImplicitOut: flags,
		Classes: l("alu", "simd"), Tags: inst.Arith, Example: "uadd16 r1, r2, r3"},
	{Name: "usub16", Pattern: "usub16 <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"), ImplicitOut: flags,
		Classes: l("alu", "simd"), Tags: inst.Arith, Example: "usub16 r1, r2, r3"},
	rrr("shadd16", "shadd16", "shadd16 r1, r2, r3", inst.Arith, "alu", "simd"),
	rrr("shsub16", "shsub16", "shsub16 r1, r2, r3", inst.Arith, "alu", "simd"),
	rrr("qadd16", "qadd16", "qadd16 r1, r2, r3", inst.Arith, "alu", "simd"),
	rrr("qsub16", "qsub16", "qsub16 r1, r2, r3", inst.Arith, "alu", "simd"),
}
