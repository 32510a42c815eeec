package aarch64

import (
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

func load(size int, data ...string) *inst.MemSpec {
	return &inst.MemSpec{Base: "Xc", Data: data, Size: size}
}

func store(size int, data ...string) *inst.MemSpec {
	return &inst.MemSpec{Store: true, Base: "Xc", Data: data, Size: size}
}

func offset(m *inst.MemSpec) *inst.MemSpec {
	m.Offset = "imm"
	return m
}

func pre(m *inst.MemSpec) *inst.MemSpec {
	m.Offset = "imm"
	m.Pre = true
	return m
}

func post(m *inst.MemSpec) *inst.MemSpec {
	m.Post = "imm"
	return m
}

func indexed(m *inst.MemSpec) *inst.MemSpec {
	m.Index = "Xb"
	return m
}

var stackSlot = inst.StackSlot(reg.StackGPR, reg.StackVector)

func span(m *inst.MemSpec, n int) *inst.MemSpec {
	m.Span = n
	return m
}

var memory = []*inst.Variant{
	// stack slots are registers of their own class, spills move between classes
	{Name: "restore_x", Pattern: "ldr <Xd>, [sp, #<Sa>]", In: l("Sa"), Out: l("Xd"),
		Classes: l("ldr_x", "restore"), Tags: inst.Load | inst.Pseudo, Check: stackSlot, Example: "ldr x3, [sp, #stack2]"},
	{Name: "spill_x", Pattern: "str <Xa>, [sp, #<Sd>]", In: l("Xa"), Out: l("Sd"),
		Classes: l("str_x", "spill"), Tags: inst.Store | inst.Pseudo, Check: stackSlot, Example: "str x3, [sp, #stack2]"},
	{Name: "restore_q", Pattern: "ldr <Qd>, [sp, #<Ta>]", In: l("Ta"), Out: l("Qd"),
		Classes: l("ldr_q", "restore"), Tags: inst.Load | inst.Vector | inst.Pseudo, Check: stackSlot, Example: "ldr q3, [sp, #vstack1]"},
	{Name: "spill_q", Pattern: "str <Qa>, [sp, #<Td>]", In: l("Qa"), Out: l("Td"),
		Classes: l("str_q", "spill"), Tags: inst.Store | inst.Vector | inst.Pseudo, Check: stackSlot, Example: "str q3, [sp, #vstack1]"},

	{Name: "ldr", Pattern: "ldr <Xd>, [<Xc>]", In: l("Xc"), Out: l("Xd"),
		Classes: l("ldr_x"), Tags: inst.Load, Mem: load(8, "Xd"), FusionCB: fuseLoadPair, Example: "ldr x1, [x0]"},
	{Name: "ldr_imm", Pattern: "ldr <Xd>, [<Xc>, <imm>]", In: l("Xc"), Out: l("Xd"),
		Classes: l("ldr_x"), Tags: inst.Load, Mem: offset(load(8, "Xd")), FusionCB: fuseLoadPair, Example: "ldr x1, [x0, #8]"},
	{Name: "ldr_reg", Pattern: "ldr <Xd>, [<Xc>, <Xb>]", In: l("Xc", "Xb"), Out: l("Xd"),
		Classes: l("ldr_x"), Tags: inst.Load, Mem: indexed(load(8, "Xd")), Example: "ldr x1, [x0, x2]"},
	{Name: "ldr_pre", Pattern: "ldr <Xd>, [<Xc>, <imm>]!", InOut: l("Xc"), Out: l("Xd"),
		Classes: l("ldr_x"), Tags: inst.Load | inst.Writeback, Mem: pre(load(8, "Xd")), Example: "ldr x1, [x0, #16]!"},
	{Name: "ldr_post", Pattern: "ldr <Xd>, [<Xc>], <imm>", InOut: l("Xc"), Out: l("Xd"),
		Classes: l("ldr_x"), Tags: inst.Load | inst.Writeback, Mem: post(load(8, "Xd")), FusionCB: splitPost, Example: "ldr x1, [x0], #8"},
	{Name: "str", Pattern: "str <Xa>, [<Xc>]", In: l("Xa", "Xc"),
		Classes: l("str_x"), Tags: inst.Store, Mem: store(8, "Xa"), Example: "str x1, [x0]"},
	{Name: "str_imm", Pattern: "str <Xa>, [<Xc>, <imm>]", In: l("Xa", "Xc"),
		Classes: l("str_x"), Tags: inst.Store, Mem: offset(store(8, "Xa")), Example: "str x1, [x0, #24]"},
	{Name: "str_reg", Pattern: "str <Xa>, [<Xc>, <Xb>]", In: l("Xa", "Xc", "Xb"),
		Classes: l("str_x"), Tags: inst.Store, Mem: indexed(store(8, "Xa")), Example: "str x1, [x0, x2]"},
	{Name: "str_pre", Pattern: "str <Xa>, [<Xc>, <imm>]!", In: l("Xa"), InOut: l("Xc"),
		Classes: l("str_x"), Tags: inst.Store | inst.Writeback, Mem: pre(store(8, "Xa")), Example: "str x1, [x0, #-16]!"},
	{Name: "str_post", Pattern: "str <Xa>, [<Xc>], <imm>", In: l("Xa"), InOut: l("Xc"),
		Classes: l("str_x"), Tags: inst.Store | inst.Writeback, Mem: post(store(8, "Xa")), FusionCB: splitPost, Example: "str x1, [x0], #8"},

	{Name: "ldp", Pattern: "ldp <Xd>, <Xe>, [<Xc>]", In: l("Xc"), Out: l("Xd", "Xe"),
		Classes: l("ldr_x", "ldp_x"), Tags: inst.Load | inst.Pair, Mem: load(8, "Xd", "Xe"), Example: "ldp x1, x2, [x0]"},
	{Name: "ldp_imm", Pattern: "ldp <Xd>, <Xe>, [<Xc>, <imm>]", In: l("Xc"), Out: l("Xd", "Xe"),
		Classes: l("ldr_x", "ldp_x"), Tags: inst.Load | inst.Pair, Mem: offset(load(8, "Xd", "Xe")), Example: "ldp x1, x2, [x0, #16]"},
	{Name: "ldp_post", Pattern: "ldp <Xd>, <Xe>, [<Xc>], <imm>", InOut: l("Xc"), Out: l("Xd", "Xe"),
		Classes: l("ldr_x", "ldp_x"), Tags: inst.Load | inst.Pair | inst.Writeback, Mem: post(load(8, "Xd", "Xe")), FusionCB: splitPairPost, Example: "ldp x1, x2, [x0], #16"},
	{Name: "stp", Pattern: "stp <Xa>, <Xb>, [<Xc>]", In: l("Xa", "Xb", "Xc"),
		Classes: l("str_x", "stp_x"), Tags: inst.Store | inst.Pair, Mem: store(8, "Xa", "Xb"), Example: "stp x1, x2, [x0]"},
	{Name: "stp_imm", Pattern: "stp <Xa>, <Xb>, [<Xc>, <imm>]", In: l("Xa", "Xb", "Xc"),
		Classes: l("str_x", "stp_x"), Tags: inst.Store | inst.Pair, Mem: offset(store(8, "Xa", "Xb")), Example: "stp x1, x2, [x0, #32]"},
	{Name: "stp_post", Pattern: "stp <Xa>, <Xb>, [<Xc>], <imm>", In: l("Xa", "Xb"), InOut: l("Xc"),
		Classes: l("str_x", "stp_x"), Tags: inst.Store | inst.Pair | inst.Writeback, Mem: post(store(8, "Xa", "Xb")), FusionCB: splitPairPost, Example: "stp x1, x2, [x0], #16"},

	{Name: "ldr_q", Pattern: "ldr <Qd>, [<Xc>]", In: l("Xc"), Out: l("Qd"),
		Classes: l("ldr_q"), Tags: inst.Load | inst.Vector, Mem: load(16, "Qd"), Example: "ldr q0, [x1]"},
	{Name: "ldr_q_imm", Pattern: "ldr <Qd>, [<Xc>, <imm>]", In: l("Xc"), Out: l("Qd"),
		Classes: l("ldr_q"), Tags: inst.Load | inst.Vector, Mem: offset(load(16, "Qd")), Example: "ldr q0, [x1, #32]"},
	{Name: "ldr_q_post", Pattern: "ldr <Qd>, [<Xc>], <imm>", InOut: l("Xc"), Out: l("Qd"),
		Classes: l("ldr_q"), Tags: inst.Load | inst.Vector | inst.Writeback, Mem: post(load(16, "Qd")), FusionCB: splitPost, Example: "ldr q0, [x1], #16"},
	{Name: "str_q", Pattern: "str <Qa>, [<Xc>]", In: l("Qa", "Xc"),
		Classes: l("str_q"), Tags: inst.Store | inst.Vector, Mem: store(16, "Qa"), Example: "str q0, [x1]"},
	{Name: "str_q_imm", Pattern: "str <Qa>, [<Xc>, <imm>]", In: l("Qa", "Xc"),
		Classes: l("str_q"), Tags: inst.Store | inst.Vector, Mem: offset(store(16, "Qa")), Example: "str q0, [x1, #-16]"},
	{Name: "str_q_post", Pattern: "str <Qa>, [<Xc>], <imm>", In: l("Qa"), InOut: l("Xc"),
		Classes: l("str_q"), Tags: inst.Store | inst.Vector | inst.Writeback, Mem: post(store(16, "Qa")), FusionCB: splitPost, Example: "str q0, [x1], #16"},
	{Name: "ldr_d_imm", Pattern: "ldr <Dd>, [<Xc>, <imm>]", In: l("Xc"), Out: l("Dd"),
		Classes: l("ldr_q"), Tags: inst.Load | inst.Vector, Mem: offset(load(8, "Dd")), Example: "ldr d2, [x1, #8]"},
	{Name: "str_d_imm", Pattern: "str <Da>, [<Xc>, <imm>]", In: l("Da", "Xc"),
		Classes: l("str_q"), Tags: inst.Store | inst.Vector, Mem: offset(store(8, "Da")), Example: "str d2, [x1, #8]"},
	{Name: "ldp_q_imm", Pattern: "ldp <Qd>, <Qe>, [<Xc>, <imm>]", In: l("Xc"), Out: l("Qd", "Qe"),
		Classes: l("ldr_q", "ldp_q"), Tags: inst.Load | inst.Vector | inst.Pair, Mem: offset(load(16, "Qd", "Qe")), Example: "ldp q0, q1, [x2, #32]"},
	{Name: "stp_q_imm", Pattern: "stp <Qa>, <Qb>, [<Xc>, <imm>]", In: l("Qa", "Qb", "Xc"),
		Classes: l("str_q", "stp_q"), Tags: inst.Store | inst.Vector | inst.Pair, Mem: offset(store(16, "Qa", "Qb")), Example: "stp q0, q1, [x2, #32]"},

	{Name: "ld1", Pattern: "ld1 {<Va>.<dt>}, [<Xc>]", In: l("Xc"), Out: l("Va"),
		Classes: l("ldr_q"), Tags: inst.Load | inst.Vector, Mem: load(16, "Va"), Example: "ld1 {v0.4s}, [x0]"},
	{Name: "ld2", Pattern: "ld2 {<Va>.<dt0>, <Vb>.<dt1>}, [<Xc>]", In: l("Xc"), Out: l("Va", "Vb"),
		Classes: l("ld_struct"), Tags: inst.Load | inst.Vector, Mem: span(load(16, "Va", "Vb"), 32),
		Combinations: []inst.Combination{{Fields: l("Va", "Vb"), Tuples: consecutive(2)}}, Example: "ld2 {v0.4s, v1.4s}, [x0]"},
	{Name: "ld4", Pattern: "ld4 {<Va>.<dt0>, <Vb>.<dt1>, <Vc>.<dt2>, <Vd>.<dt3>}, [<Xc>]", In: l("Xc"), Out: l("Va", "Vb", "Vc", "Vd"),
		Classes: l("ld_struct"), Tags: inst.Load | inst.Vector, Mem: span(load(16, "Va", "Vb", "Vc", "Vd"), 64),
		Combinations: []inst.Combination{{Fields: l("Va", "Vb", "Vc", "Vd"), Tuples: consecutive(4)}}, Example: "ld4 {v0.4s, v1.4s, v2.4s, v3.4s}, [x0]"},
	{Name: "ld4_post", Pattern: "ld4 {<Va>.<dt0>, <Vb>.<dt1>, <Vc>.<dt2>, <Vd>.<dt3>}, [<Xc>], <imm>", InOut: l("Xc"), Out: l("Va", "Vb", "Vc", "Vd"),
		Classes: l("ld_struct"), Tags: inst.Load | inst.Vector | inst.Writeback, Mem: span(post(load(16, "Va", "Vb", "Vc", "Vd")), 64),
		Combinations: []inst.Combination{{Fields: l("Va", "Vb", "Vc", "Vd"), Tuples: consecutive(4)}}, Example: "ld4 {v4.8h, v5.8h, v6.8h, v7.8h}, [x0], #64"},
	{Name: "st1", Pattern: "st1 {<Va>.<dt>}, [<Xc>]", In: l("Va", "Xc"),
		Classes: l("str_q"), Tags: inst.Store | inst.Vector, Mem: store(16, "Va"), Example: "st1 {v0.4s}, [x0]"},
	{Name: "st4", Pattern: "st4 {<Va>.<dt0>, <Vb>.<dt1>, <Vc>.<dt2>, <Vd>.<dt3>}, [<Xc>]", In: l("Va", "Vb", "Vc", "Vd", "Xc"),
		Classes: l("st_struct"), Tags: inst.Store | inst.Vector, Mem: span(store(16, "Va", "Vb", "Vc", "Vd"), 64),
		Combinations: []inst.Combination{{Fields: l("Va", "Vb", "Vc", "Vd"), Tuples: consecutive(4)}}, Example: "st4 {v0.4s, v1.4s, v2.4s, v3.4s}, [x0]"},
	{Name: "st4_post", Pattern: "st4 {<Va>.<dt0>, <Vb>.<dt1>, <Vc>.<dt2>, <Vd>.<dt3>}, [<Xc>], <imm>", In: l("Va", "Vb", "Vc", "Vd"), InOut: l("Xc"),
		Classes: l("st_struct"), Tags: inst.Store | inst.Vector | inst.Writeback, Mem: span(post(store(16, "Va", "Vb", "Vc", "Vd")), 64),
		Combinations: []inst.Combination{{Fields: l("Va", "Vb", "Vc", "Vd"), Tuples: consecutive(4)}}, Example: "st4 {v0.4s, v1.4s, v2.4s, v3.4s}, [x0], #64"},
}
