package armv81m

import (
	"github.com/slowlang/sloth/model/inst"
)

func mem(store bool, data ...string) *inst.MemSpec {
	return &inst.MemSpec{Store: store, Base: "Rc", Data: data, Size: 16}
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

// interleaved is one quarter of a vld4/vst4 quartet. Every quarter
// touches the whole 64 byte block.
func interleaved(store, wb bool) *inst.MemSpec {
	m := mem(store, "Qa", "Qb", "Qc", "Qd")
	m.Span = 64
	m.Block = wb

	return m
}

var quad = []inst.Combination{{Fields: l("Qa", "Qb", "Qc", "Qd"), Tuples: quads()}}

func vld4(n int, wb bool) *inst.Variant {
	v := &inst.Variant{
		Name:         name("vld4%d", n),
		Pattern:      name("vld4%d.<dt> {<Qa>, <Qb>, <Qc>, <Qd>}, [<Rc>]", n),
		In:           l("Rc"),
		InOut:        l("Qa", "Qb", "Qc", "Qd"),
		Classes:      l("vld4", "vldr"),
		Tags:         inst.Load | inst.Vector,
		Mem:          interleaved(false, wb),
		Combinations: quad,
		Example:      name("vld4%d.32 {q0, q1, q2, q3}, [r0]", n),
	}

	if n == 0 {
		v.ParsingCB = quartet
	}

	if wb {
		v.Name += "_wb"
		v.Pattern += "!"
		v.Example += "!"
		v.In, v.InOut = nil, append(v.InOut, "Rc")
		v.Tags |= inst.Writeback
	}

	return v
}

func vst4(n int, wb bool) *inst.Variant {
	v := &inst.Variant{
		Name:         name("vst4%d", n),
		Pattern:      name("vst4%d.<dt> {<Qa>, <Qb>, <Qc>, <Qd>}, [<Rc>]", n),
		In:           l("Qa", "Qb", "Qc", "Qd", "Rc"),
		Classes:      l("vst4", "vstr"),
		Tags:         inst.Store | inst.Vector,
		Mem:          interleaved(true, wb),
		Combinations: quad,
		Example:      name("vst4%d.32 {q4, q5, q6, q7}, [r1]", n),
	}

	if wb {
		v.Name += "_wb"
		v.Pattern += "!"
		v.Example += "!"
		v.In, v.InOut = l("Qa", "Qb", "Qc", "Qd"), l("Rc")
		v.Tags |= inst.Writeback
	}

	return v
}

var memory = []*inst.Variant{
	{Name: "restore_q", Pattern: "vldrw.<dt> <Qd>, [sp, #<Ua>]", In: l("Ua"), Out: l("Qd"),
		Classes: l("vldr", "restore"), Tags: inst.Load | inst.Vector | inst.Pseudo, Check: stackSlot, Example: "vldrw.u32 q2, [sp, #qstack1]"},
	{Name: "spill_q", Pattern: "vstrw.<dt> <Qa>, [sp, #<Ud>]", In: l("Qa"), Out: l("Ud"),
		Classes: l("vstr", "spill"), Tags: inst.Store | inst.Vector | inst.Pseudo, Check: stackSlot, Example: "vstrw.u32 q2, [sp, #qstack1]"},

	{Name: "vldrw", Pattern: "vldrw.<dt> <Qd>, [<Rc>]", In: l("Rc"), Out: l("Qd"),
		Classes: l("vldr"), Tags: inst.Load | inst.Vector, Mem: mem(false, "Qd"), Example: "vldrw.u32 q0, [r0]"},
	{Name: "vldrw_imm", Pattern: "vldrw.<dt> <Qd>, [<Rc>, <imm>]", In: l("Rc"), Out: l("Qd"),
		Classes: l("vldr"), Tags: inst.Load | inst.Vector, Mem: offset(mem(false, "Qd")), Example: "vldrw.u32 q0, [r0, #16]"},
	{Name: "vldrw_pre", Pattern: "vldrw.<dt> <Qd>, [<Rc>, <imm>]!", InOut: l("Rc"), Out: l("Qd"),
		Classes: l("vldr"), Tags: inst.Load | inst.Vector | inst.Writeback, Mem: pre(mem(false, "Qd")), Example: "vldrw.u32 q0, [r0, #16]!"},
	{Name: "vldrw_post", Pattern: "vldrw.<dt> <Qd>, [<Rc>], <imm>", InOut: l("Rc"), Out: l("Qd"),
		Classes: l("vldr"), Tags: inst.Load | inst.Vector | inst.Writeback, Mem: post(mem(false, "Qd")), FusionCB: splitPost, Example: "vldrw.u32 q0, [r0], #16"},

	{Name: "vstrw", Pattern: "vstrw.<dt> <Qa>, [<Rc>]", In: l("Qa", "Rc"),
		Classes: l("vstr"), Tags: inst.Store | inst.Vector, Mem: mem(true, "Qa"), Example: "vstrw.u32 q0, [r1]"},
	{Name: "vstrw_imm", Pattern: "vstrw.<dt> <Qa>, [<Rc>, <imm>]", In: l("Qa", "Rc"),
		Classes: l("vstr"), Tags: inst.Store | inst.Vector, Mem: offset(mem(true, "Qa")), Example: "vstrw.u32 q0, [r1, #-16]"},
	{Name: "vstrw_pre", Pattern: "vstrw.<dt> <Qa>, [<Rc>, <imm>]!", In: l("Qa"), InOut: l("Rc"),
		Classes: l("vstr"), Tags: inst.Store | inst.Vector | inst.Writeback, Mem: pre(mem(true, "Qa")), Example: "vstrw.u32 q0, [r1, #16]!"},
	{Name: "vstrw_post", Pattern: "vstrw.<dt> <Qa>, [<Rc>], <imm>", In: l("Qa"), InOut: l("Rc"),
		Classes: l("vstr"), Tags: inst.Store | inst.Vector | inst.Writeback, Mem: post(mem(true, "Qa")), FusionCB: splitPost, Example: "vstrw.u32 q0, [r1], #16"},

	vld4(0, false),
	vld4(1, false),
	vld4(2, false),
	vld4(3, false),
	vld4(3, true),

	// vld40 whose lanes are all overwritten by the rest of the quartet.
	{Name: "vld40_force_output", Pattern: "vld40.<dt> {<Qa>, <Qb>, <Qc>, <Qd>}, [<Rc>]", In: l("Rc"), Out: l("Qa", "Qb", "Qc", "Qd"),
		Classes: l("vld4", "vldr"), Tags: inst.Load | inst.Vector, Mem: interleaved(false, false), Combinations: quad,
		Internal: true, Example: "vld40.32 {q0, q1, q2, q3}, [r0]"},

	vst4(0, false),
	vst4(1, false),
	vst4(2, false),
	vst4(3, false),
	vst4(3, true),
}
