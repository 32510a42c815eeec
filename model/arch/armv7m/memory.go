package armv7m

import (
	"github.com/slowlang/sloth/model/inst"
)

func mem(store bool, size int, data ...string) *inst.MemSpec {
	return &inst.MemSpec{Store: store, Base: "Rc", Data: data, Size: size}
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
	m.Index = "Rb"
	return m
}

func block(m *inst.MemSpec) *inst.MemSpec {
	m.Block = true
	return m
}

var memory = []*inst.Variant{
	{Name: "restore", Pattern: "ldr <Rd>, [sp, #<Ta>]", In: l("Ta"), Out: l("Rd"),
		Classes: l("ldr", "restore"), Tags: inst.Load | inst.Pseudo, Check: stackSlot, Example: "ldr r1, [sp, #stack3]"},
	{Name: "spill", Pattern: "str <Ra>, [sp, #<Td>]", In: l("Ra"), Out: l("Td"),
		Classes: l("str", "spill"), Tags: inst.Store | inst.Pseudo, Check: stackSlot, Example: "str r1, [sp, #stack3]"},

	{Name: "ldr", Pattern: "ldr <Rd>, [<Rc>]", In: l("Rc"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load, Mem: mem(false, 4, "Rd"), Example: "ldr r1, [r0]"},
	{Name: "ldr_imm", Pattern: "ldr <Rd>, [<Rc>, <imm>]", In: l("Rc"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load, Mem: offset(mem(false, 4, "Rd")), Example: "ldr r1, [r0, #4]"},
	{Name: "ldr_reg", Pattern: "ldr <Rd>, [<Rc>, <Rb>]", In: l("Rc", "Rb"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load, Mem: indexed(mem(false, 4, "Rd")), Example: "ldr r1, [r0, r2]"},
	{Name: "ldr_pre", Pattern: "ldr <Rd>, [<Rc>, <imm>]!", InOut: l("Rc"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load | inst.Writeback, Mem: pre(mem(false, 4, "Rd")), Example: "ldr r1, [r0, #4]!"},
	{Name: "ldr_post", Pattern: "ldr <Rd>, [<Rc>], <imm>", InOut: l("Rc"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load | inst.Writeback, Mem: post(mem(false, 4, "Rd")), FusionCB: splitPost, Example: "ldr r1, [r0], #4"},
	{Name: "ldrh_imm", Pattern: "ldrh <Rd>, [<Rc>, <imm>]", In: l("Rc"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load, Mem: offset(mem(false, 2, "Rd")), Example: "ldrh r1, [r0, #2]"},
	{Name: "ldrh_reg", Pattern: "ldrh <Rd>, [<Rc>, <Rb>]", In: l("Rc", "Rb"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load, Mem: indexed(mem(false, 2, "Rd")), Example: "ldrh r1, [r0, r2]"},
	{Name: "ldrsh_imm", Pattern: "ldrsh <Rd>, [<Rc>, <imm>]", In: l("Rc"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load, Mem: offset(mem(false, 2, "Rd")), Example: "ldrsh r1, [r0, #2]"},
	{Name: "ldrb_imm", Pattern: "ldrb <Rd>, [<Rc>, <imm>]", In: l("Rc"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load, Mem: offset(mem(false, 1, "Rd")), Example: "ldrb r1, [r0, #1]"},
	{Name: "ldrd_imm", Pattern: "ldrd <Rd>, <Re>, [<Rc>, <imm>]", In: l("Rc"), Out: l("Rd", "Re"),
		Classes: l("ldr", "ldrd"), Tags: inst.Load | inst.Pair, Mem: offset(mem(false, 4, "Rd", "Re")), Example: "ldrd r1, r2, [r0, #8]"},

	{Name: "str", Pattern: "str <Ra>, [<Rc>]", In: l("Ra", "Rc"),
		Classes: l("str"), Tags: inst.Store, Mem: mem(true, 4, "Ra"), Example: "str r1, [r0]"},
	{Name: "str_imm", Pattern: "str <Ra>, [<Rc>, <imm>]", In: l("Ra", "Rc"),
		Classes: l("str"), Tags: inst.Store, Mem: offset(mem(true, 4, "Ra")), Example: "str r1, [r0, #4]"},
	{Name: "str_reg", Pattern: "str <Ra>, [<Rc>, <Rb>]", In: l("Ra", "Rc", "Rb"),
		Classes: l("str"), Tags: inst.Store, Mem: indexed(mem(true, 4, "Ra")), Example: "str r1, [r0, r2]"},
	{Name: "str_post", Pattern: "str <Ra>, [<Rc>], <imm>", In: l("Ra"), InOut: l("Rc"),
		Classes: l("str"), Tags: inst.Store | inst.Writeback, Mem: post(mem(true, 4, "Ra")), FusionCB: splitPost, Example: "str r1, [r0], #4"},
	{Name: "strh_imm", Pattern: "strh <Ra>, [<Rc>, <imm>]", In: l("Ra", "Rc"),
		Classes: l("str"), Tags: inst.Store, Mem: offset(mem(true, 2, "Ra")), Example: "strh r1, [r0, #2]"},
	{Name: "strh", Pattern: "strh <Ra>, [<Rc>]", In: l("Ra", "Rc"),
		Classes: l("str"), Tags: inst.Store, Mem: mem(true, 2, "Ra"), Example: "strh r1, [r0]"},
	{Name: "strh_reg", Pattern: "strh <Ra>, [<Rc>, <Rb>]", In: l("Ra", "Rc", "Rb"),
		Classes: l("str"), Tags: inst.Store, Mem: indexed(mem(true, 2, "Ra")), Example: "strh r1, [r0, r2]"},
	{Name: "strh_post", Pattern: "strh <Ra>, [<Rc>], <imm>", In: l("Ra"), InOut: l("Rc"),
		Classes: l("str"), Tags: inst.Store | inst.Writeback, Mem: post(mem(true, 2, "Ra")), FusionCB: splitPost, Example: "strh r1, [r0], #2"},
	{Name: "strd_imm", Pattern: "strd <Ra>, <Rb>, [<Rc>, <imm>]", In: l("Ra", "Rb", "Rc"),
		Classes: l("str", "strd"), Tags: inst.Store | inst.Pair, Mem: offset(mem(true, 4, "Ra", "Rb")), Example: "strd r1, r2, [r0, #8]"},

	{Name: "ldm2", Pattern: "ldm <Rc>, {<Rd>, <Re>}", In: l("Rc"), Out: l("Rd", "Re"),
		Classes: l("ldm"), Tags: inst.Load, Mem: mem(false, 4, "Rd", "Re"), Check: ascending,
		FusionCB: splitBlock, Example: "ldm r0, {r1, r2}"},
	{Name: "ldm2_wb", Pattern: "ldm <Rc>!, {<Rd>, <Re>}", InOut: l("Rc"), Out: l("Rd", "Re"),
		Classes: l("ldm"), Tags: inst.Load | inst.Writeback, Mem: block(mem(false, 4, "Rd", "Re")), Check: ascending,
		FusionCB: splitBlock, Example: "ldm r0!, {r1, r2}"},
	{Name: "ldm4", Pattern: "ldm <Rc>, {<Rd>, <Re>, <Rf>, <Rg>}", In: l("Rc"), Out: l("Rd", "Re", "Rf", "Rg"),
		Classes: l("ldm"), Tags: inst.Load, Mem: mem(false, 4, "Rd", "Re", "Rf", "Rg"), Check: ascending,
		FusionCB: splitBlock, Example: "ldm r0, {r1, r2, r3, r4}"},
	{Name: "ldm4_wb", Pattern: "ldm <Rc>!, {<Rd>, <Re>, <Rf>, <Rg>}", InOut: l("Rc"), Out: l("Rd", "Re", "Rf", "Rg"),
		Classes: l("ldm"), Tags: inst.Load | inst.Writeback, Mem: block(mem(false, 4, "Rd", "Re", "Rf", "Rg")), Check: ascending,
		FusionCB: splitBlock, Example: "ldm r0!, {r1, r2, r3, r4}"},
	{Name: "stm2_wb", Pattern: "stm <Rc>!, {<Ra>, <Rb>}", In: l("Ra", "Rb"), InOut: l("Rc"),
		Classes: l("stm"), Tags: inst.Store | inst.Writeback, Mem: block(mem(true, 4, "Ra", "Rb")), Check: ascending,
		FusionCB: splitBlock, Example: "stm r0!, {r1, r2}"},
	{Name: "stm4_wb", Pattern: "stm <Rc>!, {<Ra>, <Rb>, <Re>, <Rf>}", In: l("Ra", "Rb", "Re", "Rf"), InOut: l("Rc"),
		Classes: l("stm"), Tags: inst.Store | inst.Writeback, Mem: block(mem(true, 4, "Ra", "Rb", "Re", "Rf")), Check: ascending,
		FusionCB: splitBlock, Example: "stm r0!, {r1, r2, r3, r4}"},
}
