package armv81m

import (
	"github.com/slowlang/sloth/model/inst"
)

var flags = l("flags")

var scalar = []*inst.Variant{
	{Name: "add", Pattern: "add <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Arith, Example: "add r1, r2, r3"},
	{Name: "add_imm", Pattern: "add <Rd>, <Ra>, <imm>", In: l("Ra"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Arith, AddImm: &inst.AddSpec{Dst: "Rd", Src: "Ra", Imm: "imm"}, Example: "add r0, r0, #64"},
	{Name: "sub", Pattern: "sub <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Arith, Example: "sub r1, r2, r3"},
	{Name: "sub_imm", Pattern: "sub <Rd>, <Ra>, <imm>", In: l("Ra"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Arith, AddImm: &inst.AddSpec{Dst: "Rd", Src: "Ra", Imm: "imm", Neg: true}, Example: "sub r0, r0, #64"},
	{Name: "subs_imm", Pattern: "subs <Rd>, <Ra>, <imm>", In: l("Ra"), Out: l("Rd"), ImplicitOut: flags,
		Classes: l("alu"), Tags: inst.Arith, Example: "subs r12, r12, #1"},
	{Name: "mov", Pattern: "mov <Rd>, <Ra>", In: l("Ra"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Move, Example: "mov r1, r2"},
	{Name: "mov_imm", Pattern: "mov <Rd>, <imm>", Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Move, Example: "mov r1, #17"},
	{Name: "movw", Pattern: "movw <Rd>, <imm>", Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Move, Example: "movw r1, #0xd01"},
	{Name: "movt", Pattern: "movt <Rd>, <imm>", InOut: l("Rd"),
		Classes: l("alu"), Tags: inst.Move, Example: "movt r1, #0x1"},
	{Name: "mul", Pattern: "mul <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("mul"), Tags: inst.Mul, Example: "mul r1, r2, r3"},
	{Name: "eor", Pattern: "eor <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Logic, Example: "eor r1, r2, r3"},
	{Name: "lsl", Pattern: "lsl <Rd>, <Ra>, <imm>", In: l("Ra"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "lsl r1, r2, #2"},
	{Name: "lsl_reg", Pattern: "lsl <Rd>, <Ra>, <Rb>", In: l("Ra", "Rb"), Out: l("Rd"),
		Classes: l("alu"), Tags: inst.Shift, Example: "lsl r1, r2, r3"},

	{Name: "restore", Pattern: "ldr <Rd>, [sp, #<Ta>]", In: l("Ta"), Out: l("Rd"),
		Classes: l("ldr", "restore"), Tags: inst.Load | inst.Pseudo, Check: stackSlot, Example: "ldr r1, [sp, #stack3]"},
	{Name: "spill", Pattern: "str <Ra>, [sp, #<Td>]", In: l("Ra"), Out: l("Td"),
		Classes: l("str", "spill"), Tags: inst.Store | inst.Pseudo, Check: stackSlot, Example: "str r1, [sp, #stack3]"},
	{Name: "ldr_imm", Pattern: "ldr <Rd>, [<Rc>, <imm>]", In: l("Rc"), Out: l("Rd"),
		Classes: l("ldr"), Tags: inst.Load, Mem: &inst.MemSpec{Base: "Rc", Offset: "imm", Data: l("Rd"), Size: 4}, Example: "ldr r1, [r0, #4]"},
	{Name: "str_imm", Pattern: "str <Ra>, [<Rc>, <imm>]", In: l("Ra", "Rc"),
		Classes: l("str"), Tags: inst.Store, Mem: &inst.MemSpec{Store: true, Base: "Rc", Offset: "imm", Data: l("Ra"), Size: 4}, Example: "str r1, [r0, #4]"},
}
