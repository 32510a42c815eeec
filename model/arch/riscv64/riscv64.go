// Package riscv64 models the RV64IMB integer subset with Zba address
// generation and a small part of the vector extension.
//
// ABI names are canonical. Numeric x names are aliases.
package riscv64

import (
	"fmt"

	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/pattern"
	"github.com/slowlang/sloth/model/reg"
)

var abi = []string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

var Regs = reg.NewFile(
	[]string{"zero", "ra", "sp", "gp", "tp", "vl"},
	reg.Class{Type: reg.GPR, Normal: abi[1:], Extra: abi[:1], Aliases: gprAliases()},
	reg.Class{Type: reg.Vector, Normal: reg.Seq("v", 0, 31)},
	reg.Class{Type: reg.StackGPR, Normal: reg.Seq("stack", 0, 7)},
	reg.Class{Type: reg.Special, Extra: []string{"vl"}},
	reg.Class{Type: reg.Hint, Prefix: inst.HintPrefix},
)

var Syntax = &pattern.Syntax{
	Name: "riscv64",
	Registers: map[string]string{
		"X": `x\d+|zero|ra|sp|gp|tp|fp|t[0-6]|s\d+|a[0-7]`,
		"V": `v\d+`,
		"S": `stack\d+`,
	},
	Datatype: `e?(?:8|16|32|64)`,
}

var Arch = inst.NewArch(&inst.Arch{
	Name:     "riscv64",
	Regs:     Regs,
	Syntax:   Syntax,
	Comments: []string{"#"},
	Prefixes: map[string]reg.Type{
		"X": reg.GPR,
		"V": reg.Vector,
		"S": reg.StackGPR,
	},
	Variants: variants(),
})

func variants() (vs []*inst.Variant) {
	vs = append(vs, scalar...)
	vs = append(vs, memory...)
	vs = append(vs, vector...)

	return vs
}

func gprAliases() map[string]string {
	m := map[string]string{"fp": "s0"}

	for i, n := range abi {
		m[fmt.Sprintf("x%d", i)] = n
	}

	return m
}

func l(s ...string) []string { return s }
