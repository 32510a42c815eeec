// Package armv7m models the Armv7-M (Thumb-2 with DSP and FPv4) subset
// used by Cortex-M4 and Cortex-M7 kernels.
package armv7m

import (
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/pattern"
	"github.com/slowlang/sloth/model/reg"
)

var Regs = reg.NewFile(
	[]string{"sp", "flags"},
	reg.Class{Type: reg.GPR, Normal: append(reg.Seq("r", 0, 12), "r14"), Extra: []string{"sp"},
		Aliases: map[string]string{"r13": "sp", "lr": "r14"}},
	reg.Class{Type: reg.Vector, Normal: reg.Seq("s", 0, 31)},
	reg.Class{Type: reg.StackGPR, Normal: reg.Seq("stack", 0, 15)},
	reg.Class{Type: reg.Flags, Extra: []string{"flags"}},
	reg.Class{Type: reg.Hint, Prefix: inst.HintPrefix},
)

var Syntax = &pattern.Syntax{
	Name: "armv7m",
	Registers: map[string]string{
		"R": `r\d+|sp|lr`,
		"S": `s\d+`,
		"T": `stack\d+`,
	},
	ImmPrefix: "#",
	Flag:      `eq|ne|cs|hs|cc|lo|mi|pl|vs|vc|hi|ls|ge|lt|gt|le|al`,
	Barrel:    `lsl|lsr|asr|ror`,
}

var Arch = inst.NewArch(&inst.Arch{
	Name:     "armv7m",
	Regs:     Regs,
	Syntax:   Syntax,
	Comments: []string{"//"},
	Prefixes: map[string]reg.Type{
		"R": reg.GPR,
		"S": reg.Vector,
		"T": reg.StackGPR,
	},
	Variants: variants(),
})

func variants() (vs []*inst.Variant) {
	vs = append(vs, alu...)
	vs = append(vs, dsp...)
	vs = append(vs, memory...)

	return vs
}

func l(s ...string) []string { return s }
