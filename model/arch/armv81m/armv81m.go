// Package armv81m models the Armv8.1-M Helium (MVE) subset used by
// Cortex-M55 and Cortex-M85 kernels, with the scalar instructions
// loop bodies need around it.
package armv81m

import (
	"fmt"

	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/pattern"
	"github.com/slowlang/sloth/model/reg"
)

var Regs = reg.NewFile(
	[]string{"sp", "flags"},
	reg.Class{Type: reg.GPR, Normal: append(reg.Seq("r", 0, 12), "r14"), Extra: []string{"sp"},
		Aliases: map[string]string{"r13": "sp", "lr": "r14"}},
	reg.Class{Type: reg.Vector, Normal: reg.Seq("q", 0, 7)},
	reg.Class{Type: reg.StackGPR, Normal: reg.Seq("stack", 0, 15)},
	reg.Class{Type: reg.StackVector, Normal: reg.Seq("qstack", 0, 7)},
	reg.Class{Type: reg.Flags, Extra: []string{"flags"}},
	reg.Class{Type: reg.Hint, Prefix: inst.HintPrefix},
)

var Syntax = &pattern.Syntax{
	Name: "armv81m",
	Registers: map[string]string{
		"R": `r\d+|sp|lr`,
		"Q": `q\d+`,
		"T": `stack\d+`,
		"U": `qstack\d+`,
	},
	ImmPrefix: "#",
	Datatype:  `[suifp]?(?:8|16|32|64)`,
	Flag:      `eq|ne|cs|hs|cc|lo|mi|pl|vs|vc|hi|ls|ge|lt|gt|le|al`,
	Barrel:    `lsl|lsr|asr|ror`,
}

var Arch = inst.NewArch(&inst.Arch{
	Name:     "armv81m",
	Regs:     Regs,
	Syntax:   Syntax,
	Comments: []string{"//"},
	Prefixes: map[string]reg.Type{
		"R": reg.GPR,
		"Q": reg.Vector,
		"T": reg.StackGPR,
		"U": reg.StackVector,
	},
	Variants: variants(),
})

func variants() (vs []*inst.Variant) {
	vs = append(vs, scalar...)
	vs = append(vs, mve...)
	vs = append(vs, memory...)

	return vs
}

// quads returns tuples of four consecutive q registers.
func quads() (r [][]string) {
	for i := 0; i+4 <= 8; i++ {
		r = append(r, reg.Seq("q", i, i+3))
	}

	return r
}

func l(s ...string) []string { return s }

func name(f string, args ...interface{}) string { return fmt.Sprintf(f, args...) }
