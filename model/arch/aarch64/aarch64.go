// Package aarch64 models the Armv8-A integer and Neon instruction subset
// used in hand-optimized cryptographic and DSP kernels.
package aarch64

import (
	"fmt"
	"strings"

	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/pattern"
	"github.com/slowlang/sloth/model/reg"
)

var Regs = reg.NewFile(
	[]string{"sp", "xzr", "x18", "x29", "x30", "flags"},
	reg.Class{Type: reg.GPR, Normal: reg.Seq("x", 0, 30), Extra: []string{"sp", "xzr"}, Aliases: gprAliases()},
	reg.Class{Type: reg.Vector, Normal: reg.Seq("v", 0, 31), Aliases: vecAliases()},
	reg.Class{Type: reg.StackGPR, Normal: reg.Seq("stack", 0, 7)},
	reg.Class{Type: reg.StackVector, Normal: reg.Seq("vstack", 0, 7)},
	reg.Class{Type: reg.Flags, Extra: []string{"flags"}},
	reg.Class{Type: reg.Hint, Prefix: inst.HintPrefix},
)

var Syntax = &pattern.Syntax{
	Name: "aarch64",
	Registers: map[string]string{
		"X": `x\d+|sp|xzr`,
		"W": `w\d+|wsp|wzr`,
		"V": `v\d+`,
		"Q": `q\d+`,
		"D": `d\d+`,
		"S": `stack\d+`,
		"T": `vstack\d+`,
	},
	ImmPrefix: "#",
	Datatype:  `\d*[bhsdq]`,
	Flag:      `eq|ne|cs|hs|cc|lo|mi|pl|vs|vc|hi|ls|ge|lt|gt|le|al`,
	Barrel:    `lsl|lsr|asr|ror`,
}

var Arch = inst.NewArch(&inst.Arch{
	Name:     "aarch64",
	Regs:     Regs,
	Syntax:   Syntax,
	Comments: []string{"//"},
	Prefixes: map[string]reg.Type{
		"X": reg.GPR,
		"W": reg.GPR,
		"V": reg.Vector,
		"Q": reg.Vector,
		"D": reg.Vector,
		"S": reg.StackGPR,
		"T": reg.StackVector,
	},
	Render:   render,
	Variants: variants(),
})

func variants() (vs []*inst.Variant) {
	vs = append(vs, scalar...)
	vs = append(vs, memory...)
	vs = append(vs, neon...)

	return vs
}

func gprAliases() map[string]string {
	m := map[string]string{"wsp": "sp", "wzr": "xzr"}

	for i := 0; i <= 30; i++ {
		m[fmt.Sprintf("w%d", i)] = fmt.Sprintf("x%d", i)
	}

	return m
}

func vecAliases() map[string]string {
	m := map[string]string{}

	for i := 0; i <= 31; i++ {
		m[fmt.Sprintf("q%d", i)] = fmt.Sprintf("v%d", i)
		m[fmt.Sprintf("d%d", i)] = fmt.Sprintf("v%d", i)
	}

	return m
}

func render(prefix, name string) string {
	switch prefix {
	case "W":
		switch name {
		case "sp":
			return "wsp"
		case "xzr":
			return "wzr"
		}

		return "w" + strings.TrimPrefix(name, "x")
	case "Q":
		return "q" + strings.TrimPrefix(name, "v")
	case "D":
		return "d" + strings.TrimPrefix(name, "v")
	}

	return name
}

// consecutive returns register tuples of n consecutive vector registers.
func consecutive(n int) (r [][]string) {
	for i := 0; i+n <= 32; i++ {
		r = append(r, reg.Seq("v", i, i+n-1))
	}

	return r
}

func l(s ...string) []string { return s }
