package armv7m

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

var _ = Describe("Arch", func() {
	It("should parse every example as its own variant", func() {
		for _, v := range Arch.Variants {
			i, err := Arch.ParseText(v.Example)
			Expect(err).NotTo(HaveOccurred(), v.Name)
			Expect(i.V.Name).To(Equal(v.Name), v.Example)

			out, err := Arch.Write(i)
			Expect(err).NotTo(HaveOccurred(), v.Name)
			Expect(out).To(Equal(v.Example))
		}
	})

	It("should map every register back to its type", func() {
		for _, tp := range Regs.Types() {
			for _, name := range Regs.List(tp, reg.WithAliases) {
				got, ok := Regs.FindType(name)
				Expect(ok).To(BeTrue(), name)
				Expect(got).To(Equal(tp), name)
			}
		}
	})

	It("should resolve aliases", func() {
		i := mustParse("add r13, lr, r2")
		Expect(i.Args[inst.Out]).To(Equal([]string{"sp"}))
		Expect(i.Args[inst.In]).To(Equal([]string{"r14", "r2"}))

		Expect(Regs.Allocatable(reg.GPR)).To(ContainElement("r14"))
		Expect(Regs.Allocatable(reg.GPR)).NotTo(ContainElement("sp"))
	})

	It("should treat long multiply accumulators as read and written", func() {
		i := mustParse("smlal lo, hi, a, b")
		Expect(i.Args[inst.InOut]).To(Equal([]string{"lo", "hi"}))
		Expect(i.Args[inst.In]).To(Equal([]string{"a", "b"}))

		i = mustParse("umull lo, hi, a, b")
		Expect(i.Args[inst.Out]).To(Equal([]string{"lo", "hi"}))
	})

	It("should spill to floating point registers", func() {
		i := mustParse("vmov s7, r3")
		Expect(i.Types[inst.Out]).To(Equal([]reg.Type{reg.Vector}))
		Expect(i.Is("spill")).To(BeTrue())

		_, err := Arch.ParseText("vmov r2, r3, s4, s6")
		Expect(err).To(MatchError(inst.ErrNoMatch))
	})

	It("should keep flags out of renaming", func() {
		i := mustParse("subs cnt, cnt, #1")
		Expect(i.Args[inst.Out]).To(Equal([]string{"cnt", "flags"}))

		r := Arch.Rename(i, map[string]string{"cnt": "r12", "flags": "r0"})
		Expect(r.Args[inst.Out]).To(Equal([]string{"r12", "flags"}))
	})
})

var _ = Describe("register operands", func() {
	DescribeTable("should keep registers out of immediate fields",
		func(text, variant string, in []string) {
			i := mustParse(text)
			Expect(i.V.Name).To(Equal(variant))
			Expect(i.Args[inst.In]).To(Equal(in))
			Expect(i.Fields).NotTo(ContainElement(HavePrefix("r")))
		},
		Entry("load", "ldr r1, [r0, r2]", "ldr_reg", []string{"r0", "r2"}),
		Entry("halfword load", "ldrh r1, [r0, r2]", "ldrh_reg", []string{"r0", "r2"}),
		Entry("store", "str r1, [r0, r2]", "str_reg", []string{"r1", "r0", "r2"}),
		Entry("halfword store", "strh r1, [r0, r2]", "strh_reg", []string{"r1", "r0", "r2"}),
		Entry("shift", "lsl r1, r2, r3", "lsl_reg", []string{"r2", "r3"}),
		Entry("rotate", "ror r1, r2, r3", "ror_reg", []string{"r2", "r3"}),
		Entry("symbolic index", "ldr r1, [r0, idx]", "ldr_reg", []string{"r0", "idx"}),
		Entry("immediate", "ldr r1, [r0, #8]", "ldr_imm", []string{"r0"}),
	)

	It("should reject registers in immediate variants", func() {
		for v, text := range map[string]string{
			"ldr_imm":  "ldr r1, [r0, r2]",
			"strh_imm": "strh r1, [r0, lr]",
			"lsl":      "lsl r1, r2, r3",
			"add_imm":  "add r0, r0, r1",
		} {
			_, err := Arch.MakeText(v, text)
			Expect(err).To(MatchError(inst.ErrNoMatch), v)
			Expect(inst.IsFatal(err)).To(BeFalse(), v)
		}
	})

	It("should rename the index register", func() {
		i := Arch.Rename(mustParse("str r1, [r0, r2]"), map[string]string{"r2": "r5"})

		out, err := Arch.Write(i)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("str r1, [r0, r5]"))
	})

	It("should account indexed accesses to base and index", func() {
		tr, err := Arch.Footprint([]*inst.Inst{
			mustParse("ldrh r1, [r0, r2]"),
			mustParse("add r2, r2, #2"),
			mustParse("ldrh r3, [r0, r2]"),
		}, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(tr.Accesses).To(Equal([]inst.Access{
			{Base: "r0+r2", Offset: 0, Size: 2, Reg: "r1"},
			{Base: "r0+r2", Offset: 2, Size: 2, Reg: "r3"},
		}))
	})
})
