package armv7m

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/slowlang/sloth/model/inst"
)

func mustParse(text string) *inst.Inst {
	i, err := Arch.ParseText(text)
	Expect(err).NotTo(HaveOccurred(), text)

	return i
}

func texts(is []*inst.Inst) (r []string) {
	for _, i := range is {
		s, err := Arch.Write(i)
		Expect(err).NotTo(HaveOccurred())

		r = append(r, s)
	}

	return r
}

var _ = Describe("Callbacks", func() {
	var (
		mockCtrl *gomock.Controller
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	node := func(text string) *MockNode {
		n := NewMockNode(mockCtrl)
		n.EXPECT().Inst().Return(mustParse(text)).AnyTimes()

		return n
	}

	Context("post-increment split", func() {
		It("should split a load", func() {
			n := node("ldr r1, [r0], #4")

			rw, err := Arch.FusionCB(n)
			Expect(err).NotTo(HaveOccurred())
			Expect(rw.Edits).To(HaveLen(1))
			Expect(rw.Edits[0].Node).To(BeIdenticalTo(n))
			Expect(texts(rw.Edits[0].With)).To(Equal([]string{
				"ldr r1, [r0]",
				"add r0, r0, #4",
			}))

			for _, i := range rw.Edits[0].With {
				Expect(i.Marked(inst.MarkSplit)).To(BeTrue())
			}
		})

		It("should split a halfword store keeping hints", func() {
			n := node("strh r3, [r2], #2 // @writes=out")

			rw, err := Arch.FusionCB(n)
			Expect(err).NotTo(HaveOccurred())
			Expect(rw.Edits).To(HaveLen(1))

			with := rw.Edits[0].With
			Expect(texts(with)).To(Equal([]string{
				"strh r3, [r2]",
				"add r2, r2, #2",
			}))
			Expect(with[0].Args[inst.Out]).To(Equal([]string{"hint_out"}))
		})

		It("should leave a load into its own base", func() {
			rw, err := Arch.FusionCB(node("ldr r0, [r0], #4"))
			Expect(err).NotTo(HaveOccurred())
			Expect(rw.Changed()).To(BeFalse())
		})

		It("should not split twice", func() {
			n := NewMockNode(mockCtrl)

			i := mustParse("ldr r1, [r0], #4")
			i.Mark(inst.MarkSplit)

			n.EXPECT().Inst().Return(i).AnyTimes()

			rw, err := Arch.FusionCB(n)
			Expect(err).NotTo(HaveOccurred())
			Expect(rw.Changed()).To(BeFalse())
		})
	})

	Context("block split", func() {
		It("should expand ldm with writeback", func() {
			rw, err := Arch.FusionCB(node("ldm r0!, {r1, r2, r3, r4}"))
			Expect(err).NotTo(HaveOccurred())
			Expect(texts(rw.Edits[0].With)).To(Equal([]string{
				"ldr r1, [r0]",
				"ldr r2, [r0, #4]",
				"ldr r3, [r0, #8]",
				"ldr r4, [r0, #12]",
				"add r0, r0, #16",
			}))
		})

		It("should expand stm with writeback", func() {
			rw, err := Arch.FusionCB(node("stm r5!, {r1, r2}"))
			Expect(err).NotTo(HaveOccurred())
			Expect(texts(rw.Edits[0].With)).To(Equal([]string{
				"str r1, [r5]",
				"str r2, [r5, #4]",
				"add r5, r5, #8",
			}))
		})

		It("should keep the footprint", func() {
			i := mustParse("ldm r0!, {r1, r2, r3, r4}")

			n := NewMockNode(mockCtrl)
			n.EXPECT().Inst().Return(i).AnyTimes()

			rw, err := Arch.FusionCB(n)
			Expect(err).NotTo(HaveOccurred())

			before, err := Arch.Footprint([]*inst.Inst{i}, nil)
			Expect(err).NotTo(HaveOccurred())

			after, err := Arch.Footprint(rw.Edits[0].With, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(after).To(Equal(before))
			Expect(after.Pointers).To(HaveKeyWithValue("r0", "r0+16"))
		})

		It("should reject unordered register lists", func() {
			_, err := Arch.ParseText("ldm r0!, {r2, r1}")
			Expect(err).To(MatchError(inst.ErrNoMatch))
		})
	})

	Context("multiply-accumulate fusion", func() {
		var mul, add *MockNode

		BeforeEach(func() {
			mul = node("mul r3, r1, r2")
			add = node("add r5, r4, r3")
		})

		It("should fuse mul into its only consumer", func() {
			mul.EXPECT().LiveOut(inst.Out, 0).Return(false)
			mul.EXPECT().Consumers(inst.Out, 0).Return([]inst.Use{{Node: add, Role: inst.In, Idx: 1}})
			mul.EXPECT().Between(add).Return(nil)

			rw, err := Arch.FusionCB(mul)
			Expect(err).NotTo(HaveOccurred())
			Expect(rw.Edits).To(HaveLen(2))

			Expect(rw.Edits[0].Node).To(BeIdenticalTo(mul))
			Expect(rw.Edits[0].With).To(BeEmpty())

			Expect(rw.Edits[1].Node).To(BeIdenticalTo(add))
			Expect(texts(rw.Edits[1].With)).To(Equal([]string{"mla r5, r1, r2, r4"}))
			Expect(rw.Edits[1].With[0].Marked(inst.MarkFused)).To(BeTrue())
		})

		It("should not fuse a live-out product", func() {
			mul.EXPECT().LiveOut(inst.Out, 0).Return(true)

			rw, err := Arch.FusionCB(mul)
			Expect(err).NotTo(HaveOccurred())
			Expect(rw.Changed()).To(BeFalse())
		})

		It("should not fuse across a write to a factor", func() {
			mov := node("mov r1, r9")

			mul.EXPECT().LiveOut(inst.Out, 0).Return(false)
			mul.EXPECT().Consumers(inst.Out, 0).Return([]inst.Use{{Node: add, Role: inst.In, Idx: 1}})
			mul.EXPECT().Between(add).Return([]inst.Node{mov})

			rw, err := Arch.FusionCB(mul)
			Expect(err).NotTo(HaveOccurred())
			Expect(rw.Changed()).To(BeFalse())
		})

		It("should not fuse into a multiply", func() {
			other := node("mul r6, r3, r3")

			mul.EXPECT().LiveOut(inst.Out, 0).Return(false)
			mul.EXPECT().Consumers(inst.Out, 0).Return([]inst.Use{{Node: other, Role: inst.In, Idx: 0}})

			rw, err := Arch.FusionCB(mul)
			Expect(err).NotTo(HaveOccurred())
			Expect(rw.Changed()).To(BeFalse())
		})
	})
})
