package cost

import "github.com/slowlang/sloth/model/inst"

// Accumulator returns the operand a multiply-accumulate adds its product to.
// It is the first read-write operand if any, the last input otherwise.
func Accumulator(i *inst.Inst) (string, bool) {
	if !i.Has(inst.MulAcc) {
		return "", false
	}

	if len(i.V.InOut) != 0 {
		return i.Args[inst.InOut][0], true
	}

	if n := len(i.V.In); n != 0 {
		return i.Args[inst.In][n-1], true
	}

	return "", false
}

// FeedsAccumulator is a LatencyRule check: output out of src is
// the accumulator of dst and nothing else dst reads.
func FeedsAccumulator(src *inst.Inst, out int, dst *inst.Inst) bool {
	ws := src.Writes()
	if out < 0 || out >= len(ws) {
		return false
	}

	acc, ok := Accumulator(dst)
	if !ok || acc != ws[out] {
		return false
	}

	n := 0

	for _, r := range dst.Reads() {
		if r == acc {
			n++
		}
	}

	return n == 1
}

// FeedsBase is a LatencyRule check: output out of src is the address register of dst.
func FeedsBase(src *inst.Inst, out int, dst *inst.Inst) bool {
	ws := src.Writes()
	if out < 0 || out >= len(ws) {
		return false
	}

	return dst.Addr != "" && dst.Addr == ws[out]
}
