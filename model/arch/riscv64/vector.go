package riscv64

import (
	"github.com/slowlang/sloth/model/inst"
)

var vl = l("vl")

func vv(name string, tags inst.Tag, example string, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: name + " <Vd>, <Va>, <Vb>", In: l("Va", "Vb"), Out: l("Vd"), ImplicitIn: vl,
		Classes: classes, Tags: tags | inst.Vector, Example: example}
}

func vx(name string, tags inst.Tag, example string, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: name + " <Vd>, <Va>, <Xb>", In: l("Va", "Xb"), Out: l("Vd"), ImplicitIn: vl,
		Classes: classes, Tags: tags | inst.Vector, Example: example}
}

func vi(name string, tags inst.Tag, example string, classes ...string) *inst.Variant {
	return &inst.Variant{Name: name, Pattern: name + " <Vd>, <Va>, <imm>", In: l("Va"), Out: l("Vd"), ImplicitIn: vl,
		Classes: classes, Tags: tags | inst.Vector, Example: example}
}

var vector = []*inst.Variant{
	{Name: "vsetvli", Pattern: "vsetvli <Xd>, <Xa>, <dt>, m1, ta, ma", In: l("Xa"), Out: l("Xd"), ImplicitOut: vl,
		Classes: l("vset"), Example: "vsetvli t0, a2, e32, m1, ta, ma"},

	{Name: "vle", Pattern: "vle<dt>.v <Vd>, (<Xc>)", In: l("Xc"), Out: l("Vd"), ImplicitIn: vl,
		Classes: l("vload"), Tags: inst.Load | inst.Vector,
		Mem: &inst.MemSpec{Base: "Xc", Data: l("Vd"), Size: 16}, Example: "vle32.v v1, (a0)"},
	{Name: "vse", Pattern: "vse<dt>.v <Va>, (<Xc>)", In: l("Va", "Xc"), ImplicitIn: vl,
		Classes: l("vstore"), Tags: inst.Store | inst.Vector,
		Mem: &inst.MemSpec{Store: true, Base: "Xc", Data: l("Va"), Size: 16}, Example: "vse32.v v1, (a0)"},

	vv("vadd.vv", inst.Arith, "vadd.vv v1, v2, v3", "valu"),
	vx("vadd.vx", inst.Arith, "vadd.vx v1, v2, a0", "valu"),
	vv("vsub.vv", inst.Arith, "vsub.vv v1, v2, v3", "valu"),
	vv("vand.vv", inst.Logic, "vand.vv v1, v2, v3", "valu"),
	vv("vxor.vv", inst.Logic, "vxor.vv v1, v2, v3", "valu"),
	vi("vsll.vi", inst.Shift, "vsll.vi v1, v2, 3", "valu"),
	vi("vsrl.vi", inst.Shift, "vsrl.vi v1, v2, 16", "valu"),
	vi("vsra.vi", inst.Shift, "vsra.vi v1, v2, 16", "valu"),
	{Name: "vmv.v.v", Pattern: "vmv.v.v <Vd>, <Va>", In: l("Va"), Out: l("Vd"), ImplicitIn: vl,
		Classes: l("valu"), Tags: inst.Vector | inst.Move, Example: "vmv.v.v v1, v2"},

	vv("vmul.vv", inst.Mul, "vmul.vv v1, v2, v3", "vmul"),
	vx("vmul.vx", inst.Mul, "vmul.vx v1, v2, a0", "vmul"),
	vv("vmulh.vv", inst.Mul, "vmulh.vv v1, v2, v3", "vmul"),
	vx("vmulh.vx", inst.Mul, "vmulh.vx v1, v2, a0", "vmul"),
	{Name: "vmacc.vv", Pattern: "vmacc.vv <Vd>, <Va>, <Vb>", In: l("Va", "Vb"), InOut: l("Vd"), ImplicitIn: vl,
		Classes: l("vmul"), Tags: inst.Vector | inst.MulAcc, Example: "vmacc.vv v1, v2, v3"},
}
