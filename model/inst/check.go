package inst

import (
	"tlog.app/go/errors"

	"github.com/slowlang/sloth/model/reg"
)

// StackSlot returns a Check that rejects symbolic operands of the given stack slot types.
// Spill and restore templates look like plain sp-relative accesses,
// so "[sp, #name]" is left to the offset form.
func StackSlot(types ...reg.Type) func(a *Arch, i *Inst) error {
	return func(a *Arch, i *Inst) error {
		for r := In; r < NumRoles; r++ {
			for j, t := range i.Types[r] {
				if !slot(types, t) {
					continue
				}

				if _, ok := a.Regs.FindType(i.Args[r][j]); !ok {
					return errors.Wrap(ErrNoMatch, "%v is not a stack slot", i.Args[r][j])
				}
			}
		}

		return nil
	}
}

func slot(types []reg.Type, t reg.Type) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}

	return false
}
