package inst

import (
	"strings"

	"github.com/slowlang/sloth/model/reg"
	"github.com/slowlang/sloth/model/src"
)

// HintPrefix starts the name of every hint operand.
const HintPrefix = "hint_"

// Tag keys turning into hint operands.
const (
	TagReads  = "reads"
	TagWrites = "writes"
)

// HintName returns the hint operand name for a tag value.
func HintName(v string) string {
	if strings.HasPrefix(v, HintPrefix) {
		return v
	}

	return HintPrefix + v
}

// addHints appends pure dependency operands named by reads/writes tags.
// They order instructions without carrying values and are never written out.
func (a *Arch) addHints(i *Inst, tags src.Tags) error {
	for _, x := range []struct {
		key  string
		role Role
	}{
		{TagReads, In},
		{TagWrites, Out},
	} {
		for _, v := range tags.Get(x.key) {
			name := HintName(v)

			t, ok := a.Regs.FindType(name)
			if !ok || t != reg.Hint {
				return Fatalf("%v: hint %v is not a hint register", a.Name, name)
			}

			i.Args[x.role] = append(i.Args[x.role], name)
			i.Types[x.role] = append(i.Types[x.role], reg.Hint)
			i.Restrict[x.role] = append(i.Restrict[x.role], nil)
			i.Hints[x.role]++
		}
	}

	return nil
}
