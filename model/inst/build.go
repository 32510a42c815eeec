package inst

import (
	"strings"

	"tlog.app/go/errors"

	"github.com/slowlang/sloth/model/src"
)

// Build makes an instance of the named variant from text generated by a callback.
// The text failing to parse is a modeling bug.
// Indentation and case follow the from instance if any.
func (a *Arch) Build(from *Inst, variant, text string) (*Inst, error) {
	v := a.Variant(variant)
	if v == nil {
		return nil, Fatalf("%v: no variant %v", a.Name, variant)
	}

	line := src.Line{Text: text}

	if from != nil {
		line.Indent = from.Source.Indent

		if from.Upper {
			line.Text = upperMnemonic(text)
		}
	}

	i, err := a.Make(v, line)
	if errors.Is(err, ErrNoMatch) {
		return nil, WrapFatal(err, "%v: generated %q does not parse", variant, text)
	}
	if err != nil {
		return nil, err
	}

	return i, nil
}

func upperMnemonic(text string) string {
	end := strings.IndexAny(text, " \t")
	if end < 0 {
		return strings.ToUpper(text)
	}

	return strings.ToUpper(text[:end]) + text[end:]
}

// Sync pushes memory bookkeeping back into the immediate fields.
func (i *Inst) Sync() {
	m := i.V.Mem
	if m == nil {
		return
	}

	if m.Offset != "" {
		i.SetField(m.Offset, i.PreIndex)
	}

	if m.Post != "" {
		i.SetField(m.Post, i.Increment)
	}
}
