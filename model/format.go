package model

import (
	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/sloth/model/inst"
)

// Format writes the listing with its statements replaced by is.
//
// Labels, directives and comments stay in place. Statement lines are
// filled with is in order, extra instructions follow the last statement
// and unused statement lines are dropped.
// A statement comment no instruction carries any more is kept on a line of its own.
func Format(b []byte, l *Listing, is []*inst.Inst) (_ []byte, err error) {
	last := -1

	for n, i := range l.Insts {
		if i != nil {
			last = n
		}
	}

	carried := map[string]int{}

	for _, i := range is {
		if c := i.Source.Comment; c != "" {
			carried[c]++
		}
	}

	k := 0

	for n, line := range l.Lines {
		if l.Insts[n] == nil {
			b = hfmt.Appendf(b, "%s\n", line.String())
			continue
		}

		if c := line.Comment; c != "" {
			if carried[c] > 0 {
				carried[c]--
			} else {
				b = hfmt.Appendf(b, "%s%s\n", line.Indent, c)
			}
		}

		if k < len(is) {
			b, err = appendInst(b, l.Arch, is[k])
			if err != nil {
				return nil, errors.Wrap(err, "line %d", n+1)
			}

			k++
		}

		if n != last {
			continue
		}

		for ; k < len(is); k++ {
			b, err = appendInst(b, l.Arch, is[k])
			if err != nil {
				return nil, errors.Wrap(err, "after line %d", n+1)
			}
		}
	}

	return b, nil
}

func appendInst(b []byte, a *inst.Arch, i *inst.Inst) ([]byte, error) {
	line, err := a.WriteLine(i)
	if err != nil {
		return nil, err
	}

	if line.Indent == "" {
		line.Indent = "\t"
	}

	return hfmt.Appendf(b, "%s\n", line.String()), nil
}
