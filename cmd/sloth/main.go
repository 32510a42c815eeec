package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/sloth/model"
	"github.com/slowlang/sloth/model/config"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/dfg"
	"github.com/slowlang/sloth/model/estimate"
	"github.com/slowlang/sloth/model/inst"
	"github.com/slowlang/sloth/model/reg"
)

func main() {
	regsCmd := &cli.Command{
		Name:        "regs",
		Description: "list the register file",
		Action:      regsAct,
	}

	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "parse assembly and print instructions",
		Action:      parseAct,
		Args:        cli.Args{},
	}

	writeCmd := &cli.Command{
		Name:        "write",
		Description: "parse and write assembly back",
		Action:      writeAct,
		Args:        cli.Args{},
	}

	optCmd := &cli.Command{
		Name:        "opt",
		Description: "apply parsing and fusion callbacks and renaming",
		Action:      optAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("output,o", "", "output directory, stdout if empty"),
		},
	}

	costCmd := &cli.Command{
		Name:        "cost",
		Description: "print the cost model of every instruction",
		Action:      costAct,
		Args:        cli.Args{},
	}

	estimateCmd := &cli.Command{
		Name:        "estimate",
		Description: "schedule instructions on the target",
		Action:      estimateAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "sloth",
		Description: "sloth models assembly instructions for superoptimization",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("config,c", "", "yaml config file"),
			cli.NewFlag("arch,a", "", "architecture: "+strings.Join(model.Arches(), ", ")),
			cli.NewFlag("target,t", "", "target: "+strings.Join(model.Targets(nil), ", ")),
			cli.NewFlag("outputs", "", "comma separated registers live after the code"),
			cli.NewFlag("no-fusion", false, "skip fusion callbacks"),
			cli.NewFlag("window", 0, "estimate window size"),
			cli.NewFlag("verbosity,v", "", "logger verbosity topics"),
			cli.NewFlag("dump", false, "dump parsed instructions"),
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			regsCmd,
			parseCmd,
			writeCmd,
			optCmd,
			costCmd,
			estimateCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func before(c *cli.Command) error {
	tlog.SetVerbosity(c.String("verbosity"))

	return nil
}

// setup merges the config file and flags.
func setup(c *cli.Command) (ctx context.Context, r *config.Resolved, err error) {
	ctx = context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	cfg := config.Default()

	if name := c.String("config"); name != "" {
		cfg, err = config.Load(name)
		if err != nil {
			return nil, nil, err
		}
	}

	if q := c.String("arch"); q != "" {
		cfg.Arch = q
	}

	if q := c.String("target"); q != "" {
		cfg.Target = q
	}

	if c.Bool("no-fusion") {
		cfg.Fusion = false
	}

	if n := c.Int("window"); n != 0 {
		cfg.Window = n
	}

	if cfg.Verbosity != "" && c.String("verbosity") == "" {
		tlog.SetVerbosity(cfg.Verbosity)
	}

	r, err = cfg.Resolve()
	if err != nil {
		return nil, nil, errors.Wrap(err, "config")
	}

	return ctx, r, nil
}

func regsAct(c *cli.Command) (err error) {
	_, r, err := setup(c)
	if err != nil {
		return err
	}

	regs := r.A.Regs

	t := table.NewWriter()
	t.SetTitle("%v registers", r.A.Name)
	t.AppendHeader(table.Row{"type", "renamed", "registers", "allocatable"})

	for _, tp := range regs.Types() {
		var alloc []string

		if regs.IsRenamed(tp) {
			alloc = regs.Allocatable(tp, r.Reserved...)
		}

		t.AppendRow(table.Row{tp, regs.IsRenamed(tp), strings.Join(regs.List(tp, reg.WithAliases), " "), strings.Join(alloc, " ")})
	}

	fmt.Println(t.Render())

	return nil
}

func parseAct(c *cli.Command) (err error) {
	ctx, r, err := setup(c)
	if err != nil {
		return err
	}

	for _, a := range c.Args {
		l, err := model.ParseFile(ctx, r.A, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		if c.Bool("dump") {
			spew.Dump(l.Seq())
			continue
		}

		t := table.NewWriter()
		t.SetTitle("%v", a)
		t.AppendHeader(table.Row{"line", "variant", "in", "out", "inout", "text"})

		for n, i := range l.Insts {
			if i == nil {
				continue
			}

			t.AppendRow(table.Row{n + 1, i.V.Name, strings.Join(i.Args[inst.In], " "), strings.Join(i.Args[inst.Out], " "), strings.Join(i.Args[inst.InOut], " "), i.Source.Text})
		}

		fmt.Println(t.Render())
	}

	return nil
}

func writeAct(c *cli.Command) (err error) {
	ctx, r, err := setup(c)
	if err != nil {
		return err
	}

	for _, a := range c.Args {
		l, err := model.ParseFile(ctx, r.A, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		b, err := model.Format(nil, l, l.Seq())
		if err != nil {
			return errors.Wrap(err, "write %v", a)
		}

		_, err = os.Stdout.Write(b)
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

func optAct(c *cli.Command) (err error) {
	ctx, r, err := setup(c)
	if err != nil {
		return err
	}

	for _, a := range c.Args {
		l, is, err := optimize(ctx, c, r, a)
		if err != nil {
			return errors.Wrap(err, "opt %v", a)
		}

		b, err := model.Format(nil, l, is)
		if err != nil {
			return errors.Wrap(err, "write %v", a)
		}

		if dir := c.String("output"); dir != "" {
			err = os.WriteFile(filepath.Join(dir, filepath.Base(a)), b, 0o644)
		} else {
			_, err = os.Stdout.Write(b)
		}
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

// optimize parses the file, runs callbacks and renames registers.
func optimize(ctx context.Context, c *cli.Command, r *config.Resolved, name string) (*model.Listing, []*inst.Inst, error) {
	l, err := model.ParseFile(ctx, r.A, name)
	if err != nil {
		return nil, nil, err
	}

	g := dfg.New(r.A, l.Seq(), outputs(c, l)...)
	g.Verify = true

	if r.Fusion {
		err = g.Run(ctx)
	} else {
		_, err = g.Parsing(ctx)
	}
	if err != nil {
		return nil, nil, err
	}

	is := g.Insts()

	if len(r.Rename) != 0 {
		for k, i := range is {
			is[k] = r.A.Rename(i, r.Rename)
		}
	}

	return l, is, nil
}

func costAct(c *cli.Command) (err error) {
	ctx, r, err := setup(c)
	if err != nil {
		return err
	}

	if r.M == nil {
		return errors.New("target required")
	}

	for _, a := range c.Args {
		l, err := model.ParseFile(ctx, r.A, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		t := table.NewWriter()
		t.SetTitle("%v on %v", a, r.M.Name())
		t.AppendHeader(table.Row{"line", "variant", "units", "latency", "inv throughput"})

		for n, i := range l.Insts {
			if i == nil {
				continue
			}

			row, err := costRow(r.M, i)
			if err != nil {
				return errors.Wrap(err, "%v:%d", a, n+1)
			}

			t.AppendRow(append(table.Row{n + 1, i.V.Name}, row...))
		}

		fmt.Println(t.Render())
	}

	return nil
}

func costRow(m cost.Model, i *inst.Inst) (table.Row, error) {
	u, err := m.Units(i)
	if err != nil {
		return nil, err
	}

	tp, err := m.InverseThroughput(i)
	if err != nil {
		return nil, err
	}

	lat := "-"

	if len(i.Writes()) != 0 {
		l, err := m.Latency(i, 0, i)
		if err != nil {
			return nil, err
		}

		lat = fmt.Sprintf("%d", l.Cycles)
	}

	return table.Row{u.String(), lat, tp}, nil
}

func estimateAct(c *cli.Command) (err error) {
	ctx, r, err := setup(c)
	if err != nil {
		return err
	}

	if r.M == nil {
		return errors.New("target required")
	}

	for _, a := range c.Args {
		_, is, err := optimize(ctx, c, r, a)
		if err != nil {
			return errors.Wrap(err, "opt %v", a)
		}

		t := table.NewWriter()
		t.SetTitle("%v on %v", a, r.M.Name())
		t.AppendHeader(table.Row{"window", "cycle", "slot", "instruction"})

		total := 0

		for w, win := range windows(is, r.Window) {
			s, err := estimate.Run(ctx, r.M, win)
			if err != nil {
				return errors.Wrap(err, "estimate %v", a)
			}

			for _, j := range s.Order {
				text, err := r.A.Write(win[j])
				if err != nil {
					return err
				}

				p := s.Place[j]

				t.AppendRow(table.Row{w, total + p.Cycle, p.Slot, text})
			}

			total += s.Cycles

			if r.M.HasMinMaxObjective() && s.Objective >= 0 {
				t.AppendFooter(table.Row{w, s.Objective, "", r.M.MinMaxObjective().Name})
			}
		}

		t.AppendFooter(table.Row{"", total, "", "cycles"})

		fmt.Println(t.Render())
	}

	return nil
}

func windows(is []*inst.Inst, n int) [][]*inst.Inst {
	if n <= 0 || n >= len(is) {
		return [][]*inst.Inst{is}
	}

	var r [][]*inst.Inst

	for len(is) > n {
		r = append(r, is[:n])
		is = is[n:]
	}

	return append(r, is)
}

// outputs are the registers live after the code: the flag value if given,
// every register written otherwise.
func outputs(c *cli.Command, l *model.Listing) []string {
	if q := c.String("outputs"); q != "" {
		return strings.Split(q, ",")
	}

	var r []string
	seen := map[string]bool{}

	for _, i := range l.Seq() {
		for _, w := range i.Writes() {
			if !seen[w] {
				seen[w] = true
				r = append(r, w)
			}
		}
	}

	return r
}
