// Package config loads run settings from a YAML file.
package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"

	"github.com/slowlang/sloth/model"
	"github.com/slowlang/sloth/model/cost"
	"github.com/slowlang/sloth/model/inst"
)

type (
	Config struct {
		Arch   string `yaml:"arch"`
		Target string `yaml:"target"`

		// Reserved registers are excluded from allocation in addition to the architecture defaults.
		Reserved []string          `yaml:"reserved"`
		Rename   map[string]string `yaml:"rename"`

		Fusion bool `yaml:"fusion"`

		// Window is the number of instructions the estimator schedules at once, 0 is unlimited.
		Window int `yaml:"window"`

		Verbosity string `yaml:"verbosity"`
	}

	// Resolved is a validated config with registry objects looked up.
	Resolved struct {
		Config

		A *inst.Arch
		M cost.Model // nil if no target
	}
)

var ErrInvalid = errors.New("invalid config")

func Default() Config {
	return Config{
		Fusion: true,
	}
}

// Load reads the file over the defaults.
func Load(name string) (c Config, err error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return c, errors.Wrap(err, "read config")
	}

	c, err = Parse(data)
	if err != nil {
		return c, errors.Wrap(err, "%v", name)
	}

	return c, nil
}

// Parse decodes data over the defaults. Unknown keys are errors.
func Parse(data []byte) (c Config, err error) {
	c = Default()

	d := yaml.NewDecoder(bytes.NewReader(data))
	d.KnownFields(true)

	err = d.Decode(&c)
	if errors.Is(err, io.EOF) {
		return c, nil
	}
	if err != nil {
		return c, errors.Wrap(err, "decode")
	}

	return c, nil
}

// Resolve validates the config against the registry.
// An empty arch is taken from the target.
func (c Config) Resolve() (r *Resolved, err error) {
	r = &Resolved{Config: c}

	if c.Target != "" {
		r.M, err = model.LookupTarget(c.Target)
		if err != nil {
			return nil, err
		}

		if r.Arch == "" {
			r.Arch = r.M.Arch().Name
		}
	}

	if r.Arch == "" {
		return nil, errors.Wrap(ErrInvalid, "arch or target required")
	}

	r.A, err = model.LookupArch(r.Arch)
	if err != nil {
		return nil, err
	}

	if r.M != nil && r.M.Arch() != r.A {
		return nil, errors.Wrap(ErrInvalid, "target %v models %v, not %v", c.Target, r.M.Arch().Name, r.A.Name)
	}

	for _, name := range c.Reserved {
		if _, ok := r.A.Regs.FindType(name); !ok {
			return nil, errors.Wrap(ErrInvalid, "reserved: %v is not a %v register", name, r.A.Name)
		}
	}

	for from, to := range c.Rename {
		ft, ok := r.A.Regs.FindType(from)
		if !ok {
			return nil, errors.Wrap(ErrInvalid, "rename: %v is not a %v register", from, r.A.Name)
		}

		tt, ok := r.A.Regs.FindType(to)
		if !ok {
			return nil, errors.Wrap(ErrInvalid, "rename: %v is not a %v register", to, r.A.Name)
		}

		if ft != tt || !r.A.Regs.IsRenamed(ft) {
			return nil, errors.Wrap(ErrInvalid, "rename: %v (%v) to %v (%v)", from, ft, to, tt)
		}
	}

	if c.Window < 0 {
		return nil, errors.Wrap(ErrInvalid, "window: %d", c.Window)
	}

	return r, nil
}
