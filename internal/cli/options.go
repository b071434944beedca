package cli

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/yacchi/kasane"
	"github.com/yacchi/kasane/tree"
)

// Options holds the settings shared by every kasane command. Values
// resolve in precedence order: command-line flags, then KASANE_*
// environment variables, then built-in defaults.
type Options struct {
	// WorkDir anchors relative file arguments and ./-prefixed load
	// paths. Defaults to the current working directory.
	WorkDir string `env:"KASANE_WORKDIR"`

	// ArrayMode selects the array merge policy, "concat" or "replace".
	ArrayMode string `env:"KASANE_ARRAY_MODE"`

	// Format selects the output encoding, "json", "jsonc" or "yaml".
	Format string `env:"KASANE_FORMAT"`

	// Verbose enables debug logging on stderr.
	Verbose bool `env:"KASANE_VERBOSE"`
}

func defaultOptions() (*Options, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return &Options{
		WorkDir:   wd,
		ArrayMode: tree.ArrayConcat.String(),
		Format:    "json",
	}, nil
}

// resolveOptions layers the three option sources. mergo fills only
// zero-valued fields, so flag values survive, environment values fill
// the gaps, and defaults cover the rest.
func resolveOptions(flags *Options) (*Options, error) {
	envOpts := &Options{}
	if err := env.Parse(envOpts); err != nil {
		return nil, fmt.Errorf("failed to parse environment options: %w", err)
	}

	defaults, err := defaultOptions()
	if err != nil {
		return nil, err
	}

	resolved := &Options{}
	for _, layer := range []*Options{flags, envOpts, defaults} {
		if err := mergo.Merge(resolved, layer); err != nil {
			return nil, fmt.Errorf("failed to merge options: %w", err)
		}
	}
	return resolved, nil
}

// newStore builds a store configured from the resolved options.
func (o *Options) newStore() (*kasane.Store, error) {
	mode, err := tree.ParseArrayMode(o.ArrayMode)
	if err != nil {
		return nil, err
	}
	return kasane.New(
		kasane.WithArrayMode(mode),
		kasane.WithWorkDir(o.WorkDir),
	), nil
}
