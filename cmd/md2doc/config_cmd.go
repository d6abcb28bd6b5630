package main

import (
	"fmt"

	"github.com/alnah/go-md2doc/internal/yamlutil"
)

// runConfigCommand prints the effective configuration as YAML: the config
// file with environment variables and flags applied. Accepts the same
// flags as convert.
func runConfigCommand(args []string, env *Environment) error {
	flags, _, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	cfg, _, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
