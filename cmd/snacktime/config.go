package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/leoyouyang/snack-time/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	output string
	yaml   bool
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r.subcommand("config"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "output", "", "file written by save (default: the loaded config file or the user config path)")
	fs.BoolVar(&c.yaml, "yaml", false, "print as YAML")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) != 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		return config.Write(c.stdout, c.config, c.yaml)
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runSave() error {
	path := c.output
	if path == "" {
		loader := config.NewLoader(version, c.configPath)
		path = loader.GetConfigPath()
		if path == "" {
			path = loader.UserConfigPath()
		}
	}
	if err := config.Save(path, c.config); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Fprintf(c.stderr, "Configuration saved to %s\n", abs)
	return nil
}
