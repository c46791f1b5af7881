package main

import (
	"flag"
	"fmt"

	"github.com/leoyouyang/snack-time/internal/brush"
)

type backgroundsCmd struct {
	*root
	fs  *flag.FlagSet
	dir string
}

func parseBackgroundsCmd(args []string, r *root) (*backgroundsCmd, error) {
	fs := flag.NewFlagSet("backgrounds", flag.ExitOnError)
	cmd := &backgroundsCmd{root: r.subcommand("backgrounds"), fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.StringVar(&cmd.dir, "dir", r.config.BackgroundsDir, "directory of background images (default: built in)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *backgroundsCmd) Run() error {
	cfg := *c.config
	cfg.BackgroundsDir = c.dir
	set, err := backgroundSet(&cfg, c.log)
	if err != nil {
		return err
	}
	for i := 0; i < set.Len(); i++ {
		marker := " "
		if i == cfg.Background {
			marker = "*"
		}
		img := set.At(i)
		b := img.Bounds()
		fmt.Fprintf(c.stdout, "%s %d %s (%dx%d)\n", marker, i, set.NameAt(i), b.Dx(), b.Dy())
	}
	return nil
}

func (c *backgroundsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type brushesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseBrushesCmd(args []string, r *root) (*brushesCmd, error) {
	fs := flag.NewFlagSet("brushes", flag.ExitOnError)
	cmd := &brushesCmd{root: r.subcommand("brushes"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *brushesCmd) Run() error {
	for i, name := range brush.Names() {
		marker := " "
		if name == c.config.Brush {
			marker = "*"
		}
		fmt.Fprintf(c.stdout, "%s %d %s\n", marker, i+1, name)
	}
	return nil
}

func (c *brushesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
