package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/ui"
)

// paintCmd opens the interactive window.
type paintCmd struct {
	*root
	fs *flag.FlagSet

	output     string
	brush      string
	background int
	width      int
	height     int
	noShadow   bool
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ExitOnError)
	cfg := r.config
	p := &paintCmd{root: r.subcommand("paint"), fs: fs}
	fs.Usage = usageFunc(p)
	fs.StringVar(&p.output, "output", cfg.Output, "file written by ctrl+s (default: a timestamped PNG in the save directory)")
	fs.StringVar(&p.brush, "brush", cfg.Brush, "initial brush")
	fs.IntVar(&p.background, "background", cfg.Background, "initial background index")
	fs.IntVar(&p.width, "width", cfg.Width, "canvas width in pixels")
	fs.IntVar(&p.height, "height", cfg.Height, "canvas height in pixels")
	fs.BoolVar(&p.noShadow, "no-shadow", !cfg.Shadow, "draw backgrounds without a drop shadow")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	return p, nil
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func (p *paintCmd) Run() error {
	cfg := *p.config
	cfg.Output = p.output
	cfg.Brush = p.brush
	cfg.Background = p.background
	cfg.Width, cfg.Height = p.width, p.height
	cfg.Shadow = !p.noShadow

	b, err := newBoard(&cfg, p.log)
	if err != nil {
		return fmt.Errorf("paint: %w", err)
	}
	ctl := ui.NewController(b, cfg.Output, p.notifier, p.log)
	app := ui.New(ctl,
		ui.WithTheme(p.activeTheme),
		ui.WithLogger(p.log),
		ui.WithOnClose(func() { p.log.Debug("window closed", zap.Int("history", b.HistoryLen())) }),
	)
	if err := app.Run(); err != nil {
		return fmt.Errorf("paint: %w", err)
	}
	return nil
}
