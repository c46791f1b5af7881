package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/background"
	"github.com/leoyouyang/snack-time/internal/board"
	"github.com/leoyouyang/snack-time/internal/config"
	"github.com/leoyouyang/snack-time/internal/render"
)

// backgroundSet loads the configured background directory, or the embedded
// set when none is configured.
func backgroundSet(cfg *config.Config, log *zap.Logger) (*background.Set, error) {
	opts := []background.Option{background.WithLogger(log)}
	if cfg.Shadow {
		opts = append(opts, background.WithShadow(render.DefaultShadowOptions()))
	}
	set, err := background.FromDir(cfg.BackgroundsDir, opts...)
	if err != nil {
		return nil, fmt.Errorf("backgrounds: %w", err)
	}
	return set, nil
}

// newBoard builds a board from cfg. extra options are applied last.
func newBoard(cfg *config.Config, log *zap.Logger, extra ...board.Option) (*board.Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	set, err := backgroundSet(cfg, log)
	if err != nil {
		return nil, err
	}
	opts := []board.Option{
		board.WithLogger(log),
		board.WithSize(cfg.Width, cfg.Height),
		board.WithSpacing(cfg.Spacing),
		board.WithJitter(cfg.Jitter),
		board.WithBrush(cfg.Brush),
		board.WithBackgrounds(set),
		board.WithSaveDir(cfg.SaveDir),
	}
	b, err := board.New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	if cfg.Background != 0 {
		b.SelectBackground(cfg.Background)
	}
	return b, nil
}
