package main

import (
	"go.uber.org/zap"
)

// newLogger returns a human readable debug logger for -verbose and a quiet
// JSON logger that only reports warnings otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Sampling = nil
	return cfg.Build()
}
