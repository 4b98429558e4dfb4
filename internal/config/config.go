// Package config handles application configuration and setup
package config

import (
	"github.com/JRHeaton/j8/internal/arch/chip8"
	"github.com/JRHeaton/j8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// EmulatorConfig returns the interpreter behaviour selected by the options.
func EmulatorConfig(opts options.Program) chip8.Config {
	return chip8.Config{
		ShiftLeftFlagMSB: opts.ShiftLeftMSB,
		SubtractXMinusY:  opts.SubtractXMinusY,
	}
}
