// Package config handles application configuration and setup
package config

import (
	"os"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(flags options.Flags) *log.Logger {
	return log.NewWithConfig(loggerConfig(flags))
}

// loggerConfig returns the logger configuration for the flags. Log output goes
// to stderr as stdout carries the listing. Dumping instructions requires debug
// output, it takes precedence over quiet mode.
func loggerConfig(flags options.Flags) log.Config {
	cfg := log.DefaultConfig()
	cfg.Output = os.Stderr
	switch {
	case flags.Debug, flags.Dump:
		cfg.Level = log.DebugLevel
	case flags.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return cfg
}
