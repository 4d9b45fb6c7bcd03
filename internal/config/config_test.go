package config

import (
	"os"
	"testing"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
	}{
		{"default", options.Flags{}},
		{"debug", options.Flags{Debug: true}},
		{"dump", options.Flags{Dump: true}},
		{"quiet", options.Flags{Quiet: true}},
		{"dump overrides quiet", options.Flags{Dump: true, Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loggerConfig(tt.flags)
			switch {
			case tt.flags.Debug, tt.flags.Dump:
				assert.Equal(t, log.DebugLevel, cfg.Level)
			case tt.flags.Quiet:
				assert.Equal(t, log.ErrorLevel, cfg.Level)
			default:
				assert.Equal(t, log.DefaultConfig().Level, cfg.Level)
			}
			assert.True(t, cfg.Output == os.Stderr)

			assert.NotNil(t, CreateLogger(tt.flags))
		})
	}
}
