package cli

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Development mode logs at debug
// level in a human friendly format; otherwise console output is written to
// stderr at the configured level.
func NewLogger(flags *Flags) (*zap.Logger, error) {
	if flags.LogDevelopment {
		return zap.NewDevelopment()
	}

	level, err := zap.ParseAtomicLevel(flags.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flags.LogLevel, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
