// Package logging builds the zap loggers used by the CLI and sanitizes
// credentials out of anything destined for log output.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a console-encoded zap logger writing to stderr. With
// verbose set, debug-level messages (request URLs, payload sizes) are
// included; otherwise only warnings and errors surface, keeping command
// output clean for piping.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
