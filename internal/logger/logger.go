// Package logger builds the zap logger used by the command line tools.
package logger

import (
	"go.uber.org/zap"

	"quizzable/internal/config"
)

// New returns a logger matching the configured environment: structured JSON
// in production, human-readable console output everywhere else. Logs go to
// stderr so generated records on stdout stay clean.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	dev := zap.NewDevelopmentConfig()
	dev.DisableStacktrace = true
	return dev.Build()
}
