package observability

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger. Mode "prod" or "production" logs JSON at
// info level; anything else logs human-readable console output. Verbose
// lowers the level to debug in either mode.
func NewLogger(mode string, verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.DisableStacktrace = true
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
