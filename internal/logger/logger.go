package logger

import (
	"ews-reports/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Development gets the
// human-readable console encoder, everything else the production JSON one.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.IsDevelopment() {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	return zapConfig.Build()
}
