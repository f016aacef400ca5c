// Package logging builds the zap logger used by the molcheck command.
package logging

import (
	"go.uber.org/zap"

	"github.com/rmera/molcheck/internal/config"
)

// New creates a logger from the log settings. An unknown level falls back
// to info. Logs go to stderr so they never mix with results on stdout.
func New(c config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zc.Level = level

	if c.Format == "json" {
		zc.Encoding = "json"
	} else {
		zc.Encoding = "console"
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build(zap.Fields(zap.String("service", "molcheck")))
}
