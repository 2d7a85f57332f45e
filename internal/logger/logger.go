// Package logger builds the zap logger and installs it behind log/slog, so
// the rest of the code logs through the standard slog calls.
package logger

import (
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

// New returns a production (JSON) logger for the production environment and
// a development (console) logger otherwise, both at the given level.
func New(environment, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}

// Setup builds a logger with New and makes it the slog default. Call the
// returned function before exit to flush buffered entries.
func Setup(environment, level string) (func(), error) {
	l, err := New(environment, level)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(zapslog.NewHandler(l.Core())))
	return func() { _ = l.Sync() }, nil
}
