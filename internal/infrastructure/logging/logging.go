// Package logging builds the zap logger used across the game.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// Logger is a zap logger whose level can change at runtime
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// New creates a logger from config. Unknown levels fall back to info.
func New(cfg config.LoggingConfig, opts ...zap.Option) (*Logger, error) {
	var zapConfig zap.Config

	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}

	// per-frame debug logs must not be dropped
	zapConfig.Sampling = nil

	opts = append([]zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}, opts...)
	logger, err := zapConfig.Build(opts...)
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: logger, level: zapConfig.Level}, nil
}

// Level returns the current level
func (l *Logger) Level() zapcore.Level {
	return l.level.Level()
}

// SetLevel changes the level of this logger and everything derived from it
func (l *Logger) SetLevel(name string) error {
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	l.level.SetLevel(level)
	return nil
}
