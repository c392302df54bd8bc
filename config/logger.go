package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a zap.Logger configured from the environment settings.
// Production uses the JSON production config; otherwise the development
// config with colored levels. LogLevel may be: debug, info, warn, error.
func NewLogger(cfg *Config) *zap.Logger {
	var zc zap.Config

	if cfg.Environment == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	zc.OutputPaths = []string{"stdout"}

	logger, err := zc.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}
