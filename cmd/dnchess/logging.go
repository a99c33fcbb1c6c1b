package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/dnchess-go/internal/config"
)

// logLevel maps the verbosity setting onto a zap level.
func logLevel(cfg *config.Config) zapcore.Level {
	switch {
	case cfg.Quiet:
		return zapcore.ErrorLevel
	case cfg.Verbosity <= 0:
		return zapcore.WarnLevel
	case cfg.Verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// newLogger builds a console logger writing to w.
func newLogger(w io.Writer, cfg *config.Config) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		logLevel(cfg),
	)
	return zap.New(core)
}
