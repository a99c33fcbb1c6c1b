package main

import (
	"bytes"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/dnchess-go/internal/config"
	"github.com/lgbarn/dnchess-go/internal/testutil"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		want      zapcore.Level
	}{
		{"quiet", 2, true, zapcore.ErrorLevel},
		{"errors only", 0, false, zapcore.WarnLevel},
		{"summaries", 1, false, zapcore.InfoLevel},
		{"every move", 2, false, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.Verbosity = tt.verbosity
			cfg.Quiet = tt.quiet
			testutil.AssertEqual(t, logLevel(cfg), tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	logger := newLogger(&buf, cfg)

	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	out := buf.String()
	testutil.AssertContains(t, out, "shown")
	testutil.AssertTrue(t, !bytes.Contains(buf.Bytes(), []byte("hidden")), "debug line written at verbosity 1")
}
