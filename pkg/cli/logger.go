package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a logger writing to out. format is "json" or "text",
// level one of debug, info, warn, error; unknown values fall back to text
// and info.
func NewLogger(out io.Writer, format string, level string) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var ze zapcore.Encoder
	switch format {
	case "json":
		ze = zapcore.NewJSONEncoder(cfg)
	default:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		ze = zapcore.NewConsoleEncoder(cfg)
	}
	var zl zapcore.LevelEnabler
	switch level {
	case "debug":
		zl = zapcore.DebugLevel
	case "info":
		zl = zapcore.InfoLevel
	case "warn":
		zl = zapcore.WarnLevel
	case "error":
		zl = zapcore.ErrorLevel
	default:
		zl = zapcore.InfoLevel
	}
	return zap.New(zapcore.NewCore(ze, zapcore.AddSync(out), zl))
}
