// Package logger builds the process logger and the fields shared by the
// workflow logs.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the logger of the cli. Logs always go to stderr; stdout is
// reserved for results.
func New(json bool, debug bool) *zap.Logger {
	return NewWithSink(zapcore.Lock(os.Stderr), json, debug)
}

// NewWithSink is New writing to sink.
func NewWithSink(sink zapcore.WriteSyncer, json bool, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zapcore.EncoderConfig{
		MessageKey:   "step",
		LevelKey:     "level",
		TimeKey:      "time",
		NameKey:      "component",
		CallerKey:    "caller",
		EncodeTime:   zapcore.RFC3339TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
		EncodeName:   zapcore.FullNameEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
	}

	var encoder zapcore.Encoder
	if json {
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	opts := []zap.Option{zap.ErrorOutput(sink)}
	if debug {
		opts = append(opts, zap.AddCaller())
	}

	return zap.New(zapcore.NewCore(encoder, sink, level), opts...)
}

// Preview flattens body onto one line and cuts it to limit runes, noting the
// original size when something was cut.
func Preview(body string, limit int) string {
	if limit <= 0 {
		return ""
	}

	flat := strings.Join(strings.Fields(body), " ")
	runes := []rune(flat)
	if len(runes) <= limit {
		return flat
	}

	return fmt.Sprintf("%s... (%d bytes)", string(runes[:limit]), len(body))
}
