package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the diagnostic logger. Verbose runs get human-readable
// debug output; otherwise only errors reach w, JSON-encoded. The CLI
// reports warnings itself.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if w == nil {
		return zap.NewNop()
	}

	var (
		enc   zapcore.Encoder
		level zapcore.Level
	)
	if verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.ErrorLevel
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}
