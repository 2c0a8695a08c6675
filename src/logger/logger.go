// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for user-facing report output.
// It carries the per-file pass/fail lines, never leveled diagnostics.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stdout with timestamps disabled.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// LevelForVerbosity maps the repeatable -v count to a zap level:
// 0 error, 1 warning, 2 info, 3 or more debug.
func LevelForVerbosity(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.ErrorLevel
	case verbosity == 1:
		return zapcore.WarnLevel
	case verbosity == 2:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// NewLeveled returns a console zap logger for CLI diagnostics.
// Entries carry no timestamp so that runs are reproducible in CI logs.
func NewLeveled(w io.Writer, verbosity int) *zap.Logger {
	cfg := zapcore.EncoderConfig{
		LevelKey:       "level",
		MessageKey:     "msg",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
	}
	return newZap(zapcore.NewConsoleEncoder(cfg), w, verbosity)
}

// NewStructured returns a JSON zap logger for [MCP] server mode.
// MCP traffic owns stdout, so w should be stderr or a file.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewStructured(w io.Writer, verbosity int) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return newZap(zapcore.NewJSONEncoder(cfg), w, verbosity)
}

func newZap(enc zapcore.Encoder, w io.Writer, verbosity int) *zap.Logger {
	if w == nil {
		w = io.Discard
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), LevelForVerbosity(verbosity))
	return zap.New(core)
}
