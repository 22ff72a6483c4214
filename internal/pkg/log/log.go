// Package log provides the CLI logger: a tee of the stdout, stderr
// and optional log file cores.
//
// Messages with the info level (and debug, in verbose mode) go to stdout.
// Warnings and errors go to stderr. The log file, if any, gets everything.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a logger for the CLI according to the verbosity.
func NewLogger(stdout io.Writer, stderr io.Writer, logFile io.Writer, verbose bool) *zap.SugaredLogger {
	var cores []zapcore.Core

	// Log to file
	if logFile != nil {
		cores = append(cores, fileCore(logFile))
	}

	// Log to stdout
	cores = append(cores, stdoutCore(stdout, verbose))

	// Log to stderr
	cores = append(cores, stderrCore(stderr))

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// stdoutCore logs info messages, and debug messages in verbose mode.
func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	enabler := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if verbose {
			return l < zapcore.WarnLevel
		}
		return l == zapcore.InfoLevel
	})
	return zapcore.NewCore(consoleEncoder(false), zapcore.AddSync(stdout), enabler)
}

// stderrCore logs warnings and errors.
func stderrCore(stderr io.Writer) zapcore.Core {
	enabler := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	})
	return zapcore.NewCore(consoleEncoder(true), zapcore.AddSync(stderr), enabler)
}

// fileCore logs all messages as JSON lines.
func fileCore(logFile io.Writer) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		LevelKey:    "level",
		TimeKey:     "time",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
		LineEnding:  zapcore.DefaultLineEnding,
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(logFile), zapcore.DebugLevel)
}

// consoleEncoder encodes the bare message, optionally prefixed with the level.
func consoleEncoder(withLevel bool) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
	}
	if withLevel {
		encoderConfig.LevelKey = "level"
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}
