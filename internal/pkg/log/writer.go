package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelWriter writes each line as a log message with the defined level.
type LevelWriter struct {
	logger *zap.SugaredLogger
	level  zapcore.Level
}

func ToInfoWriter(logger *zap.SugaredLogger) *LevelWriter {
	return &LevelWriter{logger: logger, level: zapcore.InfoLevel}
}

func ToWarnWriter(logger *zap.SugaredLogger) *LevelWriter {
	return &LevelWriter{logger: logger, level: zapcore.WarnLevel}
}

func (w *LevelWriter) Write(p []byte) (n int, err error) {
	lines := strings.TrimRight(string(p), "\n")
	for _, line := range strings.Split(lines, "\n") {
		msg := strings.TrimRight(line, "\n")
		switch w.level {
		case zapcore.WarnLevel:
			w.logger.Warn(msg)
		default:
			w.logger.Info(msg)
		}
	}
	return len(p), nil
}

func (w *LevelWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}
