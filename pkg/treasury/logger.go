package treasury

import (
	"go.uber.org/zap"
)

// ZapLogger adapts a zap.Logger to Logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps logger. A nil logger discards everything.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{logger: logger}
}

func zapFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		if err, ok := value.(error); ok {
			out = append(out, zap.NamedError(key, err))

			continue
		}

		out = append(out, zap.Any(key, value))
	}

	return out
}

// Debug implements Logger.
func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, zapFields(fields)...)
}

// Info implements Logger.
func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, zapFields(fields)...)
}

// Warn implements Logger.
func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, zapFields(fields)...)
}

// Error implements Logger.
func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// NoopLogger discards everything.
type NoopLogger struct{}

// Debug implements Logger.
func (NoopLogger) Debug(string, map[string]interface{}) {}

// Info implements Logger.
func (NoopLogger) Info(string, map[string]interface{}) {}

// Warn implements Logger.
func (NoopLogger) Warn(string, map[string]interface{}) {}

// Error implements Logger.
func (NoopLogger) Error(string, map[string]interface{}) {}
