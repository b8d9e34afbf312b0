package model

// Logger is the logger the service clients write request traces to.
// Both log.Log and log.Interface from apex/log implement it.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
}

// DiscardLogger is a [Logger] that drops every message.
var DiscardLogger Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...any) {}
func (discardLogger) Infof(string, ...any)  {}
func (discardLogger) Warnf(string, ...any)  {}

// ValidLoggerOrDefault returns logger, or [DiscardLogger] if logger is nil.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger == nil {
		return DiscardLogger
	}
	return logger
}
