package pagetree

import "log/slog"

// Logger receives structural events from a Tree: root promotions and rejected
// input. The method set is a subset of *slog.Logger, so a slog logger can be
// passed directly. Package logger adapts logrus and zap.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
}

var _ Logger = (*slog.Logger)(nil)

// DiscardLogger drops every event. It is the default.
type DiscardLogger struct{}

func (DiscardLogger) Error(string, ...any) {}

func (DiscardLogger) Warn(string, ...any) {}

func (DiscardLogger) Info(string, ...any) {}
