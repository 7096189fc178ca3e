package logger

import (
	"github.com/sirupsen/logrus"

	"pagetree"
)

// Logrus wraps a logrus.Logger to implement pagetree.Logger.
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus creates a pagetree.Logger from a logrus.Logger.
func NewLogrus(logger *logrus.Logger) pagetree.Logger {
	return &Logrus{logger: logger}
}

func (l *Logrus) Error(msg string, args ...any) {
	l.logger.WithFields(fieldsFromArgs(args)).Error(msg)
}

func (l *Logrus) Warn(msg string, args ...any) {
	l.logger.WithFields(fieldsFromArgs(args)).Warn(msg)
}

func (l *Logrus) Info(msg string, args ...any) {
	l.logger.WithFields(fieldsFromArgs(args)).Info(msg)
}
