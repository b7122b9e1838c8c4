package app

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// LogrusLogger tags every entry with the component that emitted it.
type LogrusLogger struct{ l *logrus.Logger }

func NewLogrusLogger(w io.Writer) LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	l.SetLevel(logrus.InfoLevel)
	return LogrusLogger{l: l}
}

func (l LogrusLogger) Infof(component string, format string, args ...interface{}) {
	l.l.WithField("component", component).Infof(format, args...)
}

func (l LogrusLogger) Errorf(component string, format string, args ...interface{}) {
	l.l.WithField("component", component).Errorf(format, args...)
}
