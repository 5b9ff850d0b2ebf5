package smpp

import "github.com/sirupsen/logrus"

// Logger is the logging facade the session engine and client call
// through. Shape grounded on ajankovic-smpp/session.go's Logger
// interface; the default implementation here is backed by logrus
// instead of the pack's flag-gated log.Printf.
type Logger interface {
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
}

// logrusLogger adapts a *logrus.Logger to the Logger interface.
type logrusLogger struct {
	l *logrus.Logger
}

// NewLogrusLogger wraps l, or a newly constructed *logrus.Logger with
// text output at Info level if l is nil.
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.New()
	}
	return &logrusLogger{l: l}
}

func (g *logrusLogger) Debugf(msg string, args ...interface{}) { g.l.Debugf(msg, args...) }
func (g *logrusLogger) Infof(msg string, args ...interface{})  { g.l.Infof(msg, args...) }
func (g *logrusLogger) Errorf(msg string, args ...interface{}) { g.l.Errorf(msg, args...) }

// noopLogger discards everything; used when the caller passes no Logger
// and prefers silence over logrus's default stderr output.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}
