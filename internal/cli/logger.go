package cli

import (
	"github.com/sirupsen/logrus"
)

// logrusAdapter exposes a logrus logger through the engine's Logger
// interface.
type logrusAdapter struct {
	log *logrus.Logger
}

func (a *logrusAdapter) Debugf(format string, args ...any) { a.log.Debugf(format, args...) }
func (a *logrusAdapter) Infof(format string, args ...any)  { a.log.Infof(format, args...) }
func (a *logrusAdapter) Warnf(format string, args ...any)  { a.log.Warnf(format, args...) }
func (a *logrusAdapter) Errorf(format string, args ...any) { a.log.Errorf(format, args...) }
