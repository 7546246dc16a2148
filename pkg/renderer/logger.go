package renderer

import "github.com/golang/glog"

// GlogLogger implements core.Logger on top of glog at the default info level
type GlogLogger struct{}

// Printf logs a formatted status line
func (GlogLogger) Printf(format string, args ...interface{}) {
	glog.Infof(format, args...)
}
