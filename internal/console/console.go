// Package console holds the CLI's diagnostic logger and the coloured
// success/failure lines shown to the operator.
package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Log is the process-wide diagnostic logger. It writes text records to stderr
// at info level until SetVerbose is called.
var Log = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetVerbose switches debug records on or off.
func SetVerbose(enabled bool) {
	if enabled {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	Log.SetLevel(logrus.InfoLevel)
}

// SetOutput redirects diagnostic records.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// Success writes a green line to w.
func Success(w io.Writer, format string, args ...any) {
	green.Fprintf(w, format+"\n", args...)
}

// Failure writes a red line to w.
func Failure(w io.Writer, format string, args ...any) {
	red.Fprintf(w, format+"\n", args...)
}
