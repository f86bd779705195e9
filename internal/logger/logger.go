package logger

import (
	"io"
	"log"
)

// Logger writes leveled, printf-style log messages.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger that writes to w.  Debug messages are dropped unless
// verbose is set.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{l: log.New(w, "huffpack: ", log.LstdFlags), verbose: verbose}
}

func (l *stdLogger) Debugf(format string, v ...any) {
	if l.verbose {
		l.l.Printf("[DEBUG] "+format, v...)
	}
}

func (l *stdLogger) Infof(format string, v ...any)  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf("[ERROR] "+format, v...) }
