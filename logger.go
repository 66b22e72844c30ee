package tracecontext

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// Logger interface used to log propagation diagnostics.
type Logger interface {
	Log(keyvals ...interface{}) error
}

// NewNopLogger provides a Logger that discards all Log data.
func NewNopLogger() Logger {
	return &nopLogger{}
}

// LogWrapper wraps a standard library logger into a Logger compatible with
// this package.
func LogWrapper(l *log.Logger) Logger {
	return &wrappedLogger{l: l}
}

type wrappedLogger struct {
	l *log.Logger
}

func (l *wrappedLogger) Log(k ...interface{}) error {
	if len(k)%2 == 1 {
		k = append(k, "(MISSING)")
	}
	o := make([]string, 0, len(k)/2)
	for i := 0; i < len(k); i += 2 {
		key, ok := k[i].(string)
		if !ok {
			return errors.New("keys must be strings")
		}
		o = append(o, key+"="+fmt.Sprint(k[i+1]))
	}
	l.l.Println(strings.Join(o, " "))
	return nil
}

type nopLogger struct{}

func (*nopLogger) Log(_ ...interface{}) error { return nil }
