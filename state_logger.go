package tracecontext

import (
	"fmt"
	"sync"
	"time"
)

var errNoError = fmt.Errorf("not an error")

// StateLogger is a Logger that reports an error only if logErrorInterval has
// passed since the last report, or the error differs from the last one seen.
// The middlewares use it so a client repeatedly sending the same broken
// traceparent header does not flood the log.
type StateLogger struct {
	logger           Logger
	logErrorInterval time.Duration
	lastError        error
	lastErrorTime    time.Time
	mutex            *sync.Mutex
}

// NewStateLogger creates a new StateLogger around logger.
func NewStateLogger(logger Logger, logErrorInterval time.Duration) *StateLogger {
	return &StateLogger{
		logger:           logger,
		logErrorInterval: logErrorInterval,
		lastError:        errNoError,
		mutex:            &sync.Mutex{},
	}
}

// LogError logs an error if it is different from the last seen error, or if
// logErrorInterval has passed since the last reported error. Errors are
// compared by message since parse errors are freshly allocated per request.
func (se *StateLogger) LogError(err error) {
	se.mutex.Lock()
	defer se.mutex.Unlock()
	if se.lastError != nil && err.Error() == se.lastError.Error() &&
		time.Since(se.lastErrorTime) < se.logErrorInterval {
		return
	}
	se.logger.Log("err", err.Error())
	se.lastError = err
	se.lastErrorTime = time.Now()
}

// Fixed marks the state as fixed so the next error will be logged again.
func (se *StateLogger) Fixed(keyVal ...interface{}) {
	se.mutex.Lock()
	defer se.mutex.Unlock()
	if se.logErrorInterval == 0 || se.lastError == nil {
		return
	}
	se.logger.Log(keyVal...)
	se.lastError = nil
}
