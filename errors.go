package tracecontext

import (
	"errors"
	"fmt"
)

// ErrMalformedTraceParent is wrapped by the ParseError returned when a
// traceparent value does not split into the four hyphen delimited fields the
// format requires.
var ErrMalformedTraceParent = errors.New("malformed traceparent header")

// ParseError is the error returned by Extract when a traceparent value is
// present but cannot be decoded. Field names the traceparent field that
// failed and Value carries the offending input.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid traceparent %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
