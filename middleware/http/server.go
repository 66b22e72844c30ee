// Package http provides net/http server middleware and a client
// RoundTripper that propagate W3C trace context on behalf of the host
// application.
package http

import (
	"net/http"
	"time"

	tracecontext "github.com/openzipkin-contrib/tracecontext-go"
)

const defaultLogErrorInterval = 10 * time.Second

type handler struct {
	next       http.Handler
	propagator *tracecontext.Propagator
	errLogger  *tracecontext.StateLogger
}

// ServerOption configures the server middleware.
type ServerOption func(h *handler)

// WithPropagator assigns a custom propagator to the middleware.
func WithPropagator(p *tracecontext.Propagator) ServerOption {
	return func(h *handler) { h.propagator = p }
}

// WithLogger assigns a logger used to report malformed traceparent headers.
// Reports of the same malformed value are rate limited.
func WithLogger(l tracecontext.Logger) ServerOption {
	return func(h *handler) {
		h.errLogger = tracecontext.NewStateLogger(l, defaultLogErrorInterval)
	}
}

// Middleware returns an http.Handler middleware that extracts trace context
// from the incoming request and stores it in the request context, where
// handlers retrieve it with tracecontext.FromContext.
//
// A request without a traceparent header starts a new trace. A request with
// a malformed one is not rejected: the error is logged and a fresh root
// context is used, so a broken upstream header never fails a request.
func Middleware(options ...ServerOption) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		h := &handler{
			next:       next,
			propagator: tracecontext.NewPropagator(),
			errLogger:  tracecontext.NewStateLogger(tracecontext.NewNopLogger(), defaultLogErrorInterval),
		}
		for _, option := range options {
			option(h)
		}
		return h
	}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tc, err := h.propagator.Extract(tracecontext.HTTPHeadersCarrier(r.Header))
	if err != nil {
		h.errLogger.LogError(err)
		tc = h.propagator.NewRoot()
	}
	h.next.ServeHTTP(w, r.WithContext(tracecontext.NewContext(r.Context(), tc)))
}
