package http

import (
	"net/http"

	tracecontext "github.com/openzipkin-contrib/tracecontext-go"
)

type transport struct {
	rt         http.RoundTripper
	propagator *tracecontext.Propagator
}

// TransportOption configures the client transport.
type TransportOption func(t *transport)

// WithTransportPropagator assigns a custom propagator to the transport.
func WithTransportPropagator(p *tracecontext.Propagator) TransportOption {
	return func(t *transport) { t.propagator = p }
}

// NewTransport wraps rt so every outgoing request carries a traceparent
// header. When the request context holds a TraceContext, a child of it is
// minted per call and sent as the identity this hop presents downstream;
// otherwise a new trace is started. A nil rt uses http.DefaultTransport.
func NewTransport(rt http.RoundTripper, options ...TransportOption) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	t := &transport{
		rt:         rt,
		propagator: tracecontext.NewPropagator(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var outbound tracecontext.TraceContext
	if tc, ok := tracecontext.FromContext(req.Context()); ok {
		outbound = t.propagator.Child(tc)
	} else {
		outbound = t.propagator.NewRoot()
	}

	// RoundTrippers must not mutate the original request.
	req = req.Clone(req.Context())
	t.propagator.Inject(outbound, tracecontext.HTTPHeadersCarrier(req.Header))
	return t.rt.RoundTrip(req)
}
