/*
Package tracecontext propagates distributed tracing identity between services
using the W3C traceparent header.

An inbound call site extracts the caller's trace context from its transport
metadata (or starts a fresh trace when none is present), derives a child
identity for its own outbound calls and injects that child back into the
outgoing metadata:

	carrier := tracecontext.HTTPHeadersCarrier(req.Header)
	tc, err := tracecontext.Extract(carrier)
	if err != nil {
		// caller policy: fall back to a new trace or reject
		tc = tracecontext.NewRoot()
	}

	child := tc.Child()
	tracecontext.Inject(child, tracecontext.HTTPHeadersCarrier(outbound.Header))

The package deliberately stops at context propagation: it manages no span
lifecycle, talks to no collector and makes no sampling decision beyond
reading and writing the sampled flag bit.
*/
package tracecontext
