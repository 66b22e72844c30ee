package tracecontext

import (
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
)

// InjectTextMap writes the canonical traceparent value for tc into an
// OpenTracing TextMap style carrier, so hosts already wired for
// opentracing.HTTPHeadersCarrier or TextMapCarrier can reuse their carrier
// types directly.
func (p *Propagator) InjectTextMap(tc TraceContext, carrier opentracing.TextMapWriter) error {
	if carrier == nil {
		return opentracing.ErrInvalidCarrier
	}
	carrier.Set(TraceParentHeader, tc.String())
	return nil
}

// ExtractTextMap decodes trace context from an OpenTracing TextMap style
// carrier. Header keys are matched case insensitively since HTTP header
// carriers report canonicalized keys. Absence of a traceparent entry yields
// a fresh root context, same as Extract.
func (p *Propagator) ExtractTextMap(carrier opentracing.TextMapReader) (TraceContext, error) {
	if carrier == nil {
		return TraceContext{}, opentracing.ErrInvalidCarrier
	}

	var (
		value string
		found bool
	)
	if err := carrier.ForeachKey(func(k, v string) error {
		if strings.ToLower(k) == TraceParentHeader {
			value = v
			found = true
		}
		return nil
	}); err != nil {
		return TraceContext{}, err
	}

	if !found {
		return p.NewRoot(), nil
	}
	return p.Extract(singletonCarrier{value: value})
}

// singletonCarrier presents one already looked up traceparent value through
// the Carrier contract.
type singletonCarrier struct {
	value string
}

func (c singletonCarrier) Get(key string) (string, bool) {
	if key == TraceParentHeader {
		return c.value, true
	}
	return "", false
}

func (c singletonCarrier) Set(key, value string) {}
