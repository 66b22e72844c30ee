package tracecontext

import (
	"strconv"
	"strings"

	"github.com/openzipkin/zipkin-go/idgenerator"
	"github.com/openzipkin/zipkin-go/model"
)

const traceParentFieldCount = 4

// Propagator encodes and decodes trace context through Carriers. Every
// identity it mints comes from its IDGenerator, so tests can swap in a
// deterministic generator while production code shares the random default.
type Propagator struct {
	gen idgenerator.IDGenerator
}

// PropagatorOption allows for functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
type PropagatorOption func(p *Propagator)

// WithIDGenerator assigns a custom id generator used for minting trace and
// hop identities. The generator must be safe for concurrent use.
func WithIDGenerator(gen idgenerator.IDGenerator) PropagatorOption {
	return func(p *Propagator) {
		p.gen = gen
	}
}

// NewPropagator returns a Propagator backed by a random 128-bit id generator
// unless overridden through options.
func NewPropagator(opts ...PropagatorOption) *Propagator {
	p := &Propagator{
		gen: idgenerator.NewRandom128(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultPropagator = NewPropagator()

// newID mints a fresh hop identity. SpanID must be handed an empty trace id:
// zipkin-go generators reuse traceID.Low as the span id when the trace id is
// non-empty (zipkin's root-span-id convention), which would make every hop in
// a trace share one identity.
func (p *Propagator) newID() model.ID {
	return p.gen.SpanID(model.TraceID{})
}

// NewRoot fabricates the context that starts a new trace: fresh random trace
// id and hop id, no parent, version 0 and the sampled flag set.
func (p *Propagator) NewRoot() TraceContext {
	return TraceContext{
		id:      p.newID(),
		version: 0,
		traceID: p.gen.TraceID(),
		flags:   1,
	}
}

// Child derives the identity to present downstream of parent: same version,
// trace id and flags, a fresh hop id and parent's id as the parent id.
func (p *Propagator) Child(parent TraceContext) TraceContext {
	parentID := parent.id
	return TraceContext{
		id:       p.newID(),
		version:  parent.version,
		traceID:  parent.traceID,
		parentID: &parentID,
		flags:    parent.flags,
	}
}

// Extract decodes the trace context found in carrier. A missing traceparent
// entry is not an error: it signals that no trace exists yet, so a fresh
// root context is returned. A present but malformed value fails the whole
// extraction with a *ParseError; the caller decides whether to fall back to
// a root context or reject the request.
//
// The incoming parent/span id field describes the caller's identity, not
// this hop's, so the decoded value becomes the new context's parent id and a
// fresh id is generated for the context itself.
func (p *Propagator) Extract(carrier Carrier) (TraceContext, error) {
	value, ok := carrier.Get(TraceParentHeader)
	if !ok {
		return p.NewRoot(), nil
	}

	parts := strings.Split(value, "-")
	if len(parts) != traceParentFieldCount {
		return TraceContext{}, &ParseError{
			Field: "traceparent",
			Value: value,
			Err:   ErrMalformedTraceParent,
		}
	}

	version, err := strconv.ParseUint(parts[0], 16, 8)
	if err != nil {
		return TraceContext{}, &ParseError{Field: "version", Value: parts[0], Err: err}
	}
	traceID, err := model.TraceIDFromHex(parts[1])
	if err != nil {
		return TraceContext{}, &ParseError{Field: "trace ID", Value: parts[1], Err: err}
	}
	parentID, err := strconv.ParseUint(parts[2], 16, 64)
	if err != nil {
		return TraceContext{}, &ParseError{Field: "parent ID", Value: parts[2], Err: err}
	}
	flags, err := strconv.ParseUint(parts[3], 16, 8)
	if err != nil {
		return TraceContext{}, &ParseError{Field: "flags", Value: parts[3], Err: err}
	}

	parent := model.ID(parentID)
	return TraceContext{
		id:       p.newID(),
		version:  uint8(version),
		traceID:  traceID,
		parentID: &parent,
		flags:    uint8(flags),
	}, nil
}

// Inject writes the canonical traceparent value for tc into carrier,
// overwriting any previous entry. The internal fields are already valid
// integers so serialization cannot fail; a carrier rejecting the value is a
// carrier level concern.
func (p *Propagator) Inject(tc TraceContext, carrier Carrier) {
	carrier.Set(TraceParentHeader, tc.String())
}

// NewRoot fabricates a root context using the package level propagator.
func NewRoot() TraceContext { return defaultPropagator.NewRoot() }

// Extract decodes carrier using the package level propagator.
func Extract(carrier Carrier) (TraceContext, error) {
	return defaultPropagator.Extract(carrier)
}

// Inject writes tc into carrier using the package level propagator.
func Inject(tc TraceContext, carrier Carrier) {
	defaultPropagator.Inject(tc, carrier)
}
