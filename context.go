package tracecontext

import (
	"context"
	"fmt"

	"github.com/openzipkin/zipkin-go/model"
)

// TraceContext holds one hop's position in a trace as carried by the W3C
// traceparent header: the identity this hop presents to its descendants, the
// trace it belongs to, the hop that caused it and the trace flags.
//
// A TraceContext is a plain value. It is created by Extract, NewRoot or
// Child and holds no external resources; the sampled bit is the only state
// callers mutate after construction.
type TraceContext struct {
	id       model.ID
	version  uint8
	traceID  model.TraceID
	parentID *model.ID
	flags    uint8
}

// ID returns the identity of this hop. Descendants see it as their parent id.
func (tc TraceContext) ID() model.ID { return tc.id }

// Version returns the traceparent format version this context was carried in.
func (tc TraceContext) Version() uint8 { return tc.version }

// TraceID returns the 128-bit identity shared by every hop in the trace.
func (tc TraceContext) TraceID() model.TraceID { return tc.traceID }

// ParentID returns the identity of the hop that caused this one, or nil for
// a trace root.
func (tc TraceContext) ParentID() *model.ID { return tc.parentID }

// Flags returns the raw trace flags byte. Only bit 0 (sampled) is defined;
// the remaining bits round-trip untouched.
func (tc TraceContext) Flags() uint8 { return tc.flags }

// Sampled reports whether the sampled flag bit is set.
func (tc TraceContext) Sampled() bool { return tc.flags&1 == 1 }

// SetSampled sets or clears the sampled flag bit, leaving the other flag
// bits as they were.
func (tc *TraceContext) SetSampled(sampled bool) {
	if sampled {
		tc.flags |= 1
	} else {
		tc.flags &^= 1
	}
}

// Child derives the identity this service presents downstream: same version,
// trace id and flags, a freshly generated id and this context's id as parent.
// It uses the package level propagator; use Propagator.Child to control the
// id generator.
func (tc TraceContext) Child() TraceContext {
	return defaultPropagator.Child(tc)
}

// String renders the canonical traceparent value. The trace id is always 32
// zero padded lowercase hex digits as required by the W3C format; the id and
// flag bytes are fixed width lowercase hex as well.
func (tc TraceContext) String() string {
	return fmt.Sprintf(
		"%02x-%016x%016x-%016x-%02x",
		tc.version, tc.traceID.High, tc.traceID.Low, uint64(tc.id), tc.flags,
	)
}

type ctxKey struct{}

// NewContext stores a TraceContext into Go's context propagation mechanism.
func NewContext(ctx context.Context, tc TraceContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, tc)
}

// FromContext retrieves a TraceContext previously stored with NewContext.
func FromContext(ctx context.Context) (TraceContext, bool) {
	tc, ok := ctx.Value(ctxKey{}).(TraceContext)
	return tc, ok
}
