// Package grpc propagates W3C trace context through gRPC request metadata
// with unary client and server interceptors.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	tracecontext "github.com/openzipkin-contrib/tracecontext-go"
)

const defaultLogErrorInterval = 10 * time.Second

// MetadataCarrier adapts gRPC metadata to the tracecontext Carrier contract.
// gRPC metadata keys are lowercase, matching the traceparent key as is.
type MetadataCarrier metadata.MD

// Get implements tracecontext.Carrier.
func (c MetadataCarrier) Get(key string) (string, bool) {
	values := metadata.MD(c).Get(key)
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// Set implements tracecontext.Carrier.
func (c MetadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

type options struct {
	propagator *tracecontext.Propagator
	errLogger  *tracecontext.StateLogger
}

// Option configures the interceptors.
type Option func(o *options)

// WithPropagator assigns a custom propagator to an interceptor.
func WithPropagator(p *tracecontext.Propagator) Option {
	return func(o *options) { o.propagator = p }
}

// WithLogger assigns a logger used by the server interceptor to report
// malformed traceparent metadata. Repeated reports are rate limited.
func WithLogger(l tracecontext.Logger) Option {
	return func(o *options) {
		o.errLogger = tracecontext.NewStateLogger(l, defaultLogErrorInterval)
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		propagator: tracecontext.NewPropagator(),
		errLogger:  tracecontext.NewStateLogger(tracecontext.NewNopLogger(), defaultLogErrorInterval),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// UnaryClientInterceptor returns an interceptor that injects a traceparent
// entry into the outgoing metadata of every call. When the call context
// holds a TraceContext a child of it is sent; otherwise a new trace starts
// at this hop.
func UnaryClientInterceptor(opts ...Option) grpc.UnaryClientInterceptor {
	o := applyOptions(opts)
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		callOpts ...grpc.CallOption,
	) error {
		var outbound tracecontext.TraceContext
		if tc, ok := tracecontext.FromContext(ctx); ok {
			outbound = o.propagator.Child(tc)
		} else {
			outbound = o.propagator.NewRoot()
		}

		md, ok := metadata.FromOutgoingContext(ctx)
		if ok {
			md = md.Copy()
		} else {
			md = metadata.MD{}
		}
		o.propagator.Inject(outbound, MetadataCarrier(md))

		return invoker(metadata.NewOutgoingContext(ctx, md), method, req, reply, cc, callOpts...)
	}
}

// UnaryServerInterceptor returns an interceptor that extracts trace context
// from incoming metadata and stores it in the handler context. Missing
// metadata starts a new trace; malformed metadata is logged and replaced by
// a fresh root context rather than failing the call.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	o := applyOptions(opts)
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			md = metadata.MD{}
		}

		tc, err := o.propagator.Extract(MetadataCarrier(md))
		if err != nil {
			o.errLogger.LogError(err)
			tc = o.propagator.NewRoot()
		}

		return handler(tracecontext.NewContext(ctx, tc), req)
	}
}
