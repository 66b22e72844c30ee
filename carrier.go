package tracecontext

import "net/http"

// TraceParentHeader is the single carrier key the codec reads and writes.
const TraceParentHeader = "traceparent"

// Carrier is the transport metadata store trace context travels in. It is a
// narrow view of whatever container the transport uses for string keyed
// metadata, so any header map or message metadata type can satisfy it
// without the codec depending on that transport.
//
// Get reports presence explicitly: a missing traceparent entry tells Extract
// to start a new trace, which is different from a present but unparseable
// value.
type Carrier interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MapCarrier is a Carrier over a plain string map, useful for tests and for
// transports whose metadata already is a map.
type MapCarrier map[string]string

// Get implements Carrier.
func (c MapCarrier) Get(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

// Set implements Carrier.
func (c MapCarrier) Set(key, value string) {
	c[key] = value
}

// HTTPHeadersCarrier is a Carrier over net/http headers.
type HTTPHeadersCarrier http.Header

// Get implements Carrier.
func (c HTTPHeadersCarrier) Get(key string) (string, bool) {
	h := http.Header(c)
	if len(h.Values(key)) == 0 {
		return "", false
	}
	return h.Get(key), true
}

// Set implements Carrier.
func (c HTTPHeadersCarrier) Set(key, value string) {
	http.Header(c).Set(key, value)
}
