package tracecontext_test

import (
	"fmt"
	"net/http"

	tracecontext "github.com/openzipkin-contrib/tracecontext-go"
)

func ExampleExtract() {
	header := http.Header{}
	header.Set("traceparent", "00-0af7651916cd43dd8448eb211c80319c-00f067aa0ba902b7-01")

	tc, err := tracecontext.Extract(tracecontext.HTTPHeadersCarrier(header))
	if err != nil {
		panic(err)
	}

	fmt.Println(tc.TraceID())
	fmt.Println(tc.ParentID())
	fmt.Println(tc.Sampled())
	// Output:
	// 0af7651916cd43dd8448eb211c80319c
	// 00f067aa0ba902b7
	// true
}

func ExampleInject() {
	inbound := http.Header{}
	inbound.Set("traceparent", "00-00000000000000000000000000000001-0000000000000002-01")

	parent, err := tracecontext.Extract(tracecontext.HTTPHeadersCarrier(inbound))
	if err != nil {
		panic(err)
	}

	outbound := http.Header{}
	tracecontext.Inject(parent, tracecontext.HTTPHeadersCarrier(outbound))

	child, err := tracecontext.Extract(tracecontext.HTTPHeadersCarrier(outbound))
	if err != nil {
		panic(err)
	}

	fmt.Println(child.Version() == parent.Version())
	fmt.Println(child.TraceID() == parent.TraceID())
	fmt.Println(*child.ParentID() == parent.ID())
	fmt.Println(child.Flags() == parent.Flags())
	// Output:
	// true
	// true
	// true
	// true
}
