package tracecontext_test

import (
	"context"
	"testing"

	tracecontext "github.com/openzipkin-contrib/tracecontext-go"
)

func TestSetSampledTouchesOnlyBitZero(t *testing.T) {
	// 0xfe has every flag bit set except sampled.
	tc, err := tracecontext.Extract(tracecontext.MapCarrier{"traceparent": "00-01-02-fe"})
	if err != nil {
		t.Fatalf("Extract failed: %+v", err)
	}

	if tc.Sampled() {
		t.Error("Sampled want false, have true")
	}

	tc.SetSampled(true)
	if !tc.Sampled() {
		t.Error("Sampled want true, have false")
	}
	if want, have := uint8(0xff), tc.Flags(); want != have {
		t.Errorf("Flags want %#x, have %#x", want, have)
	}

	tc.SetSampled(false)
	if tc.Sampled() {
		t.Error("Sampled want false, have true")
	}
	if want, have := uint8(0xfe), tc.Flags(); want != have {
		t.Errorf("Flags want %#x, have %#x", want, have)
	}
}

func TestSetSampledIdempotent(t *testing.T) {
	tc := tracecontext.NewRoot()

	tc.SetSampled(true)
	tc.SetSampled(true)
	if want, have := uint8(1), tc.Flags(); want != have {
		t.Errorf("Flags want %d, have %d", want, have)
	}

	tc.SetSampled(false)
	tc.SetSampled(false)
	if want, have := uint8(0), tc.Flags(); want != have {
		t.Errorf("Flags want %d, have %d", want, have)
	}
}

func TestNewRootDefaults(t *testing.T) {
	a := tracecontext.NewRoot()
	b := tracecontext.NewRoot()

	if want, have := uint8(0), a.Version(); want != have {
		t.Errorf("Version want %d, have %d", want, have)
	}
	if a.ParentID() != nil {
		t.Errorf("ParentID want nil, have %v", a.ParentID())
	}
	if !a.Sampled() {
		t.Error("Sampled want true, have false")
	}
	if a.TraceID() == b.TraceID() {
		t.Errorf("trace ids of independent roots want distinct values, both have %v", a.TraceID())
	}
	if a.ID() == b.ID() {
		t.Errorf("ids of independent roots want distinct values, both have %v", a.ID())
	}
	// the hop id is drawn independently of the trace id
	if uint64(a.ID()) == a.TraceID().Low && uint64(b.ID()) == b.TraceID().Low {
		t.Error("root ids want values independent of the trace id, have its low word")
	}
}

func TestStringMatchesInjectedValue(t *testing.T) {
	tc := tracecontext.NewRoot()

	carrier := tracecontext.MapCarrier{}
	tracecontext.Inject(tc, carrier)

	if want, have := carrier["traceparent"], tc.String(); want != have {
		t.Errorf("String want %q, have %q", want, have)
	}
	if want, have := 55, len(tc.String()); want != have {
		t.Errorf("canonical length want %d, have %d", want, have)
	}
}

func TestContextPlumbing(t *testing.T) {
	if _, ok := tracecontext.FromContext(context.Background()); ok {
		t.Error("FromContext on empty context want ok=false, have true")
	}

	tc := tracecontext.NewRoot()
	ctx := tracecontext.NewContext(context.Background(), tc)

	got, ok := tracecontext.FromContext(ctx)
	if !ok {
		t.Fatal("FromContext want ok=true, have false")
	}
	if want, have := tc.ID(), got.ID(); want != have {
		t.Errorf("ID want %d, have %d", want, have)
	}
}
