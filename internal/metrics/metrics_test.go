package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream_LabelsOutcome(t *testing.T) {
	ok := UpstreamRequestsTotal.WithLabelValues(UpstreamOONI, "test_op", "ok")
	bad := UpstreamRequestsTotal.WithLabelValues(UpstreamOONI, "test_op", "error")
	okBefore, badBefore := testutil.ToFloat64(ok), testutil.ToFloat64(bad)

	ObserveUpstream(UpstreamOONI, "test_op", time.Now(), nil)
	ObserveUpstream(UpstreamOONI, "test_op", time.Now(), errors.New("boom"))
	ObserveUpstream(UpstreamOONI, "test_op", time.Now(), errors.New("boom"))

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Fatalf("expected 1 ok observation, got %v", got)
	}
	if got := testutil.ToFloat64(bad) - badBefore; got != 2 {
		t.Fatalf("expected 2 error observations, got %v", got)
	}
}

func TestFallback_Increments(t *testing.T) {
	c := FallbacksTotal.WithLabelValues(UpstreamMLab, "test_fallback")
	before := testutil.ToFloat64(c)
	Fallback(UpstreamMLab, "test_fallback")
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Fatalf("expected 1 fallback, got %v", got)
	}
}
