package tms

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestApplyRequestContext(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestContext(context.Background(), &RequestContext{
		AcceptLanguage: " th-TH ",
		IdempotencyKey: "idem-123",
		RequestID:      " req-123 ",
	})
	h := make(http.Header)
	got := applyRequestContext(ctx, h)
	if got != "req-123" {
		t.Fatalf("unexpected request id %q", got)
	}
	if h.Get("Accept-Language") != "th-TH" {
		t.Fatalf("unexpected accept-language %q", h.Get("Accept-Language"))
	}
	if h.Get("Idempotency-Key") != "idem-123" {
		t.Fatalf("unexpected idempotency key %q", h.Get("Idempotency-Key"))
	}
	if h.Get("Request-Id") != "req-123" {
		t.Fatalf("unexpected request id header %q", h.Get("Request-Id"))
	}
}

func TestApplyRequestContextGeneratesID(t *testing.T) {
	t.Parallel()

	h := make(http.Header)
	got := applyRequestContext(context.Background(), h)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected uuid request id, got %q", got)
	}
	if h.Get("Request-Id") != got {
		t.Fatalf("header %q does not match %q", h.Get("Request-Id"), got)
	}
	if h.Get("Idempotency-Key") != "" || h.Get("Accept-Language") != "" {
		t.Fatalf("unexpected headers %v", h)
	}
	if other := applyRequestContext(context.Background(), make(http.Header)); other == got {
		t.Fatalf("request ids must differ between calls")
	}
}

func TestRequestContextRoundTrip(t *testing.T) {
	t.Parallel()

	requestCtx := &RequestContext{RequestID: "req-1"}
	ctx := ContextWithRequestContext(context.Background(), requestCtx)
	got := RequestContextFromContext(ctx)
	if got == nil {
		t.Fatalf("expected request context on context")
	}
	if got.RequestID != "req-1" {
		t.Fatalf("unexpected request id %q", got.RequestID)
	}
	if RequestContextFromContext(context.Background()) != nil {
		t.Fatalf("expected nil when request context not set")
	}
	if ContextWithRequestContext(ctx, nil) != ctx {
		t.Fatalf("nil request context should return ctx unchanged")
	}
}
