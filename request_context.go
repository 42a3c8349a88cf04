package tms

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// RequestContext carries optional per-call metadata that is sent as headers.
type RequestContext struct {
	// The preferred locale for messages and errors
	//
	// Example: th-TH
	AcceptLanguage string
	// Key the backend uses to deduplicate retried mutations
	//
	// Example: idempotency_key_123
	IdempotencyKey string
	// Unique key for each request for tracing purposes. Generated when empty.
	//
	// Example: 7f1c1d1e-8a3b-4a7e-9c55-0f6f3a2b9d10
	RequestID string
}

type requestContextKey struct{}

// ContextWithRequestContext attaches metadata to ctx for the next call made with it.
func ContextWithRequestContext(ctx context.Context, requestCtx *RequestContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if requestCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, requestContextKey{}, requestCtx)
}

// RequestContextFromContext extracts the metadata previously stored in the context.
func RequestContextFromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}
	if requestCtx, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return requestCtx
	}
	return nil
}

// applyRequestContext sets the metadata headers on h and returns the request id used.
func applyRequestContext(ctx context.Context, h http.Header) string {
	requestID := ""
	if rc := RequestContextFromContext(ctx); rc != nil {
		if v := strings.TrimSpace(rc.AcceptLanguage); v != "" {
			h.Set("Accept-Language", v)
		}
		if v := strings.TrimSpace(rc.IdempotencyKey); v != "" {
			h.Set("Idempotency-Key", v)
		}
		requestID = strings.TrimSpace(rc.RequestID)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	h.Set("Request-Id", requestID)
	return requestID
}
