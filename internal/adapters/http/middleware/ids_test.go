package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses incoming header", incoming: "req-123"},
		{name: "generates uuid when missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotCtx string
			h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotCtx = middleware.RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			rec := serve(h, req)

			gotHeader := rec.Header().Get("X-Request-ID")
			if gotHeader != gotCtx {
				t.Errorf("header %q != context %q", gotHeader, gotCtx)
			}
			if tt.incoming != "" {
				if gotCtx != tt.incoming {
					t.Errorf("RequestIDFromContext() = %q, want %q", gotCtx, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(gotCtx); err != nil {
				t.Errorf("generated id %q is not a UUID: %v", gotCtx, err)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		want     string
	}{
		{name: "reuses incoming header", incoming: "corr-1", want: "corr-1"},
		{name: "falls back to request id", want: "req-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			h := middleware.Chain(middleware.RequestID(), middleware.CorrelationID())(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					got = middleware.CorrelationIDFromContext(r.Context())
				}),
			)

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-Request-ID", "req-9")
			if tt.incoming != "" {
				req.Header.Set("X-Correlation-ID", tt.incoming)
			}
			rec := serve(h, req)

			if got != tt.want {
				t.Errorf("CorrelationIDFromContext() = %q, want %q", got, tt.want)
			}
			if h := rec.Header().Get("X-Correlation-ID"); h != tt.want {
				t.Errorf("X-Correlation-ID = %q, want %q", h, tt.want)
			}
		})
	}
}

func TestIDsFromEmptyContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", id)
	}
}
