package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	mw "github.com/passcheck/passcheck-go/internal/middleware"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "missing header", incoming: "", wantSame: false},
		{name: "valid header is kept", incoming: "abc-123", wantSame: true},
		{name: "invalid header is replaced", incoming: "bad id with spaces", wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromCtx string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = mw.RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(mw.RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			mw.RequestID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(mw.RequestIDHeader)
			if got != fromCtx {
				t.Errorf("header id %q differs from context id %q", got, fromCtx)
			}
			if tt.wantSame {
				if got != tt.incoming {
					t.Errorf("Expected id %q, got %q", tt.incoming, got)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("Expected generated UUID, got %q", got)
			}
		})
	}
}
