package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// ServerErrorRenderer writes the generic 500 response.
type ServerErrorRenderer interface {
	ServerError(w http.ResponseWriter, r *http.Request)
}

// Recoverer turns a panic into a logged stack trace and the 500 page.
func Recoverer(pages ServerErrorRenderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				slog.ErrorContext(r.Context(), "recovered from panic",
					"panic", rvr,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
					"stack", string(debug.Stack()),
				)
				pages.ServerError(w, r)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
