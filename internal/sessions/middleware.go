package sessions

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey struct{}

// Attach stores the caller's live session in the request context when the
// request carries one. Requests without a session pass through unchanged.
func Attach(s System) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, ok := s.Lookup(r); ok {
				r = r.WithContext(context.WithValue(r.Context(), contextKey{}, sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Middleware resolves the caller's session, creating one when absent, and
// stores it in the request context. A session already attached upstream is
// reused.
func Middleware(s System, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if FromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := s.Resolve(w, r)
			if err != nil {
				logger.Error("session resolve failed", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, sess)))
		})
	}
}

// FromContext returns the session stored by Attach or Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(contextKey{}).(*Session)
	return sess
}
