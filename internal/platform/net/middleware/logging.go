package middleware

import (
	"net/http"

	"courtledger/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// LogContext bridges the chi request id into the logger context so
// logger.C(ctx) lines carry request_id. Mount after RequestID()
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			r = r.WithContext(logger.WithRequest(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
