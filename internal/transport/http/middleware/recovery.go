package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/you-humble/motorcycle-registry/platform/logger"
	motorcyclev1 "github.com/you-humble/motorcycle-registry/pkg/api/motorcycle/v1"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

// Recovery turns a handler panic into a 500 with the usual error body.
func Recovery(l ErrorLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				l.Error(r.Context(), "recovered from panic in http handler", logger.Any("error", rec))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(motorcyclev1.Error{
					Code:    http.StatusInternalServerError,
					Message: http.StatusText(http.StatusInternalServerError),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
