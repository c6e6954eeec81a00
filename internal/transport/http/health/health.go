package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/motorcycle-registry/platform/logger"
)

const readyTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("SERVING")); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}

// Readiness reports 503 until the database answers a ping.
func Readiness(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn(r.Context(), "readiness check failed", logger.ErrorF(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_SERVING"))
			return
		}

		if _, err := w.Write([]byte("SERVING")); err != nil {
			logger.Error(r.Context(), "readiness check", logger.ErrorF(err))
		}
	}
}
