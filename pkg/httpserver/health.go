package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/didley/decimal-input/pkg/logger"
)

// Check is a readiness probe of one dependency.
type Check func(ctx context.Context) error

// HealthHandler answers liveness probes with 200 "ALIVE" when no checks are
// given. With checks it answers 200 "READY" when all pass and 503
// "NOT_READY" on the first failure.
func HealthHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Component("httpserver"), logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
