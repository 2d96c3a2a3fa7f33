package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"meetpay/internal/app/logger"
)

// Log attaches the request logger and emits one access line per request.
func Log(l logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		h := hlog.NewHandler(l.Logger)

		access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("Request handled")
		})

		return h(access(next))
	}
}
