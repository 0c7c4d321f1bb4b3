package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
)

// withLogging writes one access log line per request and observes its
// duration.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusCode()
		h.metrics.ObserveRequest(method, strconv.Itoa(status), start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
