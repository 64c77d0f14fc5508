package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/inventory-master/internal/logger"
)

// withLogging wraps the downstream handler with the capturing responseWriter
// and emits exactly one structured log line per request, after the handler
// has returned. The wrapper also gives every response its processing-time
// header via the responseWriter.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
			start:          start,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
