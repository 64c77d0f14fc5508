package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// requestIDHeader carries the correlation ID. Incoming values are echoed
// back so callers can thread their own IDs through; otherwise a fresh UUID
// is minted.
const requestIDHeader = "X-Request-ID"

// withRequestID tags every request with a correlation ID: the ID goes into
// the response header and onto a child logger stored in the request context,
// so every log line downstream carries request_id.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
