package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts zerolog.Logger into request context the same way
// withRequestID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	ctx := l.WithContext(r.Context())
	return r.WithContext(ctx)
}

// newTestLogger creates a logger that writes to the provided buffer.
func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

// makeRequest creates a test request with a logger in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := newTestLogger(buf)
	return injectLogger(req, l)
}

// ---- Table test ----

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		handlerDelay     time.Duration
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/items/",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/items/"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 400",
			method:          http.MethodPost,
			path:            "/token",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: `{"status":"error"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/token"`,
				`"status":400`,
			},
		},
		{
			name:          "slow handler",
			method:        http.MethodGet,
			path:          "/items/",
			handlerStatus: http.StatusOK,
			handlerDelay:  20 * time.Millisecond,
			checkLogContains: []string{
				`"status":200`,
				`"duration":`,
			},
		},
	}

	h := &Handler{logger: logger.Nop()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerDelay > 0 {
					time.Sleep(tt.handlerDelay)
				}
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &buf)
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			logOutput := buf.String()
			for _, fragment := range tt.checkLogContains {
				assert.Contains(t, logOutput, fragment)
			}
		})
	}
}

// Exactly one log line per request, whatever the outcome.
func TestWithLogging_SingleLinePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestWithLogging_SetsProcessTimeHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, makeRequest(http.MethodGet, "/", &buf))

	header := rec.Header().Get(processTimeHeader)
	assert.NotEmpty(t, header)
	// seconds with four decimal places
	assert.Regexp(t, `^\d+\.\d{4}$`, header)
}
