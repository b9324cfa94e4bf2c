package mockapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ANcpLua/qyl/pkg/transport"
)

// RequestsServed counts handled requests by method, route pattern and status.
var RequestsServed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "qyl_mock_requests_total",
		Help: "Requests served by the mock qyl API",
	},
	[]string{"method", "route", "status"},
)

func init() {
	prometheus.MustRegister(RequestsServed)
}

// statusRecorder captures the status code for the access log. It forwards
// Flush through Unwrap so streaming handlers keep working.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// withRequestID echoes the caller's X-Request-ID, or assigns one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(transport.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(transport.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(transport.ContextWithRequestID(r.Context(), id)))
	})
}

// withRecovery turns handler panics into 500 problems.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				h.logger.Error("handler panic", "path", r.URL.Path, "panic", v)
				h.internal(w, r, fmt.Errorf("panic: %v", v))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		id := transport.RequestIDFromContext(r.Context())
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		RequestsServed.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		h.logger.LogAttrs(r.Context(), slog.LevelInfo, "mock request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.String("request_id", id),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
