package observability

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type routeKey struct{}

// WithRoute labels requests made with ctx by their URL template, which keeps
// the route label bounded regardless of path parameter values.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeKey{}, route)
}

// RouteFromContext returns the route set by WithRoute, or "unknown".
func RouteFromContext(ctx context.Context) string {
	if r, ok := ctx.Value(routeKey{}).(string); ok && r != "" {
		return r
	}
	return "unknown"
}

// InstrumentTransport wraps next to record qyl_client_* metrics. Event
// stream responses hold the streams gauge until their body is closed.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()
		route := RouteFromContext(req.Context())

		resp, err := next.RoundTrip(req)

		RequestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
		status := "error"
		if err == nil {
			status = strconv.Itoa(resp.StatusCode/100) + "xx"
		}
		RequestsTotal.WithLabelValues(req.Method, route, status).Inc()

		if err == nil && resp.StatusCode/100 == 2 &&
			strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
			StreamsActive.Inc()
			resp.Body = &streamBody{ReadCloser: resp.Body}
		}
		return resp, err
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// streamBody decrements the streams gauge exactly once on Close.
type streamBody struct {
	io.ReadCloser
	once sync.Once
}

func (b *streamBody) Close() error {
	b.once.Do(StreamsActive.Dec)
	return b.ReadCloser.Close()
}
