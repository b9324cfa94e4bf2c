package transport

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging returns middleware that emits one structured record per call:
// method, path, status, duration and request ID. Completed calls log at
// DEBUG, network failures at WARN.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			l := logger
			if l == nil {
				l = slog.Default()
			}
			start := time.Now()
			ctx := r.Context()

			resp, err := next.RoundTrip(r)

			attrs := []slog.Attr{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("method", r.Method),
				slog.String("host", r.URL.Host),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				l.LogAttrs(ctx, slog.LevelWarn, "qyl request failed", attrs...)
				return resp, err
			}
			attrs = append(attrs, slog.Int("status", resp.StatusCode))
			l.LogAttrs(ctx, slog.LevelDebug, "qyl request completed", attrs...)
			return resp, nil
		})
	}
}
