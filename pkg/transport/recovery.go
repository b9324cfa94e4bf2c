package transport

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Recovery returns middleware that turns a panic in an inner round tripper,
// such as a misbehaving custom authenticator, into an error for that call.
// The panic is logged to logger, or slog.Default when logger is nil.
func Recovery(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (resp *http.Response, retErr error) {
			defer func() {
				if v := recover(); v != nil {
					logger.Error("panic in round trip", "method", r.Method, "path", r.URL.Path, "panic", v)
					resp, retErr = nil, fmt.Errorf("panic in round trip: %v", v)
				}
			}()
			return next.RoundTrip(r)
		})
	}
}
