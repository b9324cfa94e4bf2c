package transport

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID correlates a call with server-side logs.
const HeaderRequestID = "X-Request-ID"

// RequestID returns middleware that stamps X-Request-ID on each request.
// An ID already on the request or in its context wins; otherwise a new
// UUID is generated. The ID is also placed in the request context so later
// middleware can log it.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}
			if id == "" {
				id = uuid.NewString()
			}
			ctx := ContextWithRequestID(r.Context(), id)
			out := r.Clone(ctx)
			out.Header.Set(HeaderRequestID, id)
			return next.RoundTrip(out)
		})
	}
}

// UserAgent returns middleware that sets User-Agent unless the caller did.
func UserAgent(ua string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if ua == "" || r.Header.Get("User-Agent") != "" {
				return next.RoundTrip(r)
			}
			out := r.Clone(r.Context())
			out.Header.Set("User-Agent", ua)
			return next.RoundTrip(out)
		})
	}
}
