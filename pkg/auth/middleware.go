package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ANcpLua/qyl/pkg/debug"
)

// RoundTripper runs chain (and limiter, when set) before handing the request
// to next. A No decision or a rate-limit rejection fails the round trip
// without touching the network and is logged to logger, or slog.Default when
// logger is nil.
func RoundTripper(chain *AuthChain, limiter RateLimiter, logger *slog.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		ctx := r.Context()

		if limiter != nil {
			if err := limiter.Wait(ctx, r.URL.Host); err != nil {
				logger.Warn("client rate limit", "host", r.URL.Host, "error", err)
				return nil, err
			}
		}

		if chain == nil {
			return next.RoundTrip(r)
		}

		out := r.Clone(ctx)
		result := chain.Authenticate(ctx, out)
		if result.Decision != Yes {
			err := result.Err
			if err == nil {
				err = ErrUnauthenticated
			}
			logger.Warn("request refused by authentication",
				"method", r.Method,
				"host", r.URL.Host,
				"error", err,
			)
			return nil, fmt.Errorf("authenticating %s %s: %w", r.Method, r.URL.Redacted(), err)
		}

		debug.Log("auth", "credentials attached", "scheme", result.Scheme, "host", r.URL.Host)
		return next.RoundTrip(out)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
