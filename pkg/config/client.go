package config

import (
	"fmt"
	"log/slog"

	"github.com/ANcpLua/qyl/pkg/auth"
	"github.com/ANcpLua/qyl/pkg/auth/apikey"
	"github.com/ANcpLua/qyl/pkg/auth/jwt"
	"github.com/ANcpLua/qyl/pkg/auth/noop"
	"github.com/ANcpLua/qyl/pkg/client"
	"github.com/ANcpLua/qyl/pkg/transport"
)

// AuthChain builds the credential chain for the configured auth type. The
// bearer authenticator is always present so auth.WithToken works per call;
// the anonymous fallback makes "none" send requests without credentials.
func (c *Config) AuthChain() *auth.AuthChain {
	hosts := auth.AllowedHosts(c.Auth.AllowedHosts)
	chain := &auth.AuthChain{DefaultDecision: auth.Yes}

	bearer := jwt.New(jwt.Config{Token: c.Auth.Token, AllowedHosts: hosts, Leeway: c.Auth.Leeway})
	switch c.Auth.AuthType() {
	case "apikey":
		chain.Authenticators = append(chain.Authenticators,
			apikey.New(apikey.Config{Key: c.Auth.APIKey, Header: c.Auth.Header, AllowedHosts: hosts}),
			bearer,
		)
	case "jwt":
		chain.Authenticators = append(chain.Authenticators, bearer)
	default:
		chain.Authenticators = append(chain.Authenticators, bearer, &noop.Authenticator{})
	}
	return chain
}

// AdapterOptions translates the API and auth sections into transport
// options. extra options are applied last.
func (c *Config) AdapterOptions(logger *slog.Logger, extra ...transport.Option) []transport.Option {
	opts := []transport.Option{
		transport.WithTimeout(c.API.Timeout),
		transport.WithCompression(c.API.CompressionThreshold),
		transport.WithAuth(c.AuthChain()),
	}
	if c.API.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(c.API.UserAgent))
	}
	if c.Auth.RateLimitRPM > 0 {
		opts = append(opts, transport.WithRateLimiter(auth.NewInProcessLimiter(c.Auth.RateLimitRPM)))
	}
	if logger != nil {
		opts = append(opts, transport.WithLogger(logger))
	}
	return append(opts, extra...)
}

// NewClient builds an SDK client from c. The returned adapter owns open
// streams; callers Close it when done.
func NewClient(c *Config, extra ...transport.Option) (*client.Client, *transport.HTTPAdapter, error) {
	adapter, err := transport.NewHTTPAdapter(c.API.BaseURL, c.AdapterOptions(nil, extra...)...)
	if err != nil {
		return nil, nil, fmt.Errorf("creating adapter: %w", err)
	}
	return client.New(adapter), adapter, nil
}
