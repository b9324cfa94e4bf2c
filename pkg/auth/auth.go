package auth

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// AuthDecision represents the three possible outcomes of authentication.
type AuthDecision int

const (
	// Yes means credentials were attached. The chain stops.
	Yes AuthDecision = iota

	// No means the request must not be sent, e.g. an expired token or a
	// plain-HTTP target. The chain stops.
	No

	// Abstain means this authenticator does not apply. The chain continues.
	Abstain
)

func (d AuthDecision) String() string {
	switch d {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "abstain"
	}
}

// AuthResult carries the outcome of an authentication attempt.
type AuthResult struct {
	Decision AuthDecision
	// Scheme names the credential type attached, for logging.
	Scheme string
	Err    error // populated only when Decision == No
}

// Authenticator attaches credentials to r. It may modify r's headers; the
// chain hands it a clone.
type Authenticator interface {
	Authenticate(ctx context.Context, r *http.Request) AuthResult
}

// Sentinel errors.
var (
	ErrUnauthenticated   = errors.New("no credentials accepted for request")
	ErrInsecureTransport = errors.New("credentials require https")
	ErrTokenExpired      = errors.New("bearer token expired")
	ErrTooManyRequests   = errors.New("client rate limit exceeded")
)

// AuthChain evaluates authenticators in order using three-outcome voting.
type AuthChain struct {
	// Authenticators are evaluated left to right.
	Authenticators []Authenticator

	// DefaultDecision is used when all authenticators abstain. Yes sends
	// the request without credentials.
	DefaultDecision AuthDecision
}

// Authenticate runs the chain. Stops on the first Yes or No.
func (c *AuthChain) Authenticate(ctx context.Context, r *http.Request) AuthResult {
	for _, authn := range c.Authenticators {
		result := authn.Authenticate(ctx, r)
		if result.Decision != Abstain {
			return result
		}
	}
	if c.DefaultDecision == Yes {
		return AuthResult{Decision: Yes, Scheme: "anonymous"}
	}
	return AuthResult{Decision: No, Err: ErrUnauthenticated}
}

// AllowedHosts restricts which hosts receive credentials. An empty list
// allows every host.
type AllowedHosts []string

// Allows reports whether host (with or without port) is permitted.
func (a AllowedHosts) Allows(host string) bool {
	if len(a) == 0 {
		return true
	}
	host = strings.ToLower(hostOnly(host))
	for _, h := range a {
		if strings.EqualFold(strings.TrimSpace(h), host) {
			return true
		}
	}
	return false
}

// RequireHTTPS rejects plain-HTTP targets other than loopback hosts.
func RequireHTTPS(u *url.URL) error {
	if u == nil || strings.EqualFold(u.Scheme, "https") {
		return nil
	}
	if IsLoopback(u.Host) {
		return nil
	}
	return ErrInsecureTransport
}

// IsLoopback reports whether host names the local machine.
func IsLoopback(host string) bool {
	host = hostOnly(host)
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func hostOnly(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return strings.Trim(host, "[]")
}
