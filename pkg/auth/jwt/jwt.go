// Package jwt attaches bearer tokens to qyl requests. Tokens that parse as
// JWTs have their expiry checked locally so an expired token fails before
// the request is sent; opaque tokens are passed through unchecked.
package jwt

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/ANcpLua/qyl/pkg/auth"
)

// Config holds the bearer token settings.
type Config struct {
	// Token is the default bearer token. auth.WithToken overrides it per call.
	Token string

	// AllowedHosts limits where the token is sent. Empty allows all hosts.
	AllowedHosts auth.AllowedHosts

	// Leeway tolerates clock skew on the exp claim. Default: 30s.
	Leeway time.Duration

	// Now is the clock used for expiry checks. Default: time.Now.
	Now func() time.Time
}

func (c *Config) applyDefaults() {
	if c.Leeway == 0 {
		c.Leeway = 30 * time.Second
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

// Authenticator sets Authorization: Bearer on allowed hosts.
type Authenticator struct {
	config Config
}

func New(cfg Config) *Authenticator {
	cfg.applyDefaults()
	return &Authenticator{config: cfg}
}

// Authenticate outcomes:
//   - Abstain: no token, or host outside the allow list
//   - No: plain-HTTP remote host, or a JWT whose exp has passed
//   - Yes: Authorization header set
func (a *Authenticator) Authenticate(ctx context.Context, r *http.Request) auth.AuthResult {
	token, ok := auth.TokenFromContext(ctx)
	if !ok {
		token = a.config.Token
	}
	if token == "" || !a.config.AllowedHosts.Allows(r.URL.Host) {
		return auth.AuthResult{Decision: auth.Abstain}
	}
	if err := auth.RequireHTTPS(r.URL); err != nil {
		return auth.AuthResult{Decision: auth.No, Err: err}
	}

	if info, err := Inspect(token); err == nil && info.ExpiresAt != nil {
		if a.config.Now().After(info.ExpiresAt.Add(a.config.Leeway)) {
			return auth.AuthResult{
				Decision: auth.No,
				Err:      fmt.Errorf("%w at %s", auth.ErrTokenExpired, info.ExpiresAt.Format(time.RFC3339)),
			}
		}
	}

	r.Header.Set("Authorization", "Bearer "+token)
	return auth.AuthResult{Decision: auth.Yes, Scheme: "bearer"}
}

// TokenInfo is the unverified claim summary of a JWT.
type TokenInfo struct {
	Subject   string
	Issuer    string
	ExpiresAt *time.Time
}

// Inspect decodes token's claims without verifying its signature; the
// server does that. It fails for tokens that are not JWTs.
func Inspect(token string) (TokenInfo, error) {
	claims := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parsing bearer token: %w", err)
	}
	var info TokenInfo
	info.Subject, _ = claims.GetSubject()
	info.Issuer, _ = claims.GetIssuer()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}
	return info, nil
}
