// Package apikey attaches a static API key header to qyl requests.
package apikey

import (
	"context"
	"net/http"

	"github.com/ANcpLua/qyl/pkg/auth"
)

// DefaultHeader carries the key when Config.Header is empty.
const DefaultHeader = "X-API-Key"

// Config holds the key and where it may be sent.
type Config struct {
	Key          string
	Header       string
	AllowedHosts auth.AllowedHosts
}

// Authenticator sets the API key header on allowed hosts.
type Authenticator struct {
	cfg Config
}

func New(cfg Config) *Authenticator {
	if cfg.Header == "" {
		cfg.Header = DefaultHeader
	}
	return &Authenticator{cfg: cfg}
}

// Authenticate abstains without a key or for hosts outside the allow list,
// and refuses to send the key over plain HTTP to a remote host.
func (a *Authenticator) Authenticate(_ context.Context, r *http.Request) auth.AuthResult {
	if a.cfg.Key == "" || !a.cfg.AllowedHosts.Allows(r.URL.Host) {
		return auth.AuthResult{Decision: auth.Abstain}
	}
	if err := auth.RequireHTTPS(r.URL); err != nil {
		return auth.AuthResult{Decision: auth.No, Err: err}
	}
	r.Header.Set(a.cfg.Header, a.cfg.Key)
	return auth.AuthResult{Decision: auth.Yes, Scheme: "apikey"}
}
