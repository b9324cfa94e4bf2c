// Package noop provides an authenticator that sends requests without
// credentials, for local development against an open qyl instance.
package noop

import (
	"context"
	"net/http"

	"github.com/ANcpLua/qyl/pkg/auth"
)

// Authenticator always votes Yes and attaches nothing.
type Authenticator struct{}

func (a *Authenticator) Authenticate(_ context.Context, _ *http.Request) auth.AuthResult {
	return auth.AuthResult{Decision: auth.Yes, Scheme: "anonymous"}
}
