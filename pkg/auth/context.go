package auth

import "context"

type tokenKey struct{}

// WithToken overrides the bearer token for requests made with ctx. The MCP
// bridge uses it to forward a caller's own credentials.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token set by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(tokenKey{}).(string)
	return v, ok && v != ""
}
