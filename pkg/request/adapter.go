package request

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// Adapter sends prepared requests. Implementations own the transport,
// authentication and response decoding.
type Adapter interface {
	// BaseURL is the API root substituted for {+baseurl}.
	BaseURL() string

	// Send executes info and decodes a 2xx body with factory. A 204 or
	// empty body yields a nil Parsable. Non-2xx responses are decoded with
	// errorMapping and returned as *APIError, or *TransportError when no
	// mapping applies.
	Send(ctx context.Context, info *RequestInformation, factory serialization.Factory[serialization.Parsable], errorMapping ErrorMapping) (serialization.Parsable, error)

	// SendNoContent executes info and discards a successful body.
	SendNoContent(ctx context.Context, info *RequestInformation, errorMapping ErrorMapping) error

	// SendStream executes info and returns the open response body.
	// The caller must close it.
	SendStream(ctx context.Context, info *RequestInformation, errorMapping ErrorMapping) (io.ReadCloser, error)
}

// ErrorMapping selects the body factory for a failing status. Keys are an
// exact code ("404"), a class ("4XX", "5XX") or the catch-all "XXX".
type ErrorMapping map[string]serialization.Factory[serialization.Parsable]

// Lookup resolves status with exact code first, then its class, then XXX.
func (m ErrorMapping) Lookup(status int) (serialization.Factory[serialization.Parsable], bool) {
	if len(m) == 0 {
		return nil, false
	}
	if f, ok := m[strconv.Itoa(status)]; ok {
		return f, true
	}
	switch {
	case status >= 400 && status < 500:
		if f, ok := m["4XX"]; ok {
			return f, true
		}
	case status >= 500 && status < 600:
		if f, ok := m["5XX"]; ok {
			return f, true
		}
	}
	f, ok := m["XXX"]
	return f, ok
}

// Send is the typed form of Adapter.Send.
func Send[T serialization.Parsable](ctx context.Context, a Adapter, info *RequestInformation, factory serialization.Factory[T], errorMapping ErrorMapping) (T, error) {
	var zero T
	res, err := a.Send(ctx, info, serialization.Upcast(factory), errorMapping)
	if err != nil || res == nil {
		return zero, err
	}
	v, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("adapter returned %T, want %T", res, zero)
	}
	return v, nil
}
