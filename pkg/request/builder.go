package request

import (
	"maps"
	"net/http"
)

// Config carries per-call options: extra headers and the operation's
// query filters.
type Config[Q any] struct {
	Headers         http.Header
	QueryParameters *Q
}

// BaseRequestBuilder holds what every builder in the tree shares. Builders
// are immutable: navigating copies the path parameters.
type BaseRequestBuilder struct {
	Adapter        Adapter
	URLTemplate    string
	PathParameters map[string]string

	// Err records an invalid navigation argument. Every operation on the
	// builder and its descendants returns it before touching the network.
	Err error
}

// NewBaseRequestBuilder copies pathParameters and seeds baseurl from the
// adapter when the caller did not set it.
func NewBaseRequestBuilder(adapter Adapter, urlTemplate string, pathParameters map[string]string) BaseRequestBuilder {
	params := maps.Clone(pathParameters)
	if params == nil {
		params = make(map[string]string)
	}
	if _, ok := params[BaseURLKey]; !ok && adapter != nil {
		params[BaseURLKey] = adapter.BaseURL()
	}
	return BaseRequestBuilder{Adapter: adapter, URLTemplate: urlTemplate, PathParameters: params}
}

// With returns a copy of the path parameters plus key=value.
func (b BaseRequestBuilder) With(key, value string) map[string]string {
	params := make(map[string]string, len(b.PathParameters)+1)
	maps.Copy(params, b.PathParameters)
	params[key] = value
	return params
}

// Child navigates to an item builder identified by key=value. An empty
// value is recorded in Err.
func (b BaseRequestBuilder) Child(urlTemplate, key, value string) BaseRequestBuilder {
	child := BaseRequestBuilder{
		Adapter:        b.Adapter,
		URLTemplate:    urlTemplate,
		PathParameters: b.With(key, value),
		Err:            b.Err,
	}
	if child.Err == nil {
		child.Err = RequireArgument(key, value)
	}
	return child
}

// Nested navigates to a sub-resource that shares b's path parameters.
func (b BaseRequestBuilder) Nested(urlTemplate string) BaseRequestBuilder {
	return BaseRequestBuilder{
		Adapter:        b.Adapter,
		URLTemplate:    urlTemplate,
		PathParameters: maps.Clone(b.PathParameters),
		Err:            b.Err,
	}
}

// WithURL returns a copy of b whose requests go to rawURL verbatim.
func (b BaseRequestBuilder) WithURL(rawURL string) BaseRequestBuilder {
	return BaseRequestBuilder{
		Adapter:        b.Adapter,
		URLTemplate:    b.URLTemplate,
		PathParameters: RawURLParameters(rawURL),
	}
}

// Prepare starts a request for method, applies cfg and returns Err if
// navigation failed.
func Prepare[Q any, PQ interface {
	*Q
	QueryParameters
}](b BaseRequestBuilder, method, accept string, cfg *Config[Q]) (*RequestInformation, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	info := b.NewRequest(method, accept)
	if err := Configure[Q, PQ](info, cfg); err != nil {
		return nil, err
	}
	return info, nil
}

// RawURLParameters returns path parameters that pin the request to rawURL.
func RawURLParameters(rawURL string) map[string]string {
	return map[string]string{RawURLKey: rawURL}
}

// NewRequest starts a request for method against the builder's template.
func (b BaseRequestBuilder) NewRequest(method, accept string) *RequestInformation {
	info := NewRequestInformation(method, b.URLTemplate, b.PathParameters)
	if accept != "" {
		info.Headers.Set("Accept", accept)
	}
	return info
}

// Configure applies cfg's headers and query parameters to info.
func Configure[Q any, PQ interface {
	*Q
	QueryParameters
}](info *RequestInformation, cfg *Config[Q]) error {
	if cfg == nil {
		return nil
	}
	if cfg.Headers != nil {
		info.AddHeaders(cfg.Headers)
	}
	if cfg.QueryParameters == nil {
		return nil
	}
	query, err := EncodeQuery(PQ(cfg.QueryParameters))
	if err != nil {
		return err
	}
	maps.Copy(info.QueryParameters, query)
	return nil
}
