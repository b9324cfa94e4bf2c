// Package request describes qyl API calls independently of the transport
// that sends them: URL templates, path and query parameters, headers and
// bodies, plus the adapter contract and typed failures.
package request

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"sync"

	"github.com/yosida95/uritemplate/v3"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

const (
	// BaseURLKey is the path parameter holding the API root.
	BaseURLKey = "baseurl"
	// RawURLKey holds a complete URL that bypasses template expansion.
	RawURLKey = "request-raw-url"
)

const (
	ContentTypeJSON        = "application/json"
	ContentTypeProblemJSON = "application/problem+json"
	ContentTypeEventStream = "text/event-stream"
)

// RequestInformation is one prepared API call. It is built by a request
// builder and consumed by an Adapter; nothing mutates it after Send.
type RequestInformation struct {
	Method         string
	URLTemplate    string
	PathParameters map[string]string
	// QueryParameters maps wire names to a string or []string.
	QueryParameters map[string]any
	Headers         http.Header
	Content         []byte
}

// NewRequestInformation copies pathParameters so later changes to the
// builder's map cannot leak into the request.
func NewRequestInformation(method, urlTemplate string, pathParameters map[string]string) *RequestInformation {
	return &RequestInformation{
		Method:          method,
		URLTemplate:     urlTemplate,
		PathParameters:  maps.Clone(pathParameters),
		QueryParameters: make(map[string]any),
		Headers:         make(http.Header),
	}
}

var templates sync.Map // string -> *uritemplate.Template

func compile(raw string) (*uritemplate.Template, error) {
	if t, ok := templates.Load(raw); ok {
		return t.(*uritemplate.Template), nil
	}
	t, err := uritemplate.New(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing URL template %q: %w", raw, err)
	}
	templates.Store(raw, t)
	return t, nil
}

// URL expands the template. Path variables are percent-encoded, {+baseurl}
// is inserted verbatim, and query variables without a value are omitted.
func (r *RequestInformation) URL() (*url.URL, error) {
	if raw, ok := r.PathParameters[RawURLKey]; ok && raw != "" {
		return url.Parse(raw)
	}
	if _, ok := r.PathParameters[BaseURLKey]; !ok {
		return nil, serialization.Violationf("url", "path parameter %q is not set", BaseURLKey)
	}
	tmpl, err := compile(r.URLTemplate)
	if err != nil {
		return nil, err
	}
	values := uritemplate.Values{}
	for k, v := range r.PathParameters {
		values.Set(k, uritemplate.String(v))
	}
	for k, v := range r.QueryParameters {
		switch v := v.(type) {
		case string:
			values.Set(k, uritemplate.String(v))
		case []string:
			values.Set(k, uritemplate.List(v...))
		default:
			return nil, fmt.Errorf("query parameter %q has unsupported type %T", k, v)
		}
	}
	expanded, err := tmpl.Expand(values)
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", r.URLTemplate, err)
	}
	return url.Parse(expanded)
}

// SetContent serializes body as the JSON payload.
func (r *RequestInformation) SetContent(body serialization.Parsable) error {
	if body == nil || isNilPointer(body) {
		return serialization.Violationf("set content", "body is required")
	}
	data, err := serialization.Marshal(body)
	if err != nil {
		return fmt.Errorf("serializing request body: %w", err)
	}
	r.Content = data
	r.Headers.Set("Content-Type", ContentTypeJSON)
	return nil
}

// AddHeaders merges h into the request headers, replacing existing keys.
func (r *RequestInformation) AddHeaders(h http.Header) {
	for k, vs := range h {
		r.Headers.Del(k)
		for _, v := range vs {
			r.Headers.Add(k, v)
		}
	}
}

// QueryNames returns the query parameter names in sorted order.
func (r *RequestInformation) QueryNames() []string {
	names := make([]string, 0, len(r.QueryParameters))
	for k := range r.QueryParameters {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
