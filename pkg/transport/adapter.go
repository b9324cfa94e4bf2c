package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ANcpLua/qyl/pkg/auth"
	"github.com/ANcpLua/qyl/pkg/debug"
	"github.com/ANcpLua/qyl/pkg/observability"
	"github.com/ANcpLua/qyl/pkg/request"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

// DefaultTimeout bounds non-streaming calls.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the SDK.
const DefaultUserAgent = "qyl-go/1"

// HTTPAdapter implements request.Adapter over net/http.
type HTTPAdapter struct {
	baseURL string
	client  *http.Client
	stream  *http.Client
	streams *InFlightRegistry
}

var _ request.Adapter = (*HTTPAdapter)(nil)

var errNoRequest = serialization.Violationf("send", "request information is required")

type adapterConfig struct {
	httpClient  *http.Client
	timeout     time.Duration
	userAgent   string
	compression int
	chain       *auth.AuthChain
	limiter     auth.RateLimiter
	logger      *slog.Logger
	middleware  []Middleware
}

// Option configures an HTTPAdapter.
type Option func(*adapterConfig)

// WithHTTPClient supplies the underlying client. Its Transport is wrapped by
// the middleware chain; its Timeout is ignored in favour of WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *adapterConfig) { cfg.httpClient = c }
}

// WithTimeout bounds each non-streaming call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(cfg *adapterConfig) { cfg.timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(cfg *adapterConfig) { cfg.userAgent = ua }
}

// WithCompression gzips request bodies of at least threshold bytes. A
// negative threshold disables compression.
func WithCompression(threshold int) Option {
	return func(cfg *adapterConfig) { cfg.compression = threshold }
}

// WithAuth attaches credentials through chain.
func WithAuth(chain *auth.AuthChain) Option {
	return func(cfg *adapterConfig) { cfg.chain = chain }
}

func WithRateLimiter(l auth.RateLimiter) Option {
	return func(cfg *adapterConfig) { cfg.limiter = l }
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *adapterConfig) { cfg.logger = l }
}

// WithMiddleware appends middleware inside the default chain, closest to
// the network.
func WithMiddleware(m ...Middleware) Option {
	return func(cfg *adapterConfig) { cfg.middleware = append(cfg.middleware, m...) }
}

// NewHTTPAdapter builds an adapter for the API rooted at baseURL, e.g.
// "http://localhost:5100".
func NewHTTPAdapter(baseURL string, opts ...Option) (*HTTPAdapter, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, serialization.Violationf("new adapter", "base URL %q must be an absolute http(s) URL", baseURL)
	}

	cfg := adapterConfig{
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		compression: DefaultCompressionThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	base := http.DefaultTransport
	var jar http.CookieJar
	var checkRedirect func(*http.Request, []*http.Request) error
	if cfg.httpClient != nil {
		if cfg.httpClient.Transport != nil {
			base = cfg.httpClient.Transport
		}
		jar = cfg.httpClient.Jar
		checkRedirect = cfg.httpClient.CheckRedirect
	}

	chain := []Middleware{
		Recovery(cfg.logger),
		RequestID(),
		UserAgent(cfg.userAgent),
		Logging(cfg.logger),
		observability.InstrumentTransport,
	}
	if cfg.chain != nil || cfg.limiter != nil {
		chain = append(chain, func(next http.RoundTripper) http.RoundTripper {
			return auth.RoundTripper(cfg.chain, cfg.limiter, cfg.logger, next)
		})
	}
	if cfg.compression >= 0 {
		chain = append(chain, Compression(cfg.compression))
	}
	chain = append(chain, cfg.middleware...)
	rt := Chain(chain...)(base)

	return &HTTPAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Transport: rt, Timeout: cfg.timeout, Jar: jar, CheckRedirect: checkRedirect},
		stream:  &http.Client{Transport: rt, Jar: jar, CheckRedirect: checkRedirect},
		streams: NewInFlightRegistry(),
	}, nil
}

func (a *HTTPAdapter) BaseURL() string { return a.baseURL }

// Send implements request.Adapter.
func (a *HTTPAdapter) Send(ctx context.Context, info *request.RequestInformation, factory serialization.Factory[serialization.Parsable], errorMapping request.ErrorMapping) (serialization.Parsable, error) {
	if info == nil {
		return nil, errNoRequest
	}
	route := routeOf(info.URLTemplate)
	resp, err := a.do(ctx, a.client, info, route)
	if err != nil {
		return nil, err
	}
	body, err := readAll(resp)
	if err != nil {
		return nil, &request.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}
	v, err := Dispatch(resp.StatusCode, resp.Header, body, factory, errorMapping)
	if err != nil && serialization.IsContractViolation(err) {
		observability.DecodeFailuresTotal.WithLabelValues(route).Inc()
		debug.Log("serialization", "response violated model contract", "route", route, "error", err)
	}
	return v, err
}

// SendNoContent implements request.Adapter.
func (a *HTTPAdapter) SendNoContent(ctx context.Context, info *request.RequestInformation, errorMapping request.ErrorMapping) error {
	_, err := a.Send(ctx, info, nil, errorMapping)
	return err
}

// SendStream implements request.Adapter. The stream stays open until the
// caller closes the body, ctx ends, or Close is called on the adapter.
func (a *HTTPAdapter) SendStream(ctx context.Context, info *request.RequestInformation, errorMapping request.ErrorMapping) (io.ReadCloser, error) {
	if info == nil {
		return nil, errNoRequest
	}
	id := RequestIDFromContext(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = ContextWithRequestID(ctx, id)
	}
	ctx, cancel := context.WithCancel(ctx)
	unregister := a.streams.Register(id, cancel)
	release := func() {
		cancel()
		unregister()
	}

	resp, err := a.do(ctx, a.stream, info, routeOf(info.URLTemplate))
	if err != nil {
		release()
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := readAll(resp)
		release()
		if readErr != nil {
			return nil, &request.TransportError{StatusCode: resp.StatusCode, Err: readErr}
		}
		_, err := Dispatch(resp.StatusCode, resp.Header, body, nil, errorMapping)
		return nil, err
	}
	debug.Log("streaming", "stream opened", "request_id", id, "path", resp.Request.URL.Path)
	return &stream{ReadCloser: resp.Body, release: release}, nil
}

// CancelStream closes every open stream started with request ID id.
func (a *HTTPAdapter) CancelStream(id string) bool { return a.streams.Cancel(id) }

// Close cancels every open stream and releases idle connections.
func (a *HTTPAdapter) Close() error {
	if n := a.streams.CancelAll(); n > 0 {
		debug.Log("streaming", "cancelled open streams", "count", n)
	}
	a.client.CloseIdleConnections()
	return nil
}

func (a *HTTPAdapter) do(ctx context.Context, client *http.Client, info *request.RequestInformation, route string) (*http.Response, error) {
	if _, ok := info.PathParameters[request.BaseURLKey]; !ok {
		seeded := *info
		seeded.PathParameters = maps.Clone(info.PathParameters)
		if seeded.PathParameters == nil {
			seeded.PathParameters = make(map[string]string, 1)
		}
		seeded.PathParameters[request.BaseURLKey] = a.baseURL
		info = &seeded
	}
	u, err := info.URL()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(info.Content) > 0 {
		body = bytes.NewReader(info.Content)
	}
	req, err := http.NewRequestWithContext(observability.WithRoute(ctx, route), info.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for k, vs := range info.Headers {
		req.Header[k] = append([]string(nil), vs...)
	}

	debug.Log("transport", "sending request", "method", info.Method, "url", u.Redacted())
	debug.Body("transport", "request body", info.Content)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &request.TransportError{Err: err}
	}
	return resp, nil
}

func readAll(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err == nil {
		debug.Log("transport", "received response", "status", resp.StatusCode, "bytes", len(body))
		debug.Body("transport", "response body", body)
	}
	return body, err
}

// routeOf reduces a URL template to a bounded metrics label:
// "{+baseurl}/v1/deployments/{deploymentId}{?x}" -> "/v1/deployments/{deploymentId}".
func routeOf(template string) string {
	route := strings.TrimPrefix(template, "{+"+request.BaseURLKey+"}")
	if i := strings.Index(route, "{?"); i >= 0 {
		route = route[:i]
	}
	if route == "" {
		return "unknown"
	}
	return route
}

// stream releases its registry entry exactly once.
type stream struct {
	io.ReadCloser
	once    sync.Once
	release func()
}

func (s *stream) Close() error {
	err := s.ReadCloser.Close()
	s.once.Do(s.release)
	return err
}
