package request

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

const listTemplate = "{+baseurl}/v1/stream/events{?cursor,limit,sampleRate,serviceName,startTime,status,types}"

type eventsQuery struct {
	Cursor      *string                  `query:"cursor,omitempty"`
	Limit       *int32                   `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	SampleRate  *float64                 `query:"sample_rate,omitempty"`
	ServiceName *string                  `query:"service_name,omitempty"`
	StartTime   *time.Time               `query:"start_time,omitempty"`
	Status      *models.DeploymentStatus `query:"status,omitempty" validate:"omitempty,known"`
	Types       []models.StreamEventType `query:"types,omitempty" validate:"omitempty,dive,known"`
}

var eventsNames = NameTable{
	"sample_rate":  "sampleRate",
	"service_name": "serviceName",
	"start_time":   "startTime",
}

func (eventsQuery) QueryParameterName(field string) string { return eventsNames.Translate(field) }

func ptr[T any](v T) *T { return &v }

func base() map[string]string {
	return map[string]string{BaseURLKey: "http://localhost:5100"}
}

func TestURLExpansion(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     map[string]string
		query    map[string]any
		want     string
	}{
		{
			name:     "no query",
			template: listTemplate,
			path:     base(),
			want:     "http://localhost:5100/v1/stream/events",
		},
		{
			name:     "query follows template order",
			template: listTemplate,
			path:     base(),
			query:    map[string]any{"serviceName": "api", "limit": "10"},
			want:     "http://localhost:5100/v1/stream/events?limit=10&serviceName=api",
		},
		{
			name:     "list parameter",
			template: listTemplate,
			path:     base(),
			query:    map[string]any{"types": []string{"span", "trace"}},
			want:     "http://localhost:5100/v1/stream/events?types=span,trace",
		},
		{
			name:     "path parameter is escaped",
			template: "{+baseurl}/v1/deployments/{deploymentId}",
			path:     map[string]string{BaseURLKey: "http://localhost:5100", "deploymentId": "a b/c"},
			want:     "http://localhost:5100/v1/deployments/a%20b%2Fc",
		},
		{
			name:     "raw url wins",
			template: listTemplate,
			path:     RawURLParameters("https://qyl.example/v1/traces?cursor=abc"),
			want:     "https://qyl.example/v1/traces?cursor=abc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewRequestInformation(http.MethodGet, tt.template, tt.path)
			for k, v := range tt.query {
				info.QueryParameters[k] = v
			}
			u, err := info.URL()
			if err != nil {
				t.Fatalf("URL: %v", err)
			}
			if got := u.String(); got != tt.want {
				t.Errorf("URL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURLRequiresBaseURL(t *testing.T) {
	info := NewRequestInformation(http.MethodGet, listTemplate, nil)
	_, err := info.URL()
	if !serialization.IsContractViolation(err) {
		t.Fatalf("err = %v, want contract violation", err)
	}
}

func TestNewRequestInformationCopiesPath(t *testing.T) {
	path := base()
	info := NewRequestInformation(http.MethodGet, listTemplate, path)
	path[BaseURLKey] = "http://changed"
	if info.PathParameters[BaseURLKey] != "http://localhost:5100" {
		t.Errorf("request saw caller mutation: %q", info.PathParameters[BaseURLKey])
	}
}

func TestConfigureOmitsAbsentFilters(t *testing.T) {
	info := NewRequestInformation(http.MethodGet, listTemplate, base())
	cfg := &Config[eventsQuery]{
		Headers: http.Header{"X-Tenant": {"t1"}},
		QueryParameters: &eventsQuery{
			Limit:       ptr[int32](25),
			SampleRate:  ptr(0.5),
			ServiceName: ptr("checkout"),
			StartTime:   ptr(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
			Types:       []models.StreamEventType{models.StreamEventTypeSpans, models.StreamEventTypeTraces},
		},
	}
	if err := Configure(info, cfg); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	want := map[string]any{
		"limit":       "25",
		"sampleRate":  "0.5",
		"serviceName": "checkout",
		"startTime":   "2026-01-02T03:04:05Z",
		"types":       []string{"spans", "traces"},
	}
	if diff := cmp.Diff(want, info.QueryParameters); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if got := info.Headers.Get("X-Tenant"); got != "t1" {
		t.Errorf("X-Tenant = %q, want t1", got)
	}
	u, err := info.URL()
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	wantURL := "http://localhost:5100/v1/stream/events?limit=25&sampleRate=0.5&serviceName=checkout&startTime=2026-01-02T03%3A04%3A05Z&types=spans,traces"
	if u.String() != wantURL {
		t.Errorf("URL = %q, want %q", u.String(), wantURL)
	}
}

func TestConfigureEmptyQuery(t *testing.T) {
	info := NewRequestInformation(http.MethodGet, listTemplate, base())
	if err := Configure(info, &Config[eventsQuery]{QueryParameters: &eventsQuery{}}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if len(info.QueryParameters) != 0 {
		t.Errorf("query = %v, want empty", info.QueryParameters)
	}
	if err := Configure[DefaultQueryParameters](info, nil); err != nil {
		t.Errorf("nil config: %v", err)
	}
}

func TestConfigureRejectsInvalidFilters(t *testing.T) {
	tests := []struct {
		name  string
		query eventsQuery
	}{
		{"unknown enum", eventsQuery{Status: ptr(models.DeploymentStatus("exploded"))}},
		{"unknown list member", eventsQuery{Types: []models.StreamEventType{"spans", "gossip"}}},
		{"limit zero", eventsQuery{Limit: ptr[int32](0)}},
		{"limit too large", eventsQuery{Limit: ptr[int32](1001)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewRequestInformation(http.MethodGet, listTemplate, base())
			err := Configure(info, &Config[eventsQuery]{QueryParameters: &tt.query})
			if !serialization.IsContractViolation(err) {
				t.Fatalf("err = %v, want contract violation", err)
			}
		})
	}
}

func TestRequireArgument(t *testing.T) {
	if err := RequireArgument("deploymentId", "d1"); err != nil {
		t.Errorf("d1: %v", err)
	}
	if err := RequireArgument("deploymentId", ""); !serialization.IsContractViolation(err) {
		t.Errorf("empty: err = %v, want contract violation", err)
	}
}

func TestBuilderWithDoesNotShare(t *testing.T) {
	b := NewBaseRequestBuilder(nil, listTemplate, base())
	child := b.With("deploymentId", "d1")
	if _, ok := b.PathParameters["deploymentId"]; ok {
		t.Error("parent path parameters were mutated")
	}
	if child["deploymentId"] != "d1" || child[BaseURLKey] != "http://localhost:5100" {
		t.Errorf("child = %v", child)
	}
}

func TestSetContent(t *testing.T) {
	info := NewRequestInformation(http.MethodPost, "{+baseurl}/v1/deployments", base())
	body := &models.DeploymentCreate{ServiceName: ptr("api")}
	if err := info.SetContent(body); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	if got := string(info.Content); got != `{"service_name":"api"}` {
		t.Errorf("content = %s", got)
	}
	if got := info.Headers.Get("Content-Type"); got != ContentTypeJSON {
		t.Errorf("Content-Type = %q", got)
	}
	if err := info.SetContent(nil); !serialization.IsContractViolation(err) {
		t.Errorf("nil body: err = %v", err)
	}
}

func TestErrorMappingLookup(t *testing.T) {
	exact := serialization.Upcast(models.NewNotFoundError)
	class := serialization.Upcast(models.NewValidationError)
	fallback := serialization.Upcast(models.NewProblemDetails)
	mapping := ErrorMapping{"404": exact, "4XX": class, "XXX": fallback}

	tests := []struct {
		status int
		want   string
	}{
		{404, "exact"},
		{409, "class"},
		{503, "any"},
	}
	kindOf := func(f serialization.Factory[serialization.Parsable]) string {
		n, _ := serialization.NewParseNode([]byte(`{"status":1}`))
		v, _ := f(n)
		switch v.(type) {
		case *models.NotFoundError:
			return "exact"
		case *models.ValidationError:
			return "class"
		case *models.ProblemDetails:
			return "any"
		}
		return "?"
	}
	for _, tt := range tests {
		f, ok := mapping.Lookup(tt.status)
		if !ok {
			t.Fatalf("Lookup(%d) found nothing", tt.status)
		}
		if got := kindOf(f); got != tt.want {
			t.Errorf("Lookup(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
	if _, ok := (ErrorMapping{"404": exact}).Lookup(500); ok {
		t.Error("Lookup(500) matched without a 5XX or XXX entry")
	}
}

func TestAPIErrorUnwrapsBody(t *testing.T) {
	body := &models.NotFoundError{
		ProblemDetails: models.ProblemDetails{Status: ptr[int32](404), Detail: ptr("deployment d9 not found"), ErrorCode: ptr("not_found")},
		ResourceID:     ptr("d9"),
	}
	var err error = NewAPIError(404, body, nil)

	var nf *models.NotFoundError
	if !errors.As(err, &nf) || *nf.ResourceID != "d9" {
		t.Fatalf("errors.As did not reach NotFoundError: %v", err)
	}
	if !IsNotFound(err) || IsValidation(err) || IsServerFailure(err) {
		t.Errorf("classification wrong for %v", err)
	}
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Code != "not_found" || apiErr.Message != "deployment d9 not found" {
		t.Errorf("AsAPIError = %+v", apiErr)
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("TransportError does not unwrap its cause")
	}
	if StatusCode(err) != 0 {
		t.Errorf("StatusCode = %d, want 0", StatusCode(err))
	}
	if !IsServerFailure(&TransportError{StatusCode: 502}) {
		t.Error("502 not classified as server failure")
	}
}

type stubAdapter struct{ result serialization.Parsable }

func (s stubAdapter) BaseURL() string { return "http://stub" }

func (s stubAdapter) Send(context.Context, *RequestInformation, serialization.Factory[serialization.Parsable], ErrorMapping) (serialization.Parsable, error) {
	return s.result, nil
}

func (s stubAdapter) SendNoContent(context.Context, *RequestInformation, ErrorMapping) error {
	return nil
}

func (s stubAdapter) SendStream(context.Context, *RequestInformation, ErrorMapping) (io.ReadCloser, error) {
	return nil, nil
}

func TestTypedSend(t *testing.T) {
	ctx := context.Background()
	info := NewRequestInformation(http.MethodGet, listTemplate, base())

	got, err := Send(ctx, stubAdapter{result: &models.DeploymentEntity{DeploymentID: ptr("d1")}}, info, models.NewDeploymentEntity, nil)
	if err != nil || got == nil || *got.DeploymentID != "d1" {
		t.Fatalf("Send = %v, %v", got, err)
	}

	if _, err := Send(ctx, stubAdapter{result: &models.Trace{}}, info, models.NewDeploymentEntity, nil); err == nil {
		t.Error("expected type mismatch error")
	}

	got, err = Send(ctx, stubAdapter{}, info, models.NewDeploymentEntity, nil)
	if err != nil || got != nil {
		t.Errorf("empty body: got %v, %v", got, err)
	}
}

func TestBuilderSeedsBaseURL(t *testing.T) {
	b := NewBaseRequestBuilder(stubAdapter{}, listTemplate, nil)
	if b.PathParameters[BaseURLKey] != "http://stub" {
		t.Errorf("baseurl = %q", b.PathParameters[BaseURLKey])
	}
	info := b.NewRequest(http.MethodGet, ContentTypeJSON)
	if info.Headers.Get("Accept") != ContentTypeJSON {
		t.Errorf("Accept = %q", info.Headers.Get("Accept"))
	}
}
