package client

import (
	"context"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/iancoleman/strcase"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

func ptr[T any](v T) *T { return &v }

// recordingAdapter remembers what it was asked to send and never touches
// the network.
type recordingAdapter struct {
	mu    sync.Mutex
	infos []*request.RequestInformation
}

func (a *recordingAdapter) BaseURL() string { return "http://localhost:5100" }

func (a *recordingAdapter) record(info *request.RequestInformation) {
	a.mu.Lock()
	a.infos = append(a.infos, info)
	a.mu.Unlock()
}

func (a *recordingAdapter) Send(_ context.Context, info *request.RequestInformation, _ serialization.Factory[serialization.Parsable], _ request.ErrorMapping) (serialization.Parsable, error) {
	a.record(info)
	return nil, nil
}

func (a *recordingAdapter) SendNoContent(_ context.Context, info *request.RequestInformation, _ request.ErrorMapping) error {
	a.record(info)
	return nil
}

func (a *recordingAdapter) SendStream(_ context.Context, info *request.RequestInformation, _ request.ErrorMapping) (io.ReadCloser, error) {
	a.record(info)
	return io.NopCloser(strings.NewReader("")), nil
}

func (a *recordingAdapter) calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.infos)
}

func urlOf(t *testing.T, info *request.RequestInformation, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	u, err := info.URL()
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	return u.String()
}

func newTestClient() (*Client, *recordingAdapter) {
	a := &recordingAdapter{}
	return New(a), a
}

// Every query field's wire name must be the camelCase form of its
// snake_case name and must appear in the operation's URL template.
func TestQueryParameterNames(t *testing.T) {
	tests := []struct {
		template string
		query    request.QueryParameters
	}{
		{deploymentsTemplate, DeploymentsGetQueryParameters{}},
		{doraTemplate, DoraGetQueryParameters{}},
		{errorsTemplate, ErrorsGetQueryParameters{}},
		{errorStatsTemplate, TimeRangeQueryParameters{}},
		{exceptionsTemplate, ExceptionsGetQueryParameters{}},
		{exceptionStatsTemplate, TimeRangeQueryParameters{}},
		{metricsTemplate, MetricsGetQueryParameters{}},
		{pipelinesTemplate, PipelinesGetQueryParameters{}},
		{pipelineStatsTemplate, PipelineStatsGetQueryParameters{}},
		{servicesTemplate, ServicesGetQueryParameters{}},
		{serviceOperationsTemplate, ListQueryParameters{}},
		{sessionsTemplate, SessionsGetQueryParameters{}},
		{sessionTracesTemplate, ListQueryParameters{}},
		{sessionStatsTemplate, TimeRangeQueryParameters{}},
		{tracesTemplate, TracesGetQueryParameters{}},
		{traceSpansTemplate, ListQueryParameters{}},
		{streamTracesTemplate, StreamTracesGetQueryParameters{}},
		{streamEventsTemplate, StreamEventsGetQueryParameters{}},
		{streamLogsTemplate, StreamLogsGetQueryParameters{}},
		{streamMetricsTemplate, StreamMetricsGetQueryParameters{}},
		{streamExceptionsTemplate, StreamExceptionsGetQueryParameters{}},
		{streamDeploymentsTemplate, StreamDeploymentsGetQueryParameters{}},
	}
	for _, tt := range tests {
		typ := reflect.TypeOf(tt.query)
		t.Run(typ.Name(), func(t *testing.T) {
			_, block, ok := strings.Cut(tt.template, "{?")
			if !ok {
				t.Fatalf("template %q has no query block", tt.template)
			}
			declared := strings.Split(strings.TrimSuffix(block, "}"), ",")

			var wire []string
			for i := range typ.NumField() {
				tag, _, _ := strings.Cut(typ.Field(i).Tag.Get("query"), ",")
				got := tt.query.QueryParameterName(tag)
				if want := strcase.ToLowerCamel(tag); got != want {
					t.Errorf("QueryParameterName(%q) = %q, want %q", tag, got, want)
				}
				wire = append(wire, got)
			}
			if diff := cmp.Diff(declared, wire); diff != "" {
				t.Errorf("wire names differ from %s (-template +struct):\n%s", tt.template, diff)
			}
		})
	}
}

func TestDeploymentsListURL(t *testing.T) {
	c, _ := newTestClient()
	start := time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query *DeploymentsGetQueryParameters
		want  string
	}{
		{
			name: "no configuration",
			want: "http://localhost:5100/v1/deployments",
		},
		{
			name:  "absent filters omitted",
			query: &DeploymentsGetQueryParameters{ServiceName: ptr("api")},
			want:  "http://localhost:5100/v1/deployments?serviceName=api",
		},
		{
			name: "every filter in template order",
			query: &DeploymentsGetQueryParameters{
				Status:      ptr(models.DeploymentStatusPending),
				StartTime:   &start,
				ServiceName: ptr("api"),
				Limit:       ptr(int32(50)),
				Environment: ptr(models.DeploymentEnvironmentProduction),
				EndTime:     ptr(start.Add(time.Hour)),
				Cursor:      ptr("c1"),
			},
			want: "http://localhost:5100/v1/deployments?cursor=c1&endTime=2026-01-02T04%3A00%3A00Z" +
				"&environment=production&limit=50&serviceName=api&startTime=2026-01-02T03%3A00%3A00Z&status=pending",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg *Config[DeploymentsGetQueryParameters]
			if tt.query != nil {
				cfg = &Config[DeploymentsGetQueryParameters]{QueryParameters: tt.query}
			}
			info, err := c.V1().Deployments().ToGetRequestInformation(cfg)
			if got := urlOf(t, info, err); got != tt.want {
				t.Errorf("URL =\n  %s\nwant\n  %s", got, tt.want)
			}
			if info.Method != http.MethodGet || info.Headers.Get("Accept") != request.ContentTypeJSON {
				t.Errorf("method %s accept %q", info.Method, info.Headers.Get("Accept"))
			}
		})
	}
}

func TestNavigationPaths(t *testing.T) {
	c, _ := newTestClient()
	v1 := c.V1()

	tests := []struct {
		name string
		get  func() (*request.RequestInformation, error)
		want string
	}{
		{"deployment item", func() (*request.RequestInformation, error) {
			return v1.Deployments().ByDeploymentID("d1").ToGetRequestInformation(nil)
		}, "/v1/deployments/d1"},
		{"deployment metrics", func() (*request.RequestInformation, error) {
			return v1.Deployments().ByDeploymentID("d1").Metrics().ToGetRequestInformation(nil)
		}, "/v1/deployments/d1/metrics"},
		{"dora", func() (*request.RequestInformation, error) {
			return v1.Deployments().Metrics().Dora().ToGetRequestInformation(nil)
		}, "/v1/deployments/metrics/dora"},
		{"error stats", func() (*request.RequestInformation, error) {
			return v1.Errors().Stats().ToGetRequestInformation(nil)
		}, "/v1/errors/stats"},
		{"exception stats", func() (*request.RequestInformation, error) {
			return v1.Exceptions().Stats().ToGetRequestInformation(nil)
		}, "/v1/exceptions/stats"},
		{"metric item", func() (*request.RequestInformation, error) {
			return v1.Metrics().ByMetricName("http.server.duration").ToGetRequestInformation(nil)
		}, "/v1/metrics/http.server.duration"},
		{"service operations escape", func() (*request.RequestInformation, error) {
			return v1.Services().ByServiceName("checkout api").Operations().ToGetRequestInformation(nil)
		}, "/v1/services/checkout%20api/operations"},
		{"session traces", func() (*request.RequestInformation, error) {
			return v1.Sessions().BySessionID("s1").Traces().ToGetRequestInformation(nil)
		}, "/v1/sessions/s1/traces"},
		{"session stats", func() (*request.RequestInformation, error) {
			return v1.Sessions().Stats().ToGetRequestInformation(nil)
		}, "/v1/sessions/stats"},
		{"trace spans", func() (*request.RequestInformation, error) {
			return v1.Traces().ByTraceID("t1").Spans().ToGetRequestInformation(nil)
		}, "/v1/traces/t1/spans"},
		{"pipeline stats", func() (*request.RequestInformation, error) {
			return v1.Pipelines().Stats().ToGetRequestInformation(nil)
		}, "/v1/pipelines/stats"},
		{"stream trace spans", func() (*request.RequestInformation, error) {
			return v1.Stream().Traces().ByTraceID("t1").Spans().ToGetRequestInformation(nil)
		}, "/v1/stream/traces/t1/spans"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tt.get()
			got := urlOf(t, info, err)
			if want := "http://localhost:5100" + tt.want; got != want {
				t.Errorf("URL = %s, want %s", got, want)
			}
		})
	}
}

func TestStreamRequests(t *testing.T) {
	c, a := newTestClient()
	stream := c.V1().Stream()

	info, err := stream.Events().ToGetRequestInformation(&Config[StreamEventsGetQueryParameters]{
		QueryParameters: &StreamEventsGetQueryParameters{
			Types:      []models.StreamEventType{models.StreamEventTypeSpans, models.StreamEventTypeLogs},
			SampleRate: ptr(0.25),
		},
	})
	if got, want := urlOf(t, info, err), "http://localhost:5100/v1/stream/events?sampleRate=0.25&types=spans,logs"; got != want {
		t.Errorf("URL = %s, want %s", got, want)
	}
	if info.Headers.Get("Accept") != request.ContentTypeEventStream {
		t.Errorf("Accept = %q", info.Headers.Get("Accept"))
	}

	info, err = stream.Logs().ToGetRequestInformation(&Config[StreamLogsGetQueryParameters]{
		QueryParameters: &StreamLogsGetQueryParameters{MinSeverity: ptr(models.SeverityNumberWarn)},
	})
	if got, want := urlOf(t, info, err), "http://localhost:5100/v1/stream/logs?minSeverity=13"; got != want {
		t.Errorf("URL = %s, want %s", got, want)
	}

	body, err := stream.Deployments().Get(context.Background(), nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	body.Close()
	if a.calls() != 1 {
		t.Errorf("adapter calls = %d, want 1", a.calls())
	}
}

func TestPostDeploymentRequest(t *testing.T) {
	c, _ := newTestClient()
	body := &models.DeploymentCreate{
		ServiceName:    ptr("api"),
		ServiceVersion: ptr("1.2.0"),
		Environment:    ptr(models.DeploymentEnvironmentProduction),
		Strategy:       ptr(models.DeploymentStrategyRolling),
	}

	info, err := c.V1().Deployments().ToPostRequestInformation(body, nil)
	if err != nil {
		t.Fatalf("ToPostRequestInformation: %v", err)
	}
	if info.Method != http.MethodPost {
		t.Errorf("method = %s", info.Method)
	}
	if info.Headers.Get("Content-Type") != request.ContentTypeJSON {
		t.Errorf("Content-Type = %q", info.Headers.Get("Content-Type"))
	}
	want := `{"service_name":"api","service_version":"1.2.0","environment":"production","strategy":"rolling"}`
	if string(info.Content) != want {
		t.Errorf("body = %s, want %s", info.Content, want)
	}
}

func TestWriteOperationsRequireBody(t *testing.T) {
	c, a := newTestClient()
	ctx := context.Background()

	if _, err := c.V1().Deployments().Post(ctx, nil, nil); !serialization.IsContractViolation(err) {
		t.Errorf("Post(nil) err = %v", err)
	}
	if _, err := c.V1().Errors().ByErrorID("e1").Patch(ctx, nil, nil); !serialization.IsContractViolation(err) {
		t.Errorf("Patch(nil) err = %v", err)
	}
	if _, err := c.V1().Metrics().Query().Post(ctx, nil, nil); !serialization.IsContractViolation(err) {
		t.Errorf("Query(nil) err = %v", err)
	}
	if a.calls() != 0 {
		t.Errorf("adapter called %d times", a.calls())
	}
}

func TestEmptyIDIsContractViolation(t *testing.T) {
	c, a := newTestClient()
	ctx := context.Background()
	v1 := c.V1()

	errs := map[string]error{}
	_, errs["deployment"] = v1.Deployments().ByDeploymentID("").Get(ctx, nil)
	_, errs["service operations"] = v1.Services().ByServiceName("").Operations().Get(ctx, nil)
	_, errs["trace spans"] = v1.Traces().ByTraceID("").Spans().Get(ctx, nil)
	_, errs["stream spans"] = v1.Stream().Traces().ByTraceID("").Spans().Get(ctx, nil)
	_, errs["session"] = v1.Sessions().BySessionID("").ToGetRequestInformation(nil)

	for name, err := range errs {
		if !serialization.IsContractViolation(err) {
			t.Errorf("%s: err = %v, want contract violation", name, err)
		}
	}
	if a.calls() != 0 {
		t.Errorf("adapter called %d times before validation", a.calls())
	}
}

func TestInvalidFiltersRejectedBeforeSend(t *testing.T) {
	c, a := newTestClient()
	ctx := context.Background()
	v1 := c.V1()

	errs := map[string]error{}
	_, errs["unknown status"] = v1.Deployments().Get(ctx, &Config[DeploymentsGetQueryParameters]{
		QueryParameters: &DeploymentsGetQueryParameters{Status: ptr(models.DeploymentStatus("exploded"))},
	})
	_, errs["limit zero"] = v1.Errors().Get(ctx, &Config[ErrorsGetQueryParameters]{
		QueryParameters: &ErrorsGetQueryParameters{Limit: ptr(int32(0))},
	})
	_, errs["limit too large"] = v1.Traces().Get(ctx, &Config[TracesGetQueryParameters]{
		QueryParameters: &TracesGetQueryParameters{Limit: ptr(int32(1001))},
	})
	_, errs["unknown span status"] = v1.Traces().Get(ctx, &Config[TracesGetQueryParameters]{
		QueryParameters: &TracesGetQueryParameters{Status: ptr(models.SpanStatusCode(7))},
	})
	_, errs["unknown stream type"] = v1.Stream().Events().Get(ctx, &Config[StreamEventsGetQueryParameters]{
		QueryParameters: &StreamEventsGetQueryParameters{Types: []models.StreamEventType{"spans", "gossip"}},
	})
	_, errs["sample rate"] = v1.Stream().Events().Get(ctx, &Config[StreamEventsGetQueryParameters]{
		QueryParameters: &StreamEventsGetQueryParameters{SampleRate: ptr(1.5)},
	})
	_, errs["unknown cicd system"] = v1.Pipelines().Get(ctx, &Config[PipelinesGetQueryParameters]{
		QueryParameters: &PipelinesGetQueryParameters{System: ptr(models.CicdSystem("punch-cards"))},
	})

	for name, err := range errs {
		if !serialization.IsContractViolation(err) {
			t.Errorf("%s: err = %v, want contract violation", name, err)
		}
	}
	if a.calls() != 0 {
		t.Errorf("adapter called %d times", a.calls())
	}
}

func TestBuildersAreImmutable(t *testing.T) {
	c, _ := newTestClient()
	deployments := c.V1().Deployments()

	a := deployments.ByDeploymentID("a")
	b := deployments.ByDeploymentID("b")

	infoA, errA := a.ToGetRequestInformation(nil)
	infoB, errB := b.ToGetRequestInformation(nil)
	if got := urlOf(t, infoA, errA); !strings.HasSuffix(got, "/v1/deployments/a") {
		t.Errorf("a = %s", got)
	}
	if got := urlOf(t, infoB, errB); !strings.HasSuffix(got, "/v1/deployments/b") {
		t.Errorf("b = %s", got)
	}
	if _, leaked := deployments.base.PathParameters["deploymentId"]; leaked {
		t.Error("child navigation mutated the parent's path parameters")
	}

	infoA.PathParameters["deploymentId"] = "mutated"
	again, err := a.ToGetRequestInformation(nil)
	if got := urlOf(t, again, err); !strings.HasSuffix(got, "/v1/deployments/a") {
		t.Errorf("mutating a descriptor leaked into the builder: %s", got)
	}
}

func TestBuilderConcurrentUse(t *testing.T) {
	c, _ := newTestClient()
	listing := c.V1().Errors()

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			info, err := listing.ToGetRequestInformation(&Config[ErrorsGetQueryParameters]{
				QueryParameters: &ErrorsGetQueryParameters{Limit: ptr(int32(i + 1))},
			})
			if err != nil {
				return
			}
			if u, err := info.URL(); err == nil {
				results[i] = u.RawQuery
			}
		}(i)
	}
	wg.Wait()
	for i, q := range results {
		if want := "limit=" + strconv.Itoa(i+1); q != want {
			t.Errorf("request %d query = %q, want %q", i, q, want)
		}
	}
}

func TestWithURL(t *testing.T) {
	c, _ := newTestClient()
	raw := "https://qyl.example/v1/traces?cursor=opaque%3D%3D"

	info, err := c.V1().Traces().WithURL(raw).ToGetRequestInformation(&Config[TracesGetQueryParameters]{
		QueryParameters: &TracesGetQueryParameters{Limit: ptr(int32(5))},
	})
	if got := urlOf(t, info, err); got != raw {
		t.Errorf("URL = %s, want %s", got, raw)
	}
}

func TestHeadersFromConfig(t *testing.T) {
	c, _ := newTestClient()
	info, err := c.V1().Services().ByServiceName("api").ToGetRequestInformation(&NoQuery{
		Headers: http.Header{"X-Tenant": {"acme"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if info.Headers.Get("X-Tenant") != "acme" || info.Headers.Get("Accept") != request.ContentTypeJSON {
		t.Errorf("headers = %v", info.Headers)
	}
}
