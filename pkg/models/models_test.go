package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

func ptr[T any](v T) *T { return &v }

var (
	t0    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t1    = t0.Add(90 * time.Second)
	extra = serialization.AdditionalData{"x_vendor": json.RawMessage(`{"tier":"gold","n":[1,2]}`)}
)

// roundTrip encodes v, decodes it with factory and returns the result.
func roundTrip[T serialization.Parsable](t *testing.T, v T, factory serialization.Factory[T]) T {
	t.Helper()
	data, err := serialization.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	got, err := serialization.Unmarshal(data, factory)
	if err != nil {
		t.Fatalf("Unmarshal error: %v\nJSON: %s", err, data)
	}
	return got
}

func assertRoundTrip[T serialization.Parsable](t *testing.T, v T, factory serialization.Factory[T]) {
	t.Helper()
	got := roundTrip(t, v, factory)
	if diff := cmp.Diff(v, got, cmpopts.IgnoreUnexported(DeploymentPage{})); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripDeployments(t *testing.T) {
	assertRoundTrip(t, &DeploymentCreate{
		ServiceName:    ptr("api"),
		ServiceVersion: ptr("1.2.0"),
		Environment:    ptr(DeploymentEnvironmentProduction),
		Strategy:       ptr(DeploymentStrategyRolling),
		DeployedBy:     ptr("ci-bot"),
		GitCommit:      ptr("9fceb02"),
		GitBranch:      ptr("main"),
		AdditionalData: extra,
	}, NewDeploymentCreate)

	assertRoundTrip(t, &DeploymentEntity{
		DeploymentID:    ptr("d1"),
		ServiceName:     ptr("api"),
		ServiceVersion:  ptr("1.2.0"),
		Environment:     ptr(DeploymentEnvironmentStaging),
		Status:          ptr(DeploymentStatusRolledBack),
		Strategy:        ptr(DeploymentStrategyBlueGreen),
		StartTime:       &t0,
		EndTime:         &t1,
		DurationS:       ptr(90.0),
		PreviousVersion: ptr("1.1.9"),
		RollbackTarget:  ptr("1.1.9"),
		ReplicaCount:    ptr(int32(3)),
		HealthyReplicas: ptr(int32(0)),
		ErrorMessage:    ptr("readiness probe failed"),
		AdditionalData:  extra,
	}, NewDeploymentEntity)

	assertRoundTrip(t, &DoraMetrics{
		DeploymentFrequency: ptr(4.5),
		LeadTimeHours:       ptr(20.25),
		ChangeFailureRate:   ptr(0.05),
		MTTRHours:           ptr(1.0),
		PerformanceLevel:    ptr(DoraPerformanceLevelElite),
	}, NewDoraMetrics)
}

func TestRoundTripTraces(t *testing.T) {
	span := &Span{
		SpanID:            ptr("00f067aa0ba902b7"),
		TraceID:           ptr("4bf92f3577b34da6a3ce929d0e0e4736"),
		Name:              ptr("GET /users"),
		Kind:              ptr(SpanKindServer),
		StartTimeUnixNano: ptr(int64(1700000000000000000)),
		EndTimeUnixNano:   ptr(int64(1700000000250000000)),
		Attributes: []*Attribute{
			{Key: ptr("http.status_code"), Value: &AttributeValue{Int: ptr(int64(200))}},
			{Key: ptr("http.route"), Value: &AttributeValue{String: ptr("/users")}},
			{Key: ptr("sampled"), Value: &AttributeValue{Bool: ptr(false)}},
			{Key: ptr("weights"), Value: &AttributeValue{DoubleList: []float64{0.5, 2}}},
		},
		Events: []*SpanEvent{{Name: ptr("cache.miss"), TimeUnixNano: ptr(int64(1700000000100000000))}},
		Links:  []*SpanLink{{TraceID: ptr("aa"), SpanID: ptr("bb"), Flags: ptr(int32(1))}},
		Status: &SpanStatus{Code: ptr(SpanStatusCodeOk)},
		Resource: &Resource{
			ServiceName:          ptr("api"),
			TelemetrySDKLanguage: ptr(TelemetrySdkLanguageGo),
			HostArch:             ptr(HostArchARM64),
			OSType:               ptr(OsTypeLinux),
			CloudProvider:        ptr(CloudProviderAWS),
			ProcessPID:           ptr(int64(4242)),
			K8sPodName:           ptr("api-7d9c"),
		},
		InstrumentationScope: &InstrumentationScope{Name: ptr("net/http"), Version: ptr("0.1.0")},
		AdditionalData:       extra,
	}
	assertRoundTrip(t, span, NewSpan)

	assertRoundTrip(t, &Trace{
		TraceID:    span.TraceID,
		Spans:      []*Span{span},
		RootSpan:   span,
		SpanCount:  ptr(int64(1)),
		DurationNs: ptr(int64(250000000)),
		StartTime:  &t0,
		EndTime:    &t1,
		Services:   []string{"api"},
		HasError:   ptr(false),
	}, NewTrace)

	assertRoundTrip(t, &TraceQuery{
		ServiceName:   ptr("api"),
		MinDurationMs: ptr(int64(100)),
		Status:        ptr(SpanStatusCodeError),
		Tags:          map[string]string{"http.method": "GET"},
		Limit:         ptr(int32(50)),
	}, NewTraceQuery)
}

func TestRoundTripObserve(t *testing.T) {
	assertRoundTrip(t, &ErrorEntity{
		ErrorID:          ptr("e1"),
		ErrorType:        ptr("TimeoutError"),
		Message:          ptr("upstream timed out"),
		Category:         ptr(ErrorCategoryTimeout),
		Fingerprint:      ptr("fp-1"),
		FirstSeen:        &t0,
		LastSeen:         &t1,
		OccurrenceCount:  ptr(int64(12)),
		AffectedServices: []string{"api", "billing"},
		Status:           ptr(ErrorStatusWontFix),
		IssueURL:         ptr("https://example.com/issues/1"),
		AdditionalData:   extra,
	}, NewErrorEntity)

	assertRoundTrip(t, &ErrorStats{
		TotalCount:  ptr(int64(40)),
		UniqueTypes: ptr(int64(3)),
		ErrorRate:   ptr(0.02),
		ByCategory:  []*ErrorCategoryStats{{Category: ptr(ErrorCategoryNetwork), Count: ptr(int64(10)), Percentage: ptr(25.0)}},
		TopErrors:   []*ErrorTypeStats{{ErrorType: ptr("TimeoutError"), Count: ptr(int64(30))}},
		Trend:       ptr(ErrorTrendSpike),
	}, NewErrorStats)

	assertRoundTrip(t, &EnrichedException{
		ExceptionType: ptr("ValueError"),
		Message:       ptr("bad input"),
		StackTrace: &StackTrace{
			Frames: []*StackFrame{{
				Index:    ptr(int32(0)),
				Location: &CodeLocation{Filepath: ptr("app/handlers.go"), LineNumber: ptr(int32(42))},
			}},
			Truncated: ptr(false),
		},
		Cause: &EnrichedException{
			ExceptionType: ptr("IOError"),
			Cause:         &EnrichedException{ExceptionType: ptr("OSError")},
		},
		Data:   []*Attribute{{Key: ptr("retries"), Value: &AttributeValue{IntList: []int64{1, 2, 3}}}},
		Status: ptr(ExceptionStatusInvestigating),
	}, NewEnrichedException)

	assertRoundTrip(t, &SessionEntity{
		SessionID:  ptr("s1"),
		UserID:     ptr("u1"),
		StartTime:  &t0,
		DurationMs: ptr(1500.5),
		State:      ptr(SessionStateTimedOut),
		Client:     &SessionClientInfo{DeviceType: ptr(DeviceTypeIoT), Browser: ptr("Firefox")},
		Geo:        &SessionGeoInfo{CountryCode: ptr("DE")},
		GenAIUsage: &SessionGenAiUsage{RequestCount: ptr(int64(3)), ModelsUsed: []string{"m1"}, EstimatedCostUSD: ptr(0.75)},
	}, NewSessionEntity)

	assertRoundTrip(t, &SessionStats{
		ActiveSessions: ptr(int64(5)),
		BounceRate:     ptr(0.5),
		ByDeviceType:   []*SessionDeviceStats{{DeviceType: ptr(DeviceTypeMobile), Count: ptr(int64(2))}},
	}, NewSessionStats)
}

func TestRoundTripOpsAndMetrics(t *testing.T) {
	assertRoundTrip(t, &PipelineRunEvent{
		EventName:     ptr(CicdEventNamePipelineEnd),
		PipelineName:  ptr("build"),
		PipelineRunID: ptr("run-9"),
		Status:        ptr(CicdPipelineStatusSuccess),
		System:        ptr(CicdSystemGitHubActions),
		TriggerType:   ptr(CicdTriggerTypePullRequest),
		DurationS:     ptr(310.0),
		Timestamp:     &t0,
		RefName:       ptr("main"),
	}, NewPipelineRunEvent)

	assertRoundTrip(t, &MetricQueryRequest{
		MetricName:  ptr("http.server.duration"),
		Filters:     map[string]string{"service.name": "api"},
		StartTime:   &t0,
		EndTime:     &t1,
		Step:        ptr(TimeBucketFiveMinutes),
		Aggregation: ptr(AggregationFunctionP99),
		GroupBy:     []string{"http.route"},
	}, NewMetricQueryRequest)

	assertRoundTrip(t, &ServiceDetails{
		Name:                     ptr("api"),
		InstanceCount:            ptr(int64(2)),
		LastSeen:                 &t1,
		ResourceAttributes:       []*Attribute{{Key: ptr("region"), Value: &AttributeValue{StringList: []string{"eu", "us"}}}},
		InstrumentationLibraries: []*InstrumentationScope{{Name: ptr("otelhttp")}},
		P99LatencyMs:             ptr(120.0),
	}, NewServiceDetails)
}

func TestDecodeUnknownEnumIsPreserved(t *testing.T) {
	got, err := serialization.Unmarshal([]byte(`{"deployment.id":"d1","status":"paused"}`), NewDeploymentEntity)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if *got.Status != "paused" || got.Status.IsKnown() {
		t.Errorf("Status = %q known=%v, want raw unknown value", *got.Status, got.Status.IsKnown())
	}
	out, err := serialization.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), `"status":"paused"`) {
		t.Errorf("re-encoded = %s, want raw status kept", out)
	}
}

func TestDecodeRejectsAbsentDocument(t *testing.T) {
	for _, in := range []string{"", "null", "  "} {
		if _, err := serialization.Unmarshal([]byte(in), NewDeploymentEntity); !serialization.IsContractViolation(err) {
			t.Errorf("Unmarshal(%q) error = %v, want ContractViolation", in, err)
		}
	}
}

func TestAttributeValuePrecedence(t *testing.T) {
	tests := []struct {
		in   string
		want AttributeValue
	}{
		{`true`, AttributeValue{Bool: ptr(true)}},
		{`false`, AttributeValue{Bool: ptr(false)}},
		{`0`, AttributeValue{Int: ptr(int64(0))}},
		{`5`, AttributeValue{Int: ptr(int64(5))}},
		{`5.0`, AttributeValue{Double: ptr(5.0)}},
		{`0.0`, AttributeValue{Double: ptr(0.0)}},
		{`1e3`, AttributeValue{Double: ptr(1000.0)}},
		{`""`, AttributeValue{String: ptr("")}},
		{`"on"`, AttributeValue{String: ptr("on")}},
		{`[]`, AttributeValue{BoolList: []bool{}}},
		{`[true,false]`, AttributeValue{BoolList: []bool{true, false}}},
		{`[1,2,3]`, AttributeValue{IntList: []int64{1, 2, 3}}},
		{`[1,2.5]`, AttributeValue{DoubleList: []float64{1, 2.5}}},
		{`["a",""]`, AttributeValue{StringList: []string{"a", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := serialization.Unmarshal([]byte(tt.in), NewAttributeValue)
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(&tt.want, got); diff != "" {
				t.Errorf("decode mismatch (-want +got):\n%s", diff)
			}
			again := roundTrip(t, got, NewAttributeValue)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAttributeValueUnsupportedShapeKeptInBag(t *testing.T) {
	in := `{"key":"k","value":{"nested":true}}`
	got, err := serialization.Unmarshal([]byte(in), NewAttribute)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Value != nil {
		t.Errorf("Value = %+v, want absent", got.Value)
	}
	if string(got.AdditionalData["value"].(json.RawMessage)) != `{"nested":true}` {
		t.Errorf("AdditionalData[value] = %v", got.AdditionalData["value"])
	}
}

func TestPageNormalisesNextCursor(t *testing.T) {
	factory := PageOf(NewDeploymentEntity)
	in := `{"items":[{"deployment.id":"d1"},{"deployment.id":"d2"}],"has_more":false,"next_cursor":"stale","prev_cursor":"p0"}`
	page, err := serialization.Unmarshal([]byte(in), factory)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(page.Items) != 2 || *page.Items[1].DeploymentID != "d2" {
		t.Fatalf("Items = %+v", page.Items)
	}
	if page.NextCursor != nil {
		t.Errorf("NextCursor = %q, want nil when has_more is false", *page.NextCursor)
	}
	if page.Next() != "" {
		t.Errorf("Next() = %q, want empty", page.Next())
	}

	page.HasMore = true
	page.NextCursor = ptr("c2")
	out, err := serialization.Marshal(page)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"items":[{"deployment.id":"d1"},{"deployment.id":"d2"}],"has_more":true,"next_cursor":"c2","prev_cursor":"p0"}`
	if string(out) != want {
		t.Errorf("Marshal = %s\nwant %s", out, want)
	}

	page.HasMore = false
	out, err = serialization.Marshal(page)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(out), "next_cursor") {
		t.Errorf("final page encoded a next_cursor: %s", out)
	}
}

func TestPageRoundTrip(t *testing.T) {
	page := NewPage(NewDeploymentEntity, []*DeploymentEntity{{DeploymentID: ptr("d1")}})
	page.HasMore = true
	page.NextCursor = ptr("opaque==")
	page.AdditionalData = extra
	assertRoundTrip(t, page, PageOf(NewDeploymentEntity))
}

func TestNewProblemResolvesByStatus(t *testing.T) {
	tests := []struct {
		body  string
		check func(t *testing.T, p serialization.Parsable)
	}{
		{
			`{"type":"about:blank","title":"Not Found","status":404,"resource_type":"deployment","resource_id":"d9"}`,
			func(t *testing.T, p serialization.Parsable) {
				nf, ok := p.(*NotFoundError)
				if !ok {
					t.Fatalf("got %T, want *NotFoundError", p)
				}
				if *nf.ResourceID != "d9" || *nf.Status != 404 {
					t.Errorf("NotFoundError = %+v", nf)
				}
			},
		},
		{
			`{"title":"Bad Request","status":400,"errors":[{"field":"limit","message":"too large","code":"max","rejected_value":5000}]}`,
			func(t *testing.T, p serialization.Parsable) {
				ve, ok := p.(*ValidationError)
				if !ok {
					t.Fatalf("got %T, want *ValidationError", p)
				}
				if len(ve.Errors) != 1 || string(ve.Errors[0].RejectedValue) != "5000" {
					t.Errorf("Errors = %+v", ve.Errors)
				}
				if !strings.Contains(ve.Error(), "limit") {
					t.Errorf("Error() = %q, want field name", ve.Error())
				}
			},
		},
		{
			`{"title":"Internal","status":500,"error_code":"QYL-5001"}`,
			func(t *testing.T, p serialization.Parsable) {
				ise, ok := p.(*InternalServerError)
				if !ok {
					t.Fatalf("got %T, want *InternalServerError", p)
				}
				if ise.ProblemCode() != "QYL-5001" {
					t.Errorf("ProblemCode() = %q", ise.ProblemCode())
				}
			},
		},
		{
			`{"title":"Conflict","status":409}`,
			func(t *testing.T, p serialization.Parsable) {
				if _, ok := p.(*ProblemDetails); !ok {
					t.Fatalf("got %T, want *ProblemDetails", p)
				}
			},
		},
	}
	for _, tt := range tests {
		p, err := serialization.Unmarshal([]byte(tt.body), NewProblem)
		if err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.body, err)
		}
		tt.check(t, p)
	}
}

func TestProblemErrorsUnwrap(t *testing.T) {
	var err error = &NotFoundError{ProblemDetails: ProblemDetails{Status: ptr(int32(404)), Title: ptr("Not Found")}}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("errors.As failed for *NotFoundError")
	}
	if err.Error() != "404 Not Found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDeploymentCreateUsesSnakeCaseKeys(t *testing.T) {
	body := &DeploymentCreate{
		ServiceName:    ptr("api"),
		ServiceVersion: ptr("1.2.0"),
		Environment:    ptr(DeploymentEnvironmentProduction),
		Strategy:       ptr(DeploymentStrategyRolling),
	}
	out, err := serialization.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"service_name":"api","service_version":"1.2.0","environment":"production","strategy":"rolling"}`
	if string(out) != want {
		t.Errorf("Marshal = %s\nwant %s", out, want)
	}
}

func TestStreamEventPayload(t *testing.T) {
	in := `{"type":"deployment","data":{"deployment.id":"d1","status":"success"},"timestamp":"2026-03-01T12:00:00Z"}`
	ev, err := serialization.Unmarshal([]byte(in), NewStreamEvent)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	payload, err := ev.Payload()
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	de, ok := payload.(*DeploymentEvent)
	if !ok {
		t.Fatalf("payload = %T, want *DeploymentEvent", payload)
	}
	if *de.Status != DeploymentStatusSuccess {
		t.Errorf("Status = %q", *de.Status)
	}

	hb, err := serialization.Unmarshal([]byte(`{"type":"heartbeat","timestamp":"2026-03-01T12:00:00Z"}`), NewStreamEvent)
	if err != nil {
		t.Fatalf("Unmarshal heartbeat: %v", err)
	}
	if p, err := hb.Payload(); p != nil || err != nil {
		t.Errorf("heartbeat Payload() = %v, %v", p, err)
	}
}

func TestEnumCodecsMatchWireValues(t *testing.T) {
	if !CicdSystemCodec.Contains("github_actions") {
		t.Error("CicdSystemCodec is missing github_actions")
	}
	if v, ok := TimeBucketCodec.Parse("15m"); !ok || v != TimeBucketFifteenMinutes {
		t.Errorf("TimeBucketCodec.Parse(15m) = %q, %v", v, ok)
	}
	if got := len(DeploymentStatusCodec.Values()); got != 6 {
		t.Errorf("DeploymentStatus has %d values, want 6", got)
	}
	if SpanKind(9).IsKnown() {
		t.Error("SpanKind(9) reported as known")
	}
}

// roundTripCase returns a subtest asserting that v survives encode and decode.
func roundTripCase[T serialization.Parsable](v T, factory serialization.Factory[T]) func(*testing.T) {
	return func(t *testing.T) { assertRoundTrip(t, v, factory) }
}

func TestRoundTripEveryModel(t *testing.T) {
	attr := func(k, v string) *Attribute {
		return &Attribute{Key: ptr(k), Value: &AttributeValue{String: ptr(v)}, AdditionalData: extra}
	}
	problem := ProblemDetails{
		Type:           ptr("https://qyl.dev/problems/x"),
		Title:          ptr("Title"),
		Status:         ptr(int32(418)),
		Detail:         ptr("detail"),
		Instance:       ptr("/v1/x"),
		ErrorCode:      ptr("QYL-1"),
		Timestamp:      ptr(t0),
		AdditionalData: extra,
	}
	point := &MetricDataPoint{Timestamp: ptr(t0), Value: ptr(0.25), AdditionalData: extra}
	series := &MetricTimeSeries{Labels: map[string]string{"route": "/a", "code": "200"}, Points: []*MetricDataPoint{point}, AdditionalData: extra}
	correlated := &CorrelatedError{
		ErrorID:              ptr("err-2"),
		ErrorType:            ptr("TimeoutError"),
		CorrelationStrength:  ptr(0.82),
		TemporalRelationship: ptr("precedes"),
		AdditionalData:       extra,
	}
	detail := &ValidationErrorDetail{
		Field:          ptr("limit"),
		Message:        ptr("too large"),
		Code:           ptr("max"),
		RejectedValue:  json.RawMessage(`5000`),
		AdditionalData: extra,
	}

	tests := []struct {
		name string
		run  func(*testing.T)
	}{
		{"Attribute", roundTripCase(attr("k", "v"), NewAttribute)},
		{"DeploymentUpdate", roundTripCase(&DeploymentUpdate{
			Status:          ptr(DeploymentStatusFailed),
			HealthyReplicas: ptr(int32(1)),
			ErrorMessage:    ptr("image pull failed"),
			AdditionalData:  extra,
		}, NewDeploymentUpdate)},
		{"DeploymentMetrics", roundTripCase(&DeploymentMetrics{
			DeploymentID:    ptr("d1"),
			ServiceName:     ptr("api"),
			WindowStart:     ptr(t0),
			WindowEnd:       ptr(t1),
			RequestRate:     ptr(120.5),
			ErrorRate:       ptr(0.02),
			AvgLatencyMs:    ptr(41.7),
			P99LatencyMs:    ptr(310.25),
			ReplicaCount:    ptr(int32(3)),
			HealthyReplicas: ptr(int32(3)),
			AdditionalData:  extra,
		}, NewDeploymentMetrics)},
		{"DeploymentEvent", roundTripCase(&DeploymentEvent{
			EventName:                 ptr("deployment.created"),
			DeploymentID:              ptr("d1"),
			ServiceName:               ptr("api"),
			DeploymentEnvironmentName: ptr("production"),
			Status:                    ptr(DeploymentStatusInProgress),
			Timestamp:                 ptr(t0),
			AdditionalData:            extra,
		}, NewDeploymentEvent)},
		{"ErrorUpdate", roundTripCase(&ErrorUpdate{
			Status:         ptr(ErrorStatusResolved),
			AssignedTo:     ptr("sre"),
			IssueURL:       ptr("https://issues.example/1"),
			AdditionalData: extra,
		}, NewErrorUpdate)},
		{"ErrorCategoryStats", roundTripCase(&ErrorCategoryStats{
			Category:       ptr(ErrorCategoryTimeout),
			Count:          ptr(int64(7)),
			Percentage:     ptr(12.5),
			AdditionalData: extra,
		}, NewErrorCategoryStats)},
		{"ErrorServiceStats", roundTripCase(&ErrorServiceStats{
			ServiceName:    ptr("billing"),
			Count:          ptr(int64(9)),
			ErrorRate:      ptr(0.4),
			TopErrorType:   ptr("TimeoutError"),
			AdditionalData: extra,
		}, NewErrorServiceStats)},
		{"ErrorTypeStats", roundTripCase(&ErrorTypeStats{
			ErrorType:      ptr("TimeoutError"),
			Count:          ptr(int64(4)),
			Percentage:     ptr(44.4),
			AffectedUsers:  ptr(int64(2)),
			Status:         ptr(ErrorStatusRegressed),
			AdditionalData: extra,
		}, NewErrorTypeStats)},
		{"CorrelatedError", roundTripCase(correlated, NewCorrelatedError)},
		{"ErrorCorrelation", roundTripCase(&ErrorCorrelation{
			ErrorID:          ptr("err-1"),
			CorrelatedErrors: []*CorrelatedError{correlated},
			RootCause:        ptr("database failover"),
			CommonAttributes: []*Attribute{attr("db.system", "postgresql")},
			AdditionalData:   extra,
		}, NewErrorCorrelation)},
		{"StackFrame", roundTripCase(&StackFrame{
			Index:          ptr(int32(0)),
			Location:       &CodeLocation{Filepath: ptr("main.go"), LineNumber: ptr(int32(10)), AdditionalData: extra},
			IsUserCode:     ptr(true),
			ModuleName:     ptr("app"),
			ModuleVersion:  ptr("1.0.0"),
			IsNative:       ptr(false),
			AdditionalData: extra,
		}, NewStackFrame)},
		{"ExceptionTypeStats", roundTripCase(&ExceptionTypeStats{
			ExceptionType:  ptr("NullReferenceException"),
			Count:          ptr(int64(3)),
			Percentage:     ptr(60.0),
			Status:         ptr(ExceptionStatusInvestigating),
			AdditionalData: extra,
		}, NewExceptionTypeStats)},
		{"ExceptionServiceStats", roundTripCase(&ExceptionServiceStats{
			ServiceName:    ptr("api"),
			Count:          ptr(int64(5)),
			RatePerMinute:  ptr(0.75),
			AdditionalData: extra,
		}, NewExceptionServiceStats)},
		{"ExceptionStats", roundTripCase(&ExceptionStats{
			TotalCount:     ptr(int64(5)),
			UniqueTypes:    ptr(int32(2)),
			ByType:         []*ExceptionTypeStats{{ExceptionType: ptr("E"), Count: ptr(int64(5)), AdditionalData: extra}},
			ByService:      []*ExceptionServiceStats{{ServiceName: ptr("api"), Count: ptr(int64(5)), AdditionalData: extra}},
			Trend:          ptr(ExceptionTrendDown),
			AdditionalData: extra,
		}, NewExceptionStats)},
		{"MetricMetadata", roundTripCase(&MetricMetadata{
			Name:           ptr("http.server.request.duration"),
			Description:    ptr("Duration of HTTP server requests"),
			Unit:           ptr("s"),
			Type:           ptr(MetricTypeHistogram),
			LabelKeys:      []string{"http.route", "http.response.status_code"},
			Services:       []string{"api"},
			AdditionalData: extra,
		}, NewMetricMetadata)},
		{"MetricDataPoint", roundTripCase(point, NewMetricDataPoint)},
		{"MetricTimeSeries", roundTripCase(series, NewMetricTimeSeries)},
		{"MetricQueryResponse", roundTripCase(&MetricQueryResponse{
			MetricName:     ptr("process.cpu.utilization"),
			Series:         []*MetricTimeSeries{series},
			AdditionalData: extra,
		}, NewMetricQueryResponse)},
		{"ServiceInfo", roundTripCase(&ServiceInfo{
			Name:           ptr("api"),
			NamespaceName:  ptr("shop"),
			Version:        ptr("1.2.0"),
			InstanceCount:  ptr(int64(3)),
			LastSeen:       ptr(t1),
			AdditionalData: extra,
		}, NewServiceInfo)},
		{"OperationInfo", roundTripCase(&OperationInfo{
			Name:           ptr("GET /orders"),
			SpanKind:       ptr(SpanKindServer),
			RequestCount:   ptr(int64(1200)),
			ErrorCount:     ptr(int64(6)),
			AvgDurationMs:  ptr(18.5),
			P99DurationMs:  ptr(240.125),
			AdditionalData: extra,
		}, NewOperationInfo)},
		{"PipelineStatusStats", roundTripCase(&PipelineStatusStats{
			Status:         ptr(CicdPipelineStatusCancelled),
			Count:          ptr(int64(2)),
			Percentage:     ptr(10.0),
			AdditionalData: extra,
		}, NewPipelineStatusStats)},
		{"PipelineStats", roundTripCase(&PipelineStats{
			TotalRuns:          ptr(int64(20)),
			SuccessRate:        ptr(0.9),
			AvgDurationSeconds: ptr(312.4),
			P95DurationSeconds: ptr(601.5),
			ByStatus:           []*PipelineStatusStats{{Status: ptr(CicdPipelineStatusSuccess), Count: ptr(int64(18)), AdditionalData: extra}},
			AdditionalData:     extra,
		}, NewPipelineStats)},
		{"SessionCountryStats", roundTripCase(&SessionCountryStats{
			CountryCode:    ptr("AT"),
			CountryName:    ptr("Austria"),
			Count:          ptr(int64(14)),
			Percentage:     ptr(7.5),
			AdditionalData: extra,
		}, NewSessionCountryStats)},
		{"SessionDeviceStats", roundTripCase(&SessionDeviceStats{
			DeviceType:     ptr(DeviceTypeTablet),
			Count:          ptr(int64(3)),
			Percentage:     ptr(1.5),
			AdditionalData: extra,
		}, NewSessionDeviceStats)},
		{"SpanEvent", roundTripCase(&SpanEvent{
			Name:                   ptr("exception"),
			TimeUnixNano:           ptr(t0.UnixNano()),
			Attributes:             []*Attribute{attr("exception.type", "E")},
			DroppedAttributesCount: ptr(int64(1)),
			AdditionalData:         extra,
		}, NewSpanEvent)},
		{"SpanLink", roundTripCase(&SpanLink{
			TraceID:                ptr("0000000000000000000000000000abcd"),
			SpanID:                 ptr("000000000000abcd"),
			TraceState:             ptr("vendor=1"),
			Attributes:             []*Attribute{attr("link", "parent")},
			DroppedAttributesCount: ptr(int64(0)),
			Flags:                  ptr(int32(1)),
			AdditionalData:         extra,
		}, NewSpanLink)},
		{"StreamEvent", roundTripCase(&StreamEvent{
			Type:           ptr("deployment"),
			Data:           json.RawMessage(`{"deployment.id":"d1","status":"success"}`),
			Timestamp:      ptr(t0),
			AdditionalData: extra,
		}, NewStreamEvent)},
		{"StreamSubscription", roundTripCase(&StreamSubscription{
			EventTypes:     []string{"span", "exception"},
			ServiceName:    ptr("api"),
			TraceID:        ptr("0000000000000000000000000000abcd"),
			MinSeverity:    ptr(SeverityNumberWarn),
			Filters:        map[string]string{"http.route": "/orders"},
			SampleRate:     ptr(0.5),
			AdditionalData: extra,
		}, NewStreamSubscription)},
		{"ProblemDetails", roundTripCase(&problem, NewProblemDetails)},
		{"ValidationErrorDetail", roundTripCase(detail, NewValidationErrorDetail)},
		{"ValidationError", roundTripCase(&ValidationError{ProblemDetails: problem, Errors: []*ValidationErrorDetail{detail}}, NewValidationError)},
		{"NotFoundError", roundTripCase(&NotFoundError{ProblemDetails: problem, ResourceType: ptr("deployment"), ResourceID: ptr("d9")}, NewNotFoundError)},
		{"InternalServerError", roundTripCase(&InternalServerError{ProblemDetails: problem}, NewInternalServerError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestRejectedValueKeepsAnyJSONType(t *testing.T) {
	for _, raw := range []string{`5000`, `true`, `"gossip"`, `["a",1]`, `{"k":1.5}`} {
		in := `{"field":"limit","rejected_value":` + raw + `}`
		d, err := serialization.Unmarshal([]byte(in), NewValidationErrorDetail)
		if err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if string(d.RejectedValue) != raw {
			t.Errorf("RejectedValue = %s, want %s", d.RejectedValue, raw)
		}
		if len(d.AdditionalData) != 0 {
			t.Errorf("rejected_value %s landed in additional data: %v", raw, d.AdditionalData)
		}
	}
}
