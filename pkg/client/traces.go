package client

import (
	"context"
	"net/http"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	tracesTemplate     = "{+baseurl}/v1/traces{?cursor,endTime,limit,maxDurationMs,minDurationMs,serviceName,startTime,status}"
	traceItemTemplate  = "{+baseurl}/v1/traces/{traceId}"
	traceSpansTemplate = "{+baseurl}/v1/traces/{traceId}/spans{?cursor,limit}"
	traceQueryTemplate = "{+baseurl}/v1/traces/query"
)

// traceListErrors adds 404 for a filter naming an unknown service.
var traceListErrors = request.ErrorMapping{"400": validationFailure, "404": notFound, "500": serverFailure}

// TracesRequestBuilder handles /v1/traces.
type TracesRequestBuilder struct {
	base request.BaseRequestBuilder
}

type TracesGetQueryParameters struct {
	Cursor        *string                `query:"cursor,omitempty"`
	EndTime       *time.Time             `query:"end_time,omitempty"`
	Limit         *int32                 `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	MaxDurationMs *int64                 `query:"max_duration_ms,omitempty" validate:"omitempty,gte=0"`
	MinDurationMs *int64                 `query:"min_duration_ms,omitempty" validate:"omitempty,gte=0"`
	ServiceName   *string                `query:"service_name,omitempty"`
	StartTime     *time.Time             `query:"start_time,omitempty"`
	Status        *models.SpanStatusCode `query:"status,omitempty" validate:"omitempty,known"`
}

func (TracesGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

func (b *TracesRequestBuilder) ByTraceID(traceID string) *TraceItemRequestBuilder {
	return &TraceItemRequestBuilder{base: b.base.Child(traceItemTemplate, "traceId", traceID)}
}

// Query navigates to /v1/traces/query, the structured trace search.
func (b *TracesRequestBuilder) Query() *TraceQueryRequestBuilder {
	return &TraceQueryRequestBuilder{base: b.base.Nested(traceQueryTemplate)}
}

// Get lists traces.
func (b *TracesRequestBuilder) Get(ctx context.Context, cfg *Config[TracesGetQueryParameters]) (*models.Page[*models.Trace], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewTrace), traceListErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *TracesRequestBuilder) ToGetRequestInformation(cfg *Config[TracesGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *TracesRequestBuilder) WithURL(rawURL string) *TracesRequestBuilder {
	return &TracesRequestBuilder{base: b.base.WithURL(rawURL)}
}

// TraceItemRequestBuilder handles /v1/traces/{traceId}.
type TraceItemRequestBuilder struct {
	base request.BaseRequestBuilder
}

func (b *TraceItemRequestBuilder) Spans() *TraceSpansRequestBuilder {
	return &TraceSpansRequestBuilder{base: b.base.Nested(traceSpansTemplate)}
}

// Get fetches one trace.
func (b *TraceItemRequestBuilder) Get(ctx context.Context, cfg *NoQuery) (*models.Trace, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewTrace, itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *TraceItemRequestBuilder) ToGetRequestInformation(cfg *NoQuery) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *TraceItemRequestBuilder) WithURL(rawURL string) *TraceItemRequestBuilder {
	return &TraceItemRequestBuilder{base: b.base.WithURL(rawURL)}
}

type TraceSpansRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get lists the spans of the trace.
func (b *TraceSpansRequestBuilder) Get(ctx context.Context, cfg *Config[ListQueryParameters]) (*models.Page[*models.Span], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewSpan), itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *TraceSpansRequestBuilder) ToGetRequestInformation(cfg *Config[ListQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *TraceSpansRequestBuilder) WithURL(rawURL string) *TraceSpansRequestBuilder {
	return &TraceSpansRequestBuilder{base: b.base.WithURL(rawURL)}
}

// TraceQueryRequestBuilder handles /v1/traces/query.
type TraceQueryRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Post runs a trace search and returns the first page of matches.
func (b *TraceQueryRequestBuilder) Post(ctx context.Context, body *models.TraceQuery, cfg *NoQuery) (*models.Page[*models.Trace], error) {
	info, err := b.ToPostRequestInformation(body, cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewTrace), listErrors)
}

// ToPostRequestInformation builds the POST request without sending it.
func (b *TraceQueryRequestBuilder) ToPostRequestInformation(body *models.TraceQuery, cfg *NoQuery) (*request.RequestInformation, error) {
	info, err := request.Prepare(b.base, http.MethodPost, request.ContentTypeJSON, cfg)
	if err != nil {
		return nil, err
	}
	if err := info.SetContent(body); err != nil {
		return nil, err
	}
	return info, nil
}

func (b *TraceQueryRequestBuilder) WithURL(rawURL string) *TraceQueryRequestBuilder {
	return &TraceQueryRequestBuilder{base: b.base.WithURL(rawURL)}
}
