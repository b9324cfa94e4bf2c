package client

import (
	"context"
	"io"
	"net/http"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	streamTracesTemplate      = "{+baseurl}/v1/stream/traces{?minDurationMs,serviceName}"
	streamTraceSpansTemplate  = "{+baseurl}/v1/stream/traces/{traceId}/spans"
	streamEventsTemplate      = "{+baseurl}/v1/stream/events{?sampleRate,serviceName,types}"
	streamLogsTemplate        = "{+baseurl}/v1/stream/logs{?minSeverity,serviceName}"
	streamMetricsTemplate     = "{+baseurl}/v1/stream/metrics{?metricName,serviceName}"
	streamExceptionsTemplate  = "{+baseurl}/v1/stream/exceptions{?serviceName}"
	streamDeploymentsTemplate = "{+baseurl}/v1/stream/deployments{?environment,serviceName}"
)

// StreamRequestBuilder groups the server-sent event endpoints. Each Get
// returns the raw event stream; closing it, or cancelling ctx, ends the
// subscription. transport.Events decodes the frames.
type StreamRequestBuilder struct {
	base request.BaseRequestBuilder
}

func (b *StreamRequestBuilder) Traces() *StreamTracesRequestBuilder {
	return &StreamTracesRequestBuilder{base: b.base.Nested(streamTracesTemplate)}
}

func (b *StreamRequestBuilder) Events() *StreamEventsRequestBuilder {
	return &StreamEventsRequestBuilder{base: b.base.Nested(streamEventsTemplate)}
}

func (b *StreamRequestBuilder) Logs() *StreamLogsRequestBuilder {
	return &StreamLogsRequestBuilder{base: b.base.Nested(streamLogsTemplate)}
}

func (b *StreamRequestBuilder) Metrics() *StreamMetricsRequestBuilder {
	return &StreamMetricsRequestBuilder{base: b.base.Nested(streamMetricsTemplate)}
}

func (b *StreamRequestBuilder) Exceptions() *StreamExceptionsRequestBuilder {
	return &StreamExceptionsRequestBuilder{base: b.base.Nested(streamExceptionsTemplate)}
}

func (b *StreamRequestBuilder) Deployments() *StreamDeploymentsRequestBuilder {
	return &StreamDeploymentsRequestBuilder{base: b.base.Nested(streamDeploymentsTemplate)}
}

func openStream(ctx context.Context, b request.BaseRequestBuilder, info *request.RequestInformation, err error) (io.ReadCloser, error) {
	if err != nil {
		return nil, err
	}
	return b.Adapter.SendStream(ctx, info, nil)
}

// StreamTracesRequestBuilder handles /v1/stream/traces.
type StreamTracesRequestBuilder struct {
	base request.BaseRequestBuilder
}

type StreamTracesGetQueryParameters struct {
	MinDurationMs *int64  `query:"min_duration_ms,omitempty" validate:"omitempty,gte=0"`
	ServiceName   *string `query:"service_name,omitempty"`
}

func (StreamTracesGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// ByTraceID narrows the stream to one trace.
func (b *StreamTracesRequestBuilder) ByTraceID(traceID string) *StreamTraceItemRequestBuilder {
	return &StreamTraceItemRequestBuilder{base: b.base.Child("{+baseurl}/v1/stream/traces/{traceId}", "traceId", traceID)}
}

// Get opens the event stream. Closing the body ends it.
func (b *StreamTracesRequestBuilder) Get(ctx context.Context, cfg *Config[StreamTracesGetQueryParameters]) (io.ReadCloser, error) {
	info, err := b.ToGetRequestInformation(cfg)
	return openStream(ctx, b.base, info, err)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *StreamTracesRequestBuilder) ToGetRequestInformation(cfg *Config[StreamTracesGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeEventStream, cfg)
}

func (b *StreamTracesRequestBuilder) WithURL(rawURL string) *StreamTracesRequestBuilder {
	return &StreamTracesRequestBuilder{base: b.base.WithURL(rawURL)}
}

type StreamTraceItemRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Spans streams the spans of the trace as they arrive.
func (b *StreamTraceItemRequestBuilder) Spans() *StreamTraceSpansRequestBuilder {
	return &StreamTraceSpansRequestBuilder{base: b.base.Nested(streamTraceSpansTemplate)}
}

type StreamTraceSpansRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get opens the event stream. Closing the body ends it.
func (b *StreamTraceSpansRequestBuilder) Get(ctx context.Context, cfg *NoQuery) (io.ReadCloser, error) {
	info, err := b.ToGetRequestInformation(cfg)
	return openStream(ctx, b.base, info, err)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *StreamTraceSpansRequestBuilder) ToGetRequestInformation(cfg *NoQuery) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeEventStream, cfg)
}

func (b *StreamTraceSpansRequestBuilder) WithURL(rawURL string) *StreamTraceSpansRequestBuilder {
	return &StreamTraceSpansRequestBuilder{base: b.base.WithURL(rawURL)}
}

// StreamEventsRequestBuilder handles /v1/stream/events, the multiplexed
// stream of every signal.
type StreamEventsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type StreamEventsGetQueryParameters struct {
	SampleRate  *float64                 `query:"sample_rate,omitempty" validate:"omitempty,gt=0,lte=1"`
	ServiceName *string                  `query:"service_name,omitempty"`
	Types       []models.StreamEventType `query:"types,omitempty" validate:"omitempty,dive,known"`
}

func (StreamEventsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// Get opens the event stream. Closing the body ends it.
func (b *StreamEventsRequestBuilder) Get(ctx context.Context, cfg *Config[StreamEventsGetQueryParameters]) (io.ReadCloser, error) {
	info, err := b.ToGetRequestInformation(cfg)
	return openStream(ctx, b.base, info, err)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *StreamEventsRequestBuilder) ToGetRequestInformation(cfg *Config[StreamEventsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeEventStream, cfg)
}

func (b *StreamEventsRequestBuilder) WithURL(rawURL string) *StreamEventsRequestBuilder {
	return &StreamEventsRequestBuilder{base: b.base.WithURL(rawURL)}
}

type StreamLogsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type StreamLogsGetQueryParameters struct {
	MinSeverity *models.SeverityNumber `query:"min_severity,omitempty" validate:"omitempty,known"`
	ServiceName *string                `query:"service_name,omitempty"`
}

func (StreamLogsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// Get opens the event stream. Closing the body ends it.
func (b *StreamLogsRequestBuilder) Get(ctx context.Context, cfg *Config[StreamLogsGetQueryParameters]) (io.ReadCloser, error) {
	info, err := b.ToGetRequestInformation(cfg)
	return openStream(ctx, b.base, info, err)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *StreamLogsRequestBuilder) ToGetRequestInformation(cfg *Config[StreamLogsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeEventStream, cfg)
}

func (b *StreamLogsRequestBuilder) WithURL(rawURL string) *StreamLogsRequestBuilder {
	return &StreamLogsRequestBuilder{base: b.base.WithURL(rawURL)}
}

type StreamMetricsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type StreamMetricsGetQueryParameters struct {
	MetricName  *string `query:"metric_name,omitempty"`
	ServiceName *string `query:"service_name,omitempty"`
}

func (StreamMetricsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// Get opens the event stream. Closing the body ends it.
func (b *StreamMetricsRequestBuilder) Get(ctx context.Context, cfg *Config[StreamMetricsGetQueryParameters]) (io.ReadCloser, error) {
	info, err := b.ToGetRequestInformation(cfg)
	return openStream(ctx, b.base, info, err)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *StreamMetricsRequestBuilder) ToGetRequestInformation(cfg *Config[StreamMetricsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeEventStream, cfg)
}

func (b *StreamMetricsRequestBuilder) WithURL(rawURL string) *StreamMetricsRequestBuilder {
	return &StreamMetricsRequestBuilder{base: b.base.WithURL(rawURL)}
}

type StreamExceptionsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type StreamExceptionsGetQueryParameters struct {
	ServiceName *string `query:"service_name,omitempty"`
}

func (StreamExceptionsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// Get opens the event stream. Closing the body ends it.
func (b *StreamExceptionsRequestBuilder) Get(ctx context.Context, cfg *Config[StreamExceptionsGetQueryParameters]) (io.ReadCloser, error) {
	info, err := b.ToGetRequestInformation(cfg)
	return openStream(ctx, b.base, info, err)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *StreamExceptionsRequestBuilder) ToGetRequestInformation(cfg *Config[StreamExceptionsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeEventStream, cfg)
}

func (b *StreamExceptionsRequestBuilder) WithURL(rawURL string) *StreamExceptionsRequestBuilder {
	return &StreamExceptionsRequestBuilder{base: b.base.WithURL(rawURL)}
}

type StreamDeploymentsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type StreamDeploymentsGetQueryParameters struct {
	Environment *models.DeploymentEnvironment `query:"environment,omitempty" validate:"omitempty,known"`
	ServiceName *string                       `query:"service_name,omitempty"`
}

func (StreamDeploymentsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// Get opens the event stream. Closing the body ends it.
func (b *StreamDeploymentsRequestBuilder) Get(ctx context.Context, cfg *Config[StreamDeploymentsGetQueryParameters]) (io.ReadCloser, error) {
	info, err := b.ToGetRequestInformation(cfg)
	return openStream(ctx, b.base, info, err)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *StreamDeploymentsRequestBuilder) ToGetRequestInformation(cfg *Config[StreamDeploymentsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeEventStream, cfg)
}

func (b *StreamDeploymentsRequestBuilder) WithURL(rawURL string) *StreamDeploymentsRequestBuilder {
	return &StreamDeploymentsRequestBuilder{base: b.base.WithURL(rawURL)}
}
