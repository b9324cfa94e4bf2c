package client

import (
	"context"
	"net/http"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	metricsTemplate     = "{+baseurl}/v1/metrics{?cursor,limit,namePattern,serviceName}"
	metricItemTemplate  = "{+baseurl}/v1/metrics/{metricName}"
	metricQueryTemplate = "{+baseurl}/v1/metrics/query"
)

// MetricsRequestBuilder handles /v1/metrics.
type MetricsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type MetricsGetQueryParameters struct {
	Cursor      *string `query:"cursor,omitempty"`
	Limit       *int32  `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	NamePattern *string `query:"name_pattern,omitempty"`
	ServiceName *string `query:"service_name,omitempty"`
}

func (MetricsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// ByMetricName navigates to /v1/metrics/{metricName}.
func (b *MetricsRequestBuilder) ByMetricName(name string) *MetricItemRequestBuilder {
	return &MetricItemRequestBuilder{base: b.base.Child(metricItemTemplate, "metricName", name)}
}

// Query navigates to /v1/metrics/query.
func (b *MetricsRequestBuilder) Query() *MetricQueryRequestBuilder {
	return &MetricQueryRequestBuilder{base: b.base.Nested(metricQueryTemplate)}
}

// Get lists metric metadata.
func (b *MetricsRequestBuilder) Get(ctx context.Context, cfg *Config[MetricsGetQueryParameters]) (*models.Page[*models.MetricMetadata], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewMetricMetadata), serverErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *MetricsRequestBuilder) ToGetRequestInformation(cfg *Config[MetricsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *MetricsRequestBuilder) WithURL(rawURL string) *MetricsRequestBuilder {
	return &MetricsRequestBuilder{base: b.base.WithURL(rawURL)}
}

// MetricItemRequestBuilder handles /v1/metrics/{metricName}.
type MetricItemRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get fetches the metadata of one metric.
func (b *MetricItemRequestBuilder) Get(ctx context.Context, cfg *NoQuery) (*models.MetricMetadata, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewMetricMetadata, itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *MetricItemRequestBuilder) ToGetRequestInformation(cfg *NoQuery) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *MetricItemRequestBuilder) WithURL(rawURL string) *MetricItemRequestBuilder {
	return &MetricItemRequestBuilder{base: b.base.WithURL(rawURL)}
}

// MetricQueryRequestBuilder handles /v1/metrics/query.
type MetricQueryRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Post runs an aggregation over one metric and returns its time series.
func (b *MetricQueryRequestBuilder) Post(ctx context.Context, body *models.MetricQueryRequest, cfg *NoQuery) (*models.MetricQueryResponse, error) {
	info, err := b.ToPostRequestInformation(body, cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewMetricQueryResponse, listErrors)
}

// ToPostRequestInformation builds the POST request without sending it.
func (b *MetricQueryRequestBuilder) ToPostRequestInformation(body *models.MetricQueryRequest, cfg *NoQuery) (*request.RequestInformation, error) {
	info, err := request.Prepare(b.base, http.MethodPost, request.ContentTypeJSON, cfg)
	if err != nil {
		return nil, err
	}
	if err := info.SetContent(body); err != nil {
		return nil, err
	}
	return info, nil
}

func (b *MetricQueryRequestBuilder) WithURL(rawURL string) *MetricQueryRequestBuilder {
	return &MetricQueryRequestBuilder{base: b.base.WithURL(rawURL)}
}
