package client

import (
	"context"
	"net/http"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	exceptionsTemplate     = "{+baseurl}/v1/exceptions{?cursor,endTime,exceptionType,limit,serviceName,startTime,status}"
	exceptionStatsTemplate = "{+baseurl}/v1/exceptions/stats{?endTime,serviceName,startTime}"
)

// ExceptionsRequestBuilder handles /v1/exceptions.
type ExceptionsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type ExceptionsGetQueryParameters struct {
	Cursor        *string                 `query:"cursor,omitempty"`
	EndTime       *time.Time              `query:"end_time,omitempty"`
	ExceptionType *string                 `query:"exception_type,omitempty"`
	Limit         *int32                  `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	ServiceName   *string                 `query:"service_name,omitempty"`
	StartTime     *time.Time              `query:"start_time,omitempty"`
	Status        *models.ExceptionStatus `query:"status,omitempty" validate:"omitempty,known"`
}

func (ExceptionsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

func (b *ExceptionsRequestBuilder) Stats() *ExceptionStatsRequestBuilder {
	return &ExceptionStatsRequestBuilder{base: b.base.Nested(exceptionStatsTemplate)}
}

// Get lists exceptions.
func (b *ExceptionsRequestBuilder) Get(ctx context.Context, cfg *Config[ExceptionsGetQueryParameters]) (*models.Page[*models.EnrichedException], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewEnrichedException), listErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *ExceptionsRequestBuilder) ToGetRequestInformation(cfg *Config[ExceptionsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *ExceptionsRequestBuilder) WithURL(rawURL string) *ExceptionsRequestBuilder {
	return &ExceptionsRequestBuilder{base: b.base.WithURL(rawURL)}
}

type ExceptionStatsRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get fetches exception statistics.
func (b *ExceptionStatsRequestBuilder) Get(ctx context.Context, cfg *Config[TimeRangeQueryParameters]) (*models.ExceptionStats, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewExceptionStats, serverErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *ExceptionStatsRequestBuilder) ToGetRequestInformation(cfg *Config[TimeRangeQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *ExceptionStatsRequestBuilder) WithURL(rawURL string) *ExceptionStatsRequestBuilder {
	return &ExceptionStatsRequestBuilder{base: b.base.WithURL(rawURL)}
}
