package client

import (
	"context"
	"net/http"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	errorsTemplate     = "{+baseurl}/v1/errors{?category,cursor,endTime,limit,serviceName,startTime,status}"
	errorItemTemplate  = "{+baseurl}/v1/errors/{errorId}"
	errorStatsTemplate = "{+baseurl}/v1/errors/stats{?endTime,serviceName,startTime}"
)

// ErrorsRequestBuilder handles /v1/errors.
type ErrorsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type ErrorsGetQueryParameters struct {
	Category    *models.ErrorCategory `query:"category,omitempty" validate:"omitempty,known"`
	Cursor      *string               `query:"cursor,omitempty"`
	EndTime     *time.Time            `query:"end_time,omitempty"`
	Limit       *int32                `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	ServiceName *string               `query:"service_name,omitempty"`
	StartTime   *time.Time            `query:"start_time,omitempty"`
	Status      *models.ErrorStatus   `query:"status,omitempty" validate:"omitempty,known"`
}

func (ErrorsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

func (b *ErrorsRequestBuilder) ByErrorID(errorID string) *ErrorItemRequestBuilder {
	return &ErrorItemRequestBuilder{base: b.base.Child(errorItemTemplate, "errorId", errorID)}
}

func (b *ErrorsRequestBuilder) Stats() *ErrorStatsRequestBuilder {
	return &ErrorStatsRequestBuilder{base: b.base.Nested(errorStatsTemplate)}
}

// Get lists error groups.
func (b *ErrorsRequestBuilder) Get(ctx context.Context, cfg *Config[ErrorsGetQueryParameters]) (*models.Page[*models.ErrorEntity], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewErrorEntity), listErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *ErrorsRequestBuilder) ToGetRequestInformation(cfg *Config[ErrorsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *ErrorsRequestBuilder) WithURL(rawURL string) *ErrorsRequestBuilder {
	return &ErrorsRequestBuilder{base: b.base.WithURL(rawURL)}
}

// ErrorItemRequestBuilder handles /v1/errors/{errorId}.
type ErrorItemRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get fetches one error group.
func (b *ErrorItemRequestBuilder) Get(ctx context.Context, cfg *NoQuery) (*models.ErrorEntity, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewErrorEntity, itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *ErrorItemRequestBuilder) ToGetRequestInformation(cfg *NoQuery) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

// Patch changes the triage state of an error group.
func (b *ErrorItemRequestBuilder) Patch(ctx context.Context, body *models.ErrorUpdate, cfg *NoQuery) (*models.ErrorEntity, error) {
	info, err := b.ToPatchRequestInformation(body, cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewErrorEntity, updateErrors)
}

// ToPatchRequestInformation builds the PATCH request without sending it.
func (b *ErrorItemRequestBuilder) ToPatchRequestInformation(body *models.ErrorUpdate, cfg *NoQuery) (*request.RequestInformation, error) {
	info, err := request.Prepare(b.base, http.MethodPatch, request.ContentTypeJSON, cfg)
	if err != nil {
		return nil, err
	}
	if err := info.SetContent(body); err != nil {
		return nil, err
	}
	return info, nil
}

func (b *ErrorItemRequestBuilder) WithURL(rawURL string) *ErrorItemRequestBuilder {
	return &ErrorItemRequestBuilder{base: b.base.WithURL(rawURL)}
}

// TimeRangeQueryParameters bounds a statistics call.
type TimeRangeQueryParameters struct {
	EndTime     *time.Time `query:"end_time,omitempty"`
	ServiceName *string    `query:"service_name,omitempty"`
	StartTime   *time.Time `query:"start_time,omitempty"`
}

func (TimeRangeQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// ErrorStatsRequestBuilder handles /v1/errors/stats.
type ErrorStatsRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get fetches error statistics.
func (b *ErrorStatsRequestBuilder) Get(ctx context.Context, cfg *Config[TimeRangeQueryParameters]) (*models.ErrorStats, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewErrorStats, serverErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *ErrorStatsRequestBuilder) ToGetRequestInformation(cfg *Config[TimeRangeQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *ErrorStatsRequestBuilder) WithURL(rawURL string) *ErrorStatsRequestBuilder {
	return &ErrorStatsRequestBuilder{base: b.base.WithURL(rawURL)}
}
