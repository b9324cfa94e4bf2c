package client

import (
	"context"
	"net/http"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	pipelinesTemplate     = "{+baseurl}/v1/pipelines{?cursor,endTime,limit,pipelineName,startTime,status,system}"
	pipelineStatsTemplate = "{+baseurl}/v1/pipelines/stats{?endTime,pipelineName,startTime}"
)

// PipelinesRequestBuilder handles /v1/pipelines, the CI/CD run history.
type PipelinesRequestBuilder struct {
	base request.BaseRequestBuilder
}

type PipelinesGetQueryParameters struct {
	Cursor       *string                    `query:"cursor,omitempty"`
	EndTime      *time.Time                 `query:"end_time,omitempty"`
	Limit        *int32                     `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	PipelineName *string                    `query:"pipeline_name,omitempty"`
	StartTime    *time.Time                 `query:"start_time,omitempty"`
	Status       *models.CicdPipelineStatus `query:"status,omitempty" validate:"omitempty,known"`
	System       *models.CicdSystem         `query:"system,omitempty" validate:"omitempty,known"`
}

func (PipelinesGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

func (b *PipelinesRequestBuilder) Stats() *PipelineStatsRequestBuilder {
	return &PipelineStatsRequestBuilder{base: b.base.Nested(pipelineStatsTemplate)}
}

// Get lists pipeline runs.
func (b *PipelinesRequestBuilder) Get(ctx context.Context, cfg *Config[PipelinesGetQueryParameters]) (*models.Page[*models.PipelineRunEvent], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewPipelineRunEvent), listErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *PipelinesRequestBuilder) ToGetRequestInformation(cfg *Config[PipelinesGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *PipelinesRequestBuilder) WithURL(rawURL string) *PipelinesRequestBuilder {
	return &PipelinesRequestBuilder{base: b.base.WithURL(rawURL)}
}

type PipelineStatsGetQueryParameters struct {
	EndTime      *time.Time `query:"end_time,omitempty"`
	PipelineName *string    `query:"pipeline_name,omitempty"`
	StartTime    *time.Time `query:"start_time,omitempty"`
}

func (PipelineStatsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// PipelineStatsRequestBuilder handles /v1/pipelines/stats.
type PipelineStatsRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get fetches pipeline statistics.
func (b *PipelineStatsRequestBuilder) Get(ctx context.Context, cfg *Config[PipelineStatsGetQueryParameters]) (*models.PipelineStats, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewPipelineStats, serverErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *PipelineStatsRequestBuilder) ToGetRequestInformation(cfg *Config[PipelineStatsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *PipelineStatsRequestBuilder) WithURL(rawURL string) *PipelineStatsRequestBuilder {
	return &PipelineStatsRequestBuilder{base: b.base.WithURL(rawURL)}
}
