package client

import (
	"context"
	"net/http"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	deploymentsTemplate       = "{+baseurl}/v1/deployments{?cursor,endTime,environment,limit,serviceName,startTime,status}"
	deploymentItemTemplate    = "{+baseurl}/v1/deployments/{deploymentId}"
	deploymentMetricsTemplate = "{+baseurl}/v1/deployments/{deploymentId}/metrics"
	doraTemplate              = "{+baseurl}/v1/deployments/metrics/dora{?endTime,environment,serviceName,startTime}"
)

// DeploymentsRequestBuilder handles /v1/deployments.
type DeploymentsRequestBuilder struct {
	base request.BaseRequestBuilder
}

// DeploymentsGetQueryParameters filters the deployment listing.
type DeploymentsGetQueryParameters struct {
	Cursor      *string                       `query:"cursor,omitempty"`
	EndTime     *time.Time                    `query:"end_time,omitempty"`
	Environment *models.DeploymentEnvironment `query:"environment,omitempty" validate:"omitempty,known"`
	Limit       *int32                        `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	ServiceName *string                       `query:"service_name,omitempty"`
	StartTime   *time.Time                    `query:"start_time,omitempty"`
	Status      *models.DeploymentStatus      `query:"status,omitempty" validate:"omitempty,known"`
}

func (DeploymentsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// ByDeploymentID navigates to /v1/deployments/{deploymentId}.
func (b *DeploymentsRequestBuilder) ByDeploymentID(deploymentID string) *DeploymentItemRequestBuilder {
	return &DeploymentItemRequestBuilder{base: b.base.Child(deploymentItemTemplate, "deploymentId", deploymentID)}
}

// Metrics navigates to /v1/deployments/metrics.
func (b *DeploymentsRequestBuilder) Metrics() *DeploymentsMetricsRequestBuilder {
	return &DeploymentsMetricsRequestBuilder{base: b.base.Nested("{+baseurl}/v1/deployments/metrics")}
}

// Get lists deployments.
func (b *DeploymentsRequestBuilder) Get(ctx context.Context, cfg *Config[DeploymentsGetQueryParameters]) (*models.Page[*models.DeploymentEntity], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewDeploymentEntity), listErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *DeploymentsRequestBuilder) ToGetRequestInformation(cfg *Config[DeploymentsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

// Post records a new deployment. The server answers 201 with the stored
// entity, status "pending".
func (b *DeploymentsRequestBuilder) Post(ctx context.Context, body *models.DeploymentCreate, cfg *NoQuery) (*models.DeploymentEntity, error) {
	info, err := b.ToPostRequestInformation(body, cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewDeploymentEntity, listErrors)
}

// ToPostRequestInformation builds the POST request without sending it.
func (b *DeploymentsRequestBuilder) ToPostRequestInformation(body *models.DeploymentCreate, cfg *NoQuery) (*request.RequestInformation, error) {
	info, err := request.Prepare(b.base, http.MethodPost, request.ContentTypeJSON, cfg)
	if err != nil {
		return nil, err
	}
	if err := info.SetContent(body); err != nil {
		return nil, err
	}
	return info, nil
}

// WithURL returns a builder pinned to rawURL, e.g. a URL taken from a
// previous response.
func (b *DeploymentsRequestBuilder) WithURL(rawURL string) *DeploymentsRequestBuilder {
	return &DeploymentsRequestBuilder{base: b.base.WithURL(rawURL)}
}

// DeploymentItemRequestBuilder handles /v1/deployments/{deploymentId}.
type DeploymentItemRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get fetches one deployment.
func (b *DeploymentItemRequestBuilder) Get(ctx context.Context, cfg *NoQuery) (*models.DeploymentEntity, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewDeploymentEntity, itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *DeploymentItemRequestBuilder) ToGetRequestInformation(cfg *NoQuery) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

// Patch applies a partial update and returns the updated entity.
func (b *DeploymentItemRequestBuilder) Patch(ctx context.Context, body *models.DeploymentUpdate, cfg *NoQuery) (*models.DeploymentEntity, error) {
	info, err := b.ToPatchRequestInformation(body, cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewDeploymentEntity, updateErrors)
}

// ToPatchRequestInformation builds the PATCH request without sending it.
func (b *DeploymentItemRequestBuilder) ToPatchRequestInformation(body *models.DeploymentUpdate, cfg *NoQuery) (*request.RequestInformation, error) {
	info, err := request.Prepare(b.base, http.MethodPatch, request.ContentTypeJSON, cfg)
	if err != nil {
		return nil, err
	}
	if err := info.SetContent(body); err != nil {
		return nil, err
	}
	return info, nil
}

// Metrics navigates to /v1/deployments/{deploymentId}/metrics.
func (b *DeploymentItemRequestBuilder) Metrics() *DeploymentMetricsRequestBuilder {
	return &DeploymentMetricsRequestBuilder{base: b.base.Nested(deploymentMetricsTemplate)}
}

func (b *DeploymentItemRequestBuilder) WithURL(rawURL string) *DeploymentItemRequestBuilder {
	return &DeploymentItemRequestBuilder{base: b.base.WithURL(rawURL)}
}

// DeploymentMetricsRequestBuilder handles the rollout metrics of one
// deployment.
type DeploymentMetricsRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get fetches the health metrics of the deployment.
func (b *DeploymentMetricsRequestBuilder) Get(ctx context.Context, cfg *NoQuery) (*models.DeploymentMetrics, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewDeploymentMetrics, itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *DeploymentMetricsRequestBuilder) ToGetRequestInformation(cfg *NoQuery) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *DeploymentMetricsRequestBuilder) WithURL(rawURL string) *DeploymentMetricsRequestBuilder {
	return &DeploymentMetricsRequestBuilder{base: b.base.WithURL(rawURL)}
}

// DeploymentsMetricsRequestBuilder groups the fleet-wide deployment metrics.
type DeploymentsMetricsRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Dora navigates to /v1/deployments/metrics/dora.
func (b *DeploymentsMetricsRequestBuilder) Dora() *DoraRequestBuilder {
	return &DoraRequestBuilder{base: b.base.Nested(doraTemplate)}
}

// DoraRequestBuilder handles the DORA four keys.
type DoraRequestBuilder struct {
	base request.BaseRequestBuilder
}

type DoraGetQueryParameters struct {
	EndTime     *time.Time                    `query:"end_time,omitempty"`
	Environment *models.DeploymentEnvironment `query:"environment,omitempty" validate:"omitempty,known"`
	ServiceName *string                       `query:"service_name,omitempty"`
	StartTime   *time.Time                    `query:"start_time,omitempty"`
}

func (DoraGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// Get computes DORA metrics.
func (b *DoraRequestBuilder) Get(ctx context.Context, cfg *Config[DoraGetQueryParameters]) (*models.DoraMetrics, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewDoraMetrics, serverErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *DoraRequestBuilder) ToGetRequestInformation(cfg *Config[DoraGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *DoraRequestBuilder) WithURL(rawURL string) *DoraRequestBuilder {
	return &DoraRequestBuilder{base: b.base.WithURL(rawURL)}
}
