package client

import (
	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

// Client is the root of the builder tree.
type Client struct {
	base request.BaseRequestBuilder
}

// New returns a client that sends through adapter.
func New(adapter request.Adapter) *Client {
	return &Client{base: request.NewBaseRequestBuilder(adapter, "{+baseurl}", nil)}
}

// V1 navigates to /v1.
func (c *Client) V1() *V1RequestBuilder {
	return &V1RequestBuilder{base: c.base.Nested("{+baseurl}/v1")}
}

// V1RequestBuilder groups the version 1 resources.
type V1RequestBuilder struct {
	base request.BaseRequestBuilder
}

func (b *V1RequestBuilder) Deployments() *DeploymentsRequestBuilder {
	return &DeploymentsRequestBuilder{base: b.base.Nested(deploymentsTemplate)}
}

func (b *V1RequestBuilder) Errors() *ErrorsRequestBuilder {
	return &ErrorsRequestBuilder{base: b.base.Nested(errorsTemplate)}
}

func (b *V1RequestBuilder) Exceptions() *ExceptionsRequestBuilder {
	return &ExceptionsRequestBuilder{base: b.base.Nested(exceptionsTemplate)}
}

func (b *V1RequestBuilder) Metrics() *MetricsRequestBuilder {
	return &MetricsRequestBuilder{base: b.base.Nested(metricsTemplate)}
}

func (b *V1RequestBuilder) Pipelines() *PipelinesRequestBuilder {
	return &PipelinesRequestBuilder{base: b.base.Nested(pipelinesTemplate)}
}

func (b *V1RequestBuilder) Services() *ServicesRequestBuilder {
	return &ServicesRequestBuilder{base: b.base.Nested(servicesTemplate)}
}

func (b *V1RequestBuilder) Sessions() *SessionsRequestBuilder {
	return &SessionsRequestBuilder{base: b.base.Nested(sessionsTemplate)}
}

func (b *V1RequestBuilder) Stream() *StreamRequestBuilder {
	return &StreamRequestBuilder{base: b.base.Nested("{+baseurl}/v1/stream")}
}

func (b *V1RequestBuilder) Traces() *TracesRequestBuilder {
	return &TracesRequestBuilder{base: b.base.Nested(tracesTemplate)}
}

// Error mappings shared by the operations. Keys follow the server's
// documented responses per operation kind.
var (
	validationFailure = serialization.Upcast(models.NewValidationError)
	notFound          = serialization.Upcast(models.NewNotFoundError)
	serverFailure     = serialization.Upcast(models.NewInternalServerError)

	listErrors   = request.ErrorMapping{"400": validationFailure, "500": serverFailure}
	itemErrors   = request.ErrorMapping{"404": notFound, "500": serverFailure}
	updateErrors = request.ErrorMapping{"400": validationFailure, "404": notFound, "500": serverFailure}
	serverErrors = request.ErrorMapping{"500": serverFailure}
)

// wireNames translates every snake_case query field of the API to its
// camelCase wire name. Single-word fields are their own wire name.
var wireNames = request.NameTable{
	"end_time":        "endTime",
	"exception_type":  "exceptionType",
	"is_active":       "isActive",
	"max_duration_ms": "maxDurationMs",
	"metric_name":     "metricName",
	"min_duration_ms": "minDurationMs",
	"min_severity":    "minSeverity",
	"name_pattern":    "namePattern",
	"namespace_name":  "namespaceName",
	"pipeline_name":   "pipelineName",
	"sample_rate":     "sampleRate",
	"service_name":    "serviceName",
	"start_time":      "startTime",
	"user_id":         "userId",
}

// ListQueryParameters pages a nested listing.
type ListQueryParameters struct {
	Cursor *string `query:"cursor,omitempty"`
	Limit  *int32  `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
}

func (ListQueryParameters) QueryParameterName(field string) string { return field }

// NoQuery configures operations that take no query filters.
type NoQuery = request.Config[request.DefaultQueryParameters]

// Config is shorthand for the per-call options of an operation with query
// type Q.
type Config[Q any] = request.Config[Q]
