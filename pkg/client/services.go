package client

import (
	"context"
	"net/http"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	servicesTemplate          = "{+baseurl}/v1/services{?cursor,limit,namespaceName}"
	serviceItemTemplate       = "{+baseurl}/v1/services/{serviceName}"
	serviceOperationsTemplate = "{+baseurl}/v1/services/{serviceName}/operations{?cursor,limit}"
)

// ServicesRequestBuilder handles /v1/services.
type ServicesRequestBuilder struct {
	base request.BaseRequestBuilder
}

type ServicesGetQueryParameters struct {
	Cursor        *string `query:"cursor,omitempty"`
	Limit         *int32  `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	NamespaceName *string `query:"namespace_name,omitempty"`
}

func (ServicesGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

// ByServiceName navigates to /v1/services/{serviceName}.
func (b *ServicesRequestBuilder) ByServiceName(name string) *ServiceItemRequestBuilder {
	return &ServiceItemRequestBuilder{base: b.base.Child(serviceItemTemplate, "serviceName", name)}
}

// Get lists services.
func (b *ServicesRequestBuilder) Get(ctx context.Context, cfg *Config[ServicesGetQueryParameters]) (*models.Page[*models.ServiceInfo], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewServiceInfo), serverErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *ServicesRequestBuilder) ToGetRequestInformation(cfg *Config[ServicesGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *ServicesRequestBuilder) WithURL(rawURL string) *ServicesRequestBuilder {
	return &ServicesRequestBuilder{base: b.base.WithURL(rawURL)}
}

// ServiceItemRequestBuilder handles /v1/services/{serviceName}.
type ServiceItemRequestBuilder struct {
	base request.BaseRequestBuilder
}

func (b *ServiceItemRequestBuilder) Operations() *ServiceOperationsRequestBuilder {
	return &ServiceOperationsRequestBuilder{base: b.base.Nested(serviceOperationsTemplate)}
}

// Get fetches the details of one service.
func (b *ServiceItemRequestBuilder) Get(ctx context.Context, cfg *NoQuery) (*models.ServiceDetails, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewServiceDetails, itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *ServiceItemRequestBuilder) ToGetRequestInformation(cfg *NoQuery) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *ServiceItemRequestBuilder) WithURL(rawURL string) *ServiceItemRequestBuilder {
	return &ServiceItemRequestBuilder{base: b.base.WithURL(rawURL)}
}

// ServiceOperationsRequestBuilder lists the span names a service emits.
type ServiceOperationsRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get lists the operations of the service.
func (b *ServiceOperationsRequestBuilder) Get(ctx context.Context, cfg *Config[ListQueryParameters]) (*models.Page[*models.OperationInfo], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewOperationInfo), itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *ServiceOperationsRequestBuilder) ToGetRequestInformation(cfg *Config[ListQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *ServiceOperationsRequestBuilder) WithURL(rawURL string) *ServiceOperationsRequestBuilder {
	return &ServiceOperationsRequestBuilder{base: b.base.WithURL(rawURL)}
}
