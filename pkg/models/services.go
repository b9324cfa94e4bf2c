package models

import (
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// ServiceInfo is the list view of a service.
type ServiceInfo struct {
	Name           *string
	NamespaceName  *string
	Version        *string
	InstanceCount  *int64
	LastSeen       *time.Time
	AdditionalData serialization.AdditionalData
}

var serviceInfoFields = serialization.NewFields(
	serialization.String("name", func(m *ServiceInfo) **string { return &m.Name }),
	serialization.String("namespace_name", func(m *ServiceInfo) **string { return &m.NamespaceName }),
	serialization.String("version", func(m *ServiceInfo) **string { return &m.Version }),
	serialization.Int64("instance_count", func(m *ServiceInfo) **int64 { return &m.InstanceCount }),
	serialization.Time("last_seen", func(m *ServiceInfo) **time.Time { return &m.LastSeen }),
)

func NewServiceInfo(n *serialization.ParseNode) (*ServiceInfo, error) { return decode[ServiceInfo](n) }

func (m *ServiceInfo) Serialize(w *serialization.Writer) error {
	return serviceInfoFields.Encode(w, m, m.AdditionalData)
}

func (m *ServiceInfo) Deserialize(n *serialization.ParseNode) error {
	return serviceInfoFields.Decode(n, m, &m.AdditionalData)
}

func (m *ServiceInfo) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ServiceInfo) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// ServiceDetails is the full view of a service.
type ServiceDetails struct {
	Name                     *string
	NamespaceName            *string
	Version                  *string
	InstanceCount            *int64
	LastSeen                 *time.Time
	ResourceAttributes       []*Attribute
	InstrumentationLibraries []*InstrumentationScope
	RequestRate              *float64
	ErrorRate                *float64
	AvgLatencyMs             *float64
	P99LatencyMs             *float64
	AdditionalData           serialization.AdditionalData
}

var serviceDetailsFields = serialization.NewFields(
	serialization.String("name", func(m *ServiceDetails) **string { return &m.Name }),
	serialization.String("namespace_name", func(m *ServiceDetails) **string { return &m.NamespaceName }),
	serialization.String("version", func(m *ServiceDetails) **string { return &m.Version }),
	serialization.Int64("instance_count", func(m *ServiceDetails) **int64 { return &m.InstanceCount }),
	serialization.Time("last_seen", func(m *ServiceDetails) **time.Time { return &m.LastSeen }),
	serialization.ObjectList("resource_attributes", func(m *ServiceDetails) *[]*Attribute { return &m.ResourceAttributes }, NewAttribute),
	serialization.ObjectList("instrumentation_libraries", func(m *ServiceDetails) *[]*InstrumentationScope { return &m.InstrumentationLibraries }, NewInstrumentationScope),
	serialization.Float64("request_rate", func(m *ServiceDetails) **float64 { return &m.RequestRate }),
	serialization.Float64("error_rate", func(m *ServiceDetails) **float64 { return &m.ErrorRate }),
	serialization.Float64("avg_latency_ms", func(m *ServiceDetails) **float64 { return &m.AvgLatencyMs }),
	serialization.Float64("p99_latency_ms", func(m *ServiceDetails) **float64 { return &m.P99LatencyMs }),
)

func NewServiceDetails(n *serialization.ParseNode) (*ServiceDetails, error) { return decode[ServiceDetails](n) }

func (m *ServiceDetails) Serialize(w *serialization.Writer) error {
	return serviceDetailsFields.Encode(w, m, m.AdditionalData)
}

func (m *ServiceDetails) Deserialize(n *serialization.ParseNode) error {
	return serviceDetailsFields.Decode(n, m, &m.AdditionalData)
}

func (m *ServiceDetails) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ServiceDetails) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// OperationInfo summarises one span name served by a service.
type OperationInfo struct {
	Name           *string
	SpanKind       *SpanKind
	RequestCount   *int64
	ErrorCount     *int64
	AvgDurationMs  *float64
	P99DurationMs  *float64
	AdditionalData serialization.AdditionalData
}

var operationInfoFields = serialization.NewFields(
	serialization.String("name", func(m *OperationInfo) **string { return &m.Name }),
	serialization.IntEnum("span_kind", func(m *OperationInfo) **SpanKind { return &m.SpanKind }),
	serialization.Int64("request_count", func(m *OperationInfo) **int64 { return &m.RequestCount }),
	serialization.Int64("error_count", func(m *OperationInfo) **int64 { return &m.ErrorCount }),
	serialization.Float64("avg_duration_ms", func(m *OperationInfo) **float64 { return &m.AvgDurationMs }),
	serialization.Float64("p99_duration_ms", func(m *OperationInfo) **float64 { return &m.P99DurationMs }),
)

func NewOperationInfo(n *serialization.ParseNode) (*OperationInfo, error) { return decode[OperationInfo](n) }

func (m *OperationInfo) Serialize(w *serialization.Writer) error {
	return operationInfoFields.Encode(w, m, m.AdditionalData)
}

func (m *OperationInfo) Deserialize(n *serialization.ParseNode) error {
	return operationInfoFields.Decode(n, m, &m.AdditionalData)
}

func (m *OperationInfo) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *OperationInfo) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
