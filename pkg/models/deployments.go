package models

import (
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// DeploymentCreate is the body of a create-deployment call.
type DeploymentCreate struct {
	ServiceName    *string
	ServiceVersion *string
	Environment    *DeploymentEnvironment
	Strategy       *DeploymentStrategy
	DeployedBy     *string
	GitCommit      *string
	GitBranch      *string
	AdditionalData serialization.AdditionalData
}

var deploymentCreateFields = serialization.NewFields(
	serialization.String("service_name", func(m *DeploymentCreate) **string { return &m.ServiceName }),
	serialization.String("service_version", func(m *DeploymentCreate) **string { return &m.ServiceVersion }),
	serialization.Enum("environment", func(m *DeploymentCreate) **DeploymentEnvironment { return &m.Environment }),
	serialization.Enum("strategy", func(m *DeploymentCreate) **DeploymentStrategy { return &m.Strategy }),
	serialization.String("deployed_by", func(m *DeploymentCreate) **string { return &m.DeployedBy }),
	serialization.String("git_commit", func(m *DeploymentCreate) **string { return &m.GitCommit }),
	serialization.String("git_branch", func(m *DeploymentCreate) **string { return &m.GitBranch }),
)

func NewDeploymentCreate(n *serialization.ParseNode) (*DeploymentCreate, error) { return decode[DeploymentCreate](n) }

func (m *DeploymentCreate) Serialize(w *serialization.Writer) error {
	return deploymentCreateFields.Encode(w, m, m.AdditionalData)
}

func (m *DeploymentCreate) Deserialize(n *serialization.ParseNode) error {
	return deploymentCreateFields.Decode(n, m, &m.AdditionalData)
}

func (m *DeploymentCreate) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *DeploymentCreate) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// DeploymentUpdate carries the fields a deployment PATCH may change.
type DeploymentUpdate struct {
	Status          *DeploymentStatus
	HealthyReplicas *int32
	ErrorMessage    *string
	AdditionalData  serialization.AdditionalData
}

var deploymentUpdateFields = serialization.NewFields(
	serialization.Enum("status", func(m *DeploymentUpdate) **DeploymentStatus { return &m.Status }),
	serialization.Int32("healthy_replicas", func(m *DeploymentUpdate) **int32 { return &m.HealthyReplicas }),
	serialization.String("error_message", func(m *DeploymentUpdate) **string { return &m.ErrorMessage }),
)

func NewDeploymentUpdate(n *serialization.ParseNode) (*DeploymentUpdate, error) { return decode[DeploymentUpdate](n) }

func (m *DeploymentUpdate) Serialize(w *serialization.Writer) error {
	return deploymentUpdateFields.Encode(w, m, m.AdditionalData)
}

func (m *DeploymentUpdate) Deserialize(n *serialization.ParseNode) error {
	return deploymentUpdateFields.Decode(n, m, &m.AdditionalData)
}

func (m *DeploymentUpdate) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *DeploymentUpdate) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// DeploymentEntity is a deployment as stored by qyl.
type DeploymentEntity struct {
	DeploymentID    *string
	ServiceName     *string
	ServiceVersion  *string
	Environment     *DeploymentEnvironment
	Status          *DeploymentStatus
	Strategy        *DeploymentStrategy
	StartTime       *time.Time
	EndTime         *time.Time
	DurationS       *float64
	DeployedBy      *string
	GitCommit       *string
	GitBranch       *string
	PreviousVersion *string
	RollbackTarget  *string
	ReplicaCount    *int32
	HealthyReplicas *int32
	ErrorMessage    *string
	AdditionalData  serialization.AdditionalData
}

var deploymentEntityFields = serialization.NewFields(
	serialization.String("deployment.id", func(m *DeploymentEntity) **string { return &m.DeploymentID }),
	serialization.String("service.name", func(m *DeploymentEntity) **string { return &m.ServiceName }),
	serialization.String("service.version", func(m *DeploymentEntity) **string { return &m.ServiceVersion }),
	serialization.Enum("environment", func(m *DeploymentEntity) **DeploymentEnvironment { return &m.Environment }),
	serialization.Enum("status", func(m *DeploymentEntity) **DeploymentStatus { return &m.Status }),
	serialization.Enum("strategy", func(m *DeploymentEntity) **DeploymentStrategy { return &m.Strategy }),
	serialization.Time("start_time", func(m *DeploymentEntity) **time.Time { return &m.StartTime }),
	serialization.Time("end_time", func(m *DeploymentEntity) **time.Time { return &m.EndTime }),
	serialization.Float64("duration_s", func(m *DeploymentEntity) **float64 { return &m.DurationS }),
	serialization.String("deployed_by", func(m *DeploymentEntity) **string { return &m.DeployedBy }),
	serialization.String("git_commit", func(m *DeploymentEntity) **string { return &m.GitCommit }),
	serialization.String("git_branch", func(m *DeploymentEntity) **string { return &m.GitBranch }),
	serialization.String("previous_version", func(m *DeploymentEntity) **string { return &m.PreviousVersion }),
	serialization.String("rollback_target", func(m *DeploymentEntity) **string { return &m.RollbackTarget }),
	serialization.Int32("replica_count", func(m *DeploymentEntity) **int32 { return &m.ReplicaCount }),
	serialization.Int32("healthy_replicas", func(m *DeploymentEntity) **int32 { return &m.HealthyReplicas }),
	serialization.String("error_message", func(m *DeploymentEntity) **string { return &m.ErrorMessage }),
)

func NewDeploymentEntity(n *serialization.ParseNode) (*DeploymentEntity, error) { return decode[DeploymentEntity](n) }

func (m *DeploymentEntity) Serialize(w *serialization.Writer) error {
	return deploymentEntityFields.Encode(w, m, m.AdditionalData)
}

func (m *DeploymentEntity) Deserialize(n *serialization.ParseNode) error {
	return deploymentEntityFields.Decode(n, m, &m.AdditionalData)
}

func (m *DeploymentEntity) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *DeploymentEntity) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// DeploymentMetrics summarises runtime health of one deployment over a window.
type DeploymentMetrics struct {
	DeploymentID    *string
	ServiceName     *string
	WindowStart     *time.Time
	WindowEnd       *time.Time
	RequestRate     *float64
	ErrorRate       *float64
	AvgLatencyMs    *float64
	P99LatencyMs    *float64
	ReplicaCount    *int32
	HealthyReplicas *int32
	AdditionalData  serialization.AdditionalData
}

var deploymentMetricsFields = serialization.NewFields(
	serialization.String("deployment.id", func(m *DeploymentMetrics) **string { return &m.DeploymentID }),
	serialization.String("service.name", func(m *DeploymentMetrics) **string { return &m.ServiceName }),
	serialization.Time("window_start", func(m *DeploymentMetrics) **time.Time { return &m.WindowStart }),
	serialization.Time("window_end", func(m *DeploymentMetrics) **time.Time { return &m.WindowEnd }),
	serialization.Float64("request_rate", func(m *DeploymentMetrics) **float64 { return &m.RequestRate }),
	serialization.Float64("error_rate", func(m *DeploymentMetrics) **float64 { return &m.ErrorRate }),
	serialization.Float64("avg_latency_ms", func(m *DeploymentMetrics) **float64 { return &m.AvgLatencyMs }),
	serialization.Float64("p99_latency_ms", func(m *DeploymentMetrics) **float64 { return &m.P99LatencyMs }),
	serialization.Int32("replica_count", func(m *DeploymentMetrics) **int32 { return &m.ReplicaCount }),
	serialization.Int32("healthy_replicas", func(m *DeploymentMetrics) **int32 { return &m.HealthyReplicas }),
)

func NewDeploymentMetrics(n *serialization.ParseNode) (*DeploymentMetrics, error) { return decode[DeploymentMetrics](n) }

func (m *DeploymentMetrics) Serialize(w *serialization.Writer) error {
	return deploymentMetricsFields.Encode(w, m, m.AdditionalData)
}

func (m *DeploymentMetrics) Deserialize(n *serialization.ParseNode) error {
	return deploymentMetricsFields.Decode(n, m, &m.AdditionalData)
}

func (m *DeploymentMetrics) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *DeploymentMetrics) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// DoraMetrics holds the four DORA delivery metrics.
type DoraMetrics struct {
	DeploymentFrequency *float64
	LeadTimeHours       *float64
	ChangeFailureRate   *float64
	MTTRHours           *float64
	PerformanceLevel    *DoraPerformanceLevel
	AdditionalData      serialization.AdditionalData
}

var doraMetricsFields = serialization.NewFields(
	serialization.Float64("deployment_frequency", func(m *DoraMetrics) **float64 { return &m.DeploymentFrequency }),
	serialization.Float64("lead_time_hours", func(m *DoraMetrics) **float64 { return &m.LeadTimeHours }),
	serialization.Float64("change_failure_rate", func(m *DoraMetrics) **float64 { return &m.ChangeFailureRate }),
	serialization.Float64("mttr_hours", func(m *DoraMetrics) **float64 { return &m.MTTRHours }),
	serialization.Enum("performance_level", func(m *DoraMetrics) **DoraPerformanceLevel { return &m.PerformanceLevel }),
)

func NewDoraMetrics(n *serialization.ParseNode) (*DoraMetrics, error) { return decode[DoraMetrics](n) }

func (m *DoraMetrics) Serialize(w *serialization.Writer) error {
	return doraMetricsFields.Encode(w, m, m.AdditionalData)
}

func (m *DoraMetrics) Deserialize(n *serialization.ParseNode) error {
	return doraMetricsFields.Decode(n, m, &m.AdditionalData)
}

func (m *DoraMetrics) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *DoraMetrics) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// DeploymentEvent is delivered on the deployment stream.
type DeploymentEvent struct {
	EventName                 *string
	DeploymentID              *string
	ServiceName               *string
	DeploymentEnvironmentName *string
	Status                    *DeploymentStatus
	Timestamp                 *time.Time
	AdditionalData            serialization.AdditionalData
}

var deploymentEventFields = serialization.NewFields(
	serialization.String("event.name", func(m *DeploymentEvent) **string { return &m.EventName }),
	serialization.String("deployment.id", func(m *DeploymentEvent) **string { return &m.DeploymentID }),
	serialization.String("service.name", func(m *DeploymentEvent) **string { return &m.ServiceName }),
	serialization.String("deployment.environment.name", func(m *DeploymentEvent) **string { return &m.DeploymentEnvironmentName }),
	serialization.Enum("status", func(m *DeploymentEvent) **DeploymentStatus { return &m.Status }),
	serialization.Time("timestamp", func(m *DeploymentEvent) **time.Time { return &m.Timestamp }),
)

func NewDeploymentEvent(n *serialization.ParseNode) (*DeploymentEvent, error) { return decode[DeploymentEvent](n) }

func (m *DeploymentEvent) Serialize(w *serialization.Writer) error {
	return deploymentEventFields.Encode(w, m, m.AdditionalData)
}

func (m *DeploymentEvent) Deserialize(n *serialization.ParseNode) error {
	return deploymentEventFields.Decode(n, m, &m.AdditionalData)
}

func (m *DeploymentEvent) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *DeploymentEvent) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
