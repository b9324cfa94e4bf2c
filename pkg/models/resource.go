package models

import (
	"github.com/ANcpLua/qyl/pkg/serialization"
)

// Resource describes the entity that produced telemetry, using OpenTelemetry
// semantic convention keys.
type Resource struct {
	ServiceName               *string
	ServiceNamespace          *string
	ServiceInstanceID         *string
	ServiceVersion            *string
	TelemetrySDKName          *string
	TelemetrySDKLanguage      *TelemetrySdkLanguage
	TelemetrySDKVersion       *string
	TelemetryAutoVersion      *string
	DeploymentEnvironmentName *string
	CloudProvider             *CloudProvider
	CloudRegion               *string
	CloudAvailabilityZone     *string
	CloudAccountID            *string
	CloudPlatform             *string
	HostName                  *string
	HostID                    *string
	HostType                  *string
	HostArch                  *HostArch
	OSType                    *OsType
	OSDescription             *string
	OSVersion                 *string
	ProcessPID                *int64
	ProcessExecutableName     *string
	ProcessCommandLine        *string
	ProcessRuntimeName        *string
	ProcessRuntimeVersion     *string
	ContainerID               *string
	ContainerName             *string
	ContainerImageName        *string
	ContainerImageTag         *string
	K8sClusterName            *string
	K8sNamespaceName          *string
	K8sPodName                *string
	K8sPodUID                 *string
	K8sDeploymentName         *string
	Attributes                []*Attribute
	DroppedAttributesCount    *int64
	AdditionalData            serialization.AdditionalData
}

var resourceFields = serialization.NewFields(
	serialization.String("service.name", func(m *Resource) **string { return &m.ServiceName }),
	serialization.String("service.namespace", func(m *Resource) **string { return &m.ServiceNamespace }),
	serialization.String("service.instance.id", func(m *Resource) **string { return &m.ServiceInstanceID }),
	serialization.String("service.version", func(m *Resource) **string { return &m.ServiceVersion }),
	serialization.String("telemetry.sdk.name", func(m *Resource) **string { return &m.TelemetrySDKName }),
	serialization.Enum("telemetry.sdk.language", func(m *Resource) **TelemetrySdkLanguage { return &m.TelemetrySDKLanguage }),
	serialization.String("telemetry.sdk.version", func(m *Resource) **string { return &m.TelemetrySDKVersion }),
	serialization.String("telemetry.auto.version", func(m *Resource) **string { return &m.TelemetryAutoVersion }),
	serialization.String("deployment.environment.name", func(m *Resource) **string { return &m.DeploymentEnvironmentName }),
	serialization.Enum("cloud.provider", func(m *Resource) **CloudProvider { return &m.CloudProvider }),
	serialization.String("cloud.region", func(m *Resource) **string { return &m.CloudRegion }),
	serialization.String("cloud.availability_zone", func(m *Resource) **string { return &m.CloudAvailabilityZone }),
	serialization.String("cloud.account.id", func(m *Resource) **string { return &m.CloudAccountID }),
	serialization.String("cloud.platform", func(m *Resource) **string { return &m.CloudPlatform }),
	serialization.String("host.name", func(m *Resource) **string { return &m.HostName }),
	serialization.String("host.id", func(m *Resource) **string { return &m.HostID }),
	serialization.String("host.type", func(m *Resource) **string { return &m.HostType }),
	serialization.Enum("host.arch", func(m *Resource) **HostArch { return &m.HostArch }),
	serialization.Enum("os.type", func(m *Resource) **OsType { return &m.OSType }),
	serialization.String("os.description", func(m *Resource) **string { return &m.OSDescription }),
	serialization.String("os.version", func(m *Resource) **string { return &m.OSVersion }),
	serialization.Int64("process.pid", func(m *Resource) **int64 { return &m.ProcessPID }),
	serialization.String("process.executable.name", func(m *Resource) **string { return &m.ProcessExecutableName }),
	serialization.String("process.command_line", func(m *Resource) **string { return &m.ProcessCommandLine }),
	serialization.String("process.runtime.name", func(m *Resource) **string { return &m.ProcessRuntimeName }),
	serialization.String("process.runtime.version", func(m *Resource) **string { return &m.ProcessRuntimeVersion }),
	serialization.String("container.id", func(m *Resource) **string { return &m.ContainerID }),
	serialization.String("container.name", func(m *Resource) **string { return &m.ContainerName }),
	serialization.String("container.image.name", func(m *Resource) **string { return &m.ContainerImageName }),
	serialization.String("container.image.tag", func(m *Resource) **string { return &m.ContainerImageTag }),
	serialization.String("k8s.cluster.name", func(m *Resource) **string { return &m.K8sClusterName }),
	serialization.String("k8s.namespace.name", func(m *Resource) **string { return &m.K8sNamespaceName }),
	serialization.String("k8s.pod.name", func(m *Resource) **string { return &m.K8sPodName }),
	serialization.String("k8s.pod.uid", func(m *Resource) **string { return &m.K8sPodUID }),
	serialization.String("k8s.deployment.name", func(m *Resource) **string { return &m.K8sDeploymentName }),
	serialization.ObjectList("attributes", func(m *Resource) *[]*Attribute { return &m.Attributes }, NewAttribute),
	serialization.Int64("dropped_attributes_count", func(m *Resource) **int64 { return &m.DroppedAttributesCount }),
)

func NewResource(n *serialization.ParseNode) (*Resource, error) { return decode[Resource](n) }

func (m *Resource) Serialize(w *serialization.Writer) error {
	return resourceFields.Encode(w, m, m.AdditionalData)
}

func (m *Resource) Deserialize(n *serialization.ParseNode) error {
	return resourceFields.Decode(n, m, &m.AdditionalData)
}

func (m *Resource) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *Resource) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
