package models

import "github.com/ANcpLua/qyl/pkg/serialization"

// Enumerations decode totally: a wire string outside the declared set is
// kept as-is, reported by IsKnown, and encoded back unchanged. Query filters
// are stricter and reject unknown values before a request is built.

// AggregationFunction is a metric aggregation applied by a metric query.
type AggregationFunction string

const (
	AggregationFunctionCount         AggregationFunction = "count"
	AggregationFunctionSum           AggregationFunction = "sum"
	AggregationFunctionAvg           AggregationFunction = "avg"
	AggregationFunctionMin           AggregationFunction = "min"
	AggregationFunctionMax           AggregationFunction = "max"
	AggregationFunctionP50           AggregationFunction = "p50"
	AggregationFunctionP90           AggregationFunction = "p90"
	AggregationFunctionP95           AggregationFunction = "p95"
	AggregationFunctionP99           AggregationFunction = "p99"
	AggregationFunctionCountDistinct AggregationFunction = "count_distinct"
)

// AggregationFunctionCodec lists the known AggregationFunction values.
var AggregationFunctionCodec = serialization.NewEnum("AggregationFunction",
	AggregationFunctionCount,
	AggregationFunctionSum,
	AggregationFunctionAvg,
	AggregationFunctionMin,
	AggregationFunctionMax,
	AggregationFunctionP50,
	AggregationFunctionP90,
	AggregationFunctionP95,
	AggregationFunctionP99,
	AggregationFunctionCountDistinct,
)

func (v AggregationFunction) IsKnown() bool { return AggregationFunctionCodec.Contains(v) }

// CicdEventName names a CI/CD pipeline event.
type CicdEventName string

const (
	CicdEventNamePipelineStart   CicdEventName = "cicd.pipeline.start"
	CicdEventNamePipelineEnd     CicdEventName = "cicd.pipeline.end"
	CicdEventNameTaskStart       CicdEventName = "cicd.task.start"
	CicdEventNameTaskEnd         CicdEventName = "cicd.task.end"
	CicdEventNameDeploymentStart CicdEventName = "cicd.deployment.start"
	CicdEventNameDeploymentEnd   CicdEventName = "cicd.deployment.end"
)

// CicdEventNameCodec lists the known CicdEventName values.
var CicdEventNameCodec = serialization.NewEnum("CicdEventName",
	CicdEventNamePipelineStart,
	CicdEventNamePipelineEnd,
	CicdEventNameTaskStart,
	CicdEventNameTaskEnd,
	CicdEventNameDeploymentStart,
	CicdEventNameDeploymentEnd,
)

func (v CicdEventName) IsKnown() bool { return CicdEventNameCodec.Contains(v) }

// CicdPipelineStatus is the outcome of a pipeline run.
type CicdPipelineStatus string

const (
	CicdPipelineStatusPending   CicdPipelineStatus = "pending"
	CicdPipelineStatusRunning   CicdPipelineStatus = "running"
	CicdPipelineStatusSuccess   CicdPipelineStatus = "success"
	CicdPipelineStatusFailed    CicdPipelineStatus = "failed"
	CicdPipelineStatusCancelled CicdPipelineStatus = "cancelled"
	CicdPipelineStatusSkipped   CicdPipelineStatus = "skipped"
)

// CicdPipelineStatusCodec lists the known CicdPipelineStatus values.
var CicdPipelineStatusCodec = serialization.NewEnum("CicdPipelineStatus",
	CicdPipelineStatusPending,
	CicdPipelineStatusRunning,
	CicdPipelineStatusSuccess,
	CicdPipelineStatusFailed,
	CicdPipelineStatusCancelled,
	CicdPipelineStatusSkipped,
)

func (v CicdPipelineStatus) IsKnown() bool { return CicdPipelineStatusCodec.Contains(v) }

// CicdSystem identifies the CI/CD system that ran a pipeline.
type CicdSystem string

const (
	CicdSystemGitHubActions      CicdSystem = "github_actions"
	CicdSystemGitLabCI           CicdSystem = "gitlab_ci"
	CicdSystemJenkins            CicdSystem = "jenkins"
	CicdSystemAzureDevOps        CicdSystem = "azure_devops"
	CicdSystemCircleCI           CicdSystem = "circleci"
	CicdSystemTravisCI           CicdSystem = "travis_ci"
	CicdSystemBitbucketPipelines CicdSystem = "bitbucket_pipelines"
	CicdSystemTeamCity           CicdSystem = "teamcity"
	CicdSystemBamboo             CicdSystem = "bamboo"
	CicdSystemDroneCI            CicdSystem = "drone_ci"
	CicdSystemBuildkite          CicdSystem = "buildkite"
	CicdSystemTekton             CicdSystem = "tekton"
	CicdSystemArgoCD             CicdSystem = "argocd"
	CicdSystemFlux               CicdSystem = "flux"
	CicdSystemSpinnaker          CicdSystem = "spinnaker"
	CicdSystemOther              CicdSystem = "other"
)

// CicdSystemCodec lists the known CicdSystem values.
var CicdSystemCodec = serialization.NewEnum("CicdSystem",
	CicdSystemGitHubActions,
	CicdSystemGitLabCI,
	CicdSystemJenkins,
	CicdSystemAzureDevOps,
	CicdSystemCircleCI,
	CicdSystemTravisCI,
	CicdSystemBitbucketPipelines,
	CicdSystemTeamCity,
	CicdSystemBamboo,
	CicdSystemDroneCI,
	CicdSystemBuildkite,
	CicdSystemTekton,
	CicdSystemArgoCD,
	CicdSystemFlux,
	CicdSystemSpinnaker,
	CicdSystemOther,
)

func (v CicdSystem) IsKnown() bool { return CicdSystemCodec.Contains(v) }

// CicdTriggerType is what started a pipeline run.
type CicdTriggerType string

const (
	CicdTriggerTypePush        CicdTriggerType = "push"
	CicdTriggerTypePullRequest CicdTriggerType = "pull_request"
	CicdTriggerTypeManual      CicdTriggerType = "manual"
	CicdTriggerTypeSchedule    CicdTriggerType = "schedule"
	CicdTriggerTypeAPI         CicdTriggerType = "api"
	CicdTriggerTypeWebhook     CicdTriggerType = "webhook"
	CicdTriggerTypeDependency  CicdTriggerType = "dependency"
	CicdTriggerTypeTag         CicdTriggerType = "tag"
	CicdTriggerTypeRelease     CicdTriggerType = "release"
)

// CicdTriggerTypeCodec lists the known CicdTriggerType values.
var CicdTriggerTypeCodec = serialization.NewEnum("CicdTriggerType",
	CicdTriggerTypePush,
	CicdTriggerTypePullRequest,
	CicdTriggerTypeManual,
	CicdTriggerTypeSchedule,
	CicdTriggerTypeAPI,
	CicdTriggerTypeWebhook,
	CicdTriggerTypeDependency,
	CicdTriggerTypeTag,
	CicdTriggerTypeRelease,
)

func (v CicdTriggerType) IsKnown() bool { return CicdTriggerTypeCodec.Contains(v) }

// CloudProvider is the cloud.provider resource attribute.
type CloudProvider string

const (
	CloudProviderAlibabaCloud CloudProvider = "alibaba_cloud"
	CloudProviderAWS          CloudProvider = "aws"
	CloudProviderAzure        CloudProvider = "azure"
	CloudProviderGCP          CloudProvider = "gcp"
	CloudProviderHeroku       CloudProvider = "heroku"
	CloudProviderIBMCloud     CloudProvider = "ibm_cloud"
	CloudProviderTencentCloud CloudProvider = "tencent_cloud"
)

// CloudProviderCodec lists the known CloudProvider values.
var CloudProviderCodec = serialization.NewEnum("CloudProvider",
	CloudProviderAlibabaCloud,
	CloudProviderAWS,
	CloudProviderAzure,
	CloudProviderGCP,
	CloudProviderHeroku,
	CloudProviderIBMCloud,
	CloudProviderTencentCloud,
)

func (v CloudProvider) IsKnown() bool { return CloudProviderCodec.Contains(v) }

// DeploymentEnvironment is the target environment of a deployment.
type DeploymentEnvironment string

const (
	DeploymentEnvironmentDevelopment DeploymentEnvironment = "development"
	DeploymentEnvironmentTesting     DeploymentEnvironment = "testing"
	DeploymentEnvironmentStaging     DeploymentEnvironment = "staging"
	DeploymentEnvironmentProduction  DeploymentEnvironment = "production"
	DeploymentEnvironmentPreview     DeploymentEnvironment = "preview"
	DeploymentEnvironmentCanary      DeploymentEnvironment = "canary"
)

// DeploymentEnvironmentCodec lists the known DeploymentEnvironment values.
var DeploymentEnvironmentCodec = serialization.NewEnum("DeploymentEnvironment",
	DeploymentEnvironmentDevelopment,
	DeploymentEnvironmentTesting,
	DeploymentEnvironmentStaging,
	DeploymentEnvironmentProduction,
	DeploymentEnvironmentPreview,
	DeploymentEnvironmentCanary,
)

func (v DeploymentEnvironment) IsKnown() bool { return DeploymentEnvironmentCodec.Contains(v) }

// DeploymentStatus is the lifecycle state of a deployment.
type DeploymentStatus string

const (
	DeploymentStatusPending    DeploymentStatus = "pending"
	DeploymentStatusInProgress DeploymentStatus = "in_progress"
	DeploymentStatusSuccess    DeploymentStatus = "success"
	DeploymentStatusFailed     DeploymentStatus = "failed"
	DeploymentStatusRolledBack DeploymentStatus = "rolled_back"
	DeploymentStatusCancelled  DeploymentStatus = "cancelled"
)

// DeploymentStatusCodec lists the known DeploymentStatus values.
var DeploymentStatusCodec = serialization.NewEnum("DeploymentStatus",
	DeploymentStatusPending,
	DeploymentStatusInProgress,
	DeploymentStatusSuccess,
	DeploymentStatusFailed,
	DeploymentStatusRolledBack,
	DeploymentStatusCancelled,
)

func (v DeploymentStatus) IsKnown() bool { return DeploymentStatusCodec.Contains(v) }

// DeploymentStrategy is the rollout strategy of a deployment.
type DeploymentStrategy string

const (
	DeploymentStrategyRolling     DeploymentStrategy = "rolling"
	DeploymentStrategyBlueGreen   DeploymentStrategy = "blue_green"
	DeploymentStrategyCanary      DeploymentStrategy = "canary"
	DeploymentStrategyRecreate    DeploymentStrategy = "recreate"
	DeploymentStrategyABTest      DeploymentStrategy = "ab_test"
	DeploymentStrategyShadow      DeploymentStrategy = "shadow"
	DeploymentStrategyFeatureFlag DeploymentStrategy = "feature_flag"
)

// DeploymentStrategyCodec lists the known DeploymentStrategy values.
var DeploymentStrategyCodec = serialization.NewEnum("DeploymentStrategy",
	DeploymentStrategyRolling,
	DeploymentStrategyBlueGreen,
	DeploymentStrategyCanary,
	DeploymentStrategyRecreate,
	DeploymentStrategyABTest,
	DeploymentStrategyShadow,
	DeploymentStrategyFeatureFlag,
)

func (v DeploymentStrategy) IsKnown() bool { return DeploymentStrategyCodec.Contains(v) }

// DeviceType classifies the client device of a session.
type DeviceType string

const (
	DeviceTypeDesktop  DeviceType = "desktop"
	DeviceTypeMobile   DeviceType = "mobile"
	DeviceTypeTablet   DeviceType = "tablet"
	DeviceTypeTV       DeviceType = "tv"
	DeviceTypeConsole  DeviceType = "console"
	DeviceTypeWearable DeviceType = "wearable"
	DeviceTypeIoT      DeviceType = "iot"
	DeviceTypeBot      DeviceType = "bot"
	DeviceTypeUnknown  DeviceType = "unknown"
)

// DeviceTypeCodec lists the known DeviceType values.
var DeviceTypeCodec = serialization.NewEnum("DeviceType",
	DeviceTypeDesktop,
	DeviceTypeMobile,
	DeviceTypeTablet,
	DeviceTypeTV,
	DeviceTypeConsole,
	DeviceTypeWearable,
	DeviceTypeIoT,
	DeviceTypeBot,
	DeviceTypeUnknown,
)

func (v DeviceType) IsKnown() bool { return DeviceTypeCodec.Contains(v) }

// DoraPerformanceLevel is the DORA performance tier.
type DoraPerformanceLevel string

const (
	DoraPerformanceLevelElite  DoraPerformanceLevel = "elite"
	DoraPerformanceLevelHigh   DoraPerformanceLevel = "high"
	DoraPerformanceLevelMedium DoraPerformanceLevel = "medium"
	DoraPerformanceLevelLow    DoraPerformanceLevel = "low"
)

// DoraPerformanceLevelCodec lists the known DoraPerformanceLevel values.
var DoraPerformanceLevelCodec = serialization.NewEnum("DoraPerformanceLevel",
	DoraPerformanceLevelElite,
	DoraPerformanceLevelHigh,
	DoraPerformanceLevelMedium,
	DoraPerformanceLevelLow,
)

func (v DoraPerformanceLevel) IsKnown() bool { return DoraPerformanceLevelCodec.Contains(v) }

// ErrorCategory classifies a tracked error.
type ErrorCategory string

const (
	ErrorCategoryClient         ErrorCategory = "client"
	ErrorCategoryServer         ErrorCategory = "server"
	ErrorCategoryNetwork        ErrorCategory = "network"
	ErrorCategoryTimeout        ErrorCategory = "timeout"
	ErrorCategoryValidation     ErrorCategory = "validation"
	ErrorCategoryAuthentication ErrorCategory = "authentication"
	ErrorCategoryAuthorization  ErrorCategory = "authorization"
	ErrorCategoryRateLimit      ErrorCategory = "rate_limit"
	ErrorCategoryNotFound       ErrorCategory = "not_found"
	ErrorCategoryConflict       ErrorCategory = "conflict"
	ErrorCategoryInternal       ErrorCategory = "internal"
	ErrorCategoryExternal       ErrorCategory = "external"
	ErrorCategoryDatabase       ErrorCategory = "database"
	ErrorCategoryConfiguration  ErrorCategory = "configuration"
	ErrorCategoryUnknown        ErrorCategory = "unknown"
)

// ErrorCategoryCodec lists the known ErrorCategory values.
var ErrorCategoryCodec = serialization.NewEnum("ErrorCategory",
	ErrorCategoryClient,
	ErrorCategoryServer,
	ErrorCategoryNetwork,
	ErrorCategoryTimeout,
	ErrorCategoryValidation,
	ErrorCategoryAuthentication,
	ErrorCategoryAuthorization,
	ErrorCategoryRateLimit,
	ErrorCategoryNotFound,
	ErrorCategoryConflict,
	ErrorCategoryInternal,
	ErrorCategoryExternal,
	ErrorCategoryDatabase,
	ErrorCategoryConfiguration,
	ErrorCategoryUnknown,
)

func (v ErrorCategory) IsKnown() bool { return ErrorCategoryCodec.Contains(v) }

// ErrorStatus is the triage state of a tracked error.
type ErrorStatus string

const (
	ErrorStatusNew          ErrorStatus = "new"
	ErrorStatusAcknowledged ErrorStatus = "acknowledged"
	ErrorStatusInProgress   ErrorStatus = "in_progress"
	ErrorStatusResolved     ErrorStatus = "resolved"
	ErrorStatusIgnored      ErrorStatus = "ignored"
	ErrorStatusRegressed    ErrorStatus = "regressed"
	ErrorStatusWontFix      ErrorStatus = "wont_fix"
)

// ErrorStatusCodec lists the known ErrorStatus values.
var ErrorStatusCodec = serialization.NewEnum("ErrorStatus",
	ErrorStatusNew,
	ErrorStatusAcknowledged,
	ErrorStatusInProgress,
	ErrorStatusResolved,
	ErrorStatusIgnored,
	ErrorStatusRegressed,
	ErrorStatusWontFix,
)

func (v ErrorStatus) IsKnown() bool { return ErrorStatusCodec.Contains(v) }

// ErrorTrend is the recent direction of an error's rate.
type ErrorTrend string

const (
	ErrorTrendIncreasing ErrorTrend = "increasing"
	ErrorTrendDecreasing ErrorTrend = "decreasing"
	ErrorTrendStable     ErrorTrend = "stable"
	ErrorTrendSpike      ErrorTrend = "spike"
)

// ErrorTrendCodec lists the known ErrorTrend values.
var ErrorTrendCodec = serialization.NewEnum("ErrorTrend",
	ErrorTrendIncreasing,
	ErrorTrendDecreasing,
	ErrorTrendStable,
	ErrorTrendSpike,
)

func (v ErrorTrend) IsKnown() bool { return ErrorTrendCodec.Contains(v) }

// ExceptionStatus is the triage state of an exception group.
type ExceptionStatus string

const (
	ExceptionStatusNew           ExceptionStatus = "new"
	ExceptionStatusInvestigating ExceptionStatus = "investigating"
	ExceptionStatusInProgress    ExceptionStatus = "in_progress"
	ExceptionStatusResolved      ExceptionStatus = "resolved"
	ExceptionStatusIgnored       ExceptionStatus = "ignored"
	ExceptionStatusRegressed     ExceptionStatus = "regressed"
)

// ExceptionStatusCodec lists the known ExceptionStatus values.
var ExceptionStatusCodec = serialization.NewEnum("ExceptionStatus",
	ExceptionStatusNew,
	ExceptionStatusInvestigating,
	ExceptionStatusInProgress,
	ExceptionStatusResolved,
	ExceptionStatusIgnored,
	ExceptionStatusRegressed,
)

func (v ExceptionStatus) IsKnown() bool { return ExceptionStatusCodec.Contains(v) }

// ExceptionTrend is the recent direction of an exception's rate.
type ExceptionTrend string

const (
	ExceptionTrendUp     ExceptionTrend = "up"
	ExceptionTrendDown   ExceptionTrend = "down"
	ExceptionTrendStable ExceptionTrend = "stable"
)

// ExceptionTrendCodec lists the known ExceptionTrend values.
var ExceptionTrendCodec = serialization.NewEnum("ExceptionTrend",
	ExceptionTrendUp,
	ExceptionTrendDown,
	ExceptionTrendStable,
)

func (v ExceptionTrend) IsKnown() bool { return ExceptionTrendCodec.Contains(v) }

// HealthStatus is the health of a service.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthStatusCodec lists the known HealthStatus values.
var HealthStatusCodec = serialization.NewEnum("HealthStatus",
	HealthStatusHealthy,
	HealthStatusDegraded,
	HealthStatusUnhealthy,
)

func (v HealthStatus) IsKnown() bool { return HealthStatusCodec.Contains(v) }

// HostArch is the host.arch resource attribute.
type HostArch string

const (
	HostArchAMD64 HostArch = "amd64"
	HostArchARM32 HostArch = "arm32"
	HostArchARM64 HostArch = "arm64"
	HostArchIA64  HostArch = "ia64"
	HostArchPPC32 HostArch = "ppc32"
	HostArchPPC64 HostArch = "ppc64"
	HostArchS390X HostArch = "s390x"
	HostArchX86   HostArch = "x86"
)

// HostArchCodec lists the known HostArch values.
var HostArchCodec = serialization.NewEnum("HostArch",
	HostArchAMD64,
	HostArchARM32,
	HostArchARM64,
	HostArchIA64,
	HostArchPPC32,
	HostArchPPC64,
	HostArchS390X,
	HostArchX86,
)

func (v HostArch) IsKnown() bool { return HostArchCodec.Contains(v) }

// MetricType is the OpenTelemetry metric data type.
type MetricType string

const (
	MetricTypeGauge                MetricType = "gauge"
	MetricTypeSum                  MetricType = "sum"
	MetricTypeHistogram            MetricType = "histogram"
	MetricTypeExponentialHistogram MetricType = "exponential_histogram"
	MetricTypeSummary              MetricType = "summary"
)

// MetricTypeCodec lists the known MetricType values.
var MetricTypeCodec = serialization.NewEnum("MetricType",
	MetricTypeGauge,
	MetricTypeSum,
	MetricTypeHistogram,
	MetricTypeExponentialHistogram,
	MetricTypeSummary,
)

func (v MetricType) IsKnown() bool { return MetricTypeCodec.Contains(v) }

// OsType is the os.type resource attribute.
type OsType string

const (
	OsTypeWindows      OsType = "windows"
	OsTypeLinux        OsType = "linux"
	OsTypeDarwin       OsType = "darwin"
	OsTypeFreeBSD      OsType = "freebsd"
	OsTypeNetBSD       OsType = "netbsd"
	OsTypeOpenBSD      OsType = "openbsd"
	OsTypeDragonflyBSD OsType = "dragonflybsd"
	OsTypeHPUX         OsType = "hpux"
	OsTypeAIX          OsType = "aix"
	OsTypeSolaris      OsType = "solaris"
	OsTypeZOS          OsType = "z_os"
)

// OsTypeCodec lists the known OsType values.
var OsTypeCodec = serialization.NewEnum("OsType",
	OsTypeWindows,
	OsTypeLinux,
	OsTypeDarwin,
	OsTypeFreeBSD,
	OsTypeNetBSD,
	OsTypeOpenBSD,
	OsTypeDragonflyBSD,
	OsTypeHPUX,
	OsTypeAIX,
	OsTypeSolaris,
	OsTypeZOS,
)

func (v OsType) IsKnown() bool { return OsTypeCodec.Contains(v) }

// SessionState is the lifecycle state of a user session.
type SessionState string

const (
	SessionStateActive      SessionState = "active"
	SessionStateIdle        SessionState = "idle"
	SessionStateEnded       SessionState = "ended"
	SessionStateTimedOut    SessionState = "timed_out"
	SessionStateInvalidated SessionState = "invalidated"
)

// SessionStateCodec lists the known SessionState values.
var SessionStateCodec = serialization.NewEnum("SessionState",
	SessionStateActive,
	SessionStateIdle,
	SessionStateEnded,
	SessionStateTimedOut,
	SessionStateInvalidated,
)

func (v SessionState) IsKnown() bool { return SessionStateCodec.Contains(v) }

// SeverityText is the textual log severity.
type SeverityText string

const (
	SeverityTextTrace SeverityText = "TRACE"
	SeverityTextDebug SeverityText = "DEBUG"
	SeverityTextInfo  SeverityText = "INFO"
	SeverityTextWarn  SeverityText = "WARN"
	SeverityTextError SeverityText = "ERROR"
	SeverityTextFatal SeverityText = "FATAL"
)

// SeverityTextCodec lists the known SeverityText values.
var SeverityTextCodec = serialization.NewEnum("SeverityText",
	SeverityTextTrace,
	SeverityTextDebug,
	SeverityTextInfo,
	SeverityTextWarn,
	SeverityTextError,
	SeverityTextFatal,
)

func (v SeverityText) IsKnown() bool { return SeverityTextCodec.Contains(v) }

// StreamEventType selects the event kinds delivered by the event stream.
type StreamEventType string

const (
	StreamEventTypeTraces      StreamEventType = "traces"
	StreamEventTypeSpans       StreamEventType = "spans"
	StreamEventTypeLogs        StreamEventType = "logs"
	StreamEventTypeMetrics     StreamEventType = "metrics"
	StreamEventTypeExceptions  StreamEventType = "exceptions"
	StreamEventTypeDeployments StreamEventType = "deployments"
	StreamEventTypeAll         StreamEventType = "all"
)

// StreamEventTypeCodec lists the known StreamEventType values.
var StreamEventTypeCodec = serialization.NewEnum("StreamEventType",
	StreamEventTypeTraces,
	StreamEventTypeSpans,
	StreamEventTypeLogs,
	StreamEventTypeMetrics,
	StreamEventTypeExceptions,
	StreamEventTypeDeployments,
	StreamEventTypeAll,
)

func (v StreamEventType) IsKnown() bool { return StreamEventTypeCodec.Contains(v) }

// TelemetrySdkLanguage is the telemetry.sdk.language resource attribute.
type TelemetrySdkLanguage string

const (
	TelemetrySdkLanguageCPP    TelemetrySdkLanguage = "cpp"
	TelemetrySdkLanguageDotNet TelemetrySdkLanguage = "dotnet"
	TelemetrySdkLanguageErlang TelemetrySdkLanguage = "erlang"
	TelemetrySdkLanguageGo     TelemetrySdkLanguage = "go"
	TelemetrySdkLanguageJava   TelemetrySdkLanguage = "java"
	TelemetrySdkLanguageNodeJS TelemetrySdkLanguage = "nodejs"
	TelemetrySdkLanguagePHP    TelemetrySdkLanguage = "php"
	TelemetrySdkLanguagePython TelemetrySdkLanguage = "python"
	TelemetrySdkLanguageRuby   TelemetrySdkLanguage = "ruby"
	TelemetrySdkLanguageRust   TelemetrySdkLanguage = "rust"
	TelemetrySdkLanguageSwift  TelemetrySdkLanguage = "swift"
	TelemetrySdkLanguageWebJS  TelemetrySdkLanguage = "webjs"
)

// TelemetrySdkLanguageCodec lists the known TelemetrySdkLanguage values.
var TelemetrySdkLanguageCodec = serialization.NewEnum("TelemetrySdkLanguage",
	TelemetrySdkLanguageCPP,
	TelemetrySdkLanguageDotNet,
	TelemetrySdkLanguageErlang,
	TelemetrySdkLanguageGo,
	TelemetrySdkLanguageJava,
	TelemetrySdkLanguageNodeJS,
	TelemetrySdkLanguagePHP,
	TelemetrySdkLanguagePython,
	TelemetrySdkLanguageRuby,
	TelemetrySdkLanguageRust,
	TelemetrySdkLanguageSwift,
	TelemetrySdkLanguageWebJS,
)

func (v TelemetrySdkLanguage) IsKnown() bool { return TelemetrySdkLanguageCodec.Contains(v) }

// TimeBucket is the step of a metric time series.
type TimeBucket string

const (
	TimeBucketOneMinute      TimeBucket = "1m"
	TimeBucketFiveMinutes    TimeBucket = "5m"
	TimeBucketFifteenMinutes TimeBucket = "15m"
	TimeBucketOneHour        TimeBucket = "1h"
	TimeBucketOneDay         TimeBucket = "1d"
	TimeBucketOneWeek        TimeBucket = "1w"
	TimeBucketAuto           TimeBucket = "auto"
)

// TimeBucketCodec lists the known TimeBucket values.
var TimeBucketCodec = serialization.NewEnum("TimeBucket",
	TimeBucketOneMinute,
	TimeBucketFiveMinutes,
	TimeBucketFifteenMinutes,
	TimeBucketOneHour,
	TimeBucketOneDay,
	TimeBucketOneWeek,
	TimeBucketAuto,
)

func (v TimeBucket) IsKnown() bool { return TimeBucketCodec.Contains(v) }

// SpanKind is the OpenTelemetry span kind, integer-coded on the wire.
type SpanKind int32

const (
	SpanKindUnspecified SpanKind = iota
	SpanKindInternal
	SpanKindServer
	SpanKindClient
	SpanKindProducer
	SpanKindConsumer
)

func (k SpanKind) IsKnown() bool { return k >= SpanKindUnspecified && k <= SpanKindConsumer }

// SpanStatusCode is the OpenTelemetry span status code.
type SpanStatusCode int32

const (
	SpanStatusCodeUnset SpanStatusCode = iota
	SpanStatusCodeOk
	SpanStatusCodeError
)

func (c SpanStatusCode) IsKnown() bool { return c >= SpanStatusCodeUnset && c <= SpanStatusCodeError }

// SeverityNumber is the OpenTelemetry log severity, 1 (TRACE) to 24 (FATAL4).
type SeverityNumber int32

const (
	SeverityNumberUnspecified SeverityNumber = 0
	SeverityNumberTrace       SeverityNumber = 1
	SeverityNumberDebug       SeverityNumber = 5
	SeverityNumberInfo        SeverityNumber = 9
	SeverityNumberWarn        SeverityNumber = 13
	SeverityNumberError       SeverityNumber = 17
	SeverityNumberFatal       SeverityNumber = 21
)

func (s SeverityNumber) IsKnown() bool { return s >= SeverityNumberUnspecified && s <= 24 }
