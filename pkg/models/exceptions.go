package models

import (
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

type CodeLocation struct {
	Filepath       *string
	LineNumber     *int32
	ColumnNumber   *int32
	FunctionName   *string
	ClassName      *string
	Namespace      *string
	AdditionalData serialization.AdditionalData
}

var codeLocationFields = serialization.NewFields(
	serialization.String("filepath", func(m *CodeLocation) **string { return &m.Filepath }),
	serialization.Int32("line_number", func(m *CodeLocation) **int32 { return &m.LineNumber }),
	serialization.Int32("column_number", func(m *CodeLocation) **int32 { return &m.ColumnNumber }),
	serialization.String("function_name", func(m *CodeLocation) **string { return &m.FunctionName }),
	serialization.String("class_name", func(m *CodeLocation) **string { return &m.ClassName }),
	serialization.String("namespace", func(m *CodeLocation) **string { return &m.Namespace }),
)

func NewCodeLocation(n *serialization.ParseNode) (*CodeLocation, error) { return decode[CodeLocation](n) }

func (m *CodeLocation) Serialize(w *serialization.Writer) error {
	return codeLocationFields.Encode(w, m, m.AdditionalData)
}

func (m *CodeLocation) Deserialize(n *serialization.ParseNode) error {
	return codeLocationFields.Decode(n, m, &m.AdditionalData)
}

func (m *CodeLocation) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *CodeLocation) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// StackFrame is one frame of a stack trace; index 0 is the top.
type StackFrame struct {
	Index          *int32
	Location       *CodeLocation
	IsUserCode     *bool
	ModuleName     *string
	ModuleVersion  *string
	IsNative       *bool
	AdditionalData serialization.AdditionalData
}

var stackFrameFields = serialization.NewFields(
	serialization.Int32("index", func(m *StackFrame) **int32 { return &m.Index }),
	serialization.Object("location", func(m *StackFrame) **CodeLocation { return &m.Location }, NewCodeLocation),
	serialization.Bool("is_user_code", func(m *StackFrame) **bool { return &m.IsUserCode }),
	serialization.String("module_name", func(m *StackFrame) **string { return &m.ModuleName }),
	serialization.String("module_version", func(m *StackFrame) **string { return &m.ModuleVersion }),
	serialization.Bool("is_native", func(m *StackFrame) **bool { return &m.IsNative }),
)

func NewStackFrame(n *serialization.ParseNode) (*StackFrame, error) { return decode[StackFrame](n) }

func (m *StackFrame) Serialize(w *serialization.Writer) error {
	return stackFrameFields.Encode(w, m, m.AdditionalData)
}

func (m *StackFrame) Deserialize(n *serialization.ParseNode) error {
	return stackFrameFields.Decode(n, m, &m.AdditionalData)
}

func (m *StackFrame) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *StackFrame) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type StackTrace struct {
	Frames         []*StackFrame
	Truncated      *bool
	TotalFrames    *int32
	AdditionalData serialization.AdditionalData
}

var stackTraceFields = serialization.NewFields(
	serialization.ObjectList("frames", func(m *StackTrace) *[]*StackFrame { return &m.Frames }, NewStackFrame),
	serialization.Bool("truncated", func(m *StackTrace) **bool { return &m.Truncated }),
	serialization.Int32("total_frames", func(m *StackTrace) **int32 { return &m.TotalFrames }),
)

func NewStackTrace(n *serialization.ParseNode) (*StackTrace, error) { return decode[StackTrace](n) }

func (m *StackTrace) Serialize(w *serialization.Writer) error {
	return stackTraceFields.Encode(w, m, m.AdditionalData)
}

func (m *StackTrace) Deserialize(n *serialization.ParseNode) error {
	return stackTraceFields.Decode(n, m, &m.AdditionalData)
}

func (m *StackTrace) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *StackTrace) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// EnrichedException is an exception group with its stack and cause chain.
type EnrichedException struct {
	ExceptionType   *string
	Message         *string
	StackTrace      *StackTrace
	// Inner exception, if any. Chains end with a nil Cause.
	Cause           *EnrichedException
	Data            []*Attribute
	Fingerprint     *string
	FirstSeen       *time.Time
	LastSeen        *time.Time
	OccurrenceCount *int64
	AffectedUsers   *int64
	Status          *ExceptionStatus
	AdditionalData  serialization.AdditionalData
}

// The table refers to its own factory through the cause field, so it is
// assigned in init to break the initialization cycle.
var enrichedExceptionFields *serialization.Fields[EnrichedException]

func init() {
	enrichedExceptionFields = serialization.NewFields(
		serialization.String("exception_type", func(m *EnrichedException) **string { return &m.ExceptionType }),
		serialization.String("message", func(m *EnrichedException) **string { return &m.Message }),
		serialization.Object("stack_trace", func(m *EnrichedException) **StackTrace { return &m.StackTrace }, NewStackTrace),
		serialization.Object("cause", func(m *EnrichedException) **EnrichedException { return &m.Cause }, NewEnrichedException),
		serialization.ObjectList("data", func(m *EnrichedException) *[]*Attribute { return &m.Data }, NewAttribute),
		serialization.String("fingerprint", func(m *EnrichedException) **string { return &m.Fingerprint }),
		serialization.Time("first_seen", func(m *EnrichedException) **time.Time { return &m.FirstSeen }),
		serialization.Time("last_seen", func(m *EnrichedException) **time.Time { return &m.LastSeen }),
		serialization.Int64("occurrence_count", func(m *EnrichedException) **int64 { return &m.OccurrenceCount }),
		serialization.Int64("affected_users", func(m *EnrichedException) **int64 { return &m.AffectedUsers }),
		serialization.Enum("status", func(m *EnrichedException) **ExceptionStatus { return &m.Status }),
	)
}

func NewEnrichedException(n *serialization.ParseNode) (*EnrichedException, error) { return decode[EnrichedException](n) }

func (m *EnrichedException) Serialize(w *serialization.Writer) error {
	return enrichedExceptionFields.Encode(w, m, m.AdditionalData)
}

func (m *EnrichedException) Deserialize(n *serialization.ParseNode) error {
	return enrichedExceptionFields.Decode(n, m, &m.AdditionalData)
}

func (m *EnrichedException) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *EnrichedException) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type ExceptionTypeStats struct {
	ExceptionType  *string
	Count          *int64
	Percentage     *float64
	Status         *ExceptionStatus
	AdditionalData serialization.AdditionalData
}

var exceptionTypeStatsFields = serialization.NewFields(
	serialization.String("exception_type", func(m *ExceptionTypeStats) **string { return &m.ExceptionType }),
	serialization.Int64("count", func(m *ExceptionTypeStats) **int64 { return &m.Count }),
	serialization.Float64("percentage", func(m *ExceptionTypeStats) **float64 { return &m.Percentage }),
	serialization.Enum("status", func(m *ExceptionTypeStats) **ExceptionStatus { return &m.Status }),
)

func NewExceptionTypeStats(n *serialization.ParseNode) (*ExceptionTypeStats, error) { return decode[ExceptionTypeStats](n) }

func (m *ExceptionTypeStats) Serialize(w *serialization.Writer) error {
	return exceptionTypeStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *ExceptionTypeStats) Deserialize(n *serialization.ParseNode) error {
	return exceptionTypeStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *ExceptionTypeStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ExceptionTypeStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type ExceptionServiceStats struct {
	ServiceName    *string
	Count          *int64
	RatePerMinute  *float64
	AdditionalData serialization.AdditionalData
}

var exceptionServiceStatsFields = serialization.NewFields(
	serialization.String("service_name", func(m *ExceptionServiceStats) **string { return &m.ServiceName }),
	serialization.Int64("count", func(m *ExceptionServiceStats) **int64 { return &m.Count }),
	serialization.Float64("rate_per_minute", func(m *ExceptionServiceStats) **float64 { return &m.RatePerMinute }),
)

func NewExceptionServiceStats(n *serialization.ParseNode) (*ExceptionServiceStats, error) { return decode[ExceptionServiceStats](n) }

func (m *ExceptionServiceStats) Serialize(w *serialization.Writer) error {
	return exceptionServiceStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *ExceptionServiceStats) Deserialize(n *serialization.ParseNode) error {
	return exceptionServiceStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *ExceptionServiceStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ExceptionServiceStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// ExceptionStats aggregates exceptions over a time range.
type ExceptionStats struct {
	TotalCount     *int64
	UniqueTypes    *int32
	ByType         []*ExceptionTypeStats
	ByService      []*ExceptionServiceStats
	Trend          *ExceptionTrend
	AdditionalData serialization.AdditionalData
}

var exceptionStatsFields = serialization.NewFields(
	serialization.Int64("total_count", func(m *ExceptionStats) **int64 { return &m.TotalCount }),
	serialization.Int32("unique_types", func(m *ExceptionStats) **int32 { return &m.UniqueTypes }),
	serialization.ObjectList("by_type", func(m *ExceptionStats) *[]*ExceptionTypeStats { return &m.ByType }, NewExceptionTypeStats),
	serialization.ObjectList("by_service", func(m *ExceptionStats) *[]*ExceptionServiceStats { return &m.ByService }, NewExceptionServiceStats),
	serialization.Enum("trend", func(m *ExceptionStats) **ExceptionTrend { return &m.Trend }),
)

func NewExceptionStats(n *serialization.ParseNode) (*ExceptionStats, error) { return decode[ExceptionStats](n) }

func (m *ExceptionStats) Serialize(w *serialization.Writer) error {
	return exceptionStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *ExceptionStats) Deserialize(n *serialization.ParseNode) error {
	return exceptionStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *ExceptionStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ExceptionStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
