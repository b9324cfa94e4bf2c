package models

import (
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// ErrorEntity is a group of errors sharing one fingerprint.
type ErrorEntity struct {
	ErrorID          *string
	ErrorType        *string
	Message          *string
	Category         *ErrorCategory
	Fingerprint      *string
	FirstSeen        *time.Time
	LastSeen         *time.Time
	OccurrenceCount  *int64
	AffectedUsers    *int64
	AffectedServices []string
	Status           *ErrorStatus
	AssignedTo       *string
	IssueURL         *string
	SampleTraces     []string
	AdditionalData   serialization.AdditionalData
}

var errorEntityFields = serialization.NewFields(
	serialization.String("error_id", func(m *ErrorEntity) **string { return &m.ErrorID }),
	serialization.String("error.type", func(m *ErrorEntity) **string { return &m.ErrorType }),
	serialization.String("message", func(m *ErrorEntity) **string { return &m.Message }),
	serialization.Enum("category", func(m *ErrorEntity) **ErrorCategory { return &m.Category }),
	serialization.String("fingerprint", func(m *ErrorEntity) **string { return &m.Fingerprint }),
	serialization.Time("first_seen", func(m *ErrorEntity) **time.Time { return &m.FirstSeen }),
	serialization.Time("last_seen", func(m *ErrorEntity) **time.Time { return &m.LastSeen }),
	serialization.Int64("occurrence_count", func(m *ErrorEntity) **int64 { return &m.OccurrenceCount }),
	serialization.Int64("affected_users", func(m *ErrorEntity) **int64 { return &m.AffectedUsers }),
	serialization.StringList("affected_services", func(m *ErrorEntity) *[]string { return &m.AffectedServices }),
	serialization.Enum("status", func(m *ErrorEntity) **ErrorStatus { return &m.Status }),
	serialization.String("assigned_to", func(m *ErrorEntity) **string { return &m.AssignedTo }),
	serialization.String("issue_url", func(m *ErrorEntity) **string { return &m.IssueURL }),
	serialization.StringList("sample_traces", func(m *ErrorEntity) *[]string { return &m.SampleTraces }),
)

func NewErrorEntity(n *serialization.ParseNode) (*ErrorEntity, error) { return decode[ErrorEntity](n) }

func (m *ErrorEntity) Serialize(w *serialization.Writer) error {
	return errorEntityFields.Encode(w, m, m.AdditionalData)
}

func (m *ErrorEntity) Deserialize(n *serialization.ParseNode) error {
	return errorEntityFields.Decode(n, m, &m.AdditionalData)
}

func (m *ErrorEntity) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ErrorEntity) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// ErrorUpdate carries the triage fields an error PATCH may change.
type ErrorUpdate struct {
	Status         *ErrorStatus
	AssignedTo     *string
	IssueURL       *string
	AdditionalData serialization.AdditionalData
}

var errorUpdateFields = serialization.NewFields(
	serialization.Enum("status", func(m *ErrorUpdate) **ErrorStatus { return &m.Status }),
	serialization.String("assigned_to", func(m *ErrorUpdate) **string { return &m.AssignedTo }),
	serialization.String("issue_url", func(m *ErrorUpdate) **string { return &m.IssueURL }),
)

func NewErrorUpdate(n *serialization.ParseNode) (*ErrorUpdate, error) { return decode[ErrorUpdate](n) }

func (m *ErrorUpdate) Serialize(w *serialization.Writer) error {
	return errorUpdateFields.Encode(w, m, m.AdditionalData)
}

func (m *ErrorUpdate) Deserialize(n *serialization.ParseNode) error {
	return errorUpdateFields.Decode(n, m, &m.AdditionalData)
}

func (m *ErrorUpdate) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ErrorUpdate) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type ErrorCategoryStats struct {
	Category       *ErrorCategory
	Count          *int64
	Percentage     *float64
	AdditionalData serialization.AdditionalData
}

var errorCategoryStatsFields = serialization.NewFields(
	serialization.Enum("category", func(m *ErrorCategoryStats) **ErrorCategory { return &m.Category }),
	serialization.Int64("count", func(m *ErrorCategoryStats) **int64 { return &m.Count }),
	serialization.Float64("percentage", func(m *ErrorCategoryStats) **float64 { return &m.Percentage }),
)

func NewErrorCategoryStats(n *serialization.ParseNode) (*ErrorCategoryStats, error) { return decode[ErrorCategoryStats](n) }

func (m *ErrorCategoryStats) Serialize(w *serialization.Writer) error {
	return errorCategoryStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *ErrorCategoryStats) Deserialize(n *serialization.ParseNode) error {
	return errorCategoryStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *ErrorCategoryStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ErrorCategoryStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type ErrorServiceStats struct {
	ServiceName    *string
	Count          *int64
	ErrorRate      *float64
	TopErrorType   *string
	AdditionalData serialization.AdditionalData
}

var errorServiceStatsFields = serialization.NewFields(
	serialization.String("service_name", func(m *ErrorServiceStats) **string { return &m.ServiceName }),
	serialization.Int64("count", func(m *ErrorServiceStats) **int64 { return &m.Count }),
	serialization.Float64("error_rate", func(m *ErrorServiceStats) **float64 { return &m.ErrorRate }),
	serialization.String("top_error_type", func(m *ErrorServiceStats) **string { return &m.TopErrorType }),
)

func NewErrorServiceStats(n *serialization.ParseNode) (*ErrorServiceStats, error) { return decode[ErrorServiceStats](n) }

func (m *ErrorServiceStats) Serialize(w *serialization.Writer) error {
	return errorServiceStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *ErrorServiceStats) Deserialize(n *serialization.ParseNode) error {
	return errorServiceStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *ErrorServiceStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ErrorServiceStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type ErrorTypeStats struct {
	ErrorType      *string
	Count          *int64
	Percentage     *float64
	AffectedUsers  *int64
	Status         *ErrorStatus
	AdditionalData serialization.AdditionalData
}

var errorTypeStatsFields = serialization.NewFields(
	serialization.String("error_type", func(m *ErrorTypeStats) **string { return &m.ErrorType }),
	serialization.Int64("count", func(m *ErrorTypeStats) **int64 { return &m.Count }),
	serialization.Float64("percentage", func(m *ErrorTypeStats) **float64 { return &m.Percentage }),
	serialization.Int64("affected_users", func(m *ErrorTypeStats) **int64 { return &m.AffectedUsers }),
	serialization.Enum("status", func(m *ErrorTypeStats) **ErrorStatus { return &m.Status }),
)

func NewErrorTypeStats(n *serialization.ParseNode) (*ErrorTypeStats, error) { return decode[ErrorTypeStats](n) }

func (m *ErrorTypeStats) Serialize(w *serialization.Writer) error {
	return errorTypeStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *ErrorTypeStats) Deserialize(n *serialization.ParseNode) error {
	return errorTypeStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *ErrorTypeStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ErrorTypeStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// ErrorStats aggregates errors over a time range.
type ErrorStats struct {
	TotalCount     *int64
	UniqueTypes    *int64
	ErrorRate      *float64
	ByCategory     []*ErrorCategoryStats
	ByService      []*ErrorServiceStats
	TopErrors      []*ErrorTypeStats
	Trend          *ErrorTrend
	AdditionalData serialization.AdditionalData
}

var errorStatsFields = serialization.NewFields(
	serialization.Int64("total_count", func(m *ErrorStats) **int64 { return &m.TotalCount }),
	serialization.Int64("unique_types", func(m *ErrorStats) **int64 { return &m.UniqueTypes }),
	serialization.Float64("error_rate", func(m *ErrorStats) **float64 { return &m.ErrorRate }),
	serialization.ObjectList("by_category", func(m *ErrorStats) *[]*ErrorCategoryStats { return &m.ByCategory }, NewErrorCategoryStats),
	serialization.ObjectList("by_service", func(m *ErrorStats) *[]*ErrorServiceStats { return &m.ByService }, NewErrorServiceStats),
	serialization.ObjectList("top_errors", func(m *ErrorStats) *[]*ErrorTypeStats { return &m.TopErrors }, NewErrorTypeStats),
	serialization.Enum("trend", func(m *ErrorStats) **ErrorTrend { return &m.Trend }),
)

func NewErrorStats(n *serialization.ParseNode) (*ErrorStats, error) { return decode[ErrorStats](n) }

func (m *ErrorStats) Serialize(w *serialization.Writer) error {
	return errorStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *ErrorStats) Deserialize(n *serialization.ParseNode) error {
	return errorStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *ErrorStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ErrorStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type CorrelatedError struct {
	ErrorID              *string
	ErrorType            *string
	CorrelationStrength  *float64
	TemporalRelationship *string
	AdditionalData       serialization.AdditionalData
}

var correlatedErrorFields = serialization.NewFields(
	serialization.String("error_id", func(m *CorrelatedError) **string { return &m.ErrorID }),
	serialization.String("error_type", func(m *CorrelatedError) **string { return &m.ErrorType }),
	serialization.Float64("correlation_strength", func(m *CorrelatedError) **float64 { return &m.CorrelationStrength }),
	serialization.String("temporal_relationship", func(m *CorrelatedError) **string { return &m.TemporalRelationship }),
)

func NewCorrelatedError(n *serialization.ParseNode) (*CorrelatedError, error) { return decode[CorrelatedError](n) }

func (m *CorrelatedError) Serialize(w *serialization.Writer) error {
	return correlatedErrorFields.Encode(w, m, m.AdditionalData)
}

func (m *CorrelatedError) Deserialize(n *serialization.ParseNode) error {
	return correlatedErrorFields.Decode(n, m, &m.AdditionalData)
}

func (m *CorrelatedError) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *CorrelatedError) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// ErrorCorrelation links an error to errors that tend to occur with it.
type ErrorCorrelation struct {
	ErrorID          *string
	CorrelatedErrors []*CorrelatedError
	RootCause        *string
	CommonAttributes []*Attribute
	AdditionalData   serialization.AdditionalData
}

var errorCorrelationFields = serialization.NewFields(
	serialization.String("error_id", func(m *ErrorCorrelation) **string { return &m.ErrorID }),
	serialization.ObjectList("correlated_errors", func(m *ErrorCorrelation) *[]*CorrelatedError { return &m.CorrelatedErrors }, NewCorrelatedError),
	serialization.String("root_cause", func(m *ErrorCorrelation) **string { return &m.RootCause }),
	serialization.ObjectList("common_attributes", func(m *ErrorCorrelation) *[]*Attribute { return &m.CommonAttributes }, NewAttribute),
)

func NewErrorCorrelation(n *serialization.ParseNode) (*ErrorCorrelation, error) { return decode[ErrorCorrelation](n) }

func (m *ErrorCorrelation) Serialize(w *serialization.Writer) error {
	return errorCorrelationFields.Encode(w, m, m.AdditionalData)
}

func (m *ErrorCorrelation) Deserialize(n *serialization.ParseNode) error {
	return errorCorrelationFields.Decode(n, m, &m.AdditionalData)
}

func (m *ErrorCorrelation) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *ErrorCorrelation) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
