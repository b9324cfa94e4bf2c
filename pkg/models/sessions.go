package models

import (
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// SessionClientInfo describes the client of a session.
type SessionClientInfo struct {
	IP             *string
	UserAgent      *string
	DeviceType     *DeviceType
	OS             *string
	Browser        *string
	BrowserVersion *string
	AdditionalData serialization.AdditionalData
}

var sessionClientInfoFields = serialization.NewFields(
	serialization.String("ip", func(m *SessionClientInfo) **string { return &m.IP }),
	serialization.String("user_agent", func(m *SessionClientInfo) **string { return &m.UserAgent }),
	serialization.Enum("device_type", func(m *SessionClientInfo) **DeviceType { return &m.DeviceType }),
	serialization.String("os", func(m *SessionClientInfo) **string { return &m.OS }),
	serialization.String("browser", func(m *SessionClientInfo) **string { return &m.Browser }),
	serialization.String("browser_version", func(m *SessionClientInfo) **string { return &m.BrowserVersion }),
)

func NewSessionClientInfo(n *serialization.ParseNode) (*SessionClientInfo, error) { return decode[SessionClientInfo](n) }

func (m *SessionClientInfo) Serialize(w *serialization.Writer) error {
	return sessionClientInfoFields.Encode(w, m, m.AdditionalData)
}

func (m *SessionClientInfo) Deserialize(n *serialization.ParseNode) error {
	return sessionClientInfoFields.Decode(n, m, &m.AdditionalData)
}

func (m *SessionClientInfo) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SessionClientInfo) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type SessionGeoInfo struct {
	CountryCode    *string
	CountryName    *string
	Region         *string
	City           *string
	PostalCode     *string
	Timezone       *string
	AdditionalData serialization.AdditionalData
}

var sessionGeoInfoFields = serialization.NewFields(
	serialization.String("country_code", func(m *SessionGeoInfo) **string { return &m.CountryCode }),
	serialization.String("country_name", func(m *SessionGeoInfo) **string { return &m.CountryName }),
	serialization.String("region", func(m *SessionGeoInfo) **string { return &m.Region }),
	serialization.String("city", func(m *SessionGeoInfo) **string { return &m.City }),
	serialization.String("postal_code", func(m *SessionGeoInfo) **string { return &m.PostalCode }),
	serialization.String("timezone", func(m *SessionGeoInfo) **string { return &m.Timezone }),
)

func NewSessionGeoInfo(n *serialization.ParseNode) (*SessionGeoInfo, error) { return decode[SessionGeoInfo](n) }

func (m *SessionGeoInfo) Serialize(w *serialization.Writer) error {
	return sessionGeoInfoFields.Encode(w, m, m.AdditionalData)
}

func (m *SessionGeoInfo) Deserialize(n *serialization.ParseNode) error {
	return sessionGeoInfoFields.Decode(n, m, &m.AdditionalData)
}

func (m *SessionGeoInfo) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SessionGeoInfo) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// SessionGenAiUsage totals generative AI calls made within a session.
type SessionGenAiUsage struct {
	RequestCount      *int64
	TotalInputTokens  *int64
	TotalOutputTokens *int64
	ModelsUsed        []string
	ProvidersUsed     []string
	EstimatedCostUSD  *float64
	AdditionalData    serialization.AdditionalData
}

var sessionGenAiUsageFields = serialization.NewFields(
	serialization.Int64("request_count", func(m *SessionGenAiUsage) **int64 { return &m.RequestCount }),
	serialization.Int64("total_input_tokens", func(m *SessionGenAiUsage) **int64 { return &m.TotalInputTokens }),
	serialization.Int64("total_output_tokens", func(m *SessionGenAiUsage) **int64 { return &m.TotalOutputTokens }),
	serialization.StringList("models_used", func(m *SessionGenAiUsage) *[]string { return &m.ModelsUsed }),
	serialization.StringList("providers_used", func(m *SessionGenAiUsage) *[]string { return &m.ProvidersUsed }),
	serialization.Float64("estimated_cost_usd", func(m *SessionGenAiUsage) **float64 { return &m.EstimatedCostUSD }),
)

func NewSessionGenAiUsage(n *serialization.ParseNode) (*SessionGenAiUsage, error) { return decode[SessionGenAiUsage](n) }

func (m *SessionGenAiUsage) Serialize(w *serialization.Writer) error {
	return sessionGenAiUsageFields.Encode(w, m, m.AdditionalData)
}

func (m *SessionGenAiUsage) Deserialize(n *serialization.ParseNode) error {
	return sessionGenAiUsageFields.Decode(n, m, &m.AdditionalData)
}

func (m *SessionGenAiUsage) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SessionGenAiUsage) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// SessionEntity is one user session.
type SessionEntity struct {
	SessionID      *string
	UserID         *string
	StartTime      *time.Time
	EndTime        *time.Time
	DurationMs     *float64
	TraceCount     *int64
	SpanCount      *int64
	ErrorCount     *int64
	State          *SessionState
	Client         *SessionClientInfo
	Geo            *SessionGeoInfo
	GenAIUsage     *SessionGenAiUsage
	AdditionalData serialization.AdditionalData
}

var sessionEntityFields = serialization.NewFields(
	serialization.String("session.id", func(m *SessionEntity) **string { return &m.SessionID }),
	serialization.String("user.id", func(m *SessionEntity) **string { return &m.UserID }),
	serialization.Time("start_time", func(m *SessionEntity) **time.Time { return &m.StartTime }),
	serialization.Time("end_time", func(m *SessionEntity) **time.Time { return &m.EndTime }),
	serialization.Float64("duration_ms", func(m *SessionEntity) **float64 { return &m.DurationMs }),
	serialization.Int64("trace_count", func(m *SessionEntity) **int64 { return &m.TraceCount }),
	serialization.Int64("span_count", func(m *SessionEntity) **int64 { return &m.SpanCount }),
	serialization.Int64("error_count", func(m *SessionEntity) **int64 { return &m.ErrorCount }),
	serialization.Enum("state", func(m *SessionEntity) **SessionState { return &m.State }),
	serialization.Object("client", func(m *SessionEntity) **SessionClientInfo { return &m.Client }, NewSessionClientInfo),
	serialization.Object("geo", func(m *SessionEntity) **SessionGeoInfo { return &m.Geo }, NewSessionGeoInfo),
	serialization.Object("genai_usage", func(m *SessionEntity) **SessionGenAiUsage { return &m.GenAIUsage }, NewSessionGenAiUsage),
)

func NewSessionEntity(n *serialization.ParseNode) (*SessionEntity, error) { return decode[SessionEntity](n) }

func (m *SessionEntity) Serialize(w *serialization.Writer) error {
	return sessionEntityFields.Encode(w, m, m.AdditionalData)
}

func (m *SessionEntity) Deserialize(n *serialization.ParseNode) error {
	return sessionEntityFields.Decode(n, m, &m.AdditionalData)
}

func (m *SessionEntity) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SessionEntity) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type SessionCountryStats struct {
	CountryCode    *string
	CountryName    *string
	Count          *int64
	Percentage     *float64
	AdditionalData serialization.AdditionalData
}

var sessionCountryStatsFields = serialization.NewFields(
	serialization.String("country_code", func(m *SessionCountryStats) **string { return &m.CountryCode }),
	serialization.String("country_name", func(m *SessionCountryStats) **string { return &m.CountryName }),
	serialization.Int64("count", func(m *SessionCountryStats) **int64 { return &m.Count }),
	serialization.Float64("percentage", func(m *SessionCountryStats) **float64 { return &m.Percentage }),
)

func NewSessionCountryStats(n *serialization.ParseNode) (*SessionCountryStats, error) { return decode[SessionCountryStats](n) }

func (m *SessionCountryStats) Serialize(w *serialization.Writer) error {
	return sessionCountryStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *SessionCountryStats) Deserialize(n *serialization.ParseNode) error {
	return sessionCountryStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *SessionCountryStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SessionCountryStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type SessionDeviceStats struct {
	DeviceType     *DeviceType
	Count          *int64
	Percentage     *float64
	AdditionalData serialization.AdditionalData
}

var sessionDeviceStatsFields = serialization.NewFields(
	serialization.Enum("device_type", func(m *SessionDeviceStats) **DeviceType { return &m.DeviceType }),
	serialization.Int64("count", func(m *SessionDeviceStats) **int64 { return &m.Count }),
	serialization.Float64("percentage", func(m *SessionDeviceStats) **float64 { return &m.Percentage }),
)

func NewSessionDeviceStats(n *serialization.ParseNode) (*SessionDeviceStats, error) { return decode[SessionDeviceStats](n) }

func (m *SessionDeviceStats) Serialize(w *serialization.Writer) error {
	return sessionDeviceStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *SessionDeviceStats) Deserialize(n *serialization.ParseNode) error {
	return sessionDeviceStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *SessionDeviceStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SessionDeviceStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// SessionStats aggregates sessions over a time range.
type SessionStats struct {
	ActiveSessions     *int64
	TotalSessions      *int64
	UniqueUsers        *int64
	AvgDurationMs      *float64
	SessionsWithErrors *int64
	SessionsWithGenAI  *int64
	BounceRate         *float64
	ByDeviceType       []*SessionDeviceStats
	ByCountry          []*SessionCountryStats
	AdditionalData     serialization.AdditionalData
}

var sessionStatsFields = serialization.NewFields(
	serialization.Int64("active_sessions", func(m *SessionStats) **int64 { return &m.ActiveSessions }),
	serialization.Int64("total_sessions", func(m *SessionStats) **int64 { return &m.TotalSessions }),
	serialization.Int64("unique_users", func(m *SessionStats) **int64 { return &m.UniqueUsers }),
	serialization.Float64("avg_duration_ms", func(m *SessionStats) **float64 { return &m.AvgDurationMs }),
	serialization.Int64("sessions_with_errors", func(m *SessionStats) **int64 { return &m.SessionsWithErrors }),
	serialization.Int64("sessions_with_genai", func(m *SessionStats) **int64 { return &m.SessionsWithGenAI }),
	serialization.Float64("bounce_rate", func(m *SessionStats) **float64 { return &m.BounceRate }),
	serialization.ObjectList("by_device_type", func(m *SessionStats) *[]*SessionDeviceStats { return &m.ByDeviceType }, NewSessionDeviceStats),
	serialization.ObjectList("by_country", func(m *SessionStats) *[]*SessionCountryStats { return &m.ByCountry }, NewSessionCountryStats),
)

func NewSessionStats(n *serialization.ParseNode) (*SessionStats, error) { return decode[SessionStats](n) }

func (m *SessionStats) Serialize(w *serialization.Writer) error {
	return sessionStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *SessionStats) Deserialize(n *serialization.ParseNode) error {
	return sessionStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *SessionStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SessionStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
