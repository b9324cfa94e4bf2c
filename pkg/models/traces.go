package models

import (
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// SpanStatus is the final status of a span.
type SpanStatus struct {
	Code           *SpanStatusCode
	Message        *string
	AdditionalData serialization.AdditionalData
}

var spanStatusFields = serialization.NewFields(
	serialization.IntEnum("code", func(m *SpanStatus) **SpanStatusCode { return &m.Code }),
	serialization.String("message", func(m *SpanStatus) **string { return &m.Message }),
)

func NewSpanStatus(n *serialization.ParseNode) (*SpanStatus, error) { return decode[SpanStatus](n) }

func (m *SpanStatus) Serialize(w *serialization.Writer) error {
	return spanStatusFields.Encode(w, m, m.AdditionalData)
}

func (m *SpanStatus) Deserialize(n *serialization.ParseNode) error {
	return spanStatusFields.Decode(n, m, &m.AdditionalData)
}

func (m *SpanStatus) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SpanStatus) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// SpanEvent is a timestamped annotation on a span.
type SpanEvent struct {
	Name                   *string
	TimeUnixNano           *int64
	Attributes             []*Attribute
	DroppedAttributesCount *int64
	AdditionalData         serialization.AdditionalData
}

var spanEventFields = serialization.NewFields(
	serialization.String("name", func(m *SpanEvent) **string { return &m.Name }),
	serialization.Int64("time_unix_nano", func(m *SpanEvent) **int64 { return &m.TimeUnixNano }),
	serialization.ObjectList("attributes", func(m *SpanEvent) *[]*Attribute { return &m.Attributes }, NewAttribute),
	serialization.Int64("dropped_attributes_count", func(m *SpanEvent) **int64 { return &m.DroppedAttributesCount }),
)

func NewSpanEvent(n *serialization.ParseNode) (*SpanEvent, error) { return decode[SpanEvent](n) }

func (m *SpanEvent) Serialize(w *serialization.Writer) error {
	return spanEventFields.Encode(w, m, m.AdditionalData)
}

func (m *SpanEvent) Deserialize(n *serialization.ParseNode) error {
	return spanEventFields.Decode(n, m, &m.AdditionalData)
}

func (m *SpanEvent) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SpanEvent) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// SpanLink points from a span to a span in another trace.
type SpanLink struct {
	TraceID                *string
	SpanID                 *string
	TraceState             *string
	Attributes             []*Attribute
	DroppedAttributesCount *int64
	Flags                  *int32
	AdditionalData         serialization.AdditionalData
}

var spanLinkFields = serialization.NewFields(
	serialization.String("trace_id", func(m *SpanLink) **string { return &m.TraceID }),
	serialization.String("span_id", func(m *SpanLink) **string { return &m.SpanID }),
	serialization.String("trace_state", func(m *SpanLink) **string { return &m.TraceState }),
	serialization.ObjectList("attributes", func(m *SpanLink) *[]*Attribute { return &m.Attributes }, NewAttribute),
	serialization.Int64("dropped_attributes_count", func(m *SpanLink) **int64 { return &m.DroppedAttributesCount }),
	serialization.Int32("flags", func(m *SpanLink) **int32 { return &m.Flags }),
)

func NewSpanLink(n *serialization.ParseNode) (*SpanLink, error) { return decode[SpanLink](n) }

func (m *SpanLink) Serialize(w *serialization.Writer) error {
	return spanLinkFields.Encode(w, m, m.AdditionalData)
}

func (m *SpanLink) Deserialize(n *serialization.ParseNode) error {
	return spanLinkFields.Decode(n, m, &m.AdditionalData)
}

func (m *SpanLink) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *SpanLink) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// Span is one OpenTelemetry span.
type Span struct {
	SpanID                 *string
	TraceID                *string
	ParentSpanID           *string
	TraceState             *string
	Name                   *string
	Kind                   *SpanKind
	// Nanoseconds since the Unix epoch.
	StartTimeUnixNano      *int64
	EndTimeUnixNano        *int64
	Attributes             []*Attribute
	DroppedAttributesCount *int64
	Events                 []*SpanEvent
	DroppedEventsCount     *int64
	Links                  []*SpanLink
	DroppedLinksCount      *int64
	Status                 *SpanStatus
	Flags                  *int32
	Resource               *Resource
	InstrumentationScope   *InstrumentationScope
	AdditionalData         serialization.AdditionalData
}

var spanFields = serialization.NewFields(
	serialization.String("span_id", func(m *Span) **string { return &m.SpanID }),
	serialization.String("trace_id", func(m *Span) **string { return &m.TraceID }),
	serialization.String("parent_span_id", func(m *Span) **string { return &m.ParentSpanID }),
	serialization.String("trace_state", func(m *Span) **string { return &m.TraceState }),
	serialization.String("name", func(m *Span) **string { return &m.Name }),
	serialization.IntEnum("kind", func(m *Span) **SpanKind { return &m.Kind }),
	serialization.Int64("start_time_unix_nano", func(m *Span) **int64 { return &m.StartTimeUnixNano }),
	serialization.Int64("end_time_unix_nano", func(m *Span) **int64 { return &m.EndTimeUnixNano }),
	serialization.ObjectList("attributes", func(m *Span) *[]*Attribute { return &m.Attributes }, NewAttribute),
	serialization.Int64("dropped_attributes_count", func(m *Span) **int64 { return &m.DroppedAttributesCount }),
	serialization.ObjectList("events", func(m *Span) *[]*SpanEvent { return &m.Events }, NewSpanEvent),
	serialization.Int64("dropped_events_count", func(m *Span) **int64 { return &m.DroppedEventsCount }),
	serialization.ObjectList("links", func(m *Span) *[]*SpanLink { return &m.Links }, NewSpanLink),
	serialization.Int64("dropped_links_count", func(m *Span) **int64 { return &m.DroppedLinksCount }),
	serialization.Object("status", func(m *Span) **SpanStatus { return &m.Status }, NewSpanStatus),
	serialization.Int32("flags", func(m *Span) **int32 { return &m.Flags }),
	serialization.Object("resource", func(m *Span) **Resource { return &m.Resource }, NewResource),
	serialization.Object("instrumentation_scope", func(m *Span) **InstrumentationScope { return &m.InstrumentationScope }, NewInstrumentationScope),
)

func NewSpan(n *serialization.ParseNode) (*Span, error) { return decode[Span](n) }

func (m *Span) Serialize(w *serialization.Writer) error {
	return spanFields.Encode(w, m, m.AdditionalData)
}

func (m *Span) Deserialize(n *serialization.ParseNode) error {
	return spanFields.Decode(n, m, &m.AdditionalData)
}

func (m *Span) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *Span) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// Trace is a complete trace with its spans.
type Trace struct {
	TraceID        *string
	Spans          []*Span
	RootSpan       *Span
	SpanCount      *int64
	DurationNs     *int64
	StartTime      *time.Time
	EndTime        *time.Time
	Services       []string
	HasError       *bool
	AdditionalData serialization.AdditionalData
}

var traceFields = serialization.NewFields(
	serialization.String("trace_id", func(m *Trace) **string { return &m.TraceID }),
	serialization.ObjectList("spans", func(m *Trace) *[]*Span { return &m.Spans }, NewSpan),
	serialization.Object("root_span", func(m *Trace) **Span { return &m.RootSpan }, NewSpan),
	serialization.Int64("span_count", func(m *Trace) **int64 { return &m.SpanCount }),
	serialization.Int64("duration_ns", func(m *Trace) **int64 { return &m.DurationNs }),
	serialization.Time("start_time", func(m *Trace) **time.Time { return &m.StartTime }),
	serialization.Time("end_time", func(m *Trace) **time.Time { return &m.EndTime }),
	serialization.StringList("services", func(m *Trace) *[]string { return &m.Services }),
	serialization.Bool("has_error", func(m *Trace) **bool { return &m.HasError }),
)

func NewTrace(n *serialization.ParseNode) (*Trace, error) { return decode[Trace](n) }

func (m *Trace) Serialize(w *serialization.Writer) error {
	return traceFields.Encode(w, m, m.AdditionalData)
}

func (m *Trace) Deserialize(n *serialization.ParseNode) error {
	return traceFields.Decode(n, m, &m.AdditionalData)
}

func (m *Trace) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *Trace) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// TraceQuery is the body of an advanced trace search.
type TraceQuery struct {
	Query          *string
	ServiceName    *string
	OperationName  *string
	MinDurationMs  *int64
	MaxDurationMs  *int64
	Status         *SpanStatusCode
	StartTime      *time.Time
	EndTime        *time.Time
	Tags           map[string]string
	Limit          *int32
	Cursor         *string
	AdditionalData serialization.AdditionalData
}

var traceQueryFields = serialization.NewFields(
	serialization.String("query", func(m *TraceQuery) **string { return &m.Query }),
	serialization.String("service_name", func(m *TraceQuery) **string { return &m.ServiceName }),
	serialization.String("operation_name", func(m *TraceQuery) **string { return &m.OperationName }),
	serialization.Int64("min_duration_ms", func(m *TraceQuery) **int64 { return &m.MinDurationMs }),
	serialization.Int64("max_duration_ms", func(m *TraceQuery) **int64 { return &m.MaxDurationMs }),
	serialization.IntEnum("status", func(m *TraceQuery) **SpanStatusCode { return &m.Status }),
	serialization.Time("start_time", func(m *TraceQuery) **time.Time { return &m.StartTime }),
	serialization.Time("end_time", func(m *TraceQuery) **time.Time { return &m.EndTime }),
	serialization.StringMap("tags", func(m *TraceQuery) *map[string]string { return &m.Tags }),
	serialization.Int32("limit", func(m *TraceQuery) **int32 { return &m.Limit }),
	serialization.String("cursor", func(m *TraceQuery) **string { return &m.Cursor }),
)

func NewTraceQuery(n *serialization.ParseNode) (*TraceQuery, error) { return decode[TraceQuery](n) }

func (m *TraceQuery) Serialize(w *serialization.Writer) error {
	return traceQueryFields.Encode(w, m, m.AdditionalData)
}

func (m *TraceQuery) Deserialize(n *serialization.ParseNode) error {
	return traceQueryFields.Decode(n, m, &m.AdditionalData)
}

func (m *TraceQuery) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *TraceQuery) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
