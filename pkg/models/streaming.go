package models

import (
	"encoding/json"
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// StreamEvent is the JSON payload of one server-sent event. Data holds the
// span, log, metric, exception or deployment record named by Type; heartbeats
// carry no data.
type StreamEvent struct {
	Type           *string
	Data           json.RawMessage
	Timestamp      *time.Time
	AdditionalData serialization.AdditionalData
}

var streamEventFields = serialization.NewFields(
	serialization.String("type", func(m *StreamEvent) **string { return &m.Type }),
	serialization.RawJSON("data", func(m *StreamEvent) *json.RawMessage { return &m.Data }),
	serialization.Time("timestamp", func(m *StreamEvent) **time.Time { return &m.Timestamp }),
)

func NewStreamEvent(n *serialization.ParseNode) (*StreamEvent, error) { return decode[StreamEvent](n) }

func (m *StreamEvent) Serialize(w *serialization.Writer) error {
	return streamEventFields.Encode(w, m, m.AdditionalData)
}

func (m *StreamEvent) Deserialize(n *serialization.ParseNode) error {
	return streamEventFields.Decode(n, m, &m.AdditionalData)
}

func (m *StreamEvent) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *StreamEvent) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// StreamSubscription narrows the events delivered by the event stream.
type StreamSubscription struct {
	EventTypes     []string
	ServiceName    *string
	TraceID        *string
	MinSeverity    *SeverityNumber
	Filters        map[string]string
	SampleRate     *float64
	AdditionalData serialization.AdditionalData
}

var streamSubscriptionFields = serialization.NewFields(
	serialization.StringList("event_types", func(m *StreamSubscription) *[]string { return &m.EventTypes }),
	serialization.String("service_name", func(m *StreamSubscription) **string { return &m.ServiceName }),
	serialization.String("trace_id", func(m *StreamSubscription) **string { return &m.TraceID }),
	serialization.IntEnum("min_severity", func(m *StreamSubscription) **SeverityNumber { return &m.MinSeverity }),
	serialization.StringMap("filters", func(m *StreamSubscription) *map[string]string { return &m.Filters }),
	serialization.Float64("sample_rate", func(m *StreamSubscription) **float64 { return &m.SampleRate }),
)

func NewStreamSubscription(n *serialization.ParseNode) (*StreamSubscription, error) { return decode[StreamSubscription](n) }

func (m *StreamSubscription) Serialize(w *serialization.Writer) error {
	return streamSubscriptionFields.Encode(w, m, m.AdditionalData)
}

func (m *StreamSubscription) Deserialize(n *serialization.ParseNode) error {
	return streamSubscriptionFields.Decode(n, m, &m.AdditionalData)
}

func (m *StreamSubscription) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *StreamSubscription) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

var streamPayloads = map[string]serialization.Factory[serialization.Parsable]{
	"span":       serialization.Upcast(NewSpan),
	"trace":      serialization.Upcast(NewTrace),
	"exception":  serialization.Upcast(NewEnrichedException),
	"deployment": serialization.Upcast(NewDeploymentEvent),
	"metric":     serialization.Upcast(NewMetricTimeSeries),
}

// Payload decodes Data according to Type. It returns nil for heartbeats and
// for event types this package does not model.
func (m *StreamEvent) Payload() (serialization.Parsable, error) {
	if m.Type == nil || len(m.Data) == 0 {
		return nil, nil
	}
	factory, ok := streamPayloads[*m.Type]
	if !ok {
		return nil, nil
	}
	return serialization.Unmarshal(m.Data, factory)
}
