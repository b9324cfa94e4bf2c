package models

import (
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// PipelineRunEvent is one CI/CD pipeline event.
type PipelineRunEvent struct {
	EventName      *CicdEventName
	PipelineName   *string
	PipelineRunID  *string
	Status         *CicdPipelineStatus
	System         *CicdSystem
	TriggerType    *CicdTriggerType
	DurationS      *float64
	Timestamp      *time.Time
	RefName        *string
	RefRevision    *string
	AdditionalData serialization.AdditionalData
}

var pipelineRunEventFields = serialization.NewFields(
	serialization.Enum("event.name", func(m *PipelineRunEvent) **CicdEventName { return &m.EventName }),
	serialization.String("cicd.pipeline.name", func(m *PipelineRunEvent) **string { return &m.PipelineName }),
	serialization.String("cicd.pipeline.run.id", func(m *PipelineRunEvent) **string { return &m.PipelineRunID }),
	serialization.Enum("status", func(m *PipelineRunEvent) **CicdPipelineStatus { return &m.Status }),
	serialization.Enum("system", func(m *PipelineRunEvent) **CicdSystem { return &m.System }),
	serialization.Enum("trigger_type", func(m *PipelineRunEvent) **CicdTriggerType { return &m.TriggerType }),
	serialization.Float64("duration_s", func(m *PipelineRunEvent) **float64 { return &m.DurationS }),
	serialization.Time("timestamp", func(m *PipelineRunEvent) **time.Time { return &m.Timestamp }),
	serialization.String("vcs.repository.ref.name", func(m *PipelineRunEvent) **string { return &m.RefName }),
	serialization.String("vcs.repository.ref.revision", func(m *PipelineRunEvent) **string { return &m.RefRevision }),
)

func NewPipelineRunEvent(n *serialization.ParseNode) (*PipelineRunEvent, error) { return decode[PipelineRunEvent](n) }

func (m *PipelineRunEvent) Serialize(w *serialization.Writer) error {
	return pipelineRunEventFields.Encode(w, m, m.AdditionalData)
}

func (m *PipelineRunEvent) Deserialize(n *serialization.ParseNode) error {
	return pipelineRunEventFields.Decode(n, m, &m.AdditionalData)
}

func (m *PipelineRunEvent) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *PipelineRunEvent) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type PipelineStatusStats struct {
	Status         *CicdPipelineStatus
	Count          *int64
	Percentage     *float64
	AdditionalData serialization.AdditionalData
}

var pipelineStatusStatsFields = serialization.NewFields(
	serialization.Enum("status", func(m *PipelineStatusStats) **CicdPipelineStatus { return &m.Status }),
	serialization.Int64("count", func(m *PipelineStatusStats) **int64 { return &m.Count }),
	serialization.Float64("percentage", func(m *PipelineStatusStats) **float64 { return &m.Percentage }),
)

func NewPipelineStatusStats(n *serialization.ParseNode) (*PipelineStatusStats, error) { return decode[PipelineStatusStats](n) }

func (m *PipelineStatusStats) Serialize(w *serialization.Writer) error {
	return pipelineStatusStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *PipelineStatusStats) Deserialize(n *serialization.ParseNode) error {
	return pipelineStatusStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *PipelineStatusStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *PipelineStatusStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// PipelineStats aggregates pipeline runs over a time range.
type PipelineStats struct {
	TotalRuns          *int64
	SuccessRate        *float64
	AvgDurationSeconds *float64
	P95DurationSeconds *float64
	ByStatus           []*PipelineStatusStats
	AdditionalData     serialization.AdditionalData
}

var pipelineStatsFields = serialization.NewFields(
	serialization.Int64("total_runs", func(m *PipelineStats) **int64 { return &m.TotalRuns }),
	serialization.Float64("success_rate", func(m *PipelineStats) **float64 { return &m.SuccessRate }),
	serialization.Float64("avg_duration_seconds", func(m *PipelineStats) **float64 { return &m.AvgDurationSeconds }),
	serialization.Float64("p95_duration_seconds", func(m *PipelineStats) **float64 { return &m.P95DurationSeconds }),
	serialization.ObjectList("by_status", func(m *PipelineStats) *[]*PipelineStatusStats { return &m.ByStatus }, NewPipelineStatusStats),
)

func NewPipelineStats(n *serialization.ParseNode) (*PipelineStats, error) { return decode[PipelineStats](n) }

func (m *PipelineStats) Serialize(w *serialization.Writer) error {
	return pipelineStatsFields.Encode(w, m, m.AdditionalData)
}

func (m *PipelineStats) Deserialize(n *serialization.ParseNode) error {
	return pipelineStatsFields.Decode(n, m, &m.AdditionalData)
}

func (m *PipelineStats) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *PipelineStats) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
