package models

import (
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// MetricMetadata describes one metric known to qyl.
type MetricMetadata struct {
	Name           *string
	Description    *string
	Unit           *string
	Type           *MetricType
	LabelKeys      []string
	Services       []string
	AdditionalData serialization.AdditionalData
}

var metricMetadataFields = serialization.NewFields(
	serialization.String("name", func(m *MetricMetadata) **string { return &m.Name }),
	serialization.String("description", func(m *MetricMetadata) **string { return &m.Description }),
	serialization.String("unit", func(m *MetricMetadata) **string { return &m.Unit }),
	serialization.Enum("type", func(m *MetricMetadata) **MetricType { return &m.Type }),
	serialization.StringList("label_keys", func(m *MetricMetadata) *[]string { return &m.LabelKeys }),
	serialization.StringList("services", func(m *MetricMetadata) *[]string { return &m.Services }),
)

func NewMetricMetadata(n *serialization.ParseNode) (*MetricMetadata, error) { return decode[MetricMetadata](n) }

func (m *MetricMetadata) Serialize(w *serialization.Writer) error {
	return metricMetadataFields.Encode(w, m, m.AdditionalData)
}

func (m *MetricMetadata) Deserialize(n *serialization.ParseNode) error {
	return metricMetadataFields.Decode(n, m, &m.AdditionalData)
}

func (m *MetricMetadata) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *MetricMetadata) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// MetricQueryRequest is the body of a metric query.
type MetricQueryRequest struct {
	MetricName     *string
	Filters        map[string]string
	StartTime      *time.Time
	EndTime        *time.Time
	Step           *TimeBucket
	Aggregation    *AggregationFunction
	GroupBy        []string
	AdditionalData serialization.AdditionalData
}

var metricQueryRequestFields = serialization.NewFields(
	serialization.String("metric_name", func(m *MetricQueryRequest) **string { return &m.MetricName }),
	serialization.StringMap("filters", func(m *MetricQueryRequest) *map[string]string { return &m.Filters }),
	serialization.Time("start_time", func(m *MetricQueryRequest) **time.Time { return &m.StartTime }),
	serialization.Time("end_time", func(m *MetricQueryRequest) **time.Time { return &m.EndTime }),
	serialization.Enum("step", func(m *MetricQueryRequest) **TimeBucket { return &m.Step }),
	serialization.Enum("aggregation", func(m *MetricQueryRequest) **AggregationFunction { return &m.Aggregation }),
	serialization.StringList("group_by", func(m *MetricQueryRequest) *[]string { return &m.GroupBy }),
)

func NewMetricQueryRequest(n *serialization.ParseNode) (*MetricQueryRequest, error) { return decode[MetricQueryRequest](n) }

func (m *MetricQueryRequest) Serialize(w *serialization.Writer) error {
	return metricQueryRequestFields.Encode(w, m, m.AdditionalData)
}

func (m *MetricQueryRequest) Deserialize(n *serialization.ParseNode) error {
	return metricQueryRequestFields.Decode(n, m, &m.AdditionalData)
}

func (m *MetricQueryRequest) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *MetricQueryRequest) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type MetricDataPoint struct {
	Timestamp      *time.Time
	Value          *float64
	AdditionalData serialization.AdditionalData
}

var metricDataPointFields = serialization.NewFields(
	serialization.Time("timestamp", func(m *MetricDataPoint) **time.Time { return &m.Timestamp }),
	serialization.Float64("value", func(m *MetricDataPoint) **float64 { return &m.Value }),
)

func NewMetricDataPoint(n *serialization.ParseNode) (*MetricDataPoint, error) { return decode[MetricDataPoint](n) }

func (m *MetricDataPoint) Serialize(w *serialization.Writer) error {
	return metricDataPointFields.Encode(w, m, m.AdditionalData)
}

func (m *MetricDataPoint) Deserialize(n *serialization.ParseNode) error {
	return metricDataPointFields.Decode(n, m, &m.AdditionalData)
}

func (m *MetricDataPoint) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *MetricDataPoint) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// MetricTimeSeries is one labelled series of a query result.
type MetricTimeSeries struct {
	Labels         map[string]string
	Points         []*MetricDataPoint
	AdditionalData serialization.AdditionalData
}

var metricTimeSeriesFields = serialization.NewFields(
	serialization.StringMap("labels", func(m *MetricTimeSeries) *map[string]string { return &m.Labels }),
	serialization.ObjectList("points", func(m *MetricTimeSeries) *[]*MetricDataPoint { return &m.Points }, NewMetricDataPoint),
)

func NewMetricTimeSeries(n *serialization.ParseNode) (*MetricTimeSeries, error) { return decode[MetricTimeSeries](n) }

func (m *MetricTimeSeries) Serialize(w *serialization.Writer) error {
	return metricTimeSeriesFields.Encode(w, m, m.AdditionalData)
}

func (m *MetricTimeSeries) Deserialize(n *serialization.ParseNode) error {
	return metricTimeSeriesFields.Decode(n, m, &m.AdditionalData)
}

func (m *MetricTimeSeries) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *MetricTimeSeries) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

type MetricQueryResponse struct {
	MetricName     *string
	Series         []*MetricTimeSeries
	AdditionalData serialization.AdditionalData
}

var metricQueryResponseFields = serialization.NewFields(
	serialization.String("metric_name", func(m *MetricQueryResponse) **string { return &m.MetricName }),
	serialization.ObjectList("series", func(m *MetricQueryResponse) *[]*MetricTimeSeries { return &m.Series }, NewMetricTimeSeries),
)

func NewMetricQueryResponse(n *serialization.ParseNode) (*MetricQueryResponse, error) { return decode[MetricQueryResponse](n) }

func (m *MetricQueryResponse) Serialize(w *serialization.Writer) error {
	return metricQueryResponseFields.Encode(w, m, m.AdditionalData)
}

func (m *MetricQueryResponse) Deserialize(n *serialization.ParseNode) error {
	return metricQueryResponseFields.Decode(n, m, &m.AdditionalData)
}

func (m *MetricQueryResponse) GetAdditionalData() serialization.AdditionalData { return m.AdditionalData }

func (m *MetricQueryResponse) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }
