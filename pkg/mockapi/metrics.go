package mockapi

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
)

// PutMetric registers a metric in the catalogue.
func (s *Store) PutMetric(m *models.MetricMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.metrics == nil {
		s.metrics = make(map[string]*models.MetricMetadata)
	}
	s.metrics[deref(m.Name)] = m
}

func (s *Store) GetMetric(name string) (*models.MetricMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.metrics[name]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

// ListMetrics returns metrics sorted by name. pattern matches as a
// substring; service keeps metrics reported by that service.
func (s *Store) ListMetrics(pattern, service string) []*models.MetricMetadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.MetricMetadata, 0, len(s.metrics))
	for name, m := range s.metrics {
		if pattern != "" && !strings.Contains(name, pattern) {
			continue
		}
		if service != "" && !slices.Contains(m.Services, service) {
			continue
		}
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b *models.MetricMetadata) int { return strings.Compare(deref(a.Name), deref(b.Name)) })
	return out
}

var bucketSteps = map[models.TimeBucket]time.Duration{
	models.TimeBucketOneMinute:      time.Minute,
	models.TimeBucketFiveMinutes:    5 * time.Minute,
	models.TimeBucketFifteenMinutes: 15 * time.Minute,
	models.TimeBucketOneHour:        time.Hour,
	models.TimeBucketOneDay:         24 * time.Hour,
	models.TimeBucketOneWeek:        7 * 24 * time.Hour,
}

// maxPoints bounds the series a single query may return.
const maxPoints = 1440

// QueryMetric synthesises one series per reporting service over the
// requested window. Values are a deterministic function of time so repeated
// queries agree.
func (s *Store) QueryMetric(q *models.MetricQueryRequest) (*models.MetricQueryResponse, error) {
	var invalid InvalidInput
	if q == nil || deref(q.MetricName) == "" {
		invalid = append(invalid, FieldError{Field: "metric_name", Code: "required", Message: "metric_name is required"})
	}
	if q != nil && q.Step != nil && !q.Step.IsKnown() {
		invalid = append(invalid, FieldError{Field: "step", Code: "enum", Message: "unknown time bucket", Value: string(*q.Step)})
	}
	if q != nil && q.Aggregation != nil && !q.Aggregation.IsKnown() {
		invalid = append(invalid, FieldError{Field: "aggregation", Code: "enum", Message: "unknown aggregation", Value: string(*q.Aggregation)})
	}
	if len(invalid) > 0 {
		return nil, invalid
	}

	meta, err := s.GetMetric(*q.MetricName)
	if err != nil {
		return nil, err
	}

	end := s.now().UTC().Truncate(time.Minute)
	if q.EndTime != nil {
		end = q.EndTime.UTC()
	}
	start := end.Add(-time.Hour)
	if q.StartTime != nil {
		start = q.StartTime.UTC()
	}
	if !end.After(start) {
		return nil, InvalidInput{{Field: "end_time", Code: "range", Message: "end_time must be after start_time"}}
	}

	step := 5 * time.Minute
	if q.Step != nil {
		if d, ok := bucketSteps[*q.Step]; ok {
			step = d
		}
	}
	if n := end.Sub(start) / step; n > maxPoints {
		step = end.Sub(start) / maxPoints
	}

	services := meta.Services
	if svc := q.Filters["service.name"]; svc != "" {
		services = slices.DeleteFunc(slices.Clone(services), func(s string) bool { return s != svc })
	}

	resp := &models.MetricQueryResponse{MetricName: meta.Name}
	for i, svc := range services {
		series := &models.MetricTimeSeries{Labels: map[string]string{"service.name": svc}}
		for t := start; !t.After(end); t = t.Add(step) {
			v := syntheticValue(t, i)
			series.Points = append(series.Points, &models.MetricDataPoint{Timestamp: ptr(t), Value: &v})
		}
		resp.Series = append(resp.Series, series)
	}
	return resp, nil
}

func syntheticValue(t time.Time, phase int) float64 {
	x := float64(t.Unix()/60) / 30
	return math.Round((50+25*math.Sin(x+float64(phase)))*100) / 100
}

func seedMetrics(s *Store) {
	s.PutMetric(&models.MetricMetadata{
		Name:        ptr("http.server.request.duration"),
		Description: ptr("Duration of HTTP server requests."),
		Unit:        ptr("ms"),
		Type:        ptr(models.MetricTypeHistogram),
		LabelKeys:   []string{"http.request.method", "http.route", "service.name"},
		Services:    []string{"api", "billing"},
	})
	s.PutMetric(&models.MetricMetadata{
		Name:      ptr("process.cpu.utilization"),
		Unit:      ptr("1"),
		Type:      ptr(models.MetricTypeGauge),
		LabelKeys: []string{"service.name"},
		Services:  []string{"api", "billing", "worker"},
	})
	s.PutMetric(&models.MetricMetadata{
		Name:      ptr("queue.messages.processed"),
		Unit:      ptr("{message}"),
		Type:      ptr(models.MetricTypeSum),
		LabelKeys: []string{"messaging.destination.name", "service.name"},
		Services:  []string{"worker"},
	})
}
