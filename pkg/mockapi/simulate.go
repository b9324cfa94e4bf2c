package mockapi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ANcpLua/qyl/pkg/models"
)

// Simulate publishes a span and a metric sample for each known service
// every interval until ctx is done. Spans are also recorded as single-span
// traces so the REST listings and the streams agree.
func Simulate(ctx context.Context, s *Store, b *Broker, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var tick int
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			tick++
			for i, svc := range s.ListServices("") {
				name := deref(svc.Name)
				if err := publishSpan(s, b, name, now, tick+i); err != nil {
					logger.Warn("simulating span", "service", name, "error", err)
				}
				series := &models.MetricTimeSeries{
					Labels: map[string]string{"service.name": name, "metric.name": "process.cpu.utilization"},
					Points: []*models.MetricDataPoint{{Timestamp: ptr(now.UTC()), Value: ptr(syntheticValue(now, i))}},
				}
				if err := b.PublishPayload("metric", name, series, now); err != nil {
					logger.Warn("simulating metric", "service", name, "error", err)
				}
			}
		}
	}
}

func publishSpan(s *Store, b *Broker, service string, now time.Time, seq int) error {
	id := uuid.New()
	traceID := fmt.Sprintf("%x", id[:])
	took := time.Duration(20+seq%7*15) * time.Millisecond
	failed := seq%11 == 0

	t := seedTrace(traceID, service, "simulated", now.Add(-took), took, failed)
	t.Spans = t.Spans[:1]
	t.SpanCount = ptr(int64(1))
	if failed {
		t.RootSpan.Status = &models.SpanStatus{Code: ptr(models.SpanStatusCodeError), Message: ptr("simulated failure")}
	}
	s.PutTrace(t)
	return b.PublishPayload("span", service, t.RootSpan, now)
}
