package mockapi

import (
	"fmt"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
)

func ptr[T any](v T) *T { return &v }

// Seed fills s with a small, deterministic catalogue anchored at now: three
// services, their recent deployments, a handful of error groups and one
// trace per service.
func Seed(s *Store, now time.Time) {
	now = now.UTC().Truncate(time.Second)

	services := []struct {
		name, namespace, version string
		instances                int64
		ops                      []string
	}{
		{"api", "shop", "1.4.2", 3, []string{"GET /v1/cart", "POST /v1/checkout"}},
		{"billing", "shop", "2.0.0", 2, []string{"charge", "refund"}},
		{"worker", "batch", "0.9.1", 1, []string{"process-order"}},
	}
	for i, svc := range services {
		details := &models.ServiceDetails{
			Name:          ptr(svc.name),
			NamespaceName: ptr(svc.namespace),
			Version:       ptr(svc.version),
			InstanceCount: ptr(svc.instances),
			LastSeen:      ptr(now.Add(-time.Duration(i) * time.Minute)),
			RequestRate:   ptr(42.5 / float64(i+1)),
			ErrorRate:     ptr(0.01 * float64(i+1)),
			AvgLatencyMs:  ptr(12.0 * float64(i+1)),
			P99LatencyMs:  ptr(95.0 * float64(i+1)),
			ResourceAttributes: []*models.Attribute{
				{Key: ptr("service.namespace"), Value: &models.AttributeValue{String: ptr(svc.namespace)}},
				{Key: ptr("service.instance.count"), Value: &models.AttributeValue{Int: ptr(svc.instances)}},
			},
		}
		ops := make([]*models.OperationInfo, 0, len(svc.ops))
		for j, op := range svc.ops {
			kind := models.SpanKindServer
			if svc.name == "worker" {
				kind = models.SpanKindConsumer
			}
			ops = append(ops, &models.OperationInfo{
				Name:          ptr(op),
				SpanKind:      &kind,
				RequestCount:  ptr(int64(1000 * (j + 1))),
				ErrorCount:    ptr(int64(3 * j)),
				AvgDurationMs: ptr(8.5 * float64(j+1)),
				P99DurationMs: ptr(70.0 * float64(j+1)),
			})
		}
		s.PutService(details, ops...)
		s.PutTrace(seedTrace(fmt.Sprintf("%032x", i+1), svc.name, svc.ops[0], now.Add(-time.Duration(i+1)*time.Minute), time.Duration(i+1)*150*time.Millisecond, i == 1))
	}

	history := []struct {
		service, version string
		env              models.DeploymentEnvironment
		status           models.DeploymentStatus
		age, took        time.Duration
	}{
		{"api", "1.4.0", models.DeploymentEnvironmentProduction, models.DeploymentStatusSuccess, 72 * time.Hour, 6 * time.Minute},
		{"api", "1.4.1", models.DeploymentEnvironmentProduction, models.DeploymentStatusRolledBack, 48 * time.Hour, 11 * time.Minute},
		{"api", "1.4.2", models.DeploymentEnvironmentProduction, models.DeploymentStatusSuccess, 24 * time.Hour, 5 * time.Minute},
		{"billing", "2.0.0", models.DeploymentEnvironmentStaging, models.DeploymentStatusSuccess, 30 * time.Hour, 9 * time.Minute},
		{"worker", "0.9.1", models.DeploymentEnvironmentProduction, models.DeploymentStatusInProgress, time.Hour, 0},
	}
	for i, h := range history {
		start := now.Add(-h.age)
		d := &models.DeploymentEntity{
			DeploymentID:   ptr(fmt.Sprintf("dep-%03d", i+1)),
			ServiceName:    ptr(h.service),
			ServiceVersion: ptr(h.version),
			Environment:    ptr(h.env),
			Status:         ptr(h.status),
			Strategy:       ptr(models.DeploymentStrategyRolling),
			StartTime:      &start,
			DeployedBy:     ptr("ci"),
			ReplicaCount:   ptr(int32(3)),
		}
		if h.took > 0 {
			d.EndTime = ptr(start.Add(h.took))
			d.DurationS = ptr(h.took.Seconds())
			d.HealthyReplicas = ptr(int32(3))
		}
		s.putDeployment(d)
	}

	categories := []models.ErrorCategory{models.ErrorCategoryServer, models.ErrorCategoryTimeout, models.ErrorCategoryDatabase, models.ErrorCategoryValidation}
	for i, cat := range categories {
		svc := services[i%len(services)].name
		s.PutError(&models.ErrorEntity{
			ErrorID:          ptr(fmt.Sprintf("err-%03d", i+1)),
			ErrorType:        ptr(fmt.Sprintf("%sError", cat)),
			Message:          ptr(fmt.Sprintf("%s failure in %s", cat, svc)),
			Category:         ptr(cat),
			Fingerprint:      ptr(fmt.Sprintf("fp-%x", i*7919)),
			FirstSeen:        ptr(now.Add(-time.Duration(i+2) * time.Hour)),
			LastSeen:         ptr(now.Add(-time.Duration(i) * time.Minute)),
			OccurrenceCount:  ptr(int64(10 * (i + 1))),
			AffectedUsers:    ptr(int64(i + 1)),
			AffectedServices: []string{svc},
			Status:           ptr(models.ErrorStatusNew),
		})
	}

	seedMetrics(s)
}

func (s *Store) putDeployment(d *models.DeploymentEntity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := deref(d.DeploymentID)
	if _, exists := s.deployments[id]; !exists {
		s.deploymentOrder = append(s.deploymentOrder, id)
	}
	s.deployments[id] = d
}

func seedTrace(traceID, service, operation string, start time.Time, took time.Duration, failed bool) *models.Trace {
	startNano := start.UnixNano()
	root := &models.Span{
		SpanID:            ptr(traceID[16:]),
		TraceID:           ptr(traceID),
		Name:              ptr(operation),
		Kind:              ptr(models.SpanKindServer),
		StartTimeUnixNano: &startNano,
		EndTimeUnixNano:   ptr(startNano + took.Nanoseconds()),
		Attributes: []*models.Attribute{
			{Key: ptr("service.name"), Value: &models.AttributeValue{String: ptr(service)}},
		},
	}
	child := &models.Span{
		SpanID:            ptr(traceID[:16]),
		TraceID:           ptr(traceID),
		ParentSpanID:      root.SpanID,
		Name:              ptr("db.query"),
		Kind:              ptr(models.SpanKindClient),
		StartTimeUnixNano: ptr(startNano + int64(time.Millisecond)),
		EndTimeUnixNano:   ptr(startNano + took.Nanoseconds()/2),
	}
	return &models.Trace{
		TraceID:    ptr(traceID),
		Spans:      []*models.Span{root, child},
		RootSpan:   root,
		SpanCount:  ptr(int64(2)),
		DurationNs: ptr(took.Nanoseconds()),
		StartTime:  ptr(start),
		EndTime:    ptr(start.Add(took)),
		Services:   []string{service},
		HasError:   ptr(failed),
	}
}
