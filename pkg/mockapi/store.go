package mockapi

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ANcpLua/qyl/pkg/models"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a resource with the given key already exists.
	ErrConflict = errors.New("resource already exists")
)

// FieldError is a rejected input field. The handler reports a slice of them
// as a 400 validation problem.
type FieldError struct {
	Field   string
	Code    string
	Message string
	Value   string
}

// InvalidInput collects field errors for one request.
type InvalidInput []FieldError

func (e InvalidInput) Error() string {
	fields := make([]string, 0, len(e))
	for _, f := range e {
		fields = append(fields, f.Field)
	}
	return "invalid input: " + strings.Join(fields, ", ")
}

// Store is an in-memory telemetry catalogue. Listings are returned in
// insertion order so cursors stay stable while the store changes.
type Store struct {
	mu sync.RWMutex

	deployments     map[string]*models.DeploymentEntity
	deploymentOrder []string

	errorGroups map[string]*models.ErrorEntity
	errorOrder  []string

	services   map[string]*models.ServiceDetails
	operations map[string][]*models.OperationInfo

	traces     map[string]*models.Trace
	traceOrder []string

	metrics map[string]*models.MetricMetadata

	now   func() time.Time
	newID func() string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		deployments: make(map[string]*models.DeploymentEntity),
		errorGroups: make(map[string]*models.ErrorEntity),
		services:    make(map[string]*models.ServiceDetails),
		operations:  make(map[string][]*models.OperationInfo),
		traces:      make(map[string]*models.Trace),
		metrics:     make(map[string]*models.MetricMetadata),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

// DeploymentFilter narrows ListDeployments. Empty fields match everything.
type DeploymentFilter struct {
	ServiceName string
	Environment models.DeploymentEnvironment
	Status      models.DeploymentStatus
	Since       time.Time
	Until       time.Time
}

func (f DeploymentFilter) matches(d *models.DeploymentEntity) bool {
	if f.ServiceName != "" && deref(d.ServiceName) != f.ServiceName {
		return false
	}
	if f.Environment != "" && deref(d.Environment) != f.Environment {
		return false
	}
	if f.Status != "" && deref(d.Status) != f.Status {
		return false
	}
	if d.StartTime != nil {
		if !f.Since.IsZero() && d.StartTime.Before(f.Since) {
			return false
		}
		if !f.Until.IsZero() && d.StartTime.After(f.Until) {
			return false
		}
	}
	return true
}

// CreateDeployment records a new pending deployment.
func (s *Store) CreateDeployment(in *models.DeploymentCreate) (*models.DeploymentEntity, error) {
	var invalid InvalidInput
	if in == nil || deref(in.ServiceName) == "" {
		invalid = append(invalid, FieldError{Field: "service_name", Code: "required", Message: "service_name is required"})
	}
	if in != nil && deref(in.ServiceVersion) == "" {
		invalid = append(invalid, FieldError{Field: "service_version", Code: "required", Message: "service_version is required"})
	}
	if in != nil && in.Environment != nil && !in.Environment.IsKnown() {
		invalid = append(invalid, FieldError{Field: "environment", Code: "enum", Message: "unknown environment", Value: string(*in.Environment)})
	}
	if in != nil && in.Strategy != nil && !in.Strategy.IsKnown() {
		invalid = append(invalid, FieldError{Field: "strategy", Code: "enum", Message: "unknown strategy", Value: string(*in.Strategy)})
	}
	if len(invalid) > 0 {
		return nil, invalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	if _, exists := s.deployments[id]; exists {
		return nil, ErrConflict
	}
	now := s.now().UTC()
	status := models.DeploymentStatusPending
	d := &models.DeploymentEntity{
		DeploymentID:   &id,
		ServiceName:    in.ServiceName,
		ServiceVersion: in.ServiceVersion,
		Environment:    in.Environment,
		Strategy:       in.Strategy,
		Status:         &status,
		StartTime:      &now,
		DeployedBy:     in.DeployedBy,
		GitCommit:      in.GitCommit,
		GitBranch:      in.GitBranch,
		AdditionalData: in.AdditionalData.Clone(),
	}
	if prev := s.latestVersionLocked(deref(in.ServiceName)); prev != "" {
		d.PreviousVersion = &prev
	}
	s.deployments[id] = d
	s.deploymentOrder = append(s.deploymentOrder, id)
	return d, nil
}

func (s *Store) latestVersionLocked(service string) string {
	for _, id := range slices.Backward(s.deploymentOrder) {
		if d := s.deployments[id]; deref(d.ServiceName) == service {
			return deref(d.ServiceVersion)
		}
	}
	return ""
}

// GetDeployment returns the deployment with id.
func (s *Store) GetDeployment(id string) (*models.DeploymentEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.deployments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// UpdateDeployment applies the non-nil fields of u. Terminal states stamp
// the end time and duration.
func (s *Store) UpdateDeployment(id string, u *models.DeploymentUpdate) (*models.DeploymentEntity, error) {
	if u != nil && u.Status != nil && !u.Status.IsKnown() {
		return nil, InvalidInput{{Field: "status", Code: "enum", Message: "unknown deployment status", Value: string(*u.Status)}}
	}
	if u != nil && u.HealthyReplicas != nil && *u.HealthyReplicas < 0 {
		return nil, InvalidInput{{Field: "healthy_replicas", Code: "min", Message: "healthy_replicas must be >= 0", Value: fmt.Sprint(*u.HealthyReplicas)}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deployments[id]
	if !ok {
		return nil, ErrNotFound
	}
	if u == nil {
		return d, nil
	}
	if u.Status != nil {
		d.Status = u.Status
		switch *u.Status {
		case models.DeploymentStatusSuccess, models.DeploymentStatusFailed,
			models.DeploymentStatusRolledBack, models.DeploymentStatusCancelled:
			end := s.now().UTC()
			d.EndTime = &end
			if d.StartTime != nil {
				secs := end.Sub(*d.StartTime).Seconds()
				d.DurationS = &secs
			}
		}
	}
	if u.HealthyReplicas != nil {
		d.HealthyReplicas = u.HealthyReplicas
	}
	if u.ErrorMessage != nil {
		d.ErrorMessage = u.ErrorMessage
	}
	return d, nil
}

// ListDeployments returns the deployments matching f, oldest first.
func (s *Store) ListDeployments(f DeploymentFilter) []*models.DeploymentEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.DeploymentEntity, 0, len(s.deploymentOrder))
	for _, id := range s.deploymentOrder {
		if d := s.deployments[id]; f.matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// Dora derives DORA metrics from the deployments matching f over the
// window [f.Since, f.Until]. A zero window spans the recorded deployments.
func (s *Store) Dora(f DeploymentFilter) *models.DoraMetrics {
	deps := s.ListDeployments(DeploymentFilter{ServiceName: f.ServiceName, Environment: f.Environment, Since: f.Since, Until: f.Until})

	var finished, failed int
	var leadHours, recoverHours float64
	var recoveries int
	for _, d := range deps {
		switch deref(d.Status) {
		case models.DeploymentStatusSuccess:
			finished++
			if d.DurationS != nil {
				leadHours += *d.DurationS / 3600
			}
		case models.DeploymentStatusFailed, models.DeploymentStatusRolledBack:
			finished++
			failed++
			if d.DurationS != nil {
				recoverHours += *d.DurationS / 3600
				recoveries++
			}
		}
	}

	days := 1.0
	if !f.Since.IsZero() && !f.Until.IsZero() && f.Until.After(f.Since) {
		days = f.Until.Sub(f.Since).Hours() / 24
	} else if len(deps) > 1 {
		first, last := deps[0].StartTime, deps[len(deps)-1].StartTime
		if first != nil && last != nil && last.After(*first) {
			days = max(last.Sub(*first).Hours()/24, 1)
		}
	}

	m := &models.DoraMetrics{}
	freq := float64(len(deps)) / days
	m.DeploymentFrequency = &freq
	if ok := finished - failed; ok > 0 {
		lead := leadHours / float64(ok)
		m.LeadTimeHours = &lead
	}
	if finished > 0 {
		cfr := float64(failed) / float64(finished)
		m.ChangeFailureRate = &cfr
	}
	if recoveries > 0 {
		mttr := recoverHours / float64(recoveries)
		m.MTTRHours = &mttr
	}
	level := doraLevel(freq, m.ChangeFailureRate)
	m.PerformanceLevel = &level
	return m
}

func doraLevel(perDay float64, cfr *float64) models.DoraPerformanceLevel {
	rate := 0.0
	if cfr != nil {
		rate = *cfr
	}
	switch {
	case perDay >= 1 && rate <= 0.15:
		return models.DoraPerformanceLevelElite
	case perDay >= 1.0/7 && rate <= 0.30:
		return models.DoraPerformanceLevelHigh
	case perDay >= 1.0/30:
		return models.DoraPerformanceLevelMedium
	}
	return models.DoraPerformanceLevelLow
}

// ErrorFilter narrows ListErrors.
type ErrorFilter struct {
	ServiceName string
	Category    models.ErrorCategory
	Status      models.ErrorStatus
}

// PutError stores or replaces an error group keyed by its ErrorID.
func (s *Store) PutError(e *models.ErrorEntity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := deref(e.ErrorID)
	if _, exists := s.errorGroups[id]; !exists {
		s.errorOrder = append(s.errorOrder, id)
	}
	s.errorGroups[id] = e
}

func (s *Store) GetError(id string) (*models.ErrorEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.errorGroups[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// UpdateError applies a triage change.
func (s *Store) UpdateError(id string, u *models.ErrorUpdate) (*models.ErrorEntity, error) {
	if u != nil && u.Status != nil && !u.Status.IsKnown() {
		return nil, InvalidInput{{Field: "status", Code: "enum", Message: "unknown error status", Value: string(*u.Status)}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.errorGroups[id]
	if !ok {
		return nil, ErrNotFound
	}
	if u == nil {
		return e, nil
	}
	if u.Status != nil {
		e.Status = u.Status
	}
	if u.AssignedTo != nil {
		e.AssignedTo = u.AssignedTo
	}
	if u.IssueURL != nil {
		e.IssueURL = u.IssueURL
	}
	return e, nil
}

func (s *Store) ListErrors(f ErrorFilter) []*models.ErrorEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ErrorEntity, 0, len(s.errorOrder))
	for _, id := range s.errorOrder {
		e := s.errorGroups[id]
		if f.ServiceName != "" && !slices.Contains(e.AffectedServices, f.ServiceName) {
			continue
		}
		if f.Category != "" && deref(e.Category) != f.Category {
			continue
		}
		if f.Status != "" && deref(e.Status) != f.Status {
			continue
		}
		out = append(out, e)
	}
	return out
}

// PutService stores a service with its operations.
func (s *Store) PutService(svc *models.ServiceDetails, ops ...*models.OperationInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := deref(svc.Name)
	s.services[name] = svc
	s.operations[name] = ops
}

func (s *Store) GetService(name string) (*models.ServiceDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[name]
	if !ok {
		return nil, ErrNotFound
	}
	return svc, nil
}

// ListServices returns service summaries sorted by name.
func (s *Store) ListServices(namespace string) []*models.ServiceInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ServiceInfo, 0, len(s.services))
	for _, svc := range s.services {
		if namespace != "" && deref(svc.NamespaceName) != namespace {
			continue
		}
		out = append(out, &models.ServiceInfo{
			Name:          svc.Name,
			NamespaceName: svc.NamespaceName,
			Version:       svc.Version,
			InstanceCount: svc.InstanceCount,
			LastSeen:      svc.LastSeen,
		})
	}
	slices.SortFunc(out, func(a, b *models.ServiceInfo) int { return strings.Compare(deref(a.Name), deref(b.Name)) })
	return out
}

func (s *Store) ListOperations(service string) ([]*models.OperationInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.services[service]; !ok {
		return nil, ErrNotFound
	}
	return s.operations[service], nil
}

// TraceFilter narrows ListTraces.
type TraceFilter struct {
	ServiceName   string
	MinDurationMs int64
	MaxDurationMs int64
	ErrorsOnly    bool
}

func (s *Store) PutTrace(t *models.Trace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := deref(t.TraceID)
	if _, exists := s.traces[id]; !exists {
		s.traceOrder = append(s.traceOrder, id)
	}
	s.traces[id] = t
}

func (s *Store) GetTrace(id string) (*models.Trace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.traces[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *Store) ListTraces(f TraceFilter) []*models.Trace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Trace, 0, len(s.traceOrder))
	for _, id := range s.traceOrder {
		t := s.traces[id]
		if f.ServiceName != "" && !slices.Contains(t.Services, f.ServiceName) {
			continue
		}
		ms := deref(t.DurationNs) / int64(time.Millisecond)
		if f.MinDurationMs > 0 && ms < f.MinDurationMs {
			continue
		}
		if f.MaxDurationMs > 0 && ms > f.MaxDurationMs {
			continue
		}
		if f.ErrorsOnly && !deref(t.HasError) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
