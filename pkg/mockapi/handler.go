package mockapi

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
	"github.com/ANcpLua/qyl/pkg/serialization"
	"github.com/ANcpLua/qyl/pkg/transport"
)

// maxBodySize bounds request bodies after decompression.
const maxBodySize = 1 << 20

// Handler serves the qyl REST API from a Store.
type Handler struct {
	store     *Store
	broker    *Broker
	logger    *slog.Logger
	heartbeat time.Duration
	noGzip    bool

	handler http.Handler
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// WithBroker shares a broker, e.g. with a simulator publishing live events.
func WithBroker(b *Broker) Option {
	return func(h *Handler) { h.broker = b }
}

// WithHeartbeat sets the idle interval between stream heartbeats.
func WithHeartbeat(d time.Duration) Option {
	return func(h *Handler) { h.heartbeat = d }
}

// RejectCompressedBodies answers gzip request bodies with 415, as servers
// without decompression support do.
func RejectCompressedBodies() Option {
	return func(h *Handler) { h.noGzip = true }
}

// NewHandler builds the API handler over store.
func NewHandler(store *Store, opts ...Option) *Handler {
	h := &Handler{
		store:     store,
		logger:    slog.Default(),
		heartbeat: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.broker == nil {
		h.broker = NewBroker()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	mux.HandleFunc("GET /v1/deployments", h.listDeployments)
	mux.HandleFunc("POST /v1/deployments", h.createDeployment)
	mux.HandleFunc("GET /v1/deployments/metrics/dora", h.doraMetrics)
	mux.HandleFunc("GET /v1/deployments/{deploymentId}", h.getDeployment)
	mux.HandleFunc("PATCH /v1/deployments/{deploymentId}", h.updateDeployment)
	mux.HandleFunc("GET /v1/deployments/{deploymentId}/metrics", h.deploymentMetrics)

	mux.HandleFunc("GET /v1/errors", h.listErrors)
	mux.HandleFunc("GET /v1/errors/{errorId}", h.getError)
	mux.HandleFunc("PATCH /v1/errors/{errorId}", h.updateError)

	mux.HandleFunc("GET /v1/services", h.listServices)
	mux.HandleFunc("GET /v1/services/{serviceName}", h.getService)
	mux.HandleFunc("GET /v1/services/{serviceName}/operations", h.listOperations)

	mux.HandleFunc("GET /v1/traces", h.listTraces)
	mux.HandleFunc("GET /v1/traces/{traceId}", h.getTrace)
	mux.HandleFunc("GET /v1/traces/{traceId}/spans", h.listSpans)
	mux.HandleFunc("POST /v1/traces/query", h.queryTraces)

	mux.HandleFunc("GET /v1/metrics", h.listMetrics)
	mux.HandleFunc("GET /v1/metrics/{metricName}", h.getMetric)
	mux.HandleFunc("POST /v1/metrics/query", h.queryMetric)

	mux.HandleFunc("GET /v1/stream/events", h.streamEvents)
	mux.HandleFunc("GET /v1/stream/traces/{traceId}/spans", h.streamTraceSpans)
	for path, kinds := range streamRoutes {
		mux.HandleFunc("GET "+path, h.stream(kinds))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.notFound(w, r, "route", r.URL.Path)
	})

	h.handler = withRequestID(h.withLogging(h.withRecovery(mux)))
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

// Broker returns the broker feeding the stream endpoints.
func (h *Handler) Broker() *Broker { return h.broker }

// --- deployments ---

type deploymentsQuery struct {
	pageQuery
	ServiceName string                       `query:"serviceName"`
	Environment models.DeploymentEnvironment `query:"environment" validate:"omitempty,known"`
	Status      models.DeploymentStatus      `query:"status" validate:"omitempty,known"`
	StartTime   time.Time                    `query:"startTime"`
	EndTime     time.Time                    `query:"endTime"`
}

func (q deploymentsQuery) filter() DeploymentFilter {
	return DeploymentFilter{
		ServiceName: q.ServiceName,
		Environment: q.Environment,
		Status:      q.Status,
		Since:       q.StartTime,
		Until:       q.EndTime,
	}
}

func (h *Handler) listDeployments(w http.ResponseWriter, r *http.Request) {
	var q deploymentsQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	writePage(h, w, r, models.NewDeploymentEntity, h.store.ListDeployments(q.filter()), q.pageQuery)
}

func (h *Handler) createDeployment(w http.ResponseWriter, r *http.Request) {
	in, err := decodeBody(h, r, models.NewDeploymentCreate)
	if err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	d, err := h.store.CreateDeployment(in)
	if err != nil {
		h.fail(w, r, err, "deployment", "")
		return
	}
	h.publishDeployment(d, "deployment.created")
	h.write(w, r, http.StatusCreated, d)
}

func (h *Handler) getDeployment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("deploymentId")
	d, err := h.store.GetDeployment(id)
	if err != nil {
		h.fail(w, r, err, "deployment", id)
		return
	}
	h.write(w, r, http.StatusOK, d)
}

func (h *Handler) updateDeployment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("deploymentId")
	u, err := decodeBody(h, r, models.NewDeploymentUpdate)
	if err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	d, err := h.store.UpdateDeployment(id, u)
	if err != nil {
		h.fail(w, r, err, "deployment", id)
		return
	}
	h.publishDeployment(d, "deployment.updated")
	h.write(w, r, http.StatusOK, d)
}

func (h *Handler) deploymentMetrics(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("deploymentId")
	d, err := h.store.GetDeployment(id)
	if err != nil {
		h.fail(w, r, err, "deployment", id)
		return
	}
	end := time.Now().UTC()
	if d.EndTime != nil {
		end = *d.EndTime
	}
	m := &models.DeploymentMetrics{
		DeploymentID:    d.DeploymentID,
		ServiceName:     d.ServiceName,
		WindowStart:     d.StartTime,
		WindowEnd:       &end,
		ReplicaCount:    d.ReplicaCount,
		HealthyReplicas: d.HealthyReplicas,
	}
	if svc, err := h.store.GetService(deref(d.ServiceName)); err == nil {
		m.RequestRate = svc.RequestRate
		m.ErrorRate = svc.ErrorRate
		m.AvgLatencyMs = svc.AvgLatencyMs
		m.P99LatencyMs = svc.P99LatencyMs
	}
	h.write(w, r, http.StatusOK, m)
}

type doraQuery struct {
	ServiceName string                       `query:"serviceName"`
	Environment models.DeploymentEnvironment `query:"environment" validate:"omitempty,known"`
	StartTime   time.Time                    `query:"startTime"`
	EndTime     time.Time                    `query:"endTime"`
}

func (h *Handler) doraMetrics(w http.ResponseWriter, r *http.Request) {
	var q doraQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	h.write(w, r, http.StatusOK, h.store.Dora(DeploymentFilter{
		ServiceName: q.ServiceName,
		Environment: q.Environment,
		Since:       q.StartTime,
		Until:       q.EndTime,
	}))
}

func (h *Handler) publishDeployment(d *models.DeploymentEntity, name string) {
	ev := &models.DeploymentEvent{
		EventName:    &name,
		DeploymentID: d.DeploymentID,
		ServiceName:  d.ServiceName,
		Status:       d.Status,
		Timestamp:    ptr(time.Now().UTC()),
	}
	if d.Environment != nil {
		ev.DeploymentEnvironmentName = ptr(string(*d.Environment))
	}
	if err := h.broker.PublishPayload("deployment", deref(d.ServiceName), ev, *ev.Timestamp); err != nil {
		h.logger.Warn("publishing deployment event", "error", err)
	}
}

// --- errors ---

type errorsQuery struct {
	pageQuery
	ServiceName string               `query:"serviceName"`
	Category    models.ErrorCategory `query:"category" validate:"omitempty,known"`
	Status      models.ErrorStatus   `query:"status" validate:"omitempty,known"`
}

func (h *Handler) listErrors(w http.ResponseWriter, r *http.Request) {
	var q errorsQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	items := h.store.ListErrors(ErrorFilter{ServiceName: q.ServiceName, Category: q.Category, Status: q.Status})
	writePage(h, w, r, models.NewErrorEntity, items, q.pageQuery)
}

func (h *Handler) getError(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("errorId")
	e, err := h.store.GetError(id)
	if err != nil {
		h.fail(w, r, err, "error", id)
		return
	}
	h.write(w, r, http.StatusOK, e)
}

func (h *Handler) updateError(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("errorId")
	u, err := decodeBody(h, r, models.NewErrorUpdate)
	if err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	e, err := h.store.UpdateError(id, u)
	if err != nil {
		h.fail(w, r, err, "error", id)
		return
	}
	h.write(w, r, http.StatusOK, e)
}

// --- services ---

type servicesQuery struct {
	pageQuery
	NamespaceName string `query:"namespaceName"`
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	var q servicesQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	writePage(h, w, r, models.NewServiceInfo, h.store.ListServices(q.NamespaceName), q.pageQuery)
}

func (h *Handler) getService(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("serviceName")
	svc, err := h.store.GetService(name)
	if err != nil {
		h.fail(w, r, err, "service", name)
		return
	}
	h.write(w, r, http.StatusOK, svc)
}

func (h *Handler) listOperations(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("serviceName")
	var q pageQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	ops, err := h.store.ListOperations(name)
	if err != nil {
		h.fail(w, r, err, "service", name)
		return
	}
	writePage(h, w, r, models.NewOperationInfo, ops, q)
}

// --- traces ---

type tracesQuery struct {
	pageQuery
	ServiceName   string                `query:"serviceName"`
	MinDurationMs int64                 `query:"minDurationMs" validate:"gte=0"`
	MaxDurationMs int64                 `query:"maxDurationMs" validate:"gte=0"`
	Status        models.SpanStatusCode `query:"status" validate:"omitempty,known"`
}

func (h *Handler) listTraces(w http.ResponseWriter, r *http.Request) {
	var q tracesQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	if q.MaxDurationMs > 0 && q.MinDurationMs > q.MaxDurationMs {
		h.fail(w, r, InvalidInput{{Field: "minDurationMs", Code: "range", Message: "minDurationMs exceeds maxDurationMs"}}, "", "")
		return
	}
	items := h.store.ListTraces(TraceFilter{
		ServiceName:   q.ServiceName,
		MinDurationMs: q.MinDurationMs,
		MaxDurationMs: q.MaxDurationMs,
		ErrorsOnly:    q.Status == models.SpanStatusCodeError,
	})
	writePage(h, w, r, models.NewTrace, items, q.pageQuery)
}

func (h *Handler) getTrace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("traceId")
	t, err := h.store.GetTrace(id)
	if err != nil {
		h.fail(w, r, err, "trace", id)
		return
	}
	h.write(w, r, http.StatusOK, t)
}

func (h *Handler) listSpans(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("traceId")
	var q pageQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	t, err := h.store.GetTrace(id)
	if err != nil {
		h.fail(w, r, err, "trace", id)
		return
	}
	writePage(h, w, r, models.NewSpan, t.Spans, q)
}

func (h *Handler) queryTraces(w http.ResponseWriter, r *http.Request) {
	q, err := decodeBody(h, r, models.NewTraceQuery)
	if err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	lo, hi := deref(q.MinDurationMs), deref(q.MaxDurationMs)
	if lo < 0 || hi < 0 || (hi > 0 && lo > hi) {
		h.fail(w, r, InvalidInput{{Field: "min_duration_ms", Code: "range", Message: "duration bounds are inverted or negative"}}, "", "")
		return
	}
	items := h.store.ListTraces(TraceFilter{
		ServiceName:   deref(q.ServiceName),
		MinDurationMs: lo,
		MaxDurationMs: hi,
		ErrorsOnly:    deref(q.Status) == models.SpanStatusCodeError,
	})
	if op := deref(q.OperationName); op != "" {
		items = slices.DeleteFunc(items, func(t *models.Trace) bool {
			return t.RootSpan == nil || deref(t.RootSpan.Name) != op
		})
	}
	writePage(h, w, r, models.NewTrace, items, pageQuery{Cursor: deref(q.Cursor), Limit: int(deref(q.Limit))})
}

// --- metrics ---

type metricsQuery struct {
	pageQuery
	NamePattern string `query:"namePattern"`
	ServiceName string `query:"serviceName"`
}

func (h *Handler) listMetrics(w http.ResponseWriter, r *http.Request) {
	var q metricsQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	writePage(h, w, r, models.NewMetricMetadata, h.store.ListMetrics(q.NamePattern, q.ServiceName), q.pageQuery)
}

func (h *Handler) getMetric(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("metricName")
	m, err := h.store.GetMetric(name)
	if err != nil {
		h.fail(w, r, err, "metric", name)
		return
	}
	h.write(w, r, http.StatusOK, m)
}

func (h *Handler) queryMetric(w http.ResponseWriter, r *http.Request) {
	q, err := decodeBody(h, r, models.NewMetricQueryRequest)
	if err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	resp, err := h.store.QueryMetric(q)
	if err != nil {
		h.fail(w, r, err, "metric", deref(q.MetricName))
		return
	}
	h.write(w, r, http.StatusOK, resp)
}

// --- streams ---

// streamKinds maps the plural names accepted by the types filter to the
// event types carried in envelopes.
var streamKinds = map[models.StreamEventType][]string{
	models.StreamEventTypeTraces:      {"trace"},
	models.StreamEventTypeSpans:       {"span"},
	models.StreamEventTypeLogs:        {"log"},
	models.StreamEventTypeMetrics:     {"metric"},
	models.StreamEventTypeExceptions:  {"exception"},
	models.StreamEventTypeDeployments: {"deployment"},
}

var streamRoutes = map[string][]string{
	"/v1/stream/traces":      {"trace", "span"},
	"/v1/stream/logs":        {"log"},
	"/v1/stream/metrics":     {"metric"},
	"/v1/stream/exceptions":  {"exception"},
	"/v1/stream/deployments": {"deployment"},
}

type streamQuery struct {
	ServiceName string   `query:"serviceName"`
	Types       []string `query:"types"`
	SampleRate  float64  `query:"sampleRate" validate:"omitempty,gt=0,lte=1"`
}

func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	var q streamQuery
	if err := decodeQuery(&q, r.URL.Query()); err != nil {
		h.fail(w, r, err, "", "")
		return
	}
	var kinds []string
	for _, t := range splitList(q.Types) {
		st := models.StreamEventType(t)
		if !st.IsKnown() {
			h.fail(w, r, InvalidInput{{Field: "types", Code: "known", Message: "unknown stream event type", Value: t}}, "", "")
			return
		}
		if st == models.StreamEventTypeAll {
			kinds = nil
			break
		}
		kinds = append(kinds, streamKinds[st]...)
	}
	h.serve(w, r, kinds, q.ServiceName)
}

func (h *Handler) stream(kinds []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q streamQuery
		if err := decodeQuery(&q, r.URL.Query()); err != nil {
			h.fail(w, r, err, "", "")
			return
		}
		h.serve(w, r, kinds, q.ServiceName)
	}
}

// streamTraceSpans relays span events belonging to one trace.
func (h *Handler) streamTraceSpans(w http.ResponseWriter, r *http.Request) {
	traceID := r.PathValue("traceId")
	events, cancel := h.broker.Subscribe([]string{"span"}, "")
	defer cancel()

	spans := make(chan *models.StreamEvent, cap(events))
	go func() {
		for {
			select {
			case <-r.Context().Done():
				return
			case ev := <-events:
				p, err := ev.Payload()
				if span, ok := p.(*models.Span); err != nil || !ok || deref(span.TraceID) != traceID {
					continue
				}
				select {
				case spans <- ev:
				default:
				}
			}
		}
	}()
	if err := serveStream(r.Context(), w, spans, h.heartbeat); err != nil {
		h.logger.Debug("stream ended", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, kinds []string, service string) {
	events, cancel := h.broker.Subscribe(kinds, service)
	defer cancel()
	if err := serveStream(r.Context(), w, events, h.heartbeat); err != nil {
		h.logger.Debug("stream ended", "path", r.URL.Path, "error", err)
	}
}

// --- encoding ---

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, v serialization.Parsable) {
	h.writeAs(w, r, status, request.ContentTypeJSON, v)
}

func (h *Handler) writeAs(w http.ResponseWriter, r *http.Request, status int, contentType string, v serialization.Parsable) {
	body, err := serialization.Marshal(v)
	if err != nil {
		h.logger.Error("encoding response", "path", r.URL.Path, "error", err)
		http.Error(w, "encoding failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	w.Write(body)
}

func writePage[T serialization.Parsable](h *Handler, w http.ResponseWriter, r *http.Request, factory serialization.Factory[T], items []T, q pageQuery) {
	window, next, prev, ok := paginate(items, q.Cursor, q.Limit)
	if !ok {
		h.fail(w, r, InvalidInput{{Field: "cursor", Code: "format", Message: "cursor is not recognised", Value: q.Cursor}}, "", "")
		return
	}
	page := models.NewPage(factory, window)
	if next != "" {
		page.HasMore = true
		page.NextCursor = &next
	}
	if prev != "" {
		page.PrevCursor = &prev
	}
	h.write(w, r, http.StatusOK, page)
}

// decodeBody reads a JSON body, inflating gzip content.
func decodeBody[T any](h *Handler, r *http.Request, factory serialization.Factory[T]) (T, error) {
	var zero T
	var body io.Reader = http.MaxBytesReader(nil, r.Body, maxBodySize)
	switch enc := strings.ToLower(r.Header.Get("Content-Encoding")); enc {
	case "", "identity":
	case "gzip":
		if h.noGzip {
			return zero, errUnsupportedEncoding
		}
		zr, err := gzip.NewReader(body)
		if err != nil {
			return zero, serialization.Violationf("decode body", "invalid gzip body: %v", err)
		}
		defer zr.Close()
		body = io.LimitReader(zr, maxBodySize)
	default:
		return zero, errUnsupportedEncoding
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return zero, serialization.Violationf("decode body", "reading body: %v", err)
	}
	return serialization.Unmarshal(data, factory)
}

var errUnsupportedEncoding = errors.New("unsupported content encoding")

// --- problems ---

// fail maps err to a problem response. resourceType and id describe the
// addressed resource for 404s.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, resourceType, id string) {
	var invalid InvalidInput
	switch {
	case errors.Is(err, ErrNotFound):
		h.notFound(w, r, resourceType, id)
	case errors.As(err, &invalid):
		h.invalid(w, r, invalid)
	case serialization.IsContractViolation(err):
		h.invalid(w, r, InvalidInput{{Field: "body", Code: "format", Message: err.Error()}})
	case errors.Is(err, errUnsupportedEncoding):
		h.writeAs(w, r, http.StatusUnsupportedMediaType, request.ContentTypeProblemJSON, &models.ProblemDetails{
			Title:  ptr("Unsupported Media Type"),
			Status: ptr(int32(http.StatusUnsupportedMediaType)),
			Detail: ptr(r.Header.Get("Content-Encoding") + " bodies are not accepted"),
		})
	case errors.Is(err, ErrConflict):
		h.writeAs(w, r, http.StatusConflict, request.ContentTypeProblemJSON, &models.ProblemDetails{
			Title:  ptr("Conflict"),
			Status: ptr(int32(http.StatusConflict)),
			Detail: ptr(err.Error()),
		})
	default:
		h.internal(w, r, err)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, resourceType, id string) {
	p := &models.NotFoundError{}
	p.Title = ptr("Not Found")
	p.Status = ptr(int32(http.StatusNotFound))
	p.Detail = ptr(fmt.Sprintf("%s %q does not exist", resourceType, id))
	p.Instance = ptr(r.URL.Path)
	p.ResourceType = ptr(resourceType)
	p.ResourceID = ptr(id)
	h.writeAs(w, r, http.StatusNotFound, request.ContentTypeProblemJSON, p)
}

func (h *Handler) invalid(w http.ResponseWriter, r *http.Request, invalid InvalidInput) {
	p := &models.ValidationError{}
	p.Title = ptr("Validation Failed")
	p.Status = ptr(int32(http.StatusBadRequest))
	p.Detail = ptr(invalid.Error())
	p.Instance = ptr(r.URL.Path)
	for _, f := range invalid {
		d := &models.ValidationErrorDetail{Field: ptr(f.Field), Message: ptr(f.Message), Code: ptr(f.Code)}
		if f.Value != "" {
			raw, err := serialization.EncodeString(f.Value)
			if err != nil {
				h.internal(w, r, err)
				return
			}
			d.RejectedValue = raw
		}
		p.Errors = append(p.Errors, d)
	}
	h.writeAs(w, r, http.StatusBadRequest, request.ContentTypeProblemJSON, p)
}

func (h *Handler) internal(w http.ResponseWriter, r *http.Request, err error) {
	ref := transport.RequestIDFromContext(r.Context())
	h.logger.Error("request failed", "path", r.URL.Path, "request_id", ref, "error", err)
	p := &models.InternalServerError{}
	p.Title = ptr("Internal Server Error")
	p.Status = ptr(int32(http.StatusInternalServerError))
	p.Detail = ptr("the server failed to handle the request")
	p.ErrorCode = ptr(ref)
	p.Timestamp = ptr(time.Now().UTC())
	h.writeAs(w, r, http.StatusInternalServerError, request.ContentTypeProblemJSON, p)
}
