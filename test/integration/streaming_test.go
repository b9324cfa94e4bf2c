package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ANcpLua/qyl/pkg/client"
	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/transport"
)

func TestDeploymentStreamDeliversCreation(t *testing.T) {
	ctx := testContext(t)
	body, err := testEnv.Client.V1().Stream().Deployments().Get(ctx, &client.Config[client.StreamDeploymentsGetQueryParameters]{
		QueryParameters: &client.StreamDeploymentsGetQueryParameters{ServiceName: ptr("streamed")},
	})
	if err != nil {
		t.Fatalf("opening stream: %v", err)
	}
	defer body.Close()

	// The subscription is registered before response headers are sent.
	created, err := testEnv.Client.V1().Deployments().Post(ctx, &models.DeploymentCreate{
		ServiceName:    ptr("streamed"),
		ServiceVersion: ptr("0.1.0"),
	}, nil)
	if err != nil {
		t.Fatalf("creating deployment: %v", err)
	}

	for ev, err := range transport.Events(ctx, body) {
		if err != nil {
			t.Fatalf("reading stream: %v", err)
		}
		p, err := ev.Payload()
		if err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		de, ok := p.(*models.DeploymentEvent)
		if !ok {
			t.Fatalf("payload is %T, want *models.DeploymentEvent", p)
		}
		if deref(de.EventName) != "deployment.created" {
			t.Errorf("event.name = %q", deref(de.EventName))
		}
		if deref(de.DeploymentID) != deref(created.DeploymentID) {
			t.Errorf("deployment.id = %q, want %q", deref(de.DeploymentID), deref(created.DeploymentID))
		}
		return
	}
	t.Fatal("stream ended without an event")
}

func TestTraceSpanStreamFiltersByTrace(t *testing.T) {
	ctx := testContext(t)
	const traceID = "0000000000000000000000000000abcd"

	body, err := testEnv.Client.V1().Stream().Traces().ByTraceID(traceID).Spans().Get(ctx, nil)
	if err != nil {
		t.Fatalf("opening stream: %v", err)
	}
	defer body.Close()

	broker := testEnv.Handler.Broker()
	now := time.Now()
	for _, span := range []*models.Span{
		{TraceID: ptr("0000000000000000000000000000ffff"), SpanID: ptr("00000000000000ff"), Name: ptr("other")},
		{TraceID: ptr(traceID), SpanID: ptr("000000000000abcd"), Name: ptr("wanted")},
	} {
		if err := broker.PublishPayload("span", "api", span, now); err != nil {
			t.Fatal(err)
		}
	}

	for ev, err := range transport.Events(ctx, body) {
		if err != nil {
			t.Fatalf("reading stream: %v", err)
		}
		p, err := ev.Payload()
		if err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		span, ok := p.(*models.Span)
		if !ok {
			t.Fatalf("payload is %T, want *models.Span", p)
		}
		if deref(span.Name) != "wanted" {
			t.Errorf("first span = %q, want the span of trace %s", deref(span.Name), traceID)
		}
		return
	}
	t.Fatal("stream ended without an event")
}

func TestStreamSurvivesHeartbeats(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	body, err := testEnv.Client.V1().Stream().Exceptions().Get(ctx, nil)
	if err != nil {
		t.Fatalf("opening stream: %v", err)
	}
	defer body.Close()

	// Several heartbeat intervals pass before the event arrives.
	time.Sleep(200 * time.Millisecond)
	if err := testEnv.Handler.Broker().PublishPayload("exception", "api", &models.EnrichedException{ExceptionType: ptr("TimeoutError")}, time.Now()); err != nil {
		t.Fatal(err)
	}

	for ev, err := range transport.Events(ctx, body) {
		if err != nil {
			t.Fatalf("reading stream: %v", err)
		}
		if deref(ev.Type) != "exception" {
			t.Errorf("type = %q, want exception", deref(ev.Type))
		}
		return
	}
	t.Fatal("stream ended without an event")
}

func TestStreamRejectsUnknownTypes(t *testing.T) {
	ctx := testContext(t)
	body, err := testEnv.Client.V1().Stream().Events().Get(ctx, &client.Config[client.StreamEventsGetQueryParameters]{
		QueryParameters: &client.StreamEventsGetQueryParameters{Types: []models.StreamEventType{"heartbeats"}},
	})
	if err == nil {
		body.Close()
		t.Fatal("expected an error for an unknown event type")
	}
}

func TestCancelStreamByRequestID(t *testing.T) {
	ctx := transport.ContextWithRequestID(testContext(t), "stream-under-test")
	body, err := testEnv.Client.V1().Stream().Metrics().Get(ctx, nil)
	if err != nil {
		t.Fatalf("opening stream: %v", err)
	}
	defer body.Close()

	if !testEnv.Adapter.CancelStream("stream-under-test") {
		t.Fatal("CancelStream found no open stream")
	}
	for _, err := range transport.Events(ctx, body) {
		if err == nil {
			t.Fatal("received an event after cancellation")
		}
		break
	}
	if testEnv.Adapter.CancelStream("stream-under-test") {
		t.Error("stream still registered after cancellation")
	}
}
