package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
	"github.com/ANcpLua/qyl/pkg/transport"
)

func newHTTPClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	a, err := transport.NewHTTPAdapter(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTPAdapter: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return New(a)
}

func TestCreateDeploymentOverHTTP(t *testing.T) {
	var received map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/deployments", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != request.ContentTypeJSON {
			http.Error(w, "bad content type", http.StatusUnsupportedMediaType)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"deployment.id":"dep-1","service.name":"api","status":"pending","environment":"production"}`)
	})
	c := newHTTPClient(t, mux)

	d, err := c.V1().Deployments().Post(context.Background(), &models.DeploymentCreate{
		ServiceName:    ptr("api"),
		ServiceVersion: ptr("1.2.0"),
		Environment:    ptr(models.DeploymentEnvironmentProduction),
		Strategy:       ptr(models.DeploymentStrategyRolling),
	}, nil)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if *d.DeploymentID != "dep-1" || *d.Status != models.DeploymentStatusPending {
		t.Errorf("entity = %+v", d)
	}
	for _, key := range []string{"service_name", "environment", "strategy"} {
		if _, ok := received[key]; !ok {
			t.Errorf("request body missing %q: %v", key, received)
		}
	}
	if _, camel := received["serviceName"]; camel {
		t.Error("body used a query-style camelCase key")
	}
}

func TestTypedErrorsOverHTTP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/errors/{errorId}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", request.ContentTypeProblemJSON)
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"title":"Not Found","status":404,"detail":"error group missing","resource_type":"error","resource_id":"`+r.PathValue("errorId")+`"}`)
	})
	mux.HandleFunc("PATCH /v1/errors/{errorId}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", request.ContentTypeProblemJSON)
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"title":"Validation failed","status":400,"errors":[{"field":"status","code":"enum","message":"unknown status","rejected_value":"exploded"}]}`)
	})
	mux.HandleFunc("GET /v1/services", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", request.ContentTypeProblemJSON)
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"title":"Internal","status":500,"error_code":"QYL-5001"}`)
	})
	c := newHTTPClient(t, mux)
	ctx := context.Background()

	_, err := c.V1().Errors().ByErrorID("e9").Get(ctx, nil)
	if !request.IsNotFound(err) {
		t.Errorf("Get: err = %v, want not found", err)
	}

	_, err = c.V1().Errors().ByErrorID("e9").Patch(ctx, &models.ErrorUpdate{Status: ptr(models.ErrorStatus("resolved"))}, nil)
	if !request.IsValidation(err) {
		t.Errorf("Patch: err = %v, want validation failure", err)
	}

	_, err = c.V1().Services().Get(ctx, nil)
	apiErr, ok := request.AsAPIError(err)
	if !ok || apiErr.StatusCode != 500 || apiErr.Code != "QYL-5001" {
		t.Errorf("Services: err = %v", err)
	}
}

func TestListPageOverHTTP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/services", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("cursor") == "" {
			io.WriteString(w, `{"items":[{"name":"api"},{"name":"web"}],"has_more":true,"next_cursor":"p2"}`)
			return
		}
		io.WriteString(w, `{"items":[{"name":"worker"}],"has_more":false,"next_cursor":"ignored"}`)
	})
	c := newHTTPClient(t, mux)

	var names []string
	fetch := func(ctx context.Context, cursor *string) (*models.Page[*models.ServiceInfo], error) {
		return c.V1().Services().Get(ctx, &Config[ServicesGetQueryParameters]{
			QueryParameters: &ServicesGetQueryParameters{Cursor: cursor, Limit: ptr(int32(2))},
		})
	}
	for s, err := range Pages(context.Background(), fetch) {
		if err != nil {
			t.Fatalf("Pages: %v", err)
		}
		names = append(names, *s.Name)
	}
	if want := []string{"api", "web", "worker"}; !equalStrings(names, want) {
		t.Errorf("services = %v, want %v", names, want)
	}
}
