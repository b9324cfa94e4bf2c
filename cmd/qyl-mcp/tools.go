package main

import (
	"bytes"
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ANcpLua/qyl/pkg/client"
	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

const defaultLimit = 50

type listDeploymentsInput struct {
	ServiceName string `json:"service_name,omitempty" jsonschema:"only deployments of this service"`
	Environment string `json:"environment,omitempty" jsonschema:"development, staging or production"`
	Status      string `json:"status,omitempty" jsonschema:"pending, in_progress, success, failed or rolled_back"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of deployments to return"`
}

type getDeploymentInput struct {
	DeploymentID string `json:"deployment_id" jsonschema:"the deployment id"`
}

type listErrorsInput struct {
	ServiceName string `json:"service_name,omitempty" jsonschema:"only error groups affecting this service"`
	Category    string `json:"category,omitempty" jsonschema:"error category such as timeout or database"`
	Status      string `json:"status,omitempty" jsonschema:"new, acknowledged, resolved or ignored"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of error groups to return"`
}

type listServicesInput struct {
	Namespace string `json:"namespace,omitempty" jsonschema:"only services in this namespace"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of services to return"`
}

type queryMetricsInput struct {
	MetricName  string `json:"metric_name" jsonschema:"the metric to query"`
	Window      string `json:"window,omitempty" jsonschema:"Go duration ending now, default 1h"`
	Step        string `json:"step,omitempty" jsonschema:"time bucket such as 1m, 5m or 1h"`
	Aggregation string `json:"aggregation,omitempty" jsonschema:"sum, avg, min, max, count, p50, p90, p95 or p99"`
	ServiceName string `json:"service_name,omitempty" jsonschema:"restrict to one service"`
}

// newServer exposes read-mostly qyl operations as MCP tools backed by c.
func newServer(c *client.Client) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "qyl", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_deployments",
		Description: "Lists deployments, oldest first, optionally filtered by service, environment and status",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in listDeploymentsInput) (*mcp.CallToolResult, any, error) {
		q := client.DeploymentsGetQueryParameters{
			ServiceName: optional[string](in.ServiceName),
			Environment: optional[models.DeploymentEnvironment](in.Environment),
			Status:      optional[models.DeploymentStatus](in.Status),
		}
		return collect(ctx, in.Limit, func(ctx context.Context, cursor *string) (*models.Page[*models.DeploymentEntity], error) {
			q.Cursor = cursor
			return c.V1().Deployments().Get(ctx, &client.Config[client.DeploymentsGetQueryParameters]{QueryParameters: &q})
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_deployment",
		Description: "Shows one deployment together with its rollout metrics",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in getDeploymentInput) (*mcp.CallToolResult, any, error) {
		item := c.V1().Deployments().ByDeploymentID(in.DeploymentID)
		d, err := item.Get(ctx, nil)
		if err != nil {
			return nil, nil, err
		}
		m, err := item.Metrics().Get(ctx, nil)
		if err != nil {
			return nil, nil, err
		}
		return textResult(d, m)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_errors",
		Description: "Lists error groups, optionally filtered by service, category and triage status",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in listErrorsInput) (*mcp.CallToolResult, any, error) {
		q := client.ErrorsGetQueryParameters{
			ServiceName: optional[string](in.ServiceName),
			Category:    optional[models.ErrorCategory](in.Category),
			Status:      optional[models.ErrorStatus](in.Status),
		}
		return collect(ctx, in.Limit, func(ctx context.Context, cursor *string) (*models.Page[*models.ErrorEntity], error) {
			q.Cursor = cursor
			return c.V1().Errors().Get(ctx, &client.Config[client.ErrorsGetQueryParameters]{QueryParameters: &q})
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_services",
		Description: "Lists the services that have reported telemetry",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in listServicesInput) (*mcp.CallToolResult, any, error) {
		q := client.ServicesGetQueryParameters{NamespaceName: optional[string](in.Namespace)}
		return collect(ctx, in.Limit, func(ctx context.Context, cursor *string) (*models.Page[*models.ServiceInfo], error) {
			q.Cursor = cursor
			return c.V1().Services().Get(ctx, &client.Config[client.ServicesGetQueryParameters]{QueryParameters: &q})
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_metrics",
		Description: "Runs a time-series query for one metric over a window ending now",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in queryMetricsInput) (*mcp.CallToolResult, any, error) {
		window := time.Hour
		if in.Window != "" {
			d, err := time.ParseDuration(in.Window)
			if err != nil {
				return nil, nil, err
			}
			window = d
		}
		end := time.Now().UTC()
		start := end.Add(-window)
		q := &models.MetricQueryRequest{
			MetricName:  &in.MetricName,
			StartTime:   &start,
			EndTime:     &end,
			Step:        optional[models.TimeBucket](in.Step),
			Aggregation: optional[models.AggregationFunction](in.Aggregation),
		}
		if in.ServiceName != "" {
			q.Filters = map[string]string{"service.name": in.ServiceName}
		}
		resp, err := c.V1().Metrics().Query().Post(ctx, q, nil)
		if err != nil {
			return nil, nil, err
		}
		return textResult(resp)
	})

	return server
}

// collect walks pages until limit items are gathered.
func collect[T serialization.Parsable](ctx context.Context, limit int, fetch client.PageFunc[T]) (*mcp.CallToolResult, any, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	var items []serialization.Parsable
	for item, err := range client.Pages(ctx, fetch) {
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
		if len(items) == limit {
			break
		}
	}
	return textResult(items...)
}

// textResult renders values as one JSON document per line.
func textResult(values ...serialization.Parsable) (*mcp.CallToolResult, any, error) {
	var buf bytes.Buffer
	for _, v := range values {
		body, err := serialization.Marshal(v)
		if err != nil {
			return nil, nil, err
		}
		buf.Write(body)
		buf.WriteByte('\n')
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: buf.String()}},
	}, nil, nil
}

func optional[T ~string](s string) *T {
	if s == "" {
		return nil
	}
	v := T(s)
	return &v
}
