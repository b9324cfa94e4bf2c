// Command qyl queries the qyl telemetry API from the shell. Results are
// printed as one JSON document per line.
//
//	qyl deployments list --service api --status success
//	qyl deployments dora --env production
//	qyl errors resolve err-001
//	qyl metrics query http.server.request.duration --since 2h --step 15m
//	qyl stream --types spans,deployments
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/ANcpLua/qyl/pkg/client"
	"github.com/ANcpLua/qyl/pkg/config"
	"github.com/ANcpLua/qyl/pkg/debug"
	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/serialization"
	"github.com/ANcpLua/qyl/pkg/transport"
)

// command runs one subcommand against c with its remaining arguments.
type command struct {
	summary string
	run     func(ctx context.Context, c *client.Client, out io.Writer, args []string) error
}

var commands = map[string]command{
	"deployments list": {"list deployments", listDeployments},
	"deployments get":  {"show one deployment", getDeployment},
	"deployments dora": {"show DORA metrics", doraMetrics},
	"errors list":      {"list error groups", listErrors},
	"errors resolve":   {"mark an error group resolved", resolveError},
	"services list":    {"list services", listServices},
	"traces get":       {"show one trace", getTrace},
	"metrics list":     {"list metrics", listMetrics},
	"metrics query":    {"query a metric", queryMetric},
	"stream":           {"follow the live event stream", followStream},
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "qyl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := pflag.NewFlagSet("qyl", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	configPath := flagSet.String("config", "", "path to a qyl config file")
	baseURL := flagSet.String("base-url", "", "API base URL (overrides api.base_url)")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(os.Stderr)
			return nil
		}
		return err
	}

	name, rest, ok := lookup(flagSet.Args())
	if !ok {
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", strings.Join(flagSet.Args(), " "))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}
	debug.Init(cfg.Logging.Debug, cfg.Logging.Level, cfg.Logging.Format)

	c, adapter, err := config.NewClient(cfg)
	if err != nil {
		return err
	}
	defer adapter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return commands[name].run(ctx, c, out, rest)
}

// lookup matches the longest command name at the front of args.
func lookup(args []string) (string, []string, bool) {
	for n := min(len(args), 2); n > 0; n-- {
		name := strings.Join(args[:n], " ")
		if _, ok := commands[name]; ok {
			return name, args[n:], true
		}
	}
	return "", nil, false
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "Usage: qyl [--config FILE] [--base-url URL] <command> [flags]")
	fmt.Fprintln(w)
	for _, name := range names {
		fmt.Fprintf(w, "  %-18s %s\n", name, commands[name].summary)
	}
}

func emit(out io.Writer, v serialization.Parsable) error {
	body, err := serialization.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", body)
	return err
}

// optional returns nil for an empty flag value.
func optional[T ~string](s string) *T {
	if s == "" {
		return nil
	}
	v := T(s)
	return &v
}

func oneArg(fs *pflag.FlagSet, args []string, what string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: expected exactly one %s", fs.Name(), what)
	}
	return fs.Arg(0), nil
}

func listDeployments(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("deployments list", pflag.ContinueOnError)
	service := fs.String("service", "", "service name")
	env := fs.String("env", "", "deployment environment")
	status := fs.String("status", "", "deployment status")
	since := fs.Duration("since", 0, "only deployments started within this window")
	if err := fs.Parse(args); err != nil {
		return err
	}
	q := client.DeploymentsGetQueryParameters{
		ServiceName: optional[string](*service),
		Environment: optional[models.DeploymentEnvironment](*env),
		Status:      optional[models.DeploymentStatus](*status),
	}
	if *since > 0 {
		start := time.Now().Add(-*since)
		q.StartTime = &start
	}
	for d, err := range client.Pages(ctx, func(ctx context.Context, cursor *string) (*models.Page[*models.DeploymentEntity], error) {
		q.Cursor = cursor
		return c.V1().Deployments().Get(ctx, &client.Config[client.DeploymentsGetQueryParameters]{QueryParameters: &q})
	}) {
		if err != nil {
			return err
		}
		if err := emit(out, d); err != nil {
			return err
		}
	}
	return nil
}

func getDeployment(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("deployments get", pflag.ContinueOnError)
	metrics := fs.Bool("metrics", false, "show rollout metrics instead")
	id, err := oneArg(fs, args, "deployment id")
	if err != nil {
		return err
	}
	item := c.V1().Deployments().ByDeploymentID(id)
	if *metrics {
		m, err := item.Metrics().Get(ctx, nil)
		if err != nil {
			return err
		}
		return emit(out, m)
	}
	d, err := item.Get(ctx, nil)
	if err != nil {
		return err
	}
	return emit(out, d)
}

func doraMetrics(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("deployments dora", pflag.ContinueOnError)
	service := fs.String("service", "", "service name")
	env := fs.String("env", "", "deployment environment")
	if err := fs.Parse(args); err != nil {
		return err
	}
	m, err := c.V1().Deployments().Metrics().Dora().Get(ctx, &client.Config[client.DoraGetQueryParameters]{
		QueryParameters: &client.DoraGetQueryParameters{
			ServiceName: optional[string](*service),
			Environment: optional[models.DeploymentEnvironment](*env),
		},
	})
	if err != nil {
		return err
	}
	return emit(out, m)
}

func listErrors(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("errors list", pflag.ContinueOnError)
	service := fs.String("service", "", "service name")
	category := fs.String("category", "", "error category")
	status := fs.String("status", "", "triage status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	q := client.ErrorsGetQueryParameters{
		ServiceName: optional[string](*service),
		Category:    optional[models.ErrorCategory](*category),
		Status:      optional[models.ErrorStatus](*status),
	}
	for e, err := range client.Pages(ctx, func(ctx context.Context, cursor *string) (*models.Page[*models.ErrorEntity], error) {
		q.Cursor = cursor
		return c.V1().Errors().Get(ctx, &client.Config[client.ErrorsGetQueryParameters]{QueryParameters: &q})
	}) {
		if err != nil {
			return err
		}
		if err := emit(out, e); err != nil {
			return err
		}
	}
	return nil
}

func resolveError(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("errors resolve", pflag.ContinueOnError)
	assignee := fs.String("assign", "", "assign the group to this person")
	id, err := oneArg(fs, args, "error id")
	if err != nil {
		return err
	}
	status := models.ErrorStatusResolved
	e, err := c.V1().Errors().ByErrorID(id).Patch(ctx, &models.ErrorUpdate{
		Status:     &status,
		AssignedTo: optional[string](*assignee),
	}, nil)
	if err != nil {
		return err
	}
	return emit(out, e)
}

func listServices(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("services list", pflag.ContinueOnError)
	namespace := fs.String("namespace", "", "service namespace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	q := client.ServicesGetQueryParameters{NamespaceName: optional[string](*namespace)}
	for s, err := range client.Pages(ctx, func(ctx context.Context, cursor *string) (*models.Page[*models.ServiceInfo], error) {
		q.Cursor = cursor
		return c.V1().Services().Get(ctx, &client.Config[client.ServicesGetQueryParameters]{QueryParameters: &q})
	}) {
		if err != nil {
			return err
		}
		if err := emit(out, s); err != nil {
			return err
		}
	}
	return nil
}

func getTrace(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("traces get", pflag.ContinueOnError)
	id, err := oneArg(fs, args, "trace id")
	if err != nil {
		return err
	}
	t, err := c.V1().Traces().ByTraceID(id).Get(ctx, nil)
	if err != nil {
		return err
	}
	return emit(out, t)
}

func listMetrics(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("metrics list", pflag.ContinueOnError)
	pattern := fs.String("pattern", "", "substring of the metric name")
	service := fs.String("service", "", "service name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	q := client.MetricsGetQueryParameters{
		NamePattern: optional[string](*pattern),
		ServiceName: optional[string](*service),
	}
	for m, err := range client.Pages(ctx, func(ctx context.Context, cursor *string) (*models.Page[*models.MetricMetadata], error) {
		q.Cursor = cursor
		return c.V1().Metrics().Get(ctx, &client.Config[client.MetricsGetQueryParameters]{QueryParameters: &q})
	}) {
		if err != nil {
			return err
		}
		if err := emit(out, m); err != nil {
			return err
		}
	}
	return nil
}

func queryMetric(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("metrics query", pflag.ContinueOnError)
	since := fs.Duration("since", time.Hour, "window ending now")
	step := fs.String("step", "", "time bucket, e.g. 1m, 5m, 1h")
	agg := fs.String("agg", "", "aggregation function")
	service := fs.String("service", "", "restrict to one service")
	name, err := oneArg(fs, args, "metric name")
	if err != nil {
		return err
	}
	end := time.Now().UTC()
	start := end.Add(-*since)
	q := &models.MetricQueryRequest{
		MetricName:  &name,
		StartTime:   &start,
		EndTime:     &end,
		Step:        optional[models.TimeBucket](*step),
		Aggregation: optional[models.AggregationFunction](*agg),
	}
	if *service != "" {
		q.Filters = map[string]string{"service.name": *service}
	}
	resp, err := c.V1().Metrics().Query().Post(ctx, q, nil)
	if err != nil {
		return err
	}
	return emit(out, resp)
}

func followStream(ctx context.Context, c *client.Client, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("stream", pflag.ContinueOnError)
	types := fs.StringSlice("types", nil, "event types: traces, spans, logs, metrics, exceptions, deployments, all")
	service := fs.String("service", "", "service name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	q := client.StreamEventsGetQueryParameters{ServiceName: optional[string](*service)}
	for _, t := range *types {
		q.Types = append(q.Types, models.StreamEventType(t))
	}
	body, err := c.V1().Stream().Events().Get(ctx, &client.Config[client.StreamEventsGetQueryParameters]{QueryParameters: &q})
	if err != nil {
		return err
	}
	defer body.Close()

	for ev, err := range transport.Events(ctx, body) {
		if err != nil {
			return err
		}
		if err := emit(out, ev); err != nil {
			return err
		}
	}
	return nil
}
