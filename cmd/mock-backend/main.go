// Command mock-backend serves a seeded, in-memory qyl API for local
// development and the SDK's integration tests.
//
// Configuration is read from qyl.yaml (or --config) and QYL_* variables;
// flags override both:
//
//	mock-backend --port 5100 --simulate 2s
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/ANcpLua/qyl/pkg/config"
	"github.com/ANcpLua/qyl/pkg/debug"
	"github.com/ANcpLua/qyl/pkg/mockapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("mock backend failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("mock-backend", pflag.ContinueOnError)
	var (
		configPath = flagSet.String("config", "", "path to a qyl config file")
		port       = flagSet.Int("port", 0, "listen port (overrides server.port)")
		simulate   = flagSet.Duration("simulate", 0, "publish synthetic span and metric events at this interval, 0 disables")
		heartbeat  = flagSet.Duration("heartbeat", 15*time.Second, "idle interval between stream heartbeats")
		noGzip     = flagSet.Bool("reject-gzip", false, "answer gzip request bodies with 415")
		empty      = flagSet.Bool("empty", false, "start without seed data")
	)
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	debug.Init(cfg.Logging.Debug, cfg.Logging.Level, cfg.Logging.Format)
	logger := slog.Default()

	store := mockapi.NewStore()
	if !*empty {
		mockapi.Seed(store, time.Now())
	}

	opts := []mockapi.Option{mockapi.WithLogger(logger), mockapi.WithHeartbeat(*heartbeat)}
	if *noGzip {
		opts = append(opts, mockapi.RejectCompressedBodies())
	}
	api := mockapi.NewHandler(store, opts...)

	mux := http.NewServeMux()
	mux.Handle(cfg.Server.MetricsPath, promhttp.Handler())
	mux.Handle("/", api)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *simulate > 0 {
		go mockapi.Simulate(ctx, store, api.Broker(), *simulate, logger)
		logger.Info("simulation enabled", "interval", *simulate)
	}

	srv := mockapi.NewServer(mux,
		mockapi.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
		mockapi.WithReadTimeout(cfg.Server.ReadTimeout),
		mockapi.WithWriteTimeout(cfg.Server.WriteTimeout),
		mockapi.WithServerLogger(logger),
	)
	return srv.Run(ctx)
}
