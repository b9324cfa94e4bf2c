// Command qyl-mcp serves qyl queries as MCP tools over streamable HTTP on
// /mcp, so agents can inspect deployments, errors, services and metrics.
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

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/pflag"

	"github.com/ANcpLua/qyl/pkg/config"
	"github.com/ANcpLua/qyl/pkg/debug"
	"github.com/ANcpLua/qyl/pkg/mockapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("qyl-mcp failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("qyl-mcp", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "path to a qyl config file")
	port := flagSet.Int("port", 8080, "listen port")
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
	debug.Init(cfg.Logging.Debug, cfg.Logging.Level, cfg.Logging.Format)

	c, adapter, err := config.NewClient(cfg)
	if err != nil {
		return err
	}
	defer adapter.Close()

	server := newServer(c)
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("qyl MCP server starting", "port", *port, "api", cfg.API.BaseURL)
	return mockapi.NewServer(mux,
		mockapi.WithAddr(fmt.Sprintf(":%d", *port)),
		mockapi.WithServerLogger(slog.Default()),
	).Run(ctx)
}
