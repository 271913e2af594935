package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/weather-mcp/internal/adapter/http"
	mcpadapter "github.com/couchcryptid/weather-mcp/internal/adapter/mcp"
	"github.com/couchcryptid/weather-mcp/internal/adapter/nws"
	"github.com/couchcryptid/weather-mcp/internal/adapter/openmeteo"
	"github.com/couchcryptid/weather-mcp/internal/config"
	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/couchcryptid/weather-mcp/internal/tools"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	nwsClient := nws.NewClient(cfg, metrics, logger)
	meteoClient := openmeteo.NewClient(cfg, metrics, logger)

	dispatcher := tools.NewDispatcher(nwsClient, nwsClient, meteoClient, cfg.DomesticBounds, logger, metrics)
	mcpServer := mcpadapter.NewServer(dispatcher, version, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The ops server (probes + metrics) is optional; most stdio deployments
	// run without it.
	var ops *httpadapter.Server
	if cfg.HTTPAddr != "" {
		ops = httpadapter.NewServer(cfg.HTTPAddr, dispatcher, logger)
		go func() {
			if err := ops.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("ops server error", "error", err)
			}
		}()
	}

	// Serve MCP over stdio until the client closes stdin or a signal arrives.
	if err := mcpServer.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("mcp server error", "error", err)
	}

	logger.Info("shutting down")

	if ops != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := ops.Shutdown(shutdownCtx); err != nil {
			logger.Error("ops server shutdown error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
