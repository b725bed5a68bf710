package main

import (
	"log"
	"log/slog"
	"os"

	"agro-weather/internal/agro"
	"agro-weather/internal/config"
	"agro-weather/internal/mcpserver"
	"agro-weather/internal/observability"
	"agro-weather/internal/region"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Log to stderr; stdout carries the MCP protocol stream.
	logger := cfg.NewLoggerTo(os.Stderr)
	slog.SetDefault(logger)

	metrics := observability.NewMetrics()

	reg, err := region.Parse(cfg.Region.Name)
	if err != nil {
		log.Fatalf("Failed to parse region: %v", err)
	}

	agroSvc, err := agro.NewService(cfg, reg, metrics, logger)
	if err != nil {
		log.Fatalf("Failed to create weather service: %v", err)
	}

	srv := mcpserver.New(agroSvc, metrics, logger)

	logger.Info("starting mcp server on stdio", "region", cfg.Region.Name)
	if err := srv.ServeStdio(); err != nil {
		logger.Error("mcp server failed", "error", err)
		log.Fatal(err)
	}
}
