package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/garuda-scout/internal/app"
	"github.com/riskibarqy/garuda-scout/internal/config"
	"github.com/riskibarqy/garuda-scout/internal/observability"
	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTelemetry, err := observability.InitUptrace(cfg, "scraper", logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := app.NewScrapeService(cfg, logger)
	if err != nil {
		logger.Error("build scraper", "error", err)
		return 1
	}

	report, err := svc.Run(ctx)
	if err != nil {
		logger.Error("scrape failed",
			"error", err,
			"leagues", report.Leagues,
			"teams", report.Teams,
			"teams_failed", report.TeamsFailed,
		)
		return 1
	}

	logger.Info("player table written",
		"records", report.Records,
		"table_path", report.Output.TablePath,
		"snapshot_path", report.Output.SnapshotPath,
		"aborted", report.Aborted,
	)
	return 0
}
