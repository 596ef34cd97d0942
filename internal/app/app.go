package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/garuda-scout/external/transfermarkt"
	"github.com/riskibarqy/garuda-scout/internal/config"
	"github.com/riskibarqy/garuda-scout/internal/domain/scouting"
	"github.com/riskibarqy/garuda-scout/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/garuda-scout/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/garuda-scout/internal/interfaces/httpapi"
	"github.com/riskibarqy/garuda-scout/internal/platform/cache"
	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
	"github.com/riskibarqy/garuda-scout/internal/usecase"
)

// TableStore returns the CSV-backed player table configured by cfg.
func TableStore(cfg config.Config, logger *logging.Logger) *csvfile.Store {
	return csvfile.NewStore(csvfile.Config{
		ProcessedDir:   cfg.DataProcessedDir,
		RawDir:         cfg.DataRawDir,
		TableFileName:  cfg.TableFileName,
		SnapshotPrefix: cfg.SnapshotPrefix,
	}, logger)
}

func NewScrapeService(cfg config.Config, logger *logging.Logger) (*usecase.ScrapeService, error) {
	targets, err := config.LoadLeagueTargets(cfg.LeagueTargetsFile)
	if err != nil {
		return nil, fmt.Errorf("load league targets: %w", err)
	}

	client := transfermarkt.NewClient(transfermarkt.ClientConfig{
		BaseURL:          cfg.ScrapeBaseURL,
		MinDelay:         cfg.ScrapeMinDelay,
		MaxDelay:         cfg.ScrapeMaxDelay,
		Timeout:          cfg.ScrapeTimeout,
		CloudflareBypass: cfg.ScrapeCloudflare,
		Logger:           logger,
	})

	return usecase.NewScrapeService(
		transfermarkt.NewSource(client),
		TableStore(cfg, logger),
		targets,
		usecase.ScrapeOptions{BlockThreshold: cfg.ScrapeBlockThreshold},
		logger,
	), nil
}

// NewScoutService loads the persisted table once and serves queries from memory.
func NewScoutService(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.ScoutService, error) {
	features, ok := scouting.FeatureSetByName(cfg.SimilarityFeatures)
	if !ok {
		return nil, fmt.Errorf("unknown similarity feature set %q", cfg.SimilarityFeatures)
	}

	repo, err := memory.LoadPlayerRepository(ctx, TableStore(cfg, logger))
	if err != nil {
		return nil, fmt.Errorf("load player table: %w", err)
	}
	logger.InfoContext(ctx, "player table loaded", "rows", repo.Len(), "features", cfg.SimilarityFeatures)

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	return usecase.NewScoutService(repo, usecase.ScoutConfig{
		Policy: scouting.BudgetPolicy{
			SampleSize:      cfg.BudgetSampleSize,
			LowerMultiplier: cfg.BudgetMinMultiplier,
			UpperMultiplier: cfg.BudgetMaxMultiplier,
			DefaultBudget:   cfg.BudgetDefault,
		},
		Features: features,
		Workers:  cfg.ReportWorkers,
		Cache:    store,
	}, logger), nil
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	scoutSvc, err := NewScoutService(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(scoutSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
