package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ScrapeMinDelay != 3*time.Second || cfg.ScrapeMaxDelay != 7*time.Second {
		t.Fatalf("unexpected delay window: %s-%s", cfg.ScrapeMinDelay, cfg.ScrapeMaxDelay)
	}
	if cfg.ScrapeTimeout != 15*time.Second {
		t.Fatalf("unexpected scrape timeout: %s", cfg.ScrapeTimeout)
	}
	if cfg.BudgetSampleSize != 15 {
		t.Fatalf("unexpected budget sample size: %d", cfg.BudgetSampleSize)
	}
	if cfg.BudgetMinMultiplier != 0.3 || cfg.BudgetMaxMultiplier != 2.5 {
		t.Fatalf("unexpected budget band: %v-%v", cfg.BudgetMinMultiplier, cfg.BudgetMaxMultiplier)
	}
	if cfg.SimilarityFeatures != FeatureSetProfile {
		t.Fatalf("unexpected feature set: %s", cfg.SimilarityFeatures)
	}
	if cfg.SnapshotPrefix != "scouted_players" {
		t.Fatalf("unexpected snapshot prefix: %s", cfg.SnapshotPrefix)
	}
	if cfg.ScrapeBlockThreshold != 3 {
		t.Fatalf("unexpected block threshold: %d", cfg.ScrapeBlockThreshold)
	}
	if cfg.PprofEnabled || cfg.PprofAddr != "127.0.0.1:6060" {
		t.Fatalf("unexpected pprof defaults: enabled=%v addr=%s", cfg.PprofEnabled, cfg.PprofAddr)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_ScrapeDelayWindow(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("max below min", func(t *testing.T) {
		t.Setenv("SCRAPE_MIN_DELAY", "5s")
		t.Setenv("SCRAPE_MAX_DELAY", "2s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when SCRAPE_MAX_DELAY < SCRAPE_MIN_DELAY")
		}
	})

	t.Run("custom window", func(t *testing.T) {
		t.Setenv("SCRAPE_MIN_DELAY", "1s")
		t.Setenv("SCRAPE_MAX_DELAY", "2s")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ScrapeMinDelay != time.Second || cfg.ScrapeMaxDelay != 2*time.Second {
			t.Fatalf("unexpected delay window: %s-%s", cfg.ScrapeMinDelay, cfg.ScrapeMaxDelay)
		}
	})
}

func TestLoad_ScrapeBlockThreshold(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("zero rejected", func(t *testing.T) {
		t.Setenv("SCRAPE_BLOCK_THRESHOLD", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for SCRAPE_BLOCK_THRESHOLD=0")
		}
	})

	t.Run("custom", func(t *testing.T) {
		t.Setenv("SCRAPE_BLOCK_THRESHOLD", "5")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ScrapeBlockThreshold != 5 {
			t.Fatalf("unexpected block threshold: %d", cfg.ScrapeBlockThreshold)
		}
	})
}

func TestLoad_BudgetPolicyParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("invalid float", func(t *testing.T) {
		t.Setenv("BUDGET_MIN_MULTIPLIER", "cheap")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid BUDGET_MIN_MULTIPLIER")
		}
	})

	t.Run("inverted band", func(t *testing.T) {
		t.Setenv("BUDGET_MIN_MULTIPLIER", "3")
		t.Setenv("BUDGET_MAX_MULTIPLIER", "1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for inverted budget band")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("BUDGET_SAMPLE_SIZE", "11")
		t.Setenv("BUDGET_MIN_MULTIPLIER", "0.5")
		t.Setenv("BUDGET_MAX_MULTIPLIER", "2")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.BudgetSampleSize != 11 || cfg.BudgetMinMultiplier != 0.5 || cfg.BudgetMaxMultiplier != 2 {
			t.Fatalf("unexpected budget policy: %+v", cfg)
		}
	})
}

func TestLoad_SimilarityFeatures(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Setenv("SIMILARITY_FEATURES", " Performance ")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SimilarityFeatures != FeatureSetPerformance {
		t.Fatalf("unexpected feature set: %s", cfg.SimilarityFeatures)
	}

	t.Setenv("SIMILARITY_FEATURES", "vibes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown SIMILARITY_FEATURES")
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:8501 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
	}
	if cfg.CORSAllowedOrigins[1] != "http://localhost:8501" {
		t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
	}
}
