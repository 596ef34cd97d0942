package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
)

// Config stores runtime configuration for the scraper, CLI and query API.
type Config struct {
	AppEnv               string
	ServiceName          string
	ServiceVersion       string
	HTTPAddr             string
	ReadTimeout          time.Duration
	WriteTimeout         time.Duration
	CORSAllowedOrigins   []string
	CacheEnabled         bool
	CacheTTL             time.Duration
	ScrapeBaseURL        string
	ScrapeMinDelay       time.Duration
	ScrapeMaxDelay       time.Duration
	ScrapeTimeout        time.Duration
	ScrapeCloudflare     bool
	ScrapeBlockThreshold int
	LeagueTargetsFile    string
	DataProcessedDir     string
	DataRawDir           string
	TableFileName        string
	SnapshotPrefix       string
	BudgetSampleSize     int
	BudgetMinMultiplier  float64
	BudgetMaxMultiplier  float64
	BudgetDefault        float64
	SimilarityFeatures   string
	ReportWorkers        int
	UptraceEnabled       bool
	UptraceDSN           string
	UptraceLogsEnabled   bool
	PprofEnabled         bool
	PprofAddr            string
	LogLevel             logging.Level
}

const (
	FeatureSetProfile     = "profile"
	FeatureSetPerformance = "performance"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	scrapeMinDelay, err := time.ParseDuration(getEnv("SCRAPE_MIN_DELAY", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_MIN_DELAY: %w", err)
	}
	scrapeMaxDelay, err := time.ParseDuration(getEnv("SCRAPE_MAX_DELAY", "7s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_MAX_DELAY: %w", err)
	}
	if scrapeMinDelay < 0 {
		return Config{}, fmt.Errorf("SCRAPE_MIN_DELAY must be >= 0")
	}
	if scrapeMaxDelay < scrapeMinDelay {
		return Config{}, fmt.Errorf("SCRAPE_MAX_DELAY must be >= SCRAPE_MIN_DELAY")
	}
	scrapeTimeout, err := time.ParseDuration(getEnv("SCRAPE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_TIMEOUT: %w", err)
	}
	if scrapeTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPE_TIMEOUT must be > 0")
	}
	scrapeCloudflare, err := strconv.ParseBool(getEnv("SCRAPE_CLOUDFLARE_BYPASS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_CLOUDFLARE_BYPASS: %w", err)
	}
	scrapeBlockThreshold, err := getEnvAsInt("SCRAPE_BLOCK_THRESHOLD", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_BLOCK_THRESHOLD: %w", err)
	}
	if scrapeBlockThreshold < 1 {
		return Config{}, fmt.Errorf("SCRAPE_BLOCK_THRESHOLD must be >= 1")
	}

	budgetSampleSize, err := getEnvAsInt("BUDGET_SAMPLE_SIZE", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse BUDGET_SAMPLE_SIZE: %w", err)
	}
	if budgetSampleSize < 1 {
		return Config{}, fmt.Errorf("BUDGET_SAMPLE_SIZE must be >= 1")
	}
	budgetMinMultiplier, err := getEnvAsFloat("BUDGET_MIN_MULTIPLIER", 0.3)
	if err != nil {
		return Config{}, fmt.Errorf("parse BUDGET_MIN_MULTIPLIER: %w", err)
	}
	budgetMaxMultiplier, err := getEnvAsFloat("BUDGET_MAX_MULTIPLIER", 2.5)
	if err != nil {
		return Config{}, fmt.Errorf("parse BUDGET_MAX_MULTIPLIER: %w", err)
	}
	if budgetMinMultiplier < 0 || budgetMaxMultiplier < budgetMinMultiplier {
		return Config{}, fmt.Errorf("BUDGET_MIN_MULTIPLIER must be >= 0 and <= BUDGET_MAX_MULTIPLIER")
	}
	budgetDefault, err := getEnvAsFloat("BUDGET_DEFAULT", 1_000_000)
	if err != nil {
		return Config{}, fmt.Errorf("parse BUDGET_DEFAULT: %w", err)
	}
	if budgetDefault <= 0 {
		return Config{}, fmt.Errorf("BUDGET_DEFAULT must be > 0")
	}

	similarityFeatures, err := parseFeatureSet(getEnv("SIMILARITY_FEATURES", FeatureSetProfile))
	if err != nil {
		return Config{}, err
	}

	reportWorkers, err := getEnvAsInt("REPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_WORKERS: %w", err)
	}
	if reportWorkers < 1 {
		return Config{}, fmt.Errorf("REPORT_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:               appEnv,
		ServiceName:          getEnv("APP_SERVICE_NAME", "garuda-scout"),
		ServiceVersion:       getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:             getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:          readTimeout,
		WriteTimeout:         writeTimeout,
		CORSAllowedOrigins:   splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheEnabled:         cacheEnabled,
		CacheTTL:             cacheTTL,
		ScrapeBaseURL:        strings.TrimRight(strings.TrimSpace(getEnv("SCRAPE_BASE_URL", "https://www.transfermarkt.co.id")), "/"),
		ScrapeMinDelay:       scrapeMinDelay,
		ScrapeMaxDelay:       scrapeMaxDelay,
		ScrapeTimeout:        scrapeTimeout,
		ScrapeCloudflare:     scrapeCloudflare,
		ScrapeBlockThreshold: scrapeBlockThreshold,
		LeagueTargetsFile:    strings.TrimSpace(getEnv("LEAGUE_TARGETS_FILE", "configs/leagues.json5")),
		DataProcessedDir:     strings.TrimSpace(getEnv("DATA_PROCESSED_DIR", "data/processed")),
		DataRawDir:           strings.TrimSpace(getEnv("DATA_RAW_DIR", "data/raw")),
		TableFileName:        strings.TrimSpace(getEnv("TABLE_FILE_NAME", "master_player_db.csv")),
		SnapshotPrefix:       strings.TrimSpace(getEnv("SNAPSHOT_PREFIX", "scouted_players")),
		BudgetSampleSize:     budgetSampleSize,
		BudgetMinMultiplier:  budgetMinMultiplier,
		BudgetMaxMultiplier:  budgetMaxMultiplier,
		BudgetDefault:        budgetDefault,
		SimilarityFeatures:   similarityFeatures,
		ReportWorkers:        reportWorkers,
		UptraceEnabled:       uptraceEnabled,
		UptraceDSN:           uptraceDSN,
		UptraceLogsEnabled:   uptraceLogsEnabled,
		PprofEnabled:         pprofEnabled,
		PprofAddr:            getEnv("PPROF_ADDR", "127.0.0.1:6060"),
		LogLevel:             parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.TableFileName == "" {
		return Config{}, fmt.Errorf("TABLE_FILE_NAME cannot be empty")
	}

	return cfg, nil
}

func parseFeatureSet(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case FeatureSetProfile, FeatureSetPerformance:
		return value, nil
	default:
		return "", fmt.Errorf("invalid SIMILARITY_FEATURES %q: valid values are %s, %s", v, FeatureSetProfile, FeatureSetPerformance)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
