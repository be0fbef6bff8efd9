package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all pipeline settings, populated from environment variables.
// CLI flags may override individual fields per command.
type Config struct {
	DataPath          string
	ModelPath         string
	MetricsReportPath string
	SummaryReportPath string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	SampleCount  int
	Seed         int64
	ForestTrees  int
	TestFraction float64
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	sampleCount, err := parseInt("SAMPLE_COUNT", 6500)
	if err != nil {
		return nil, err
	}

	seed, err := parseInt64("SEED", 42)
	if err != nil {
		return nil, err
	}

	forestTrees, err := parseInt("FOREST_TREES", 100)
	if err != nil {
		return nil, err
	}

	testFraction, err := parseFloat("TEST_FRACTION", 0.2)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:          envOrDefault("DATA_PATH", "data/food_data.csv"),
		ModelPath:         envOrDefault("MODEL_PATH", "models/freshness_model.json"),
		MetricsReportPath: envOrDefault("METRICS_REPORT_PATH", "reports/metrics.txt"),
		SummaryReportPath: envOrDefault("SUMMARY_REPORT_PATH", "reports/model_summary.txt"),
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogFormat:         envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:   shutdownTimeout,
		SampleCount:       sampleCount,
		Seed:              seed,
		ForestTrees:       forestTrees,
		TestFraction:      testFraction,
	}

	if cfg.DataPath == "" {
		return nil, errors.New("DATA_PATH is required")
	}
	if cfg.ModelPath == "" {
		return nil, errors.New("MODEL_PATH is required")
	}
	if cfg.SampleCount <= 0 {
		return nil, errors.New("SAMPLE_COUNT must be positive")
	}
	if cfg.ForestTrees <= 0 {
		return nil, errors.New("FOREST_TREES must be positive")
	}
	if cfg.TestFraction <= 0 || cfg.TestFraction >= 1 {
		return nil, errors.New("TEST_FRACTION must be in (0, 1)")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	v := envOrDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
