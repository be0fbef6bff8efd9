package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/food_data.csv", cfg.DataPath)
	assert.Equal(t, "models/freshness_model.json", cfg.ModelPath)
	assert.Equal(t, "reports/metrics.txt", cfg.MetricsReportPath)
	assert.Equal(t, "reports/model_summary.txt", cfg.SummaryReportPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 6500, cfg.SampleCount)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 100, cfg.ForestTrees)
	assert.Equal(t, 0.2, cfg.TestFraction)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_PATH", "/tmp/food.csv")
	t.Setenv("MODEL_PATH", "/tmp/model.json")
	t.Setenv("METRICS_REPORT_PATH", "/tmp/metrics.txt")
	t.Setenv("SUMMARY_REPORT_PATH", "/tmp/summary.txt")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SAMPLE_COUNT", "1000")
	t.Setenv("SEED", "7")
	t.Setenv("FOREST_TREES", "25")
	t.Setenv("TEST_FRACTION", "0.3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/food.csv", cfg.DataPath)
	assert.Equal(t, "/tmp/model.json", cfg.ModelPath)
	assert.Equal(t, "/tmp/metrics.txt", cfg.MetricsReportPath)
	assert.Equal(t, "/tmp/summary.txt", cfg.SummaryReportPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 1000, cfg.SampleCount)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 25, cfg.ForestTrees)
	assert.Equal(t, 0.3, cfg.TestFraction)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidSampleCount(t *testing.T) {
	t.Setenv("SAMPLE_COUNT", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SAMPLE_COUNT")
}

func TestLoad_InvalidTestFraction(t *testing.T) {
	t.Setenv("TEST_FRACTION", "1.5")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_FRACTION")
}

func TestLoad_InvalidSeed(t *testing.T) {
	t.Setenv("SEED", "abc")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED")
}
