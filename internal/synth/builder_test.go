package synth_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/couchcryptid/food-freshness/internal/observability"
	"github.com/couchcryptid/food-freshness/internal/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(seed int64) *synth.Builder {
	return synth.NewBuilder(
		synth.NewGenerator(seed),
		synth.HeuristicLabeler,
		slog.Default(),
		observability.NewMetricsForTesting(),
	)
}

func TestBuild_WritesLabeledDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_data.csv")
	b := newTestBuilder(42)

	sum, err := b.Build(context.Background(), 500, domain.Cities(), path)
	require.NoError(t, err)
	assert.Equal(t, 500, sum.Rows)

	// All three labels present at this sample size.
	assert.Positive(t, sum.LabelCounts[domain.LabelFresh])
	assert.Positive(t, sum.LabelCounts[domain.LabelMedium])
	assert.Positive(t, sum.LabelCounts[domain.LabelSpoiled])

	rows, err := synth.LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, rows, 500)

	for _, lr := range rows {
		for _, col := range domain.TrainedFeatures() {
			switch col {
			case "storage_time", "time_since_cooking":
				assert.GreaterOrEqual(t, lr.Record.NumericValue(col), 0.0)
			default:
				assert.NotEmpty(t, lr.Record.CategoricalValue(col), col)
			}
		}
		assert.Contains(t, domain.Labels, lr.Label)
	}
}

func TestBuild_RoundRobinCities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_data.csv")
	b := newTestBuilder(1)

	_, err := b.Build(context.Background(), 6, []string{"Delhi", "Chennai"}, path)
	require.NoError(t, err)

	rows, err := synth.LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	for i, lr := range rows {
		if i%2 == 0 {
			assert.Equal(t, "Delhi", lr.Record.City)
		} else {
			assert.Equal(t, "Chennai", lr.Record.City)
		}
	}
}

func TestBuild_NoCities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_data.csv")
	b := newTestBuilder(2)

	_, err := b.Build(context.Background(), 10, nil, path)
	require.NoError(t, err)

	rows, err := synth.LoadDataset(path)
	require.NoError(t, err)
	for _, lr := range rows {
		assert.Empty(t, lr.Record.City)
		assert.Empty(t, lr.Record.Region)
		assert.NotNil(t, lr.Record.AmbientTemp)
	}
}

func TestBuild_UnknownCityFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_data.csv")
	b := newTestBuilder(3)

	_, err := b.Build(context.Background(), 5, []string{"Atlantis"}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestBuild_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_data.csv")
	b := newTestBuilder(4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx, 100, nil, path)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuild_LabelsMatchHeuristic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_data.csv")
	b := newTestBuilder(5)

	_, err := b.Build(context.Background(), 100, domain.Cities(), path)
	require.NoError(t, err)

	rows, err := synth.LoadDataset(path)
	require.NoError(t, err)

	// Re-scoring a loaded row reproduces its persisted label.
	for _, lr := range rows {
		assert.Equal(t, lr.Label, domain.ClassifyScore(domain.ScoreRecord(lr.Record)))
	}
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := synth.LoadDataset(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
