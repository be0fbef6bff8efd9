package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableDataset builds two well-separated clusters in 2D: class 0 near
// the origin, class 1 near (10, 10).
func separableDataset(n int, seed int64) (x [][]float64, y []int) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		class := i % 2
		offset := float64(class) * 10
		x = append(x, []float64{offset + rng.Float64(), offset + rng.Float64()})
		y = append(y, class)
	}
	return x, y
}

func TestFitForest_LearnsSeparableData(t *testing.T) {
	x, y := separableDataset(200, 1)
	f := FitForest(x, y, 2, ForestConfig{Trees: 20, Seed: 1})

	assert.Equal(t, 0, f.Predict([]float64{0.5, 0.5}))
	assert.Equal(t, 1, f.Predict([]float64{10.5, 10.5}))
}

func TestPredictProba_SumsToOne(t *testing.T) {
	x, y := separableDataset(100, 2)
	f := FitForest(x, y, 2, ForestConfig{Trees: 15, Seed: 2})

	for _, v := range [][]float64{{0, 0}, {5, 5}, {10, 10}} {
		probs := f.PredictProba(v)
		require.Len(t, probs, 2)
		sum := 0.0
		for _, p := range probs {
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestPredictProba_EmptyForest(t *testing.T) {
	f := &Forest{NClasses: 2}
	assert.Nil(t, f.PredictProba([]float64{1, 2}))
}

func TestFitForest_DeterministicWithSeed(t *testing.T) {
	x, y := separableDataset(100, 3)

	a := FitForest(x, y, 2, ForestConfig{Trees: 10, Seed: 7})
	b := FitForest(x, y, 2, ForestConfig{Trees: 10, Seed: 7})

	probe := []float64{4.8, 5.2}
	assert.Equal(t, a.PredictProba(probe), b.PredictProba(probe))
}

func TestFeatureImportances_NormalizedOverInformativeFeatures(t *testing.T) {
	// Only the first feature carries signal; the second is constant.
	rng := rand.New(rand.NewSource(4))
	var x [][]float64
	var y []int
	for i := 0; i < 200; i++ {
		class := i % 2
		x = append(x, []float64{float64(class)*10 + rng.Float64(), 1.0})
		y = append(y, class)
	}

	f := FitForest(x, y, 2, ForestConfig{Trees: 20, Seed: 4})
	imp := f.FeatureImportances(2)
	require.Len(t, imp, 2)

	sum := imp[0] + imp[1]
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, imp[0], imp[1])
	assert.InDelta(t, 0.0, imp[1], 1e-9)
}

func TestGini(t *testing.T) {
	assert.InDelta(t, 0.0, gini([]int{10, 0}, 10), 1e-9)
	assert.InDelta(t, 0.5, gini([]int{5, 5}, 10), 1e-9)
	assert.InDelta(t, 1-1.0/3.0, gini([]int{4, 4, 4}, 12), 1e-9)
	assert.Zero(t, gini(nil, 0))
}
