package model

import (
	"math"
	"math/rand"
)

// ForestConfig controls random forest training. Zero values take defaults
// matching the original calibration: 100 trees, depth 12, min split 2.
type ForestConfig struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	Seed            int64
}

// forestParams is the resolved per-tree configuration.
type forestParams struct {
	maxDepth        int
	minSamplesSplit int
	maxFeatures     int
}

func (c ForestConfig) withDefaults() ForestConfig {
	if c.Trees <= 0 {
		c.Trees = 100
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 12
	}
	if c.MinSamplesSplit <= 0 {
		c.MinSamplesSplit = 2
	}
	return c
}

// Forest is a bootstrap-aggregated ensemble of CART trees with sqrt feature
// subsampling at each split.
type Forest struct {
	NClasses int    `json:"n_classes"`
	Trees    []Tree `json:"trees"`
}

// FitForest trains cfg.Trees trees on bootstrap resamples of x/y.
func FitForest(x [][]float64, y []int, nClasses int, cfg ForestConfig) *Forest {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))

	width := len(x[0])
	params := forestParams{
		maxDepth:        cfg.MaxDepth,
		minSamplesSplit: cfg.MinSamplesSplit,
		maxFeatures:     max(1, int(math.Sqrt(float64(width)))),
	}

	f := &Forest{NClasses: nClasses, Trees: make([]Tree, 0, cfg.Trees)}
	n := len(x)
	for t := 0; t < cfg.Trees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		f.Trees = append(f.Trees, growTree(x, y, sample, nClasses, params, rng))
	}
	return f
}

// PredictProba averages the per-tree leaf distributions into class
// probabilities summing to 1. Returns nil for an empty ensemble.
func (f *Forest) PredictProba(v []float64) []float64 {
	if len(f.Trees) == 0 {
		return nil
	}

	probs := make([]float64, f.NClasses)
	for i := range f.Trees {
		counts := f.Trees[i].predictCounts(v)
		total := 0
		for _, c := range counts {
			total += c
		}
		if total == 0 {
			continue
		}
		for c, count := range counts {
			probs[c] += float64(count) / float64(total)
		}
	}

	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if sum == 0 {
		return nil
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// Predict returns the majority-probability class index.
func (f *Forest) Predict(v []float64) int {
	probs := f.PredictProba(v)
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return best
}

// FeatureImportances averages the per-tree gini decreases and normalizes
// them to sum to 1 over the encoded feature space.
func (f *Forest) FeatureImportances(width int) []float64 {
	out := make([]float64, width)
	for i := range f.Trees {
		for j, imp := range f.Trees[i].Importances {
			if j < width {
				out[j] += imp
			}
		}
	}

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if sum > 0 {
		for i := range out {
			out[i] /= sum
		}
	}
	return out
}
