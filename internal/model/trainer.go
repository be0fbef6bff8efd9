// Package model fits and persists the classification pipeline: passthrough
// numeric features plus one-hot categoricals feeding a random forest that
// approximates the heuristic labels from examples.
package model

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"time"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/couchcryptid/food-freshness/internal/synth"
	"github.com/oklog/ulid/v2"
)

// InsufficientDataError reports a dataset unusable for training: missing,
// empty, or carrying fewer than two distinct labels. Training halts without
// writing an artifact; the caller must regenerate data.
type InsufficientDataError struct {
	Path   string
	Reason string
}

func (e *InsufficientDataError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("insufficient training data: %s", e.Reason)
	}
	return fmt.Sprintf("insufficient training data in %s: %s", e.Path, e.Reason)
}

// TrainOptions controls a training run. Zero values take defaults.
type TrainOptions struct {
	Forest       ForestConfig
	TestFraction float64 // held-out share, default 0.2
	Seed         int64   // split shuffle seed
}

// Result bundles the fitted pipeline with its held-out evaluation.
type Result struct {
	Pipeline *Pipeline
	Report   Report
}

// TrainCSV loads a dataset file and trains on it. A missing or unreadable
// file is an InsufficientDataError.
func TrainCSV(path string, opts TrainOptions, logger *slog.Logger) (*Result, error) {
	rows, err := synth.LoadDataset(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InsufficientDataError{Path: path, Reason: "dataset file not found"}
		}
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	res, err := Train(rows, opts, logger)
	if err != nil {
		var insufficient *InsufficientDataError
		if errors.As(err, &insufficient) {
			insufficient.Path = path
		}
		return nil, err
	}
	return res, nil
}

// Train fits the preprocessing + forest pipeline on the trained-feature
// subset of rows, evaluating on a stratified held-out split.
func Train(rows []domain.LabeledRecord, opts TrainOptions, logger *slog.Logger) (*Result, error) {
	if len(rows) == 0 {
		return nil, &InsufficientDataError{Reason: "dataset is empty"}
	}

	labels := distinctLabels(rows)
	if len(labels) < 2 {
		return nil, &InsufficientDataError{Reason: fmt.Sprintf("only %d distinct label(s)", len(labels))}
	}

	if opts.TestFraction <= 0 || opts.TestFraction >= 1 {
		opts.TestFraction = 0.2
	}

	trainIdx, testIdx := stratifiedSplit(rows, labels, opts.TestFraction, opts.Seed)

	trainRecords := make([]domain.FoodRecord, len(trainIdx))
	for i, idx := range trainIdx {
		trainRecords[i] = rows[idx].Record
	}
	encoder := FitEncoder(trainRecords)

	labelIndex := make(map[domain.Label]int, len(labels))
	for i, l := range labels {
		labelIndex[l] = i
	}

	x := make([][]float64, len(trainIdx))
	y := make([]int, len(trainIdx))
	for i, idx := range trainIdx {
		x[i] = encoder.Transform(rows[idx].Record)
		y[i] = labelIndex[rows[idx].Label]
	}

	start := time.Now()
	forest := FitForest(x, y, len(labels), opts.Forest)

	trainedAt := domain.Now()
	p := &Pipeline{
		SchemaVersion: SchemaVersion,
		RunID:         newRunID(trainedAt),
		TrainedAt:     trainedAt,
		Labels:        labels,
		Encoder:       encoder,
		Forest:        forest,
	}

	yTrue := make([]int, len(testIdx))
	yPred := make([]int, len(testIdx))
	for i, idx := range testIdx {
		yTrue[i] = labelIndex[rows[idx].Label]
		yPred[i] = forest.Predict(encoder.Transform(rows[idx].Record))
	}

	report := evaluate(yTrue, yPred, labels)
	report.RunID = p.RunID
	report.TrainedAt = trainedAt
	report.TrainRows = len(trainIdx)

	logger.Info("training complete",
		"run_id", p.RunID,
		"train_rows", report.TrainRows,
		"test_rows", report.TestRows,
		"accuracy", report.Accuracy,
		"trees", len(forest.Trees),
		"fit_duration", time.Since(start),
	)

	return &Result{Pipeline: p, Report: report}, nil
}

// distinctLabels returns the labels present in rows, in ordinal order.
func distinctLabels(rows []domain.LabeledRecord) []domain.Label {
	present := make(map[domain.Label]bool, len(domain.Labels))
	for _, lr := range rows {
		present[lr.Label] = true
	}
	var out []domain.Label
	for _, l := range domain.Labels {
		if present[l] {
			out = append(out, l)
		}
	}
	return out
}

// stratifiedSplit shuffles row indices per class and holds out testFraction
// of each, keeping at least one training row per class.
func stratifiedSplit(rows []domain.LabeledRecord, labels []domain.Label, testFraction float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))

	byLabel := make(map[domain.Label][]int, len(labels))
	for i, lr := range rows {
		byLabel[lr.Label] = append(byLabel[lr.Label], i)
	}

	for _, label := range labels {
		indices := byLabel[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		nTest := int(float64(len(indices)) * testFraction)
		if nTest >= len(indices) {
			nTest = len(indices) - 1
		}
		test = append(test, indices[:nTest]...)
		train = append(train, indices[nTest:]...)
	}
	return train, test
}

func newRunID(ts time.Time) string {
	return ulid.MustNew(ulid.Timestamp(ts), ulid.DefaultEntropy()).String()
}
