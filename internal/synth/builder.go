// Package synth fabricates the labeled synthetic dataset: uniform sampling
// over the feature domains, climate-biased ambient draws, and heuristic
// ground-truth labeling, persisted as CSV for the trainer.
package synth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/couchcryptid/food-freshness/internal/observability"
)

// RecordSource yields synthetic records.
type RecordSource interface {
	Generate(city string) (domain.FoodRecord, error)
}

// Labeler assigns the ground-truth label for a record.
type Labeler func(domain.FoodRecord) domain.Label

// HeuristicLabeler scores a record and classifies the result. This is the
// sole authority for synthetic ground truth.
func HeuristicLabeler(r domain.FoodRecord) domain.Label {
	return domain.ClassifyScore(domain.ScoreRecord(r))
}

// Builder assembles a labeled synthetic dataset: a sequential
// generate-label-persist batch.
type Builder struct {
	source  RecordSource
	label   Labeler
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewBuilder creates a Builder with the given stages and observability.
func NewBuilder(source RecordSource, label Labeler, logger *slog.Logger, metrics *observability.Metrics) *Builder {
	return &Builder{
		source:  source,
		label:   label,
		logger:  logger,
		metrics: metrics,
	}
}

// Summary reports what a build produced.
type Summary struct {
	Rows        int
	LabelCounts map[domain.Label]int
}

// Build generates n labeled rows and writes them as CSV to path. Cities are
// assigned round-robin over the provided list; an empty list disables the
// climate bias entirely.
func (b *Builder) Build(ctx context.Context, n int, cities []string, path string) (Summary, error) {
	sum := Summary{LabelCounts: make(map[domain.Label]int)}

	rows := make([]domain.LabeledRecord, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}

		city := ""
		if len(cities) > 0 {
			city = cities[i%len(cities)]
		}

		rec, err := b.source.Generate(city)
		if err != nil {
			return Summary{}, fmt.Errorf("generate row %d: %w", i, err)
		}

		label := b.label(rec)
		rows = append(rows, domain.LabeledRecord{Record: rec, Label: label})
		sum.LabelCounts[label]++
	}
	sum.Rows = len(rows)

	if err := WriteDataset(path, rows); err != nil {
		return Summary{}, fmt.Errorf("write dataset: %w", err)
	}

	b.metrics.RecordsGenerated.Add(float64(sum.Rows))
	b.logger.Info("dataset written",
		"path", path,
		"rows", sum.Rows,
		"fresh", sum.LabelCounts[domain.LabelFresh],
		"medium", sum.LabelCounts[domain.LabelMedium],
		"spoiled", sum.LabelCounts[domain.LabelSpoiled],
	)
	return sum, nil
}
