package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/food-freshness/internal/domain"
)

// SchemaVersion is bumped whenever the artifact layout changes
// incompatibly.
const SchemaVersion = 1

// Pipeline bundles the fitted encoder and classifier with training
// metadata. It is the persisted, loadable artifact: the Go analogue of the
// original pickled sklearn pipeline.
type Pipeline struct {
	SchemaVersion int            `json:"schema_version"`
	RunID         string         `json:"run_id"`
	TrainedAt     time.Time      `json:"trained_at"`
	Labels        []domain.Label `json:"labels"`
	Encoder       *Encoder       `json:"encoder"`
	Forest        *Forest        `json:"forest"`
}

// Predict scores one record over the trained-feature subset, returning the
// label and per-label probabilities summing to 1. When the classifier yields
// no probability estimate the result falls back to a one-hot mapping on the
// predicted class.
func (p *Pipeline) Predict(r domain.FoodRecord) (domain.Label, map[domain.Label]float64) {
	v := p.Encoder.Transform(r)

	probs := p.Forest.PredictProba(v)
	if probs == nil {
		probs = make([]float64, len(p.Labels))
		probs[p.Forest.Predict(v)] = 1
	}

	best := 0
	out := make(map[domain.Label]float64, len(p.Labels))
	for i, label := range p.Labels {
		out[label] = probs[i]
		if probs[i] > probs[best] {
			best = i
		}
	}
	return p.Labels[best], out
}

// Save writes the pipeline artifact as indented JSON, creating parent
// directories. The write goes through a temp file and rename so a loadable
// artifact is never half-written.
func (p *Pipeline) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize pipeline: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a pipeline artifact and checks its schema version.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	var p Pipeline
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	if p.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("model %s has schema version %d, want %d", path, p.SchemaVersion, SchemaVersion)
	}
	if p.Encoder == nil || p.Forest == nil || len(p.Labels) == 0 {
		return nil, fmt.Errorf("model %s is incomplete", path)
	}
	return &p, nil
}
