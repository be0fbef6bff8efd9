// Package predict validates caller-supplied samples and scores them with a
// trained pipeline. Callers pass loosely-typed string maps (form fields, JSON
// bodies); validation failures come back as InvalidSampleError, never as a
// model failure.
package predict

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"time"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/couchcryptid/food-freshness/internal/model"
	"github.com/couchcryptid/food-freshness/internal/observability"
	"github.com/go-playground/validator/v10"
)

// Sample is a prediction request keyed by trained-feature column name.
// Numeric features arrive as decimal strings.
type Sample map[string]string

// InvalidSampleError reports a sample that cannot be scored: a missing
// feature or an unparseable numeric value. Categorical values outside the
// training vocabulary are NOT invalid; they encode to no matched category.
type InvalidSampleError struct {
	Field  string
	Reason string
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("invalid sample field %q: %s", e.Field, e.Reason)
}

// sampleInput mirrors the nine trained features for declarative validation.
type sampleInput struct {
	StorageTime      string `validate:"required" column:"storage_time"`
	TimeSinceCooking string `validate:"required" column:"time_since_cooking"`
	StorageCondition string `validate:"required" column:"storage_condition"`
	ContainerType    string `validate:"required" column:"container_type"`
	FoodType         string `validate:"required" column:"food_type"`
	MoistureType     string `validate:"required" column:"moisture_type"`
	CookingMethod    string `validate:"required" column:"cooking_method"`
	Texture          string `validate:"required" column:"texture"`
	Smell            string `validate:"required" column:"smell"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("column")
	})
	return v
}

// Predictor scores validated samples with a loaded pipeline.
type Predictor struct {
	pipeline *model.Pipeline
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewPredictor wraps a trained pipeline with validation and observability.
func NewPredictor(p *model.Pipeline, logger *slog.Logger, metrics *observability.Metrics) *Predictor {
	return &Predictor{pipeline: p, logger: logger, metrics: metrics}
}

// LoadPredictor reads a persisted model artifact and wraps it.
func LoadPredictor(path string, logger *slog.Logger, metrics *observability.Metrics) (*Predictor, error) {
	p, err := model.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("model loaded", "path", path, "run_id", p.RunID, "trained_at", p.TrainedAt)
	return NewPredictor(p, logger, metrics), nil
}

// Pipeline exposes the wrapped artifact, for summary rendering.
func (p *Predictor) Pipeline() *model.Pipeline {
	return p.pipeline
}

// Predict validates a sample and returns its label with per-label
// probabilities summing to 1.
func (p *Predictor) Predict(s Sample) (domain.Label, map[domain.Label]float64, error) {
	start := time.Now()

	record, err := parseSample(s)
	if err != nil {
		p.metrics.PredictErrors.Inc()
		return "", nil, err
	}

	label, probs := p.pipeline.Predict(record)

	p.metrics.PredictionsTotal.WithLabelValues(string(label)).Inc()
	p.metrics.PredictDuration.Observe(time.Since(start).Seconds())
	p.logger.Debug("sample scored", "label", label, "duration", time.Since(start))
	return label, probs, nil
}

// parseSample checks feature presence and numeric ranges and assembles the
// record the encoder consumes.
func parseSample(s Sample) (domain.FoodRecord, error) {
	in := sampleInput{
		StorageTime:      s["storage_time"],
		TimeSinceCooking: s["time_since_cooking"],
		StorageCondition: s["storage_condition"],
		ContainerType:    s["container_type"],
		FoodType:         s["food_type"],
		MoistureType:     s["moisture_type"],
		CookingMethod:    s["cooking_method"],
		Texture:          s["texture"],
		Smell:            s["smell"],
	}
	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return domain.FoodRecord{}, &InvalidSampleError{
				Field:  fieldErrs[0].Field(),
				Reason: "missing or empty",
			}
		}
		return domain.FoodRecord{}, fmt.Errorf("validate sample: %w", err)
	}

	storageTime, err := parseHours("storage_time", in.StorageTime)
	if err != nil {
		return domain.FoodRecord{}, err
	}
	timeSinceCooking, err := parseHours("time_since_cooking", in.TimeSinceCooking)
	if err != nil {
		return domain.FoodRecord{}, err
	}

	return domain.FoodRecord{
		StorageTime:      storageTime,
		TimeSinceCooking: timeSinceCooking,
		StorageCondition: in.StorageCondition,
		ContainerType:    in.ContainerType,
		FoodType:         in.FoodType,
		MoistureType:     in.MoistureType,
		CookingMethod:    in.CookingMethod,
		Texture:          in.Texture,
		Smell:            in.Smell,
	}, nil
}

func parseHours(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &InvalidSampleError{Field: field, Reason: fmt.Sprintf("not a number: %q", raw)}
	}
	if v < 0 {
		return 0, &InvalidSampleError{Field: field, Reason: "must be non-negative"}
	}
	return v, nil
}
