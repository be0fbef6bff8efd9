package synth

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/food-freshness/internal/domain"
)

// datasetHeader is the full column set: display-only context first, then the
// nine trained features, then the label. Downstream training selects columns
// by name, never by position.
var datasetHeader = []string{
	"city", "region", "ambient_temp", "humidity", "generated_at",
	"storage_time", "time_since_cooking",
	"storage_condition", "container_type", "food_type",
	"moisture_type", "cooking_method", "texture", "smell",
	"freshness_level",
}

// WriteDataset persists labeled records as CSV, creating parent directories.
func WriteDataset(path string, rows []domain.LabeledRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(datasetHeader); err != nil {
		return err
	}

	for i := range rows {
		if err := w.Write(datasetRow(rows[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func datasetRow(lr domain.LabeledRecord) []string {
	r := lr.Record
	return []string{
		r.City,
		r.Region,
		formatOptionalFloat(r.AmbientTemp),
		formatOptionalFloat(r.Humidity),
		formatTime(r.GeneratedAt),
		strconv.FormatFloat(r.StorageTime, 'f', -1, 64),
		strconv.FormatFloat(r.TimeSinceCooking, 'f', -1, 64),
		r.StorageCondition,
		r.ContainerType,
		r.FoodType,
		r.MoistureType,
		r.CookingMethod,
		r.Texture,
		r.Smell,
		string(lr.Label),
	}
}

// LoadDataset reads a dataset CSV back by header name. Rows with an empty
// trained-feature cell or an unrecognized label are rejected.
func LoadDataset(path string) ([]domain.LabeledRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(all) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	colIdx := make(map[string]int, len(all[0]))
	for i, h := range all[0] {
		colIdx[h] = i
	}
	for _, col := range append(domain.TrainedFeatures(), "freshness_level") {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("dataset %s missing column %q", path, col)
		}
	}

	rows := make([]domain.LabeledRecord, 0, len(all)-1)
	for i, row := range all[1:] {
		lr, err := parseDatasetRow(row, colIdx)
		if err != nil {
			return nil, fmt.Errorf("dataset %s line %d: %w", path, i+2, err)
		}
		rows = append(rows, lr)
	}
	return rows, nil
}

func parseDatasetRow(row []string, colIdx map[string]int) (domain.LabeledRecord, error) {
	get := func(col string) string {
		i, ok := colIdx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, col := range domain.TrainedFeatures() {
		if get(col) == "" {
			return domain.LabeledRecord{}, fmt.Errorf("empty %s", col)
		}
	}

	storageTime, err := strconv.ParseFloat(get("storage_time"), 64)
	if err != nil {
		return domain.LabeledRecord{}, fmt.Errorf("parse storage_time: %w", err)
	}
	timeSinceCooking, err := strconv.ParseFloat(get("time_since_cooking"), 64)
	if err != nil {
		return domain.LabeledRecord{}, fmt.Errorf("parse time_since_cooking: %w", err)
	}

	label := domain.Label(get("freshness_level"))
	switch label {
	case domain.LabelFresh, domain.LabelMedium, domain.LabelSpoiled:
	default:
		return domain.LabeledRecord{}, fmt.Errorf("unrecognized label %q", get("freshness_level"))
	}

	rec := domain.FoodRecord{
		StorageTime:      storageTime,
		TimeSinceCooking: timeSinceCooking,
		StorageCondition: get("storage_condition"),
		ContainerType:    get("container_type"),
		FoodType:         get("food_type"),
		MoistureType:     get("moisture_type"),
		CookingMethod:    get("cooking_method"),
		Texture:          get("texture"),
		Smell:            get("smell"),
		City:             get("city"),
		Region:           get("region"),
	}
	rec.AmbientTemp = parseOptionalFloat(get("ambient_temp"))
	rec.Humidity = parseOptionalFloat(get("humidity"))
	if ts := get("generated_at"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.GeneratedAt = parsed
		}
	}

	return domain.LabeledRecord{Record: rec, Label: label}, nil
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
