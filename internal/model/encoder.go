package model

import (
	"sort"

	"github.com/couchcryptid/food-freshness/internal/domain"
)

// Encoder maps the nine trained features onto a dense numeric vector: the
// two numeric columns pass through unchanged, the seven categorical columns
// one-hot encode. A category unseen during fitting encodes to all zeros for
// its column — unknown values degrade, they never fail.
type Encoder struct {
	Numeric     []string            `json:"numeric"`
	Categorical []string            `json:"categorical"`
	Categories  map[string][]string `json:"categories"` // column → sorted fitted values
}

// FitEncoder collects the category vocabulary per categorical column from
// the training records.
func FitEncoder(records []domain.FoodRecord) *Encoder {
	e := &Encoder{
		Numeric:     append([]string(nil), domain.NumericFeatures...),
		Categorical: append([]string(nil), domain.CategoricalFeatures...),
		Categories:  make(map[string][]string, len(domain.CategoricalFeatures)),
	}

	for _, col := range e.Categorical {
		seen := make(map[string]struct{})
		for _, r := range records {
			if v := r.CategoricalValue(col); v != "" {
				seen[v] = struct{}{}
			}
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)
		e.Categories[col] = values
	}
	return e
}

// Width returns the encoded vector length.
func (e *Encoder) Width() int {
	w := len(e.Numeric)
	for _, col := range e.Categorical {
		w += len(e.Categories[col])
	}
	return w
}

// FeatureNames reconstructs the expanded column names ("storage_time",
// "smell=sour", ...), index-aligned with Transform output.
func (e *Encoder) FeatureNames() []string {
	names := make([]string, 0, e.Width())
	names = append(names, e.Numeric...)
	for _, col := range e.Categorical {
		for _, v := range e.Categories[col] {
			names = append(names, col+"="+v)
		}
	}
	return names
}

// Transform encodes one record into a feature vector.
func (e *Encoder) Transform(r domain.FoodRecord) []float64 {
	v := make([]float64, 0, e.Width())
	for _, col := range e.Numeric {
		v = append(v, r.NumericValue(col))
	}
	for _, col := range e.Categorical {
		value := r.CategoricalValue(col)
		for _, cat := range e.Categories[col] {
			if cat == value {
				v = append(v, 1)
			} else {
				v = append(v, 0)
			}
		}
	}
	return v
}
