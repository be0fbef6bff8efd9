package domain

import "time"

// Label is the ordinal freshness class assigned to a food-storage scenario.
type Label string

const (
	LabelFresh   Label = "Fresh"
	LabelMedium  Label = "Medium"
	LabelSpoiled Label = "Spoiled"
)

// Labels lists the classes in ordinal order, freshest first.
var Labels = []Label{LabelFresh, LabelMedium, LabelSpoiled}

// Categorical feature domains. The generator, the trained encoder, and the
// form UI dropdowns all draw from these lists; values outside a domain are
// tolerated at prediction time and encode to no matched category.
var (
	StorageConditions = []string{"refrigerated", "outside"}
	ContainerTypes    = []string{"open", "closed", "metal", "plastic"}
	FoodTypes         = []string{"Vegetarian", "Non-Vegetarian", "Seafood", "Dairy", "Bakery"}
	MoistureTypes     = []string{"dry", "semi-wet", "wet"}
	CookingMethods    = []string{"fried", "boiled", "steamed", "baked"}
	Textures          = []string{"soft", "firm", "crispy", "soggy", "dry", "moist"}
	Smells            = []string{"neutral", "slight", "strong", "sour", "fermented"}
)

// Trained-feature column names in the order the model consumes them:
// numeric passthrough first, then one-hot categoricals.
var (
	NumericFeatures     = []string{"storage_time", "time_since_cooking"}
	CategoricalFeatures = []string{
		"storage_condition", "container_type", "food_type",
		"moisture_type", "cooking_method", "texture", "smell",
	}
)

// TrainedFeatures returns all nine trained-feature column names.
func TrainedFeatures() []string {
	out := make([]string, 0, len(NumericFeatures)+len(CategoricalFeatures))
	out = append(out, NumericFeatures...)
	out = append(out, CategoricalFeatures...)
	return out
}

// FoodRecord is one cooked-food storage scenario, either synthesized or
// supplied by a prediction caller.
//
// City, Region, AmbientTemp and Humidity are display-only context captured
// at generation time. They bias the synthetic climate draw and feed the
// scorer, but must never reach the trained feature set. Records are
// ephemeral: created per generation call or prediction request and never
// mutated afterwards.
type FoodRecord struct {
	StorageTime      float64 `json:"storage_time"`       // hours in storage
	TimeSinceCooking float64 `json:"time_since_cooking"` // hours left out before storing
	StorageCondition string  `json:"storage_condition"`
	ContainerType    string  `json:"container_type"`
	FoodType         string  `json:"food_type"`
	MoistureType     string  `json:"moisture_type"`
	CookingMethod    string  `json:"cooking_method"`
	Texture          string  `json:"texture"`
	Smell            string  `json:"smell"`

	City        string   `json:"city,omitempty"`
	Region      string   `json:"region,omitempty"`
	AmbientTemp *float64 `json:"ambient_temp,omitempty"` // °C, generation-time only
	Humidity    *float64 `json:"humidity,omitempty"`     // %, generation-time only

	GeneratedAt time.Time `json:"generated_at,omitempty"`
}

// NumericValue returns the record's value for a numeric feature column.
// Unknown columns return 0.
func (r FoodRecord) NumericValue(column string) float64 {
	switch column {
	case "storage_time":
		return r.StorageTime
	case "time_since_cooking":
		return r.TimeSinceCooking
	}
	return 0
}

// CategoricalValue returns the record's value for a categorical feature
// column. Unknown columns return "".
func (r FoodRecord) CategoricalValue(column string) string {
	switch column {
	case "storage_condition":
		return r.StorageCondition
	case "container_type":
		return r.ContainerType
	case "food_type":
		return r.FoodType
	case "moisture_type":
		return r.MoistureType
	case "cooking_method":
		return r.CookingMethod
	case "texture":
		return r.Texture
	case "smell":
		return r.Smell
	}
	return ""
}

// LabeledRecord pairs a record with its heuristic ground-truth label.
type LabeledRecord struct {
	Record FoodRecord
	Label  Label
}
