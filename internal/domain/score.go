package domain

// Label thresholds. Scores below freshMax classify as Fresh, below mediumMax
// as Medium, everything else as Spoiled. Calibrated so uniform sampling over
// the generation ranges yields a reasonable three-way class balance.
const (
	freshMax  = -0.8
	mediumMax = 1.8
)

// Contribution is one named term of the spoilage score.
type Contribution struct {
	Rule  string
	Value float64
}

// Contributions returns the ordered per-rule breakdown of a record's
// spoilage score. Each rule is monotonic in its driving factor; the ambient
// terms only apply when the record carries generation-time climate context.
func Contributions(r FoodRecord) []Contribution {
	c := []Contribution{
		{"time_since_cooking", timeSinceCookingRisk(r.TimeSinceCooking)},
		{"storage_time", storageTimeRisk(r.StorageTime)},
		{"storage_condition", storageConditionRisk(r.StorageCondition)},
		{"container_type", containerRisk(r.ContainerType)},
		{"smell", smellRisk(r.Smell)},
		{"texture", textureRisk(r.Texture)},
		{"moisture_type", moistureRisk(r.MoistureType)},
		{"cooking_method", cookingMethodRisk(r.CookingMethod)},
	}
	if r.AmbientTemp != nil {
		c = append(c, Contribution{"ambient_temp", ambientTempRisk(*r.AmbientTemp)})
	}
	if r.Humidity != nil {
		c = append(c, Contribution{"humidity", humidityRisk(*r.Humidity)})
	}
	return c
}

// ScoreRecord sums the contribution rules into a single spoilage score.
// Higher means more likely spoiled. Deterministic and side-effect free: this
// score is the sole ground-truth authority for synthetic labels, and the
// trained model only ever approximates it from examples.
func ScoreRecord(r FoodRecord) float64 {
	var score float64
	for _, c := range Contributions(r) {
		score += c.Value
	}
	return score
}

// ClassifyScore maps a spoilage score to a freshness label.
func ClassifyScore(score float64) Label {
	switch {
	case score < freshMax:
		return LabelFresh
	case score < mediumMax:
		return LabelMedium
	default:
		return LabelSpoiled
	}
}

// timeSinceCookingRisk: food left out before refrigeration. Quick storing
// after cooking reduces risk; long delays dominate less than storage time.
func timeSinceCookingRisk(hours float64) float64 {
	switch {
	case hours <= 0.5:
		return -1.5
	case hours <= 2:
		return -0.4
	case hours <= 6:
		return 0.6
	case hours <= 24:
		return 1.2
	default:
		return 2.0
	}
}

// storageTimeRisk: how long the food has been kept stored.
func storageTimeRisk(hours float64) float64 {
	switch {
	case hours <= 2:
		return -1.2
	case hours <= 8:
		return -0.4
	case hours <= 24:
		return 0.6
	default:
		return 1.8
	}
}

func storageConditionRisk(condition string) float64 {
	if condition == "refrigerated" {
		return -2.3
	}
	return 1.0
}

func containerRisk(container string) float64 {
	switch container {
	case "closed", "metal":
		return -0.6
	default:
		return 0.6
	}
}

// smellRisk: smell descriptors are the strongest single indicators.
func smellRisk(smell string) float64 {
	switch smell {
	case "sour", "fermented":
		return 2.5
	case "strong":
		return 1.2
	case "slight":
		return 0.3
	default:
		return 0
	}
}

func textureRisk(texture string) float64 {
	switch texture {
	case "soggy", "moist":
		return 0.8
	default:
		return 0
	}
}

func moistureRisk(moisture string) float64 {
	switch moisture {
	case "wet":
		return 0.9
	case "semi-wet":
		return 0.4
	default:
		return 0
	}
}

func cookingMethodRisk(method string) float64 {
	switch method {
	case "fried":
		return -0.5
	case "boiled", "steamed":
		return 0.3
	default:
		return 0
	}
}

// ambientTempRisk: risk grows above a 25°C neutral point; ambient below 20°C
// models refrigeration-like cooling with a small fixed reduction.
func ambientTempRisk(tempC float64) float64 {
	switch {
	case tempC > 25:
		return 0.05 * (tempC - 25)
	case tempC < 20:
		return -0.3
	default:
		return 0
	}
}

// humidityRisk: humidity only matters once it is high.
func humidityRisk(pct float64) float64 {
	if pct > 70 {
		return 0.5
	}
	return 0
}
