package synth

import (
	"math"
	"math/rand"

	"github.com/couchcryptid/food-freshness/internal/domain"
)

// Generation ranges for the numeric features, in hours. They comfortably
// cover the form UI's example values (0.25–24.0).
const (
	maxStorageTime      = 48.0
	maxTimeSinceCooking = 24.0
)

// Generator draws synthetic food-storage records. Not safe for concurrent
// use; the whole pipeline is a sequential batch.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator seeds a generator. The same seed reproduces the same dataset.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate draws one fully-populated record. A non-empty city biases the
// ambient draw with that city's climate preset; an empty city falls back to
// the envelope spanning all presets. Unknown cities fail with
// domain.UnknownCityError.
func (g *Generator) Generate(city string) (domain.FoodRecord, error) {
	climate := domain.DefaultClimate()
	if city != "" {
		preset, err := domain.LookupCity(city)
		if err != nil {
			return domain.FoodRecord{}, err
		}
		climate = preset
	}

	temp := round1(g.uniform(climate.TempMin, climate.TempMax))
	humidity := round1(clamp(g.uniform(climate.HumidityMin, climate.HumidityMax), 0, 100))

	return domain.FoodRecord{
		StorageTime:      round1(g.uniform(0, maxStorageTime)),
		TimeSinceCooking: round2(g.uniform(0, maxTimeSinceCooking)),
		StorageCondition: g.pick(domain.StorageConditions),
		ContainerType:    g.pick(domain.ContainerTypes),
		FoodType:         g.pick(domain.FoodTypes),
		MoistureType:     g.pick(domain.MoistureTypes),
		CookingMethod:    g.pick(domain.CookingMethods),
		Texture:          g.pick(domain.Textures),
		Smell:            g.pick(domain.Smells),

		City:        climate.City,
		Region:      climate.Region,
		AmbientTemp: &temp,
		Humidity:    &humidity,

		GeneratedAt: domain.Now(),
	}, nil
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
