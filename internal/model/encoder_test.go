package model

import (
	"testing"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []domain.FoodRecord {
	return []domain.FoodRecord{
		{
			StorageTime: 3, TimeSinceCooking: 1,
			StorageCondition: "refrigerated", ContainerType: "closed",
			FoodType: "Vegetarian", MoistureType: "dry",
			CookingMethod: "fried", Texture: "dry", Smell: "neutral",
		},
		{
			StorageTime: 30, TimeSinceCooking: 8,
			StorageCondition: "outside", ContainerType: "open",
			FoodType: "Seafood", MoistureType: "wet",
			CookingMethod: "boiled", Texture: "soggy", Smell: "sour",
		},
	}
}

func TestFitEncoder_CollectsSortedCategories(t *testing.T) {
	e := FitEncoder(sampleRecords())

	assert.Equal(t, domain.NumericFeatures, e.Numeric)
	assert.Equal(t, domain.CategoricalFeatures, e.Categorical)
	assert.Equal(t, []string{"outside", "refrigerated"}, e.Categories["storage_condition"])
	assert.Equal(t, []string{"Seafood", "Vegetarian"}, e.Categories["food_type"])
	assert.Equal(t, []string{"neutral", "sour"}, e.Categories["smell"])
}

func TestEncoder_Width(t *testing.T) {
	e := FitEncoder(sampleRecords())
	// 2 numeric + 7 categorical columns with 2 seen values each.
	assert.Equal(t, 2+7*2, e.Width())
	assert.Len(t, e.FeatureNames(), e.Width())
}

func TestEncoder_Transform(t *testing.T) {
	records := sampleRecords()
	e := FitEncoder(records)

	v := e.Transform(records[0])
	require.Len(t, v, e.Width())
	assert.Equal(t, 3.0, v[0])
	assert.Equal(t, 1.0, v[1])

	// Every categorical column one-hot encodes exactly one category.
	names := e.FeatureNames()
	byName := map[string]float64{}
	for i, n := range names {
		byName[n] = v[i]
	}
	assert.Equal(t, 1.0, byName["storage_condition=refrigerated"])
	assert.Equal(t, 0.0, byName["storage_condition=outside"])
	assert.Equal(t, 1.0, byName["smell=neutral"])
	assert.Equal(t, 0.0, byName["smell=sour"])
}

func TestEncoder_UnknownCategoryEncodesToZeros(t *testing.T) {
	e := FitEncoder(sampleRecords())

	r := sampleRecords()[0]
	r.FoodType = "Exotic" // never seen during fitting
	v := e.Transform(r)
	require.Len(t, v, e.Width())

	names := e.FeatureNames()
	for i, n := range names {
		if n == "food_type=Seafood" || n == "food_type=Vegetarian" {
			assert.Equal(t, 0.0, v[i], n)
		}
	}
}

func TestEncoder_FeatureNamesAligned(t *testing.T) {
	e := FitEncoder(sampleRecords())
	names := e.FeatureNames()

	assert.Equal(t, "storage_time", names[0])
	assert.Equal(t, "time_since_cooking", names[1])
	for _, n := range names[2:] {
		assert.Contains(t, n, "=")
	}
}
