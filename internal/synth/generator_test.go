package synth

import (
	"testing"
	"time"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CityBiasedClimate(t *testing.T) {
	g := NewGenerator(1)

	for i := 0; i < 200; i++ {
		rec, err := g.Generate("Chennai")
		require.NoError(t, err)

		assert.Equal(t, "Chennai", rec.City)
		assert.Equal(t, "South", rec.Region)
		require.NotNil(t, rec.AmbientTemp)
		require.NotNil(t, rec.Humidity)
		assert.GreaterOrEqual(t, *rec.AmbientTemp, 24.0)
		assert.LessOrEqual(t, *rec.AmbientTemp, 34.0)
		assert.GreaterOrEqual(t, *rec.Humidity, 50.0)
		assert.LessOrEqual(t, *rec.Humidity, 90.0)
	}
}

func TestGenerate_NoCityUsesGlobalEnvelope(t *testing.T) {
	g := NewGenerator(2)

	rec, err := g.Generate("")
	require.NoError(t, err)

	assert.Empty(t, rec.City)
	assert.Empty(t, rec.Region)
	require.NotNil(t, rec.AmbientTemp)
	assert.GreaterOrEqual(t, *rec.AmbientTemp, 10.0)
	assert.LessOrEqual(t, *rec.AmbientTemp, 35.0)
}

func TestGenerate_UnknownCity(t *testing.T) {
	g := NewGenerator(3)

	_, err := g.Generate("Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestGenerate_FieldsAlwaysInDomain(t *testing.T) {
	g := NewGenerator(4)

	for i := 0; i < 500; i++ {
		rec, err := g.Generate("")
		require.NoError(t, err)

		assert.Contains(t, domain.StorageConditions, rec.StorageCondition)
		assert.Contains(t, domain.ContainerTypes, rec.ContainerType)
		assert.Contains(t, domain.FoodTypes, rec.FoodType)
		assert.Contains(t, domain.MoistureTypes, rec.MoistureType)
		assert.Contains(t, domain.CookingMethods, rec.CookingMethod)
		assert.Contains(t, domain.Textures, rec.Texture)
		assert.Contains(t, domain.Smells, rec.Smell)

		assert.GreaterOrEqual(t, rec.StorageTime, 0.0)
		assert.LessOrEqual(t, rec.StorageTime, maxStorageTime)
		assert.GreaterOrEqual(t, rec.TimeSinceCooking, 0.0)
		assert.LessOrEqual(t, rec.TimeSinceCooking, maxTimeSinceCooking)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	frozen := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(frozen))
	defer domain.SetClock(nil)

	a := NewGenerator(42)
	b := NewGenerator(42)

	for i := 0; i < 50; i++ {
		recA, err := a.Generate("Mumbai")
		require.NoError(t, err)
		recB, err := b.Generate("Mumbai")
		require.NoError(t, err)
		assert.Equal(t, recA, recB)
		assert.Equal(t, frozen, recA.GeneratedAt)
	}
}
