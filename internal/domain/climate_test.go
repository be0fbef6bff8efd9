package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCity(t *testing.T) {
	t.Run("known city", func(t *testing.T) {
		p, err := LookupCity("Chennai")
		require.NoError(t, err)
		assert.Equal(t, "South", p.Region)
		assert.Equal(t, 24.0, p.TempMin)
		assert.Equal(t, 34.0, p.TempMax)
		assert.Equal(t, 50.0, p.HumidityMin)
		assert.Equal(t, 90.0, p.HumidityMax)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := LookupCity("Atlantis")
		require.Error(t, err)

		var unknownErr *UnknownCityError
		require.True(t, errors.As(err, &unknownErr))
		assert.Equal(t, "Atlantis", unknownErr.City)
	})
}

func TestCities_SortedAndComplete(t *testing.T) {
	cities := Cities()
	require.NotEmpty(t, cities)
	assert.IsIncreasing(t, cities)

	for _, c := range cities {
		_, err := LookupCity(c)
		require.NoError(t, err)
	}
}

func TestDefaultClimate_SpansAllPresets(t *testing.T) {
	def := DefaultClimate()

	assert.Equal(t, 10.0, def.TempMin)
	assert.Equal(t, 35.0, def.TempMax)
	assert.Equal(t, 20.0, def.HumidityMin)
	assert.Equal(t, 98.0, def.HumidityMax)
	assert.Empty(t, def.City)
	assert.Empty(t, def.Region)
}
