package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(48.8584, 2.2945, 48.8584, 2.2945))
	})

	t.Run("paris to london", func(t *testing.T) {
		// Eiffel Tower -> Big Ben, ~340 km
		d := HaversineDistance(48.8584, 2.2945, 51.5007, -0.1246)
		assert.InDelta(t, 340, d, 5)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(0, 0))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(-91, 0))
	assert.False(t, ValidateCoordinates(0, 181))
	assert.False(t, ValidateCoordinates(0, -181))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, ValidateRadius(100))
	assert.True(t, ValidateRadius(8000))
	assert.True(t, ValidateRadius(30000))
	assert.False(t, ValidateRadius(99))
	assert.False(t, ValidateRadius(30001))
	assert.False(t, ValidateRadius(0))
}
