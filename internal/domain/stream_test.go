package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrefetchTask_HasCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		task     PrefetchTask
		expected bool
	}{
		{
			name:     "valid coordinates",
			task:     PrefetchTask{TaskID: uuid.New(), Lat: 48.8584, Lng: 2.2945},
			expected: true,
		},
		{
			name:     "zero point is valid",
			task:     PrefetchTask{TaskID: uuid.New()},
			expected: true,
		},
		{
			name:     "latitude out of range",
			task:     PrefetchTask{TaskID: uuid.New(), Lat: 95, Lng: 2.29},
			expected: false,
		},
		{
			name:     "longitude out of range",
			task:     PrefetchTask{TaskID: uuid.New(), Lat: 48.85, Lng: -200},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.HasCoordinates())
		})
	}
}
