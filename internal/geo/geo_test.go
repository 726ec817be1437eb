package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointValidate(t *testing.T) {
	tests := []struct {
		name    string
		point   Point
		wantErr bool
	}{
		{"valid", Point{Latitude: 51.5074, Longitude: -0.1278}, false},
		{"equator meridian", Point{Latitude: 0, Longitude: 0}, false},
		{"boundary values", Point{Latitude: 90, Longitude: -180}, false},
		{"latitude too high", Point{Latitude: 90.5, Longitude: 0}, true},
		{"latitude too low", Point{Latitude: -91, Longitude: 0}, true},
		{"longitude too high", Point{Latitude: 0, Longitude: 180.1}, true},
		{"longitude too low", Point{Latitude: 0, Longitude: -181}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.point.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrOutOfRange)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDistance(t *testing.T) {
	london := Point{Latitude: 51.5074, Longitude: -0.1278}
	paris := Point{Latitude: 48.8566, Longitude: 2.3522}

	assert.Zero(t, Distance(london, london))
	assert.InDelta(t, 343600, Distance(london, paris), 1000)
	assert.InDelta(t, Distance(london, paris), Distance(paris, london), 0.001)
}

func TestFenceContains(t *testing.T) {
	fence := Fence{
		Center:       Point{Latitude: 51.5074, Longitude: -0.1278},
		RadiusMeters: 200,
	}

	t.Run("point near center", func(t *testing.T) {
		// ~50m north of center.
		within, distance := fence.Contains(Point{Latitude: 51.50785, Longitude: -0.1278})
		assert.True(t, within)
		assert.InDelta(t, 50, distance, 5)
	})

	t.Run("center itself", func(t *testing.T) {
		within, distance := fence.Contains(fence.Center)
		assert.True(t, within)
		assert.Zero(t, distance)
	})

	t.Run("point far outside", func(t *testing.T) {
		// ~5km north of center.
		within, distance := fence.Contains(Point{Latitude: 51.5524, Longitude: -0.1278})
		assert.False(t, within)
		assert.InDelta(t, 5000, distance, 50)
	})
}
