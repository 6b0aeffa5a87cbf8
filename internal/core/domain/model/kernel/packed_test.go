package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

func TestPackCoordinate_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		lat  kernel.Microdegrees
		lon  kernel.Microdegrees
	}{
		{name: "origin", lat: 0, lon: 0},
		{name: "southern hemisphere west", lat: -23_466_800, lon: -46_915_960},
		{name: "northern hemisphere east", lat: 55_751_244, lon: 37_618_423},
		{name: "south-west corner", lat: kernel.MinLatitude, lon: kernel.MinLongitude},
		{name: "north-east corner", lat: kernel.MaxLatitude, lon: kernel.MaxLongitude},
		{name: "negative latitude positive longitude", lat: -90_000_000, lon: 180_000_000},
		{name: "positive latitude negative longitude", lat: 90_000_000, lon: -180_000_000},
		{name: "one microdegree off origin", lat: -1, lon: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original, err := kernel.NewCoordinate(tt.lat, tt.lon)
			require.NoError(t, err)

			packed, err := kernel.PackCoordinate(original)
			require.NoError(t, err)

			decoded, err := kernel.UnpackCoordinate(packed)
			require.NoError(t, err)

			equal, err := original.IsEqual(decoded)
			require.NoError(t, err)
			assert.True(t, equal, "round trip must be exact: %s != %s", original, decoded)
		})
	}
}

func TestPackCoordinate_ZeroValue(t *testing.T) {
	var c kernel.Coordinate
	_, err := kernel.PackCoordinate(c)
	require.Error(t, err)
	assert.Equal(t, kernel.ErrCoordinateIsNotConstructed, err)
}

func TestPackedLocation_RawDecode(t *testing.T) {
	t.Run("sign-preserving latitude shift", func(t *testing.T) {
		c, err := kernel.NewCoordinate(-90_000_000, 0)
		require.NoError(t, err)

		packed, err := kernel.PackCoordinate(c)
		require.NoError(t, err)

		assert.Equal(t, int64(-90_000_000), packed.RawLatitude())
		assert.Equal(t, int64(0), packed.RawLongitude())
	})

	t.Run("longitude truncates to low word", func(t *testing.T) {
		c, err := kernel.NewCoordinate(1, -180_000_000)
		require.NoError(t, err)

		packed, err := kernel.PackCoordinate(c)
		require.NoError(t, err)

		assert.Equal(t, int64(1), packed.RawLatitude())
		assert.Equal(t, int64(-180_000_000), packed.RawLongitude())
	})
}

func TestUnpackCoordinate_OutOfRange(t *testing.T) {
	t.Run("latitude out of bounds", func(t *testing.T) {
		// 91 degrees north, valid longitude word.
		packed := kernel.PackedLocation(int64(91_000_000)<<32 | int64(360_000_000))
		_, err := kernel.UnpackCoordinate(packed)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude word below bias", func(t *testing.T) {
		// Low word of zero decodes to -360 degrees.
		packed := kernel.PackedLocation(int64(10) << 32)
		_, err := kernel.UnpackCoordinate(packed)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("garbage word", func(t *testing.T) {
		_, err := kernel.UnpackCoordinate(kernel.PackedLocation(-1))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
