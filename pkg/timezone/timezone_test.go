package timezone

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/chrissnell/sundial/pkg/sundial"
	"github.com/stretchr/testify/require"
)

func TestLatLongUTCOffset(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		at        time.Time
		hours     float64
	}{
		{
			name:      "Ottawa in winter",
			latitude:  45.42,
			longitude: -75.69,
			at:        time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
			hours:     -5,
		},
		{
			name:      "Ottawa in summer",
			latitude:  45.42,
			longitude: -75.69,
			at:        time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC),
			hours:     -4,
		},
		{
			name:      "Kolkata",
			latitude:  22.57,
			longitude: 88.36,
			at:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			hours:     5.5,
		},
	}

	r := NewLatLong()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, err := r.UTCOffset(tt.latitude, tt.longitude, tt.at)
			require.NoError(t, err)
			require.NotEmpty(t, off.Zone)
			require.Equal(t, tt.hours, off.Hours)
		})
	}
}

func TestLatLongMidOcean(t *testing.T) {
	_, err := NewLatLong().UTCOffset(-40, -120, time.Now())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoZone))

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, -40.0, lookupErr.Latitude)
}

func TestOffsetInUnknownZone(t *testing.T) {
	_, err := OffsetIn("Nowhere/Atlantis", time.Now())
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "Nowhere/Atlantis", lookupErr.Zone)
}

func TestFixed(t *testing.T) {
	off, err := Fixed{Hours: -3.5}.UTCOffset(0, 0, time.Time{})
	require.NoError(t, err)
	require.Equal(t, -3.5, off.Hours)
	require.Equal(t, "UTC-03:30", off.Zone)

	require.Equal(t, "UTC+05:45", FixedZoneName(5.75))
	require.Equal(t, "UTC+00:00", FixedZoneName(0))
}

func TestFixedRejectsInvalidOffsets(t *testing.T) {
	for _, hours := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 14.5, -20} {
		_, err := Fixed{Hours: hours}.UTCOffset(0, 0, time.Time{})
		require.ErrorIs(t, err, sundial.ErrOutOfRange, "hours=%v", hours)

		var rangeErr *sundial.RangeError
		require.ErrorAs(t, err, &rangeErr)
		require.Equal(t, "UTC offset", rangeErr.Field)
	}
}
