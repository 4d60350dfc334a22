package solar

import (
	"testing"
	"time"
)

func TestDaylight(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		latitude   float64
		longitude  float64
		polarDay   bool
		polarNight bool
		minLength  time.Duration
		maxLength  time.Duration
	}{
		{
			name:      "Equator at equinox",
			date:      time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC),
			latitude:  0,
			longitude: 0,
			minLength: 11*time.Hour + 30*time.Minute,
			maxLength: 12*time.Hour + 30*time.Minute,
		},
		{
			name:      "Seattle summer solstice",
			date:      time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC),
			latitude:  47.6,
			longitude: -122.3,
			minLength: 15 * time.Hour,
			maxLength: 17 * time.Hour,
		},
		{
			name:      "London winter solstice",
			date:      time.Date(2026, 12, 21, 12, 0, 0, 0, time.UTC),
			latitude:  51.5,
			longitude: -0.1,
			minLength: 7 * time.Hour,
			maxLength: 9 * time.Hour,
		},
		{
			name:      "Arctic summer",
			date:      time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC),
			latitude:  78,
			longitude: 15,
			polarDay:  true,
			minLength: 24 * time.Hour,
			maxLength: 24 * time.Hour,
		},
		{
			name:       "Arctic winter",
			date:       time.Date(2026, 12, 21, 12, 0, 0, 0, time.UTC),
			latitude:   78,
			longitude:  15,
			polarNight: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Daylight(tt.date, tt.latitude, tt.longitude)
			if w.PolarDay != tt.polarDay || w.PolarNight != tt.polarNight {
				t.Fatalf("got polar day=%v night=%v, expected day=%v night=%v", w.PolarDay, w.PolarNight, tt.polarDay, tt.polarNight)
			}
			if l := w.Length(); l < tt.minLength || l > tt.maxLength {
				t.Errorf("day length %v, expected between %v and %v", l, tt.minLength, tt.maxLength)
			}
		})
	}
}

func TestContainsHour(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Skipf("zone data unavailable: %v", err)
	}
	date := time.Date(2026, 12, 21, 12, 0, 0, 0, loc)
	w := Daylight(date, 45.42, -75.69)

	if !w.ContainsHour(date, 12) {
		t.Errorf("expected noon to be in daylight, window %v - %v", w.Sunrise, w.Sunset)
	}
	if w.ContainsHour(date, 6) || w.ContainsHour(date, 18) {
		t.Errorf("expected 06:00 and 18:00 to be dark at the winter solstice, window %v - %v", w.Sunrise, w.Sunset)
	}
}

func TestFormatSunTime(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		loc      *time.Location
		expected string
	}{
		{
			name:     "Zero time returns empty",
			loc:      time.UTC,
			expected: "",
		},
		{
			name:     "Noon UTC",
			t:        time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: "12:00 PM",
		},
		{
			name:     "Converted to a fixed zone",
			t:        time.Date(2000, 1, 1, 12, 30, 0, 0, time.UTC),
			loc:      time.FixedZone("UTC-5", -5*3600),
			expected: "7:30 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSunTime(tt.t, tt.loc); got != tt.expected {
				t.Errorf("FormatSunTime = %q, expected %q", got, tt.expected)
			}
		})
	}
}
