package sundial

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestGnomonAngleWithinRange(t *testing.T) {
	for lat := -90.0; lat <= 90.0; lat += 2.5 {
		latRad := unit.AngleFromDeg(lat).Rad()
		for _, h := range HourTokens {
			angle := GnomonAngle(h, latRad)
			if math.IsNaN(angle) || angle < -90 || angle > 90 {
				t.Errorf("GnomonAngle(%d, %v°) = %v, outside [-90, 90]", h, lat, angle)
			}
		}
	}
}

func TestGnomonAngleAtNoon(t *testing.T) {
	for lat := -90.0; lat <= 90.0; lat += 5 {
		if got := GnomonAngle(0, unit.AngleFromDeg(lat).Rad()); got != 0 {
			t.Errorf("GnomonAngle(0, %v°) = %v, expected 0", lat, got)
		}
	}
}

func TestGnomonAngleSaturatesAtSixHours(t *testing.T) {
	lat := unit.AngleFromDeg(45).Rad()

	if got := GnomonAngle(6, lat); !scalar.EqualWithinAbs(got, 90, 1e-9) {
		t.Errorf("GnomonAngle(6, 45°) = %v, expected 90", got)
	}
	if got := GnomonAngle(-6, lat); !scalar.EqualWithinAbs(got, -90, 1e-9) {
		t.Errorf("GnomonAngle(-6, 45°) = %v, expected -90", got)
	}
}

func TestGnomonAngleKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		latitude float64
		expected float64
	}{
		{"One hour at 45N", 1, 45, 10.7288},
		{"Three hours at 45N", 3, 45, 35.2644},
		{"Three hours before noon at 45N", -3, 45, -35.2644},
		{"Three hours at 45S", 3, -45, -35.2644},
		{"Pole is an equatorial dial", 2, 90, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GnomonAngle(tt.hour, unit.AngleFromDeg(tt.latitude).Rad())
			if !scalar.EqualWithinAbs(got, tt.expected, 1e-3) {
				t.Errorf("GnomonAngle(%d, %v°) = %.4f, expected %.4f", tt.hour, tt.latitude, got, tt.expected)
			}
		})
	}
}

func TestClampAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{45, 45},
		{90, 90},
		{90.0000001, 90},
		{-1e300, -90},
		{math.Inf(1), 90},
	}

	for _, tt := range tests {
		if got := ClampAngle(tt.in); got != tt.expected {
			t.Errorf("ClampAngle(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestHourLinesOrder(t *testing.T) {
	lines, err := HourLines(51.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != len(HourTokens) {
		t.Fatalf("got %d hour lines, expected %d", len(lines), len(HourTokens))
	}

	for i, l := range lines {
		if l.Hour != HourTokens[i] {
			t.Errorf("line %d has hour %d, expected %d", i, l.Hour, HourTokens[i])
		}
		if l.ClockHour != 12+l.Hour {
			t.Errorf("line %d has clock hour %d", i, l.ClockHour)
		}
		if i > 0 && l.Angle < lines[i-1].Angle {
			t.Errorf("line %d angle %v is smaller than the previous %v", i, l.Angle, lines[i-1].Angle)
		}
	}
	if lines[0].Clock != "06:00" || lines[6].Clock != "12:00" || lines[12].Clock != "18:00" {
		t.Errorf("unexpected clock labels %q, %q, %q", lines[0].Clock, lines[6].Clock, lines[12].Clock)
	}
}

func TestHourLinesAtEquator(t *testing.T) {
	lines, err := HourLines(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, l := range lines {
		if math.IsNaN(l.Angle) || l.Angle < -90 || l.Angle > 90 {
			t.Errorf("hour %d: angle %v outside [-90, 90]", l.Hour, l.Angle)
		}
	}
}
