package sundial

import (
	"math"

	"github.com/soniakeys/unit"
)

// HourLine is one demarcation on a horizontal dial.
type HourLine struct {
	Hour      int     `json:"hour"`       // hour token, -6..6
	ClockHour int     `json:"clock_hour"` // 6..18
	Clock     string  `json:"clock"`      // HH:MM
	Angle     float64 `json:"angle"`      // degrees from the noon line, [-90, 90]
}

// ClampAngle saturates a degree value into [-90, 90].
func ClampAngle(deg float64) float64 {
	return math.Max(-90, math.Min(90, deg))
}

// GnomonAngle returns the angle, in degrees from the noon line, at which the
// hour line for the given token is drawn on a horizontal dial at the given
// latitude (in radians):
//
//	θ = atan(tan(h) · sin(φ))
//
// At ±6 hours tan(h) diverges, so the result is always clamped.
func GnomonAngle(hour int, latitudeRadians float64) float64 {
	tanTheta := math.Tan(HourAngle(hour)) * math.Sin(latitudeRadians)
	return ClampAngle(unit.Angle(math.Atan(tanTheta)).Deg())
}

// HourLines computes every hour line for a latitude in degrees, in
// ascending hour order so that renderers draw them chronologically.
func HourLines(latitude float64) ([]HourLine, error) {
	lat := unit.AngleFromDeg(latitude).Rad()

	lines := make([]HourLine, 0, len(HourTokens))
	for _, h := range HourTokens {
		clockHour := ClockHour(h)
		clock, err := FormatClockTime(clockHour, 0)
		if err != nil {
			return nil, err
		}
		lines = append(lines, HourLine{
			Hour:      h,
			ClockHour: clockHour,
			Clock:     clock,
			Angle:     GnomonAngle(h, lat),
		})
	}
	return lines, nil
}
