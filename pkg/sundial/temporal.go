package sundial

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// HourTokens are the demarcations drawn on the dial, in hours before (-)
// and after (+) solar noon. One line every 15° of hour angle.
var HourTokens = [...]int{-6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6}

// degreesPerHour is the sun's apparent motion in hour angle
const degreesPerHour = 15.0

// HourAngle converts an hour token to its hour angle in radians.
func HourAngle(hour int) float64 {
	return unit.AngleFromDeg(float64(hour) * degreesPerHour).Rad()
}

// ClockHour returns the 24-hour clock hour of an hour token (6 through 18
// for the standard tokens).
func ClockHour(hour int) int {
	return 12 + hour
}

// FormatClockTime renders hour and minute as zero-padded HH:MM.
func FormatClockTime(hour, minute int) (string, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", &InvalidTimeError{Hour: hour, Minute: minute}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// DayOfYear returns the ordinal day of t's calendar date, 1 for January 1st.
// It is evaluated in t's own location.
func DayOfYear(t time.Time) int {
	y, m, d := t.Date()
	return julian.DayOfYearGregorian(y, int(m), d)
}

// ValidateDayOfYear rejects day numbers outside [1, 366].
func ValidateDayOfYear(day int) error {
	if day < 1 || day > 366 {
		return &RangeError{Field: "day of year", Value: float64(day), Min: 1, Max: 366}
	}
	return nil
}
