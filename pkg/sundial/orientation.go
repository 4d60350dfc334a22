package sundial

import (
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats/scalar"
)

// Orientation holds the corrections that zero a dial sitting off its
// timezone's central meridian. Positive values turn counter-clockwise,
// negative values clockwise.
type Orientation struct {
	Tilt     float64 `json:"tilt"`
	Rotation float64 `json:"rotation"`
}

// TurnDirection is the physical direction of a correction.
type TurnDirection int

const (
	// Aligned means no correction is needed.
	Aligned TurnDirection = iota
	CounterClockwise
	Clockwise
)

func (d TurnDirection) String() string {
	switch d {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "aligned"
	}
}

// Direction maps the sign of a tilt or rotation to the way the dial turns.
func Direction(v float64) TurnDirection {
	switch {
	case v > 0:
		return CounterClockwise
	case v < 0:
		return Clockwise
	default:
		return Aligned
	}
}

// CentralMeridian is the longitude whose solar noon matches civil noon for
// the given UTC offset.
func CentralMeridian(utcOffsetHours float64) float64 {
	return utcOffsetHours * degreesPerHour
}

// DialTilt returns the tilt correction in degrees, rounded to 2 places.
// The result is negated so that a dial east of its central meridian reports
// the direction it physically has to be turned.
func DialTilt(latitude, longitude, centralMeridian float64) float64 {
	lat := unit.AngleFromDeg(latitude).Rad()
	return negatedCorrection(meridianDelta(longitude, centralMeridian) * math.Cos(lat))
}

// DialRotation returns the rotation correction in degrees, rounded to 2
// places, with the same sign convention as DialTilt.
func DialRotation(latitude, longitude, centralMeridian float64) float64 {
	lat := unit.AngleFromDeg(latitude).Rad()
	return negatedCorrection(meridianDelta(longitude, centralMeridian) * math.Sin(lat))
}

// Orient computes both corrections.
func Orient(latitude, longitude, centralMeridian float64) Orientation {
	return Orientation{
		Tilt:     DialTilt(latitude, longitude, centralMeridian),
		Rotation: DialRotation(latitude, longitude, centralMeridian),
	}
}

// meridianDelta is sin(λ - λc)
func meridianDelta(longitude, centralMeridian float64) float64 {
	return math.Sin(unit.AngleFromDeg(longitude).Rad() - unit.AngleFromDeg(centralMeridian).Rad())
}

// negatedCorrection converts to degrees, rounds to two decimals and flips
// the sign. Zero is always returned as +0.
func negatedCorrection(rad float64) float64 {
	v := -scalar.Round(unit.Angle(rad).Deg(), 2)
	if v == 0 {
		return 0
	}
	return v
}
