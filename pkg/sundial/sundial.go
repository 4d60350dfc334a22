// Package sundial converts the hour markings of a standard horizontal sundial
// into markings valid for an arbitrary latitude and longitude, and computes
// the seasonal equation of time correction needed to read the dial on a
// given day. Everything here is a pure function of its inputs: the day of
// the year and the UTC offset are supplied by the caller.
package sundial

import "math"

// maxUTCOffset bounds the offsets found in real timezones (UTC-12 to UTC+14)
const maxUTCOffset = 14.0

// Location is a point on Earth in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewLocation validates and returns a Location. Out of range coordinates are
// rejected rather than clamped.
func NewLocation(latitude, longitude float64) (Location, error) {
	if err := checkRange("latitude", latitude, -90, 90); err != nil {
		return Location{}, err
	}
	if err := checkRange("longitude", longitude, -180, 180); err != nil {
		return Location{}, err
	}
	return Location{Latitude: latitude, Longitude: longitude}, nil
}

// Validate re-checks a Location built without NewLocation.
func (l Location) Validate() error {
	_, err := NewLocation(l.Latitude, l.Longitude)
	return err
}

// Result is everything needed to lay out and read a dial for one location
// on one day. A Result is never modified after Compute returns it.
type Result struct {
	Location        Location    `json:"location"`
	DayOfYear       int         `json:"day_of_year"`
	UTCOffset       float64     `json:"utc_offset"`
	CentralMeridian float64     `json:"central_meridian"`
	HourLines       []HourLine  `json:"hour_lines"`
	EquationOfTime  float64     `json:"equation_of_time"`
	Orientation     Orientation `json:"orientation"`
}

// Compute builds the Result for a location, day of year and UTC offset.
// Nothing is computed unless every input is valid.
func Compute(loc Location, dayOfYear int, utcOffset float64) (*Result, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateDayOfYear(dayOfYear); err != nil {
		return nil, err
	}
	if err := ValidateUTCOffset(utcOffset); err != nil {
		return nil, err
	}

	lines, err := HourLines(loc.Latitude)
	if err != nil {
		return nil, err
	}

	cm := CentralMeridian(utcOffset)
	return &Result{
		Location:        loc,
		DayOfYear:       dayOfYear,
		UTCOffset:       utcOffset,
		CentralMeridian: cm,
		HourLines:       lines,
		EquationOfTime:  EquationOfTime(dayOfYear),
		Orientation:     Orient(loc.Latitude, loc.Longitude, cm),
	}, nil
}

// Angles returns the hour line angles in hour order.
func (r *Result) Angles() []float64 {
	angles := make([]float64, len(r.HourLines))
	for i, l := range r.HourLines {
		angles[i] = l.Angle
	}
	return angles
}

// Correction classifies the result's equation of time.
func (r *Result) Correction() CorrectionKind {
	return Correction(r.EquationOfTime)
}

// ValidateUTCOffset rejects offsets outside every real timezone, NaN and
// infinities included.
func ValidateUTCOffset(hours float64) error {
	return checkRange("UTC offset", hours, -maxUTCOffset, maxUTCOffset)
}

func checkRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &RangeError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
