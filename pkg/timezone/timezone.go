// Package timezone resolves a coordinate to its IANA timezone and the UTC
// offset in force at a given instant.
package timezone

import (
	"errors"
	"fmt"
	"math"
	"time"
	_ "time/tzdata"

	"github.com/bradfitz/latlong"
	"github.com/chrissnell/sundial/pkg/sundial"
)

// ErrNoZone is returned for points latlong has no zone for, typically open
// ocean.
var ErrNoZone = errors.New("no timezone found for location")

// latlong returns this string when its tables were not compiled in
const tablesMissing = "tables not generated yet"

// LookupError wraps a failed resolution with the coordinates involved.
type LookupError struct {
	Latitude  float64
	Longitude float64
	Zone      string
	Err       error
}

func (e *LookupError) Error() string {
	if e.Zone != "" {
		return fmt.Sprintf("timezone %q for (%.4f, %.4f): %v", e.Zone, e.Latitude, e.Longitude, e.Err)
	}
	return fmt.Sprintf("timezone for (%.4f, %.4f): %v", e.Latitude, e.Longitude, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Offset is the result of a resolution.
type Offset struct {
	Zone  string  `json:"zone"`
	Abbr  string  `json:"abbreviation"`
	Hours float64 `json:"hours"`
}

// Resolver finds the UTC offset for a coordinate. It never guesses: when no
// zone is known an error is returned.
type Resolver interface {
	UTCOffset(latitude, longitude float64, at time.Time) (Offset, error)
}

// LatLong resolves zones with the boundary tables compiled into
// github.com/bradfitz/latlong.
type LatLong struct{}

// NewLatLong returns the default resolver.
func NewLatLong() *LatLong {
	return &LatLong{}
}

// ZoneName returns the IANA zone name for a coordinate.
func (LatLong) ZoneName(latitude, longitude float64) (string, error) {
	zone := latlong.LookupZoneName(latitude, longitude)
	switch zone {
	case "":
		return "", &LookupError{Latitude: latitude, Longitude: longitude, Err: ErrNoZone}
	case tablesMissing:
		return "", &LookupError{Latitude: latitude, Longitude: longitude, Err: errors.New("latlong tables not initialized")}
	}
	return zone, nil
}

// UTCOffset returns the offset of the coordinate's zone at the given instant,
// daylight saving time included.
func (l LatLong) UTCOffset(latitude, longitude float64, at time.Time) (Offset, error) {
	zone, err := l.ZoneName(latitude, longitude)
	if err != nil {
		return Offset{}, err
	}
	return OffsetIn(zone, at)
}

// OffsetIn returns the offset of a named zone at the given instant.
func OffsetIn(zone string, at time.Time) (Offset, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Offset{}, &LookupError{Zone: zone, Err: err}
	}
	abbr, secs := at.In(loc).Zone()
	return Offset{Zone: zone, Abbr: abbr, Hours: float64(secs) / 3600}, nil
}

// Fixed always reports the same offset. It backs explicit -utc-offset
// overrides.
type Fixed struct {
	Hours float64
}

// UTCOffset implements Resolver.
func (f Fixed) UTCOffset(_, _ float64, _ time.Time) (Offset, error) {
	if err := sundial.ValidateUTCOffset(f.Hours); err != nil {
		return Offset{}, err
	}
	return Offset{Zone: FixedZoneName(f.Hours), Hours: f.Hours}, nil
}

// FixedZoneName formats an offset as UTC±hh:mm.
func FixedZoneName(hours float64) string {
	sign := '+'
	if hours < 0 {
		sign = '-'
	}
	mins := int(math.Round(math.Abs(hours) * 60))
	return fmt.Sprintf("UTC%c%02d:%02d", sign, mins/60, mins%60)
}
