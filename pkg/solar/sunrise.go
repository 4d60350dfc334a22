// Package solar works out when the sun is up over a dial, so that hour lines
// that can never be lit on a given day can be flagged.
package solar

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/unit"
)

// Window is the span of daylight on one calendar day.
type Window struct {
	Sunrise    time.Time `json:"sunrise,omitempty"`
	Sunset     time.Time `json:"sunset,omitempty"`
	PolarDay   bool      `json:"polar_day,omitempty"`
	PolarNight bool      `json:"polar_night,omitempty"`
}

// Daylight returns sunrise and sunset for date's calendar day at the given
// coordinates, expressed in date's location. When the sun neither rises nor
// sets the window is flagged as polar day or polar night instead.
func Daylight(date time.Time, latitude, longitude float64) Window {
	y, m, d := date.Date()
	rise, set := sunrise.SunriseSunset(latitude, longitude, y, m, d)
	if rise.IsZero() || set.IsZero() {
		if hourAngleCosine(date.YearDay(), latitude) < -1 {
			return Window{PolarDay: true}
		}
		return Window{PolarNight: true}
	}
	loc := date.Location()
	return Window{Sunrise: rise.In(loc), Sunset: set.In(loc)}
}

// Contains reports whether the sun is up at t.
func (w Window) Contains(t time.Time) bool {
	switch {
	case w.PolarDay:
		return true
	case w.PolarNight:
		return false
	}
	return !t.Before(w.Sunrise) && !t.After(w.Sunset)
}

// ContainsHour reports whether the sun is up at hour:00 on date's calendar
// day, in date's location.
func (w Window) ContainsHour(date time.Time, hour int) bool {
	y, m, d := date.Date()
	return w.Contains(time.Date(y, m, d, hour, 0, 0, 0, date.Location()))
}

// Length is the amount of daylight in the window.
func (w Window) Length() time.Duration {
	switch {
	case w.PolarDay:
		return 24 * time.Hour
	case w.PolarNight:
		return 0
	}
	return w.Sunset.Sub(w.Sunrise)
}

// FormatSunTime renders a sunrise or sunset in loc, or "" for the zero time.
func FormatSunTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format("3:04 PM")
}

// hourAngleCosine is cos(H) of the sunrise hour angle. Values below -1 mean
// the sun never sets, above 1 that it never rises.
func hourAngleCosine(dayOfYear int, latitude float64) float64 {
	doy := float64(dayOfYear)
	innerAngle := unit.AngleFromDeg(356.6 + 0.9856*doy).Rad()
	outerAngle := unit.AngleFromDeg(278.97 + 0.9856*doy + 1.9165*math.Sin(innerAngle)).Rad()
	declination := math.Asin(0.39785 * math.Sin(outerAngle))

	return -math.Tan(unit.AngleFromDeg(latitude).Rad()) * math.Tan(declination)
}
