// Package planner turns a request for a dial into a complete plan: it reads
// the clock once, asks the timezone collaborator for the UTC offset and runs
// the sundial calculations.
package planner

import (
	"fmt"
	"time"

	"github.com/chrissnell/sundial/pkg/solar"
	"github.com/chrissnell/sundial/pkg/sundial"
	"github.com/chrissnell/sundial/pkg/timezone"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Clock returns the current time.
type Clock func() time.Time

// Request describes the dial wanted. A zero DayOfYear means today; a nil
// UTCOffset means the offset is looked up from the coordinates.
type Request struct {
	Latitude  float64
	Longitude float64
	DayOfYear int
	UTCOffset *float64
}

// Plan is a computed dial plus the context it was computed in.
type Plan struct {
	ID          uuid.UUID       `json:"id"`
	ComputedAt  time.Time       `json:"computed_at"`
	Date        time.Time       `json:"date"`
	Zone        string          `json:"zone"`
	ZoneAbbr    string          `json:"zone_abbreviation,omitempty"`
	Result      *sundial.Result `json:"result"`
	Summary     sundial.Summary `json:"summary"`
	Daylight    solar.Window    `json:"daylight"`
	SunlitHours []int           `json:"sunlit_hours"`
}

// Planner builds plans. It is safe for concurrent use.
type Planner struct {
	resolver timezone.Resolver
	clock    Clock
	logger   *zap.SugaredLogger
}

// New creates a planner. A nil clock means time.Now.
func New(resolver timezone.Resolver, clock Clock, logger *zap.SugaredLogger) *Planner {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Planner{resolver: resolver, clock: clock, logger: logger}
}

// Plan validates the request, then computes the dial. Nothing is returned
// unless every step succeeds.
func (p *Planner) Plan(req Request) (*Plan, error) {
	loc, err := sundial.NewLocation(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}
	if req.DayOfYear != 0 {
		if err := sundial.ValidateDayOfYear(req.DayOfYear); err != nil {
			return nil, err
		}
	}

	// The clock is read exactly once; everything below derives from now.
	now := p.clock()

	resolver := p.resolver
	if req.UTCOffset != nil {
		resolver = timezone.Fixed{Hours: *req.UTCOffset}
	}
	offset, err := resolver.UTCOffset(loc.Latitude, loc.Longitude, now)
	if err != nil {
		return nil, fmt.Errorf("resolve UTC offset: %w", err)
	}

	local := now.In(zoneLocation(offset))
	date := local
	dayOfYear := sundial.DayOfYear(local)
	if req.DayOfYear != 0 {
		dayOfYear = req.DayOfYear
		date = time.Date(local.Year(), time.January, req.DayOfYear, 12, 0, 0, 0, local.Location())
	}

	res, err := sundial.Compute(loc, dayOfYear, offset.Hours)
	if err != nil {
		return nil, err
	}

	window := solar.Daylight(date, loc.Latitude, loc.Longitude)
	var sunlit []int
	for _, l := range res.HourLines {
		if window.ContainsHour(date, l.ClockHour) {
			sunlit = append(sunlit, l.ClockHour)
		}
	}

	plan := &Plan{
		ID:          uuid.New(),
		ComputedAt:  now,
		Date:        date,
		Zone:        offset.Zone,
		ZoneAbbr:    offset.Abbr,
		Result:      res,
		Summary:     res.Summary(),
		Daylight:    window,
		SunlitHours: sunlit,
	}

	p.logger.Debugw("planned dial",
		"id", plan.ID,
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
		"zone", offset.Zone,
		"utc_offset", offset.Hours,
		"day_of_year", dayOfYear,
		"equation_of_time", res.EquationOfTime,
	)
	return plan, nil
}

// DaylightText describes when the sun is up over the dial.
func (p *Plan) DaylightText() string {
	switch {
	case p.Daylight.PolarDay:
		return "The sun does not set today."
	case p.Daylight.PolarNight:
		return "The sun does not rise today."
	}
	loc := p.Date.Location()
	return fmt.Sprintf("Sun rises at %s and sets at %s (%s).",
		solar.FormatSunTime(p.Daylight.Sunrise, loc),
		solar.FormatSunTime(p.Daylight.Sunset, loc),
		p.Zone)
}

// Text is the full narrative printed to users.
func (p *Plan) Text() string {
	return p.Summary.String() + "\n" + p.DaylightText() + "\n"
}

// zoneLocation returns the IANA location for the offset's zone, or a fixed
// zone when the name is not loadable (explicit offsets).
func zoneLocation(off timezone.Offset) *time.Location {
	if off.Zone != "" {
		if loc, err := time.LoadLocation(off.Zone); err == nil {
			return loc
		}
	}
	return time.FixedZone(off.Zone, int(off.Hours*3600))
}
