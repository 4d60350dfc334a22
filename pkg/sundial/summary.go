package sundial

import (
	"fmt"
	"math"
	"strings"
)

// Summary is the human readable account of a Result, split in the three
// blocks printed to the user.
type Summary struct {
	Location       string `json:"location"`
	EquationOfTime string `json:"equation_of_time"`
	Orientation    string `json:"orientation"`
}

// Summary formats the result. It does not compute anything new.
func (r *Result) Summary() Summary {
	return Summary{
		Location:       LocationText(r.Location),
		EquationOfTime: fmt.Sprintf("Today is day number %d.\n%s", r.DayOfYear, EquationOfTimeText(r.EquationOfTime)),
		Orientation:    OrientationText(r.Orientation),
	}
}

func (s Summary) String() string {
	return strings.Join([]string{s.Location, s.EquationOfTime, s.Orientation}, "\n\n") + "\n"
}

// LocationText echoes a location rounded to two decimals.
func LocationText(l Location) string {
	return fmt.Sprintf("Latitude: %.2f°, Longitude: %.2f°", l.Latitude, l.Longitude)
}

// EquationOfTimeText tells the reader how to correct today's readings.
func EquationOfTimeText(eot float64) string {
	switch Correction(eot) {
	case Subtract:
		return fmt.Sprintf("Please subtract %.2f minutes from your sundial readings today!", math.Abs(eot))
	case Add:
		return fmt.Sprintf("Please add %.2f minutes to your sundial readings today!", math.Abs(eot))
	default:
		return "No equation of time correction is needed today."
	}
}

// OrientationText describes the tilt and rotation needed to zero the dial.
func OrientationText(o Orientation) string {
	return correctionLine("Tilt", "tilt", o.Tilt) + "\n" + correctionLine("Rotate", "rotation", o.Rotation)
}

func correctionLine(verb, noun string, v float64) string {
	d := Direction(v)
	if d == Aligned {
		return fmt.Sprintf("No %s correction is needed.", noun)
	}
	return fmt.Sprintf("%s the dial %.2f° %s to zero it.", verb, math.Abs(v), d)
}
