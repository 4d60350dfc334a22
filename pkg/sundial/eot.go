package sundial

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// tropicalYear is the length of the year, in days, used by the
// equation of time approximation
const tropicalYear = 365.242

// CorrectionKind says which way a sundial reading has to be adjusted.
type CorrectionKind int

const (
	// NoCorrection means the sundial already shows clock time.
	NoCorrection CorrectionKind = iota
	// Subtract means the equation of time is positive.
	Subtract
	// Add means the equation of time is negative.
	Add
)

func (k CorrectionKind) String() string {
	switch k {
	case Subtract:
		return "subtract"
	case Add:
		return "add"
	default:
		return "none"
	}
}

// EquationOfTime returns the equation of time in minutes for the given day
// of the year, using the usual two-term approximation. Positive values
// mean the sundial is fast.
func EquationOfTime(dayOfYear int) float64 {
	return EquationOfTimeAt(float64(dayOfYear))
}

// EquationOfTimeAt evaluates the same approximation on a fractional day.
func EquationOfTimeAt(day float64) float64 {
	eot1 := 9.873 * math.Sin(4*math.Pi/tropicalYear*(day-81))
	eot2 := 7.655 * math.Sin(2*math.Pi/tropicalYear*(day-1))
	return eot1 - eot2
}

// Correction classifies an equation of time value at the two decimals it is
// reported with. A value that rounds to zero needs no correction.
func Correction(eot float64) CorrectionKind {
	rounded := scalar.Round(eot, 2)
	switch {
	case rounded > 0:
		return Subtract
	case rounded < 0:
		return Add
	default:
		return NoCorrection
	}
}
