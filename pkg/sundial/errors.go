package sundial

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError through errors.Is.
var ErrOutOfRange = errors.New("value out of range")

// RangeError reports an input that falls outside its valid interval.
// Inputs are never clamped; callers get this error instead.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %v is outside [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Is lets errors.Is(err, ErrOutOfRange) match any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// InvalidTimeError is returned by FormatClockTime for an impossible
// hour or minute.
type InvalidTimeError struct {
	Hour   int
	Minute int
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid clock time %d:%d (hour must be 0-23, minute 0-59)", e.Hour, e.Minute)
}
