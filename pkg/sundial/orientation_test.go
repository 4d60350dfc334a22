package sundial

import (
	"math"
	"testing"
)

func TestCentralMeridian(t *testing.T) {
	tests := []struct {
		offset   float64
		expected float64
	}{
		{-5, -75},
		{0, 0},
		{5.5, 82.5},
		{9, 135},
		{-3.5, -52.5},
	}

	for _, tt := range tests {
		if got := CentralMeridian(tt.offset); got != tt.expected {
			t.Errorf("CentralMeridian(%v) = %v, expected %v", tt.offset, got, tt.expected)
		}
	}
}

func TestOrientationOnCentralMeridian(t *testing.T) {
	for lat := -90.0; lat <= 90.0; lat += 7.5 {
		for _, cm := range []float64{-75, 0, 82.5, 135} {
			o := Orient(lat, cm, cm)
			if o.Tilt != 0 || o.Rotation != 0 {
				t.Errorf("lat %v, meridian %v: got %+v, expected zero corrections", lat, cm, o)
			}
			if math.Signbit(o.Tilt) || math.Signbit(o.Rotation) {
				t.Errorf("lat %v, meridian %v: got negative zero in %+v", lat, cm, o)
			}
		}
	}
}

func TestOrientationSignConvention(t *testing.T) {
	tests := []struct {
		name             string
		latitude         float64
		longitude        float64
		centralMeridian  float64
		expectedTilt     float64
		expectedRotation float64
	}{
		{
			// 5° east of the -75° meridian
			name:             "East of meridian turns clockwise",
			latitude:         45,
			longitude:        -70,
			centralMeridian:  -75,
			expectedTilt:     -3.53,
			expectedRotation: -3.53,
		},
		{
			name:             "West of meridian turns counter-clockwise",
			latitude:         45,
			longitude:        -80,
			centralMeridian:  -75,
			expectedTilt:     3.53,
			expectedRotation: 3.53,
		},
		{
			// sin(15°)·cos(30°) = 0.22414 rad, sin(15°)·sin(30°) = 0.12941 rad
			name:             "Madrid-like offset",
			latitude:         30,
			longitude:        0,
			centralMeridian:  15,
			expectedTilt:     12.84,
			expectedRotation: 7.41,
		},
		{
			name:             "Equator has no rotation",
			latitude:         0,
			longitude:        10,
			centralMeridian:  0,
			expectedTilt:     -9.95,
			expectedRotation: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tilt := DialTilt(tt.latitude, tt.longitude, tt.centralMeridian)
			rotation := DialRotation(tt.latitude, tt.longitude, tt.centralMeridian)
			if tilt != tt.expectedTilt {
				t.Errorf("DialTilt = %v, expected %v", tilt, tt.expectedTilt)
			}
			if rotation != tt.expectedRotation {
				t.Errorf("DialRotation = %v, expected %v", rotation, tt.expectedRotation)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		v        float64
		expected TurnDirection
		text     string
	}{
		{1.5, CounterClockwise, "counter-clockwise"},
		{-0.01, Clockwise, "clockwise"},
		{0, Aligned, "aligned"},
	}

	for _, tt := range tests {
		got := Direction(tt.v)
		if got != tt.expected || got.String() != tt.text {
			t.Errorf("Direction(%v) = %v, expected %v", tt.v, got, tt.text)
		}
	}
}
