package unit

import (
	"fmt"
	"math"
)

// AngularUnit identifies a supported angular measurement unit.
type AngularUnit byte

const (
	AngularRadian AngularUnit = iota
	AngularDegree
	AngularMOA
	// AngularMil is the milliradian, the unit sighting adjustments are
	// reported in.
	AngularMil
	// AngularOClock expresses a direction as an hour hand position,
	// 12 pointing downrange.
	AngularOClock
)

// Conversion factors to the canonical unit (radian).
var angularFactors = map[AngularUnit]float64{
	AngularRadian: 1,
	AngularDegree: math.Pi / 180,
	AngularMOA:    math.Pi / 10800,
	AngularMil:    0.001,
	AngularOClock: math.Pi / 6,
}

var angularNames = map[AngularUnit]string{
	AngularRadian: "rad",
	AngularDegree: "°",
	AngularMOA:    "moa",
	AngularMil:    "mil",
	AngularOClock: "o'clock",
}

// Angular keeps an angle value stored in radians.
type Angular struct {
	value        float64
	defaultUnits AngularUnit
}

// CreateAngular creates an angular value expressed in the given units.
func CreateAngular(value float64, units AngularUnit) (Angular, error) {
	f, ok := angularFactors[units]
	if !ok {
		return Angular{}, fmt.Errorf("angular: unit %d is not supported", units)
	}
	return Angular{value: value * f, defaultUnits: units}, nil
}

// MustCreateAngular creates an angular value and panics on an unknown unit.
func MustCreateAngular(value float64, units AngularUnit) Angular {
	a, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return a
}

// In returns the value converted to the given units, or 0 if the unit
// is not supported.
func (v Angular) In(units AngularUnit) float64 {
	f, ok := angularFactors[units]
	if !ok {
		return 0
	}
	return v.value / f
}

// Convert changes the units the value renders in without changing the value.
func (v Angular) Convert(units AngularUnit) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

// Units returns the units the value was created in.
func (v Angular) Units() AngularUnit {
	return v.defaultUnits
}

func (v Angular) String() string {
	return fmt.Sprintf("%.2f%s", v.In(v.defaultUnits), angularNames[v.defaultUnits])
}
