package unit

import "fmt"

// DistanceUnit identifies a supported distance measurement unit.
type DistanceUnit byte

const (
	DistanceInch DistanceUnit = iota
	DistanceFoot
	DistanceYard
	DistanceMile
	DistanceMillimeter
	DistanceCentimeter
	DistanceMeter
	DistanceKilometer
)

// Conversion factors to the canonical unit (inch).
var distanceFactors = map[DistanceUnit]float64{
	DistanceInch:       1,
	DistanceFoot:       12,
	DistanceYard:       36,
	DistanceMile:       63360,
	DistanceMillimeter: 1 / 25.4,
	DistanceCentimeter: 1 / 2.54,
	DistanceMeter:      1000 / 25.4,
	DistanceKilometer:  1000000 / 25.4,
}

var distanceNames = map[DistanceUnit]string{
	DistanceInch:       "in",
	DistanceFoot:       "ft",
	DistanceYard:       "yd",
	DistanceMile:       "mi",
	DistanceMillimeter: "mm",
	DistanceCentimeter: "cm",
	DistanceMeter:      "m",
	DistanceKilometer:  "km",
}

// Distance keeps a distance value stored in inches.
type Distance struct {
	value        float64
	defaultUnits DistanceUnit
}

// CreateDistance creates a distance value expressed in the given units.
func CreateDistance(value float64, units DistanceUnit) (Distance, error) {
	f, ok := distanceFactors[units]
	if !ok {
		return Distance{}, fmt.Errorf("distance: unit %d is not supported", units)
	}
	return Distance{value: value * f, defaultUnits: units}, nil
}

// MustCreateDistance creates a distance value and panics on an unknown unit.
func MustCreateDistance(value float64, units DistanceUnit) Distance {
	d, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return d
}

// In returns the value converted to the given units, or 0 if the unit
// is not supported.
func (v Distance) In(units DistanceUnit) float64 {
	f, ok := distanceFactors[units]
	if !ok {
		return 0
	}
	return v.value / f
}

// Convert changes the units the value renders in without changing the value.
func (v Distance) Convert(units DistanceUnit) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

// Units returns the units the value was created in.
func (v Distance) Units() DistanceUnit {
	return v.defaultUnits
}

func (v Distance) String() string {
	return fmt.Sprintf("%.1f%s", v.In(v.defaultUnits), distanceNames[v.defaultUnits])
}
