package unit

import "fmt"

// VelocityUnit identifies a supported velocity measurement unit.
type VelocityUnit byte

const (
	VelocityMPS VelocityUnit = iota
	VelocityKMH
	VelocityFPS
	VelocityMPH
	VelocityKT
)

// Conversion factors to the canonical unit (meters per second).
var velocityFactors = map[VelocityUnit]float64{
	VelocityMPS: 1,
	VelocityKMH: 1 / 3.6,
	VelocityFPS: 1 / 3.2808399,
	VelocityMPH: 1 / 2.23693629,
	VelocityKT:  1 / 1.94384449,
}

var velocityNames = map[VelocityUnit]string{
	VelocityMPS: "m/s",
	VelocityKMH: "km/h",
	VelocityFPS: "ft/s",
	VelocityMPH: "mph",
	VelocityKT:  "kt",
}

// Velocity keeps a speed value stored in meters per second.
type Velocity struct {
	value        float64
	defaultUnits VelocityUnit
}

// CreateVelocity creates a velocity value expressed in the given units.
func CreateVelocity(value float64, units VelocityUnit) (Velocity, error) {
	f, ok := velocityFactors[units]
	if !ok {
		return Velocity{}, fmt.Errorf("velocity: unit %d is not supported", units)
	}
	return Velocity{value: value * f, defaultUnits: units}, nil
}

// MustCreateVelocity creates a velocity value and panics on an unknown unit.
func MustCreateVelocity(value float64, units VelocityUnit) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

// In returns the value converted to the given units, or 0 if the unit
// is not supported.
func (v Velocity) In(units VelocityUnit) float64 {
	f, ok := velocityFactors[units]
	if !ok {
		return 0
	}
	return v.value / f
}

// Convert changes the units the value renders in without changing the value.
func (v Velocity) Convert(units VelocityUnit) Velocity {
	return Velocity{value: v.value, defaultUnits: units}
}

// Units returns the units the value was created in.
func (v Velocity) Units() VelocityUnit {
	return v.defaultUnits
}

func (v Velocity) String() string {
	return fmt.Sprintf("%.1f%s", v.In(v.defaultUnits), velocityNames[v.defaultUnits])
}
