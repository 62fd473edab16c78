package unit

import "fmt"

// PressureUnit identifies a supported pressure measurement unit.
type PressureUnit byte

const (
	PressureMmHg PressureUnit = iota
	PressureInHg
	PressureBar
	PressureHPa
	PressurePSI
)

// Conversion factors to the canonical unit (mmHg).
var pressureFactors = map[PressureUnit]float64{
	PressureMmHg: 1,
	PressureInHg: 25.4,
	PressureBar:  750.061683,
	PressureHPa:  750.061683 / 1000,
	PressurePSI:  51.714924102396,
}

var pressureNames = map[PressureUnit]string{
	PressureMmHg: "mmHg",
	PressureInHg: "inHg",
	PressureBar:  "bar",
	PressureHPa:  "hPa",
	PressurePSI:  "psi",
}

// Pressure keeps a barometric pressure value stored in mmHg.
type Pressure struct {
	value        float64
	defaultUnits PressureUnit
}

// CreatePressure creates a pressure value expressed in the given units.
func CreatePressure(value float64, units PressureUnit) (Pressure, error) {
	f, ok := pressureFactors[units]
	if !ok {
		return Pressure{}, fmt.Errorf("pressure: unit %d is not supported", units)
	}
	return Pressure{value: value * f, defaultUnits: units}, nil
}

// MustCreatePressure creates a pressure value and panics on an unknown unit.
func MustCreatePressure(value float64, units PressureUnit) Pressure {
	p, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return p
}

// In returns the value converted to the given units, or 0 if the unit
// is not supported.
func (v Pressure) In(units PressureUnit) float64 {
	f, ok := pressureFactors[units]
	if !ok {
		return 0
	}
	return v.value / f
}

// Convert changes the units the value renders in without changing the value.
func (v Pressure) Convert(units PressureUnit) Pressure {
	return Pressure{value: v.value, defaultUnits: units}
}

// Units returns the units the value was created in.
func (v Pressure) Units() PressureUnit {
	return v.defaultUnits
}

func (v Pressure) String() string {
	return fmt.Sprintf("%.2f%s", v.In(v.defaultUnits), pressureNames[v.defaultUnits])
}
