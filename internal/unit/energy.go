package unit

import "fmt"

// EnergyUnit identifies a supported kinetic energy measurement unit.
type EnergyUnit byte

const (
	EnergyFootPound EnergyUnit = iota
	EnergyJoule
)

// Conversion factors to the canonical unit (foot-pound).
var energyFactors = map[EnergyUnit]float64{
	EnergyFootPound: 1,
	EnergyJoule:     0.737562149277,
}

var energyNames = map[EnergyUnit]string{
	EnergyFootPound: "ft·lb",
	EnergyJoule:     "J",
}

// Energy keeps a kinetic energy value stored in foot-pounds.
type Energy struct {
	value        float64
	defaultUnits EnergyUnit
}

// CreateEnergy creates an energy value expressed in the given units.
func CreateEnergy(value float64, units EnergyUnit) (Energy, error) {
	f, ok := energyFactors[units]
	if !ok {
		return Energy{}, fmt.Errorf("energy: unit %d is not supported", units)
	}
	return Energy{value: value * f, defaultUnits: units}, nil
}

// MustCreateEnergy creates an energy value and panics on an unknown unit.
func MustCreateEnergy(value float64, units EnergyUnit) Energy {
	e, err := CreateEnergy(value, units)
	if err != nil {
		panic(err)
	}
	return e
}

// In returns the value converted to the given units, or 0 if the unit
// is not supported.
func (v Energy) In(units EnergyUnit) float64 {
	f, ok := energyFactors[units]
	if !ok {
		return 0
	}
	return v.value / f
}

// Convert changes the units the value renders in without changing the value.
func (v Energy) Convert(units EnergyUnit) Energy {
	return Energy{value: v.value, defaultUnits: units}
}

// Units returns the units the value was created in.
func (v Energy) Units() EnergyUnit {
	return v.defaultUnits
}

func (v Energy) String() string {
	return fmt.Sprintf("%.0f%s", v.In(v.defaultUnits), energyNames[v.defaultUnits])
}
