package unit

import "fmt"

// WeightUnit identifies a supported weight measurement unit.
type WeightUnit byte

const (
	WeightGrain WeightUnit = iota
	WeightOunce
	WeightGram
	WeightPound
	WeightKilogram
)

// Conversion factors to the canonical unit (grain).
var weightFactors = map[WeightUnit]float64{
	WeightGrain:    1,
	WeightOunce:    437.5,
	WeightGram:     15.4323584,
	WeightPound:    7000,
	WeightKilogram: 15432.3584,
}

var weightNames = map[WeightUnit]string{
	WeightGrain:    "gr",
	WeightOunce:    "oz",
	WeightGram:     "g",
	WeightPound:    "lb",
	WeightKilogram: "kg",
}

// Weight keeps a projectile weight value stored in grains.
type Weight struct {
	value        float64
	defaultUnits WeightUnit
}

// CreateWeight creates a weight value expressed in the given units.
func CreateWeight(value float64, units WeightUnit) (Weight, error) {
	f, ok := weightFactors[units]
	if !ok {
		return Weight{}, fmt.Errorf("weight: unit %d is not supported", units)
	}
	return Weight{value: value * f, defaultUnits: units}, nil
}

// MustCreateWeight creates a weight value and panics on an unknown unit.
func MustCreateWeight(value float64, units WeightUnit) Weight {
	w, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return w
}

// In returns the value converted to the given units, or 0 if the unit
// is not supported.
func (v Weight) In(units WeightUnit) float64 {
	f, ok := weightFactors[units]
	if !ok {
		return 0
	}
	return v.value / f
}

// Convert changes the units the value renders in without changing the value.
func (v Weight) Convert(units WeightUnit) Weight {
	return Weight{value: v.value, defaultUnits: units}
}

// Units returns the units the value was created in.
func (v Weight) Units() WeightUnit {
	return v.defaultUnits
}

func (v Weight) String() string {
	return fmt.Sprintf("%.1f%s", v.In(v.defaultUnits), weightNames[v.defaultUnits])
}
