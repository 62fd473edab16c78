package unit

import "fmt"

// TemperatureUnit identifies a supported temperature measurement unit.
type TemperatureUnit byte

const (
	TemperatureFahrenheit TemperatureUnit = iota
	TemperatureCelsius
	TemperatureKelvin
	TemperatureRankin
)

var temperatureNames = map[TemperatureUnit]string{
	TemperatureFahrenheit: "°F",
	TemperatureCelsius:    "°C",
	TemperatureKelvin:     "°K",
	TemperatureRankin:     "°R",
}

// Temperature scales are affine, not proportional, so they get explicit
// to/from functions instead of a factor table.
func temperatureToDefault(value float64, units TemperatureUnit) (float64, error) {
	switch units {
	case TemperatureFahrenheit:
		return value, nil
	case TemperatureRankin:
		return value - 459.67, nil
	case TemperatureCelsius:
		return value*9/5 + 32, nil
	case TemperatureKelvin:
		return (value-273.15)*9/5 + 32, nil
	default:
		return 0, fmt.Errorf("temperature: unit %d is not supported", units)
	}
}

func temperatureFromDefault(value float64, units TemperatureUnit) (float64, error) {
	switch units {
	case TemperatureFahrenheit:
		return value, nil
	case TemperatureRankin:
		return value + 459.67, nil
	case TemperatureCelsius:
		return (value - 32) * 5 / 9, nil
	case TemperatureKelvin:
		return (value-32)*5/9 + 273.15, nil
	default:
		return 0, fmt.Errorf("temperature: unit %d is not supported", units)
	}
}

// Temperature keeps a temperature value stored in degrees Fahrenheit.
type Temperature struct {
	value        float64
	defaultUnits TemperatureUnit
}

// CreateTemperature creates a temperature value expressed in the given units.
func CreateTemperature(value float64, units TemperatureUnit) (Temperature, error) {
	v, err := temperatureToDefault(value, units)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{value: v, defaultUnits: units}, nil
}

// MustCreateTemperature creates a temperature value and panics on an
// unknown unit.
func MustCreateTemperature(value float64, units TemperatureUnit) Temperature {
	t, err := CreateTemperature(value, units)
	if err != nil {
		panic(err)
	}
	return t
}

// In returns the value converted to the given units, or 0 if the unit
// is not supported.
func (v Temperature) In(units TemperatureUnit) float64 {
	x, err := temperatureFromDefault(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

// Convert changes the units the value renders in without changing the value.
func (v Temperature) Convert(units TemperatureUnit) Temperature {
	return Temperature{value: v.value, defaultUnits: units}
}

// Units returns the units the value was created in.
func (v Temperature) Units() TemperatureUnit {
	return v.defaultUnits
}

func (v Temperature) String() string {
	return fmt.Sprintf("%.1f%s", v.In(v.defaultUnits), temperatureNames[v.defaultUnits])
}
