package engine

import (
	"fmt"
	"math"

	"ballistics_calculator/internal/unit"
)

const (
	cIcaoStandardTemperatureR      = 518.67
	cIcaoFreezingPointTemperatureR = 459.67
	cTemperatureGradient           = -3.56616e-03
	cPressureExponent              = -5.255876
	cSpeedOfSound                  = 49.0223
	cA0                            = 1.24871
	cA1                            = 0.0988438
	cA2                            = 0.00152907
	cA3                            = -3.07031e-06
	cA4                            = 4.21329e-07
	cA5                            = 3.342e-04
	cStandardTemperature           = 59.0
	cStandardPressure              = 29.92
	cStandardDensity               = 0.076474
)

// Atmosphere describes the air conditions the projectile flies through.
type Atmosphere struct {
	altitude    unit.Distance
	pressure    unit.Pressure
	temperature unit.Temperature
	humidity    float64
	density     float64
	mach        unit.Velocity
	mach1       float64
}

// CreateAtmosphere builds an atmosphere from ground-level observations.
// Humidity is a 0..1 fraction; values in 1..100 are treated as percents.
func CreateAtmosphere(altitude unit.Distance, pressure unit.Pressure, temperature unit.Temperature, humidity float64) (Atmosphere, error) {
	if humidity < 0 || humidity > 100 {
		return Atmosphere{}, fmt.Errorf("humidity %g out of the 0..1 (or 0..100) range", humidity)
	}
	if humidity > 1 {
		humidity = humidity / 100
	}
	a := Atmosphere{
		altitude:    altitude,
		pressure:    pressure,
		temperature: temperature,
		humidity:    humidity,
	}
	a.calculate()
	return a, nil
}

// CreateDefaultAtmosphere returns the standard sea-level atmosphere.
func CreateDefaultAtmosphere() Atmosphere {
	a := Atmosphere{
		altitude:    unit.MustCreateDistance(0, unit.DistanceFoot),
		pressure:    unit.MustCreatePressure(cStandardPressure, unit.PressureInHg),
		temperature: unit.MustCreateTemperature(cStandardTemperature, unit.TemperatureFahrenheit),
		humidity:    0.78,
	}
	a.calculate()
	return a
}

// Altitude returns the ground level altitude over the sea level.
func (a Atmosphere) Altitude() unit.Distance {
	return a.altitude
}

// Temperature returns the temperature at the ground level.
func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

// Pressure returns the pressure at the ground level.
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

// Humidity returns the relative humidity as a 0..1 fraction.
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

// Mach returns the speed of sound under these conditions.
func (a Atmosphere) Mach() unit.Velocity {
	return a.mach
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude:%s,Pressure:%s,Temperature:%s,Humidity:%.2f%%",
		a.altitude, a.pressure, a.temperature, a.humidity*100)
}

func (a Atmosphere) densityFactor() float64 {
	return a.density / cStandardDensity
}

func (a *Atmosphere) calculate0(t, p float64) (float64, float64) {
	var hc float64
	if t > 0.0 {
		et0 := cA0 + t*(cA1+t*(cA2+t*(cA3+t*cA4)))
		et := cA5 * a.humidity * et0
		hc = (p - 0.3783*et) / cStandardPressure
	} else {
		hc = 1.0
	}
	density := cStandardDensity * (cIcaoStandardTemperatureR / (t + cIcaoFreezingPointTemperatureR)) * hc
	mach := math.Sqrt(t+cIcaoFreezingPointTemperatureR) * cSpeedOfSound
	return density, mach
}

func (a *Atmosphere) calculate() {
	t := a.temperature.In(unit.TemperatureFahrenheit)
	p := a.pressure.In(unit.PressureInHg)

	density, mach := a.calculate0(t, p)
	a.density = density
	a.mach1 = mach
	a.mach = unit.MustCreateVelocity(mach, unit.VelocityFPS)
}

// densityFactorAndMachForAltitude extrapolates conditions to the bullet's
// current altitude in feet, following the ICAO temperature lapse.
func (a *Atmosphere) densityFactorAndMachForAltitude(altitude float64) (float64, float64) {
	orgAltitude := a.altitude.In(unit.DistanceFoot)
	if math.Abs(orgAltitude-altitude) < 30 {
		return a.density / cStandardDensity, a.mach1
	}

	t0 := a.temperature.In(unit.TemperatureFahrenheit)
	p := a.pressure.In(unit.PressureInHg)

	ta := cIcaoStandardTemperatureR + orgAltitude*cTemperatureGradient - cIcaoFreezingPointTemperatureR
	tb := cIcaoStandardTemperatureR + altitude*cTemperatureGradient - cIcaoFreezingPointTemperatureR
	t := t0 + ta - tb
	p = p * math.Pow(t0/t, cPressureExponent)

	density, mach := a.calculate0(t, p)
	return density / cStandardDensity, mach
}
