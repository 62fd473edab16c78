package unit_test

import (
	"math"
	"testing"

	"ballistics_calculator/internal/unit"
)

func assertClose(t *testing.T, got, want, tolerance float64, name string) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s: got %.8f, want %.8f", name, got, want)
	}
}

func TestDistanceConversions(t *testing.T) {
	d := unit.MustCreateDistance(100, unit.DistanceYard)
	assertClose(t, d.In(unit.DistanceFoot), 300, 1e-9, "yards to feet")
	assertClose(t, d.In(unit.DistanceInch), 3600, 1e-9, "yards to inches")
	assertClose(t, d.In(unit.DistanceMeter), 91.44, 1e-6, "yards to meters")

	m := unit.MustCreateDistance(1, unit.DistanceMile)
	assertClose(t, m.In(unit.DistanceYard), 1760, 1e-9, "mile to yards")
}

func TestVelocityConversions(t *testing.T) {
	v := unit.MustCreateVelocity(2700, unit.VelocityFPS)
	assertClose(t, v.In(unit.VelocityMPS), 822.96, 1e-3, "fps to mps")
	assertClose(t, v.In(unit.VelocityMPH), 1840.91, 0.01, "fps to mph")

	w := unit.MustCreateVelocity(10, unit.VelocityMPH)
	assertClose(t, w.In(unit.VelocityFPS), 14.6667, 1e-3, "mph to fps")
}

func TestAngularConversions(t *testing.T) {
	a := unit.MustCreateAngular(1, unit.AngularMil)
	assertClose(t, a.In(unit.AngularRadian), 0.001, 1e-12, "mil is a milliradian")

	d := unit.MustCreateAngular(90, unit.AngularDegree)
	assertClose(t, d.In(unit.AngularRadian), math.Pi/2, 1e-12, "degrees to radians")
	assertClose(t, d.In(unit.AngularMOA), 5400, 1e-6, "degrees to MOA")

	// 3 o'clock is a full crosswind from the right, 90 degrees.
	c := unit.MustCreateAngular(3, unit.AngularOClock)
	assertClose(t, c.In(unit.AngularDegree), 90, 1e-9, "o'clock to degrees")
}

func TestTemperatureConversions(t *testing.T) {
	f := unit.MustCreateTemperature(59, unit.TemperatureFahrenheit)
	assertClose(t, f.In(unit.TemperatureCelsius), 15, 1e-9, "F to C")
	assertClose(t, f.In(unit.TemperatureRankin), 518.67, 1e-9, "F to R")

	c := unit.MustCreateTemperature(0, unit.TemperatureCelsius)
	assertClose(t, c.In(unit.TemperatureFahrenheit), 32, 1e-9, "C to F")
	assertClose(t, c.In(unit.TemperatureKelvin), 273.15, 1e-9, "C to K")
}

func TestPressureConversions(t *testing.T) {
	p := unit.MustCreatePressure(29.92, unit.PressureInHg)
	assertClose(t, p.In(unit.PressureMmHg), 759.968, 1e-3, "inHg to mmHg")
	assertClose(t, p.In(unit.PressureHPa), 1013.21, 0.05, "inHg to hPa")
}

func TestWeightConversions(t *testing.T) {
	w := unit.MustCreateWeight(150, unit.WeightGrain)
	assertClose(t, w.In(unit.WeightPound), 150.0/7000.0, 1e-12, "grains to pounds")
	assertClose(t, w.In(unit.WeightGram), 9.7198, 1e-3, "grains to grams")
}

func TestEnergyConversions(t *testing.T) {
	e := unit.MustCreateEnergy(1000, unit.EnergyFootPound)
	assertClose(t, e.In(unit.EnergyJoule), 1355.82, 0.01, "ft-lb to joules")
}

func TestConvertKeepsValue(t *testing.T) {
	d := unit.MustCreateDistance(100, unit.DistanceYard).Convert(unit.DistanceMeter)
	if d.Units() != unit.DistanceMeter {
		t.Fatalf("expected meter units after Convert, got %d", d.Units())
	}
	assertClose(t, d.In(unit.DistanceYard), 100, 1e-9, "Convert must not change the value")
}
