package ballistics

import (
	"math"
	"testing"

	"ballistics_calculator/internal/engine"
	"ballistics_calculator/internal/unit"
)

func distPtr(v float64, u unit.DistanceUnit) *unit.Distance {
	d := unit.MustCreateDistance(v, u)
	return &d
}

func energyPtr(v float64) *unit.Energy {
	e := unit.MustCreateEnergy(v, unit.EnergyFootPound)
	return &e
}

func angularPtr(v float64, u unit.AngularUnit) *unit.Angular {
	a := unit.MustCreateAngular(v, u)
	return &a
}

func TestFallbackEnergy(t *testing.T) {
	// 150 gr at 2700 fps: 0.5 * (150/7000) * 2700^2 / 32.174
	got := fallbackEnergy(150, 2700)
	if math.Abs(got-2427.96) > 0.1 {
		t.Errorf("fallbackEnergy(150, 2700) = %f, want about 2427.96", got)
	}
}

func TestDerivePointPrefersEngineEnergy(t *testing.T) {
	p := engine.Point{
		Distance: unit.MustCreateDistance(100, unit.DistanceYard),
		Velocity: unit.MustCreateVelocity(2700, unit.VelocityFPS),
		Energy:   energyPtr(2500),
	}
	row := derivePoint(p, floatPtr(150))
	if math.Abs(row.Energy-2500) > 1e-9 {
		t.Errorf("energy = %f, want the engine value 2500", row.Energy)
	}
}

func TestDerivePointEnergyFallback(t *testing.T) {
	cases := []struct {
		name   string
		energy *unit.Energy
	}{
		{"absent", nil},
		{"zero", energyPtr(0)},
		{"nan", energyPtr(math.NaN())},
		{"inf", energyPtr(math.Inf(1))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := engine.Point{
				Distance: unit.MustCreateDistance(100, unit.DistanceYard),
				Velocity: unit.MustCreateVelocity(2700, unit.VelocityFPS),
				Energy:   c.energy,
			}
			row := derivePoint(p, floatPtr(150))
			if math.Abs(row.Energy-2427.96) > 0.1 {
				t.Errorf("energy = %f, want the closed-form fallback", row.Energy)
			}
		})
	}
}

func TestDerivePointEnergyZeroWithoutWeight(t *testing.T) {
	p := engine.Point{
		Distance: unit.MustCreateDistance(100, unit.DistanceYard),
		Velocity: unit.MustCreateVelocity(2700, unit.VelocityFPS),
	}
	row := derivePoint(p, nil)
	if row.Energy != 0 {
		t.Errorf("energy = %f, want 0 when no weight is known", row.Energy)
	}

	p.Energy = energyPtr(math.NaN())
	row = derivePoint(p, nil)
	if row.Energy != 0 {
		t.Errorf("energy = %f, want 0 for a non-finite engine value without a weight", row.Energy)
	}
}

func TestDerivePointDropFallbackChain(t *testing.T) {
	base := engine.Point{
		Distance: unit.MustCreateDistance(100, unit.DistanceYard),
		Velocity: unit.MustCreateVelocity(2700, unit.VelocityFPS),
	}

	withHeight := base
	withHeight.Height = distPtr(-5, unit.DistanceInch)
	withHeight.Drop = distPtr(-99, unit.DistanceInch)
	if row := derivePoint(withHeight, nil); math.Abs(row.Drop-(-5)) > 1e-9 {
		t.Errorf("drop = %f, want the height field to win", row.Drop)
	}

	withDrop := base
	withDrop.Drop = distPtr(-7, unit.DistanceInch)
	if row := derivePoint(withDrop, nil); math.Abs(row.Drop-(-7)) > 1e-9 {
		t.Errorf("drop = %f, want the legacy drop field", row.Drop)
	}

	if row := derivePoint(base, nil); row.Drop != 0 || row.Windage != 0 {
		t.Errorf("drop/windage = %f/%f, want 0/0 when no displacement fields are set", row.Drop, row.Windage)
	}
}

func TestDerivePointAdjustmentsInMil(t *testing.T) {
	p := engine.Point{
		Distance:          unit.MustCreateDistance(100, unit.DistanceYard),
		Velocity:          unit.MustCreateVelocity(2700, unit.VelocityFPS),
		DropAdjustment:    angularPtr(0.002, unit.AngularRadian),
		WindageAdjustment: angularPtr(-0.0005, unit.AngularRadian),
	}
	row := derivePoint(p, nil)
	if math.Abs(row.DropAdjustment-2) > 1e-9 {
		t.Errorf("drop adjustment = %f mil, want 2", row.DropAdjustment)
	}
	if math.Abs(row.WindageAdjustment-(-0.5)) > 1e-9 {
		t.Errorf("windage adjustment = %f mil, want -0.5", row.WindageAdjustment)
	}

	// Absent adjustments, as at the muzzle, report as zero.
	p.DropAdjustment = nil
	p.WindageAdjustment = nil
	row = derivePoint(p, nil)
	if row.DropAdjustment != 0 || row.WindageAdjustment != 0 {
		t.Error("missing adjustments must report as zero")
	}
}
