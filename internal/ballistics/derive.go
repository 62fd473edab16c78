package ballistics

import (
	"math"

	"ballistics_calculator/internal/engine"
	"ballistics_calculator/internal/models"
	"ballistics_calculator/internal/unit"
)

const (
	grainsPerPound   = 7000.0
	gravityFtPerSec2 = 32.174
)

// fallbackEnergy is the closed-form kinetic energy in foot-pounds for a
// bullet weight in grains and a velocity in fps.
func fallbackEnergy(weightGrains, velocityFPS float64) float64 {
	massPounds := weightGrains / grainsPerPound
	return 0.5 * massPounds * velocityFPS * velocityFPS / gravityFtPerSec2
}

// derivePoint converts one raw engine point into a report row. Engines
// expose the vertical displacement under different names depending on
// configuration, so drop prefers the height field and falls back to the
// legacy target-drop field; a missing display field never fails the
// calculation. Energy uses the engine value when it is finite and
// non-zero, the closed-form fallback when a bullet weight is known, and
// 0 otherwise.
func derivePoint(p engine.Point, bulletWeightGrains *float64) models.TrajectoryPoint {
	drop := 0.0
	if p.Height != nil {
		drop = p.Height.In(unit.DistanceInch)
	} else if p.Drop != nil {
		drop = p.Drop.In(unit.DistanceInch)
	}

	windage := 0.0
	if p.Windage != nil {
		windage = p.Windage.In(unit.DistanceInch)
	}

	velocity := p.Velocity.In(unit.VelocityFPS)

	energy := 0.0
	if p.Energy != nil {
		energy = p.Energy.In(unit.EnergyFootPound)
	}
	if (energy == 0 || math.IsNaN(energy) || math.IsInf(energy, 0)) && bulletWeightGrains != nil {
		energy = fallbackEnergy(*bulletWeightGrains, velocity)
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		energy = 0
	}

	dropAdj := 0.0
	if p.DropAdjustment != nil {
		dropAdj = p.DropAdjustment.In(unit.AngularMil)
	}
	windageAdj := 0.0
	if p.WindageAdjustment != nil {
		windageAdj = p.WindageAdjustment.In(unit.AngularMil)
	}

	return models.TrajectoryPoint{
		Distance:          p.Distance.In(unit.DistanceYard),
		Drop:              drop,
		Windage:           windage,
		Velocity:          velocity,
		Energy:            energy,
		Time:              p.Time,
		DropAdjustment:    dropAdj,
		WindageAdjustment: windageAdj,
	}
}
