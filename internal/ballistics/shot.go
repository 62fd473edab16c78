package ballistics

import (
	"fmt"

	"ballistics_calculator/internal/engine"
	"ballistics_calculator/internal/models"
	"ballistics_calculator/internal/unit"
)

// BuiltShot pairs the engine input with the bullet weight retained for
// the energy fallback. The weight lives outside the shot so deriving
// energy never has to touch the shot's own weight field.
type BuiltShot struct {
	Shot         *engine.Shot
	BulletWeight *float64 // grains
}

// BuildShot maps a validated request into the engine's input model.
// An unrecognized drag model name falls back to G1. Powder temperature is
// set equal to the ambient temperature; there is no independent input for
// it. Absent bullet weight and diameter become neutral zero values.
func BuildShot(req models.CalculationRequest) (BuiltShot, error) {
	bc, err := engine.CreateBallisticCoefficient(req.Ammo.BC, engine.DragModelFromString(req.Ammo.DragModel))
	if err != nil {
		return BuiltShot{}, fmt.Errorf("building drag model: %w", err)
	}

	var weight, diameter float64
	if req.Ammo.BulletWeight != nil {
		weight = *req.Ammo.BulletWeight
	}
	if req.Ammo.BulletDiameter != nil {
		diameter = *req.Ammo.BulletDiameter
	}

	bullet := engine.Projectile{
		BC:       bc,
		Weight:   unit.MustCreateWeight(weight, unit.WeightGrain),
		Diameter: unit.MustCreateDistance(diameter, unit.DistanceInch),
	}

	ambient := unit.MustCreateTemperature(req.Atmosphere.Temperature, unit.TemperatureFahrenheit)
	ammo := engine.Ammo{
		Bullet:            bullet,
		MuzzleVelocity:    unit.MustCreateVelocity(req.Ammo.MuzzleVelocity, unit.VelocityFPS),
		PowderTemperature: ambient,
	}

	weapon := engine.Weapon{
		SightHeight: unit.MustCreateDistance(req.Weapon.SightHeight, unit.DistanceInch),
	}
	if req.Weapon.Twist != nil {
		weapon.HasTwist = true
		weapon.Twist = engine.TwistInfo{
			Direction: engine.TwistRight,
			Rate:      unit.MustCreateDistance(*req.Weapon.Twist, unit.DistanceInch),
		}
	}

	atmo, err := engine.CreateAtmosphere(
		unit.MustCreateDistance(req.Atmosphere.Altitude, unit.DistanceFoot),
		unit.MustCreatePressure(req.Atmosphere.Pressure, unit.PressureInHg),
		ambient,
		req.Atmosphere.Humidity,
	)
	if err != nil {
		return BuiltShot{}, fmt.Errorf("building atmosphere: %w", err)
	}

	var winds []engine.Wind
	if req.Wind.Speed > 0 {
		winds = []engine.Wind{{
			Until:     unit.MustCreateDistance(9999, unit.DistanceKilometer),
			Speed:     unit.MustCreateVelocity(req.Wind.Speed, unit.VelocityMPH),
			Direction: unit.MustCreateAngular(req.Wind.Direction, unit.AngularOClock),
		}}
	}

	return BuiltShot{
		Shot: &engine.Shot{
			Weapon:     weapon,
			Ammo:       ammo,
			Atmosphere: atmo,
			Winds:      winds,
		},
		BulletWeight: req.Ammo.BulletWeight,
	}, nil
}
