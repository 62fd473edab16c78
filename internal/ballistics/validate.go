package ballistics

import (
	"fmt"
	"math"

	"ballistics_calculator/internal/config"
	"ballistics_calculator/internal/models"
)

// fieldBound is a closed numeric range for one request field.
type fieldBound struct {
	name     string
	unit     string
	min, max float64
}

var (
	boundSightHeight    = fieldBound{"Sight height", "inches", 0.1, 10}
	boundTwist          = fieldBound{"Barrel twist", "inches", 1, 50}
	boundBC             = fieldBound{"Ballistic coefficient", "", 0.1, 2}
	boundMuzzleVelocity = fieldBound{"Muzzle velocity", "fps", 500, 5000}
	boundBulletWeight   = fieldBound{"Bullet weight", "grains", 20, 1000}
	boundBulletDiameter = fieldBound{"Bullet diameter", "inches", 0.1, 1}
	boundTemperature    = fieldBound{"Temperature", "°F", -50, 150}
	boundPressure       = fieldBound{"Pressure", "inHg", 20, 35}
	boundHumidity       = fieldBound{"Humidity", "", 0, 1}
	boundAltitude       = fieldBound{"Altitude", "feet", 0, 20000}
	boundWindSpeed      = fieldBound{"Wind speed", "mph", 0, 100}
	boundWindDirection  = fieldBound{"Wind direction", "o'clock", 1, 12}
	boundZeroDistance   = fieldBound{"Zero distance", "yards", 0, 500}
)

func (b fieldBound) check(v float64) string {
	if v < b.min || v > b.max {
		if b.unit == "" {
			return fmt.Sprintf("%s must be between %g and %g", b.name, b.min, b.max)
		}
		return fmt.Sprintf("%s must be between %g and %g %s", b.name, b.min, b.max, b.unit)
	}
	return ""
}

// Validate checks a request against the configured bounds without doing
// any physics work. The range/step rules run in a fixed order and the
// first failure wins; per-field bounds follow. The estimated point count
// is advisory and is reported even for invalid requests so callers can
// pre-flight sizing.
func Validate(req models.CalculationRequest, bounds config.Bounds) models.ValidationResult {
	estimated := 0
	if req.StepSize > 0 && req.MaxRange >= req.ZeroDistance {
		estimated = int(math.Floor((req.MaxRange-req.ZeroDistance)/req.StepSize)) + 1
	}

	invalid := func(msg string) models.ValidationResult {
		return models.ValidationResult{Valid: false, Message: msg, EstimatedPoints: estimated}
	}

	switch {
	case req.MaxRange > bounds.MaxRangeYards:
		return invalid(fmt.Sprintf("Maximum range cannot exceed %g yards", bounds.MaxRangeYards))
	case req.StepSize > bounds.MaxStepSize:
		return invalid(fmt.Sprintf("Step size cannot exceed %g yards", bounds.MaxStepSize))
	case req.StepSize < bounds.MinStepSize:
		return invalid(fmt.Sprintf("Step size cannot be less than %g yards", bounds.MinStepSize))
	case req.ZeroDistance < bounds.MinRangeYards:
		return invalid(fmt.Sprintf("Zero distance cannot be less than %g yards", bounds.MinRangeYards))
	case req.MaxRange <= req.ZeroDistance:
		return invalid("Maximum range must be greater than zero distance")
	}

	checks := []string{
		boundSightHeight.check(req.Weapon.SightHeight),
		boundBC.check(req.Ammo.BC),
		boundMuzzleVelocity.check(req.Ammo.MuzzleVelocity),
		boundTemperature.check(req.Atmosphere.Temperature),
		boundPressure.check(req.Atmosphere.Pressure),
		boundHumidity.check(req.Atmosphere.Humidity),
		boundAltitude.check(req.Atmosphere.Altitude),
		boundZeroDistance.check(req.ZeroDistance),
	}
	if req.Wind.Speed != 0 {
		checks = append(checks,
			boundWindSpeed.check(req.Wind.Speed),
			boundWindDirection.check(req.Wind.Direction))
	}
	if req.Weapon.Twist != nil {
		checks = append(checks, boundTwist.check(*req.Weapon.Twist))
	}
	if req.Ammo.BulletWeight != nil {
		checks = append(checks, boundBulletWeight.check(*req.Ammo.BulletWeight))
	}
	if req.Ammo.BulletDiameter != nil {
		checks = append(checks, boundBulletDiameter.check(*req.Ammo.BulletDiameter))
	}
	for _, msg := range checks {
		if msg != "" {
			return invalid(msg)
		}
	}

	return models.ValidationResult{
		Valid:           true,
		Message:         "Parameters are valid",
		EstimatedPoints: estimated,
	}
}
