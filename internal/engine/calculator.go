package engine

import (
	"fmt"
	"math"

	"ballistics_calculator/internal/unit"
)

const (
	cZeroFindingAccuracy = 0.000005
	cMinimumVelocity     = 50.0
	cMaximumDrop         = -15000
	cMaxIterations       = 10
	cGravityConstant     = -32.17405
)

// Point is one raw trajectory sample. Distance, Time, Velocity and Mach
// are always present; the remaining fields are nil when the calculator
// was not asked for (or cannot produce) the derived data.
type Point struct {
	Distance unit.Distance
	Time     float64
	Velocity unit.Velocity
	Mach     float64

	// Height is the vertical position relative to the sight line.
	// Drop carries the same quantity under its legacy name when the
	// extra-data set was not requested.
	Height            *unit.Distance
	Drop              *unit.Distance
	Windage           *unit.Distance
	DropAdjustment    *unit.Angular
	WindageAdjustment *unit.Angular
	Energy            *unit.Energy
}

// Calculator integrates projectile trajectories using point-mass ballistics
// with standard drag curves. The zero value is not usable; use NewCalculator.
type Calculator struct {
	maximumCalculatorStepSize unit.Distance
}

// NewCalculator returns a calculator with the default internal step cap
// of one foot.
func NewCalculator() Calculator {
	return Calculator{
		maximumCalculatorStepSize: unit.MustCreateDistance(1, unit.DistanceFoot),
	}
}

// SetMaximumCalculatorStepSize caps the integration step. Smaller values
// are more precise and slower; 0.5 to 5 feet is the practical range.
func (c *Calculator) SetMaximumCalculatorStepSize(x unit.Distance) {
	c.maximumCalculatorStepSize = x
}

func (c Calculator) calculationStep(step float64) float64 {
	step = step / 2 // twice per output step for velocity accuracy

	maximumStep := c.maximumCalculatorStepSize.In(unit.DistanceFoot)
	if step > maximumStep {
		stepOrder := int(math.Floor(math.Log10(step)))
		maximumOrder := int(math.Floor(math.Log10(maximumStep)))
		step = step / math.Pow(10, float64(stepOrder-maximumOrder+1))
	}
	return step
}

// ZeroAngle solves for the sight angle that zeroes the shot at the given
// distance and stores it on the shot. It fails when the projectile cannot
// reach the zero distance or the iteration does not converge.
func (c Calculator) ZeroAngle(shot *Shot, zeroDistance unit.Distance) (unit.Angular, error) {
	calcStep := c.calculationStep(unit.MustCreateDistance(10, zeroDistance.Units()).In(unit.DistanceFoot))

	mach := shot.Atmosphere.Mach().In(unit.VelocityFPS)
	densityFactor := shot.Atmosphere.densityFactor()
	muzzleVelocity := shot.Ammo.MuzzleVelocity.In(unit.VelocityFPS)
	barrelElevation := 0.0

	zeroFindingError := cZeroFindingAccuracy * 2
	gravityVector := vec(0, cGravityConstant, 0)

	var iterations int
	for zeroFindingError > cZeroFindingAccuracy && iterations < cMaxIterations {
		velocity := muzzleVelocity
		// x downrange, y drop, z windage
		rangeVector := vec(0.0, -shot.Weapon.SightHeight.In(unit.DistanceFoot), 0)
		velocityVector := vec(math.Cos(barrelElevation), math.Sin(barrelElevation), 0).scale(velocity)
		zeroFeet := zeroDistance.In(unit.DistanceFoot)
		maximumRange := zeroFeet + calcStep

		reached := false
		for rangeVector.x <= maximumRange {
			if velocity < cMinimumVelocity || rangeVector.y < cMaximumDrop {
				break
			}

			deltaTime := calcStep / velocityVector.x
			velocity = velocityVector.magnitude()
			drag := densityFactor * velocity * shot.Ammo.Bullet.BC.Drag(velocity/mach)
			velocityVector = velocityVector.sub(velocityVector.scale(drag).sub(gravityVector).scale(deltaTime))
			rangeVector = rangeVector.add(vec(calcStep, velocityVector.y*deltaTime, velocityVector.z*deltaTime))
			velocity = velocityVector.magnitude()

			if math.Abs(rangeVector.x-zeroFeet) < 0.5*calcStep {
				zeroFindingError = math.Abs(rangeVector.y)
				barrelElevation = barrelElevation - rangeVector.y/rangeVector.x
				reached = true
				break
			}
		}
		if !reached {
			return unit.Angular{}, fmt.Errorf("projectile cannot reach the zero distance %s", zeroDistance)
		}
		iterations++
	}

	if zeroFindingError > cZeroFindingAccuracy {
		return unit.Angular{}, fmt.Errorf("zero finding did not converge after %d iterations, residual %g ft", iterations, zeroFindingError)
	}

	angle := unit.MustCreateAngular(barrelElevation, unit.AngularRadian)
	shot.SightAngle = angle
	return angle, nil
}

// Fire simulates the shot from the muzzle to maxRange, emitting a point
// every step of downrange travel. With extraData the points carry height,
// windage, angular adjustments and energy; without it only the legacy
// drop and windage displacement fields are populated.
func (c Calculator) Fire(shot *Shot, maxRange, step unit.Distance, extraData bool) ([]Point, error) {
	rangeTo := maxRange.In(unit.DistanceFoot)
	stepFeet := step.In(unit.DistanceFoot)
	if rangeTo <= 0 || stepFeet <= 0 {
		return nil, fmt.Errorf("range %s and step %s must both be positive", maxRange, step)
	}

	calcStep := c.calculationStep(stepFeet)
	bulletWeight := shot.Ammo.Bullet.Weight.In(unit.WeightGrain)

	stabilityCoefficient := 1.0
	calculateDrift := false
	if shot.Weapon.HasTwist && shot.Ammo.Bullet.HasDimensions {
		stabilityCoefficient = stabilityFactor(shot)
		calculateDrift = true
	}
	twistCoefficient := 0.0
	if calculateDrift {
		if shot.Weapon.Twist.Direction == TwistLeft {
			twistCoefficient = 1
		} else {
			twistCoefficient = -1
		}
	}

	maxPoints := int(math.Floor(rangeTo/stepFeet)) + 1
	points := make([]Point, 0, maxPoints)

	barrelElevation := shot.SightAngle.In(unit.AngularRadian)
	alt0 := shot.Atmosphere.Altitude().In(unit.DistanceFoot)
	densityFactor, mach := shot.Atmosphere.densityFactorAndMachForAltitude(alt0)

	var windVector vec3
	currentWind := 0
	nextWindRange := 1e7
	if len(shot.Winds) > 0 {
		if len(shot.Winds) > 1 {
			nextWindRange = shot.Winds[0].Until.In(unit.DistanceFoot)
		}
		windVector = windToVector(shot.SightAngle, shot.Winds[0])
	}

	muzzleVelocity := shot.Ammo.MuzzleVelocity.In(unit.VelocityFPS)
	gravityVector := vec(0, cGravityConstant, 0)
	velocity := muzzleVelocity
	time := 0.0

	// x downrange, y drop, z windage
	rangeVector := vec(0.0, -shot.Weapon.SightHeight.In(unit.DistanceFoot), 0)
	velocityVector := vec(math.Cos(barrelElevation), math.Sin(barrelElevation), 0).scale(velocity)

	nextRangeDistance := 0.0

	for rangeVector.x <= rangeTo+calcStep {
		if velocity < cMinimumVelocity || rangeVector.y < cMaximumDrop {
			break
		}

		densityFactor, mach = shot.Atmosphere.densityFactorAndMachForAltitude(alt0 + rangeVector.y)

		if rangeVector.x >= nextWindRange {
			currentWind++
			windVector = windToVector(shot.SightAngle, shot.Winds[currentWind])
			if currentWind == len(shot.Winds)-1 {
				nextWindRange = 1e7
			} else {
				nextWindRange = shot.Winds[currentWind].Until.In(unit.DistanceFoot)
			}
		}

		if rangeVector.x >= nextRangeDistance {
			windage := rangeVector.z
			if calculateDrift {
				windage += (1.25 * (stabilityCoefficient + 1.2) * math.Pow(time, 1.83) * twistCoefficient) / 12.0
			}

			// The integrator's x is the first step at or past the grid
			// line; the accumulated overshoot can exceed the caller's
			// step tolerance, so the point is stamped with the grid
			// distance itself.
			points = append(points, c.emit(nextRangeDistance, rangeVector, windage, time, velocity, mach, bulletWeight, extraData))
			nextRangeDistance = float64(len(points)) * stepFeet
			if len(points) == maxPoints {
				break
			}
		}

		deltaTime := calcStep / velocityVector.x
		velocityAdjusted := velocityVector.sub(windVector)
		velocity = velocityAdjusted.magnitude()
		drag := densityFactor * velocity * shot.Ammo.Bullet.BC.Drag(velocity/mach)
		velocityVector = velocityVector.sub(velocityAdjusted.scale(drag).sub(gravityVector).scale(deltaTime))
		deltaRangeVector := vec(calcStep, velocityVector.y*deltaTime, velocityVector.z*deltaTime)
		rangeVector = rangeVector.add(deltaRangeVector)
		velocity = velocityVector.magnitude()
		time = time + deltaRangeVector.magnitude()/velocity
	}

	return points, nil
}

func (c Calculator) emit(distance float64, rangeVector vec3, windage, time, velocity, mach, bulletWeight float64, extraData bool) Point {
	p := Point{
		Distance: unit.MustCreateDistance(distance, unit.DistanceFoot),
		Time:     time,
		Velocity: unit.MustCreateVelocity(velocity, unit.VelocityFPS),
		Mach:     velocity / mach,
	}

	y := unit.MustCreateDistance(rangeVector.y, unit.DistanceFoot)
	w := unit.MustCreateDistance(windage, unit.DistanceFoot)

	if !extraData {
		p.Drop = &y
		p.Windage = &w
		return p
	}

	p.Height = &y
	p.Windage = &w
	e := unit.MustCreateEnergy(kineticEnergy(bulletWeight, velocity), unit.EnergyFootPound)
	p.Energy = &e

	// Angular corrections are undefined at the muzzle.
	if distance > 0 {
		da := unit.MustCreateAngular(correction(distance, rangeVector.y), unit.AngularRadian)
		wa := unit.MustCreateAngular(correction(distance, windage), unit.AngularRadian)
		p.DropAdjustment = &da
		p.WindageAdjustment = &wa
	}
	return p
}

// stabilityFactor is the Miller twist-rule stability coefficient with
// velocity and atmosphere corrections.
func stabilityFactor(shot *Shot) float64 {
	weight := shot.Ammo.Bullet.Weight.In(unit.WeightGrain)
	diameter := shot.Ammo.Bullet.Diameter.In(unit.DistanceInch)
	twist := shot.Weapon.Twist.Rate.In(unit.DistanceInch) / diameter
	length := shot.Ammo.Bullet.Length.In(unit.DistanceInch) / diameter
	sd := 30 * weight / (math.Pow(twist, 2) * math.Pow(diameter, 3) * length * (1 + math.Pow(length, 2)))
	fv := math.Pow(shot.Ammo.MuzzleVelocity.In(unit.VelocityFPS)/2800, 1.0/3.0)

	ft := shot.Atmosphere.Temperature().In(unit.TemperatureFahrenheit)
	pt := shot.Atmosphere.Pressure().In(unit.PressureInHg)
	ftp := ((ft + 460) / (59 + 460)) * (29.92 / pt)

	return sd * fv * ftp
}

func windToVector(sightAngle unit.Angular, wind Wind) vec3 {
	sightCosine := math.Cos(sightAngle.In(unit.AngularRadian))
	sightSine := math.Sin(sightAngle.In(unit.AngularRadian))
	rangeVelocity := wind.Speed.In(unit.VelocityFPS) * math.Cos(wind.Direction.In(unit.AngularRadian))
	crossComponent := wind.Speed.In(unit.VelocityFPS) * math.Sin(wind.Direction.In(unit.AngularRadian))
	return vec(rangeVelocity*sightCosine, -rangeVelocity*sightSine, crossComponent)
}

func correction(distance, offset float64) float64 {
	return math.Atan(offset / distance)
}

func kineticEnergy(bulletWeightGrains, velocityFPS float64) float64 {
	return bulletWeightGrains * math.Pow(velocityFPS, 2) / 450400
}
