package engine

import "ballistics_calculator/internal/unit"

// TwistDirection is the direction of the barrel rifling.
type TwistDirection byte

const (
	TwistRight TwistDirection = iota
	TwistLeft
)

// TwistInfo describes the barrel rifling, used for spin drift only.
type TwistInfo struct {
	Direction TwistDirection
	Rate      unit.Distance
}

// Projectile describes the bullet. Dimensions are only needed when spin
// drift is to be calculated; HasDimensions reports whether both diameter
// and length were supplied.
type Projectile struct {
	BC            BallisticCoefficient
	Weight        unit.Weight
	HasDimensions bool
	Diameter      unit.Distance
	Length        unit.Distance
}

// Ammo is a projectile loaded to a muzzle velocity. PowderTemperature is
// informational; no powder sensitivity model is applied.
type Ammo struct {
	Bullet            Projectile
	MuzzleVelocity    unit.Velocity
	PowderTemperature unit.Temperature
}

// Weapon describes the sight geometry and, optionally, the rifling twist.
type Weapon struct {
	SightHeight unit.Distance
	HasTwist    bool
	Twist       TwistInfo
}

// Wind is one wind segment, active until the given downrange distance.
type Wind struct {
	Until     unit.Distance
	Speed     unit.Velocity
	Direction unit.Angular
}

// Shot is the fully resolved input to the calculator. SightAngle is the
// barrel elevation relative to the sight line; ZeroAngle sets it in place
// when solving for a zero, so a Shot must not be reused across unrelated
// calculations without rebuilding it.
type Shot struct {
	Weapon     Weapon
	Ammo       Ammo
	Atmosphere Atmosphere
	Winds      []Wind
	SightAngle unit.Angular
}
