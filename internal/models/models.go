package models

// WeaponData describes the sighting system and barrel.
type WeaponData struct {
	SightHeight float64  `json:"sight_height"`    // inches
	Twist       *float64 `json:"twist,omitempty"` // inches per turn
}

// AmmoData describes the cartridge.
type AmmoData struct {
	BC             float64  `json:"bc"`
	DragModel      string   `json:"drag_model"`                // "G1" or "G7"
	MuzzleVelocity float64  `json:"muzzle_velocity"`           // fps
	BulletWeight   *float64 `json:"bullet_weight,omitempty"`   // grains
	BulletDiameter *float64 `json:"bullet_diameter,omitempty"` // inches
}

// AtmosphericData describes the shooting conditions.
type AtmosphericData struct {
	Temperature float64 `json:"temperature"` // °F
	Pressure    float64 `json:"pressure"`    // inHg
	Humidity    float64 `json:"humidity"`    // 0-1 fraction
	Altitude    float64 `json:"altitude"`    // feet
}

// WindData is a single constant wind.
type WindData struct {
	Speed     float64 `json:"speed"`     // mph
	Direction float64 `json:"direction"` // o'clock, 1-12
}

// CalculationRequest is the full input to a trajectory calculation.
type CalculationRequest struct {
	Weapon       WeaponData      `json:"weapon"`
	Ammo         AmmoData        `json:"ammo"`
	Atmosphere   AtmosphericData `json:"atmosphere"`
	Wind         WindData        `json:"wind"`
	ZeroDistance float64         `json:"zero_distance"` // yards
	MaxRange     float64         `json:"max_range"`     // yards
	StepSize     float64         `json:"step_size"`     // yards
}

// TrajectoryPoint is one row of the trajectory report.
type TrajectoryPoint struct {
	Distance          float64 `json:"distance"`           // yards
	Drop              float64 `json:"drop"`               // inches
	Windage           float64 `json:"windage"`            // inches
	Velocity          float64 `json:"velocity"`           // fps
	Energy            float64 `json:"energy"`             // foot-pounds
	Time              float64 `json:"time"`               // seconds
	DropAdjustment    float64 `json:"drop_adjustment"`    // mil
	WindageAdjustment float64 `json:"windage_adjustment"` // mil
}

// CalculationResponse is the successful calculation envelope.
type CalculationResponse struct {
	Trajectory     []TrajectoryPoint `json:"trajectory"`
	ZeroAdjustment float64           `json:"zero_adjustment"` // mil
	Success        bool              `json:"success"`
	Message        string            `json:"message"`
}

// ValidationResult is the cheap pre-flight answer; EstimatedPoints is
// advisory and may differ from the actual point count by rounding.
type ValidationResult struct {
	Valid           bool   `json:"valid"`
	Message         string `json:"message"`
	EstimatedPoints int    `json:"estimated_points"`
}

// ErrorResponse is the error envelope for failed requests.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code,omitempty"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}
