package ballistics

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"ballistics_calculator/internal/config"
	"ballistics_calculator/internal/engine"
	"ballistics_calculator/internal/logging"
	"ballistics_calculator/internal/models"
	"ballistics_calculator/internal/unit"
)

const successMessage = "Calculation completed successfully"

const zeroCacheSize = 256

// zeroKey is the complete set of inputs that influence a zero solve.
// Optional fields carry presence flags so "absent" and "zero" never
// collide; in particular two requests with different bullet weights can
// never share a cache entry.
type zeroKey struct {
	dragModel      engine.DragModel
	bc             float64
	muzzleVelocity float64
	hasWeight      bool
	weight         float64
	hasDiameter    bool
	diameter       float64
	sightHeight    float64
	hasTwist       bool
	twist          float64
	temperature    float64
	pressure       float64
	humidity       float64
	altitude       float64
	zeroDistance   float64
}

func zeroKeyFor(req models.CalculationRequest) zeroKey {
	k := zeroKey{
		dragModel:      engine.DragModelFromString(req.Ammo.DragModel),
		bc:             req.Ammo.BC,
		muzzleVelocity: req.Ammo.MuzzleVelocity,
		sightHeight:    req.Weapon.SightHeight,
		temperature:    req.Atmosphere.Temperature,
		pressure:       req.Atmosphere.Pressure,
		humidity:       req.Atmosphere.Humidity,
		altitude:       req.Atmosphere.Altitude,
		zeroDistance:   req.ZeroDistance,
	}
	if req.Ammo.BulletWeight != nil {
		k.hasWeight, k.weight = true, *req.Ammo.BulletWeight
	}
	if req.Ammo.BulletDiameter != nil {
		k.hasDiameter, k.diameter = true, *req.Ammo.BulletDiameter
	}
	if req.Weapon.Twist != nil {
		k.hasTwist, k.twist = true, *req.Weapon.Twist
	}
	return k
}

// Service runs trajectory calculations. It holds no per-request state:
// every calculation builds its own shot, so concurrent calls never leak
// a zero solve into each other. The zero-angle cache is keyed on the
// full input tuple and stores immutable solved angles only.
type Service struct {
	bounds    config.Bounds
	calc      engine.Calculator
	log       *logging.Logger
	zeroCache *lru.Cache[zeroKey, float64] // radians
}

// NewService builds a calculation service with the given bounds.
func NewService(bounds config.Bounds, log *logging.Logger) *Service {
	cache, _ := lru.New[zeroKey, float64](zeroCacheSize)
	return &Service{
		bounds:    bounds,
		calc:      engine.NewCalculator(),
		log:       log,
		zeroCache: cache,
	}
}

// Bounds returns the configured calculation limits.
func (s *Service) Bounds() config.Bounds {
	return s.bounds
}

// Validate pre-flights a request without running any physics.
func (s *Service) Validate(req models.CalculationRequest) models.ValidationResult {
	return Validate(req, s.bounds)
}

// DragModels lists the supported drag model names.
func (s *Service) DragModels() []string {
	return engine.DragModelNames()
}

// Calculate runs the full pipeline: validate, build the shot, solve the
// zero angle, simulate, resample onto the requested grid and derive the
// report rows. Any failure aborts the pipeline; a partial trajectory is
// never returned as success.
func (s *Service) Calculate(req models.CalculationRequest) (models.CalculationResponse, error) {
	if vr := Validate(req, s.bounds); !vr.Valid {
		return models.CalculationResponse{}, &ValidationError{Message: vr.Message}
	}

	s.log.Info("starting trajectory calculation",
		"max_range", req.MaxRange, "step", req.StepSize, "zero_distance", req.ZeroDistance)

	built, err := BuildShot(req)
	if err != nil {
		return models.CalculationResponse{}, &EngineError{Err: err}
	}

	zeroAngle, err := s.solveZero(req, built.Shot)
	if err != nil {
		return models.CalculationResponse{}, err
	}
	s.log.Info("zero adjustment solved", "mil", zeroAngle.In(unit.AngularMil))

	raw, err := s.calc.Fire(built.Shot,
		unit.MustCreateDistance(req.MaxRange, unit.DistanceYard),
		unit.MustCreateDistance(req.StepSize, unit.DistanceYard),
		true)
	if err != nil {
		return models.CalculationResponse{}, &EngineError{Err: err}
	}

	sampled, err := Resample(raw, req.StepSize)
	if err != nil {
		return models.CalculationResponse{}, fmt.Errorf("resampling %d raw points: %w", len(raw), err)
	}
	s.log.Info("trajectory resampled", "raw_points", len(raw), "grid_points", len(sampled))

	points := make([]models.TrajectoryPoint, len(sampled))
	for i, p := range sampled {
		points[i] = derivePoint(p, built.BulletWeight)
	}

	return assemble(zeroAngle, points), nil
}

// solveZero resolves the zero angle for the shot, consulting the cache
// first. On a miss the engine solver runs and mutates the shot's sight
// angle; on a hit the cached angle is applied to the freshly built shot,
// which is equivalent because the shot is rebuilt per request.
func (s *Service) solveZero(req models.CalculationRequest, shot *engine.Shot) (unit.Angular, error) {
	key := zeroKeyFor(req)
	if radians, ok := s.zeroCache.Get(key); ok {
		angle := unit.MustCreateAngular(radians, unit.AngularRadian)
		shot.SightAngle = angle
		return angle, nil
	}

	angle, err := s.calc.ZeroAngle(shot, unit.MustCreateDistance(req.ZeroDistance, unit.DistanceYard))
	if err != nil {
		return unit.Angular{}, &ZeroConvergenceError{Err: err}
	}
	s.zeroCache.Add(key, angle.In(unit.AngularRadian))
	return angle, nil
}

// assemble composes the success response. It is only reached when every
// upstream stage succeeded.
func assemble(zeroAngle unit.Angular, points []models.TrajectoryPoint) models.CalculationResponse {
	return models.CalculationResponse{
		Trajectory:     points,
		ZeroAdjustment: zeroAngle.In(unit.AngularMil),
		Success:        true,
		Message:        successMessage,
	}
}
