package ballistics

import (
	"errors"
	"fmt"
)

// Error codes surfaced in the error envelope so callers can distinguish
// failure kinds without parsing messages.
const (
	CodeValidation      = "validation_error"
	CodeZeroConvergence = "zero_convergence"
	CodeEngine          = "engine_computation"
	CodeDataShape       = "data_shape"
)

// ValidationError reports a request that failed a validation rule before
// any physics work was done.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ZeroConvergenceError reports that the engine could not find a zero
// angle for the shot and distance. It is never silently defaulted to 0.
type ZeroConvergenceError struct {
	Err error
}

func (e *ZeroConvergenceError) Error() string {
	return fmt.Sprintf("zero solve failed: %v", e.Err)
}

func (e *ZeroConvergenceError) Unwrap() error {
	return e.Err
}

// EngineError reports a failure inside the physics engine. Integration is
// deterministic, so these are not retried.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("calculation error: %v", e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// ErrNoGridPoints reports a trajectory with no points on the requested
// distance grid, which is distinct from a clean empty result.
var ErrNoGridPoints = errors.New("trajectory contains no points on the requested step grid")

// ErrorCode classifies an error from the calculation pipeline.
func ErrorCode(err error) string {
	var ve *ValidationError
	var ze *ZeroConvergenceError
	switch {
	case errors.As(err, &ve):
		return CodeValidation
	case errors.As(err, &ze):
		return CodeZeroConvergence
	case errors.Is(err, ErrNoGridPoints):
		return CodeDataShape
	default:
		return CodeEngine
	}
}
