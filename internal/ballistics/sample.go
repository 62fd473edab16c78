package ballistics

import (
	"math"

	"ballistics_calculator/internal/engine"
	"ballistics_calculator/internal/unit"
)

// stepTolerance is the grid matching tolerance in yards. It absorbs the
// floating-point drift an engine accumulates during integration without
// admitting off-grid points.
const stepTolerance = 1e-4

// Resample filters a raw trajectory down to the caller's distance grid:
// the muzzle point plus every multiple of stepYards. The engine is free
// to emit extra or slightly misaligned points; only points landing on the
// grid within tolerance survive, and a grid distance appearing twice
// keeps its first occurrence.
func Resample(raw []engine.Point, stepYards float64) ([]engine.Point, error) {
	out := make([]engine.Point, 0, len(raw))
	lastIndex := -1
	for _, p := range raw {
		d := p.Distance.In(unit.DistanceYard)

		var index int
		switch {
		case math.Abs(d) < stepTolerance:
			index = 0
		default:
			ratio := d / stepYards
			if math.Abs(ratio-math.Round(ratio)) >= stepTolerance {
				continue
			}
			index = int(math.Round(ratio))
		}

		if index <= lastIndex {
			continue
		}
		out = append(out, p)
		lastIndex = index
	}

	if len(out) == 0 {
		return nil, ErrNoGridPoints
	}
	return out, nil
}
