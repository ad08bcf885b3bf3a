package game

import (
	"math"

	"github.com/vovakirdan/tui-skyfall/internal/config"
)

// Multiplier returns the difficulty scalar for a score: a monotonically
// non-decreasing step function that grows by StepAmount every StepScore points.
func Multiplier(d config.Difficulty, score int) float64 {
	if d.StepScore <= 0 {
		return 1
	}
	return 1 + float64(score/d.StepScore)*d.StepAmount
}

// SpawnChance returns the per-tick spawn probability for an entity class,
// scaled by difficulty and capped at limit.
func SpawnChance(base, limit float64, d config.Difficulty, score int) float64 {
	return math.Min(base*Multiplier(d, score), limit)
}

// ScrollSpeed returns the horizontal speed for an entity class at the given
// score, in logical units per nominal tick.
func ScrollSpeed(base float64, d config.Difficulty, score int) float64 {
	return base * Multiplier(d, score)
}
