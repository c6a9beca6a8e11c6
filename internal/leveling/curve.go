package leveling

import (
	"fmt"
	"math"
)

// Curve converts accumulated experience into levels with a geometric tier cost.
// Level 1 needs BaseExperience to reach level 2, and every further tier costs
// Multiplier times the previous one.
type Curve struct {
	BaseExperience float64 `json:"base_xp"`
	Multiplier     float64 `json:"xp_multiplier"`
}

// NewCurve validates the parameters and returns a Curve
func NewCurve(baseExperience, multiplier float64) (Curve, error) {
	if !(baseExperience > 0) || math.IsInf(baseExperience, 0) {
		return Curve{}, fmt.Errorf("base experience must be a positive number, got %v", baseExperience)
	}
	if !(multiplier > 0) || math.IsInf(multiplier, 0) {
		return Curve{}, fmt.Errorf("experience multiplier must be a positive number, got %v", multiplier)
	}
	return Curve{BaseExperience: baseExperience, Multiplier: multiplier}, nil
}

// DefaultCurve returns the curve used when no configuration is present
func DefaultCurve() Curve {
	return Curve{BaseExperience: DefaultBaseExperience, Multiplier: DefaultMultiplier}
}

// TierCost returns the experience needed to advance from level to level+1
func (c Curve) TierCost(level int) float64 {
	if level < 1 {
		level = 1
	}
	return c.BaseExperience * math.Pow(c.Multiplier, float64(level-1))
}

// LevelFor returns the level reached with the given total experience.
// Zero, negative and NaN experience all map to level 1.
func (c Curve) LevelFor(experience float64) int {
	level, _ := c.levelAndStart(experience)
	return level
}

// ExperienceToNext returns how much experience is still missing for the next level.
// At the top of the reachable curve (the tier cost overflows, the sum stops
// growing or MaxLevel is hit) there is no next level and the result is 0.
func (c Curve) ExperienceToNext(experience float64) float64 {
	level, start := c.levelAndStart(experience)
	need := start + c.TierCost(level) - experience
	if !(need > 0) || math.IsInf(need, 0) {
		return 0
	}
	return need
}

// MinExperienceForLevel returns the smallest total experience that yields level.
// It sums tiers 1..level-1 in the same order LevelFor does, so
// LevelFor(MinExperienceForLevel(l)) == l for every reachable level.
func (c Curve) MinExperienceForLevel(level int) float64 {
	if level > MaxLevel {
		level = MaxLevel
	}
	accumulated := 0.0
	for n := 1; n < level && !math.IsInf(accumulated, 0); n++ {
		accumulated += c.TierCost(n)
	}
	return accumulated
}

// ExperienceForLevel is MinExperienceForLevel plus a reachability check: ok is
// false when the experience is not finite or does not map back to level.
func (c Curve) ExperienceForLevel(level int) (float64, bool) {
	experience := c.MinExperienceForLevel(level)
	if math.IsInf(experience, 0) || math.IsNaN(experience) {
		return 0, false
	}
	return experience, c.LevelFor(experience) == level
}

// levelAndStart walks the tiers and returns the level together with the
// cumulative experience at which that level starts
func (c Curve) levelAndStart(experience float64) (int, float64) {
	if !(experience > 0) {
		return 1, 0
	}

	level := 1
	accumulated := 0.0
	for level < MaxLevel {
		next := accumulated + c.TierCost(level)
		if next > experience {
			break
		}
		// The tier no longer moves the sum: every further level is free, stop here
		// instead of spinning until MaxLevel.
		if next == accumulated {
			break
		}
		accumulated = next
		level++
	}
	return level, accumulated
}
