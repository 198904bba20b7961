package battle

import "math"

// cpm holds the level multiplier for whole levels 1–51 (index 0 = level 1).
// Half levels are derived below.
var cpm = []float64{
	0.094, 0.16639787, 0.21573247, 0.25572005, 0.29024988,
	0.3210876, 0.34921268, 0.3752356, 0.39956728, 0.4225,
	0.44310755, 0.4627984, 0.48168495, 0.49985844, 0.51739395,
	0.5343543, 0.5507927, 0.5667545, 0.5822789, 0.5974,
	0.6121573, 0.6265671, 0.64065295, 0.65443563, 0.667934,
	0.6811649, 0.69414365, 0.7068842, 0.7193991, 0.7317,
	0.7377695, 0.74378943, 0.74976104, 0.7556855, 0.76156384,
	0.76739717, 0.7731865, 0.77893275, 0.784637, 0.7903,
	0.79530001, 0.8003, 0.8053, 0.81029999, 0.81529999,
	0.82029999, 0.82529999, 0.83029999, 0.83529999, 0.84029999,
	0.84529999,
}

const (
	MinLevel = 1.0
	MaxLevel = 51.0
)

// LevelMultiplier returns the stat multiplier for a level in half steps.
// Half-level values are the root-mean-square of the neighboring whole levels.
func LevelMultiplier(level float64) float64 {
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	whole := int(level)
	base := cpm[whole-1]
	if level == float64(whole) || whole >= int(MaxLevel) {
		return base
	}
	next := cpm[whole]
	return math.Sqrt((base*base + next*next) / 2)
}

// Stat stage bounds.
const (
	MinBuffStage = -4
	MaxBuffStage = 4
)

// StageMultiplier maps a stat stage in [-4, 4] to its damage multiplier:
// (2+stage)/2 for positive stages, 2/(2-stage) for negative ones.
func StageMultiplier(stage int) float64 {
	stage = ClampStage(stage)
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// ClampStage clamps a stat stage to the legal [-4, 4] range.
func ClampStage(stage int) int {
	if stage < MinBuffStage {
		return MinBuffStage
	}
	if stage > MaxBuffStage {
		return MaxBuffStage
	}
	return stage
}
