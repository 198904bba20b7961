package battle

import (
	"math"
	"testing"
)

func TestLevelMultiplierWholeLevels(t *testing.T) {
	cases := []struct {
		level float64
		want  float64
	}{
		{1, 0.094},
		{10, 0.4225},
		{20, 0.5974},
		{40, 0.7903},
		{51, 0.84529999},
	}
	for _, c := range cases {
		if got := LevelMultiplier(c.level); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("LevelMultiplier(%g) = %v, want %v", c.level, got, c.want)
		}
	}
}

func TestLevelMultiplierHalfLevels(t *testing.T) {
	// Half levels interpolate between the surrounding whole levels.
	lo := LevelMultiplier(20)
	mid := LevelMultiplier(20.5)
	hi := LevelMultiplier(21)
	if !(lo < mid && mid < hi) {
		t.Errorf("expected %v < %v < %v", lo, mid, hi)
	}
	want := math.Sqrt((lo*lo + hi*hi) / 2)
	if math.Abs(mid-want) > 1e-9 {
		t.Errorf("LevelMultiplier(20.5) = %v, want %v", mid, want)
	}
}

func TestLevelMultiplierClampsRange(t *testing.T) {
	if got := LevelMultiplier(0); got != LevelMultiplier(MinLevel) {
		t.Errorf("below-range level = %v, want the level-1 multiplier", got)
	}
	if got := LevelMultiplier(99); got != LevelMultiplier(MaxLevel) {
		t.Errorf("above-range level = %v, want the max-level multiplier", got)
	}
}

func TestStageMultiplier(t *testing.T) {
	cases := []struct {
		stage int
		want  float64
	}{
		{0, 1.0},
		{1, 1.5},
		{2, 2.0},
		{4, 3.0},
		{-1, 2.0 / 3.0},
		{-2, 0.5},
		{-4, 1.0 / 3.0},
	}
	for _, c := range cases {
		if got := StageMultiplier(c.stage); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("StageMultiplier(%d) = %v, want %v", c.stage, got, c.want)
		}
	}
}

func TestClampStage(t *testing.T) {
	if got := ClampStage(7); got != MaxBuffStage {
		t.Errorf("ClampStage(7) = %d, want %d", got, MaxBuffStage)
	}
	if got := ClampStage(-7); got != MinBuffStage {
		t.Errorf("ClampStage(-7) = %d, want %d", got, MinBuffStage)
	}
	if got := ClampStage(3); got != 3 {
		t.Errorf("ClampStage(3) = %d, want 3", got)
	}
}
