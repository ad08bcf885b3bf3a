package game

import (
	"testing"

	"github.com/vovakirdan/tui-skyfall/internal/config"
)

func TestMultiplierSteps(t *testing.T) {
	d := config.Default().Difficulty

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 1.0},
		{99, 1.0},
		{100, 1.2},
		{199, 1.2},
		{200, 1.4},
		{1000, 3.0},
	}

	for _, tc := range tests {
		got := Multiplier(d, tc.score)
		if got != tc.expected {
			t.Errorf("Multiplier(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestMultiplierMonotonic(t *testing.T) {
	d := config.Default().Difficulty

	prev := Multiplier(d, 0)
	for score := 1; score <= 2000; score++ {
		cur := Multiplier(d, score)
		if cur < prev {
			t.Fatalf("Multiplier decreased at score %d: %v -> %v", score, prev, cur)
		}
		// Steps of exactly 0.2 at each multiple of 100
		if score%100 == 0 {
			diff := cur - prev
			if diff < 0.199 || diff > 0.201 {
				t.Fatalf("Multiplier step at score %d = %v, expected 0.2", score, diff)
			}
		}
		prev = cur
	}
}

func TestMultiplierDisabled(t *testing.T) {
	d := config.Difficulty{StepScore: 0, StepAmount: 0.2}
	if Multiplier(d, 5000) != 1 {
		t.Error("Multiplier should be 1 when step score is unset")
	}

	cfg := config.Default()
	config.ApplyPreset(&cfg, config.PresetFixed)
	if Multiplier(cfg.Difficulty, 5000) != 1 {
		t.Error("fixed preset should pin the multiplier at 1")
	}
}

func TestSpawnChanceCapped(t *testing.T) {
	d := config.Default().Difficulty

	// Below the cap at score 0
	if got := SpawnChance(0.015, 0.03, d, 0); got != 0.015 {
		t.Errorf("SpawnChance at score 0 = %v, expected 0.015", got)
	}

	// Scaled at score 200 (multiplier 1.4)
	if got := SpawnChance(0.015, 0.03, d, 200); got < 0.0209 || got > 0.0211 {
		t.Errorf("SpawnChance at score 200 = %v, expected 0.021", got)
	}

	// Capped at high score
	if got := SpawnChance(0.015, 0.03, d, 10000); got != 0.03 {
		t.Errorf("SpawnChance should cap at 0.03, got %v", got)
	}
	if got := SpawnChance(0.008, 0.02, d, 10000); got != 0.02 {
		t.Errorf("obstacle SpawnChance should cap at 0.02, got %v", got)
	}
}

func TestScrollSpeedScales(t *testing.T) {
	d := config.Default().Difficulty

	if got := ScrollSpeed(3, d, 0); got != 3 {
		t.Errorf("ScrollSpeed at score 0 = %v, expected 3", got)
	}
	if got := ScrollSpeed(4, d, 100); got < 4.79 || got > 4.81 {
		t.Errorf("ScrollSpeed at score 100 = %v, expected 4.8", got)
	}
}
