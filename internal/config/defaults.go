package config

import (
	_ "embed"
)

//go:embed defaults/skyfall.yaml
var defaultYAML []byte

// Default returns the default Skyfall configuration.
// Kept in sync with defaults/skyfall.yaml, which takes precedence when it parses.
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:  800,
			Height: 400,
		},
		Physics: Physics{
			Gravity:     0.3,
			JumpImpulse: -7.0,
		},
		Player: Player{
			X:    100,
			Size: 40,
		},
		Collectibles: Collectibles{
			Size:        30,
			BaseSpeed:   3.0,
			SpawnChance: 0.015,
			SpawnCap:    0.03,

			Token:        Reward{Score: 10, TimeBonus: 2},
			DoublePoints: Reward{Score: 20, TimeBonus: 3},
			Shield:       Reward{Score: 15, TimeBonus: 5},
		},
		Obstacles: Obstacles{
			Size:        45,
			BaseSpeed:   4.0,
			SpawnChance: 0.008,
			SpawnCap:    0.02,
		},
		Effects: Effects{
			DoublePointsMS: 5000,
			ShieldMS:       3000,
		},
		Timer: Timer{
			Start: 30,
		},
		Difficulty: Difficulty{
			StepScore:  100,
			StepAmount: 0.2,
		},
	}
}
