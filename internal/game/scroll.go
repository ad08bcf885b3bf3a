package game

import "github.com/vovakirdan/tui-skyfall/internal/config"

// advanceCollectibles culls, scrolls, and possibly spawns pickups for one tick.
// Culling and the spawn roll are evaluated against the pre-scroll population,
// so a freshly spawned entity is appended unmoved and takes its first scroll
// step on the next tick.
func (s *Session) advanceCollectibles(timeScale float64, cfg *config.Config, f *Factory) {
	cc := cfg.Collectibles
	speed := ScrollSpeed(cc.BaseSpeed, cfg.Difficulty, s.Score) * timeScale
	spawn := f.Chance(SpawnChance(cc.SpawnChance, cc.SpawnCap, cfg.Difficulty, s.Score))

	kept := s.Collectibles[:0]
	for _, c := range s.Collectibles {
		if c.X <= -c.W {
			continue // fully past the left edge
		}
		c.X -= speed
		kept = append(kept, c)
	}
	s.Collectibles = kept

	if spawn {
		s.Collectibles = append(s.Collectibles, f.Collectible())
	}
}

// advanceObstacles is the obstacle counterpart of advanceCollectibles,
// scaled independently.
func (s *Session) advanceObstacles(timeScale float64, cfg *config.Config, f *Factory) {
	oc := cfg.Obstacles
	speed := ScrollSpeed(oc.BaseSpeed, cfg.Difficulty, s.Score) * timeScale
	spawn := f.Chance(SpawnChance(oc.SpawnChance, oc.SpawnCap, cfg.Difficulty, s.Score))

	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.X <= -o.W {
			continue
		}
		o.X -= speed
		kept = append(kept, o)
	}
	s.Obstacles = kept

	if spawn {
		s.Obstacles = append(s.Obstacles, f.Obstacle())
	}
}
