package game

import "github.com/vovakirdan/tui-skyfall/internal/config"

// Advance runs one evaluated tick of the physics/spawn/collision pipeline.
// timeScale is the tick's real elapsed time divided by the nominal 16 ms
// tick, keeping motion rate independent of frame cadence. While paused or
// after game over the tick is a passthrough no-op.
//
// Returned effects were armed by pickups this tick; the caller schedules
// their real-time expiries.
func (s *Session) Advance(timeScale float64, cfg *config.Config, f *Factory) []Effect {
	if s.Over || s.Paused {
		return nil
	}

	// Time exhaustion is judged on the pre-tick value, so the boundary
	// tick where the countdown reaches exactly 0 also ends the session.
	timeExhausted := s.TimeLeft <= 0

	s.integrate(cfg)
	s.advanceCollectibles(timeScale, cfg, f)
	s.advanceObstacles(timeScale, cfg, f)

	armed, hit := s.resolveCollisions(cfg)

	if (hit && !s.Player.Invincible) || timeExhausted {
		s.Over = true
	}

	return armed
}
