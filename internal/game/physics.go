package game

import "github.com/vovakirdan/tui-skyfall/internal/config"

// integrate advances the player's vertical motion by one tick: apply
// gravity, move, then clamp to the playfield.
func (s *Session) integrate(cfg *config.Config) {
	p := &s.Player
	p.VelY += cfg.Physics.Gravity
	p.Y += p.VelY

	// Landing on the floor zeroes the velocity.
	floor := cfg.Playfield.Height - p.H
	if p.Y > floor {
		p.Y = floor
		p.VelY = 0
	}

	// The ceiling clamp only floors the velocity at 0 so a subsequent
	// fall is not frozen by a lingering upward velocity.
	if p.Y < 0 {
		p.Y = 0
		if p.VelY < 0 {
			p.VelY = 0
		}
	}
}
