package game

import (
	"math"

	"github.com/vovakirdan/tui-skyfall/internal/config"
)

// Player is the one controllable entity, owned by the session.
type Player struct {
	Entity
	VelY         float64
	Invincible   bool
	DoublePoints bool
}

// Session is the complete game state at an instant: the single source of
// truth read and replaced by the tick and timer drivers. A restart swaps in
// a fresh default session wholesale rather than clearing fields.
type Session struct {
	Player       Player
	Collectibles []Collectible
	Obstacles    []Obstacle
	Score        int
	TimeLeft     float64 // seconds, floor-clamped at 0
	Over         bool
	Paused       bool
}

// NewSession creates the default session: zero score, full countdown, the
// player at rest at mid-height, and no active entities.
func NewSession(cfg *config.Config) Session {
	size := cfg.Player.Size
	return Session{
		Player: Player{
			Entity: Entity{
				X: cfg.Player.X,
				Y: (cfg.Playfield.Height - size) / 2,
				W: size,
				H: size,
			},
		},
		TimeLeft: cfg.Timer.Start,
	}
}

// Jump applies the fixed upward impulse, overriding the current velocity.
// There is no cooldown and no airborne check; input is ignored only while
// paused or after game over.
func (s *Session) Jump(cfg *config.Config) {
	if s.Over || s.Paused {
		return
	}
	s.Player.VelY = cfg.Physics.JumpImpulse
}

// TogglePause flips the paused state. Pausing is meaningless after game over.
func (s *Session) TogglePause() {
	if s.Over {
		return
	}
	s.Paused = !s.Paused
}

// TickSecond decrements the countdown by one second, floored at zero.
// Called by the real-time timer driver, gated by pause and game over.
func (s *Session) TickSecond() {
	if s.Over || s.Paused {
		return
	}
	s.TimeLeft = math.Max(0, s.TimeLeft-1)
}

// TimeDisplay returns the countdown as shown to the player: ceil(timeLeft).
func (s Session) TimeDisplay() int {
	return int(math.Ceil(s.TimeLeft))
}

// Clone returns a deep copy of the session safe to hand to readers.
func (s Session) Clone() Session {
	c := s
	c.Collectibles = make([]Collectible, len(s.Collectibles))
	copy(c.Collectibles, s.Collectibles)
	c.Obstacles = make([]Obstacle, len(s.Obstacles))
	copy(c.Obstacles, s.Obstacles)
	return c
}
