package game

import "github.com/vovakirdan/tui-skyfall/internal/config"

// Effect identifies a timed player state armed by a boost pickup.
type Effect int

const (
	EffectDoublePoints Effect = iota
	EffectShield
)

// String returns the name of the effect.
func (e Effect) String() string {
	switch e {
	case EffectDoublePoints:
		return "double-points"
	case EffectShield:
		return "shield"
	default:
		return "unknown"
	}
}

// rewardFor returns the configured reward for a collectible kind.
func rewardFor(cfg *config.Config, k CollectibleKind) config.Reward {
	switch k {
	case KindDoublePoints:
		return cfg.Collectibles.DoublePoints
	case KindShield:
		return cfg.Collectibles.Shield
	default:
		return cfg.Collectibles.Token
	}
}

// resolveCollisions tests the player's bounding box against every active
// entity. Every overlapping collectible is collected (removed, scored,
// countdown extended, effect flag set); all pickups in one tick are honored.
// Obstacles are never removed — any overlap reports hit=true and the caller
// decides whether the contact is fatal.
func (s *Session) resolveCollisions(cfg *config.Config) (armed []Effect, hit bool) {
	pb := s.Player.Bounds()

	kept := s.Collectibles[:0]
	for _, c := range s.Collectibles {
		if !pb.Intersects(c.Bounds()) {
			kept = append(kept, c)
			continue
		}

		reward := rewardFor(cfg, c.Kind)
		points := reward.Score
		if s.Player.DoublePoints {
			points *= 2
		}
		s.Score += points
		s.TimeLeft += reward.TimeBonus

		switch c.Kind {
		case KindDoublePoints:
			s.Player.DoublePoints = true
			armed = append(armed, EffectDoublePoints)
		case KindShield:
			s.Player.Invincible = true
			armed = append(armed, EffectShield)
		}
	}
	s.Collectibles = kept

	for _, o := range s.Obstacles {
		if pb.Intersects(o.Bounds()) {
			hit = true
			break
		}
	}

	return armed, hit
}
