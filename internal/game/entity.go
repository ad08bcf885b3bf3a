// Package game implements the Skyfall simulation: a player falling under
// gravity who jumps on input, collects pickups scrolling in from the right,
// avoids hazards, and races a countdown that replenishes on collection.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-skyfall/internal/config"
	"github.com/vovakirdan/tui-skyfall/internal/core"
)

// Entity is the base shape shared by the player, collectibles, and obstacles.
// Rotation is cosmetic only; collision geometry is always the axis-aligned
// box defined by position and size.
type Entity struct {
	X, Y     float64
	W, H     float64
	Rotation float64 // degrees
}

// Bounds returns the entity's collision rectangle.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// CollectibleKind identifies what a pickup grants.
type CollectibleKind int

const (
	KindToken        CollectibleKind = iota // plain score + time
	KindDoublePoints                        // arms the double-points effect
	KindShield                              // arms invincibility
	collectibleKinds                        // sentinel for counting
)

// String returns the name of the collectible kind.
func (k CollectibleKind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindDoublePoints:
		return "double-points"
	case KindShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Collectible is a beneficial pickup scrolling across the playfield.
type Collectible struct {
	Entity
	Kind CollectibleKind
}

// ObstacleKind identifies an obstacle's look. All kinds behave identically
// on contact; the kind only selects a glyph in the renderer.
type ObstacleKind int

const (
	ObstacleSpike ObstacleKind = iota
	ObstacleDrone
	ObstacleSaw
	obstacleKinds // sentinel for counting
)

// String returns the name of the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSpike:
		return "spike"
	case ObstacleDrone:
		return "drone"
	case ObstacleSaw:
		return "saw"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling across the playfield. Contact ends the
// session unless the player is shielded; obstacles are never consumed.
type Obstacle struct {
	Entity
	Kind ObstacleKind
}

// Factory produces freshly spawned entities at the right edge of the
// playfield with randomized vertical position and rotation.
type Factory struct {
	cfg *config.Config
	rng *rand.Rand
}

// NewFactory creates a factory with its own RNG for deterministic spawning.
func NewFactory(cfg *config.Config, seed int64) *Factory {
	return &Factory{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Chance returns true with probability p.
func (f *Factory) Chance(p float64) bool {
	return f.rng.Float64() < p
}

// Collectible spawns a new pickup of a uniformly random kind.
func (f *Factory) Collectible() Collectible {
	size := f.cfg.Collectibles.Size
	return Collectible{
		Entity: f.spawnAt(size),
		Kind:   CollectibleKind(f.rng.Intn(int(collectibleKinds))),
	}
}

// Obstacle spawns a new hazard of a uniformly random kind.
func (f *Factory) Obstacle() Obstacle {
	size := f.cfg.Obstacles.Size
	return Obstacle{
		Entity: f.spawnAt(size),
		Kind:   ObstacleKind(f.rng.Intn(int(obstacleKinds))),
	}
}

// spawnAt builds the base entity at the right edge with random y and rotation.
func (f *Factory) spawnAt(size float64) Entity {
	maxY := f.cfg.Playfield.Height - size
	if maxY < 0 {
		maxY = 0
	}
	return Entity{
		X:        f.cfg.Playfield.Width,
		Y:        f.rng.Float64() * maxY,
		W:        size,
		H:        size,
		Rotation: f.rng.Float64() * 360,
	}
}
