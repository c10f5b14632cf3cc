package entities

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// EnemyType names an enemy archetype
type EnemyType string

// Enemy archetypes
const (
	EnemyOrc    EnemyType = "orc"
	EnemyGoblin EnemyType = "goblin"
)

// EnemySize is the side of an enemy bounding box
const EnemySize = 32.0

type enemyArchetype struct {
	maxHealth int
	speed     float64
	weapon    WeaponType
	cooldown  time.Duration
	reward    int
}

var enemyArchetypes = map[EnemyType]enemyArchetype{
	EnemyOrc: {
		maxHealth: 110,
		speed:     50,
		weapon:    WeaponAxe,
		cooldown:  1500 * time.Millisecond,
		reward:    10,
	},
	EnemyGoblin: {
		maxHealth: 80,
		speed:     80,
		weapon:    WeaponDagger,
		cooldown:  time.Second,
		reward:    5,
	},
}

// EnemyTypes lists the known archetypes
func EnemyTypes() []string {
	return []string{string(EnemyOrc), string(EnemyGoblin)}
}

// Enemy is a room-owned hostile. An enemy is only ever mutated by one
// goroutine at a time: its own worker during a tick, or the game loop
// between ticks.
type Enemy struct {
	id          int
	kind        EnemyType
	health      int
	maxHealth   int
	speed       float64
	weapon      Weapon
	cooldown    time.Duration
	sinceAttack time.Duration
	reward      int
	bounds      geometry.Rect
}

var _ core.Entity = (*Enemy)(nil)

// NewEnemy builds an enemy of the given archetype at pos
func NewEnemy(kind EnemyType, pos geometry.Vec2) (*Enemy, error) {
	arch, ok := enemyArchetypes[kind]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown enemy type %q", kind)
	}

	weapon, err := NewWeapon(arch.weapon)
	if err != nil {
		return nil, errors.Wrapf(err, "enemy %s", kind)
	}

	return &Enemy{
		kind:      kind,
		health:    arch.maxHealth,
		maxHealth: arch.maxHealth,
		speed:     arch.speed,
		weapon:    weapon,
		cooldown:  arch.cooldown,
		reward:    arch.reward,
		bounds:    geometry.NewRect(pos.X, pos.Y, EnemySize, EnemySize),
	}, nil
}

// GetID implements core.Entity
func (e *Enemy) GetID() string { return fmt.Sprintf("enemy-%d", e.id) }

// GetType implements core.Entity
func (e *Enemy) GetType() string { return string(e.kind) }

// ID is the enemy's position in its set's insertion order
func (e *Enemy) ID() int { return e.id }

// Kind returns the archetype
func (e *Enemy) Kind() EnemyType { return e.kind }

// Health returns current health
func (e *Enemy) Health() int { return e.health }

// HealthRatio returns health as a fraction of max
func (e *Enemy) HealthRatio() float64 { return float64(e.health) / float64(e.maxHealth) }

// Reward is paid to the player on defeat
func (e *Enemy) Reward() int { return e.reward }

// Weapon returns the enemy's weapon
func (e *Enemy) Weapon() Weapon { return e.weapon }

// Bounds returns the bounding box
func (e *Enemy) Bounds() geometry.Rect { return e.bounds }

// Position is the bottom-left corner of the bounding box
func (e *Enemy) Position() geometry.Vec2 { return e.bounds.Origin() }

// Alive reports whether health is above zero
func (e *Enemy) Alive() bool { return e.health > 0 }

// InRange reports whether target is within weapon reach of this enemy
func (e *Enemy) InRange(target geometry.Vec2) bool {
	return e.Position().Dist(target) <= e.weapon.Range
}

// PlanMove returns the displacement toward target for dt. An enemy
// already within weapon range holds position.
func (e *Enemy) PlanMove(target geometry.Vec2, dt time.Duration) geometry.Vec2 {
	dir := target.Sub(e.Position())
	if dir.Len() <= e.weapon.Range {
		return geometry.Vec2{}
	}
	return dir.Normalize().Scale(e.speed * dt.Seconds())
}

// ApplyMove translates the enemy by d
func (e *Enemy) ApplyMove(d geometry.Vec2) {
	e.bounds = e.bounds.Translate(d.X, d.Y)
}

// TryAttack reports whether the enemy strikes target this tick. A strike
// needs target in range and the cooldown elapsed, and resets the cooldown.
// Otherwise the cooldown accumulates dt.
func (e *Enemy) TryAttack(target geometry.Vec2, dt time.Duration) bool {
	if e.InRange(target) && e.sinceAttack >= e.cooldown {
		e.sinceAttack = 0
		return true
	}
	e.sinceAttack += dt
	return false
}

// TakeDamage lowers health, flooring at zero, and reports a kill
func (e *Enemy) TakeDamage(d int) bool {
	e.health = max(e.health-max(d, 0), 0)
	return e.health == 0
}
