package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// Dragon tuning
const (
	DragonMaxHealth      = 500
	DragonReward         = 50
	DragonDamage         = 30
	DragonZoneSize       = 64.0
	DragonSize           = 64.0
	DragonAttackCooldown = 3 * time.Second
	DragonTelegraphDelay = 1500 * time.Millisecond
)

// BossPhase is the dragon's attack state
type BossPhase string

// Boss phases
const (
	BossIdle         BossPhase = "idle"
	BossTelegraphing BossPhase = "telegraphing"
)

// BossOutcome reports what a single boss tick did
type BossOutcome struct {
	Telegraphed bool
	Resolved    bool
	Hit         bool
	Zone        geometry.Rect
	Damage      DamageResult
}

// Dragon is the boss of a boss room. It loops between idling out its
// cooldown and telegraphing a fixed area attack around the player.
type Dragon struct {
	health  int
	bounds  geometry.Rect
	phase   BossPhase
	idle    time.Duration
	warning time.Duration
	zone    geometry.Rect
}

var _ core.Entity = (*Dragon)(nil)

// NewDragon places a full-health dragon at pos
func NewDragon(pos geometry.Vec2) *Dragon {
	return &Dragon{
		health: DragonMaxHealth,
		bounds: geometry.NewRect(pos.X, pos.Y, DragonSize, DragonSize),
		phase:  BossIdle,
	}
}

// GetID implements core.Entity
func (d *Dragon) GetID() string { return "dragon" }

// GetType implements core.Entity
func (d *Dragon) GetType() string { return "boss" }

// Phase returns the current attack phase
func (d *Dragon) Phase() BossPhase { return d.phase }

// Zone returns the danger zone while telegraphing
func (d *Dragon) Zone() (geometry.Rect, bool) {
	return d.zone, d.phase == BossTelegraphing
}

// Bounds returns the bounding box
func (d *Dragon) Bounds() geometry.Rect { return d.bounds }

// Position is the bottom-left corner of the bounding box
func (d *Dragon) Position() geometry.Vec2 { return d.bounds.Origin() }

// Health returns current health
func (d *Dragon) Health() int { return d.health }

// HealthRatio returns health as a fraction of max
func (d *Dragon) HealthRatio() float64 { return float64(d.health) / DragonMaxHealth }

// Alive reports whether health is above zero
func (d *Dragon) Alive() bool { return d.health > 0 }

// TakeDamage lowers health, flooring at zero, and reports a kill
func (d *Dragon) TakeDamage(n int) bool {
	d.health = max(d.health-max(n, 0), 0)
	return d.health == 0
}

// Tick advances the attack state machine by dt. Only the player's position
// at resolution counts: leaving the zone before the delay ends dodges it.
func (d *Dragon) Tick(player *Player, dt time.Duration) BossOutcome {
	var out BossOutcome
	if !d.Alive() {
		return out
	}

	switch d.phase {
	case BossIdle:
		d.idle += dt
		if d.idle >= DragonAttackCooldown {
			d.zone = geometry.CenteredSquare(player.Position(), DragonZoneSize)
			d.warning = 0
			d.phase = BossTelegraphing
			out.Telegraphed = true
			out.Zone = d.zone
		}
	case BossTelegraphing:
		d.warning += dt
		if d.warning >= DragonTelegraphDelay {
			out.Resolved = true
			out.Zone = d.zone
			if d.zone.ContainsPoint(player.Position()) {
				out.Hit = true
				out.Damage = player.TakeDamage(DragonDamage)
			}
			d.zone = geometry.Rect{}
			d.idle = 0
			d.phase = BossIdle
		}
	}
	return out
}
