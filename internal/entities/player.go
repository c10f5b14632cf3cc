package entities

import (
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// Player limits and tuning
const (
	PlayerMaxHealth  = 100
	PlayerMaxArmor   = 100
	PlayerMaxStamina = 100.0
	PlayerSpeed      = 90.0
	PlayerSize       = 32.0

	// StaminaRegenPerSecond is restored every unpaused tick
	StaminaRegenPerSecond = 10.0
)

// DamageResult describes how one hit was absorbed
type DamageResult struct {
	Absorbed int // taken by armor
	Wounded  int // taken by health
}

// Player is the single character controlled by the input collaborator.
// All methods are safe for concurrent use: enemy workers damage the
// player in parallel during a tick.
type Player struct {
	mu sync.Mutex

	health  int
	armor   int
	stamina float64
	balance int
	weapon  Weapon
	bounds  geometry.Rect
}

var _ core.Entity = (*Player)(nil)

// DefaultPlayer returns a full-health player with a sword and no money
func DefaultPlayer() *Player {
	return &Player{
		health:  PlayerMaxHealth,
		armor:   PlayerMaxArmor,
		stamina: PlayerMaxStamina,
		weapon:  mustWeapon(WeaponSword),
		bounds:  geometry.NewRect(0, 0, PlayerSize, PlayerSize),
	}
}

// GetID implements core.Entity
func (p *Player) GetID() string { return "player" }

// GetType implements core.Entity
func (p *Player) GetType() string { return "player" }

// Health returns current health
func (p *Player) Health() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.health
}

// Armor returns current armor
func (p *Player) Armor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.armor
}

// Stamina returns current stamina
func (p *Player) Stamina() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stamina
}

// Balance returns current currency
func (p *Player) Balance() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balance
}

// Weapon returns the equipped weapon
func (p *Player) Weapon() Weapon {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.weapon
}

// Alive reports whether health is above zero
func (p *Player) Alive() bool {
	return p.Health() > 0
}

// Bounds returns the player's bounding box
func (p *Player) Bounds() geometry.Rect {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bounds
}

// Position is the bottom-left corner of the bounding box
func (p *Player) Position() geometry.Vec2 {
	return p.Bounds().Origin()
}

// SetBounds replaces the bounding box, keeping its size
func (p *Player) SetBounds(r geometry.Rect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bounds = r
}

// MoveTo places the bottom-left corner at pos
func (p *Player) MoveTo(pos geometry.Vec2) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bounds = p.bounds.MoveTo(pos)
}

// TakeDamage applies d armor-first. Overflow past armor wounds health and
// both floor at zero, so one hit can strip armor and wound in the same call.
func (p *Player) TakeDamage(d int) DamageResult {
	if d <= 0 {
		return DamageResult{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var res DamageResult
	p.armor -= d
	if p.armor >= 0 {
		res.Absorbed = d
		return res
	}

	overflow := -p.armor
	res.Absorbed = d - overflow
	p.armor = 0

	res.Wounded = min(overflow, p.health)
	p.health -= res.Wounded
	return res
}

// Heal restores up to n health, capped at max
func (p *Player) Heal(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.health = min(p.health+max(n, 0), PlayerMaxHealth)
}

// RepairArmor restores up to n armor, capped at max
func (p *Player) RepairArmor(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.armor = min(p.armor+max(n, 0), PlayerMaxArmor)
}

// TryPay deducts cost if the balance covers it
func (p *Player) TryPay(cost int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.balance < cost {
		return false
	}
	p.balance -= cost
	return true
}

// Earn adds a reward to the balance
func (p *Player) Earn(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balance += max(n, 0)
}

// SpendStamina deducts cost when enough stamina is available
func (p *Player) SpendStamina(cost float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stamina < cost {
		return false
	}
	p.stamina -= cost
	return true
}

// RegenStamina restores stamina for dt of elapsed time
func (p *Player) RegenStamina(dt time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stamina = min(p.stamina+StaminaRegenPerSecond*dt.Seconds(), PlayerMaxStamina)
}

// Equip swaps the equipped weapon
func (p *Player) Equip(w Weapon) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.weapon = w
}

// HealthRatio returns health as a fraction of max
func (p *Player) HealthRatio() float64 { return float64(p.Health()) / PlayerMaxHealth }

// ArmorRatio returns armor as a fraction of max
func (p *Player) ArmorRatio() float64 { return float64(p.Armor()) / PlayerMaxArmor }

// StaminaRatio returns stamina as a fraction of max
func (p *Player) StaminaRatio() float64 { return p.Stamina() / PlayerMaxStamina }
