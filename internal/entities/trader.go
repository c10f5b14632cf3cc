package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// Trader prices and amounts
const (
	HealCost     = 10
	HealAmount   = 10
	RepairCost   = 10
	RepairAmount = 10
	UpgradeCost  = 30

	// TradeResultDuration is how long a trade result stays on screen
	TradeResultDuration = 2 * time.Second

	TraderSize = 32.0
)

// TradeResult is the outcome of one trade
type TradeResult string

// Trade results
const (
	TradeNone              TradeResult = ""
	TradeHealed            TradeResult = "healed"
	TradeRepaired          TradeResult = "repaired"
	TradeUpgraded          TradeResult = "upgraded"
	TradeInsufficientFunds TradeResult = "insufficient_funds"
)

// TradeOption is a menu entry
type TradeOption int

// Menu entries
const (
	TradeOptionNone TradeOption = iota
	TradeOptionHeal
	TradeOptionRepair
	TradeOptionUpgrade
)

// Trader sells healing, armor repair and a weapon upgrade
type Trader struct {
	bounds    geometry.Rect
	menuOpen  bool
	result    TradeResult
	remaining time.Duration
}

// NewTrader places a trader at pos
func NewTrader(pos geometry.Vec2) *Trader {
	return &Trader{bounds: geometry.NewRect(pos.X, pos.Y, TraderSize, TraderSize)}
}

// Bounds returns the trader marker
func (t *Trader) Bounds() geometry.Rect { return t.bounds }

// MenuOpen reports whether the trade menu is showing
func (t *Trader) MenuOpen() bool { return t.menuOpen }

// ToggleMenu opens or closes the trade menu
func (t *Trader) ToggleMenu() { t.menuOpen = !t.menuOpen }

// CloseMenu closes the trade menu
func (t *Trader) CloseMenu() { t.menuOpen = false }

// Result returns the last trade result while it is still displayed
func (t *Trader) Result() TradeResult { return t.result }

// Tick counts down the result display
func (t *Trader) Tick(dt time.Duration) {
	if t.result == TradeNone {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.result = TradeNone
		t.remaining = 0
	}
}

// Trade runs the selected option. Options are ignored while the menu is closed.
func (t *Trader) Trade(p *Player, opt TradeOption) TradeResult {
	if !t.menuOpen {
		return TradeNone
	}
	switch opt {
	case TradeOptionHeal:
		return t.Heal(p)
	case TradeOptionRepair:
		return t.RepairArmor(p)
	case TradeOptionUpgrade:
		return t.UpgradeWeapon(p)
	default:
		return TradeNone
	}
}

// Heal sells HealAmount health for HealCost
func (t *Trader) Heal(p *Player) TradeResult {
	if !p.TryPay(HealCost) {
		return t.show(TradeInsufficientFunds)
	}
	p.Heal(HealAmount)
	return t.show(TradeHealed)
}

// RepairArmor sells RepairAmount armor for RepairCost
func (t *Trader) RepairArmor(p *Player) TradeResult {
	if !p.TryPay(RepairCost) {
		return t.show(TradeInsufficientFunds)
	}
	p.RepairArmor(RepairAmount)
	return t.show(TradeRepaired)
}

// UpgradeWeapon sells the sword2 for UpgradeCost
func (t *Trader) UpgradeWeapon(p *Player) TradeResult {
	if !p.TryPay(UpgradeCost) {
		return t.show(TradeInsufficientFunds)
	}
	p.Equip(mustWeapon(WeaponSword2))
	return t.show(TradeUpgraded)
}

func (t *Trader) show(r TradeResult) TradeResult {
	t.result = r
	t.remaining = TradeResultDuration
	return r
}
