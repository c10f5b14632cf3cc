package entities

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// PlayerRecord is the persisted part of a player
type PlayerRecord struct {
	Health  int     `json:"health" yaml:"health"`
	Stamina float64 `json:"stamina" yaml:"stamina"`
	Balance int     `json:"balance" yaml:"balance"`
	Armor   int     `json:"armor" yaml:"armor"`
}

// DefaultPlayerRecord is the record of a fresh player
func DefaultPlayerRecord() PlayerRecord {
	return DefaultPlayer().Record()
}

// Record serializes the player
func (p *Player) Record() PlayerRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PlayerRecord{
		Health:  p.health,
		Stamina: p.stamina,
		Balance: p.balance,
		Armor:   p.armor,
	}
}

// Validate checks the record against player limits
func (r PlayerRecord) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("health", r.Health, 0, PlayerMaxHealth, vb)
	errors.ValidateRange("armor", r.Armor, 0, PlayerMaxArmor, vb)
	if r.Stamina < 0 || r.Stamina > PlayerMaxStamina {
		vb.Fieldf("stamina", "must be between 0 and %g", PlayerMaxStamina)
	}
	if r.Balance < 0 {
		vb.Field("balance", "must not be negative")
	}
	return vb.Build()
}

// RestorePlayer rebuilds a player from a record. The weapon is not
// persisted, so restored players carry the default sword.
func RestorePlayer(r PlayerRecord) (*Player, error) {
	if err := r.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid player record")
	}

	p := DefaultPlayer()
	p.health = r.Health
	p.stamina = r.Stamina
	p.balance = r.Balance
	p.armor = r.Armor
	return p, nil
}
