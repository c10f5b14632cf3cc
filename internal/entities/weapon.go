package entities

import "github.com/KirkDiggler/rpg-dungeon/internal/errors"

// WeaponType names a weapon archetype
type WeaponType string

// Weapon archetypes
const (
	WeaponDagger WeaponType = "dagger"
	WeaponAxe    WeaponType = "axe"
	WeaponSword  WeaponType = "sword"
	WeaponSword2 WeaponType = "sword2"
)

// Weapon is an immutable description of a weapon archetype
type Weapon struct {
	Type        WeaponType
	Damage      int
	Range       float64
	StaminaCost float64
}

var weapons = map[WeaponType]Weapon{
	WeaponDagger: {Type: WeaponDagger, Damage: 10, Range: 10},
	WeaponAxe:    {Type: WeaponAxe, Damage: 25, Range: 20},
	WeaponSword:  {Type: WeaponSword, Damage: 20, Range: 15, StaminaCost: 10},
	WeaponSword2: {Type: WeaponSword2, Damage: 30, Range: 20, StaminaCost: 15},
}

// NewWeapon returns the archetype for t. Unknown types are rejected.
func NewWeapon(t WeaponType) (Weapon, error) {
	w, ok := weapons[t]
	if !ok {
		return Weapon{}, errors.InvalidArgumentf("unknown weapon type %q", t)
	}
	return w, nil
}

// mustWeapon is for the fixed archetypes compiled into this package
func mustWeapon(t WeaponType) Weapon {
	w, err := NewWeapon(t)
	if err != nil {
		panic(err)
	}
	return w
}
