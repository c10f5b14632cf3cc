package dungeon

import "github.com/KirkDiggler/rpg-dungeon/internal/geometry"

// EncounterState is the externally visible encounter phase of a room
type EncounterState string

// Encounter states
const (
	// EncounterDormant rooms engage once the player is fully inside
	EncounterDormant EncounterState = "dormant"
	// EncounterEngaged rooms block leaving until resolved
	EncounterEngaged EncounterState = "engaged"
	// EncounterCleared rooms never engage again
	EncounterCleared EncounterState = "cleared"
)

// EncounterState derives the phase from the lifecycle flags
func (r *Room) EncounterState() EncounterState {
	switch {
	case r.active:
		return EncounterEngaged
	case r.prepared:
		return EncounterDormant
	default:
		return EncounterCleared
	}
}

// Enter marks the room visited and reports whether this is the first visit
func (r *Room) Enter() bool {
	if r.visited {
		return false
	}
	r.visited = true
	return true
}

// TryEngage activates a prepared room once actor lies strictly inside it.
// Corridors never engage. Calling it on an engaged room changes nothing.
func (r *Room) TryEngage(actor geometry.Rect) bool {
	if r.active || !r.prepared || r.Type() == RoomTypeCorridor {
		return false
	}
	if !r.bounds.StrictlyContains(actor) {
		return false
	}
	r.active = true
	return true
}

// CheckCleared resolves the encounter when nothing is left to fight: a
// fight room with no enemies or a boss room whose boss is dead. It
// reports whether the room changed state.
func (r *Room) CheckCleared() bool {
	if !r.prepared && !r.active {
		return false
	}

	switch p := r.payload.(type) {
	case FightPayload:
		if !p.Enemies.Empty() {
			return false
		}
	case BossPayload:
		if p.Boss.Alive() {
			return false
		}
	default:
		return false
	}

	r.Disarm()
	return true
}

// Disarm drops the room out of its encounter so the player may leave.
// It reports whether any flag changed.
func (r *Room) Disarm() bool {
	changed := r.active || r.prepared
	r.active = false
	r.prepared = false
	return changed
}
