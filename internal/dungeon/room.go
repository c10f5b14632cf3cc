package dungeon

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// RoomType identifies what a room holds
type RoomType string

// Room types
const (
	RoomTypeSpawn    RoomType = "spawn"
	RoomTypeFight    RoomType = "fight"
	RoomTypeTrader   RoomType = "trader"
	RoomTypePortal   RoomType = "portal"
	RoomTypeBoss     RoomType = "boss"
	RoomTypeCorridor RoomType = "corridor"
)

// RoomTypes lists every room type in declaration order
func RoomTypes() []string {
	return []string{
		string(RoomTypeSpawn),
		string(RoomTypeFight),
		string(RoomTypeTrader),
		string(RoomTypePortal),
		string(RoomTypeBoss),
		string(RoomTypeCorridor),
	}
}

// Payload is the type specific content of a room
type Payload interface {
	Type() RoomType
}

// SpawnPayload holds where the player appears
type SpawnPayload struct {
	Point geometry.Vec2
}

// FightPayload holds the room's enemies
type FightPayload struct {
	Enemies *entities.EnemySet
}

// TraderPayload holds the room's trader
type TraderPayload struct {
	Trader *entities.Trader
}

// PortalPayload holds the exit portal
type PortalPayload struct {
	Portal *entities.Portal
}

// BossPayload holds the boss
type BossPayload struct {
	Boss *entities.Dragon
}

// CorridorPayload is empty; corridors only connect rooms
type CorridorPayload struct{}

// Type implements Payload
func (SpawnPayload) Type() RoomType { return RoomTypeSpawn }

// Type implements Payload
func (FightPayload) Type() RoomType { return RoomTypeFight }

// Type implements Payload
func (TraderPayload) Type() RoomType { return RoomTypeTrader }

// Type implements Payload
func (PortalPayload) Type() RoomType { return RoomTypePortal }

// Type implements Payload
func (BossPayload) Type() RoomType { return RoomTypeBoss }

// Type implements Payload
func (CorridorPayload) Type() RoomType { return RoomTypeCorridor }

// Room is a bounded area of a level
type Room struct {
	id        int
	bounds    geometry.Rect
	neighbors []int
	payload   Payload

	visited  bool
	prepared bool
	active   bool
}

var _ core.Entity = (*Room)(nil)

// NewRoom creates a room in its initial encounter state for the payload type
func NewRoom(id int, bounds geometry.Rect, payload Payload) *Room {
	r := &Room{
		id:      id,
		bounds:  bounds,
		payload: payload,
	}
	r.reset()
	return r
}

// reset applies the initial flags for the room type. Fight and boss rooms
// trap the player on entry; spawn rooms start explored.
func (r *Room) reset() {
	r.active = false
	r.visited = false
	r.prepared = false

	switch r.Type() {
	case RoomTypeSpawn:
		r.visited = true
	case RoomTypeFight, RoomTypeBoss:
		r.prepared = true
	}
}

// GetID implements core.Entity
func (r *Room) GetID() string { return fmt.Sprintf("room-%d", r.id) }

// GetType implements core.Entity
func (r *Room) GetType() string { return string(r.Type()) }

// ID returns the room id
func (r *Room) ID() int { return r.id }

// Type returns the room type
func (r *Room) Type() RoomType { return r.payload.Type() }

// Bounds returns the room rectangle
func (r *Room) Bounds() geometry.Rect { return r.bounds }

// Curtain returns the rectangle that masks the room and whether it is drawn
func (r *Room) Curtain() (geometry.Rect, bool) { return r.bounds, !r.visited }

// NeighborIDs returns the candidate neighbors in declaration order
func (r *Room) NeighborIDs() []int {
	out := make([]int, len(r.neighbors))
	copy(out, r.neighbors)
	return out
}

// Payload returns the type specific content
func (r *Room) Payload() Payload { return r.payload }

// Visited reports whether the player has entered the room
func (r *Room) Visited() bool { return r.visited }

// Prepared reports whether the room will engage once the player is inside
func (r *Room) Prepared() bool { return r.prepared }

// Active reports whether the room's encounter is engaged
func (r *Room) Active() bool { return r.active }

// Enemies returns the enemy set of a fight room
func (r *Room) Enemies() (*entities.EnemySet, bool) {
	p, ok := r.payload.(FightPayload)
	return p.Enemies, ok
}

// Boss returns the boss of a boss room
func (r *Room) Boss() (*entities.Dragon, bool) {
	p, ok := r.payload.(BossPayload)
	return p.Boss, ok
}

// Trader returns the trader of a trader room
func (r *Room) Trader() (*entities.Trader, bool) {
	p, ok := r.payload.(TraderPayload)
	return p.Trader, ok
}

// Portal returns the portal of a portal room
func (r *Room) Portal() (*entities.Portal, bool) {
	p, ok := r.payload.(PortalPayload)
	return p.Portal, ok
}

// SpawnPoint returns the spawn point of a spawn room
func (r *Room) SpawnPoint() (geometry.Vec2, bool) {
	p, ok := r.payload.(SpawnPayload)
	return p.Point, ok
}

func (r *Room) addNeighbor(id int) {
	for _, n := range r.neighbors {
		if n == id {
			return
		}
	}
	r.neighbors = append(r.neighbors, id)
}
