// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// LevelDataBuilder provides a fluent interface for building test level data
type LevelDataBuilder struct {
	data *dungeon.LevelData
}

// NewLevelDataBuilder creates a builder for level 1 with no rooms
func NewLevelDataBuilder() *LevelDataBuilder {
	return &LevelDataBuilder{
		data: &dungeon.LevelData{
			Number:     1,
			Background: "background-test.png",
		},
	}
}

// WithNumber sets the level number
func (b *LevelDataBuilder) WithNumber(n int) *LevelDataBuilder {
	b.data.Number = n
	return b
}

// WithRoom appends a fully specified room
func (b *LevelDataBuilder) WithRoom(rd dungeon.RoomData) *LevelDataBuilder {
	b.data.Rooms = append(b.data.Rooms, rd)
	return b
}

// WithSpawn appends a spawn room with the spawn point at its lower left plus 10
func (b *LevelDataBuilder) WithSpawn(id int, bounds geometry.Rect, neighbors ...int) *LevelDataBuilder {
	return b.WithRoom(dungeon.RoomData{
		ID:        id,
		Type:      string(dungeon.RoomTypeSpawn),
		Bounds:    bounds,
		Neighbors: neighbors,
		Spawn:     &geometry.Vec2{X: bounds.X + 10, Y: bounds.Y + 10},
	})
}

// WithCorridor appends a corridor
func (b *LevelDataBuilder) WithCorridor(id int, bounds geometry.Rect, neighbors ...int) *LevelDataBuilder {
	return b.WithRoom(dungeon.RoomData{
		ID:        id,
		Type:      string(dungeon.RoomTypeCorridor),
		Bounds:    bounds,
		Neighbors: neighbors,
	})
}

// WithFight appends a fight room holding the given enemies
func (b *LevelDataBuilder) WithFight(id int, bounds geometry.Rect, enemies []dungeon.EnemyData, neighbors ...int) *LevelDataBuilder {
	return b.WithRoom(dungeon.RoomData{
		ID:        id,
		Type:      string(dungeon.RoomTypeFight),
		Bounds:    bounds,
		Neighbors: neighbors,
		Enemies:   enemies,
	})
}

// WithTrader appends a trader room with the trader at its center
func (b *LevelDataBuilder) WithTrader(id int, bounds geometry.Rect, neighbors ...int) *LevelDataBuilder {
	c := bounds.Center()
	return b.WithRoom(dungeon.RoomData{
		ID:        id,
		Type:      string(dungeon.RoomTypeTrader),
		Bounds:    bounds,
		Neighbors: neighbors,
		Trader:    &c,
	})
}

// WithPortal appends a portal room with the portal at its center
func (b *LevelDataBuilder) WithPortal(id int, bounds geometry.Rect, neighbors ...int) *LevelDataBuilder {
	c := bounds.Center()
	return b.WithRoom(dungeon.RoomData{
		ID:        id,
		Type:      string(dungeon.RoomTypePortal),
		Bounds:    bounds,
		Neighbors: neighbors,
		Portal:    &c,
	})
}

// WithBoss appends a boss room with the boss at its center
func (b *LevelDataBuilder) WithBoss(id int, bounds geometry.Rect, neighbors ...int) *LevelDataBuilder {
	c := bounds.Center()
	return b.WithRoom(dungeon.RoomData{
		ID:        id,
		Type:      string(dungeon.RoomTypeBoss),
		Bounds:    bounds,
		Neighbors: neighbors,
		Boss:      &c,
	})
}

// Build returns the level data
func (b *LevelDataBuilder) Build() *dungeon.LevelData {
	return b.data
}
