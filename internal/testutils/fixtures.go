package testutils

import (
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils/builders"
)

// Room ids of the standard test level
const (
	RoomSpawn    = 1
	RoomCorridor = 2
	RoomFight    = 3
	RoomTrader   = 4
	RoomBoss     = 5
	RoomPortal   = 6
)

// CreateTestLevelData returns a six room level:
//
//	trader(4) |          | boss(5)  | portal(6)
//	spawn(1)  | corr(2)  | fight(3) |
//
// The corridor is 64 units tall and centered on the spawn room's right
// edge. Portal and trader only declare their edges from one side.
func CreateTestLevelData(number int) *dungeon.LevelData {
	return builders.NewLevelDataBuilder().
		WithNumber(number).
		WithSpawn(RoomSpawn, geometry.NewRect(0, 0, 200, 200), RoomCorridor).
		WithCorridor(RoomCorridor, geometry.NewRect(200, 68, 100, 64), RoomSpawn, RoomFight).
		WithFight(RoomFight, geometry.NewRect(300, 0, 300, 300), []dungeon.EnemyData{
			{Type: string(entities.EnemyOrc), Position: geometry.Vec2{X: 500, Y: 200}},
			{Type: string(entities.EnemyGoblin), Position: geometry.Vec2{X: 520, Y: 60}},
		}, RoomCorridor, RoomBoss).
		WithTrader(RoomTrader, geometry.NewRect(0, 200, 200, 150), RoomSpawn).
		WithBoss(RoomBoss, geometry.NewRect(300, 300, 300, 300), RoomFight, RoomPortal).
		WithPortal(RoomPortal, geometry.NewRect(600, 300, 200, 200)).
		Build()
}

// CreateTestLevel builds the standard test level
func CreateTestLevel(t require.TestingT, number int) *dungeon.Level {
	level, err := dungeon.Build(CreateTestLevelData(number), nil)
	require.NoError(t, err, "failed to build test level")
	return level
}

// CreateTestPlayer returns a default player with its corner at (x, y)
func CreateTestPlayer(x, y float64) *entities.Player {
	p := entities.DefaultPlayer()
	p.MoveTo(geometry.Vec2{X: x, Y: y})
	return p
}

// CreateTestPlayerWith returns a player restored from rec with its corner at (x, y)
func CreateTestPlayerWith(t require.TestingT, rec entities.PlayerRecord, x, y float64) *entities.Player {
	p, err := entities.RestorePlayer(rec)
	require.NoError(t, err, "failed to restore test player")
	p.MoveTo(geometry.Vec2{X: x, Y: y})
	return p
}
