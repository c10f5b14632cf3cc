package dungeon_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils/builders"
)

type BuildTestSuite struct {
	suite.Suite
	logs *bytes.Buffer
	cfg  *dungeon.BuildConfig
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildTestSuite))
}

func (s *BuildTestSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.cfg = &dungeon.BuildConfig{
		Logger: slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (s *BuildTestSuite) TestBuildStandardLevel() {
	level, err := dungeon.Build(testutils.CreateTestLevelData(2), s.cfg)
	s.Require().NoError(err)

	s.Assert().Equal(2, level.Number())
	s.Assert().Len(level.Rooms(), 6)
	s.Assert().Equal(testutils.RoomSpawn, level.SpawnRoom().ID())

	portal, ok := level.PortalRoom()
	s.Require().True(ok)
	s.Assert().Equal(testutils.RoomPortal, portal.ID())

	trader, ok := level.TraderRoom()
	s.Require().True(ok)
	s.Assert().Equal(testutils.RoomTrader, trader.ID())

	fight, ok := level.Room(testutils.RoomFight)
	s.Require().True(ok)
	enemies, ok := fight.Enemies()
	s.Require().True(ok)
	s.Assert().Equal(2, enemies.Len())

	s.Assert().NotContains(s.logs.String(), "level=WARN")
}

func (s *BuildTestSuite) TestNeighborsAreMirrored() {
	level, err := dungeon.Build(testutils.CreateTestLevelData(1), s.cfg)
	s.Require().NoError(err)

	spawn := level.SpawnRoom()
	s.Assert().Equal([]int{testutils.RoomCorridor, testutils.RoomTrader}, spawn.NeighborIDs())

	portal, _ := level.PortalRoom()
	s.Assert().Equal([]int{testutils.RoomBoss}, portal.NeighborIDs())
}

func (s *BuildTestSuite) TestDanglingNeighborIsSkipped() {
	data := builders.NewLevelDataBuilder().
		WithSpawn(1, geometry.NewRect(0, 0, 100, 100), 2, 99, 1).
		WithCorridor(2, geometry.NewRect(100, 0, 100, 100)).
		Build()

	level, err := dungeon.Build(data, s.cfg)
	s.Require().NoError(err)

	s.Assert().Equal([]int{2}, level.SpawnRoom().NeighborIDs())
	s.Assert().Contains(s.logs.String(), "neighbor not found")
	s.Assert().Contains(s.logs.String(), "neighbor=99")
	s.Assert().Contains(s.logs.String(), "room lists itself as neighbor")
}

func (s *BuildTestSuite) TestUnreachableRoomIsWarned() {
	data := builders.NewLevelDataBuilder().
		WithSpawn(1, geometry.NewRect(0, 0, 100, 100)).
		WithCorridor(7, geometry.NewRect(500, 500, 100, 100)).
		Build()

	_, err := dungeon.Build(data, s.cfg)
	s.Require().NoError(err)
	s.Assert().Contains(s.logs.String(), "room unreachable from spawn")
	s.Assert().Contains(s.logs.String(), "room=7")
}

func (s *BuildTestSuite) TestValidationFailures() {
	square := geometry.NewRect(0, 0, 100, 100)
	right := geometry.NewRect(100, 0, 100, 100)

	testCases := []struct {
		name  string
		data  *dungeon.LevelData
		field string
	}{
		{
			name:  "no spawn room",
			data:  builders.NewLevelDataBuilder().WithCorridor(1, square).Build(),
			field: "exactly one spawn room",
		},
		{
			name: "two spawn rooms",
			data: builders.NewLevelDataBuilder().
				WithSpawn(1, square).WithSpawn(2, right).Build(),
			field: "found 2",
		},
		{
			name: "two portals",
			data: builders.NewLevelDataBuilder().
				WithSpawn(1, square).WithPortal(2, right).WithPortal(3, right.Translate(100, 0)).Build(),
			field: "at most one portal",
		},
		{
			name: "duplicate id",
			data: builders.NewLevelDataBuilder().
				WithSpawn(1, square).WithCorridor(1, right).Build(),
			field: "duplicate room id 1",
		},
		{
			name: "unknown room type",
			data: builders.NewLevelDataBuilder().
				WithSpawn(1, square).WithRoom(dungeon.RoomData{ID: 2, Type: "lobby", Bounds: right}).Build(),
			field: "rooms[1].type",
		},
		{
			name: "missing type",
			data: builders.NewLevelDataBuilder().
				WithSpawn(1, square).WithRoom(dungeon.RoomData{ID: 2, Bounds: right}).Build(),
			field: "rooms[1].type: is required",
		},
		{
			name: "zero width",
			data: builders.NewLevelDataBuilder().
				WithSpawn(1, square).WithCorridor(2, geometry.NewRect(100, 0, 0, 100)).Build(),
			field: "rooms[1].bounds.width",
		},
		{
			name: "unknown enemy type",
			data: builders.NewLevelDataBuilder().
				WithSpawn(1, square).
				WithFight(2, right, []dungeon.EnemyData{{Type: "troll"}}).Build(),
			field: "rooms[1].enemies[0].type",
		},
		{
			name: "portal without position",
			data: builders.NewLevelDataBuilder().
				WithSpawn(1, square).
				WithRoom(dungeon.RoomData{ID: 2, Type: "portal", Bounds: right}).Build(),
			field: "rooms[1].portal",
		},
		{
			name: "spawn point outside room",
			data: builders.NewLevelDataBuilder().
				WithRoom(dungeon.RoomData{ID: 1, Type: "spawn", Bounds: square, Spawn: &geometry.Vec2{X: 90, Y: 90}}).Build(),
			field: "rooms[0].spawn",
		},
		{
			name:  "bad level number",
			data:  builders.NewLevelDataBuilder().WithNumber(0).WithSpawn(1, square).Build(),
			field: "number",
		},
		{
			name:  "no rooms",
			data:  builders.NewLevelDataBuilder().Build(),
			field: "rooms: must not be empty",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			level, err := dungeon.Build(tc.data, s.cfg)
			s.Require().Error(err)
			s.Assert().Nil(level)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.field)
		})
	}
}

func (s *BuildTestSuite) TestNilData() {
	_, err := dungeon.Build(nil, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}
