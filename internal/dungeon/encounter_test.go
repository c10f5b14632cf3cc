package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

type EncounterTestSuite struct {
	suite.Suite
	bounds geometry.Rect
	inside geometry.Rect
}

func TestEncounterSuite(t *testing.T) {
	suite.Run(t, new(EncounterTestSuite))
}

func (s *EncounterTestSuite) SetupTest() {
	s.bounds = geometry.NewRect(0, 0, 200, 200)
	s.inside = geometry.NewRect(50, 50, 32, 32)
}

func (s *EncounterTestSuite) fightRoom(enemies ...*entities.Enemy) *dungeon.Room {
	return dungeon.NewRoom(3, s.bounds, dungeon.FightPayload{Enemies: entities.NewEnemySet(enemies...)})
}

func (s *EncounterTestSuite) TestInitialFlags() {
	testCases := []struct {
		payload  dungeon.Payload
		visited  bool
		prepared bool
		state    dungeon.EncounterState
	}{
		{dungeon.SpawnPayload{}, true, false, dungeon.EncounterCleared},
		{dungeon.FightPayload{Enemies: entities.NewEnemySet()}, false, true, dungeon.EncounterDormant},
		{dungeon.PortalPayload{}, false, false, dungeon.EncounterCleared},
		{dungeon.TraderPayload{}, false, false, dungeon.EncounterCleared},
		{dungeon.BossPayload{}, false, true, dungeon.EncounterDormant},
		{dungeon.CorridorPayload{}, false, false, dungeon.EncounterCleared},
	}

	for _, tc := range testCases {
		s.Run(string(tc.payload.Type()), func() {
			r := dungeon.NewRoom(1, s.bounds, tc.payload)
			s.Assert().Equal(tc.visited, r.Visited())
			s.Assert().Equal(tc.prepared, r.Prepared())
			s.Assert().False(r.Active())
			s.Assert().Equal(tc.state, r.EncounterState())
			_, curtain := r.Curtain()
			s.Assert().Equal(!tc.visited, curtain)
		})
	}
}

func (s *EncounterTestSuite) TestEngageNeedsStrictContainment() {
	orc, err := entities.NewEnemy(entities.EnemyOrc, geometry.Vec2{X: 150, Y: 150})
	s.Require().NoError(err)
	r := s.fightRoom(orc)

	s.Assert().False(r.TryEngage(geometry.NewRect(0, 50, 32, 32)), "touching the left wall")
	s.Assert().False(r.TryEngage(geometry.NewRect(50, 168, 32, 32)), "touching the top wall")
	s.Assert().False(r.TryEngage(geometry.NewRect(-10, 50, 32, 32)), "straddling the doorway")
	s.Assert().False(r.Active())

	s.Assert().True(r.TryEngage(s.inside))
	s.Assert().True(r.Active())
	s.Assert().Equal(dungeon.EncounterEngaged, r.EncounterState())
}

func (s *EncounterTestSuite) TestEngageIsIdempotent() {
	orc, err := entities.NewEnemy(entities.EnemyOrc, geometry.Vec2{})
	s.Require().NoError(err)
	r := s.fightRoom(orc)
	s.Require().True(r.TryEngage(s.inside))

	for range 5 {
		s.Assert().False(r.TryEngage(s.inside))
		s.Assert().True(r.Active())
		s.Assert().True(r.Prepared())
	}
}

func (s *EncounterTestSuite) TestNonTrappingRoomsNeverEngage() {
	for _, p := range []dungeon.Payload{
		dungeon.SpawnPayload{}, dungeon.TraderPayload{}, dungeon.PortalPayload{}, dungeon.CorridorPayload{},
	} {
		r := dungeon.NewRoom(1, s.bounds, p)
		s.Assert().False(r.TryEngage(s.inside), p.Type())
	}
}

func (s *EncounterTestSuite) TestFightRoomClearsWhenEmpty() {
	goblin, err := entities.NewEnemy(entities.EnemyGoblin, geometry.Vec2{})
	s.Require().NoError(err)
	r := s.fightRoom(goblin)
	enemies, _ := r.Enemies()
	r.TryEngage(s.inside)

	s.Assert().False(r.CheckCleared())
	s.Assert().True(r.Active())

	enemies.Remove(goblin.ID())
	s.Assert().True(r.CheckCleared())
	s.Assert().Equal(dungeon.EncounterCleared, r.EncounterState())
	s.Assert().False(r.CheckCleared(), "already cleared")
	s.Assert().False(r.TryEngage(s.inside), "cleared rooms stay open")
}

func (s *EncounterTestSuite) TestEmptyFightRoomClearsBeforeEngaging() {
	r := s.fightRoom()
	s.Assert().True(r.CheckCleared())
	s.Assert().False(r.TryEngage(s.inside))
}

func (s *EncounterTestSuite) TestBossRoomClearsWhenBossDies() {
	boss := entities.NewDragon(geometry.Vec2{X: 100, Y: 100})
	r := dungeon.NewRoom(5, s.bounds, dungeon.BossPayload{Boss: boss})
	r.TryEngage(s.inside)

	s.Assert().False(r.CheckCleared())
	boss.TakeDamage(entities.DragonMaxHealth)
	s.Assert().True(r.CheckCleared())
	s.Assert().False(r.Active())
}

func (s *EncounterTestSuite) TestDisarm() {
	orc, err := entities.NewEnemy(entities.EnemyOrc, geometry.Vec2{})
	s.Require().NoError(err)
	r := s.fightRoom(orc)
	r.TryEngage(s.inside)

	s.Assert().True(r.Disarm())
	s.Assert().False(r.Active())
	s.Assert().False(r.Prepared())
	s.Assert().False(r.Disarm())
}

func (s *EncounterTestSuite) TestEnter() {
	r := dungeon.NewRoom(2, s.bounds, dungeon.CorridorPayload{})
	s.Assert().True(r.Enter())
	s.Assert().False(r.Enter())
	s.Assert().True(r.Visited())
}

func (s *EncounterTestSuite) TestPayloadAccessors() {
	r := dungeon.NewRoom(1, s.bounds, dungeon.SpawnPayload{Point: geometry.Vec2{X: 5, Y: 6}})
	p, ok := r.SpawnPoint()
	s.Assert().True(ok)
	s.Assert().Equal(geometry.Vec2{X: 5, Y: 6}, p)

	_, ok = r.Enemies()
	s.Assert().False(ok)
	_, ok = r.Boss()
	s.Assert().False(ok)
	s.Assert().Equal("room-1", r.GetID())
	s.Assert().Equal("spawn", r.GetType())
}
