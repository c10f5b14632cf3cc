package saves_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

const testSlot = "slot_test123"

type RedisSavesTestSuite struct {
	suite.Suite
	repo    saves.Repository
	mr      *miniredis.Miniredis
	clock   *clock.Manual
	cleanup func()
	ctx     context.Context
}

func (s *RedisSavesTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T(), nil)
	s.mr = mr
	s.cleanup = cleanup
	s.clock = clock.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	repo, err := saves.NewRedis(&saves.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSavesTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisSavesTestSuite) testRecord() saves.Record {
	return saves.Record{
		CurrentLevel: 2,
		Player: entities.PlayerRecord{
			Health:  70,
			Stamina: 45.5,
			Balance: 25,
			Armor:   10,
		},
	}
}

func (s *RedisSavesTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *saves.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &saves.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := saves.NewRedis(tc.config)
			s.Require().Error(err)
			s.Nil(repo)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisSavesTestSuite) TestSaveThenLoad() {
	out, err := s.repo.Save(s.ctx, saves.SaveInput{Slot: testSlot, Record: s.testRecord()})
	s.Require().NoError(err)
	s.True(out.Record.SavedAt.Equal(s.clock.Now()))
	s.True(s.mr.Exists(saves.GetKey(testSlot)))

	loaded, err := s.repo.Load(s.ctx, saves.LoadInput{Slot: testSlot})
	s.Require().NoError(err)
	s.Equal(2, loaded.Record.CurrentLevel)
	s.Equal(s.testRecord().Player, loaded.Record.Player)
	s.True(loaded.Record.SavedAt.Equal(s.clock.Now()))
}

func (s *RedisSavesTestSuite) TestSaveOverwrites() {
	_, err := s.repo.Save(s.ctx, saves.SaveInput{Slot: testSlot, Record: s.testRecord()})
	s.Require().NoError(err)

	next := s.testRecord()
	next.CurrentLevel = 3
	s.clock.Advance(time.Minute)
	_, err = s.repo.Save(s.ctx, saves.SaveInput{Slot: testSlot, Record: next})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, saves.LoadInput{Slot: testSlot})
	s.Require().NoError(err)
	s.Equal(3, loaded.Record.CurrentLevel)
}

func (s *RedisSavesTestSuite) TestSaveRejectsInvalid() {
	s.Run("empty slot", func() {
		_, err := s.repo.Save(s.ctx, saves.SaveInput{Record: s.testRecord()})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("level zero", func() {
		rec := s.testRecord()
		rec.CurrentLevel = 0
		_, err := s.repo.Save(s.ctx, saves.SaveInput{Slot: testSlot, Record: rec})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.False(s.mr.Exists(saves.GetKey(testSlot)))
	})

	s.Run("health out of range", func() {
		rec := s.testRecord()
		rec.Player.Health = 500
		_, err := s.repo.Save(s.ctx, saves.SaveInput{Slot: testSlot, Record: rec})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisSavesTestSuite) TestLoadMissing() {
	_, err := s.repo.Load(s.ctx, saves.LoadInput{Slot: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.True(errors.IsRecoverable(err))
}

func (s *RedisSavesTestSuite) TestLoadCorrupt() {
	s.Run("not json", func() {
		s.Require().NoError(s.mr.Set(saves.GetKey(testSlot), "{not json"))

		_, err := s.repo.Load(s.ctx, saves.LoadInput{Slot: testSlot})
		s.Require().Error(err)
		s.True(errors.IsDataLoss(err))
		s.True(errors.IsRecoverable(err))
		s.Equal(testSlot, errors.GetMeta(err)["slot"])
	})

	s.Run("out of range values", func() {
		s.Require().NoError(s.mr.Set(saves.GetKey(testSlot),
			`{"current_level":1,"player":{"health":-5,"stamina":10,"balance":0,"armor":0}}`))

		_, err := s.repo.Load(s.ctx, saves.LoadInput{Slot: testSlot})
		s.Require().Error(err)
		s.True(errors.IsDataLoss(err))
	})
}

func (s *RedisSavesTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, saves.SaveInput{Slot: testSlot, Record: s.testRecord()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, saves.DeleteInput{Slot: testSlot})
	s.Require().NoError(err)
	s.False(s.mr.Exists(saves.GetKey(testSlot)))

	_, err = s.repo.Delete(s.ctx, saves.DeleteInput{Slot: testSlot})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisSavesTestSuite) TestServerDown() {
	s.mr.Close()

	_, err := s.repo.Load(s.ctx, saves.LoadInput{Slot: testSlot})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func TestRedisSavesSuite(t *testing.T) {
	suite.Run(t, new(RedisSavesTestSuite))
}
