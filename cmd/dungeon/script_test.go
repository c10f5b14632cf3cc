package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/combat"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game/mock"
)

type ScriptTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	svc  *gamemock.MockService
	ctx  context.Context
}

func (s *ScriptTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.svc = gamemock.NewMockService(s.ctrl)
	s.ctx = context.Background()
}

func (s *ScriptTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ScriptTestSuite) expectFrame(sessionID string) {
	s.svc.EXPECT().
		Frame(gomock.Any(), &game.FrameInput{SessionID: sessionID}).
		Return(&game.FrameOutput{Frame: &game.Frame{
			Player: game.PlayerView{
				HealthRatio: 0.5,
				ArmorRatio:  1,
				Balance:     15,
				Weapon:      entities.WeaponSword,
			},
		}}, nil)
}

func (s *ScriptTestSuite) expectEnd(sessionID string) {
	s.svc.EXPECT().
		EndSession(gomock.Any(), &game.EndSessionInput{SessionID: sessionID}).
		Return(&game.EndSessionOutput{}, nil)
}

func (s *ScriptTestSuite) TestParseScript() {
	s.Run("defaults tick rate and repeat", func() {
		script, err := ParseScript([]byte("steps:\n  - intents: {right: true}\n  - repeat: 3\n"))
		s.Require().NoError(err)
		s.Equal(DefaultTickRate, script.TickRate)
		s.Require().Len(script.Steps, 2)
		s.Equal(1, script.Steps[0].Repeat)
		s.True(script.Steps[0].Intents.Right)
		s.Equal(3, script.Steps[1].Repeat)
		s.Equal(time.Second/60, script.Delta())
	})

	s.Run("reads trade entries by number", func() {
		script, err := ParseScript([]byte("tick_rate: 4\nsteps:\n  - intents: {interact: true, trade: 2}\n"))
		s.Require().NoError(err)
		s.Equal(entities.TradeOptionRepair, script.Steps[0].Intents.Trade)
		s.Equal(250*time.Millisecond, script.Delta())
	})

	s.Run("rejects unknown fields", func() {
		_, err := ParseScript([]byte("steps:\n  - intents: {jump: true}\n"))
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("rejects empty scripts", func() {
		_, err := ParseScript([]byte("tick_rate: 30\n"))
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "steps")
	})

	s.Run("rejects negative values", func() {
		_, err := ParseScript([]byte("tick_rate: -1\nsteps:\n  - repeat: -2\n"))
		s.Require().Error(err)
		s.Contains(err.Error(), "tick_rate")
		s.Contains(err.Error(), "repeat must not be negative")
	})
}

func (s *ScriptTestSuite) TestRunScript() {
	s.Run("plays every tick and summarizes", func() {
		script := &Script{TickRate: 4, Steps: []Step{
			{Repeat: 2, Intents: game.Intents{Right: true}},
			{Repeat: 1, Intents: game.Intents{Attack: true}},
		}}

		s.svc.EXPECT().
			NewGame(s.ctx, &game.NewGameInput{Slot: "slot-a"}).
			Return(&game.NewGameOutput{SessionID: "session-1", LevelNumber: 1}, nil)
		s.svc.EXPECT().
			Tick(s.ctx, &game.TickInput{
				SessionID: "session-1",
				Delta:     250 * time.Millisecond,
				Intents:   game.Intents{Right: true},
			}).
			Times(2).
			Return(&game.TickOutput{Status: game.StatusPlaying, LevelNumber: 1, RoomID: 2}, nil)
		s.svc.EXPECT().
			Tick(s.ctx, &game.TickInput{
				SessionID: "session-1",
				Delta:     250 * time.Millisecond,
				Intents:   game.Intents{Attack: true},
			}).
			Return(&game.TickOutput{
				Status:      game.StatusPlaying,
				LevelNumber: 1,
				RoomID:      2,
				Report: game.TickReport{
					Attack:  &combat.AttackOutcome{Attempted: true, Killed: true, Reward: 5},
					Cleared: true,
				},
			}, nil)
		s.expectFrame("session-1")
		s.expectEnd("session-1")

		summary, err := runScript(s.ctx, s.svc, script, RunOptions{Slot: "slot-a"})
		s.Require().NoError(err)
		s.Equal("session-1", summary.SessionID)
		s.Equal(3, summary.Ticks)
		s.Equal(game.StatusPlaying, summary.Status)
		s.Equal(2, summary.RoomID)
		s.Equal(1, summary.Kills)
		s.Equal(1, summary.RoomsCleared)
		s.Equal(0.5, summary.HealthRatio)
		s.Equal(15, summary.Balance)
		s.Equal(entities.WeaponSword, summary.Weapon)
	})

	s.Run("stops when the game ends", func() {
		script := &Script{TickRate: 60, Steps: []Step{{Repeat: 100}}}

		s.svc.EXPECT().
			LoadGame(s.ctx, &game.LoadGameInput{Slot: "slot-b"}).
			Return(&game.LoadGameOutput{SessionID: "session-2", LevelNumber: 3, Recovered: true}, nil)
		gomock.InOrder(
			s.svc.EXPECT().Tick(s.ctx, gomock.Any()).
				Return(&game.TickOutput{Status: game.StatusPlaying, LevelNumber: 3}, nil),
			s.svc.EXPECT().Tick(s.ctx, gomock.Any()).
				Return(&game.TickOutput{Status: game.StatusGameOver, LevelNumber: 3}, nil),
		)
		s.expectFrame("session-2")
		s.expectEnd("session-2")

		summary, err := runScript(s.ctx, s.svc, script, RunOptions{Slot: "slot-b", Load: true})
		s.Require().NoError(err)
		s.Equal(2, summary.Ticks)
		s.Equal(game.StatusGameOver, summary.Status)
		s.Equal(3, summary.LevelNumber)
		s.True(summary.Recovered)
	})

	s.Run("counts failed saves", func() {
		script := &Script{TickRate: 60, Steps: []Step{{Repeat: 1, Intents: game.Intents{Interact: true}}}}

		s.svc.EXPECT().NewGame(s.ctx, gomock.Any()).
			Return(&game.NewGameOutput{SessionID: "session-3", LevelNumber: 1, SaveFailed: true}, nil)
		s.svc.EXPECT().Tick(s.ctx, gomock.Any()).
			Return(&game.TickOutput{
				Status:      game.StatusPlaying,
				LevelNumber: 2,
				Report:      game.TickReport{LevelChanged: true, SaveFailed: true},
			}, nil)
		s.expectFrame("session-3")
		s.expectEnd("session-3")

		summary, err := runScript(s.ctx, s.svc, script, RunOptions{})
		s.Require().NoError(err)
		s.Equal(2, summary.LevelNumber)
		s.Equal(2, summary.SaveFailures)
	})

	s.Run("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		script := &Script{TickRate: 60, Steps: []Step{{Repeat: 10}}}

		s.svc.EXPECT().NewGame(ctx, gomock.Any()).
			Return(&game.NewGameOutput{SessionID: "session-4", LevelNumber: 1}, nil)
		s.expectFrame("session-4")
		s.expectEnd("session-4")

		summary, err := runScript(ctx, s.svc, script, RunOptions{})
		s.Require().NoError(err)
		s.Equal(0, summary.Ticks)
	})

	s.Run("fails on tick error", func() {
		script := &Script{TickRate: 60, Steps: []Step{{Repeat: 5}}}

		s.svc.EXPECT().NewGame(s.ctx, gomock.Any()).
			Return(&game.NewGameOutput{SessionID: "session-5", LevelNumber: 1}, nil)
		s.svc.EXPECT().Tick(s.ctx, gomock.Any()).
			Return(nil, errors.NotFound("session not found"))
		s.expectEnd("session-5")

		_, err := runScript(s.ctx, s.svc, script, RunOptions{})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.Contains(err.Error(), "tick 1 failed")
	})

	s.Run("fails when the game cannot start", func() {
		s.svc.EXPECT().NewGame(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("level 1 missing"))

		_, err := runScript(s.ctx, s.svc, &Script{TickRate: 60, Steps: []Step{{Repeat: 1}}}, RunOptions{})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
	})
}

func TestScriptTestSuite(t *testing.T) {
	suite.Run(t, new(ScriptTestSuite))
}
