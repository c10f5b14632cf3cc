package game

import (
	"context"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Frame snapshots the render state of a session
func (o *orchestrator) Frame(_ context.Context, input *FrameInput) (*FrameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &FrameOutput{Frame: s.frame()}, nil
}

func (s *session) frame() *Frame {
	f := &Frame{
		Status:      s.status,
		LevelNumber: s.level.Number(),
		Background:  s.level.Background(),
		CurrentRoom: s.current.ID(),
		Player: PlayerView{
			Bounds:       s.player.Bounds(),
			HealthRatio:  s.player.HealthRatio(),
			ArmorRatio:   s.player.ArmorRatio(),
			StaminaRatio: s.player.StaminaRatio(),
			Balance:      s.player.Balance(),
			Weapon:       s.player.Weapon().Type,
		},
	}

	for _, room := range s.level.Rooms() {
		_, curtain := room.Curtain()
		f.Rooms = append(f.Rooms, RoomView{
			ID:      room.ID(),
			Type:    room.Type(),
			Bounds:  room.Bounds(),
			Curtain: curtain,
			State:   room.EncounterState(),
		})
	}

	if set, ok := s.current.Enemies(); ok {
		for _, e := range set.All() {
			f.Enemies = append(f.Enemies, EnemyView{
				ID:          e.ID(),
				Kind:        e.Kind(),
				Bounds:      e.Bounds(),
				HealthRatio: e.HealthRatio(),
			})
		}
	}

	if boss, ok := s.current.Boss(); ok && boss.Alive() {
		view := &BossView{
			Bounds:      boss.Bounds(),
			HealthRatio: boss.HealthRatio(),
		}
		if zone, telegraphing := boss.Zone(); telegraphing {
			view.DangerZone = &zone
		}
		f.Boss = view
	}

	if room, ok := s.level.TraderRoom(); ok && room.Visited() {
		if trader, ok := room.Trader(); ok {
			f.Trader = &TraderView{
				Bounds:   trader.Bounds(),
				MenuOpen: trader.MenuOpen(),
				Result:   trader.Result(),
			}
		}
	}

	if room, ok := s.level.PortalRoom(); ok && room.Visited() {
		if portal, ok := room.Portal(); ok {
			bounds := portal.Bounds()
			f.Portal = &bounds
		}
	}

	return f
}
