package game

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
	"github.com/KirkDiggler/rpg-dungeon/internal/navigation"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves"
)

// Tick runs one fixed update. The order is fixed: pause, encounter
// bookkeeping, movement, attack, trader, portal, regeneration, enemy and
// boss behavior, then the death check.
func (o *orchestrator) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Delta < 0 {
		return nil, errors.InvalidArgumentf("delta must not be negative, got %s", input.Delta)
	}

	s, err := o.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Ended() {
		return nil, errors.FailedPreconditionf("session %s has ended: %s", s.id, s.status)
	}

	out := &TickOutput{}
	if err := o.tick(ctx, s, input.Intents, input.Delta, &out.Report); err != nil {
		return nil, err
	}

	out.Status = s.status
	out.LevelNumber = s.level.Number()
	out.RoomID = s.current.ID()
	return out, nil
}

func (o *orchestrator) tick(ctx context.Context, s *session, in Intents, dt time.Duration, report *TickReport) error {
	if in.Pause {
		s.togglePause()
		o.logger.Info("pause toggled", "session_id", s.id, "status", s.status)
	}
	if s.status == StatusPaused {
		return nil
	}

	o.updateEncounter(ctx, s, in, report)

	if err := o.movePlayer(ctx, s, in, dt, report); err != nil {
		return err
	}

	if in.Attack {
		if err := o.playerAttack(ctx, s, report); err != nil {
			return err
		}
	}

	o.handleTrader(ctx, s, in, report)

	if in.Interact && s.current.Type() == dungeon.RoomTypePortal {
		return o.usePortal(ctx, s, report)
	}

	s.player.RegenStamina(dt)

	if s.current.Active() {
		if err := o.roomBehavior(ctx, s, dt, report); err != nil {
			return err
		}
	}

	if trader, ok := o.levelTrader(s); ok {
		trader.Tick(dt)
	}

	if !s.player.Alive() {
		s.status = StatusGameOver
		o.logger.Info("player died",
			"session_id", s.id,
			"level_number", s.level.Number(),
			"room", s.current.ID(),
		)
		o.publish(ctx, EventGameOver, s.player, s.current)
	}
	return nil
}

func (s *session) togglePause() {
	if s.status == StatusPaused {
		s.status = StatusPlaying
		return
	}
	s.status = StatusPaused
}

func (o *orchestrator) updateEncounter(ctx context.Context, s *session, in Intents, report *TickReport) {
	room := s.current

	if room.TryEngage(s.player.Bounds()) {
		report.Engaged = true
		o.logger.Info("encounter engaged", "session_id", s.id, "room", room.ID(), "type", room.Type())
		o.publish(ctx, EventRoomEngaged, s.player, room)
	}

	if room.CheckCleared() {
		report.Cleared = true
		o.logger.Info("encounter cleared", "session_id", s.id, "room", room.ID())
		o.publish(ctx, EventRoomCleared, s.player, room)
	}

	if in.Reset && room.Disarm() {
		report.Disarmed = true
		o.logger.Info("encounter disarmed", "session_id", s.id, "room", room.ID())
	}
}

// movePlayer resolves each pressed direction as its own single-axis move
func (o *orchestrator) movePlayer(ctx context.Context, s *session, in Intents, dt time.Duration, report *TickReport) error {
	step := entities.PlayerSpeed * dt.Seconds()
	moves := []struct {
		pressed bool
		axis    geometry.Axis
		delta   float64
	}{
		{in.Up, geometry.AxisY, step},
		{in.Down, geometry.AxisY, -step},
		{in.Left, geometry.AxisX, -step},
		{in.Right, geometry.AxisX, step},
	}

	for _, m := range moves {
		if !m.pressed || m.delta == 0 {
			continue
		}
		res, err := o.navigator.ResolveMove(&navigation.ResolveMoveInput{
			Level:   s.level,
			Current: s.current,
			Actor:   s.player.Bounds(),
			Axis:    m.axis,
			Delta:   m.delta,
		})
		if err != nil {
			return errors.Wrap(err, "failed to resolve move")
		}
		if !res.CanMove {
			continue
		}

		s.player.SetBounds(res.Actor)
		if res.SwitchesRoom && res.NextRoom != nil {
			from := s.current.ID()
			s.current = res.NextRoom
			first := s.current.Enter()
			report.RoomSwitched = true
			o.logger.Info("room entered",
				"session_id", s.id,
				"from", from,
				"to", s.current.ID(),
				"first_visit", first,
			)
			o.publish(ctx, EventRoomEntered, s.player, s.current)
		}
	}
	return nil
}

func (o *orchestrator) playerAttack(ctx context.Context, s *session, report *TickReport) error {
	if set, ok := s.current.Enemies(); ok && !set.Empty() {
		outcome, err := o.combat.PlayerAttack(ctx, s.player, set)
		if err != nil {
			return err
		}
		report.Attack = outcome
		if outcome.Killed {
			o.publish(ctx, EventEnemyDefeated, s.player, outcome.Target)
		}
		return nil
	}

	if boss, ok := s.current.Boss(); ok && boss.Alive() {
		outcome := o.combat.StrikeBoss(s.player, boss)
		report.Attack = outcome
		if outcome.Killed {
			o.publish(ctx, EventBossDefeated, s.player, boss)
		}
	}
	return nil
}

// handleTrader toggles and drives the trade menu inside the trader room
// and closes it anywhere else
func (o *orchestrator) handleTrader(ctx context.Context, s *session, in Intents, report *TickReport) {
	trader, ok := o.levelTrader(s)
	if !ok {
		return
	}
	if s.current.Type() != dungeon.RoomTypeTrader {
		trader.CloseMenu()
		return
	}

	if in.Interact {
		trader.ToggleMenu()
	}
	if in.Trade == entities.TradeOptionNone {
		return
	}

	result := trader.Trade(s.player, in.Trade)
	if result == entities.TradeNone {
		return
	}
	report.Trade = result
	o.logger.Info("trade",
		"session_id", s.id,
		"result", result,
		"balance", s.player.Balance(),
	)
	o.publish(ctx, EventTrade, s.player, s.current)
}

func (o *orchestrator) levelTrader(s *session) (*entities.Trader, bool) {
	room, ok := s.level.TraderRoom()
	if !ok {
		return nil, false
	}
	return room.Trader()
}

// usePortal advances to the next level, or wins the game on the last one.
// A failed save is reported but does not stop the transition.
func (o *orchestrator) usePortal(ctx context.Context, s *session, report *TickReport) error {
	current := s.level.Number()
	o.publish(ctx, EventLevelCompleted, s.player, s.current)

	if current >= o.maxLevel {
		s.status = StatusVictory
		o.logger.Info("game won", "session_id", s.id, "level_number", current)
		o.publish(ctx, EventVictory, s.player, s.current)
		return nil
	}

	next := current + 1
	if _, err := o.saves.Save(ctx, saves.SaveInput{
		Slot:   s.slot,
		Record: saves.Record{CurrentLevel: next, Player: s.player.Record()},
	}); err != nil {
		report.SaveFailed = true
		o.logger.Warn("level save failed",
			"session_id", s.id,
			"slot", s.slot,
			"error", err,
		)
	}

	level, err := o.loadLevel(ctx, next)
	if err != nil {
		return err
	}
	s.enterLevel(level)
	report.LevelChanged = true

	o.logger.Info("level changed",
		"session_id", s.id,
		"from", current,
		"to", next,
	)
	return nil
}

// roomBehavior runs enemy and boss AI for an engaged room
func (o *orchestrator) roomBehavior(ctx context.Context, s *session, dt time.Duration, report *TickReport) error {
	if set, ok := s.current.Enemies(); ok {
		tick, err := o.combat.EnemiesTick(ctx, s.player, set, dt)
		if err != nil {
			return err
		}
		report.EnemyHits = tick.Hits
		for _, hit := range tick.Hits {
			if enemy, ok := set.Get(hit.EnemyID); ok {
				o.publish(ctx, EventPlayerDamaged, enemy, s.player)
			}
		}
	}

	if boss, ok := s.current.Boss(); ok {
		outcome := o.combat.BossTick(s.player, boss, dt)
		report.Boss = outcome
		switch {
		case outcome.Telegraphed:
			o.publish(ctx, EventBossTelegraph, boss, s.player)
		case outcome.Resolved:
			o.publish(ctx, EventBossResolved, boss, s.player)
			if outcome.Hit {
				o.publish(ctx, EventPlayerDamaged, boss, s.player)
			}
		}
	}
	return nil
}
