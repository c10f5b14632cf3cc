package game

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the session bus
const (
	EventRoomEntered    = "dungeon.room.entered"
	EventRoomEngaged    = "dungeon.room.engaged"
	EventRoomCleared    = "dungeon.room.cleared"
	EventEnemyDefeated  = "dungeon.enemy.defeated"
	EventBossDefeated   = "dungeon.boss.defeated"
	EventPlayerDamaged  = "dungeon.player.damaged"
	EventBossTelegraph  = "dungeon.boss.telegraph"
	EventBossResolved   = "dungeon.boss.resolved"
	EventTrade          = "dungeon.trader.trade"
	EventLevelCompleted = "dungeon.level.completed"
	EventGameOver       = "dungeon.game.over"
	EventVictory        = "dungeon.game.victory"
)

// publish sends an event and only logs delivery failures; handlers never
// change the outcome of a tick.
func (o *orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		o.logger.Warn("event handler failed",
			"event", eventType,
			"error", err,
		)
	}
}
