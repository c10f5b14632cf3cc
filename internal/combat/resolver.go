// Package combat resolves attacks between the player and the enemies or
// boss of the current room.
//
// Per-enemy work within a tick is fanned out to a bounded worker pool and
// always joined before results are applied, so a tick looks sequential
// from the outside. The player is the only shared resource written by the
// workers; its methods serialize those writes.
package combat

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// Config holds the tuning for the combat resolver
type Config struct {
	// Workers bounds per-tick concurrency. Zero means runtime.NumCPU().
	Workers int
	Logger  *slog.Logger
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Workers < 0 {
		vb.InvalidField("Workers", "must not be negative")
	}
	return vb.Build()
}

// Resolver runs player and enemy attacks
type Resolver struct {
	workers int
	logger  *slog.Logger
}

// NewResolver creates a combat resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{workers: workers, logger: logger}, nil
}

// AttackOutcome reports what one player attack did. An attack with no
// target in range is a normal outcome with Target nil.
type AttackOutcome struct {
	// Attempted is false when the player lacked stamina; nothing changed
	Attempted  bool
	Candidates int
	Target     *entities.Enemy
	BossHit    bool
	Damage     int
	Killed     bool
	Reward     int
}

// PlayerAttack strikes at most one enemy in weapon range. Range checks run
// concurrently; among the enemies in range the one with the lowest id,
// which is the earliest placed, takes the hit. A kill pays the reward and
// removes the enemy from the set.
func (r *Resolver) PlayerAttack(ctx context.Context, player *entities.Player, set *entities.EnemySet) (*AttackOutcome, error) {
	weapon := player.Weapon()
	if !player.SpendStamina(weapon.StaminaCost) {
		return &AttackOutcome{}, nil
	}
	out := &AttackOutcome{Attempted: true}
	if set == nil {
		return out, nil
	}

	pos := player.Position()
	var (
		mu         sync.Mutex
		candidates []*entities.Enemy
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, enemy := range set.All() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if enemy.Position().Dist(pos) > weapon.Range {
				return nil
			}
			mu.Lock()
			candidates = append(candidates, enemy)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "player attack interrupted")
	}

	out.Candidates = len(candidates)
	if len(candidates) == 0 {
		return out, nil
	}

	target := slices.MinFunc(candidates, func(a, b *entities.Enemy) int {
		return a.ID() - b.ID()
	})
	out.Target = target
	out.Damage = weapon.Damage
	out.Killed = target.TakeDamage(weapon.Damage)

	if out.Killed {
		out.Reward = target.Reward()
		player.Earn(out.Reward)
		set.Remove(target.ID())
	}

	r.logger.Debug("player attack",
		"target", target.GetID(),
		"candidates", out.Candidates,
		"damage", out.Damage,
		"killed", out.Killed,
	)
	return out, nil
}

// StrikeBoss attacks the boss when it is within weapon range of the player.
// Range is measured to the nearest point of the boss's bounding box.
func (r *Resolver) StrikeBoss(player *entities.Player, boss *entities.Dragon) *AttackOutcome {
	weapon := player.Weapon()
	if boss == nil || !boss.Alive() {
		return &AttackOutcome{}
	}
	if !player.SpendStamina(weapon.StaminaCost) {
		return &AttackOutcome{}
	}

	out := &AttackOutcome{Attempted: true}
	if boss.Bounds().DistanceTo(player.Position()) > weapon.Range {
		return out
	}

	out.BossHit = true
	out.Candidates = 1
	out.Damage = weapon.Damage
	out.Killed = boss.TakeDamage(weapon.Damage)
	if out.Killed {
		out.Reward = entities.DragonReward
		player.Earn(out.Reward)
		r.logger.Info("boss defeated", "reward", out.Reward)
	}
	return out
}

// EnemyHit is one successful enemy attack
type EnemyHit struct {
	EnemyID int
	Kind    entities.EnemyType
	Damage  entities.DamageResult
}

// EnemyTickReport summarizes one enemy tick. Hits are in enemy id order.
type EnemyTickReport struct {
	Hits  []EnemyHit
	Moved int
}

// EnemiesTick advances every enemy in the set by dt. Each worker plans its
// enemy's move and attack against the player's position at the start of
// the tick and applies any hit to the player. Moves are applied after the
// join, in id order.
func (r *Resolver) EnemiesTick(ctx context.Context, player *entities.Player, set *entities.EnemySet, dt time.Duration) (*EnemyTickReport, error) {
	report := &EnemyTickReport{}
	if set == nil {
		return report, nil
	}

	enemies := set.All()
	target := player.Position()
	moves := make([]geometry.Vec2, len(enemies))
	hits := make([]*EnemyHit, len(enemies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, enemy := range enemies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			moves[i] = enemy.PlanMove(target, dt)
			if enemy.TryAttack(target, dt) {
				hits[i] = &EnemyHit{
					EnemyID: enemy.ID(),
					Kind:    enemy.Kind(),
					Damage:  player.TakeDamage(enemy.Weapon().Damage),
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "enemy tick interrupted")
	}

	for i, enemy := range enemies {
		if moves[i] != (geometry.Vec2{}) {
			enemy.ApplyMove(moves[i])
			report.Moved++
		}
		if hits[i] != nil {
			report.Hits = append(report.Hits, *hits[i])
		}
	}

	if len(report.Hits) > 0 {
		r.logger.Debug("enemies hit player",
			"hits", len(report.Hits),
			"health", player.Health(),
			"armor", player.Armor(),
		)
	}
	return report, nil
}

// BossTick advances the boss attack cycle by dt
func (r *Resolver) BossTick(player *entities.Player, boss *entities.Dragon, dt time.Duration) entities.BossOutcome {
	if boss == nil {
		return entities.BossOutcome{}
	}
	out := boss.Tick(player, dt)
	switch {
	case out.Telegraphed:
		r.logger.Debug("boss telegraph", "zone", out.Zone)
	case out.Resolved:
		r.logger.Debug("boss attack resolved", "hit", out.Hit)
	}
	return out
}
