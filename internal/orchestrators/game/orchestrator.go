// Package game runs dungeon sessions: one fixed-update loop per session
// driving navigation, encounters, combat, trading and level transitions.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/combat"
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/navigation"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves"
)

// DefaultMaxLevel is the last level; its portal wins the game
const DefaultMaxLevel = 3

// Service defines the game session operations
type Service interface {
	// NewGame starts a session on level 1 with a fresh player and writes
	// the initial save
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// LoadGame resumes from a save slot, starting fresh when the save is
	// missing or unreadable
	LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error)

	// Tick advances a session by one fixed update
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// Frame returns the render state of a session
	Frame(ctx context.Context, input *FrameInput) (*FrameOutput, error)

	// EndSession discards a session
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Levels      levels.Repository
	Saves       saves.Repository
	Navigator   navigation.Engine
	Combat      *combat.Resolver
	IDGenerator idgen.Generator

	// EventBus receives domain events. A private bus is created when nil.
	EventBus events.EventBus
	// MaxLevel defaults to DefaultMaxLevel
	MaxLevel int
	Logger   *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Levels == nil {
		vb.RequiredField("Levels")
	}
	if c.Saves == nil {
		vb.RequiredField("Saves")
	}
	if c.Navigator == nil {
		vb.RequiredField("Navigator")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MaxLevel < 0 {
		vb.InvalidField("MaxLevel", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	levels    levels.Repository
	saves     saves.Repository
	navigator navigation.Engine
	combat    *combat.Resolver
	idGen     idgen.Generator
	eventBus  events.EventBus
	maxLevel  int
	logger    *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// session is one running game. Its mutex serializes ticks.
type session struct {
	mu      sync.Mutex
	id      string
	slot    string
	level   *dungeon.Level
	current *dungeon.Room
	player  *entities.Player
	status  Status
}

// NewOrchestrator creates a game orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	maxLevel := cfg.MaxLevel
	if maxLevel == 0 {
		maxLevel = DefaultMaxLevel
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		levels:    cfg.Levels,
		saves:     cfg.Saves,
		navigator: cfg.Navigator,
		combat:    cfg.Combat,
		idGen:     cfg.IDGenerator,
		eventBus:  bus,
		maxLevel:  maxLevel,
		logger:    logger,
		sessions:  make(map[string]*session),
	}, nil
}

// NewGame starts a fresh game
func (o *orchestrator) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	slot := slotOrDefault(input.Slot)

	player := entities.DefaultPlayer()
	saveFailed := false
	if _, err := o.saves.Save(ctx, saves.SaveInput{
		Slot:   slot,
		Record: saves.Record{CurrentLevel: 1, Player: player.Record()},
	}); err != nil {
		saveFailed = true
		o.logger.Warn("initial save failed", "slot", slot, "error", err)
	}

	s, err := o.startSession(ctx, slot, 1, player)
	if err != nil {
		return nil, err
	}

	return &NewGameOutput{
		SessionID:   s.id,
		LevelNumber: s.level.Number(),
		SaveFailed:  saveFailed,
	}, nil
}

// LoadGame resumes a saved game
func (o *orchestrator) LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	slot := slotOrDefault(input.Slot)

	levelNumber, player, recovered := o.restore(ctx, slot)

	s, err := o.startSession(ctx, slot, levelNumber, player)
	if err != nil {
		return nil, err
	}

	return &LoadGameOutput{
		SessionID:   s.id,
		LevelNumber: s.level.Number(),
		Recovered:   recovered,
	}, nil
}

// restore reads a save, falling back to level 1 and a default player
func (o *orchestrator) restore(ctx context.Context, slot string) (int, *entities.Player, bool) {
	out, err := o.saves.Load(ctx, saves.LoadInput{Slot: slot})
	if err != nil {
		o.logger.Info("save unavailable, starting fresh",
			"slot", slot,
			"code", errors.GetCode(err),
			"error", err,
		)
		return 1, entities.DefaultPlayer(), true
	}

	rec := out.Record
	if rec.CurrentLevel > o.maxLevel {
		o.logger.Warn("saved level beyond last level, starting fresh",
			"slot", slot,
			"saved_level", rec.CurrentLevel,
		)
		return 1, entities.DefaultPlayer(), true
	}

	player, err := entities.RestorePlayer(rec.Player)
	if err != nil {
		o.logger.Warn("saved player invalid, starting fresh", "slot", slot, "error", err)
		return 1, entities.DefaultPlayer(), true
	}
	return rec.CurrentLevel, player, false
}

func (o *orchestrator) startSession(ctx context.Context, slot string, levelNumber int, player *entities.Player) (*session, error) {
	level, err := o.loadLevel(ctx, levelNumber)
	if err != nil {
		return nil, err
	}

	s := &session{
		id:     o.idGen.Generate(),
		slot:   slot,
		player: player,
		status: StatusPlaying,
	}
	s.enterLevel(level)

	o.mu.Lock()
	o.sessions[s.id] = s
	o.mu.Unlock()

	o.logger.Info("session started",
		"session_id", s.id,
		"slot", slot,
		"level_number", levelNumber,
	)
	return s, nil
}

func (o *orchestrator) loadLevel(ctx context.Context, number int) (*dungeon.Level, error) {
	out, err := o.levels.Get(ctx, levels.GetInput{Number: number})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load level %d", number)
	}

	level, err := dungeon.Build(out.Data, &dungeon.BuildConfig{Logger: o.logger})
	if err != nil {
		return nil, errors.Wrapf(err, "level %d is invalid", number)
	}
	return level, nil
}

// enterLevel places the player at the spawn point of a freshly built level
func (s *session) enterLevel(level *dungeon.Level) {
	s.level = level
	s.current = level.SpawnRoom()
	s.current.Enter()
	if p, ok := s.current.SpawnPoint(); ok {
		s.player.MoveTo(p)
	}
}

// EndSession discards a session
func (o *orchestrator) EndSession(_ context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.sessions[input.SessionID]; !ok {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	delete(o.sessions, input.SessionID)

	o.logger.Info("session ended", "session_id", input.SessionID)
	return &EndSessionOutput{}, nil
}

func (o *orchestrator) session(id string) (*session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	s, ok := o.sessions[id]
	if !ok {
		return nil, errors.NotFoundf("session %s not found", id)
	}
	return s, nil
}

func slotOrDefault(slot string) string {
	if slot == "" {
		return saves.DefaultSlot
	}
	return slot
}
