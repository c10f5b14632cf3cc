package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"time"

	assetlevels "github.com/KirkDiggler/rpg-dungeon/assets/levels"
	"github.com/KirkDiggler/rpg-dungeon/internal/combat"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/navigation"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves"
)

const redisDialTimeout = 2 * time.Second

func newLevelsRepository(logger *slog.Logger) (levels.Repository, error) {
	var fsys fs.FS = assetlevels.FS
	if levelsDir != "" {
		info, err := os.Stat(levelsDir)
		if err != nil || !info.IsDir() {
			return nil, errors.InvalidArgumentf("--levels %q is not a directory", levelsDir)
		}
		fsys = os.DirFS(levelsDir)
	}
	return levels.NewFS(&levels.FSConfig{FS: fsys, Logger: logger})
}

// newSavesRepository connects to redis when an address is configured. The
// returned func releases the connection.
func newSavesRepository(ctx context.Context) (saves.Repository, func(), error) {
	if redisAddr == "" {
		return saves.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redis.Connect(ctx, redisAddr, &redis.Options{DialTimeout: redisDialTimeout})
	if err != nil {
		return nil, nil, err
	}

	repo, err := saves.NewRedis(&saves.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return repo, func() { _ = client.Close() }, nil
}

// newGameService wires the orchestrator. An unreachable redis degrades to
// in-memory saves so a session can still be played.
func newGameService(ctx context.Context, logger *slog.Logger) (game.Service, func(), error) {
	levelRepo, err := newLevelsRepository(logger)
	if err != nil {
		return nil, nil, err
	}

	saveRepo, closeSaves, err := newSavesRepository(ctx)
	if err != nil {
		if errors.GetCode(err) != errors.CodeUnavailable {
			return nil, nil, err
		}
		logger.Warn("redis unavailable, saves kept in memory", "redis", redisAddr, "error", err)
		saveRepo, closeSaves = saves.NewInMemory(clock.New()), func() {}
	}

	navigator, err := navigation.NewEngine(&navigation.Config{Logger: logger})
	if err != nil {
		closeSaves()
		return nil, nil, err
	}

	resolver, err := combat.NewResolver(&combat.Config{Workers: workers, Logger: logger})
	if err != nil {
		closeSaves()
		return nil, nil, err
	}

	svc, err := game.NewOrchestrator(&game.Config{
		Levels:      levelRepo,
		Saves:       saveRepo,
		Navigator:   navigator,
		Combat:      resolver,
		IDGenerator: idgen.NewUUID("session"),
		Logger:      logger,
	})
	if err != nil {
		closeSaves()
		return nil, nil, err
	}
	return svc, closeSaves, nil
}
