package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

var watchValidate bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every level file builds",
	Long: `Validate decodes and builds every level, reporting each one. With --watch
it keeps running and re-checks a level whenever its file under --levels
changes.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&watchValidate, "watch", false, "re-validate levels as files under --levels change")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()
	repo, err := newLevelsRepository(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !watchValidate {
		return validateLevels(ctx, repo, logger, out)
	}

	if err := validateLevels(ctx, repo, logger, out); err != nil {
		logger.Warn("levels invalid, watching for fixes", "error", err)
	}
	stopWatch, err := watchLevelChanges(ctx, logger, func(change levels.Change) {
		_ = validateLevel(ctx, repo, change.Number, logger, out)
	})
	if err != nil {
		return err
	}
	defer stopWatch()

	<-ctx.Done()
	return nil
}

// validateLevels builds every listed level and fails if any of them cannot
// be built
func validateLevels(ctx context.Context, repo levels.Repository, logger *slog.Logger, w io.Writer) error {
	list, err := repo.List(ctx, levels.ListInput{})
	if err != nil {
		return errors.Wrap(err, "failed to list levels")
	}
	if len(list.Numbers) == 0 {
		return errors.NotFound("no level files found")
	}

	failed := 0
	for _, n := range list.Numbers {
		if err := validateLevel(ctx, repo, n, logger, w); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return errors.InvalidArgumentf("%d of %d levels are invalid", failed, len(list.Numbers))
	}
	return nil
}

func validateLevel(ctx context.Context, repo levels.Repository, n int, logger *slog.Logger, w io.Writer) error {
	got, err := repo.Get(ctx, levels.GetInput{Number: n})
	if err == nil {
		var level *dungeon.Level
		level, err = dungeon.Build(got.Data, &dungeon.BuildConfig{Logger: logger})
		if err == nil {
			fmt.Fprintf(w, "level %d: ok (%d rooms)\n", n, len(level.Rooms()))
			return nil
		}
	}
	fmt.Fprintf(w, "level %d: %v\n", n, err)
	return err
}
