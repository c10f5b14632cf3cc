package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

var (
	scriptPath  string
	loadSave    bool
	watchLevels bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a scripted session",
	Long: `Play runs a session headless, feeding it the intents of a YAML script one
fixed update at a time, and prints a summary when the script ends or the game
is won or lost. Use "-" to read the script from stdin.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&scriptPath, "script", "-", "script file, - for stdin")
	playCmd.Flags().BoolVar(&loadSave, "load", false, "resume from the save slot")
	playCmd.Flags().BoolVar(&watchLevels, "watch", false, "log edits to files under --levels while playing")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()

	raw, err := readScript(cmd.InOrStdin())
	if err != nil {
		return err
	}
	script, err := ParseScript(raw)
	if err != nil {
		return err
	}

	svc, closeDeps, err := newGameService(ctx, logger)
	if err != nil {
		return err
	}
	defer closeDeps()

	if watchLevels {
		stopWatch, err := watchLevelChanges(ctx, logger, func(change levels.Change) {
			logger.Info("level file changed, takes effect on next level load",
				"path", change.Path, "level", change.Number)
		})
		if err != nil {
			return err
		}
		defer stopWatch()
	}

	summary, err := runScript(ctx, svc, script, RunOptions{Slot: saveSlot, Load: loadSave})
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer func() { _ = enc.Close() }()
	if err := enc.Encode(summary); err != nil {
		return errors.Wrap(err, "failed to write summary")
	}
	return nil
}

func readScript(stdin io.Reader) ([]byte, error) {
	if scriptPath == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read script from stdin")
		}
		return raw, nil
	}

	raw, err := os.ReadFile(scriptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("script %s not found", scriptPath)
		}
		return nil, errors.Wrapf(err, "failed to read script %s", scriptPath)
	}
	return raw, nil
}

// watchLevelChanges calls onChange for each edited level file under
// --levels until ctx ends or the returned func is called.
func watchLevelChanges(ctx context.Context, logger *slog.Logger, onChange func(levels.Change)) (func(), error) {
	if levelsDir == "" {
		return nil, errors.InvalidArgument("--watch requires --levels")
	}

	w, err := levels.NewWatcher(levelsDir)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-w.Changes:
				if !ok {
					return
				}
				onChange(change)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("level watcher error", "error", err)
			}
		}
	}()

	return func() {
		_ = w.Close()
		<-done
	}, nil
}
