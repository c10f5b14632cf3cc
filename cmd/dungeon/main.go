// Package main is the entry point for the dungeon CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves"
)

var (
	logLevel  string
	logFormat string
	levelsDir string
	redisAddr string
	saveSlot  string
	workers   int
)

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Room-based dungeon crawler simulation",
	Long: `dungeon runs the simulation core of a room-based dungeon crawler headless:
scripted play sessions, level file validation and save slot maintenance.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd.ErrOrStderr())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&levelsDir, "levels", os.Getenv("DUNGEON_LEVELS_DIR"),
		"directory holding levelN.yaml files (default: embedded levels, env DUNGEON_LEVELS_DIR)")
	pf.StringVar(&redisAddr, "redis", os.Getenv("DUNGEON_REDIS_ADDR"),
		"redis address or URL for saves (default: in-memory, env DUNGEON_REDIS_ADDR)")
	pf.StringVar(&saveSlot, "slot", saves.DefaultSlot, "save slot")
	pf.IntVar(&workers, "workers", 0, "combat worker pool size (0 uses every CPU)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(saveCmd)
}
