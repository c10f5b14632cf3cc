package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Inspect or remove save slots",
}

var saveShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the record in --slot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeSaves, err := newSavesRepository(cmd.Context())
		if err != nil {
			return err
		}
		defer closeSaves()

		out, err := repo.Load(cmd.Context(), saves.LoadInput{Slot: saveSlot})
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer func() { _ = enc.Close() }()
		if err := enc.Encode(out.Record); err != nil {
			return errors.Wrap(err, "failed to write record")
		}
		return nil
	},
}

var saveDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the record in --slot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeSaves, err := newSavesRepository(cmd.Context())
		if err != nil {
			return err
		}
		defer closeSaves()

		if _, err := repo.Delete(cmd.Context(), saves.DeleteInput{Slot: saveSlot}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted slot %s\n", saveSlot)
		return nil
	},
}

func init() {
	saveCmd.AddCommand(saveShowCmd)
	saveCmd.AddCommand(saveDeleteCmd)
}
