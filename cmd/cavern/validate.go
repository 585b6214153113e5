package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a level pack for errors",
	Long: `Loads a YAML or TOML level pack and validates it against the playfield
of the game config (--config, or the default search order). Exits with
status 1 and the first problem found when the pack is invalid.`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runValidate(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadCavern(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	field := cfg.Playfield
	campaign, err := levels.Load(args[0], field.Width, field.Height)
	if err != nil {
		var verr levels.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "invalid level pack: %s\n", verr.Message)
			fmt.Fprintf(os.Stderr, "  code:  %s\n", verr.Code)
			if verr.Level != "" {
				fmt.Fprintf(os.Stderr, "  level: %s\n", verr.Level)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("%s: ok (%d levels, %d crystals)\n", args[0], len(campaign.Levels), campaign.CrystalCount())
}
