package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of a level pack",
	Long:  `Shows every level of the built-in campaign, or of the pack given with --levels.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

// levelsFlagUsage is the --levels help shared by every command that takes a pack.
func levelsFlagUsage() string {
	return "Path to a level pack (" + strings.Join(levels.FormatExtensions(), ", ") + ")"
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevels, "levels", "", levelsFlagUsage())
}

func runLevels(cmd *cobra.Command, args []string) error {
	field := config.DefaultCavernConfig().Playfield
	campaign, err := levels.LoadOrDefault(flagLevels, field.Width, field.Height)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d levels, %d crystals)\n\n", campaign.Name, len(campaign.Levels), campaign.CrystalCount())

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range campaign.Levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	// Print header
	fmt.Printf("  #  %-*s  %-6s  %9s  %7s  %8s  %s\n", maxNameLen, "Name", "Theme", "Platforms", "Enemies", "Crystals", "Exit")
	fmt.Printf("  -  %-*s  %-6s  %9s  %7s  %8s  %s\n", maxNameLen, "----", "-----", "---------", "-------", "--------", "----")

	for i, l := range campaign.Levels {
		exit := "portal"
		if l.Boss != nil {
			exit = fmt.Sprintf("boss (%d hp)", l.Boss.Health)
		}
		fmt.Printf("  %d  %-*s  %-6s  %9d  %7d  %8d  %s\n",
			i+1, maxNameLen, l.Name, l.Theme, len(l.Platforms), len(l.Enemies), len(l.Crystals), exit)
	}

	fmt.Println()
	fmt.Println("Run 'cavern play' to start.")
	return nil
}
