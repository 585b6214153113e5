package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/games/cavern"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
	"github.com/vovakirdan/crystal-cavern/internal/platform/tui"
)

var (
	flagConfig     string
	flagLevels     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the game in the terminal.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Jump (press again in the air to double jump)
  Z                - Dash
  Space/X          - Shoot
  Enter/Space      - Start
  P/Esc            - Pause
  R                - Restart (after game over or victory)
  Ctrl+S           - Save a screenshot
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, longer invincibility after a lost life
  normal - 3 lives
  hard   - 2 lives, the boss attacks more often

Examples:
  cavern play
  cavern play --difficulty easy
  cavern play --levels ./my-pack.toml
  cavern play --config ./my-cavern.yaml --log-file cavern.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", levelsFlagUsage())
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadGame builds a game from the config, level pack and difficulty flags.
func loadGame(logger *log.Logger) (*cavern.Game, error) {
	cfg, err := config.LoadCavern(flagConfig)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("difficulty %s: %w", preset, err)
	}

	campaign, err := levels.LoadOrDefault(flagLevels, cfg.Playfield.Width, cfg.Playfield.Height)
	if err != nil {
		return nil, err
	}

	logger.Info("game loaded",
		"campaign", campaign.Name,
		"levels", len(campaign.Levels),
		"difficulty", preset,
	)
	return cavern.New(
		cavern.WithConfig(cfg),
		cavern.WithLevels(campaign),
		cavern.WithLogger(logger),
	), nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Logs would tear the alternate screen, so they only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := loadGame(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(game, cfg, tui.Options{Logger: logger}); runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
