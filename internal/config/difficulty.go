package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. An empty string selects
// normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch s {
	case "", "normal":
		return DifficultyNormal, nil
	case "easy":
		return DifficultyEasy, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CavernConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.RespawnGrace = cfg.Player.RespawnGrace * 3 / 2
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Boss.AttackInterval = 45
	}
}
