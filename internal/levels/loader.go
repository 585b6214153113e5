package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed defaults/campaign.yaml
var defaultCampaignYAML []byte

// Load reads, parses and validates a level pack file.
func Load(path string, width, height float64) (Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Campaign{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	c, err := Parse(data, ext)
	if err != nil {
		return Campaign{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if err := Validate(c, width, height); err != nil {
		return Campaign{}, fmt.Errorf("validating file %s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in five-level campaign.
func Default(width, height float64) (Campaign, error) {
	c, err := Parse(defaultCampaignYAML, ".yaml")
	if err != nil {
		return Campaign{}, fmt.Errorf("built-in campaign: %w", err)
	}
	if err := Validate(c, width, height); err != nil {
		return Campaign{}, fmt.Errorf("built-in campaign: %w", err)
	}
	return c, nil
}

// LoadOrDefault loads path when set and falls back to the built-in campaign.
func LoadOrDefault(path string, width, height float64) (Campaign, error) {
	if path == "" {
		return Default(width, height)
	}
	return Load(path, width, height)
}
