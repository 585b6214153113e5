package levels

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Parse decodes a level pack. ext selects the format and includes the dot.
func Parse(data []byte, ext string) (Campaign, error) {
	if !slices.Contains(FormatExtensions(), ext) {
		return Campaign{}, fmt.Errorf("unsupported extension %q (want one of %s)", ext, strings.Join(FormatExtensions(), ", "))
	}

	var c Campaign
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Campaign{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return Campaign{}, fmt.Errorf("toml unmarshal: %w", err)
		}
	}
	return c, nil
}
