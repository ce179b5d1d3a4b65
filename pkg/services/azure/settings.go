package azure

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultOutputDir   = "assessment"
	DefaultConcurrency = 8
)

// Settings tunes how a run executes, independent of subscription identity.
type Settings struct {
	OutputDir     string `mapstructure:"output_dir"`
	InventoryFile string `mapstructure:"inventory_file"`
	Concurrency   int    `mapstructure:"concurrency"`
}

// LoadSettings reads a settings file, falling back to defaults when path is
// empty.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("inventory_file", "")
	v.SetDefault("concurrency", DefaultConcurrency)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if settings.Concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", settings.Concurrency)
	}

	return &settings, nil
}
