package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure. These are presentation-level knobs;
// the inference thresholds of the dataset core are fixed constants.
type Global struct {
	SampleRows     int    `mapstructure:"sample_rows" yaml:"sample_rows"`
	SampleValues   int    `mapstructure:"sample_values" yaml:"sample_values"`
	TopCategories  int    `mapstructure:"top_categories" yaml:"top_categories"`
	MaxInsights    int    `mapstructure:"max_insights" yaml:"max_insights"`
	OutputFormat   string `mapstructure:"output_format" yaml:"output_format"`
	MaxPreviewCell int    `mapstructure:"max_preview_cell" yaml:"max_preview_cell"`
}

// Save writes the given configuration to cfgFile, or to
// ~/.dataviz/config.yaml when cfgFile is empty.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataviz")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAVIZ")
	v.AutomaticEnv()

	v.SetDefault("sample_rows", 10)
	v.SetDefault("sample_values", 5)
	v.SetDefault("top_categories", 3)
	v.SetDefault("max_insights", 8)
	v.SetDefault("output_format", "markdown")
	v.SetDefault("max_preview_cell", 80)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataviz")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
