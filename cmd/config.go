package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/ZYADEV/DataViz/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change DataViz configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Print(string(b))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := applyConfigValue(cfg, key, value); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s = %s\n", key, value)
		return nil
	},
}

func applyConfigValue(c *cfgpkg.Global, key, value string) error {
	switch key {
	case "sample_rows", "sample_values", "top_categories", "max_insights", "max_preview_cell":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s expects a non-negative integer, got %q", key, value)
		}
		switch key {
		case "sample_rows":
			c.SampleRows = n
		case "sample_values":
			c.SampleValues = n
		case "top_categories":
			c.TopCategories = n
		case "max_insights":
			c.MaxInsights = n
		case "max_preview_cell":
			c.MaxPreviewCell = n
		}
	case "output_format":
		if value != "markdown" && value != "yaml" {
			return fmt.Errorf("output_format must be markdown or yaml, got %q", value)
		}
		c.OutputFormat = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
