package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZYADEV/DataViz/internal/dataset"
	"github.com/ZYADEV/DataViz/internal/ingest"
	"github.com/ZYADEV/DataViz/internal/report"
)

var (
	profWhere    []string
	profBetween  []string
	profOutput   string
	profFormat   string
	profInsights bool
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Profile a CSV/TSV/JSON dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		d, err := loadDataset(path)
		if err != nil {
			return err
		}

		rows := d.Profile.Rows
		filters, err := parseFilterFlags(profWhere, profBetween)
		if err != nil {
			return err
		}
		if len(filters) > 0 {
			rows = dataset.ApplyFilters(rows, filters)
			if debug {
				fmt.Fprintf(os.Stderr, "filters kept %d of %d rows\n", len(rows), d.Profile.TotalRows)
			}
		}

		var insights []string
		if profInsights {
			insights = dataset.ComputeInsights(d.Profile, rows, cfg.TopCategories)
			if len(insights) > cfg.MaxInsights {
				insights = insights[:cfg.MaxInsights]
			}
		}

		format := profFormat
		if format == "" {
			format = cfg.OutputFormat
		}

		var rendered string
		switch format {
		case "markdown", "md":
			stats := make(map[string]dataset.Stats)
			for _, c := range d.Profile.Columns {
				if c.Type == dataset.IntegerType || c.Type == dataset.FloatType {
					stats[c.Name] = dataset.Describe(rows, c.Name)
				}
			}
			rendered = report.Markdown(d, stats, insights, reportOptions())
		case "yaml", "yml":
			var b strings.Builder
			if err := report.WriteYAML(&b, d, insights); err != nil {
				return err
			}
			rendered = b.String()
		default:
			return fmt.Errorf("unsupported --format: %s (use markdown|yaml)", format)
		}

		if profOutput != "" {
			if err := os.WriteFile(profOutput, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote profile to %s\n", profOutput)
			return nil
		}
		fmt.Println(rendered)
		return nil
	},
}

// reportOptions maps the configured presentation knobs onto renderer
// options.
func reportOptions() report.Options {
	return report.Options{
		MaxPreviewCell:  cfg.MaxPreviewCell,
		MaxSampleRows:   cfg.SampleRows,
		MaxSampleValues: cfg.SampleValues,
	}
}

// loadDataset decodes a file and builds its profile under a fresh
// dataset identity.
func loadDataset(path string) (*dataset.Dataset, error) {
	raw, order, err := ingest.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	p, err := dataset.BuildProfile(raw, order, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return dataset.NewDataset(path, p), nil
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringArrayVar(&profWhere, "where", nil, "discrete filter column=v1,v2 (repeatable)")
	profileCmd.Flags().StringArrayVar(&profBetween, "between", nil, "range filter column:min:max (repeatable)")
	profileCmd.Flags().StringVarP(&profOutput, "output", "o", "", "optional path to write the rendered profile")
	profileCmd.Flags().StringVar(&profFormat, "format", "", "output format: markdown|yaml (default from config)")
	profileCmd.Flags().BoolVar(&profInsights, "insights", true, "include derived insights")
}
