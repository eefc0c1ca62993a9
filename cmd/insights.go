package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZYADEV/DataViz/internal/dataset"
)

var (
	insWhere   []string
	insBetween []string
	insLimit   int
)

var insightsCmd = &cobra.Command{
	Use:   "insights <file>",
	Short: "Derive year-over-year, top-category, outlier and correlation insights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDataset(args[0])
		if err != nil {
			return err
		}

		rows := d.Profile.Rows
		filters, err := parseFilterFlags(insWhere, insBetween)
		if err != nil {
			return err
		}
		if len(filters) > 0 {
			rows = dataset.ApplyFilters(rows, filters)
		}

		insights := dataset.ComputeInsights(d.Profile, rows, cfg.TopCategories)
		limit := insLimit
		if limit <= 0 {
			limit = cfg.MaxInsights
		}
		if len(insights) > limit {
			insights = insights[:limit]
		}
		if len(insights) == 0 {
			fmt.Printf("⚠ No insights derivable from %s (%d rows)\n", d.Profile.DatasetName, len(rows))
			return nil
		}
		for _, s := range insights {
			fmt.Println("•", s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	insightsCmd.Flags().StringArrayVar(&insWhere, "where", nil, "discrete filter column=v1,v2 (repeatable)")
	insightsCmd.Flags().StringArrayVar(&insBetween, "between", nil, "range filter column:min:max (repeatable)")
	insightsCmd.Flags().IntVar(&insLimit, "limit", 0, "maximum number of insights (default from config)")
}
