package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZYADEV/DataViz/internal/dataset"
)

var (
	statsWhere   []string
	statsBetween []string
)

var statsCmd = &cobra.Command{
	Use:   "stats <file> <column>",
	Short: "Descriptive statistics for a numeric column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, column := args[0], args[1]
		d, err := loadDataset(path)
		if err != nil {
			return err
		}
		if _, ok := d.Profile.Column(column); !ok {
			return fmt.Errorf("column %q not found in %s", column, d.Profile.DatasetName)
		}

		rows := d.Profile.Rows
		filters, err := parseFilterFlags(statsWhere, statsBetween)
		if err != nil {
			return err
		}
		if len(filters) > 0 {
			rows = dataset.ApplyFilters(rows, filters)
		}

		s := dataset.Describe(rows, column)
		if s.Count == 0 {
			fmt.Printf("⚠ No numeric values in column %q (%d rows considered)\n", column, len(rows))
			return nil
		}
		fmt.Printf("%s — count %d\n", column, s.Count)
		fmt.Printf("  mean   %g\n", s.Mean)
		fmt.Printf("  median %g\n", s.Median)
		fmt.Printf("  std    %g\n", s.Std)
		fmt.Printf("  min    %g\n", s.Min)
		fmt.Printf("  max    %g\n", s.Max)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringArrayVar(&statsWhere, "where", nil, "discrete filter column=v1,v2 (repeatable)")
	statsCmd.Flags().StringArrayVar(&statsBetween, "between", nil, "range filter column:min:max (repeatable)")
}
