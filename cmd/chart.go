package cmd

import (
	"fmt"

	"github.com/theirongolddev/econopsych/internal/render"

	"github.com/spf13/cobra"
)

var flagChartOut string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write spending, savings and heatmap charts as PNG",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&flagChartOut, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	if l.Len() == 0 {
		return fmt.Errorf("nothing to chart: %w", render.ErrEmptyLedger)
	}

	paths, err := render.NewGenerator().WriteFiles(l, currency(), flagChartOut)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Printf("  Wrote %s\n", p)
	}
	return nil
}
