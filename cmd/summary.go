package cmd

import (
	"fmt"

	"github.com/theirongolddev/econopsych/internal/cli"
	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending, savings and bias summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}

	if l.Len() == 0 {
		fmt.Println("\n  The ledger is empty.")
		fmt.Println("  Add a day with `econopsych add`, or drop --empty for sample data.")
		return nil
	}

	stats := pipeline.Aggregate(l)
	cur := currency()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SPENDING SUMMARY  %d days", stats.Days)))
	fmt.Println()

	rows := [][]string{
		{"Days", cli.FormatNumber(int64(stats.Days))},
		{"Biased Days", fmt.Sprintf("%d  (%d clean)", stats.BiasedDays, stats.CleanDays)},
		{"---"},
		{"Planned Spend", cli.FormatMoney(cur, stats.TotalPlanned)},
		{"Actual Spend", cli.FormatMoney(cur, stats.TotalActual)},
		{"Avg Spend/day", cli.FormatMoney(cur, stats.AvgActualSpend)},
		{"Overspend", cli.FormatMoney(cur, stats.Overspend)},
		{"Savings Goals", cli.FormatMoney(cur, stats.TotalGoal)},
		{"Net Savings", cli.FormatSignedMoney(cur, stats.NetSavings)},
		{"---"},
		{"Avg Impulse", fmt.Sprintf("%.1f", stats.AvgImpulse)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	biasRows := make([][]string, 0, len(model.AllBiases))
	for _, bs := range pipeline.AggregateBiases(l) {
		biasRows = append(biasRows, []string{
			cli.RenderBiases(model.Biases{bs.Bias}),
			cli.FormatNumber(int64(bs.Days)),
			cli.FormatPercent(bs.SharePercent),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Biases",
		Headers: []string{"Bias", "Days", "Share"},
		Rows:    biasRows,
	}))

	fmt.Println()
	fmt.Printf("  Cumulative savings  %s  %s\n",
		cli.RenderSparkline(pipeline.SavingsSeries(l)),
		cli.FormatSignedMoney(cur, stats.NetSavings))
	return nil
}
