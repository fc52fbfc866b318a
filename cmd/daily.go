package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/econopsych/internal/cli"
	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/pipeline"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var flagDailyBias string

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Per-day ledger table",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().StringVarP(&flagDailyBias, "bias", "b", "", "Only days with this bias (ImpulseSpending, PresentBias, LossAversion)")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	if l.Len() == 0 {
		fmt.Println("\n  The ledger is empty.")
		return nil
	}

	days := l.Days()
	cum := pipeline.CumulativeSavings(l)
	if flagDailyBias != "" {
		b, err := parseBias(flagDailyBias)
		if err != nil {
			return err
		}
		days = pipeline.FilterByBias(days, b)
	}
	if len(days) == 0 {
		fmt.Printf("\n  No days with %s.\n", flagDailyBias)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY LEDGER  %d days", l.Len())))
	fmt.Println()

	fmt.Print(renderDayTable(days, cum, currency()))
	return nil
}

// renderDayTable renders days with their cumulative savings, where cum is
// indexed by day number minus one.
func renderDayTable(days []model.DayRecord, cum []decimal.Decimal, cur string) string {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			strconv.Itoa(d.Day),
			cli.FormatMoney(cur, d.PlannedSpend),
			cli.FormatMoney(cur, d.ActualSpend),
			cli.FormatMoney(cur, d.SavingsGoal),
			cli.FormatImpulse(d.ImpulseLevel),
			cli.RenderBiases(d.Biases),
			cli.FormatSignedMoney(cur, cum[d.Day-1]),
		})
	}

	return cli.RenderTable(cli.Table{
		Headers:   []string{"Day", "Planned", "Actual", "Goal", "Impulse", "Biases", "Cumulative"},
		Rows:      rows,
		LeftAlign: map[int]bool{4: true, 5: true},
	})
}

func parseBias(s string) (model.Bias, error) {
	for _, b := range model.AllBiases {
		if string(b) == s || b.Label() == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown bias %q", s)
}
