package cmd

import (
	"fmt"

	"github.com/theirongolddev/econopsych/internal/cli"
	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/nudge"
	"github.com/theirongolddev/econopsych/internal/pipeline"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagAddPlanned string
	flagAddActual  string
	flagAddSavings string
	flagAddImpulse int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add today's spending to the session ledger",
	Example: "  econopsych add --planned 30 --actual 42.50 --savings 20 --impulse 4\n" +
		"  econopsych add --empty --planned 30 --actual 10 --savings 5 --impulse 1",
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddPlanned, "planned", "", "Planned spend")
	addCmd.Flags().StringVar(&flagAddActual, "actual", "", "Actual spend")
	addCmd.Flags().StringVar(&flagAddSavings, "savings", "", "Savings goal")
	addCmd.Flags().IntVar(&flagAddImpulse, "impulse", 3, "Impulse level, 1-5")
	_ = addCmd.MarkFlagRequired("planned")
	_ = addCmd.MarkFlagRequired("actual")
	_ = addCmd.MarkFlagRequired("savings")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	raw, err := parseRawDay(flagAddPlanned, flagAddActual, flagAddSavings, flagAddImpulse)
	if err != nil {
		return err
	}

	l, err := loadLedger()
	if err != nil {
		return err
	}
	l, err = l.Append(raw)
	if err != nil {
		return fmt.Errorf("adding day: %w", err)
	}

	day, _ := l.Last()
	cum := pipeline.CumulativeSavings(l)
	cur := currency()
	log.WithFields(log.Fields{
		"day":    day.Day,
		"biases": day.Biases.String(),
	}).Debug("day appended")

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAY %d ADDED", day.Day)))
	fmt.Println()
	fmt.Print(renderDayTable([]model.DayRecord{day}, cum, cur))

	if nudges := nudge.ForDay(day, cur); len(nudges) > 0 {
		fmt.Println()
		for _, n := range nudges {
			fmt.Printf("  %s\n", n)
		}
	}

	fmt.Println()
	fmt.Println("  Cumulative savings")
	maxAbs := 0.0
	for _, c := range cum {
		maxAbs = max(maxAbs, c.Abs().InexactFloat64())
	}
	for i, c := range cum {
		fmt.Println(cli.RenderSignedBar(fmt.Sprintf("D%-3d", i+1), c.InexactFloat64(), maxAbs, 20,
			cli.FormatSignedMoney(cur, c)))
	}
	return nil
}

// parseRawDay converts flag text to a RawDay. Range checks are left to
// Ledger.Append.
func parseRawDay(planned, actual, savings string, impulse int) (model.RawDay, error) {
	p, err := decimal.NewFromString(planned)
	if err != nil {
		return model.RawDay{}, fmt.Errorf("parsing --planned: %w", err)
	}
	a, err := decimal.NewFromString(actual)
	if err != nil {
		return model.RawDay{}, fmt.Errorf("parsing --actual: %w", err)
	}
	s, err := decimal.NewFromString(savings)
	if err != nil {
		return model.RawDay{}, fmt.Errorf("parsing --savings: %w", err)
	}
	return model.RawDay{
		PlannedSpend: p,
		ActualSpend:  a,
		SavingsGoal:  s,
		ImpulseLevel: impulse,
	}, nil
}
