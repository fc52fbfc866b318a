package cmd

import (
	"fmt"

	"github.com/theirongolddev/econopsych/internal/cli"
	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/nudge"

	"github.com/spf13/cobra"
)

var nudgesCmd = &cobra.Command{
	Use:   "nudges",
	Short: "Personalized nudges for every detected bias",
	RunE:  runNudges,
}

func init() {
	rootCmd.AddCommand(nudgesCmd)
}

func runNudges(_ *cobra.Command, _ []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}

	nudges := nudge.ForLedger(l, currency())
	if len(nudges) == 0 {
		fmt.Println("\n  No biases detected, nothing to nudge.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PERSONALIZED NUDGES"))
	fmt.Println()

	rows := make([][]string, 0, len(nudges))
	for _, n := range nudges {
		rows = append(rows, []string{
			fmt.Sprintf("Day %d", n.Day),
			cli.RenderBiases(model.Biases{n.Bias}),
			n.Message,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"Day", "Bias", "Nudge"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true},
	}))
	return nil
}
