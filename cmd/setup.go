package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/econopsych/internal/config"
	"github.com/theirongolddev/econopsych/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file alone so ECONOPSYCH_* overrides are not saved.
	saved, err := config.LoadFile()
	if err != nil {
		return err
	}

	vals := tui.NewSetupValues(saved)
	if err := tui.NewSetupForm(vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("\n  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	next, err := vals.Apply(saved)
	if err != nil {
		return err
	}
	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `econopsych setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
