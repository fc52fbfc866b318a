package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/econopsych/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Seed:         %d%s\n", cfg.General.Seed, envNote(config.EnvSeed))
	fmt.Printf("    Start empty:  %v\n", cfg.General.StartEmpty)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s%s\n", cfg.Appearance.Theme, envNote(config.EnvTheme))
	fmt.Printf("    Currency: %s\n", cfg.Appearance.Currency)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:       %s%s\n", cfg.Server.Addr, envNote(config.EnvAddr))
	fmt.Printf("    Events buffer: %d\n", cfg.Server.EventsBuffer)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s%s\n", cfg.Log.Level, envNote(config.EnvLogLevel))
	fmt.Println()

	fmt.Println("  Run `econopsych setup` to reconfigure.")
	return nil
}

func envNote(key string) string {
	if _, ok := os.LookupEnv(key); ok {
		return fmt.Sprintf("  (from %s)", key)
	}
	return ""
}
