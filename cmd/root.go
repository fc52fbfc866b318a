// Package cmd implements the econopsych CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/econopsych/internal/config"
	"github.com/theirongolddev/econopsych/internal/pipeline"
	"github.com/theirongolddev/econopsych/internal/simulate"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDays    int
	flagSeed    uint64
	flagEmpty   bool
	flagQuiet   bool
	flagVerbose bool
)

// cfg is loaded once before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "econopsych",
	Short: "Behavioral economics spending dashboard",
	Long: "Track planned vs actual spending and savings goals, detect impulse spending,\n" +
		"present bias and loss aversion, and get a nudge for every bias.",
	PersistentPreRunE: prepare,
	RunE:              runSummary,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	def := config.DefaultConfig()
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", def.General.DefaultDays, "Sample days to pre-seed the session with")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", def.General.Seed, "Seed for the sample days")
	rootCmd.PersistentFlags().BoolVar(&flagEmpty, "empty", false, "Start with an empty ledger")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// prepare loads .env and the config file, then lets explicit flags win over
// config values.
func prepare(c *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	flags := c.Flags()
	if !flags.Changed("days") {
		flagDays = cfg.General.DefaultDays
	}
	if !flags.Changed("seed") {
		flagSeed = cfg.General.Seed
	}
	if !flags.Changed("empty") {
		flagEmpty = cfg.General.StartEmpty
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	if flagVerbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	theme.SetActive(cfg.Appearance.Theme)
	return nil
}

// loadLedger is the shared session seeding path used by all commands.
func loadLedger() (pipeline.Ledger, error) {
	if flagDays < 0 {
		return pipeline.Ledger{}, fmt.Errorf("--days must be non-negative, got %d", flagDays)
	}
	l, err := simulate.NewLedger(simulate.SourceFor(flagSeed, flagEmpty), flagDays)
	if err != nil {
		return pipeline.Ledger{}, err
	}
	if !flagQuiet && !flagEmpty {
		fmt.Fprintf(os.Stderr, "  Seeded %d sample days (seed %d)\n", l.Len(), flagSeed)
	}
	log.WithFields(log.Fields{
		"days":  l.Len(),
		"seed":  flagSeed,
		"empty": flagEmpty,
	}).Debug("session ledger seeded")
	return l, nil
}

func currency() string {
	if cfg.Appearance.Currency == "" {
		return "$"
	}
	return cfg.Appearance.Currency
}
