package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/econopsych/internal/config"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the first-run wizard answers. Fields are bound by
// pointer into the huh form, so keep one instance per form.
type SetupValues struct {
	Days     int
	Seed     string
	Theme    string
	Currency string
}

// NewSetupValues pre-fills the wizard from cfg.
func NewSetupValues(cfg config.Config) *SetupValues {
	return &SetupValues{
		Days:     cfg.General.DefaultDays,
		Seed:     strconv.FormatUint(cfg.General.Seed, 10),
		Theme:    cfg.Appearance.Theme,
		Currency: cfg.Appearance.Currency,
	}
}

// NewSetupForm builds the first-run wizard. It is shared by the dashboard
// and `econopsych setup`.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to econopsych!").
				Description("Each session starts from a seeded sample of days.\nLet's pick the defaults."),

			huh.NewSelect[int]().
				Title("Sample days per session").
				Options(
					huh.NewOption("None, start empty", 0),
					huh.NewOption("7 days", 7),
					huh.NewOption("14 days", 14),
					huh.NewOption("30 days", 30),
				).
				Value(&v.Days),

			huh.NewInput().
				Title("Sample seed").
				Description("The same seed always produces the same days.").
				Value(&v.Seed).
				Validate(validateSeed),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),

			huh.NewInput().
				Title("Currency symbol").
				CharLimit(3).
				Value(&v.Currency).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("currency symbol is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)
}

func validateSeed(s string) error {
	if _, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err != nil {
		return fmt.Errorf("seed must be a non-negative integer")
	}
	return nil
}

// Apply copies the answers onto cfg.
func (v *SetupValues) Apply(cfg config.Config) (config.Config, error) {
	seed, err := strconv.ParseUint(strings.TrimSpace(v.Seed), 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("parsing seed %q: %w", v.Seed, err)
	}
	cfg.General.Seed = seed
	cfg.General.DefaultDays = v.Days
	cfg.General.StartEmpty = v.Days == 0
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	cfg.Appearance.Currency = strings.TrimSpace(v.Currency)
	return cfg, nil
}
