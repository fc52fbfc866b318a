package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/pipeline"
	"github.com/theirongolddev/econopsych/internal/tui/components"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// addValues is bound into the "add day" form.
type addValues struct {
	planned string
	actual  string
	savings string
	impulse int
}

func newAddForm(v *addValues, day int) *huh.Form {
	impulseOpts := make([]huh.Option[int], 0, pipeline.MaxImpulse)
	for i := pipeline.MinImpulse; i <= pipeline.MaxImpulse; i++ {
		impulseOpts = append(impulseOpts, huh.NewOption(fmt.Sprintf("%d", i), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Day %d: planned spend", day)).
				Placeholder("e.g. 25").
				Value(&v.planned).
				Validate(validateAmount),
			huh.NewInput().
				Title("Actual spend").
				Value(&v.actual).
				Validate(validateAmount),
			huh.NewInput().
				Title("Savings goal").
				Value(&v.savings).
				Validate(validateAmount),
			huh.NewSelect[int]().
				Title("Impulse level").
				Description("1 = calm, 5 = very impulsive").
				Options(impulseOpts...).
				Inline(true).
				Value(&v.impulse),
		),
	).WithShowHelp(false)
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}
	return d, nil
}

func validateAmount(s string) error {
	d, err := parseAmount(s)
	if err != nil {
		return err
	}
	if d.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}

// raw converts the form answers into a RawDay. Range checks are left to
// the ledger so the form and the API reject the same inputs.
func (v *addValues) raw() (model.RawDay, error) {
	planned, err := parseAmount(v.planned)
	if err != nil {
		return model.RawDay{}, fmt.Errorf("planned spend: %w", err)
	}
	actual, err := parseAmount(v.actual)
	if err != nil {
		return model.RawDay{}, fmt.Errorf("actual spend: %w", err)
	}
	savings, err := parseAmount(v.savings)
	if err != nil {
		return model.RawDay{}, fmt.Errorf("savings goal: %w", err)
	}
	return model.RawDay{
		PlannedSpend: planned,
		ActualSpend:  actual,
		SavingsGoal:  savings,
		ImpulseLevel: v.impulse,
	}, nil
}

func (a App) renderAddForm(cw int) string {
	t := theme.Active
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
		Render("[Enter] next  [Esc] cancel")
	w := min(cw, 64)
	card := components.ContentCard("Add Day", a.addForm.View()+"\n"+hint, w)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
