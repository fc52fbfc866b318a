package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/econopsych/internal/config"
	"github.com/theirongolddev/econopsych/internal/tui/components"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldCurrency
	settingsFieldSeed
	settingsFieldDays
	settingsFieldStartEmpty
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func themeNames() string {
	names := make([]string, len(theme.All))
	for i, t := range theme.All {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadSavedConfig()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = themeNames()
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldCurrency:
		ti.Placeholder = "$"
		ti.CharLimit = 3
		ti.SetValue(a.currency)
	case settingsFieldSeed:
		ti.Placeholder = "42"
		ti.SetValue(strconv.FormatUint(a.seed, 10))
	case settingsFieldDays:
		ti.Placeholder = "7"
		ti.SetValue(strconv.Itoa(a.days))
	case settingsFieldStartEmpty:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.empty))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settings.saveErr = a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited field, applies it to the live session
// and persists it. Seed and day changes start a new session.
func (a *App) settingsSave() error {
	cfg := loadSavedConfig()
	val := strings.TrimSpace(a.settings.input.Value())

	reseed := false
	switch a.settings.cursor {
	case settingsFieldTheme:
		if theme.ByName(val).Name != val {
			return fmt.Errorf("unknown theme %q", val)
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldCurrency:
		if val == "" {
			return fmt.Errorf("currency symbol is required")
		}
		cfg.Appearance.Currency = val
		a.currency = val
		a.recompute()
	case settingsFieldSeed:
		seed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be a non-negative integer")
		}
		cfg.General.Seed = seed
		a.seed, reseed = seed, true
	case settingsFieldDays:
		d, err := strconv.Atoi(val)
		if err != nil || d < 0 {
			return fmt.Errorf("days must be a non-negative integer")
		}
		cfg.General.DefaultDays = d
		a.days, reseed = d, true
	case settingsFieldStartEmpty:
		empty, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("start empty must be true or false")
		}
		cfg.General.StartEmpty = empty
		a.empty, reseed = empty, true
	}

	if reseed {
		if err := a.reset(); err != nil {
			return err
		}
	}
	return config.Save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover)

	fields := []struct{ label, value string }{
		{"Theme", t.Name},
		{"Currency", a.currency},
		{"Seed", strconv.FormatUint(a.seed, 10)},
		{"Sample Days", strconv.Itoa(a.days)},
		{"Start Empty", strconv.FormatBool(a.empty)},
	}

	innerW := components.CardInnerWidth(cw)
	var form strings.Builder
	for i, f := range fields {
		switch {
		case a.settings.editing && i == a.settings.cursor:
			form.WriteString(markerStyle.Render("▸ "))
			form.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label)))
			form.WriteString(a.settings.input.View())
		case i == a.settings.cursor:
			line := markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")) +
				selectedStyle.Render(f.value)
			form.WriteString(line)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				form.WriteString(selectedStyle.Render(strings.Repeat(" ", pad)))
			}
		default:
			form.WriteString(labelStyle.Render("  " + fmt.Sprintf("%-14s ", f.label+":")))
			form.WriteString(valueStyle.Render(f.value))
		}
		form.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.Loss).Background(t.Surface).
			Render("Not saved: " + a.settings.saveErr.Error()))
	} else if a.settings.saved {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.Gain).Background(t.Surface).Render("Saved!"))
	}
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Themes:       ") + valueStyle.Render(themeNames()) + "\n")
	info.WriteString(labelStyle.Render("Days in view: ") + valueStyle.Render(strconv.Itoa(a.ledger.Len())) + "\n")
	info.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", form.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Session", info.String(), cw))
	return b.String()
}
