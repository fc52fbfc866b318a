package tui

import (
	"testing"

	"github.com/theirongolddev/econopsych/internal/config"
	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func newTestApp(t *testing.T, days int) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a, err := NewApp(Options{Seed: 42, Days: days, Empty: days == 0, Currency: "$"})
	require.NoError(t, err)
	return a
}

func rawDay(planned, actual, savings int64, impulse int) model.RawDay {
	return model.RawDay{
		PlannedSpend: decimal.NewFromInt(planned),
		ActualSpend:  decimal.NewFromInt(actual),
		SavingsGoal:  decimal.NewFromInt(savings),
		ImpulseLevel: impulse,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0
		for i := 0; i < n; i++ {
			w := len(components.Tabs[i].Name) + 2 // horizontal padding
			if i != active && components.Tabs[i].KeyPos < 0 {
				w += 3 // inactive Settings adds "[x]"
			}
			x := pos + w/2
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 1 // separator
		}
		if got := a.tabAtX(pos + 50); got != -1 {
			t.Fatalf("active=%d past last tab -> %d, want -1", active, got)
		}
	}
}

func TestNewApp_SeedsLedger(t *testing.T) {
	a := newTestApp(t, 7)
	assert.Equal(t, 7, a.Ledger().Len())
	assert.Equal(t, 7, a.stats.Days)
	assert.Len(t, a.cumulative, 7)
	assert.Len(t, a.matrix.Rows, len(model.AllBiases)+1)
}

func TestNewApp_Empty(t *testing.T) {
	a := newTestApp(t, 0)
	assert.Equal(t, 0, a.Ledger().Len())
	assert.Empty(t, a.nudges)
}

func TestAppendDay(t *testing.T) {
	a := newTestApp(t, 0)

	a.appendDay(rawDay(20, 25, 15, 3))
	require.Equal(t, 1, a.Ledger().Len())
	assert.False(t, a.flashErr)
	assert.Equal(t, "Day 1 added: Impulse Spending", a.flash)
	require.Len(t, a.nudges, 1)
	assert.Equal(t, model.ImpulseSpending, a.nudges[0].Bias)
	assert.True(t, a.cumulative[0].Equal(decimal.NewFromInt(-5)))

	a.appendDay(rawDay(50, 10, 5, 1))
	require.Equal(t, 2, a.Ledger().Len())
	assert.True(t, a.cumulative[1].Equal(decimal.NewFromInt(35)))
	assert.Equal(t, 1, a.ledgerState.cursor)
}

func TestAppendDay_InvalidKeepsLedger(t *testing.T) {
	a := newTestApp(t, 3)
	before := a.Ledger().Days()

	a.appendDay(rawDay(10, -1, 10, 3))
	assert.True(t, a.flashErr)
	assert.Contains(t, a.flash, "invalid input")
	assert.Equal(t, before, a.Ledger().Days())

	a.appendDay(rawDay(10, 10, 10, 6))
	assert.True(t, a.flashErr)
	assert.Equal(t, 3, a.Ledger().Len())
}

func TestAddValues_Raw(t *testing.T) {
	v := &addValues{planned: " 20 ", actual: "25.50", savings: "15", impulse: 4}
	raw, err := v.raw()
	require.NoError(t, err)
	assert.True(t, raw.ActualSpend.Equal(decimal.RequireFromString("25.5")))
	assert.Equal(t, 4, raw.ImpulseLevel)

	v.savings = "lots"
	_, err = v.raw()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "savings goal")
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, validateAmount("0"))
	assert.NoError(t, validateAmount("12.75"))
	assert.Error(t, validateAmount("-3"))
	assert.Error(t, validateAmount(""))
}

func TestUpdate_TabKeys(t *testing.T) {
	a := newTestApp(t, 7)

	m, _ := a.Update(keyRunes("b"))
	assert.Equal(t, tabBiases, m.(App).activeTab)

	m, _ = m.Update(keyRunes("x"))
	assert.Equal(t, tabSettings, m.(App).activeTab)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tabOverview, m.(App).activeTab)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, tabSettings, m.(App).activeTab)
}

func TestUpdate_AddOpensFormAndEscCancels(t *testing.T) {
	a := newTestApp(t, 7)

	m, _ := a.Update(keyRunes("a"))
	require.NotNil(t, m.(App).addForm)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.(App).addForm)
	assert.Equal(t, 7, m.(App).Ledger().Len())
}

func TestUpdate_ResetDiscardsAppended(t *testing.T) {
	a := newTestApp(t, 7)
	a.appendDay(rawDay(10, 10, 5, 1))
	require.Equal(t, 8, a.Ledger().Len())

	m, _ := a.Update(keyRunes("r"))
	assert.Equal(t, 7, m.(App).Ledger().Len())
	assert.Contains(t, m.(App).flash, "seed 42")
}

func TestLedgerState(t *testing.T) {
	var s ledgerState
	assert.True(t, s.handleKey("G", 10, 4))
	assert.Equal(t, 9, s.cursor)
	assert.Equal(t, 6, s.offset)

	assert.True(t, s.handleKey("g", 10, 4))
	assert.Equal(t, 0, s.cursor)
	assert.Equal(t, 0, s.offset)

	assert.True(t, s.handleKey("k", 10, 4))
	assert.Equal(t, 0, s.cursor)

	assert.False(t, s.handleKey("z", 10, 4))
}

func TestSettingsSave_SeedReseeds(t *testing.T) {
	a := newTestApp(t, 5)
	before := a.Ledger().Days()

	a.settings.cursor = settingsFieldSeed
	a.settings.input = newSettingsInput()
	a.settings.input.SetValue("7")
	require.NoError(t, a.settingsSave())

	assert.Equal(t, uint64(7), a.seed)
	assert.Equal(t, 5, a.Ledger().Len())
	assert.NotEqual(t, before, a.Ledger().Days())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.General.Seed)
}

func TestSettingsSave_KeepsEnvOverridesOutOfFile(t *testing.T) {
	a := newTestApp(t, 5)
	t.Setenv(config.EnvSeed, "1234")
	t.Setenv(config.EnvTheme, "terminal")

	a.settings.cursor = settingsFieldCurrency
	a.settings.input = newSettingsInput()
	a.settings.input.SetValue("€")
	require.NoError(t, a.settingsSave())

	saved, err := config.LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "€", saved.Appearance.Currency)
	assert.Equal(t, config.DefaultConfig().General.Seed, saved.General.Seed)
	assert.Equal(t, config.DefaultConfig().Appearance.Theme, saved.Appearance.Theme)
}

func TestSettingsSave_RejectsUnknownTheme(t *testing.T) {
	a := newTestApp(t, 5)
	a.settings.cursor = settingsFieldTheme
	a.settings.input = newSettingsInput()
	a.settings.input.SetValue("neon")

	err := a.settingsSave()
	require.Error(t, err)
	assert.False(t, config.Exists())
}

func TestSetupValues_Apply(t *testing.T) {
	v := &SetupValues{Days: 0, Seed: "99", Theme: "terminal", Currency: " € "}
	cfg, err := v.Apply(config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.General.Seed)
	assert.True(t, cfg.General.StartEmpty)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, "€", cfg.Appearance.Currency)

	v.Seed = "-1"
	_, err = v.Apply(config.DefaultConfig())
	assert.Error(t, err)
}

func TestView_RendersEveryTab(t *testing.T) {
	a := newTestApp(t, 7)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 40})

	for i := range components.Tabs {
		app := m.(App)
		app.activeTab = i
		out := app.View()
		assert.NotEmpty(t, out, "tab %d", i)
		assert.Equal(t, 40, lipgloss.Height(out), "tab %d", i)
	}
}

func TestView_TooNarrow(t *testing.T) {
	a := newTestApp(t, 7)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.(App).View(), "too narrow")
}
