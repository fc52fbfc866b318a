// Package tui provides the interactive Bubble Tea dashboard for econopsych.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/econopsych/internal/config"
	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/nudge"
	"github.com/theirongolddev/econopsych/internal/pipeline"
	"github.com/theirongolddev/econopsych/internal/simulate"
	"github.com/theirongolddev/econopsych/internal/tui/components"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Tab indexes, matching components.Tabs.
const (
	tabOverview = iota
	tabLedger
	tabNudges
	tabBiases
	tabSettings
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160
	minContentHeight = 5
)

// Options configures a new dashboard session.
type Options struct {
	Seed      uint64
	Days      int
	Empty     bool
	Currency  string
	NeedSetup bool
}

// App is the root Bubble Tea model. It owns the session ledger; every
// view is recomputed from it after an append or a reset.
type App struct {
	// Session
	ledger   pipeline.Ledger
	seed     uint64
	days     int
	empty    bool
	currency string

	// Pre-computed from the ledger
	stats      model.SummaryStats
	biasStats  []model.BiasStats
	matrix     model.BiasMatrix
	nudges     []nudge.Nudge
	cumulative []decimal.Decimal

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string
	flashErr  bool

	// Per-tab state
	ledgerState ledgerState
	settings    settingsState

	// "Add day" form (huh)
	addForm *huh.Form
	addVals *addValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

// NewApp creates a dashboard seeded per opts.
func NewApp(opts Options) (App, error) {
	if opts.Currency == "" {
		opts.Currency = config.DefaultConfig().Appearance.Currency
	}
	a := App{
		seed:      opts.Seed,
		days:      opts.Days,
		empty:     opts.Empty,
		currency:  opts.Currency,
		needSetup: opts.NeedSetup,
	}
	if err := a.reset(); err != nil {
		return App{}, err
	}
	if a.needSetup {
		a.setupVals = NewSetupValues(loadSavedConfig())
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a, nil
}

// Ledger returns the dashboard's current session ledger.
func (a App) Ledger() pipeline.Ledger {
	return a.ledger
}

// reset starts a fresh session from the current seed and day count.
func (a *App) reset() error {
	l, err := simulate.NewLedger(simulate.SourceFor(a.seed, a.empty), a.days)
	if err != nil {
		return fmt.Errorf("seeding session: %w", err)
	}
	a.ledger = l
	a.recompute()
	log.WithFields(log.Fields{"seed": a.seed, "days": l.Len()}).Debug("session seeded")
	return nil
}

func (a *App) recompute() {
	a.stats = pipeline.Aggregate(a.ledger)
	a.biasStats = pipeline.AggregateBiases(a.ledger)
	a.matrix = pipeline.BiasMatrix(a.ledger)
	a.nudges = nudge.ForLedger(a.ledger, a.currency)
	a.cumulative = pipeline.CumulativeSavings(a.ledger)
	a.ledgerState.clamp(a.ledger.Len())
}

// appendDay appends raw to the session and flashes the outcome.
func (a *App) appendDay(raw model.RawDay) {
	l, err := a.ledger.Append(raw)
	if err != nil {
		a.flash, a.flashErr = err.Error(), true
		log.WithError(err).Warn("append rejected")
		return
	}
	a.ledger = l
	a.recompute()
	last, _ := l.Last()
	a.flash, a.flashErr = fmt.Sprintf("Day %d added: %s", last.Day, last.Biases), false
	a.ledgerState.cursor = l.Len() - 1
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return tea.Batch(tea.EnableMouseCellMotion, a.setupForm.Init())
	}
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(min(msg.Width, 60))
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil || a.addForm != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.addForm != nil {
			return a.updateAddForm(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}
		return a.updateKey(msg)
	}

	// Forward cursor blinks and the like to an active form.
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch a.activeTab {
	case tabLedger:
		if a.ledgerState.handleKey(key, a.ledger.Len(), a.pageSize()) {
			return a, nil
		}
	case tabSettings:
		switch key {
		case "j", "down":
			a.settings.cursor = min(a.settings.cursor+1, settingsFieldCount-1)
			return a, nil
		case "k", "up":
			a.settings.cursor = max(a.settings.cursor-1, 0)
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		a.flash = ""
		a.addVals = &addValues{impulse: 3}
		a.addForm = newAddForm(a.addVals, a.ledger.Len()+1)
		if a.width > 0 {
			a.addForm = a.addForm.WithWidth(min(a.width, 60))
		}
		return a, a.addForm.Init()
	case "r":
		if err := a.reset(); err != nil {
			a.flash, a.flashErr = err.Error(), true
		} else {
			a.flash, a.flashErr = fmt.Sprintf("New session: %d days, seed %d", a.ledger.Len(), a.seed), false
		}
		return a, nil
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if r := []rune(key); len(r) == 1 {
		if idx := components.TabIdxByKey(r[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabLedger {
			a.ledgerState.handleKey("up", a.ledger.Len(), a.pageSize())
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabLedger {
			a.ledgerState.handleKey("down", a.ledger.Len(), a.pageSize())
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		cfg, err := a.setupVals.Apply(loadSavedConfig())
		if err == nil {
			err = config.Save(cfg)
		}
		a.setupForm, a.needSetup = nil, false
		if err != nil {
			a.flash, a.flashErr = "Setup not saved: "+err.Error(), true
			return a, nil
		}
		theme.SetActive(cfg.Appearance.Theme)
		a.seed, a.days, a.currency = cfg.General.Seed, cfg.General.DefaultDays, cfg.Appearance.Currency
		if err := a.reset(); err != nil {
			a.flash, a.flashErr = err.Error(), true
			return a, nil
		}
		a.flash, a.flashErr = "Saved to "+config.Path(), false
		return a, nil
	case huh.StateAborted:
		a.setupForm, a.needSetup = nil, false
		return a, nil
	}
	return a, cmd
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.addForm, a.addVals = nil, nil
		return a, nil
	}

	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		raw, err := a.addVals.raw()
		if err != nil {
			a.flash, a.flashErr = err.Error(), true
		} else {
			a.appendDay(raw)
		}
		a.addForm, a.addVals = nil, nil
		return a, nil
	case huh.StateAborted:
		a.addForm, a.addVals = nil, nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// pageSize is the number of ledger rows that fit on screen.
func (a App) pageSize() int {
	return max(a.height-9, 3)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  econopsych needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	bindings := []struct{ key, desc string }{
		{"o l n b x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move in ledger and settings"},
		{"g G", "First / last day"},
		{"a", "Add a day"},
		{"r", "Start a new seeded session"},
		{"Enter", "Edit setting"},
		{"Esc", "Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w, h, cw := a.width, a.height, a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)
	info := fmt.Sprintf("%d days · seed %d", a.ledger.Len(), a.seed)
	if a.empty {
		info = fmt.Sprintf("%d days · manual", a.ledger.Len())
	}
	statusBar := components.RenderStatusBar(w, a.flash, a.flashErr, info)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabLedger:
		content = a.renderLedgerTab(cw)
	case tabNudges:
		content = a.renderNudgesTab(cw)
	case tabBiases:
		content = a.renderBiasesTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}
	if a.addForm != nil {
		content = a.renderAddForm(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// loadSavedConfig loads the config file without env overrides, returning
// defaults on error so the dashboard can always start. Edits are saved on
// top of it.
func loadSavedConfig() config.Config {
	cfg, err := config.LoadFile()
	if err != nil {
		log.WithError(err).Warn("using default config")
		return config.DefaultConfig()
	}
	return cfg
}

// dayLabels returns "D1".."Dn" for a ledger's days.
func dayLabels(days []model.DayRecord) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = fmt.Sprintf("D%d", d.Day)
	}
	return out
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}
