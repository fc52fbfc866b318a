// Package theme defines color themes for the econopsych TUI dashboard.
package theme

import (
	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Active tab, selected row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // Focused cards and overlays
	TextDim      lipgloss.Color // Hints, axes
	TextMuted    lipgloss.Color // Labels, metadata
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color // Headings, active states
	AccentBright lipgloss.Color
	Gain         lipgloss.Color // Positive savings
	Loss         lipgloss.Color // Negative savings, errors
	Planned      lipgloss.Color // Planned-spend series
	Actual       lipgloss.Color // Actual-spend series
	Impulse      lipgloss.Color
	Present      lipgloss.Color
	LossAversion lipgloss.Color
}

// Bias returns the color a theme uses for one bias label.
func (t Theme) Bias(b model.Bias) lipgloss.Color {
	switch b {
	case model.ImpulseSpending:
		return t.Impulse
	case model.PresentBias:
		return t.Present
	case model.LossAversion:
		return t.LossAversion
	default:
		return t.TextMuted
	}
}

// Paper is the default light theme: cream page, signal-red headings.
var Paper = Theme{
	Name:         "paper",
	Background:   lipgloss.Color("#FFF8F0"),
	Surface:      lipgloss.Color("#FFF8F0"),
	SurfaceHover: lipgloss.Color("#F2E8DC"),
	Border:       lipgloss.Color("#D8CFC4"),
	BorderAccent: lipgloss.Color("#D32F2F"),
	TextDim:      lipgloss.Color("#A39E93"),
	TextMuted:    lipgloss.Color("#6F6E69"),
	TextPrimary:  lipgloss.Color("#1C1B1A"),
	Accent:       lipgloss.Color("#D32F2F"),
	AccentBright: lipgloss.Color("#E53935"),
	Gain:         lipgloss.Color("#2E7D32"),
	Loss:         lipgloss.Color("#D32F2F"),
	Planned:      lipgloss.Color("#D32F2F"),
	Actual:       lipgloss.Color("#2E7D32"),
	Impulse:      lipgloss.Color("#BC5215"),
	Present:      lipgloss.Color("#5E409D"),
	LossAversion: lipgloss.Color("#205EA6"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#D14D41"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#D14D41"),
	AccentBright: lipgloss.Color("#E8705F"),
	Gain:         lipgloss.Color("#879A39"),
	Loss:         lipgloss.Color("#D14D41"),
	Planned:      lipgloss.Color("#D14D41"),
	Actual:       lipgloss.Color("#879A39"),
	Impulse:      lipgloss.Color("#DA702C"),
	Present:      lipgloss.Color("#8B7EC8"),
	LossAversion: lipgloss.Color("#4385BE"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	SurfaceHover: lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#F7768E"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#F7768E"),
	AccentBright: lipgloss.Color("#FF9CAC"),
	Gain:         lipgloss.Color("#9ECE6A"),
	Loss:         lipgloss.Color("#F7768E"),
	Planned:      lipgloss.Color("#F7768E"),
	Actual:       lipgloss.Color("#9ECE6A"),
	Impulse:      lipgloss.Color("#FF9E64"),
	Present:      lipgloss.Color("#BB9AF7"),
	LossAversion: lipgloss.Color("#7AA2F7"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("1"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("1"),
	AccentBright: lipgloss.Color("9"),
	Gain:         lipgloss.Color("2"),
	Loss:         lipgloss.Color("1"),
	Planned:      lipgloss.Color("1"),
	Actual:       lipgloss.Color("2"),
	Impulse:      lipgloss.Color("3"),
	Present:      lipgloss.Color("5"),
	LossAversion: lipgloss.Color("4"),
}

// All available themes.
var All = []Theme{Paper, FlexokiDark, TokyoNight, Terminal}

// Active is the currently selected theme.
var Active = Paper

// ByName returns a theme by its name, defaulting to Paper.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Paper
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
