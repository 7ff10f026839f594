// Package styles provides the lipgloss styles shared by dockyard's commands.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
	Marker lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	BadgeMuted   lipgloss.Style

	// Docking surface
	ActiveTab      lipgloss.Style
	InactiveTab    lipgloss.Style
	Frame          lipgloss.Style
	FocusedFrame   lipgloss.Style
	Divider        lipgloss.Style
	MarkerStyle    lipgloss.Style
	MenuItem       lipgloss.Style
	MenuSelected   lipgloss.Style
	MenuDisabled   lipgloss.Style
	StatusBar      lipgloss.Style
	WindowTitle    lipgloss.Style
	WindowControls lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates a Theme from the appearance section of cfg.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewThemeFromAppearance(cfg.Appearance)
}

// NewThemeFromAppearance creates a Theme from a palette.
func NewThemeFromAppearance(a config.AppearanceConfig) *Theme {
	t := &Theme{
		Text:   lipgloss.Color(a.Text),
		Muted:  lipgloss.Color(a.Muted),
		Accent: lipgloss.Color(a.Accent),
		Border: lipgloss.Color(a.Border),
		Marker: lipgloss.Color(a.Marker),

		Error:   lipgloss.Color("#f7768e"),
		Success: lipgloss.Color(a.Accent),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	t.BadgeMuted = lipgloss.NewStyle().Foreground(t.Text).Background(t.Border).Padding(0, 1)

	t.ActiveTab = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	t.InactiveTab = lipgloss.NewStyle().Foreground(t.Muted)
	t.Frame = lipgloss.NewStyle().Foreground(t.Border)
	t.FocusedFrame = lipgloss.NewStyle().Foreground(t.Accent)
	t.Divider = lipgloss.NewStyle().Foreground(t.Border)
	t.MarkerStyle = lipgloss.NewStyle().Foreground(t.Marker).Bold(true)
	t.MenuItem = lipgloss.NewStyle().Foreground(t.Text)
	t.MenuSelected = lipgloss.NewStyle().Foreground(t.Accent).Reverse(true)
	t.MenuDisabled = lipgloss.NewStyle().Foreground(t.Muted).Faint(true)
	t.StatusBar = lipgloss.NewStyle().Foreground(t.Muted)
	t.WindowTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.WindowControls = lipgloss.NewStyle().Foreground(t.Error)

	t.HelpKey = lipgloss.NewStyle().Foreground(t.Accent)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.Muted)
}
