package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/build"
)

// AboutInfo is what `dockyard about` shows next to the logo.
type AboutInfo struct {
	Build       build.Info
	ConfigFile  string
	Backend     string
	StoragePath string
}

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders the logo and the info lines side by side.
func (r *AboutRenderer) Render(info AboutInfo) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	// Three docked panes.
	logo := `┌──┬─────┐
│  │     │
│  ├─────┤
│  │     │
└──┴─────┘`
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info AboutInfo) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	line := func(glyph, key, val string) string {
		if val == "" {
			val = "unknown"
		}
		return fmt.Sprintf("%s %s %s", icon.Render(glyph), r.theme.Subtle.Render(key), r.theme.Highlight.Render(val))
	}

	version := info.Build.Version
	if version == "" {
		version = "dev"
	}
	lines := []string{
		line(IconVersion, "Version", version),
		line(IconCommit, "Commit", info.Build.Commit),
		line(IconClock, "Built", info.Build.BuildDate),
		line(IconDot, "Go", info.Build.GoVersion),
		"",
		line(IconFile, "Config", info.ConfigFile),
		line(IconLayout, "Layouts", fmt.Sprintf("%s (%s)", info.StoragePath, info.Backend)),
		"",
		fmt.Sprintf("%s %s", icon.Render(IconArrow), r.theme.Subtle.Render(build.RepoURL())),
	}
	return strings.Join(lines, "\n")
}
