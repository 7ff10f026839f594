package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CheckStatus is the outcome of one doctor check.
type CheckStatus int

const (
	CheckOK CheckStatus = iota
	CheckWarn
	CheckFailed
)

// DoctorCheck is one line of the doctor report.
type DoctorCheck struct {
	Name   string
	Status CheckStatus
	Detail string
}

// DoctorReport is the result of `dockyard doctor`.
type DoctorReport struct {
	Checks []DoctorCheck
}

// OK reports whether no check failed. Warnings do not count.
func (r DoctorReport) OK() bool {
	for _, c := range r.Checks {
		if c.Status == CheckFailed {
			return false
		}
	}
	return true
}

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	lines := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		lines = append(lines, r.renderCheck(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report.OK()), "", strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.ErrorStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon, style := IconCheck, r.theme.SuccessStyle
	switch c.Status {
	case CheckWarn:
		icon, style = IconWarning, r.theme.Subtle
	case CheckFailed:
		icon, style = IconX, r.theme.ErrorStyle
	}
	return fmt.Sprintf("%s %s\n  %s", style.Render(icon), r.theme.Normal.Render(c.Name), r.theme.Subtle.Render(c.Detail))
}
