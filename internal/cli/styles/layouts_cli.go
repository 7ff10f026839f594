package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutsCLIRenderer renders the non-interactive output of `dockyard layout`.
type LayoutsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewLayoutsCLIRenderer(theme *Theme) *LayoutsCLIRenderer {
	return &LayoutsCLIRenderer{theme: theme, now: time.Now}
}

func (r *LayoutsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *LayoutsCLIRenderer) RenderList(layouts []*entity.SavedLayout) string {
	if len(layouts) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconLayout), r.theme.Title.Render("Layouts")))
	for _, l := range layouts {
		b.WriteString(fmt.Sprintf("%s %s  %s %s  %s\n",
			r.theme.Subtle.Render(IconDot),
			r.theme.Highlight.Render(l.Name),
			r.theme.BadgeMuted.Render(plural(l.Arrangements, "window")),
			r.theme.BadgeMuted.Render(plural(l.Keys, "key")),
			r.theme.Subtle.Render(relativeTime(r.now(), l.SavedAt)),
		))
	}
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: `dockyard demo --layout <name>` opens a layout."))
	return b.String()
}

func (r *LayoutsCLIRenderer) RenderVerify(checks []usecase.LayoutCheck) string {
	if len(checks) == 0 {
		return r.RenderEmptyList()
	}
	var b strings.Builder
	for _, c := range checks {
		if c.Err != nil {
			b.WriteString(fmt.Sprintf("%s %s  %s\n",
				r.theme.ErrorStyle.Render(IconX),
				r.theme.Highlight.Render(c.Name),
				r.theme.ErrorStyle.Render(c.Err.Error())))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Highlight.Render(c.Name),
			r.theme.Subtle.Render(plural(c.Arrangements, "window")+", "+plural(c.Keys, "key"))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *LayoutsCLIRenderer) RenderSaved(layout *entity.SavedLayout) string {
	return fmt.Sprintf("%s Layout %s saved (%s).",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(layout.Name),
		plural(layout.Keys, "key"),
	)
}

func (r *LayoutsCLIRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Layout %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
	)
}

func (r *LayoutsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func relativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("2006-01-02")
	}
}
