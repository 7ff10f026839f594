package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// View implements tea.Model.
func (m DemoModel) View() string {
	area := m.surface()
	cv := newCanvas(area.W, area.H)
	m.draw(cv)
	return lipgloss.JoinVertical(lipgloss.Left,
		cv.render(m.palette),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

func (m *DemoModel) draw(cv *canvas) {
	set := m.docking.Set()
	focus := m.focused()

	m.drawArrangement(cv, set.Main(), focus)
	for _, arr := range set.Arrangements()[1:] {
		if _, ok := m.docking.WindowOf(arr); ok {
			m.drawWindow(cv, arr, focus)
		}
	}
	if m.menu != nil {
		m.drawMenu(cv)
	}
}

func (m *DemoModel) drawArrangement(cv *canvas, arr *entity.Arrangement, focus *entity.Container) {
	off := arr.ScreenBounds()
	opts := m.docking.Options().Layout

	arr.Walk(func(r entity.Region, _ *entity.Split) bool {
		if !r.Visible() {
			return true
		}
		switch n := r.(type) {
		case *entity.Split:
			drawDivider(cv, n, off)
		case *entity.Container:
			drawContainer(cv, n, off, opts.TabHeight, n == focus)
		case *entity.Bridge:
			drawDocuments(cv, n, off, opts)
		}
		return true
	})

	if marker, ok := arr.Overlay().Marker(); ok {
		cv.box(marker.Translate(off.X, off.Y), borderDouble, stMarker)
	}
}

func drawDivider(cv *canvas, s *entity.Split, off entity.Rect) {
	d := s.Divider()
	if d.Empty() {
		return
	}
	ch := '─'
	if s.Axis() == entity.AxisVertical {
		ch = '│'
	}
	cv.fill(d.Translate(off.X, off.Y), ch, stDivider)
}

func drawContainer(cv *canvas, c *entity.Container, off entity.Rect, tabHeight int, focused bool) {
	for _, slot := range c.Slots() {
		tb := slot.TabBounds()
		if !slot.Visible() || tb.Empty() {
			continue
		}
		tb = tb.Translate(off.X, off.Y)
		st := stTab
		if slot == c.Selected() {
			st = stActiveTab
		}
		label := slot.Title()
		if icon := slot.Icon(); icon != "" {
			label = icon + " " + label
		}
		cv.fill(tb, ' ', st)
		cv.text(tb.X+1, tb.Y, tb.W-2, label, st)
	}

	frame := stFrame
	if focused {
		frame = stFocus
	}
	body := c.ContentBounds(tabHeight).Translate(off.X, off.Y)
	cv.box(body, borderSingle, frame)

	item, ok := c.SelectedItem().(*entity.BasicItem)
	if !ok {
		return
	}
	inner := entity.Rect{X: body.X + 1, Y: body.Y + 1, W: body.W - 2, H: body.H - 2}
	for i, line := range strings.Split(item.Body, "\n") {
		if i >= inner.H {
			break
		}
		cv.text(inner.X+1, inner.Y+i, inner.W-1, line, stText)
	}

	status := c.Selected().Status()
	if item.Pinned {
		status = strings.TrimSpace(styles.IconPinned + " " + status)
	}
	if status != "" && body.H > 1 {
		cv.text(body.X+2, body.Y+body.H-1, body.W-4, " "+status+" ", stMuted)
	}
}

func drawDocuments(cv *canvas, b *entity.Bridge, off entity.Rect, opts entity.LayoutOptions) {
	bounds := b.Bounds().Translate(off.X, off.Y)
	docs, _ := b.Content().(*Documents)
	tabH := min(opts.TabHeight, bounds.H)

	if docs != nil {
		for i, name := range docs.Names() {
			x := bounds.X + i*opts.TabWidth
			if x >= bounds.X+bounds.W {
				break
			}
			w := min(opts.TabWidth, bounds.X+bounds.W-x)
			st := stTab
			if i == docs.Selected() {
				st = stActiveTab
			}
			cv.fill(entity.Rect{X: x, Y: bounds.Y, W: w, H: tabH}, ' ', st)
			cv.text(x+1, bounds.Y, w-2, name, st)
		}
	}

	body := entity.Rect{X: bounds.X, Y: bounds.Y + tabH, W: bounds.W, H: bounds.H - tabH}
	cv.box(body, borderRounded, stFrame)
	if docs == nil || docs.Selected() < 0 {
		cv.text(body.X+2, body.Y+1, body.W-4, "no open documents, press o", stMuted)
		return
	}
	for i, line := range documentLines(docs.Names()[docs.Selected()]) {
		if i >= body.H-2 {
			break
		}
		cv.text(body.X+2, body.Y+1+i, body.W-4, line, stText)
	}
}

func documentLines(name string) []string {
	if filepath.Ext(name) == ".go" {
		return []string{
			"package main",
			"",
			"// " + name,
			"func main() {",
			"}",
		}
	}
	return []string{"# " + strings.TrimSuffix(name, filepath.Ext(name)), "", "Edit me."}
}

func (m *DemoModel) drawWindow(cv *canvas, arr *entity.Arrangement, focus *entity.Container) {
	frame := outset(arr.ScreenBounds())
	st := stFrame
	if focus != nil && m.docking.Set().ArrangementOf(focus) == arr {
		st = stFocus
	}

	cv.fill(frame, ' ', stNone)
	cv.box(frame, borderRounded, st)
	cv.text(frame.X+2, frame.Y, frame.W-7, " "+styles.IconWindow+" "+windowTitle(arr)+" ", stWindowTitle)
	cv.text(frame.X+frame.W-4, frame.Y, 3, "["+styles.IconClose+"]", stWindowControls)

	m.drawArrangement(cv, arr, focus)
}

func windowTitle(arr *entity.Arrangement) string {
	if c := arr.FirstContainer(); c != nil && c.Selected() != nil {
		return c.Selected().Title()
	}
	return "window"
}

func (m *DemoModel) drawMenu(cv *canvas) {
	b := m.menu.bounds
	cv.fill(b, ' ', stMenu)
	cv.box(b, borderSingle, stMenu)
	for i, e := range m.menu.entries {
		st := stMenu
		switch {
		case !e.Enabled:
			st = stMenuDisabled
		case i == m.menu.index:
			st = stMenuSelected
		}
		row := entity.Rect{X: b.X + 1, Y: b.Y + 1 + i, W: b.W - 2, H: 1}
		cv.fill(row, ' ', st)
		cv.text(row.X+1, row.Y, row.W-2, e.Label, st)
	}
}

func (m *DemoModel) statusLine() string {
	var parts []string
	switch m.drag.State() {
	case usecase.DragArmed:
		parts = append(parts, "drag: armed")
	case usecase.DragHovering:
		if t := m.drag.Target(); t != nil {
			parts = append(parts, fmt.Sprintf("drop: %s %s", t.Region.Kind(), t.Orientation))
		} else {
			parts = append(parts, "drop: none")
		}
	}
	if floating := m.docking.Set().Len() - 1; floating > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", styles.IconWindow, floating))
	}

	style := m.theme.StatusBar
	switch {
	case m.err != nil:
		parts = append(parts, m.err.Error())
		style = m.theme.ErrorStyle
	case m.status != "":
		parts = append(parts, m.status)
	}

	line := runewidth.Truncate(" "+strings.Join(parts, "  "), max(m.width, 1), "…")
	return style.Render(line)
}
