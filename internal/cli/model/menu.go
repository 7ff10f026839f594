package model

import (
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// contextMenu is the popup opened by a right click on a container.
type contextMenu struct {
	gesture *usecase.Gesture
	entries []usecase.MenuEntry
	index   int
	bounds  entity.Rect
}

func newContextMenu(g *usecase.Gesture, entries []usecase.MenuEntry, at entity.Point, area entity.Rect) *contextMenu {
	w := 0
	for _, e := range entries {
		w = max(w, runewidth.StringWidth(e.Label))
	}
	b := entity.Rect{X: at.X, Y: at.Y, W: w + 4, H: len(entries) + 2}
	if b.X+b.W > area.X+area.W {
		b.X = area.X + area.W - b.W
	}
	if b.Y+b.H > area.Y+area.H {
		b.Y = area.Y + area.H - b.H
	}
	b.X, b.Y = max(b.X, area.X), max(b.Y, area.Y)

	cm := &contextMenu{gesture: g, entries: entries, bounds: b}
	for i, e := range entries {
		if e.Enabled {
			cm.index = i
			break
		}
	}
	return cm
}

// move steps to the next enabled entry in dir, wrapping around.
func (cm *contextMenu) move(dir int) {
	n := len(cm.entries)
	for i := 1; i <= n; i++ {
		j := ((cm.index+dir*i)%n + n) % n
		if cm.entries[j].Enabled {
			cm.index = j
			return
		}
	}
}

func (cm *contextMenu) entryAt(p entity.Point) (int, bool) {
	if !cm.bounds.Contains(p) {
		return 0, false
	}
	row := p.Y - cm.bounds.Y - 1
	if row < 0 || row >= len(cm.entries) {
		return 0, false
	}
	return row, true
}

func (m *DemoModel) openMenu(p entity.Point) {
	m.cancelPointer()
	h := m.locate(p)
	if h.arr == nil || h.frame {
		return
	}
	g, err := m.docking.ResolveGesture(h.arr, h.local)
	if err != nil {
		return
	}
	if g.Single {
		_ = g.Container.Select(g.Keys[0])
	}
	m.focus = g.Container
	m.menu = newContextMenu(g, m.docking.ContextMenu(g), p, m.surface())
}

func (m *DemoModel) runMenu(i int) {
	cm := m.menu
	m.menu = nil
	if cm == nil || i < 0 || i >= len(cm.entries) {
		return
	}
	e := cm.entries[i]
	if !e.Enabled {
		return
	}
	if err := m.docking.RunMenuAction(m.ctx, cm.gesture, e.Action); err != nil {
		m.fail(e.Label, err)
		return
	}
	if e.Action == usecase.ActionDetach {
		arrs := m.docking.Set().Arrangements()
		m.focus = arrs[len(arrs)-1].FirstContainer()
	}
	m.setStatus(e.Label + ": done")
}
