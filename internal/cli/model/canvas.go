package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

type styleID uint8

const (
	stNone styleID = iota
	stText
	stMuted
	stFrame
	stFocus
	stDivider
	stActiveTab
	stTab
	stMarker
	stMenu
	stMenuSelected
	stMenuDisabled
	stWindowTitle
	stWindowControls
	styleCount
)

// palette maps style IDs onto the theme.
func palette(t *styles.Theme) []lipgloss.Style {
	p := make([]lipgloss.Style, styleCount)
	p[stNone] = lipgloss.NewStyle()
	p[stText] = t.Normal
	p[stMuted] = t.Subtle
	p[stFrame] = t.Frame
	p[stFocus] = t.FocusedFrame
	p[stDivider] = t.Divider
	p[stActiveTab] = t.ActiveTab
	p[stTab] = t.InactiveTab
	p[stMarker] = t.MarkerStyle
	p[stMenu] = t.MenuItem
	p[stMenuSelected] = t.MenuSelected
	p[stMenuDisabled] = t.MenuDisabled
	p[stWindowTitle] = t.WindowTitle
	p[stWindowControls] = t.WindowControls
	return p
}

// cell holds one terminal column. A zero rune marks the right half of a
// wide glyph.
type cell struct {
	r  rune
	st styleID
}

type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	w, h = max(w, 0), max(h, 0)
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, st styleID) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, st: st}
}

func (c *canvas) at(x, y int) cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return cell{}
	}
	return c.cells[y*c.w+x]
}

// text writes s from (x, y), truncated to maxW columns. It returns the
// number of columns written.
func (c *canvas) text(x, y, maxW int, s string, st styleID) int {
	if maxW <= 0 {
		return 0
	}
	s = runewidth.Truncate(s, maxW, "…")
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		c.set(x+col, y, r, st)
		if rw == 2 {
			c.set(x+col+1, y, 0, st)
		}
		col += rw
	}
	return col
}

func (c *canvas) fill(r entity.Rect, ch rune, st styleID) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ch, st)
		}
	}
}

type borderSet struct {
	h, v, tl, tr, bl, br rune
}

var (
	borderSingle  = borderSet{'─', '│', '┌', '┐', '└', '┘'}
	borderRounded = borderSet{'─', '│', '╭', '╮', '╰', '╯'}
	borderDouble  = borderSet{'═', '║', '╔', '╗', '╚', '╝'}
)

// box draws the outline of r. Degenerate rectangles draw what fits.
func (c *canvas) box(r entity.Rect, b borderSet, st styleID) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x2, y2 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x2; x++ {
		c.set(x, r.Y, b.h, st)
		c.set(x, y2, b.h, st)
	}
	for y := r.Y + 1; y < y2; y++ {
		c.set(r.X, y, b.v, st)
		c.set(x2, y, b.v, st)
	}
	c.set(r.X, r.Y, b.tl, st)
	c.set(x2, r.Y, b.tr, st)
	c.set(r.X, y2, b.bl, st)
	c.set(x2, y2, b.br, st)
}

// render joins the rows, styling each run of equal style once.
func (c *canvas) render(p []lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		cur := stNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == stNone || p == nil {
				out.WriteString(run.String())
			} else {
				out.WriteString(p[cur].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.r == 0 {
				continue
			}
			if cl.st != cur {
				flush()
				cur = cl.st
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}

// plain returns the canvas text without styles.
func (c *canvas) plain() string {
	return c.render(nil)
}
