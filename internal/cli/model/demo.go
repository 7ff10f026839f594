// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	defaultLayoutName = "demo"
	minWindowWidth    = 12
	minWindowHeight   = 4
)

// DemoModel is the interactive docking surface. The main arrangement
// fills the terminal above the footer; floating arrangements are drawn as
// framed windows on top of it.
type DemoModel struct {
	// UI components
	help help.Model
	keys demoKeyMap

	// State
	width   int
	height  int
	status  string
	err     error
	focus   *entity.Container
	menu    *contextMenu
	pointer *pointerGrab

	// Config
	layoutName   string
	autoload     string
	detachWidth  int
	detachHeight int

	// Dependencies
	ctx     context.Context
	catalog *Catalog
	windows *TerminalWindows
	docking *usecase.ManageDockingUseCase
	drag    *usecase.DragSession
	codec   port.LayoutCodec
	save    *usecase.SaveLayoutUseCase
	restore *usecase.RestoreLayoutUseCase
	list    *usecase.ListLayoutsUseCase
	theme   *styles.Theme
	palette []lipgloss.Style
}

// DemoConfig holds configuration for the demo model.
type DemoConfig struct {
	Options usecase.DockingOptions
	Codec   port.LayoutCodec
	// Layouts stores saved layouts. Save and load are disabled when nil.
	Layouts repository.LayoutRepository
	// LayoutName is the name the save and load keys use.
	LayoutName string
	// Autoload is loaded on start when set.
	Autoload     string
	DetachWidth  int
	DetachHeight int
}

// ConfigChangedMsg carries reloaded settings into a running demo.
type ConfigChangedMsg struct {
	Options usecase.DockingOptions
	Theme   *styles.Theme
}

type layoutSavedMsg struct {
	layout *entity.SavedLayout
	err    error
}

type layoutFetchedMsg struct {
	layout *entity.SavedLayout
	err    error
}

type grabMode int

const (
	grabDivider grabMode = iota
	grabWindow
)

// pointerGrab is a left button press that is neither a tab drag nor a
// click: resizing a split or moving a floating window.
type pointerGrab struct {
	mode   grabMode
	arr    *entity.Arrangement
	split  *entity.Split
	handle port.WindowHandle
	offset entity.Point
}

// hit is what lies under a screen point.
type hit struct {
	arr    *entity.Arrangement
	local  entity.Point
	handle port.WindowHandle
	// frame is set when the point is on a floating window's border.
	frame bool
	close bool
}

// demoKeyMap defines keybindings for the demo.
type demoKeyMap struct {
	Views    key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Focus    key.Binding
	CloseTab key.Binding
	Detach   key.Binding
	OpenDoc  key.Binding
	CloseDoc key.Binding
	Save     key.Binding
	Load     key.Binding
	Reset    key.Binding
	Up       key.Binding
	Down     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k demoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Views, k.CloseTab, k.Detach, k.OpenDoc, k.Save, k.Load, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k demoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Views, k.NextTab, k.PrevTab, k.Focus},
		{k.CloseTab, k.Detach, k.OpenDoc, k.CloseDoc},
		{k.Save, k.Load, k.Reset},
		{k.Cancel, k.Help, k.Quit},
	}
}

func defaultDemoKeyMap() demoKeyMap {
	return demoKeyMap{
		Views: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "toggle view"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]", "right"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("[", "left"),
			key.WithHelp("[", "prev tab"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next container"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close tab"),
		),
		Detach: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "detach"),
		),
		OpenDoc: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open document"),
		),
		CloseDoc: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "close document"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Load: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewDemoModel creates the demo with its default layout.
func NewDemoModel(ctx context.Context, theme *styles.Theme, cfg DemoConfig) (DemoModel, error) {
	ctx = logging.WithComponent(ctx, "demo")
	if theme == nil {
		theme = styles.NewTheme(nil)
	}

	catalog := NewCatalog()
	windows := NewTerminalWindows()
	docking := usecase.NewManageDockingUseCase(nil, windows, cfg.Options)

	m := DemoModel{
		help:         help.New(),
		keys:         defaultDemoKeyMap(),
		width:        100,
		height:       30,
		layoutName:   cfg.LayoutName,
		autoload:     cfg.Autoload,
		detachWidth:  cfg.DetachWidth,
		detachHeight: cfg.DetachHeight,
		ctx:          ctx,
		catalog:      catalog,
		windows:      windows,
		docking:      docking,
		drag:         usecase.NewDragSession(docking),
		codec:        cfg.Codec,
		save:         usecase.NewSaveLayoutUseCase(cfg.Layouts, cfg.Codec, docking),
		restore:      usecase.NewRestoreLayoutUseCase(cfg.Layouts, cfg.Codec, docking, catalog),
	}
	if cfg.Layouts != nil {
		m.list = usecase.NewListLayoutsUseCase(cfg.Layouts)
	}
	if m.layoutName == "" {
		m.layoutName = defaultLayoutName
	}
	if m.detachWidth <= 0 || m.detachHeight <= 0 {
		m.detachWidth, m.detachHeight = 48, 14
	}
	m.applyTheme(theme)

	if err := m.reset(); err != nil {
		return m, fmt.Errorf("build default layout: %w", err)
	}
	m.relayout()
	return m, nil
}

// Init implements tea.Model.
func (m DemoModel) Init() tea.Cmd {
	if m.autoload != "" && m.list != nil {
		return m.fetchLayout(m.autoload)
	}
	return nil
}

// Update implements tea.Model.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m.handleMouseMsg(msg)

	case layoutSavedMsg:
		if msg.err != nil {
			m.fail("save layout", msg.err)
		} else {
			m.setStatus(fmt.Sprintf("saved layout %q (%d keys)", msg.layout.Name, msg.layout.Keys))
		}

	case layoutFetchedMsg:
		if msg.err != nil {
			m.fail("load layout", msg.err)
		} else {
			m.importLayout(msg.layout)
		}

	case ConfigChangedMsg:
		m.docking.SetOptions(msg.Options)
		if msg.Theme != nil {
			m.applyTheme(msg.Theme)
		}
		m.setStatus("configuration reloaded")
	}

	m.relayout()
	return m, cmd
}

func (m *DemoModel) applyTheme(theme *styles.Theme) {
	m.theme = theme
	m.palette = palette(theme)
	m.help.Styles.ShortKey = theme.HelpKey
	m.help.Styles.FullKey = theme.HelpKey
	m.help.Styles.ShortDesc = theme.HelpDesc
	m.help.Styles.FullDesc = theme.HelpDesc
}

func (m *DemoModel) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *DemoModel) fail(action string, err error) {
	logging.FromContext(m.ctx).Warn().Err(err).Str("action", action).Msg("demo action failed")
	m.status = ""
	m.err = fmt.Errorf("%s: %w", action, err)
}

func (m *DemoModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.menu != nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.menu.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.menu.move(1)
		case key.Matches(msg, m.keys.Confirm):
			m.runMenu(m.menu.index)
		case key.Matches(msg, m.keys.Cancel):
			m.menu = nil
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.cancelPointer()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Views):
		m.toggleView(msg.String())
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus()
	case key.Matches(msg, m.keys.CloseTab):
		m.closeFocused()
	case key.Matches(msg, m.keys.Detach):
		m.detachFocused()
	case key.Matches(msg, m.keys.OpenDoc):
		m.openDocument()
	case key.Matches(msg, m.keys.CloseDoc):
		m.closeDocument()
	case key.Matches(msg, m.keys.Save):
		return m.saveLayout()
	case key.Matches(msg, m.keys.Load):
		if m.list == nil {
			m.setStatus("no layout storage configured")
			return nil
		}
		return m.fetchLayout(m.layoutName)
	case key.Matches(msg, m.keys.Reset):
		if err := m.reset(); err != nil {
			m.fail("reset", err)
		} else {
			m.setStatus("layout reset")
		}
	}
	return nil
}

// reset swaps in the built-in layout.
func (m *DemoModel) reset() error {
	m.cancelPointer()
	m.focus = nil
	_, err := m.restore.Import(m.ctx, strings.NewReader(DefaultLayout(m.codec.Version())))
	return err
}

func (m *DemoModel) cancelPointer() {
	m.drag.Cancel(m.ctx)
	m.pointer = nil
	m.menu = nil
}

// focused returns the container keyboard actions apply to, falling back
// to the first visible one.
func (m *DemoModel) focused() *entity.Container {
	if m.focus != nil && m.focus.Visible() && m.docking.Set().ArrangementOf(m.focus) != nil {
		return m.focus
	}
	m.focus = nil
	if cs := m.visibleContainers(); len(cs) > 0 {
		m.focus = cs[0]
	}
	return m.focus
}

func (m *DemoModel) visibleContainers() []*entity.Container {
	var out []*entity.Container
	for _, arr := range m.docking.Set().Arrangements() {
		for _, c := range arr.Containers() {
			if c.Visible() && c.VisibleCount() > 0 {
				out = append(out, c)
			}
		}
	}
	return out
}

func (m *DemoModel) toggleView(s string) {
	if len(s) != 1 {
		return
	}
	keys := m.catalog.Keys()
	idx := int(s[0] - '1')
	if idx < 0 || idx >= len(keys) {
		return
	}
	k := keys[idx]
	view := m.catalog.View(k)

	if item, _ := m.docking.Item(k); item != nil {
		closed, err := m.docking.CloseItem(m.ctx, k)
		switch {
		case err != nil:
			m.fail("close "+view.Title, err)
		case !closed:
			m.setStatus(view.Title + " refused to close")
		default:
			m.setStatus("closed " + view.Title)
		}
		return
	}

	if err := m.docking.PutItem(m.ctx, k, view); err != nil {
		m.fail("open "+view.Title, err)
		return
	}
	if _, c := m.docking.Set().FindContainer(k); c != nil {
		m.focus = c
	}
	m.setStatus("opened " + view.Title)
}

func (m *DemoModel) cycleTab(dir int) {
	c := m.focused()
	if c == nil {
		return
	}
	keys := c.VisibleKeys()
	if len(keys) < 2 {
		return
	}
	cur := 0
	for i, k := range keys {
		if k == c.SelectedKey() {
			cur = i
			break
		}
	}
	next := (cur + dir + len(keys)) % len(keys)
	_ = c.Select(keys[next])
}

func (m *DemoModel) cycleFocus() {
	cs := m.visibleContainers()
	if len(cs) == 0 {
		return
	}
	cur := m.focused()
	for i, c := range cs {
		if c == cur {
			m.focus = cs[(i+1)%len(cs)]
			return
		}
	}
	m.focus = cs[0]
}

func (m *DemoModel) closeFocused() {
	c := m.focused()
	if c == nil || c.SelectedKey() == nil {
		m.setStatus("nothing to close")
		return
	}
	k := c.SelectedKey()
	title := c.Selected().Title()
	closed, err := m.docking.CloseItem(m.ctx, k)
	switch {
	case err != nil:
		m.fail("close "+title, err)
	case !closed:
		m.setStatus(title + " refused to close")
	default:
		m.setStatus("closed " + title)
	}
}

func (m *DemoModel) detachFocused() {
	c := m.focused()
	if c == nil || c.SelectedKey() == nil {
		m.setStatus("nothing to detach")
		return
	}
	area := m.surface()
	bounds := m.clampWindow(entity.Rect{
		X: (area.W - m.detachWidth) / 2,
		Y: (area.H - m.detachHeight) / 2,
		W: m.detachWidth,
		H: m.detachHeight,
	})
	title := c.Selected().Title()
	arr, err := m.docking.Detach(m.ctx, []entity.Key{c.SelectedKey()}, bounds)
	if err != nil {
		m.fail("detach "+title, err)
		return
	}
	m.focus = arr.FirstContainer()
	m.setStatus("detached " + title)
}

func (m *DemoModel) openDocument() {
	docs := m.catalog.Documents()
	name := docs.Open()
	if _, ok := m.docking.Content(documentsKey); !ok {
		if err := m.docking.PutContent(m.ctx, documentsKey, docs); err != nil {
			m.fail("open document", err)
			return
		}
	}
	m.setStatus("opened " + name)
}

func (m *DemoModel) closeDocument() {
	docs := m.catalog.Documents()
	if _, ok := m.docking.Content(documentsKey); !ok {
		m.setStatus("no document area")
		return
	}
	name, ok := docs.CloseSelected()
	if !ok {
		m.setStatus("no open document")
		return
	}
	if len(docs.Names()) == 0 {
		if _, err := m.docking.RemoveContent(m.ctx, documentsKey); err != nil {
			m.fail("close document area", err)
			return
		}
	}
	m.setStatus("closed " + name)
}

func (m *DemoModel) saveLayout() tea.Cmd {
	if m.list == nil {
		m.setStatus("no layout storage configured")
		return nil
	}
	var buf bytes.Buffer
	if err := m.save.Export(m.ctx, &buf); err != nil {
		m.fail("save layout", err)
		return nil
	}

	ctx, name, doc, save := m.ctx, m.layoutName, buf.Bytes(), m.save
	return func() tea.Msg {
		layout, err := save.SaveDocument(ctx, name, doc)
		return layoutSavedMsg{layout: layout, err: err}
	}
}

func (m DemoModel) fetchLayout(name string) tea.Cmd {
	ctx, list := m.ctx, m.list
	return func() tea.Msg {
		layout, err := list.Get(ctx, name)
		return layoutFetchedMsg{layout: layout, err: err}
	}
}

func (m *DemoModel) importLayout(layout *entity.SavedLayout) {
	m.cancelPointer()
	out, err := m.restore.Import(m.ctx, bytes.NewReader(layout.Document))
	if err != nil {
		m.fail("load layout", err)
		return
	}
	m.focus = nil
	m.setStatus(fmt.Sprintf("loaded layout %q (%d windows, %d keys)", layout.Name, out.Arrangements, out.Keys))
}

// surface is the screen area of the main arrangement.
func (m *DemoModel) surface() entity.Rect {
	h := m.height - 1 - lipgloss.Height(m.help.View(m.keys))
	return entity.Rect{W: max(m.width, 1), H: max(h, 1)}
}

// clampWindow keeps a floating window and its frame on screen.
func (m *DemoModel) clampWindow(b entity.Rect) entity.Rect {
	area := m.surface()
	b.W = min(max(b.W, minWindowWidth), max(area.W-2, minWindowWidth))
	b.H = min(max(b.H, minWindowHeight), max(area.H-2, minWindowHeight))
	b.X = min(max(b.X, 1), max(area.W-b.W-1, 1))
	b.Y = min(max(b.Y, 1), max(area.H-b.H-1, 1))
	return b
}

// relayout sizes the main arrangement to the terminal and every floating
// arrangement to its window.
func (m *DemoModel) relayout() {
	area := m.surface()
	set := m.docking.Set()
	main := set.Main()
	main.SetScreenBounds(area)
	m.docking.LayoutArrangement(main, entity.Rect{W: area.W, H: area.H})

	for _, arr := range set.Arrangements()[1:] {
		b := m.clampWindow(arr.ScreenBounds())
		arr.SetScreenBounds(b)
		m.docking.LayoutArrangement(arr, entity.Rect{W: b.W, H: b.H})
	}
}

func outset(r entity.Rect) entity.Rect {
	return entity.Rect{X: r.X - 1, Y: r.Y - 1, W: r.W + 2, H: r.H + 2}
}

// locate finds what lies under p, floating windows first.
func (m *DemoModel) locate(p entity.Point) hit {
	arrs := m.docking.Set().Arrangements()
	for i := len(arrs) - 1; i >= 1; i-- {
		arr := arrs[i]
		handle, ok := m.docking.WindowOf(arr)
		if !ok {
			continue
		}
		b := arr.ScreenBounds()
		frame := outset(b)
		if !frame.Contains(p) {
			continue
		}
		if b.Contains(p) {
			return hit{arr: arr, local: entity.Point{X: p.X - b.X, Y: p.Y - b.Y}, handle: handle}
		}
		right := frame.X + frame.W - 1
		return hit{
			arr:    arr,
			handle: handle,
			frame:  true,
			close:  p.Y == frame.Y && p.X >= right-3 && p.X < right,
		}
	}
	if !m.surface().Contains(p) {
		return hit{}
	}
	return hit{arr: arrs[0], local: p}
}

func (m *DemoModel) handleMouseMsg(msg tea.MouseMsg) {
	p := entity.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.press(p)
		case tea.MouseButtonRight:
			m.openMenu(p)
		}
	case tea.MouseActionMotion:
		m.motion(p)
	case tea.MouseActionRelease:
		m.release()
	}
}

func (m *DemoModel) press(p entity.Point) {
	if m.menu != nil {
		if i, ok := m.menu.entryAt(p); ok {
			m.runMenu(i)
		}
		m.menu = nil
		return
	}

	h := m.locate(p)
	switch {
	case h.arr == nil:
		return
	case h.close:
		m.closeWindow(h.handle)
		return
	case h.frame:
		b := h.arr.ScreenBounds()
		m.pointer = &pointerGrab{mode: grabWindow, arr: h.arr, handle: h.handle, offset: entity.Point{X: p.X - b.X, Y: p.Y - b.Y}}
		return
	}

	if s := h.arr.SplitAt(h.local); s != nil {
		m.pointer = &pointerGrab{mode: grabDivider, arr: h.arr, split: s}
		return
	}
	if b, ok := h.arr.RegionAt(h.local).(*entity.Bridge); ok {
		m.clickDocuments(b, h.local)
		return
	}

	g, err := m.drag.Arm(m.ctx, h.arr, h.local)
	if err != nil {
		if !errors.Is(err, usecase.ErrNoDragSource) {
			m.fail("drag", err)
		}
		return
	}
	m.focus = g.Container
}

func (m *DemoModel) clickDocuments(b *entity.Bridge, p entity.Point) {
	docs, ok := b.Content().(*Documents)
	if !ok {
		return
	}
	bounds := b.Bounds()
	tabW := max(m.docking.Options().Layout.TabWidth, 1)
	if p.Y != bounds.Y {
		return
	}
	docs.Select((p.X - bounds.X) / tabW)
}

func (m *DemoModel) motion(p entity.Point) {
	if g := m.pointer; g != nil {
		b := g.arr.ScreenBounds()
		switch g.mode {
		case grabDivider:
			g.split.MoveDivider(entity.Point{X: p.X - b.X, Y: p.Y - b.Y})
		case grabWindow:
			moved := m.clampWindow(entity.Rect{X: p.X - g.offset.X, Y: p.Y - g.offset.Y, W: b.W, H: b.H})
			if err := m.docking.WindowMoved(g.handle, moved); err != nil {
				m.fail("move window", err)
				m.pointer = nil
			}
		}
		return
	}

	if m.drag.State() == usecase.DragIdle {
		return
	}
	h := m.locate(p)
	if h.frame {
		h.arr = nil
	}
	if _, err := m.drag.Hover(m.ctx, h.arr, h.local); err != nil {
		m.fail("drag", err)
	}
}

func (m *DemoModel) release() {
	if m.pointer != nil {
		m.pointer = nil
		return
	}
	switch m.drag.State() {
	case usecase.DragArmed:
		m.drag.Cancel(m.ctx)
	case usecase.DragHovering:
		out, err := m.drag.Drop(m.ctx)
		if err != nil {
			m.fail("drop", err)
			return
		}
		if out.Container != nil {
			m.focus = out.Container
		}
		m.setStatus("drop: " + out.Outcome.String())
	}
}

func (m *DemoModel) closeWindow(handle port.WindowHandle) {
	closed, err := m.docking.CloseWindow(m.ctx, handle)
	switch {
	case err != nil:
		m.fail("close window", err)
	case !closed:
		m.setStatus("window refused to close")
	default:
		m.focus = nil
		m.setStatus("window closed")
	}
}
