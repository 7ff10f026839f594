package model

import (
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// documentsKey is the bridge key of the editor area.
const documentsKey = "documents"

type viewSpec struct {
	key    string
	title  string
	icon   string
	status string
	body   string
	pinned bool
}

var demoViews = []viewSpec{
	{
		key: "explorer", title: "Package Explorer", icon: "▤",
		body: "▾ dockyard\n  ▸ cmd\n  ▾ internal\n    ▸ application\n    ▸ domain\n    ▸ infrastructure\n  go.mod",
	},
	{
		key: "outline", title: "Outline", icon: "≡",
		body: "type Arrangement\n  Layout()\n  RegionAt()\n  Split()\n  Unsplit()",
	},
	{
		key: "tasks", title: "Tasks", icon: "☐", status: "2 open",
		body: "☐ review drop marker colors\n☐ persist window positions\n☑ tab strip truncation",
	},
	{
		key: "search", title: "Search", icon: "⌕",
		body: "3 matches for \"Refresh\" in 2 files",
	},
	{
		key: "console", title: "Console", icon: "›", status: "pinned", pinned: true,
		body: "$ dockyard demo\nready.",
	},
}

// Catalog owns the demo's views and the documents area. It resolves
// persisted keys back to live objects when a layout is loaded.
type Catalog struct {
	views map[string]*entity.BasicItem
	keys  []string
	docs  *Documents
}

var _ port.ItemResolver = (*Catalog)(nil)

// NewCatalog creates the five demo views and an editor with two documents.
func NewCatalog() *Catalog {
	c := &Catalog{
		views: make(map[string]*entity.BasicItem, len(demoViews)),
		docs:  &Documents{names: []string{"main.go", "README.md"}},
	}
	for _, v := range demoViews {
		c.views[v.key] = &entity.BasicItem{
			Title:  v.title,
			Icon:   v.icon,
			Status: v.status,
			Body:   v.body,
			Pinned: v.pinned,
		}
		c.keys = append(c.keys, v.key)
	}
	return c
}

// Keys returns the view keys in display order.
func (c *Catalog) Keys() []string { return c.keys }

// View returns the item for a view key, nil when unknown.
func (c *Catalog) View(key string) *entity.BasicItem { return c.views[key] }

// Documents returns the editor area content.
func (c *Catalog) Documents() *Documents { return c.docs }

// ResolveItem implements port.ItemResolver.
func (c *Catalog) ResolveItem(key entity.Key) entity.Item {
	name, ok := key.(string)
	if !ok {
		return nil
	}
	if v, ok := c.views[name]; ok {
		return v
	}
	return nil
}

// ResolveContent implements port.ItemResolver.
func (c *Catalog) ResolveContent(key entity.Key) entity.Content {
	if name, ok := key.(string); ok && name == documentsKey {
		return c.docs
	}
	return nil
}

// Documents is the bridged editor: a list of open file names with one selected.
type Documents struct {
	names    []string
	selected int
	opened   int
}

// Names returns the open documents.
func (d *Documents) Names() []string { return d.names }

// Selected returns the index of the selected document, -1 when empty.
func (d *Documents) Selected() int {
	if len(d.names) == 0 {
		return -1
	}
	return d.selected
}

// Open adds and selects a new untitled document.
func (d *Documents) Open() string {
	d.opened++
	name := fmt.Sprintf("untitled-%d.go", d.opened)
	d.names = append(d.names, name)
	d.selected = len(d.names) - 1
	return name
}

// Select makes document i current.
func (d *Documents) Select(i int) bool {
	if i < 0 || i >= len(d.names) {
		return false
	}
	d.selected = i
	return true
}

// CloseSelected closes the current document.
func (d *Documents) CloseSelected() (string, bool) {
	if len(d.names) == 0 {
		return "", false
	}
	name := d.names[d.selected]
	d.names = append(d.names[:d.selected], d.names[d.selected+1:]...)
	if d.selected >= len(d.names) && d.selected > 0 {
		d.selected--
	}
	return name, true
}

// defaultLayout is the demo's initial arrangement: views on the left and
// bottom, documents in the remaining area.
const defaultLayout = `<?xml version="1.0" encoding="UTF-8"?>
<set version=%q>
  <arrangement x="0" y="0" width="100" height="30">
    <split orientation="left" weight="0.25">
      <container>
        <entry key="explorer" selected="true"></entry>
        <entry key="outline"></entry>
      </container>
      <split orientation="bottom" weight="0.3">
        <container>
          <entry key="tasks" selected="true"></entry>
          <entry key="search"></entry>
          <entry key="console"></entry>
        </container>
        <bridge key="documents"></bridge>
      </split>
    </split>
  </arrangement>
</set>
`

// DefaultLayout renders the initial layout document for a codec version.
func DefaultLayout(version string) string {
	return fmt.Sprintf(defaultLayout, version)
}
