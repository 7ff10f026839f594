package entity

import "fmt"

// Slot is one key of a container. A slot with a nil item keeps its key
// reserved but is not visible. Slot implements Host for its item.
type Slot struct {
	key    Key
	item   Item
	title  string
	icon   string
	status string
	tab    Rect
}

// Key returns the slot key.
func (s *Slot) Key() Key { return s.key }

// Item returns the attached item, nil for a reserved slot.
func (s *Slot) Item() Item { return s.item }

// Visible reports whether the slot holds an item.
func (s *Slot) Visible() bool { return s.item != nil }

// Title returns the title published by the item.
func (s *Slot) Title() string { return s.title }

// Icon returns the icon published by the item.
func (s *Slot) Icon() string { return s.icon }

// Status returns the status published by the item.
func (s *Slot) Status() string { return s.status }

// TabBounds returns the slot's tab after the last layout pass.
func (s *Slot) TabBounds() Rect { return s.tab }

func (s *Slot) SetTitle(title string)   { s.title = title }
func (s *Slot) SetIcon(icon string)     { s.icon = icon }
func (s *Slot) SetStatus(status string) { s.status = status }

// Container holds an ordered list of slots with at most one selected.
type Container struct {
	regionBase
	slots    []*Slot
	selected *Slot
}

// Kind implements Region.
func (c *Container) Kind() RegionKind { return RegionContainer }

// Slots returns the slots in order.
func (c *Container) Slots() []*Slot {
	out := make([]*Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// Slot returns the slot for key, or nil.
func (c *Container) Slot(key Key) *Slot {
	if i := c.indexOf(key); i >= 0 {
		return c.slots[i]
	}
	return nil
}

// Keys returns every key, visible or not, in slot order.
func (c *Container) Keys() []Key {
	keys := make([]Key, 0, len(c.slots))
	for _, s := range c.slots {
		keys = append(keys, s.key)
	}
	return keys
}

// VisibleKeys returns the keys whose slot holds an item.
func (c *Container) VisibleKeys() []Key {
	var keys []Key
	for _, s := range c.slots {
		if s.Visible() {
			keys = append(keys, s.key)
		}
	}
	return keys
}

// VisibleCount returns the number of slots holding an item.
func (c *Container) VisibleCount() int {
	n := 0
	for _, s := range c.slots {
		if s.Visible() {
			n++
		}
	}
	return n
}

// HasKeys reports whether the container has any slot.
func (c *Container) HasKeys() bool { return len(c.slots) > 0 }

// Contains reports whether key has a slot here.
func (c *Container) Contains(key Key) bool { return c.indexOf(key) >= 0 }

// Item returns the item for key. Unknown keys are an error; reserved slots yield nil.
func (c *Container) Item(key Key) (Item, error) {
	s := c.Slot(key)
	if s == nil {
		return nil, fmt.Errorf("%w: key %v not in container %s", ErrInvalidArgument, key, c.id)
	}
	return s.item, nil
}

// Put stores item under key, appending a slot for a new key.
// It returns the item previously stored under key.
// The first visible item of a container without selection becomes selected.
func (c *Container) Put(key Key, item Item) (Item, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	s := c.Slot(key)
	if s == nil {
		s = &Slot{key: key}
		c.slots = append(c.slots, s)
	}
	prev := s.item
	s.item = item
	if item == nil {
		s.title, s.icon, s.status = "", "", ""
	}
	c.fixSelection()
	return prev, nil
}

// Remove drops the slot of key and returns its item.
func (c *Container) Remove(key Key) (Item, error) {
	i := c.indexOf(key)
	if i < 0 {
		return nil, fmt.Errorf("%w: key %v not in container %s", ErrInvalidArgument, key, c.id)
	}
	s := c.slots[i]
	c.slots = append(c.slots[:i], c.slots[i+1:]...)
	if c.selected == s {
		c.selected = c.neighbour(i, true)
	}
	return s.item, nil
}

// Clear keeps the slot of key reserved and returns the item it held.
func (c *Container) Clear(key Key) (Item, error) {
	return c.Put(key, nil)
}

// Select makes the visible slot of key the selected one.
func (c *Container) Select(key Key) error {
	s := c.Slot(key)
	if s == nil || !s.Visible() {
		return fmt.Errorf("%w: key %v has no visible item in container %s", ErrInvalidArgument, key, c.id)
	}
	c.selected = s
	return nil
}

// Selected returns the selected slot, or nil.
func (c *Container) Selected() *Slot { return c.selected }

// SelectedKey returns the selected key, or nil.
func (c *Container) SelectedKey() Key {
	if c.selected == nil {
		return nil
	}
	return c.selected.key
}

// SelectedItem returns the selected item, or nil.
func (c *Container) SelectedItem() Item {
	if c.selected == nil {
		return nil
	}
	return c.selected.item
}

// KeyAt returns the key whose tab contains p.
func (c *Container) KeyAt(p Point) (Key, bool) {
	for _, s := range c.slots {
		if s.Visible() && s.tab.Contains(p) {
			return s.key, true
		}
	}
	return nil, false
}

// ContentBounds returns the area below the tab strip.
func (c *Container) ContentBounds(tabHeight int) Rect {
	b := c.bounds
	h := max(b.H-tabHeight, 0)
	return Rect{X: b.X, Y: b.Y + tabHeight, W: b.W, H: h}
}

func (c *Container) indexOf(key Key) int {
	if key == nil {
		return -1
	}
	for i, s := range c.slots {
		if s.key == key {
			return i
		}
	}
	return -1
}

// fixSelection keeps the selection on a visible slot.
func (c *Container) fixSelection() {
	if c.selected != nil && c.selected.Visible() {
		return
	}
	if c.selected != nil {
		i := c.indexOf(c.selected.key)
		c.selected = c.neighbour(i, false)
		return
	}
	c.selected = c.neighbour(0, true)
}

// neighbour returns the first visible slot at or after i (inclusive when
// at is true, exclusive otherwise), falling back to the closest one before i.
func (c *Container) neighbour(i int, at bool) *Slot {
	start := i
	if !at {
		start = i + 1
	}
	for j := start; j < len(c.slots); j++ {
		if c.slots[j].Visible() {
			return c.slots[j]
		}
	}
	for j := min(i, len(c.slots)) - 1; j >= 0; j-- {
		if c.slots[j].Visible() {
			return c.slots[j]
		}
	}
	return nil
}
