package entity

import "fmt"

// Arrangement is one top-level tree of regions together with its screen
// rectangle and drop preview overlay.
type Arrangement struct {
	id      string
	root    Region
	screen  Rect
	overlay Overlay
	factory *Factory
}

// ID returns the arrangement identifier.
func (a *Arrangement) ID() string { return a.id }

// Root returns the root region.
func (a *Arrangement) Root() Region { return a.root }

// ScreenBounds returns the last known screen rectangle.
func (a *Arrangement) ScreenBounds() Rect { return a.screen }

// SetScreenBounds records the screen rectangle of the arrangement.
func (a *Arrangement) SetScreenBounds(r Rect) { a.screen = r }

// Overlay returns the drop preview overlay.
func (a *Arrangement) Overlay() *Overlay { return &a.overlay }

// Walk visits regions in pre-order, main before remainder, together with
// their parent split. Returning false stops the walk.
func (a *Arrangement) Walk(fn func(r Region, parent *Split) bool) {
	walkRegion(a.root, nil, fn)
}

func walkRegion(r Region, parent *Split, fn func(Region, *Split) bool) bool {
	if r == nil {
		return true
	}
	if !fn(r, parent) {
		return false
	}
	if s, ok := r.(*Split); ok {
		if !walkRegion(s.main, s, fn) {
			return false
		}
		return walkRegion(s.remainder, s, fn)
	}
	return true
}

// Contains reports whether r is part of this arrangement's tree.
func (a *Arrangement) Contains(r Region) bool {
	_, ok := a.locate(r)
	return ok
}

// ParentOf returns the split directly holding r, nil when r is the root.
func (a *Arrangement) ParentOf(r Region) (*Split, error) {
	parent, ok := a.locate(r)
	if !ok {
		return nil, errNotAttached(r)
	}
	return parent, nil
}

func (a *Arrangement) locate(r Region) (*Split, bool) {
	if r == nil {
		return nil, false
	}
	var (
		found  bool
		parent *Split
	)
	a.Walk(func(n Region, p *Split) bool {
		if n == r {
			found, parent = true, p
			return false
		}
		return true
	})
	return parent, found
}

// Split docks sibling on side o of target. The new split takes target's
// place; sibling becomes its main child and target its remainder.
func (a *Arrangement) Split(target, sibling Region, o Orientation, weight float64) (*Split, error) {
	if !o.IsDirectional() {
		return nil, errNotDirectional(o)
	}
	if sibling == nil || sibling == target {
		return nil, fmt.Errorf("%w: invalid sibling for split", ErrInvalidArgument)
	}
	if a.Contains(sibling) {
		return nil, fmt.Errorf("%w: region %s is already attached", ErrInvalidArgument, sibling.ID())
	}
	parent, err := a.ParentOf(target)
	if err != nil {
		return nil, err
	}

	split := a.factory.newSplit()
	_ = split.SetOrientation(o)
	split.SetWeight(weight)
	split.main = sibling
	split.remainder = target

	a.replace(parent, target, split)
	return split, nil
}

// Unsplit detaches target and collapses its parent split into target's
// sibling. Unsplitting the root leaves a fresh empty container.
func (a *Arrangement) Unsplit(target Region) error {
	parent, err := a.ParentOf(target)
	if err != nil {
		return err
	}
	if parent == nil {
		if c, ok := target.(*Container); ok && !c.HasKeys() {
			return nil
		}
		a.root = a.factory.NewContainer()
		return nil
	}
	grand, _ := a.locate(parent)
	a.replace(grand, parent, parent.Other(target))
	return nil
}

func (a *Arrangement) replace(parent *Split, old, repl Region) {
	if parent == nil {
		a.root = repl
		return
	}
	parent.replaceChild(old, repl)
}

// Containers returns every container in pre-order.
func (a *Arrangement) Containers() []*Container {
	var out []*Container
	a.Walk(func(r Region, _ *Split) bool {
		if c, ok := r.(*Container); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Bridges returns every bridge in pre-order.
func (a *Arrangement) Bridges() []*Bridge {
	var out []*Bridge
	a.Walk(func(r Region, _ *Split) bool {
		if b, ok := r.(*Bridge); ok {
			out = append(out, b)
		}
		return true
	})
	return out
}

// SplitCount returns the number of splits in the tree.
func (a *Arrangement) SplitCount() int {
	n := 0
	a.Walk(func(r Region, _ *Split) bool {
		if r.Kind() == RegionSplit {
			n++
		}
		return true
	})
	return n
}

// FirstContainer returns the first container found by descent, or nil.
func (a *Arrangement) FirstContainer() *Container {
	var found *Container
	a.Walk(func(r Region, _ *Split) bool {
		if c, ok := r.(*Container); ok {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindContainer returns the container holding key, or nil.
func (a *Arrangement) FindContainer(key Key) *Container {
	var found *Container
	a.Walk(func(r Region, _ *Split) bool {
		if c, ok := r.(*Container); ok && c.Contains(key) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindBridge returns the bridge keyed by key, or nil.
func (a *Arrangement) FindBridge(key Key) *Bridge {
	var found *Bridge
	a.Walk(func(r Region, _ *Split) bool {
		if b, ok := r.(*Bridge); ok && b.key != nil && b.key == key {
			found = b
			return false
		}
		return true
	})
	return found
}

// FindRegion returns the region with the given id, or nil.
func (a *Arrangement) FindRegion(id string) Region {
	var found Region
	a.Walk(func(r Region, _ *Split) bool {
		if r.ID() == id {
			found = r
			return false
		}
		return true
	})
	return found
}

// Keys returns container keys and bridge keys in pre-order.
func (a *Arrangement) Keys() []Key {
	var keys []Key
	a.Walk(func(r Region, _ *Split) bool {
		switch n := r.(type) {
		case *Container:
			keys = append(keys, n.Keys()...)
		case *Bridge:
			if n.key != nil {
				keys = append(keys, n.key)
			}
		}
		return true
	})
	return keys
}

// HasKeys reports whether any container or bridge still holds a key.
func (a *Arrangement) HasKeys() bool {
	has := false
	a.Walk(func(r Region, _ *Split) bool {
		switch n := r.(type) {
		case *Container:
			has = n.HasKeys()
		case *Bridge:
			has = n.HasKey()
		}
		return !has
	})
	return has
}

// UpdateVisibility recomputes the visible flag of every region and reports
// whether the arrangement shows any item or content. When nothing is
// visible the first container is kept visible so the tree is never blank.
func (a *Arrangement) UpdateVisibility() bool {
	visible := updateVisibility(a.root, nil)
	if !visible {
		if keep := a.FirstContainer(); keep != nil {
			updateVisibility(a.root, keep)
		}
	}
	return visible
}

func updateVisibility(r Region, keep *Container) bool {
	var visible bool
	switch n := r.(type) {
	case *Container:
		visible = n == keep || n.VisibleCount() > 0
	case *Bridge:
		visible = n.content != nil
	case *Split:
		mainVisible := updateVisibility(n.main, keep)
		remainderVisible := updateVisibility(n.remainder, keep)
		visible = mainVisible || remainderVisible
	}
	r.base().visible = visible
	return visible
}

func errNotAttached(r Region) error {
	if r == nil {
		return fmt.Errorf("%w: nil region", ErrInvalidArgument)
	}
	return fmt.Errorf("%w: %s %s is not part of this arrangement", ErrInvalidArgument, r.Kind(), r.ID())
}

func errNotDirectional(o Orientation) error {
	return fmt.Errorf("%w: orientation %s does not name a side", ErrInvalidArgument, o)
}
