package entity

// LayoutOptions controls how bounds are distributed over a tree.
type LayoutOptions struct {
	// Spacing is the width of the gap between split children.
	Spacing int
	// TabWidth and TabHeight size each tab of a container's tab strip.
	TabWidth  int
	TabHeight int
}

// DefaultLayoutOptions returns options suited to a terminal grid.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{Spacing: 1, TabWidth: 18, TabHeight: 1}
}

// Layout assigns bounds to every region of the tree, starting with the
// root at bounds. Run it after UpdateVisibility.
func (a *Arrangement) Layout(bounds Rect, opts LayoutOptions) {
	if a.root != nil {
		layoutRegion(a.root, bounds, opts)
	}
}

func layoutRegion(r Region, b Rect, opts LayoutOptions) {
	r.base().bounds = b
	switch n := r.(type) {
	case *Split:
		layoutSplit(n, b, opts)
	case *Container:
		layoutTabs(n, b, opts)
	}
}

func layoutSplit(s *Split, b Rect, opts LayoutOptions) {
	if !s.main.Visible() || !s.remainder.Visible() {
		s.divider = Rect{}
		layoutRegion(s.main, b, opts)
		layoutRegion(s.remainder, b, opts)
		return
	}

	total, origin := b.H, b.Y
	if s.axis == AxisVertical {
		total, origin = b.W, b.X
	}
	size := max(total-opts.Spacing, 0)
	mainSize := int(float64(size) * s.weight)
	restSize := size - mainSize

	var mainStart, restStart, dividerStart int
	if s.primary == PrimaryStart {
		mainStart = origin
		dividerStart = origin + mainSize
		restStart = dividerStart + opts.Spacing
	} else {
		restStart = origin
		dividerStart = origin + restSize
		mainStart = dividerStart + opts.Spacing
	}

	if s.axis == AxisVertical {
		s.divider = Rect{X: dividerStart, Y: b.Y, W: opts.Spacing, H: b.H}
		layoutRegion(s.main, Rect{X: mainStart, Y: b.Y, W: mainSize, H: b.H}, opts)
		layoutRegion(s.remainder, Rect{X: restStart, Y: b.Y, W: restSize, H: b.H}, opts)
		return
	}
	s.divider = Rect{X: b.X, Y: dividerStart, W: b.W, H: opts.Spacing}
	layoutRegion(s.main, Rect{X: b.X, Y: mainStart, W: b.W, H: mainSize}, opts)
	layoutRegion(s.remainder, Rect{X: b.X, Y: restStart, W: b.W, H: restSize}, opts)
}

func layoutTabs(c *Container, b Rect, opts LayoutOptions) {
	i := 0
	right := b.X + b.W
	for _, s := range c.slots {
		if !s.Visible() {
			s.tab = Rect{}
			continue
		}
		x := b.X + i*opts.TabWidth
		i++
		if x >= right {
			s.tab = Rect{}
			continue
		}
		s.tab = Rect{X: x, Y: b.Y, W: min(opts.TabWidth, right-x), H: min(opts.TabHeight, b.H)}
	}
}

// RegionAt returns the visible container or bridge whose bounds contain p.
// Splits are never returned; a point on a divider hits nothing.
func (a *Arrangement) RegionAt(p Point) Region {
	return regionAt(a.root, p)
}

func regionAt(r Region, p Point) Region {
	if r == nil || !r.Visible() || !r.Bounds().Contains(p) {
		return nil
	}
	s, ok := r.(*Split)
	if !ok {
		return r
	}
	for _, child := range s.Children() {
		if hit := regionAt(child, p); hit != nil {
			return hit
		}
	}
	return nil
}

// SplitAt returns the split whose divider contains p.
func (a *Arrangement) SplitAt(p Point) *Split {
	var found *Split
	a.Walk(func(r Region, _ *Split) bool {
		if s, ok := r.(*Split); ok && s.Visible() && s.divider.Contains(p) {
			found = s
			return false
		}
		return true
	})
	return found
}
