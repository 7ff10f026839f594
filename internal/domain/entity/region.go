// Package entity contains the docking model: a forest of region trees, one
// per arrangement, with items and bridged content at the leaves.
// These types are pure Go with no infrastructure dependencies and are meant
// to be driven from a single UI goroutine.
package entity

import "math"

// RegionKind discriminates the three region variants.
type RegionKind int

const (
	RegionSplit RegionKind = iota
	RegionContainer
	RegionBridge
)

// String returns the element name used for the kind.
func (k RegionKind) String() string {
	switch k {
	case RegionSplit:
		return "split"
	case RegionContainer:
		return "container"
	case RegionBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// Region is a node of an arrangement's tree: a *Split, a *Container or a *Bridge.
type Region interface {
	ID() string
	Kind() RegionKind
	// Visible is the result of the last visibility pass.
	Visible() bool
	// Bounds is the result of the last layout pass.
	Bounds() Rect
	base() *regionBase
}

type regionBase struct {
	id      string
	visible bool
	bounds  Rect
}

func (b *regionBase) ID() string        { return b.id }
func (b *regionBase) Visible() bool     { return b.visible }
func (b *regionBase) Bounds() Rect      { return b.bounds }
func (b *regionBase) base() *regionBase { return b }

// DefaultWeight is the share of a fresh split given to its main child.
const DefaultWeight = 0.5

// Split divides its bounds between a main child and a remainder.
type Split struct {
	regionBase
	axis      Axis
	primary   Primary
	weight    float64
	main      Region
	remainder Region
	divider   Rect
}

// Kind implements Region.
func (s *Split) Kind() RegionKind { return RegionSplit }

// Axis returns the divider orientation.
func (s *Split) Axis() Axis { return s.axis }

// Primary returns the side main sits on.
func (s *Split) Primary() Primary { return s.primary }

// Orientation returns the side of the remainder that main was docked on.
func (s *Split) Orientation() Orientation {
	return OrientationOf(s.axis, s.primary)
}

// SetOrientation sets axis and primary from a directional orientation.
func (s *Split) SetOrientation(o Orientation) error {
	if !o.IsDirectional() {
		return errNotDirectional(o)
	}
	s.axis = o.Axis()
	s.primary = o.Primary()
	return nil
}

// Weight returns main's share of the available space.
func (s *Split) Weight() float64 { return s.weight }

// SetWeight stores w clamped into [0, 1].
func (s *Split) SetWeight(w float64) {
	s.weight = ClampWeight(w)
}

// Main returns the docked child.
func (s *Split) Main() Region { return s.main }

// Remainder returns the child that was split.
func (s *Split) Remainder() Region { return s.remainder }

// Children returns main then remainder.
func (s *Split) Children() []Region {
	return []Region{s.main, s.remainder}
}

// Divider returns the gap between the children after the last layout pass.
func (s *Split) Divider() Rect { return s.divider }

// Other returns the sibling of child, or nil when child is not a direct child.
func (s *Split) Other(child Region) Region {
	switch child {
	case s.main:
		return s.remainder
	case s.remainder:
		return s.main
	default:
		return nil
	}
}

// MoveDivider recomputes the weight so the divider sits at p.
func (s *Split) MoveDivider(p Point) {
	b := s.bounds
	var pos, size int
	if s.axis == AxisVertical {
		pos, size = p.X-b.X, b.W
	} else {
		pos, size = p.Y-b.Y, b.H
	}
	if size <= 0 {
		return
	}
	w := float64(pos) / float64(size)
	if s.primary == PrimaryEnd {
		w = 1 - w
	}
	s.SetWeight(w)
}

func (s *Split) replaceChild(old, repl Region) bool {
	switch old {
	case s.main:
		s.main = repl
	case s.remainder:
		s.remainder = repl
	default:
		return false
	}
	return true
}

// ClampWeight clamps w into [0, 1]. NaN becomes DefaultWeight.
func ClampWeight(w float64) float64 {
	if math.IsNaN(w) {
		return DefaultWeight
	}
	return math.Max(0, math.Min(1, w))
}
