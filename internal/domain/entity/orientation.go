package entity

import (
	"fmt"
	"strings"
)

// Orientation names the side of a region a new sibling is docked on.
// OrientationCenter means "into" the region and never describes a split.
type Orientation int

const (
	OrientationCenter Orientation = iota
	OrientationTop
	OrientationBottom
	OrientationLeft
	OrientationRight
)

// String returns the persisted name of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationTop:
		return "top"
	case OrientationBottom:
		return "bottom"
	case OrientationLeft:
		return "left"
	case OrientationRight:
		return "right"
	case OrientationCenter:
		return "center"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// ParseOrientation parses a persisted orientation name.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return OrientationTop, nil
	case "bottom":
		return OrientationBottom, nil
	case "left":
		return OrientationLeft, nil
	case "right":
		return OrientationRight, nil
	case "center":
		return OrientationCenter, nil
	}
	return OrientationCenter, fmt.Errorf("%w: unknown orientation %q", ErrInvalidArgument, s)
}

// IsDirectional reports whether the orientation names a side.
func (o Orientation) IsDirectional() bool {
	switch o {
	case OrientationTop, OrientationBottom, OrientationLeft, OrientationRight:
		return true
	default:
		return false
	}
}

// Axis returns the divider orientation produced by docking on this side.
// Top and bottom stack regions under a horizontal divider, left and right
// place them side by side along a vertical one.
func (o Orientation) Axis() Axis {
	if o == OrientationLeft || o == OrientationRight {
		return AxisVertical
	}
	return AxisHorizontal
}

// Primary returns which end of the axis the docked region occupies.
func (o Orientation) Primary() Primary {
	if o == OrientationBottom || o == OrientationRight {
		return PrimaryEnd
	}
	return PrimaryStart
}

// Axis is the orientation of a split's divider.
type Axis int

const (
	AxisHorizontal Axis = iota // main above or below remainder
	AxisVertical               // main left or right of remainder
)

// String returns a human readable axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Primary is the end of the axis a split's main child sits on.
type Primary int

const (
	PrimaryStart Primary = iota // top or left
	PrimaryEnd                  // bottom or right
)

// OrientationOf combines an axis and a primary side into an orientation.
func OrientationOf(axis Axis, primary Primary) Orientation {
	switch {
	case axis == AxisHorizontal && primary == PrimaryStart:
		return OrientationTop
	case axis == AxisHorizontal:
		return OrientationBottom
	case primary == PrimaryStart:
		return OrientationLeft
	default:
		return OrientationRight
	}
}
