package entity

// Overlay is the drop preview layer of an arrangement. It is active for
// the duration of a drag gesture and may carry one marker rectangle.
type Overlay struct {
	active bool
	marker Rect
	marked bool
}

// Start activates the overlay with no marker.
func (o *Overlay) Start() {
	o.active = true
	o.Clear()
}

// End deactivates the overlay and drops the marker.
func (o *Overlay) End() {
	o.active = false
	o.Clear()
}

// Active reports whether a drag gesture is in progress.
func (o *Overlay) Active() bool { return o.active }

// Mark shows the preview of docking on side orientation of target.
func (o *Overlay) Mark(target Rect, orientation Orientation, weight float64) {
	o.marker = PreviewRect(target, orientation, weight)
	o.marked = true
}

// Clear removes the marker.
func (o *Overlay) Clear() {
	o.marker = Rect{}
	o.marked = false
}

// Marker returns the marker rectangle and whether one is shown.
func (o *Overlay) Marker() (Rect, bool) {
	return o.marker, o.marked
}

// PreviewRect clips target to the share weight on side orientation.
// The center orientation previews the whole target.
func PreviewRect(target Rect, orientation Orientation, weight float64) Rect {
	r := target
	switch orientation {
	case OrientationTop:
		r.H = int(float64(target.H) * weight)
	case OrientationBottom:
		r.H = int(float64(target.H) * weight)
		r.Y += target.H - r.H
	case OrientationLeft:
		r.W = int(float64(target.W) * weight)
	case OrientationRight:
		r.W = int(float64(target.W) * weight)
		r.X += target.W - r.W
	}
	return r
}
