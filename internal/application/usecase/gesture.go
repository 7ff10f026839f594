package usecase

import (
	"github.com/bnema/dockyard/internal/domain/entity"
)

// Gesture is what a pointer gesture over a container refers to. It is
// resolved once when the gesture starts and handed to the drag session or
// the context menu.
type Gesture struct {
	Arrangement *entity.Arrangement
	Container   *entity.Container
	Keys        []entity.Key
	// Single is true when the pointer was over one specific tab.
	Single bool
}

// ResolveGesture resolves p in arr to the key of the tab under it, or to
// every visible key of the container under it.
func (uc *ManageDockingUseCase) ResolveGesture(arr *entity.Arrangement, p entity.Point) (*Gesture, error) {
	if arr == nil || uc.set.IndexOf(arr) < 0 {
		return nil, ErrNoDragSource
	}
	c, ok := arr.RegionAt(p).(*entity.Container)
	if !ok {
		return nil, ErrNoDragSource
	}

	g := &Gesture{Arrangement: arr, Container: c}
	if key, ok := c.KeyAt(p); ok {
		g.Keys = []entity.Key{key}
		g.Single = true
		return g, nil
	}
	g.Keys = c.VisibleKeys()
	if len(g.Keys) == 0 {
		return nil, ErrNoDragSource
	}
	return g, nil
}

// ScreenBounds returns the gesture container's bounds in screen coordinates.
func (g *Gesture) ScreenBounds() entity.Rect {
	screen := g.Arrangement.ScreenBounds()
	return g.Container.Bounds().Translate(screen.X, screen.Y)
}
