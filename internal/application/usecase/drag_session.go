package usecase

import (
	"context"
	"errors"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	// ErrDragInProgress is returned when arming while another gesture is active.
	ErrDragInProgress = errors.New("drag already in progress")
	// ErrNotArmed is returned when hovering or dropping without an armed gesture.
	ErrNotArmed = errors.New("no drag in progress")
)

const (
	containerDropWeight = 0.5
	bridgeDropWeight    = 0.25
)

// DragState is the state of a DragSession.
type DragState int

const (
	DragIdle DragState = iota
	DragArmed
	DragHovering
)

func (s DragState) String() string {
	switch s {
	case DragArmed:
		return "armed"
	case DragHovering:
		return "hovering"
	default:
		return "idle"
	}
}

// DropTarget is where the dragged keys would land.
type DropTarget struct {
	Arrangement *entity.Arrangement
	Region      entity.Region
	Orientation entity.Orientation
	Weight      float64
}

// DropOutcome summarizes what a drop did.
type DropOutcome int

const (
	// DropCancelled means nothing changed.
	DropCancelled DropOutcome = iota
	// DropNoop means the keys were dropped back onto their own container.
	DropNoop
	// DropMoved means the keys were added as tabs of an existing container.
	DropMoved
	// DropSplit means a new container was split against the target.
	DropSplit
)

func (o DropOutcome) String() string {
	switch o {
	case DropNoop:
		return "noop"
	case DropMoved:
		return "moved"
	case DropSplit:
		return "split"
	default:
		return "cancelled"
	}
}

// DropOutput is the result of a drop.
type DropOutput struct {
	Outcome   DropOutcome
	Container *entity.Container
}

// DragSession runs one pointer drag gesture at a time over every
// arrangement of the docking set: idle, armed, hovering, back to idle.
type DragSession struct {
	docking *ManageDockingUseCase
	state   DragState
	gesture *Gesture
	target  *DropTarget
}

// NewDragSession creates an idle session.
func NewDragSession(docking *ManageDockingUseCase) *DragSession {
	return &DragSession{docking: docking}
}

// State returns the current state.
func (s *DragSession) State() DragState { return s.state }

// Gesture returns the armed gesture, nil when idle.
func (s *DragSession) Gesture() *Gesture { return s.gesture }

// Target returns the current drop target, nil when none.
func (s *DragSession) Target() *DropTarget { return s.target }

// Arm starts a gesture at p in arr. A single targeted key is selected.
// Every overlay of the set becomes active.
func (s *DragSession) Arm(ctx context.Context, arr *entity.Arrangement, p entity.Point) (*Gesture, error) {
	log := logging.FromContext(ctx)

	if s.state != DragIdle {
		return nil, ErrDragInProgress
	}
	g, err := s.docking.ResolveGesture(arr, p)
	if err != nil {
		return nil, err
	}
	if g.Single {
		_ = g.Container.Select(g.Keys[0])
	}

	s.gesture = g
	s.state = DragArmed
	for _, a := range s.docking.Set().Arrangements() {
		a.Overlay().Start()
	}

	log.Debug().
		Str("container_id", g.Container.ID()).
		Int("keys", len(g.Keys)).
		Bool("single", g.Single).
		Msg("drag armed")
	return g, nil
}

// Hover resolves the drop target under p in arr and moves the preview
// marker there. A nil target means the pointer is over nothing droppable.
func (s *DragSession) Hover(ctx context.Context, arr *entity.Arrangement, p entity.Point) (*DropTarget, error) {
	if s.state == DragIdle {
		return nil, ErrNotArmed
	}

	for _, a := range s.docking.Set().Arrangements() {
		a.Overlay().Clear()
	}
	s.state = DragHovering
	s.target = s.resolveTarget(arr, p)
	if s.target == nil {
		return nil, nil
	}

	t := s.target
	arr.Overlay().Mark(t.Region.Bounds(), t.Orientation, t.Weight)
	logging.FromContext(ctx).Trace().
		Str("region_id", t.Region.ID()).
		Str("orientation", t.Orientation.String()).
		Float64("weight", t.Weight).
		Msg("drag hover")
	return t, nil
}

func (s *DragSession) resolveTarget(arr *entity.Arrangement, p entity.Point) *DropTarget {
	if arr == nil || s.docking.Set().IndexOf(arr) < 0 {
		return nil
	}
	region := arr.RegionAt(p)
	if region == nil {
		return nil
	}

	t := &DropTarget{Arrangement: arr, Region: region, Weight: containerDropWeight}
	c, isContainer := region.(*entity.Container)
	if !isContainer {
		t.Weight = bridgeDropWeight
	}

	switch {
	case isContainer && c == s.gesture.Container && len(s.gesture.Keys) == c.VisibleCount():
		t.Orientation = entity.OrientationCenter
	case isContainer && inCenterBox(region.Bounds(), p):
		t.Orientation = entity.OrientationCenter
	default:
		t.Orientation = sideOf(region.Bounds(), p)
	}
	return t
}

// inCenterBox reports whether p is strictly inside the middle half of b on both axes.
func inCenterBox(b entity.Rect, p entity.Point) bool {
	x, y := p.X-b.X, p.Y-b.Y
	return 4*x > b.W && 4*x < 3*b.W && 4*y > b.H && 4*y < 3*b.H
}

// sideOf splits b into four triangles along its diagonals. The axis on
// which p deviates most from the center picks the side.
func sideOf(b entity.Rect, p entity.Point) entity.Orientation {
	if b.W <= 0 || b.H <= 0 {
		return entity.OrientationTop
	}
	c := b.Center()
	xd := float64(p.X-c.X) / (float64(b.W) / 2)
	yd := float64(p.Y-c.Y) / (float64(b.H) / 2)

	// The lower-left diagonal belongs to the left side.
	if abs(xd) > abs(yd) || (abs(xd) == abs(yd) && xd < 0 && yd > 0) {
		if xd > 0 {
			return entity.OrientationRight
		}
		return entity.OrientationLeft
	}
	if yd > 0 {
		return entity.OrientationBottom
	}
	return entity.OrientationTop
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Drop completes the gesture. Failures degrade to DropCancelled.
func (s *DragSession) Drop(ctx context.Context) (*DropOutput, error) {
	log := logging.FromContext(ctx)

	if s.state == DragIdle {
		return nil, ErrNotArmed
	}
	g, t := s.gesture, s.target
	s.reset()

	out := &DropOutput{Outcome: DropCancelled}
	if t == nil || !t.Arrangement.Contains(t.Region) || s.docking.Set().IndexOf(t.Arrangement) < 0 {
		log.Debug().Msg("drop cancelled: no target")
		return out, nil
	}

	var keys []entity.Key
	for _, key := range g.Keys {
		if g.Container.Contains(key) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		log.Debug().Msg("drop cancelled: dragged keys vanished")
		return out, nil
	}
	selected := g.Container.SelectedKey()

	var dest *entity.Container
	if t.Orientation == entity.OrientationCenter {
		c, ok := t.Region.(*entity.Container)
		if !ok {
			return out, nil
		}
		if c == g.Container && c.VisibleCount() <= len(keys) {
			out.Outcome, out.Container = DropNoop, c
			return out, nil
		}
		dest = c
		out.Outcome = DropMoved
	} else {
		dest = s.docking.Set().Factory().NewContainer()
		if _, err := t.Arrangement.Split(t.Region, dest, t.Orientation, t.Weight); err != nil {
			log.Debug().Err(err).Msg("drop cancelled: split failed")
			return out, nil
		}
		out.Outcome = DropSplit
	}

	if err := s.docking.MoveKeys(ctx, keys, dest); err != nil {
		log.Warn().Err(err).Msg("drop failed while moving keys")
		out.Outcome = DropCancelled
		return out, nil
	}
	if selected != nil && containsKey(keys, selected) {
		_ = dest.Select(selected)
	}
	out.Container = dest

	log.Info().
		Str("outcome", out.Outcome.String()).
		Str("orientation", t.Orientation.String()).
		Int("keys", len(keys)).
		Msg("drop completed")
	return out, nil
}

// Cancel aborts the gesture without touching any tree.
func (s *DragSession) Cancel(ctx context.Context) {
	if s.state == DragIdle {
		return
	}
	s.reset()
	logging.FromContext(ctx).Debug().Msg("drag cancelled")
}

func (s *DragSession) reset() {
	for _, a := range s.docking.Set().Arrangements() {
		a.Overlay().End()
	}
	s.state = DragIdle
	s.gesture = nil
	s.target = nil
}
