package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	// ErrWindowNotFound is returned for a window handle no arrangement owns.
	ErrWindowNotFound = errors.New("window not found")
	// ErrNoDragSource is returned when a gesture starts over nothing draggable.
	ErrNoDragSource = errors.New("nothing to drag here")
)

// DockingOptions configures a ManageDockingUseCase.
type DockingOptions struct {
	Layout entity.LayoutOptions
	Labels MenuLabels
}

// DefaultDockingOptions returns terminal friendly defaults.
func DefaultDockingOptions() DockingOptions {
	return DockingOptions{
		Layout: entity.DefaultLayoutOptions(),
		Labels: DefaultMenuLabels(),
	}
}

// ManageDockingUseCase owns an ArrangementSet and keeps its trees, item
// lifecycles and floating windows consistent after every mutation.
// It must be driven from a single goroutine.
type ManageDockingUseCase struct {
	set         *entity.ArrangementSet
	windows     port.HostWindowProvider
	handles     map[*entity.Arrangement]port.WindowHandle
	displayable bool
	opts        DockingOptions
}

// NewManageDockingUseCase creates the coordinator. windows may be nil, in
// which case floating arrangements never get a window.
func NewManageDockingUseCase(set *entity.ArrangementSet, windows port.HostWindowProvider, opts DockingOptions) *ManageDockingUseCase {
	if set == nil {
		set = entity.NewArrangementSet(nil)
	}
	return &ManageDockingUseCase{
		set:         set,
		windows:     windows,
		handles:     make(map[*entity.Arrangement]port.WindowHandle),
		displayable: true,
		opts:        opts,
	}
}

// Set returns the managed arrangement set.
func (uc *ManageDockingUseCase) Set() *entity.ArrangementSet { return uc.set }

// Options returns the current options.
func (uc *ManageDockingUseCase) Options() DockingOptions { return uc.opts }

// SetOptions replaces layout options and menu labels.
func (uc *ManageDockingUseCase) SetOptions(opts DockingOptions) { uc.opts = opts }

// PutItem stores item under key and selects it. A known key keeps its
// container; a new key goes to the first container of the main arrangement.
func (uc *ManageDockingUseCase) PutItem(ctx context.Context, key entity.Key, item entity.Item) error {
	log := logging.FromContext(ctx)

	if err := entity.ValidateKey(key); err != nil {
		return err
	}
	if _, b := uc.set.FindBridge(key); b != nil {
		return fmt.Errorf("%w: key %v is already bridged", entity.ErrInvalidArgument, key)
	}

	arr, c := uc.set.FindContainer(key)
	if c == nil {
		arr = uc.set.Main()
		c = arr.FirstContainer()
		if c == nil {
			c = uc.set.Factory().NewContainer()
			if _, err := arr.Split(arr.Root(), c, entity.OrientationTop, entity.DefaultWeight); err != nil {
				return fmt.Errorf("create container: %w", err)
			}
		}
	}

	prev, err := c.Put(key, item)
	if err != nil {
		return err
	}
	if prev != nil && prev != item {
		prev.Detached()
	}
	if item != nil {
		if prev != item {
			item.Attached(c.Slot(key))
		}
		_ = c.Select(key)
	}

	log.Debug().
		Interface("key", key).
		Str("container_id", c.ID()).
		Bool("reserved", item == nil).
		Msg("item put")

	return uc.regionChanged(ctx, arr, c)
}

// RemoveItem drops key from its container and returns the item it held.
// Unknown keys are ignored.
func (uc *ManageDockingUseCase) RemoveItem(ctx context.Context, key entity.Key) (entity.Item, error) {
	log := logging.FromContext(ctx)

	arr, c := uc.set.FindContainer(key)
	if c == nil {
		return nil, nil
	}
	item, err := c.Remove(key)
	if err != nil {
		return nil, err
	}
	if item != nil {
		item.Detached()
	}

	log.Debug().Interface("key", key).Str("container_id", c.ID()).Msg("item removed")
	return item, uc.regionChanged(ctx, arr, c)
}

// CloseItem asks the item of key whether it may detach and, if so, keeps
// the key reserved with no item. It reports whether the item is gone.
func (uc *ManageDockingUseCase) CloseItem(ctx context.Context, key entity.Key) (bool, error) {
	log := logging.FromContext(ctx)

	arr, c := uc.set.FindContainer(key)
	if c == nil {
		return false, fmt.Errorf("%w: unknown key %v", entity.ErrInvalidArgument, key)
	}
	item, err := c.Item(key)
	if err != nil {
		return false, err
	}
	if item == nil {
		return true, nil
	}
	if !item.Detaching() {
		log.Debug().Interface("key", key).Msg("item refused to close")
		return false, nil
	}
	if _, err := c.Clear(key); err != nil {
		return false, err
	}
	item.Detached()

	log.Debug().Interface("key", key).Msg("item closed")
	return true, uc.regionChanged(ctx, arr, c)
}

// Item returns the item stored under key.
func (uc *ManageDockingUseCase) Item(key entity.Key) (entity.Item, bool) {
	_, c := uc.set.FindContainer(key)
	if c == nil {
		return nil, false
	}
	item, err := c.Item(key)
	return item, err == nil
}

// PutContent bridges content under key. A new key gets a fresh bridge split
// against the root of the main arrangement.
func (uc *ManageDockingUseCase) PutContent(ctx context.Context, key entity.Key, content entity.Content) error {
	log := logging.FromContext(ctx)

	if err := entity.ValidateKey(key); err != nil {
		return err
	}
	if _, c := uc.set.FindContainer(key); c != nil {
		return fmt.Errorf("%w: key %v already holds an item", entity.ErrInvalidArgument, key)
	}

	arr, b := uc.set.FindBridge(key)
	if b == nil {
		arr = uc.set.Main()
		b = uc.set.Factory().NewBridge()
		if _, err := arr.Split(arr.Root(), b, entity.OrientationTop, entity.DefaultWeight); err != nil {
			return fmt.Errorf("create bridge: %w", err)
		}
	}
	if _, err := b.Set(key, content); err != nil {
		return err
	}

	log.Debug().Interface("key", key).Str("bridge_id", b.ID()).Msg("content put")
	return uc.regionChanged(ctx, arr, b)
}

// RemoveContent empties the bridge keyed by key and returns its content.
// Unknown keys are ignored.
func (uc *ManageDockingUseCase) RemoveContent(ctx context.Context, key entity.Key) (entity.Content, error) {
	arr, b := uc.set.FindBridge(key)
	if b == nil {
		return nil, nil
	}
	_, content := b.Clear()

	logging.FromContext(ctx).Debug().Interface("key", key).Str("bridge_id", b.ID()).Msg("content removed")
	return content, uc.regionChanged(ctx, arr, b)
}

// Content returns the content bridged under key.
func (uc *ManageDockingUseCase) Content(key entity.Key) (entity.Content, bool) {
	_, b := uc.set.FindBridge(key)
	if b == nil {
		return nil, false
	}
	return b.Content(), true
}

// ContainsKey reports whether key is held anywhere in the set.
func (uc *ManageDockingUseCase) ContainsKey(key entity.Key) bool {
	return uc.set.ContainsKey(key)
}

// AllKeys returns every key in the set.
func (uc *ManageDockingUseCase) AllKeys() []entity.Key {
	return uc.set.AllKeys()
}

// MoveKeys moves the listed keys, in order, to the end of dest. Each item
// is detached from its old slot before it is attached to the new one.
// Keys that are not in any container are skipped.
func (uc *ManageDockingUseCase) MoveKeys(ctx context.Context, keys []entity.Key, dest *entity.Container) error {
	destArr := uc.set.ArrangementOf(dest)
	if destArr == nil {
		return fmt.Errorf("%w: destination container is not attached", entity.ErrInvalidArgument)
	}

	var sources []touchedContainer
	for _, key := range keys {
		arr, src := uc.set.FindContainer(key)
		if src == nil {
			continue
		}
		item, err := src.Remove(key)
		if err != nil {
			return err
		}
		if item != nil {
			item.Detached()
		}
		if _, err := dest.Put(key, item); err != nil {
			return err
		}
		if item != nil {
			item.Attached(dest.Slot(key))
		}
		if src != dest && !touched(sources, src) {
			sources = append(sources, touchedContainer{arr: arr, c: src})
		}
	}

	logging.FromContext(ctx).Debug().
		Int("keys", len(keys)).
		Str("container_id", dest.ID()).
		Msg("keys moved")

	for _, s := range sources {
		if err := uc.regionChanged(ctx, s.arr, s.c); err != nil {
			return err
		}
	}
	if uc.set.IndexOf(destArr) < 0 {
		return nil
	}
	return uc.refresh(ctx, destArr)
}

type touchedContainer struct {
	arr *entity.Arrangement
	c   *entity.Container
}

func touched(sources []touchedContainer, c *entity.Container) bool {
	for _, s := range sources {
		if s.c == c {
			return true
		}
	}
	return false
}

// Detach moves keys into a new floating arrangement placed at bounds.
func (uc *ManageDockingUseCase) Detach(ctx context.Context, keys []entity.Key, bounds entity.Rect) (*entity.Arrangement, error) {
	log := logging.FromContext(ctx)

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no keys to detach", entity.ErrInvalidArgument)
	}
	origins := make([]keyOrigin, 0, len(keys))
	for _, key := range keys {
		_, c := uc.set.FindContainer(key)
		if c == nil {
			return nil, fmt.Errorf("%w: key %v is not in a container", entity.ErrInvalidArgument, key)
		}
		origins = append(origins, keyOrigin{key: key, c: c})
	}

	factory := uc.set.Factory()
	root := factory.NewContainer()
	arr := factory.NewArrangement(root)
	arr.SetScreenBounds(bounds)
	if err := uc.set.Add(arr); err != nil {
		return nil, err
	}

	ctx = logging.WithArrangementID(ctx, arr.ID())
	if err := uc.MoveKeys(ctx, keys, root); err != nil {
		uc.undoDetach(ctx, arr, root, origins)
		return nil, err
	}

	log.Info().
		Str("arrangement_id", arr.ID()).
		Int("keys", len(keys)).
		Msg("keys detached into floating arrangement")
	return arr, nil
}

type keyOrigin struct {
	key entity.Key
	c   *entity.Container
}

// undoDetach drops a half-built floating arrangement and returns its keys
// to the containers they came from, or to the main arrangement when that
// container is gone.
func (uc *ManageDockingUseCase) undoDetach(ctx context.Context, arr *entity.Arrangement, root *entity.Container, origins []keyOrigin) {
	log := logging.FromContext(ctx)

	uc.destroyWindow(ctx, arr)
	if uc.set.IndexOf(arr) > 0 {
		_ = uc.set.Remove(arr)
	}
	for _, o := range origins {
		if !root.Contains(o.key) {
			continue
		}
		item, _ := root.Remove(o.key)
		if item != nil {
			item.Detached()
		}
		home := uc.set.ArrangementOf(o.c)
		if home == nil {
			if err := uc.PutItem(ctx, o.key, item); err != nil {
				log.Warn().Err(err).Interface("key", o.key).Msg("failed to restore key after detach")
			}
			continue
		}
		_, _ = o.c.Put(o.key, item)
		if item != nil {
			item.Attached(o.c.Slot(o.key))
		}
		if err := uc.refresh(ctx, home); err != nil {
			log.Warn().Err(err).Str("arrangement_id", home.ID()).Msg("refresh after undone detach failed")
		}
	}
	log.Debug().Str("arrangement_id", arr.ID()).Msg("detach undone")
}

// CloseWindow handles the user closing a floating window. Every item is
// asked whether it may detach; if all agree every item is cleared and its
// key stays reserved, so the arrangement keeps its place and reopens when
// an item is put back. It reports whether the window closed.
func (uc *ManageDockingUseCase) CloseWindow(ctx context.Context, handle port.WindowHandle) (bool, error) {
	log := logging.FromContext(ctx)

	arr := uc.ArrangementForWindow(handle)
	if arr == nil {
		return false, fmt.Errorf("%w: %s", ErrWindowNotFound, handle)
	}

	for _, c := range arr.Containers() {
		for _, slot := range c.Slots() {
			if item := slot.Item(); item != nil && !item.Detaching() {
				log.Debug().Interface("key", slot.Key()).Msg("window close refused by item")
				return false, nil
			}
		}
	}

	for _, c := range arr.Containers() {
		for _, slot := range c.Slots() {
			item := slot.Item()
			if item == nil {
				continue
			}
			if _, err := c.Clear(slot.Key()); err != nil {
				return false, err
			}
			item.Detached()
		}
	}
	for _, b := range arr.Bridges() {
		if b.HasKey() {
			if _, err := b.Set(b.Key(), nil); err != nil {
				return false, err
			}
		}
	}
	if err := uc.refresh(ctx, arr); err != nil {
		return false, err
	}

	log.Info().Str("arrangement_id", arr.ID()).Msg("floating window closed")
	return true, nil
}

// WindowMoved records the new screen rectangle of a floating window.
func (uc *ManageDockingUseCase) WindowMoved(handle port.WindowHandle, bounds entity.Rect) error {
	arr := uc.ArrangementForWindow(handle)
	if arr == nil {
		return fmt.Errorf("%w: %s", ErrWindowNotFound, handle)
	}
	arr.SetScreenBounds(bounds)
	return nil
}

// ArrangementForWindow returns the arrangement owning handle, or nil.
func (uc *ManageDockingUseCase) ArrangementForWindow(handle port.WindowHandle) *entity.Arrangement {
	for arr, h := range uc.handles {
		if h == handle {
			return arr
		}
	}
	return nil
}

// WindowOf returns the window of a floating arrangement.
func (uc *ManageDockingUseCase) WindowOf(arr *entity.Arrangement) (port.WindowHandle, bool) {
	h, ok := uc.handles[arr]
	return h, ok
}

// SetDisplayable mirrors the embedding surface being shown or hidden.
// Floating windows only exist while the surface is displayable.
func (uc *ManageDockingUseCase) SetDisplayable(ctx context.Context, displayable bool) error {
	uc.displayable = displayable
	if displayable {
		return uc.Refresh(ctx)
	}
	for _, arr := range uc.set.Arrangements() {
		uc.destroyWindow(ctx, arr)
	}
	return nil
}

// Refresh runs the visibility pass and window bookkeeping on every arrangement.
func (uc *ManageDockingUseCase) Refresh(ctx context.Context) error {
	for _, arr := range uc.set.Arrangements() {
		if err := uc.refresh(ctx, arr); err != nil {
			return err
		}
	}
	return nil
}

// LayoutArrangement assigns bounds to every region of arr.
func (uc *ManageDockingUseCase) LayoutArrangement(arr *entity.Arrangement, bounds entity.Rect) {
	arr.Layout(bounds, uc.opts.Layout)
}

// ReplaceArrangements swaps in a freshly built set of arrangements. Items of
// the current trees are detached before the new ones are attached.
func (uc *ManageDockingUseCase) ReplaceArrangements(ctx context.Context, arrangements []*entity.Arrangement) error {
	log := logging.FromContext(ctx)

	if len(arrangements) == 0 {
		return fmt.Errorf("%w: at least one arrangement is required", entity.ErrInvalidArgument)
	}
	if err := entity.ValidateUniqueKeys(arrangements); err != nil {
		return err
	}

	for _, arr := range uc.set.Arrangements() {
		forEachItem(arr, func(slot *entity.Slot) { slot.Item().Detached() })
		uc.destroyWindow(ctx, arr)
	}
	if err := uc.set.Replace(arrangements); err != nil {
		return err
	}
	for _, arr := range arrangements {
		forEachItem(arr, func(slot *entity.Slot) { slot.Item().Attached(slot) })
	}

	log.Info().
		Int("arrangements", len(arrangements)).
		Int("keys", len(uc.set.AllKeys())).
		Msg("arrangements replaced")
	return uc.Refresh(ctx)
}

func forEachItem(arr *entity.Arrangement, fn func(slot *entity.Slot)) {
	for _, c := range arr.Containers() {
		for _, slot := range c.Slots() {
			if slot.Item() != nil {
				fn(slot)
			}
		}
	}
}

// regionChanged prunes r when it no longer holds any key, then refreshes arr.
func (uc *ManageDockingUseCase) regionChanged(ctx context.Context, arr *entity.Arrangement, r entity.Region) error {
	empty := false
	switch n := r.(type) {
	case *entity.Container:
		empty = !n.HasKeys()
	case *entity.Bridge:
		empty = !n.HasKey()
	}
	if empty && arr.Contains(r) {
		if err := arr.Unsplit(r); err != nil {
			return err
		}
	}
	return uc.refresh(ctx, arr)
}

// refresh recomputes visibility and creates, destroys or drops the window
// of a floating arrangement accordingly.
func (uc *ManageDockingUseCase) refresh(ctx context.Context, arr *entity.Arrangement) error {
	log := logging.FromContext(ctx)

	visible := arr.UpdateVisibility()
	idx := uc.set.IndexOf(arr)
	if idx <= 0 {
		return nil
	}

	if visible {
		if _, ok := uc.handles[arr]; ok || !uc.displayable || uc.windows == nil {
			return nil
		}
		handle, err := uc.windows.CreateHostWindow(ctx, port.HostWindowRequest{
			ArrangementID: arr.ID(),
			Bounds:        arr.ScreenBounds(),
		})
		if err != nil {
			return fmt.Errorf("create host window: %w", err)
		}
		uc.handles[arr] = handle
		log.Debug().Str("arrangement_id", arr.ID()).Str("window", string(handle)).Msg("host window created")
		return nil
	}

	uc.destroyWindow(ctx, arr)
	if !arr.HasKeys() {
		if err := uc.set.Remove(arr); err != nil {
			return err
		}
		log.Debug().Str("arrangement_id", arr.ID()).Msg("empty arrangement dropped")
	}
	return nil
}

func (uc *ManageDockingUseCase) destroyWindow(ctx context.Context, arr *entity.Arrangement) {
	handle, ok := uc.handles[arr]
	if !ok {
		return
	}
	delete(uc.handles, arr)
	if err := uc.windows.DestroyHostWindow(ctx, handle); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("window", string(handle)).Msg("failed to destroy host window")
	}
}
