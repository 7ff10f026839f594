package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// MenuAction identifies a context menu entry.
type MenuAction string

const (
	ActionClose       MenuAction = "close"
	ActionCloseOthers MenuAction = "close_others"
	ActionCloseAll    MenuAction = "close_all"
	ActionDetach      MenuAction = "detach"
)

// MenuLabels is the string table for context menu entries.
type MenuLabels struct {
	Close       string
	CloseOthers string
	CloseAll    string
	Detach      string
}

// DefaultMenuLabels returns English labels.
func DefaultMenuLabels() MenuLabels {
	return MenuLabels{
		Close:       "Close",
		CloseOthers: "Close Others",
		CloseAll:    "Close All",
		Detach:      "Detach",
	}
}

// MenuEntry is one entry of a context menu.
type MenuEntry struct {
	Action  MenuAction
	Label   string
	Enabled bool
}

// ContextMenu returns the entries offered for a gesture.
func (uc *ManageDockingUseCase) ContextMenu(g *Gesture) []MenuEntry {
	labels := uc.opts.Labels
	keys := len(g.Keys)
	return []MenuEntry{
		{Action: ActionClose, Label: labels.Close, Enabled: keys == 1},
		{Action: ActionCloseOthers, Label: labels.CloseOthers, Enabled: keys < g.Container.VisibleCount()},
		{Action: ActionCloseAll, Label: labels.CloseAll, Enabled: keys > 1},
		{Action: ActionDetach, Label: labels.Detach, Enabled: keys > 0},
	}
}

// RunMenuAction performs action for g. Close actions skip items that refuse.
func (uc *ManageDockingUseCase) RunMenuAction(ctx context.Context, g *Gesture, action MenuAction) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Int("keys", len(g.Keys)).Msg("running menu action")

	switch action {
	case ActionClose, ActionCloseAll:
		return uc.closeKeys(ctx, g.Keys)
	case ActionCloseOthers:
		var others []entity.Key
		for _, key := range g.Container.VisibleKeys() {
			if !containsKey(g.Keys, key) {
				others = append(others, key)
			}
		}
		return uc.closeKeys(ctx, others)
	case ActionDetach:
		_, err := uc.Detach(ctx, g.Keys, g.ScreenBounds())
		return err
	default:
		return fmt.Errorf("%w: unknown menu action %q", entity.ErrInvalidArgument, action)
	}
}

func (uc *ManageDockingUseCase) closeKeys(ctx context.Context, keys []entity.Key) error {
	for _, key := range keys {
		if _, err := uc.CloseItem(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func containsKey(keys []entity.Key, key entity.Key) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
