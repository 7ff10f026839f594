package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func enabled(entries []usecase.MenuEntry) map[usecase.MenuAction]bool {
	out := make(map[usecase.MenuAction]bool, len(entries))
	for _, e := range entries {
		out[e.Action] = e.Enabled
	}
	return out
}

func TestContextMenu_Enablement(t *testing.T) {
	fx := newDragFixture()

	single, err := fx.docking.ResolveGesture(fx.arr, tabCenter(fx.x, "b"))
	require.NoError(t, err)
	assert.Equal(t, map[usecase.MenuAction]bool{
		usecase.ActionClose:       true,
		usecase.ActionCloseOthers: true,
		usecase.ActionCloseAll:    false,
		usecase.ActionDetach:      true,
	}, enabled(fx.docking.ContextMenu(single)))

	all, err := fx.docking.ResolveGesture(fx.arr, fx.x.Bounds().Center())
	require.NoError(t, err)
	assert.Equal(t, map[usecase.MenuAction]bool{
		usecase.ActionClose:       false,
		usecase.ActionCloseOthers: false,
		usecase.ActionCloseAll:    true,
		usecase.ActionDetach:      true,
	}, enabled(fx.docking.ContextMenu(all)))

	lone, err := fx.docking.ResolveGesture(fx.arr, tabCenter(fx.y, "y"))
	require.NoError(t, err)
	assert.Equal(t, map[usecase.MenuAction]bool{
		usecase.ActionClose:       true,
		usecase.ActionCloseOthers: false,
		usecase.ActionCloseAll:    false,
		usecase.ActionDetach:      true,
	}, enabled(fx.docking.ContextMenu(lone)))
}

func TestContextMenu_Labels(t *testing.T) {
	fx := newDragFixture()
	opts := fx.docking.Options()
	opts.Labels = usecase.MenuLabels{Close: "Fermer", CloseOthers: "Fermer les autres", CloseAll: "Tout fermer", Detach: "Détacher"}
	fx.docking.SetOptions(opts)

	g, err := fx.docking.ResolveGesture(fx.arr, tabCenter(fx.x, "a"))
	require.NoError(t, err)
	entries := fx.docking.ContextMenu(g)
	require.Len(t, entries, 4)
	assert.Equal(t, "Fermer", entries[0].Label)
	assert.Equal(t, "Détacher", entries[3].Label)
}

func TestRunMenuAction_CloseOthers(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()

	g, err := fx.docking.ResolveGesture(fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)
	require.NoError(t, fx.docking.RunMenuAction(ctx, g, usecase.ActionCloseOthers))

	assert.Equal(t, []entity.Key{"c"}, fx.x.VisibleKeys())
	assert.Equal(t, []entity.Key{"a", "b", "c"}, fx.x.Keys(), "closed keys stay reserved")
	assert.Equal(t, "c", fx.x.SelectedKey())
}

func TestRunMenuAction_CloseAllSkipsRefusingItems(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()
	require.NoError(t, fx.docking.PutItem(ctx, "b", &entity.BasicItem{Title: "b", Pinned: true}))
	fx.layout()

	g, err := fx.docking.ResolveGesture(fx.arr, fx.x.Bounds().Center())
	require.NoError(t, err)
	require.NoError(t, fx.docking.RunMenuAction(ctx, g, usecase.ActionCloseAll))

	assert.Equal(t, []entity.Key{"b"}, fx.x.VisibleKeys())
}

func TestRunMenuAction_DetachUsesContainerScreenBounds(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()
	fx.arr.SetScreenBounds(entity.Rect{X: 10, Y: 20, W: 201, H: 100})

	g, err := fx.docking.ResolveGesture(fx.arr, tabCenter(fx.x, "a"))
	require.NoError(t, err)
	require.NoError(t, fx.docking.RunMenuAction(ctx, g, usecase.ActionDetach))

	require.Equal(t, 2, fx.set.Len())
	floating := fx.set.Arrangements()[1]
	assert.Equal(t, []entity.Key{"a"}, floating.Keys())
	assert.Equal(t, entity.Rect{X: 111, Y: 20, W: 100, H: 100}, floating.ScreenBounds())

	assert.ErrorIs(t, fx.docking.RunMenuAction(ctx, g, usecase.MenuAction("bogus")), entity.ErrInvalidArgument)
}
