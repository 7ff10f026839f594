package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func tabCenter(c *entity.Container, key string) entity.Point {
	return c.Slot(key).TabBounds().Center()
}

func TestDragSession_DropOnLeftEdgeSplitsTarget(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()
	require.Equal(t, entity.Rect{X: 0, Y: 0, W: 100, H: 100}, fx.y.Bounds())

	g, err := fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)
	assert.True(t, g.Single)
	assert.Equal(t, []entity.Key{"c"}, g.Keys)
	assert.Equal(t, usecase.DragArmed, fx.drag.State())

	target, err := fx.drag.Hover(ctx, fx.arr, entity.Point{X: 5, Y: 50})
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Same(t, fx.y, target.Region)
	assert.Equal(t, entity.OrientationLeft, target.Orientation)
	assert.InDelta(t, 0.5, target.Weight, 1e-9)

	marker, marked := fx.arr.Overlay().Marker()
	assert.True(t, marked)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 50, H: 100}, marker)

	out, err := fx.drag.Drop(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.DropSplit, out.Outcome)
	require.NotNil(t, out.Container)
	assert.Equal(t, []entity.Key{"c"}, out.Container.Keys())

	parent, err := fx.arr.ParentOf(fx.y)
	require.NoError(t, err)
	assert.Equal(t, entity.AxisVertical, parent.Axis())
	assert.Equal(t, entity.OrientationLeft, parent.Orientation())
	assert.Same(t, out.Container, parent.Main())
	assert.Same(t, fx.y, parent.Remainder())
	assert.InDelta(t, 0.5, parent.Weight(), 1e-9)

	assert.Equal(t, []entity.Key{"a", "b"}, fx.x.Keys())
	assert.Equal(t, "b", fx.x.SelectedKey())
	assert.Equal(t, 2, fx.arr.SplitCount())
	assert.Equal(t, usecase.DragIdle, fx.drag.State())
	assert.False(t, fx.arr.Overlay().Active())
	assert.NoError(t, fx.set.ValidateKeys())
}

func TestDragSession_CenterDropAddsTabs(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()

	_, err := fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)
	target, err := fx.drag.Hover(ctx, fx.arr, fx.y.Bounds().Center())
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, entity.OrientationCenter, target.Orientation)

	out, err := fx.drag.Drop(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.DropMoved, out.Outcome)
	assert.Same(t, fx.y, out.Container)
	assert.Equal(t, []entity.Key{"y", "c"}, fx.y.Keys())
	assert.Equal(t, "c", fx.y.SelectedKey())
	assert.Equal(t, 1, fx.arr.SplitCount())
}

func TestDragSession_WholeContainerOntoItselfIsNoop(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()
	inside := fx.x.Bounds().Center()

	g, err := fx.drag.Arm(ctx, fx.arr, inside)
	require.NoError(t, err)
	assert.False(t, g.Single)
	assert.Equal(t, []entity.Key{"a", "b", "c"}, g.Keys)

	target, err := fx.drag.Hover(ctx, fx.arr, entity.Point{X: fx.x.Bounds().X + 1, Y: 50})
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, entity.OrientationCenter, target.Orientation, "own container is always a center drop")

	out, err := fx.drag.Drop(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.DropNoop, out.Outcome)
	assert.Equal(t, []entity.Key{"a", "b", "c"}, fx.x.Keys())
	assert.Equal(t, "b", fx.x.SelectedKey())
	assert.Equal(t, 1, fx.arr.SplitCount())
}

func TestDragSession_SingleTabOntoOwnEdgeSplitsSource(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()

	_, err := fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "a"))
	require.NoError(t, err)
	b := fx.x.Bounds()
	target, err := fx.drag.Hover(ctx, fx.arr, entity.Point{X: b.X + b.W - 2, Y: b.Y + b.H/2})
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, entity.OrientationRight, target.Orientation)

	out, err := fx.drag.Drop(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.DropSplit, out.Outcome)
	assert.Equal(t, []entity.Key{"a"}, out.Container.Keys())
	assert.Equal(t, []entity.Key{"b", "c"}, fx.x.Keys())
	assert.Equal(t, 2, fx.arr.SplitCount())
}

func TestDragSession_BridgeTargetUsesQuarterWeight(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()
	require.NoError(t, fx.docking.PutContent(ctx, "docs", "editor"))
	fx.layout()

	_, bridge := fx.set.FindBridge("docs")
	require.NotNil(t, bridge)

	_, err := fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)
	target, err := fx.drag.Hover(ctx, fx.arr, bridge.Bounds().Center())
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Same(t, bridge, target.Region)
	assert.True(t, target.Orientation.IsDirectional(), "bridges never take tabs")
	assert.InDelta(t, 0.25, target.Weight, 1e-9)

	out, err := fx.drag.Drop(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.DropSplit, out.Outcome)
	parent, err := fx.arr.ParentOf(bridge)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, parent.Weight(), 1e-9)
}

func TestDragSession_HoverOverDividerHasNoTarget(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()

	_, err := fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)
	target, err := fx.drag.Hover(ctx, fx.arr, entity.Point{X: 100, Y: 50})
	require.NoError(t, err)
	assert.Nil(t, target)
	_, marked := fx.arr.Overlay().Marker()
	assert.False(t, marked)

	out, err := fx.drag.Drop(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.DropCancelled, out.Outcome)
	assert.Equal(t, []entity.Key{"a", "b", "c"}, fx.x.Keys())
}

func TestDragSession_VanishedKeysCancelDrop(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()

	_, err := fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)
	_, err = fx.drag.Hover(ctx, fx.arr, entity.Point{X: 5, Y: 50})
	require.NoError(t, err)

	_, err = fx.docking.RemoveItem(ctx, "c")
	require.NoError(t, err)

	out, err := fx.drag.Drop(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.DropCancelled, out.Outcome)
	assert.Equal(t, 1, fx.arr.SplitCount())
}

func TestDragSession_StateErrors(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()

	_, err := fx.drag.Hover(ctx, fx.arr, entity.Point{X: 5, Y: 50})
	assert.ErrorIs(t, err, usecase.ErrNotArmed)
	_, err = fx.drag.Drop(ctx)
	assert.ErrorIs(t, err, usecase.ErrNotArmed)

	_, err = fx.drag.Arm(ctx, fx.arr, entity.Point{X: 100, Y: 50})
	assert.ErrorIs(t, err, usecase.ErrNoDragSource)

	_, err = fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "a"))
	require.NoError(t, err)
	_, err = fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "b"))
	assert.ErrorIs(t, err, usecase.ErrDragInProgress)
}

func TestDragSession_CancelLeavesTreesUntouched(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()

	floating, err := fx.docking.Detach(ctx, []entity.Key{"y"}, entity.Rect{X: 300, Y: 10, W: 40, H: 20})
	require.NoError(t, err)
	fx.layout()

	_, err = fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)
	assert.True(t, fx.arr.Overlay().Active())
	assert.True(t, floating.Overlay().Active(), "every overlay follows the gesture")

	_, err = fx.drag.Hover(ctx, floating, entity.Point{X: 1, Y: 10})
	require.NoError(t, err)
	_, marked := floating.Overlay().Marker()
	assert.True(t, marked)
	_, marked = fx.arr.Overlay().Marker()
	assert.False(t, marked)

	fx.drag.Cancel(ctx)
	assert.Equal(t, usecase.DragIdle, fx.drag.State())
	assert.False(t, fx.arr.Overlay().Active())
	assert.False(t, floating.Overlay().Active())
	assert.Equal(t, []entity.Key{"a", "b", "c"}, fx.x.Keys())
	assert.Equal(t, []entity.Key{"y"}, floating.Keys())
}

func TestDragSession_MovedItemIsDetachedBeforeReattach(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()
	item := &countingItem{}
	require.NoError(t, fx.docking.PutItem(ctx, "c", item))
	require.Equal(t, 1, item.hosts())
	fx.layout()

	_, err := fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)
	_, err = fx.drag.Hover(ctx, fx.arr, entity.Point{X: 5, Y: 50})
	require.NoError(t, err)
	out, err := fx.drag.Drop(ctx)
	require.NoError(t, err)
	require.Equal(t, usecase.DropSplit, out.Outcome)
	assert.Equal(t, 2, item.attached)
	assert.Equal(t, 1, item.detached)
	fx.layout()

	_, err = fx.drag.Arm(ctx, fx.arr, tabCenter(out.Container, "c"))
	require.NoError(t, err)
	target, err := fx.drag.Hover(ctx, fx.arr, fx.x.Bounds().Center())
	require.NoError(t, err)
	require.NotNil(t, target)
	require.Equal(t, entity.OrientationCenter, target.Orientation)
	out, err = fx.drag.Drop(ctx)
	require.NoError(t, err)
	require.Equal(t, usecase.DropMoved, out.Outcome)
	assert.Equal(t, 3, item.attached)
	assert.Equal(t, 2, item.detached)

	_, err = fx.docking.Detach(ctx, []entity.Key{"c"}, entity.Rect{W: 20, H: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, item.attached)
	assert.Equal(t, 3, item.detached)
	assert.Equal(t, 1, item.hosts())
}

func TestDragSession_DiagonalTies(t *testing.T) {
	ctx := testContext()
	fx := newDragFixture()
	require.Equal(t, entity.Rect{X: 0, Y: 0, W: 100, H: 100}, fx.y.Bounds())

	_, err := fx.drag.Arm(ctx, fx.arr, tabCenter(fx.x, "c"))
	require.NoError(t, err)

	tests := []struct {
		name string
		at   entity.Point
		want entity.Orientation
	}{
		{name: "upper left", at: entity.Point{X: 25, Y: 25}, want: entity.OrientationTop},
		{name: "upper right", at: entity.Point{X: 75, Y: 25}, want: entity.OrientationTop},
		{name: "lower right", at: entity.Point{X: 75, Y: 75}, want: entity.OrientationBottom},
		{name: "lower left", at: entity.Point{X: 25, Y: 75}, want: entity.OrientationLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := fx.drag.Hover(ctx, fx.arr, tt.at)
			require.NoError(t, err)
			require.NotNil(t, target)
			assert.Same(t, fx.y, target.Region)
			assert.Equal(t, tt.want, target.Orientation)
		})
	}
	fx.drag.Cancel(ctx)
}
