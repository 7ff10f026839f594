package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestManageDocking_PutItemUsesFirstContainer(t *testing.T) {
	ctx := testContext()
	set := entity.NewArrangementSet(seqFactory())
	uc := usecase.NewManageDockingUseCase(set, nil, testOptions())
	item := entity.NewBasicItem("Outline")

	require.NoError(t, uc.PutItem(ctx, "outline", item))

	root, ok := set.Main().Root().(*entity.Container)
	require.True(t, ok)
	assert.Equal(t, []entity.Key{"outline"}, root.Keys())
	assert.Equal(t, "outline", root.SelectedKey())
	assert.True(t, item.IsAttached())
	assert.Equal(t, "Outline", root.Slot("outline").Title())
	assert.True(t, root.Visible())

	got, ok := uc.Item("outline")
	require.True(t, ok)
	assert.Same(t, item, got)
}

func TestManageDocking_PutItemReplacesAndDetachesPrevious(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageDockingUseCase(nil, nil, testOptions())
	first := entity.NewBasicItem("first")
	second := entity.NewBasicItem("second")

	require.NoError(t, uc.PutItem(ctx, "k", first))
	require.NoError(t, uc.PutItem(ctx, "k", second))

	assert.False(t, first.IsAttached())
	assert.True(t, second.IsAttached())
	assert.Equal(t, []entity.Key{"k"}, uc.AllKeys())
}

func TestManageDocking_KeysStayUniqueAcrossItemsAndContent(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageDockingUseCase(nil, nil, testOptions())

	require.NoError(t, uc.PutContent(ctx, "docs", "editor"))
	assert.ErrorIs(t, uc.PutItem(ctx, "docs", entity.NewBasicItem("x")), entity.ErrInvalidArgument)

	require.NoError(t, uc.PutItem(ctx, "tasks", entity.NewBasicItem("Tasks")))
	assert.ErrorIs(t, uc.PutContent(ctx, "tasks", "x"), entity.ErrInvalidArgument)

	assert.ErrorIs(t, uc.PutItem(ctx, nil, entity.NewBasicItem("x")), entity.ErrInvalidArgument)
	assert.NoError(t, uc.Set().ValidateKeys())
}

func TestManageDocking_RemoveItem(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageDockingUseCase(nil, nil, testOptions())
	item := entity.NewBasicItem("Console")
	require.NoError(t, uc.PutItem(ctx, "console", item))

	got, err := uc.RemoveItem(ctx, "console")
	require.NoError(t, err)
	assert.Same(t, item, got)
	assert.False(t, item.IsAttached())
	assert.False(t, uc.ContainsKey("console"))

	got, err = uc.RemoveItem(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)

	root, ok := uc.Set().Main().Root().(*entity.Container)
	require.True(t, ok, "main keeps a container")
	assert.True(t, root.Visible(), "main is never blank")
}

func TestManageDocking_CloseItemReservesKey(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageDockingUseCase(nil, nil, testOptions())
	pinned := &entity.BasicItem{Title: "Pinned", Pinned: true}
	free := entity.NewBasicItem("Free")
	require.NoError(t, uc.PutItem(ctx, "pinned", pinned))
	require.NoError(t, uc.PutItem(ctx, "free", free))

	closed, err := uc.CloseItem(ctx, "pinned")
	require.NoError(t, err)
	assert.False(t, closed)

	closed, err = uc.CloseItem(ctx, "free")
	require.NoError(t, err)
	assert.True(t, closed)
	assert.True(t, uc.ContainsKey("free"))
	got, ok := uc.Item("free")
	assert.True(t, ok)
	assert.Nil(t, got)
	assert.False(t, free.IsAttached())

	_, err = uc.CloseItem(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestManageDocking_ContentSplitsAndCollapses(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageDockingUseCase(nil, nil, testOptions())
	require.NoError(t, uc.PutItem(ctx, "outline", entity.NewBasicItem("Outline")))

	require.NoError(t, uc.PutContent(ctx, "docs", "document area"))
	main := uc.Set().Main()
	assert.Equal(t, 1, main.SplitCount())
	content, ok := uc.Content("docs")
	require.True(t, ok)
	assert.Equal(t, "document area", content)

	got, err := uc.RemoveContent(ctx, "docs")
	require.NoError(t, err)
	assert.Equal(t, "document area", got)
	assert.Equal(t, 0, main.SplitCount())
	assert.False(t, uc.ContainsKey("docs"))
}

func TestManageDocking_DetachCreatesFloatingWindow(t *testing.T) {
	ctx := testContext()
	windows := portmocks.NewMockHostWindowProvider(t)
	uc := usecase.NewManageDockingUseCase(nil, windows, testOptions())
	require.NoError(t, uc.PutItem(ctx, "a", entity.NewBasicItem("a")))
	require.NoError(t, uc.PutItem(ctx, "b", entity.NewBasicItem("b")))

	bounds := entity.Rect{X: 40, Y: 30, W: 60, H: 20}
	windows.EXPECT().
		CreateHostWindow(mock.Anything, mock.MatchedBy(func(req port.HostWindowRequest) bool {
			return req.Bounds == bounds
		})).
		Return(port.WindowHandle("win-1"), nil).
		Once()

	arr, err := uc.Detach(ctx, []entity.Key{"b"}, bounds)
	require.NoError(t, err)

	assert.Equal(t, 2, uc.Set().Len())
	assert.Equal(t, []entity.Key{"b"}, arr.Keys())
	assert.Equal(t, []entity.Key{"a"}, uc.Set().Main().Keys())
	handle, ok := uc.WindowOf(arr)
	require.True(t, ok)
	assert.Equal(t, port.WindowHandle("win-1"), handle)
	assert.Same(t, arr, uc.ArrangementForWindow("win-1"))

	_, err = uc.Detach(ctx, []entity.Key{"missing"}, bounds)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestManageDocking_RemovingLastFloatingItemTearsDownArrangement(t *testing.T) {
	ctx := testContext()
	windows := portmocks.NewMockHostWindowProvider(t)
	uc := usecase.NewManageDockingUseCase(nil, windows, testOptions())
	require.NoError(t, uc.PutItem(ctx, "a", entity.NewBasicItem("a")))
	require.NoError(t, uc.PutItem(ctx, "b", entity.NewBasicItem("b")))

	windows.EXPECT().CreateHostWindow(mock.Anything, mock.Anything).Return(port.WindowHandle("win-1"), nil).Once()
	windows.EXPECT().DestroyHostWindow(mock.Anything, port.WindowHandle("win-1")).Return(nil).Once()

	arr, err := uc.Detach(ctx, []entity.Key{"b"}, entity.Rect{W: 10, H: 10})
	require.NoError(t, err)
	require.Equal(t, 2, uc.Set().Len())

	_, err = uc.RemoveItem(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, 1, uc.Set().Len())
	assert.Equal(t, -1, uc.Set().IndexOf(arr))
	_, ok := uc.WindowOf(arr)
	assert.False(t, ok)
}

func TestManageDocking_ClosedItemHidesWindowButKeepsArrangement(t *testing.T) {
	ctx := testContext()
	windows := portmocks.NewMockHostWindowProvider(t)
	uc := usecase.NewManageDockingUseCase(nil, windows, testOptions())
	require.NoError(t, uc.PutItem(ctx, "a", entity.NewBasicItem("a")))
	require.NoError(t, uc.PutItem(ctx, "b", entity.NewBasicItem("b")))

	windows.EXPECT().CreateHostWindow(mock.Anything, mock.Anything).Return(port.WindowHandle("win-1"), nil).Twice()
	windows.EXPECT().DestroyHostWindow(mock.Anything, port.WindowHandle("win-1")).Return(nil).Once()

	arr, err := uc.Detach(ctx, []entity.Key{"b"}, entity.Rect{W: 10, H: 10})
	require.NoError(t, err)

	closed, err := uc.CloseItem(ctx, "b")
	require.NoError(t, err)
	require.True(t, closed)
	assert.Equal(t, 2, uc.Set().Len(), "reserved key keeps the arrangement")
	_, ok := uc.WindowOf(arr)
	assert.False(t, ok)

	require.NoError(t, uc.PutItem(ctx, "b", entity.NewBasicItem("b again")))
	_, ok = uc.WindowOf(arr)
	assert.True(t, ok)
}

func TestManageDocking_CloseWindow(t *testing.T) {
	ctx := testContext()
	windows := portmocks.NewMockHostWindowProvider(t)
	uc := usecase.NewManageDockingUseCase(nil, windows, testOptions())
	pinned := &entity.BasicItem{Title: "Pinned", Pinned: true}
	c := entity.NewBasicItem("c")
	require.NoError(t, uc.PutItem(ctx, "a", entity.NewBasicItem("a")))
	require.NoError(t, uc.PutItem(ctx, "b", pinned))
	require.NoError(t, uc.PutItem(ctx, "c", c))

	bounds := entity.Rect{X: 30, Y: 5, W: 10, H: 10}
	windows.EXPECT().
		CreateHostWindow(mock.Anything, mock.MatchedBy(func(req port.HostWindowRequest) bool {
			return req.Bounds == bounds
		})).
		Return(port.WindowHandle("win-1"), nil).
		Once()
	windows.EXPECT().DestroyHostWindow(mock.Anything, port.WindowHandle("win-1")).Return(nil).Once()

	arr, err := uc.Detach(ctx, []entity.Key{"b", "c"}, bounds)
	require.NoError(t, err)

	closed, err := uc.CloseWindow(ctx, "win-1")
	require.NoError(t, err)
	assert.False(t, closed)
	assert.Equal(t, 2, uc.Set().Len())
	assert.True(t, c.IsAttached(), "a refusal leaves every item in place")

	pinned.Pinned = false
	closed, err = uc.CloseWindow(ctx, "win-1")
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, 2, uc.Set().Len(), "reserved keys keep the arrangement")
	assert.Equal(t, []entity.Key{"a", "b", "c"}, uc.AllKeys())
	assert.False(t, pinned.IsAttached())
	assert.False(t, c.IsAttached())
	item, ok := uc.Item("c")
	assert.True(t, ok)
	assert.Nil(t, item)
	_, ok = uc.WindowOf(arr)
	assert.False(t, ok)
	assert.Equal(t, bounds, arr.ScreenBounds())

	_, err = uc.CloseWindow(ctx, "win-1")
	assert.ErrorIs(t, err, usecase.ErrWindowNotFound)

	windows.EXPECT().
		CreateHostWindow(mock.Anything, mock.MatchedBy(func(req port.HostWindowRequest) bool {
			return req.Bounds == bounds && req.ArrangementID == arr.ID()
		})).
		Return(port.WindowHandle("win-2"), nil).
		Once()

	require.NoError(t, uc.PutItem(ctx, "c", c))
	assert.Same(t, arr, uc.ArrangementForWindow("win-2"))
	assert.True(t, c.IsAttached())
}

func TestManageDocking_DetachWindowFailureRestoresKeys(t *testing.T) {
	ctx := testContext()
	windows := portmocks.NewMockHostWindowProvider(t)
	uc := usecase.NewManageDockingUseCase(nil, windows, testOptions())
	a := entity.NewBasicItem("a")
	b := entity.NewBasicItem("b")
	require.NoError(t, uc.PutItem(ctx, "a", a))
	require.NoError(t, uc.PutItem(ctx, "b", b))
	home := uc.Set().Main().FirstContainer()

	windows.EXPECT().CreateHostWindow(mock.Anything, mock.Anything).Return(port.WindowHandle(""), errors.New("no display")).Once()

	arr, err := uc.Detach(ctx, []entity.Key{"b"}, entity.Rect{W: 10, H: 10})
	require.Error(t, err)
	assert.Nil(t, arr)

	assert.Equal(t, 1, uc.Set().Len())
	_, c := uc.Set().FindContainer("b")
	assert.Same(t, home, c)
	assert.Equal(t, []entity.Key{"a", "b"}, home.Keys())
	assert.True(t, b.IsAttached())
	assert.NoError(t, uc.Set().ValidateKeys())
}

func TestManageDocking_WindowMovedAndDisplayable(t *testing.T) {
	ctx := testContext()
	windows := portmocks.NewMockHostWindowProvider(t)
	uc := usecase.NewManageDockingUseCase(nil, windows, testOptions())
	require.NoError(t, uc.PutItem(ctx, "a", entity.NewBasicItem("a")))
	require.NoError(t, uc.PutItem(ctx, "b", entity.NewBasicItem("b")))

	windows.EXPECT().CreateHostWindow(mock.Anything, mock.Anything).Return(port.WindowHandle("win-1"), nil).Once()
	arr, err := uc.Detach(ctx, []entity.Key{"b"}, entity.Rect{W: 10, H: 10})
	require.NoError(t, err)

	moved := entity.Rect{X: 5, Y: 6, W: 70, H: 30}
	require.NoError(t, uc.WindowMoved("win-1", moved))
	assert.Equal(t, moved, arr.ScreenBounds())
	assert.ErrorIs(t, uc.WindowMoved("nope", moved), usecase.ErrWindowNotFound)

	windows.EXPECT().DestroyHostWindow(mock.Anything, port.WindowHandle("win-1")).Return(nil).Once()
	require.NoError(t, uc.SetDisplayable(ctx, false))
	_, ok := uc.WindowOf(arr)
	assert.False(t, ok)

	windows.EXPECT().
		CreateHostWindow(mock.Anything, port.HostWindowRequest{ArrangementID: arr.ID(), Bounds: moved}).
		Return(port.WindowHandle("win-2"), nil).
		Once()
	require.NoError(t, uc.SetDisplayable(ctx, true))
	handle, ok := uc.WindowOf(arr)
	require.True(t, ok)
	assert.Equal(t, port.WindowHandle("win-2"), handle)
}

func TestManageDocking_ReplaceArrangements(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageDockingUseCase(entity.NewArrangementSet(seqFactory()), nil, testOptions())
	old := entity.NewBasicItem("old")
	require.NoError(t, uc.PutItem(ctx, "old", old))

	f := uc.Set().Factory()
	fresh := entity.NewBasicItem("fresh")
	c := f.NewContainer()
	_, err := c.Put("fresh", fresh)
	require.NoError(t, err)
	next := f.NewArrangement(c)

	require.NoError(t, uc.ReplaceArrangements(ctx, []*entity.Arrangement{next}))

	assert.False(t, old.IsAttached())
	assert.True(t, fresh.IsAttached())
	assert.Same(t, next, uc.Set().Main())
	assert.Equal(t, []entity.Key{"fresh"}, uc.AllKeys())
	assert.True(t, c.Visible())
}

func TestManageDocking_ReplaceArrangementsRejectsDuplicates(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageDockingUseCase(entity.NewArrangementSet(seqFactory()), nil, testOptions())
	require.NoError(t, uc.PutItem(ctx, "keep", entity.NewBasicItem("keep")))
	before := uc.Set().Main()

	f := uc.Set().Factory()
	c1 := f.NewContainer()
	_, _ = c1.Put("dup", nil)
	c2 := f.NewContainer()
	_, _ = c2.Put("dup", nil)

	err := uc.ReplaceArrangements(ctx, []*entity.Arrangement{f.NewArrangement(c1), f.NewArrangement(c2)})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	assert.Same(t, before, uc.Set().Main())
}
