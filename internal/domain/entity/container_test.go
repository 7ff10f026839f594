package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_PutSelectsFirstVisibleItem(t *testing.T) {
	c := newTestFactory().NewContainer()

	_, err := c.Put("a", nil)
	require.NoError(t, err)
	assert.Nil(t, c.SelectedKey())
	assert.Equal(t, 0, c.VisibleCount())

	_, err = c.Put("b", NewBasicItem("b"))
	require.NoError(t, err)
	assert.Equal(t, "b", c.SelectedKey())
	assert.Equal(t, []Key{"a", "b"}, c.Keys())
	assert.Equal(t, []Key{"b"}, c.VisibleKeys())
}

func TestContainer_PutReplacesExistingSlot(t *testing.T) {
	c := newTestFactory().NewContainer()
	first := NewBasicItem("first")
	second := NewBasicItem("second")

	_, err := c.Put("a", first)
	require.NoError(t, err)
	prev, err := c.Put("a", second)
	require.NoError(t, err)

	assert.Same(t, first, prev)
	assert.Len(t, c.Slots(), 1)
	item, err := c.Item("a")
	require.NoError(t, err)
	assert.Same(t, second, item)
}

func TestContainer_PutRejectsInvalidKeys(t *testing.T) {
	c := newTestFactory().NewContainer()

	_, err := c.Put(nil, NewBasicItem("x"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = c.Put([]string{"x"}, NewBasicItem("x"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestContainer_ItemUnknownKey(t *testing.T) {
	c := containerWith(newTestFactory(), "a")

	_, err := c.Item("missing")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = c.Remove("missing")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestContainer_RemoveMovesSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		remove   string
		expected Key
	}{
		{name: "next slot takes over", selected: "b", remove: "b", expected: "c"},
		{name: "previous slot when last removed", selected: "c", remove: "c", expected: "b"},
		{name: "unselected removal keeps selection", selected: "b", remove: "a", expected: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := containerWith(newTestFactory(), "a", "b", "c")
			require.NoError(t, c.Select(tt.selected))

			_, err := c.Remove(tt.remove)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, c.SelectedKey())
			assert.False(t, c.Contains(tt.remove))
		})
	}
}

func TestContainer_ClearKeepsReservedSlot(t *testing.T) {
	c := containerWith(newTestFactory(), "a", "b")
	require.NoError(t, c.Select("a"))

	prev, err := c.Clear("a")
	require.NoError(t, err)

	assert.NotNil(t, prev)
	assert.True(t, c.Contains("a"))
	assert.Equal(t, []Key{"b"}, c.VisibleKeys())
	assert.Equal(t, "b", c.SelectedKey())
}

func TestContainer_SelectRequiresVisibleSlot(t *testing.T) {
	c := containerWith(newTestFactory(), "a")
	_, _ = c.Put("reserved", nil)

	assert.ErrorIs(t, c.Select("reserved"), ErrInvalidArgument)
	assert.ErrorIs(t, c.Select("missing"), ErrInvalidArgument)
	assert.NoError(t, c.Select("a"))
}

func TestContainer_KeyAtUsesTabStrip(t *testing.T) {
	f := newTestFactory()
	c := containerWith(f, "a", "b")
	a := f.NewArrangement(c)
	a.UpdateVisibility()
	a.Layout(Rect{W: 40, H: 10}, LayoutOptions{Spacing: 1, TabWidth: 10, TabHeight: 1})

	key, ok := c.KeyAt(Point{X: 12, Y: 0})
	require.True(t, ok)
	assert.Equal(t, "b", key)

	_, ok = c.KeyAt(Point{X: 25, Y: 0})
	assert.False(t, ok)
	_, ok = c.KeyAt(Point{X: 2, Y: 5})
	assert.False(t, ok)
}

func TestBasicItem_PublishesToHost(t *testing.T) {
	c := newTestFactory().NewContainer()
	item := &BasicItem{Title: "Console", Icon: "terminal", Status: "idle"}
	_, err := c.Put("console", item)
	require.NoError(t, err)

	slot := c.Slot("console")
	item.Attached(slot)
	item.SetStatus("running")

	assert.Equal(t, "Console", slot.Title())
	assert.Equal(t, "terminal", slot.Icon())
	assert.Equal(t, "running", slot.Status())
	assert.True(t, item.IsAttached())

	item.Pinned = true
	assert.False(t, item.Detaching())
	item.Detached()
	assert.False(t, item.IsAttached())
}
