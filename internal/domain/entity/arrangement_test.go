package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_WeightIsClamped(t *testing.T) {
	s := newTestFactory().newSplit()

	for _, tt := range []struct {
		in, want float64
	}{
		{in: -0.5, want: 0},
		{in: 0.3, want: 0.3},
		{in: 7, want: 1},
	} {
		s.SetWeight(tt.in)
		assert.InDelta(t, tt.want, s.Weight(), 1e-9)
	}
}

func TestSplit_OrientationRoundTrip(t *testing.T) {
	s := newTestFactory().newSplit()
	for _, o := range []Orientation{OrientationTop, OrientationBottom, OrientationLeft, OrientationRight} {
		require.NoError(t, s.SetOrientation(o))
		assert.Equal(t, o, s.Orientation())
	}
	assert.ErrorIs(t, s.SetOrientation(OrientationCenter), ErrInvalidArgument)

	require.NoError(t, s.SetOrientation(OrientationLeft))
	assert.Equal(t, AxisVertical, s.Axis())
	assert.Equal(t, PrimaryStart, s.Primary())
}

func TestArrangement_SplitReplacesTarget(t *testing.T) {
	f := newTestFactory()
	y := containerWith(f, "a")
	a := f.NewArrangement(y)
	c := containerWith(f, "c")

	split, err := a.Split(y, c, OrientationLeft, 0.5)
	require.NoError(t, err)

	assert.Same(t, split, a.Root())
	assert.Same(t, c, split.Main())
	assert.Same(t, y, split.Remainder())
	assert.Equal(t, AxisVertical, split.Axis())

	parent, err := a.ParentOf(c)
	require.NoError(t, err)
	assert.Same(t, split, parent)
}

func TestArrangement_SplitErrors(t *testing.T) {
	f := newTestFactory()
	y := containerWith(f, "a")
	a := f.NewArrangement(y)
	stranger := f.NewContainer()

	_, err := a.Split(stranger, f.NewContainer(), OrientationTop, 0.5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = a.Split(y, f.NewContainer(), OrientationCenter, 0.5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = a.Split(y, y, OrientationTop, 0.5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArrangement_UnsplitRestoresPreviousShape(t *testing.T) {
	f := newTestFactory()
	left := containerWith(f, "a")
	right := containerWith(f, "b")
	a := f.NewArrangement(left)
	_, err := a.Split(left, right, OrientationRight, 0.5)
	require.NoError(t, err)

	nested := containerWith(f, "c")
	_, err = a.Split(right, nested, OrientationTop, 0.25)
	require.NoError(t, err)
	require.Equal(t, 2, a.SplitCount())

	require.NoError(t, a.Unsplit(nested))

	assert.Equal(t, 1, a.SplitCount())
	root, ok := a.Root().(*Split)
	require.True(t, ok)
	assert.Same(t, right, root.Main())
	assert.Same(t, left, root.Remainder())
	assert.False(t, a.Contains(nested))
}

func TestArrangement_UnsplitRootLeavesEmptyContainer(t *testing.T) {
	f := newTestFactory()
	b := f.NewBridge()
	a := f.NewArrangement(b)

	require.NoError(t, a.Unsplit(b))

	c, ok := a.Root().(*Container)
	require.True(t, ok)
	assert.False(t, c.HasKeys())
	assert.ErrorIs(t, a.Unsplit(b), ErrInvalidArgument)
}

func TestArrangement_UpdateVisibility(t *testing.T) {
	f := newTestFactory()
	shown := containerWith(f, "a")
	hidden := f.NewContainer()
	_, _ = hidden.Put("reserved", nil)
	a := f.NewArrangement(shown)
	split, err := a.Split(shown, hidden, OrientationTop, 0.5)
	require.NoError(t, err)

	assert.True(t, a.UpdateVisibility())
	assert.True(t, shown.Visible())
	assert.False(t, hidden.Visible())
	assert.True(t, split.Visible())

	// idempotent
	assert.True(t, a.UpdateVisibility())
	assert.False(t, hidden.Visible())
}

func TestArrangement_UpdateVisibilityKeepsOneContainer(t *testing.T) {
	f := newTestFactory()
	first := f.NewContainer()
	_, _ = first.Put("x", nil)
	second := f.NewContainer()
	_, _ = second.Put("y", nil)
	a := f.NewArrangement(second)
	_, err := a.Split(second, first, OrientationTop, 0.5)
	require.NoError(t, err)

	assert.False(t, a.UpdateVisibility())
	assert.True(t, first.Visible())
	assert.False(t, second.Visible())
	assert.True(t, a.Root().Visible())
}

func TestArrangement_Lookups(t *testing.T) {
	f := newTestFactory()
	x := containerWith(f, "a", "b")
	br := f.NewBridge()
	_, err := br.Set("docs", "content")
	require.NoError(t, err)
	a := f.NewArrangement(x)
	_, err = a.Split(x, br, OrientationBottom, 0.5)
	require.NoError(t, err)

	assert.Same(t, x, a.FindContainer("b"))
	assert.Same(t, br, a.FindBridge("docs"))
	assert.Nil(t, a.FindContainer("docs"))
	assert.Same(t, x, a.FirstContainer())
	assert.Equal(t, []Key{"docs", "a", "b"}, a.Keys())
	assert.True(t, a.HasKeys())
	assert.Same(t, x, a.FindRegion(x.ID()))
}

func TestArrangement_WalkStopsEarly(t *testing.T) {
	f := newTestFactory()
	x := containerWith(f, "a")
	a := f.NewArrangement(x)
	_, err := a.Split(x, containerWith(f, "b"), OrientationTop, 0.5)
	require.NoError(t, err)

	visited := 0
	a.Walk(func(Region, *Split) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}
