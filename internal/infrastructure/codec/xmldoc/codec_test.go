package xmldoc_test

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/codec/xmldoc"
	"github.com/bnema/dockyard/internal/logging"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<set version="1">
  <arrangement x="0" y="0" width="800" height="600">
    <split orientation="left" weight="0.3">
      <container>
        <entry key="A" selected="true"></entry>
      </container>
      <split orientation="bottom" weight="0.25">
        <container>
          <entry key="B"></entry>
          <entry key="C" selected="true"></entry>
          <entry key="D" null="true"></entry>
        </container>
        <bridge key="docs"></bridge>
      </split>
    </split>
  </arrangement>
  <arrangement x="40" y="50" width="300" height="200">
    <container>
      <entry key="E" selected="true"></entry>
    </container>
  </arrangement>
</set>
`

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func newResolver(t *testing.T) *portmocks.MockItemResolver {
	resolver := portmocks.NewMockItemResolver(t)
	for _, key := range []string{"A", "B", "C", "E"} {
		resolver.EXPECT().ResolveItem(key).Return(entity.NewBasicItem(key)).Once()
	}
	resolver.EXPECT().ResolveContent("docs").Return("document area").Once()
	return resolver
}

func TestCodec_RoundTripIsByteIdentical(t *testing.T) {
	ctx := testContext()
	codec := xmldoc.New()

	arrangements, err := codec.Decode(ctx, strings.NewReader(sampleDocument), entity.NewFactory(nil), newResolver(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(ctx, &buf, arrangements))
	assert.Equal(t, sampleDocument, buf.String())
}

func TestCodec_DecodeBuildsTree(t *testing.T) {
	arrangements, err := xmldoc.New().Decode(testContext(), strings.NewReader(sampleDocument), entity.NewFactory(nil), newResolver(t))
	require.NoError(t, err)
	require.Len(t, arrangements, 2)

	main := arrangements[0]
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 800, H: 600}, main.ScreenBounds())

	root, ok := main.Root().(*entity.Split)
	require.True(t, ok)
	assert.Equal(t, entity.OrientationLeft, root.Orientation())
	assert.Equal(t, entity.AxisVertical, root.Axis())
	assert.InDelta(t, 0.3, root.Weight(), 1e-9)

	a, ok := root.Main().(*entity.Container)
	require.True(t, ok)
	assert.Equal(t, []entity.Key{"A"}, a.Keys())

	inner, ok := root.Remainder().(*entity.Split)
	require.True(t, ok)
	bc, ok := inner.Main().(*entity.Container)
	require.True(t, ok)
	assert.Equal(t, []entity.Key{"B", "C", "D"}, bc.Keys())
	assert.Equal(t, "C", bc.SelectedKey())
	d, err := bc.Item("D")
	require.NoError(t, err)
	assert.Nil(t, d, "null entries stay reserved")

	bridge, ok := inner.Remainder().(*entity.Bridge)
	require.True(t, ok)
	assert.Equal(t, "docs", bridge.Key())
	assert.Equal(t, "document area", bridge.Content())

	assert.Equal(t, entity.Rect{X: 40, Y: 50, W: 300, H: 200}, arrangements[1].ScreenBounds())
	assert.Equal(t, []entity.Key{"E"}, arrangements[1].Keys())
}

func TestCodec_EncodeLiveTree(t *testing.T) {
	f := entity.NewFactory(nil)
	left := f.NewContainer()
	_, _ = left.Put("A", entity.NewBasicItem("A"))
	right := f.NewContainer()
	_, _ = right.Put("B", entity.NewBasicItem("B"))
	_, _ = right.Put("C", entity.NewBasicItem("C"))
	arr := f.NewArrangement(right)
	_, err := arr.Split(right, left, entity.OrientationLeft, 0.3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, xmldoc.New(xmldoc.WithIndent("")).Encode(testContext(), &buf, []*entity.Arrangement{arr}))
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
			`<set version="1"><arrangement x="0" y="0" width="0" height="0">`+
			`<split orientation="left" weight="0.3">`+
			`<container><entry key="A" selected="true"></entry></container>`+
			`<container><entry key="B" selected="true"></entry><entry key="C"></entry></container>`+
			`</split></arrangement></set>`+"\n",
		buf.String())
}

func TestCodec_DecodeErrors(t *testing.T) {
	wrap := func(body string) string {
		return `<set version="1"><arrangement x="0" y="0" width="10" height="10">` + body + `</arrangement></set>`
	}
	leaf := `<container><entry key="k"></entry></container>`

	tests := []struct {
		name string
		doc  string
	}{
		{"empty input", ""},
		{"truncated", `<set version="1"><arrangement x="0"`},
		{"unbalanced", `<set version="1"></arrangement></set>`},
		{"version mismatch", `<set version="2"></set>`},
		{"missing version", `<set></set>`},
		{"wrong root", `<layout version="1"></layout>`},
		{"second root", `<set version="1"></set><set version="1"></set>`},
		{"unknown element", wrap(`<panel></panel>`)},
		{"bad bound", `<set version="1"><arrangement x="zero" y="0" width="1" height="1">` + leaf + `</arrangement></set>`},
		{"missing bound", `<set version="1"><arrangement x="0" y="0" width="1">` + leaf + `</arrangement></set>`},
		{"empty arrangement", wrap(``)},
		{"two roots in arrangement", wrap(leaf + `<bridge key="b"></bridge>`)},
		{"split with one child", wrap(`<split orientation="top" weight="0.5">` + leaf + `</split>`)},
		{"split with three children", wrap(`<split orientation="top" weight="0.5">` +
			`<container></container><container></container><container></container></split>`)},
		{"center split", wrap(`<split orientation="center" weight="0.5"><container></container><container></container></split>`)},
		{"bad weight", wrap(`<split orientation="top" weight="half"><container></container><container></container></split>`)},
		{"entry without key", wrap(`<container><entry></entry></container>`)},
		{"entry outside container", wrap(`<entry key="k"></entry>`)},
		{"nested entry", wrap(`<container><entry key="k"><entry key="j"></entry></entry></container>`)},
		{"duplicate entry", wrap(`<container><entry key="k" null="true"></entry><entry key="k" null="true"></entry></container>`)},
		{"duplicate across regions", wrap(`<split orientation="top" weight="0.5">` +
			`<container><entry key="k" null="true"></entry></container><bridge key="k" null="true"></bridge></split>`)},
		{"stray text", wrap(`<container>hello</container>`)},
	}

	codec := xmldoc.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arrangements, err := codec.Decode(testContext(), strings.NewReader(tt.doc), nil, nil)
			assert.ErrorIs(t, err, entity.ErrFormat)
			assert.Nil(t, arrangements)
		})
	}
}

func TestCodec_EmptyVersionAcceptsAnyDocument(t *testing.T) {
	doc := `<set version="7"><arrangement x="0" y="0" width="1" height="1"><container></container></arrangement></set>`
	arrangements, err := xmldoc.New(xmldoc.WithVersion("")).Decode(testContext(), strings.NewReader(doc), nil, nil)
	require.NoError(t, err)
	assert.Len(t, arrangements, 1)
}

func TestCodec_NullEntriesSkipResolver(t *testing.T) {
	doc := `<set version="1"><arrangement x="0" y="0" width="1" height="1">` +
		`<split orientation="right" weight="0.5">` +
		`<container><entry key="a" null="true"></entry></container>` +
		`<bridge key="b" null="true"></bridge>` +
		`</split></arrangement></set>`

	// no expectations: any resolver call fails the test
	resolver := portmocks.NewMockItemResolver(t)
	arrangements, err := xmldoc.New().Decode(testContext(), strings.NewReader(doc), nil, resolver)
	require.NoError(t, err)
	assert.Equal(t, []entity.Key{"a", "b"}, arrangements[0].Keys())
}

func TestCodec_MissingCollaborators(t *testing.T) {
	codec := xmldoc.New()

	_, err := codec.Decode(testContext(), nil, nil, nil)
	assert.ErrorIs(t, err, entity.ErrState)

	err = codec.Encode(testContext(), nil, nil)
	assert.ErrorIs(t, err, entity.ErrState)
}

func TestCodec_StringKeysOnly(t *testing.T) {
	f := entity.NewFactory(nil)
	c := f.NewContainer()
	_, _ = c.Put(42, entity.NewBasicItem("answer"))

	var buf bytes.Buffer
	err := xmldoc.New().Encode(testContext(), &buf, []*entity.Arrangement{f.NewArrangement(c)})
	assert.ErrorIs(t, err, entity.ErrFormat)
}

type intKeys struct{}

func (intKeys) FormatKey(key entity.Key) (string, error) {
	n, ok := key.(int)
	if !ok {
		return "", fmt.Errorf("%w: want int key, got %T", entity.ErrFormat, key)
	}
	return strconv.Itoa(n), nil
}

func (intKeys) ParseKey(s string) (entity.Key, error) {
	return strconv.Atoi(s)
}

func TestCodec_CustomKeyCodec(t *testing.T) {
	ctx := testContext()
	codec := xmldoc.New(xmldoc.WithKeyCodec(intKeys{}))

	f := entity.NewFactory(nil)
	c := f.NewContainer()
	_, _ = c.Put(7, nil)
	_, _ = c.Put(9, nil)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(ctx, &buf, []*entity.Arrangement{f.NewArrangement(c)}))

	arrangements, err := codec.Decode(ctx, &buf, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []entity.Key{7, 9}, arrangements[0].Keys())

	bad := `<set version="1"><arrangement x="0" y="0" width="1" height="1"><container><entry key="seven"></entry></container></arrangement></set>`
	_, err = codec.Decode(ctx, strings.NewReader(bad), nil, nil)
	assert.ErrorIs(t, err, entity.ErrFormat)
}

func TestCodec_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := xmldoc.New().Decode(ctx, strings.NewReader(sampleDocument), nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
