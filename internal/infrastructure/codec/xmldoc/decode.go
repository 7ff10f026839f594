package xmldoc

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// frame is one open element of the document.
type frame struct {
	name string

	// arrangement
	bounds entity.Rect

	// split
	orientation entity.Orientation
	weight      float64

	// arrangement and split children, in document order
	children []entity.Region

	// container and bridge
	region entity.Region
}

// maxChildren is how many regions an element may hold.
func (f *frame) maxChildren() int {
	switch f.name {
	case elemArrangement:
		return 1
	case elemSplit:
		return 2
	default:
		return 0
	}
}

type decoder struct {
	codec    *Codec
	factory  *entity.Factory
	resolver port.ItemResolver

	stack        []*frame
	arrangements []*entity.Arrangement
	done         bool
}

// Decode implements port.LayoutCodec. Regions are built with factory and
// items are looked up through resolver; nothing is attached to a host.
func (c *Codec) Decode(ctx context.Context, r io.Reader, factory *entity.Factory, resolver port.ItemResolver) ([]*entity.Arrangement, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no reader to decode from", entity.ErrState)
	}
	if factory == nil {
		factory = entity.NewFactory(nil)
	}
	if resolver == nil {
		resolver = nullResolver{}
	}

	d := &decoder{codec: c, factory: factory, resolver: resolver}
	xd := xml.NewDecoder(r)
	for {
		tok, err := xd.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrFormat, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := d.open(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if err := d.close(); err != nil {
				return nil, err
			}
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) > 0 {
				return nil, formatErr(xd, "unexpected text %q", strings.TrimSpace(string(t)))
			}
		}
	}
	if !d.done {
		return nil, fmt.Errorf("%w: document has no complete %s element", entity.ErrFormat, elemSet)
	}
	if err := entity.ValidateUniqueKeys(d.arrangements); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrFormat, err)
	}

	logging.FromContext(ctx).Debug().
		Int("arrangements", len(d.arrangements)).
		Msg("layout document decoded")
	return d.arrangements, nil
}

func (d *decoder) top() *frame {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

func (d *decoder) open(se xml.StartElement) error {
	name := se.Name.Local
	parent := d.top()

	if parent == nil {
		if name != elemSet || d.done {
			return fmt.Errorf("%w: unexpected root element <%s>", entity.ErrFormat, name)
		}
		if v := d.codec.version; v != "" {
			if got, _ := attrValue(se, attrVersion); got != v {
				return fmt.Errorf("%w: document version %q, expected %q", entity.ErrFormat, got, v)
			}
		}
		d.push(&frame{name: name})
		return nil
	}

	switch parent.name {
	case elemSet:
		if name != elemArrangement {
			return unexpected(name, parent.name)
		}
		bounds, err := parseBounds(se)
		if err != nil {
			return err
		}
		d.push(&frame{name: name, bounds: bounds})
		return nil

	case elemContainer:
		if name != elemEntry {
			return unexpected(name, parent.name)
		}
		if err := d.entry(parent.region.(*entity.Container), se); err != nil {
			return err
		}
		d.push(&frame{name: name})
		return nil

	case elemArrangement, elemSplit:
		if len(parent.children) >= parent.maxChildren() {
			return fmt.Errorf("%w: <%s> holds more than %d region(s)", entity.ErrFormat, parent.name, parent.maxChildren())
		}
	default:
		return unexpected(name, parent.name)
	}

	switch name {
	case elemSplit:
		o, err := parseOrientation(se)
		if err != nil {
			return err
		}
		w, err := parseWeight(se)
		if err != nil {
			return err
		}
		d.push(&frame{name: name, orientation: o, weight: w})
	case elemContainer:
		c := d.factory.NewContainer()
		parent.children = append(parent.children, c)
		d.push(&frame{name: name, region: c})
	case elemBridge:
		b, err := d.bridge(se)
		if err != nil {
			return err
		}
		parent.children = append(parent.children, b)
		d.push(&frame{name: name, region: b})
	default:
		return unexpected(name, parent.name)
	}
	return nil
}

func (d *decoder) close() error {
	f := d.top()
	if f == nil {
		return fmt.Errorf("%w: unbalanced end element", entity.ErrFormat)
	}
	d.stack = d.stack[:len(d.stack)-1]

	switch f.name {
	case elemSet:
		d.done = true
	case elemArrangement:
		if len(f.children) != 1 {
			return fmt.Errorf("%w: <%s> must hold exactly one region", entity.ErrFormat, elemArrangement)
		}
		arr := d.factory.NewArrangement(f.children[0])
		arr.SetScreenBounds(f.bounds)
		d.arrangements = append(d.arrangements, arr)
	case elemSplit:
		if len(f.children) != 2 {
			return fmt.Errorf("%w: <%s> must hold exactly two regions, got %d", entity.ErrFormat, elemSplit, len(f.children))
		}
		s, err := d.factory.NewSplit(f.children[0], f.children[1], f.orientation, f.weight)
		if err != nil {
			return fmt.Errorf("%w: %w", entity.ErrFormat, err)
		}
		parent := d.top()
		parent.children = append(parent.children, s)
	}
	return nil
}

func (d *decoder) push(f *frame) {
	d.stack = append(d.stack, f)
}

func (d *decoder) entry(c *entity.Container, se xml.StartElement) error {
	key, err := d.parseKey(se)
	if err != nil {
		return err
	}
	if c.Contains(key) {
		return fmt.Errorf("%w: duplicate entry %v", entity.ErrFormat, key)
	}

	var item entity.Item
	if !boolAttr(se, attrNull) {
		item = d.resolver.ResolveItem(key)
	}
	if _, err := c.Put(key, item); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrFormat, err)
	}
	if item != nil && boolAttr(se, attrSelected) {
		_ = c.Select(key)
	}
	return nil
}

func (d *decoder) bridge(se xml.StartElement) (*entity.Bridge, error) {
	b := d.factory.NewBridge()
	if _, ok := attrValue(se, attrKey); !ok {
		return b, nil
	}
	key, err := d.parseKey(se)
	if err != nil {
		return nil, err
	}
	var content entity.Content
	if !boolAttr(se, attrNull) {
		content = d.resolver.ResolveContent(key)
	}
	if _, err := b.Set(key, content); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrFormat, err)
	}
	return b, nil
}

func (d *decoder) parseKey(se xml.StartElement) (entity.Key, error) {
	s, ok := attrValue(se, attrKey)
	if !ok {
		return nil, fmt.Errorf("%w: <%s> has no %s", entity.ErrFormat, se.Name.Local, attrKey)
	}
	key, err := d.codec.keys.ParseKey(s)
	if err != nil {
		if errors.Is(err, entity.ErrFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: key %q: %w", entity.ErrFormat, s, err)
	}
	return key, nil
}

func parseBounds(se xml.StartElement) (entity.Rect, error) {
	var r entity.Rect
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{attrX, &r.X},
		{attrY, &r.Y},
		{attrWidth, &r.W},
		{attrHeight, &r.H},
	} {
		s, ok := attrValue(se, f.name)
		if !ok {
			return r, fmt.Errorf("%w: <%s> has no %s", entity.ErrFormat, elemArrangement, f.name)
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return r, fmt.Errorf("%w: <%s> %s=%q is not an integer", entity.ErrFormat, elemArrangement, f.name, s)
		}
		*f.dst = v
	}
	return r, nil
}

func parseOrientation(se xml.StartElement) (entity.Orientation, error) {
	s, _ := attrValue(se, attrOrientation)
	o, err := entity.ParseOrientation(s)
	if err != nil || !o.IsDirectional() {
		return o, fmt.Errorf("%w: <%s> orientation %q is not a side", entity.ErrFormat, elemSplit, s)
	}
	return o, nil
}

func parseWeight(se xml.StartElement) (float64, error) {
	s, ok := attrValue(se, attrWeight)
	if !ok {
		return entity.DefaultWeight, nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> weight %q is not a number", entity.ErrFormat, elemSplit, s)
	}
	return w, nil
}

func attrValue(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func boolAttr(se xml.StartElement, name string) bool {
	v, _ := attrValue(se, name)
	b, _ := strconv.ParseBool(v)
	return b
}

func unexpected(name, parent string) error {
	return fmt.Errorf("%w: unexpected <%s> inside <%s>", entity.ErrFormat, name, parent)
}

func formatErr(xd *xml.Decoder, format string, args ...any) error {
	line, col := xd.InputPos()
	return fmt.Errorf("%w: line %d column %d: %s", entity.ErrFormat, line, col, fmt.Sprintf(format, args...))
}

type nullResolver struct{}

func (nullResolver) ResolveItem(entity.Key) entity.Item       { return nil }
func (nullResolver) ResolveContent(entity.Key) entity.Content { return nil }
