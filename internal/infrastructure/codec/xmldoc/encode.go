package xmldoc

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Encode implements port.LayoutCodec.
func (c *Codec) Encode(ctx context.Context, w io.Writer, arrangements []*entity.Arrangement) error {
	if w == nil {
		return fmt.Errorf("%w: no writer to encode to", entity.ErrState)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", c.indent)

	var set []xml.Attr
	if c.version != "" {
		set = append(set, attr(attrVersion, c.version))
	}
	if err := enc.EncodeToken(start(elemSet, set...)); err != nil {
		return err
	}
	for _, arr := range arrangements {
		if err := c.encodeArrangement(enc, arr); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(end(elemSet)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Int("arrangements", len(arrangements)).
		Str("version", c.version).
		Msg("layout document encoded")
	return nil
}

func (c *Codec) encodeArrangement(enc *xml.Encoder, arr *entity.Arrangement) error {
	b := arr.ScreenBounds()
	err := enc.EncodeToken(start(elemArrangement,
		attr(attrX, strconv.Itoa(b.X)),
		attr(attrY, strconv.Itoa(b.Y)),
		attr(attrWidth, strconv.Itoa(b.W)),
		attr(attrHeight, strconv.Itoa(b.H)),
	))
	if err != nil {
		return err
	}
	if err := c.encodeRegion(enc, arr.Root()); err != nil {
		return err
	}
	return enc.EncodeToken(end(elemArrangement))
}

func (c *Codec) encodeRegion(enc *xml.Encoder, r entity.Region) error {
	switch n := r.(type) {
	case *entity.Split:
		err := enc.EncodeToken(start(elemSplit,
			attr(attrOrientation, n.Orientation().String()),
			attr(attrWeight, strconv.FormatFloat(n.Weight(), 'f', -1, 64)),
		))
		if err != nil {
			return err
		}
		if err := c.encodeRegion(enc, n.Main()); err != nil {
			return err
		}
		if err := c.encodeRegion(enc, n.Remainder()); err != nil {
			return err
		}
		return enc.EncodeToken(end(elemSplit))

	case *entity.Container:
		if err := enc.EncodeToken(start(elemContainer)); err != nil {
			return err
		}
		selected := n.Selected()
		for _, slot := range n.Slots() {
			key, err := c.keys.FormatKey(slot.Key())
			if err != nil {
				return err
			}
			attrs := []xml.Attr{attr(attrKey, key)}
			if slot.Item() == nil {
				attrs = append(attrs, attr(attrNull, valueTrue))
			} else if slot == selected {
				attrs = append(attrs, attr(attrSelected, valueTrue))
			}
			if err := enc.EncodeToken(start(elemEntry, attrs...)); err != nil {
				return err
			}
			if err := enc.EncodeToken(end(elemEntry)); err != nil {
				return err
			}
		}
		return enc.EncodeToken(end(elemContainer))

	case *entity.Bridge:
		var attrs []xml.Attr
		if n.HasKey() {
			key, err := c.keys.FormatKey(n.Key())
			if err != nil {
				return err
			}
			attrs = append(attrs, attr(attrKey, key))
			if n.Content() == nil {
				attrs = append(attrs, attr(attrNull, valueTrue))
			}
		}
		if err := enc.EncodeToken(start(elemBridge, attrs...)); err != nil {
			return err
		}
		return enc.EncodeToken(end(elemBridge))

	default:
		return fmt.Errorf("%w: cannot encode region %T", entity.ErrFormat, r)
	}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func start(name string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
}

func end(name string) xml.EndElement {
	return xml.EndElement{Name: xml.Name{Local: name}}
}
