// Package xmldoc reads and writes arrangement sets as XML documents.
//
// The element tree mirrors the region tree one to one:
//
//	<set version="1">
//	  <arrangement x="0" y="0" width="800" height="600">
//	    <split orientation="left" weight="0.3">
//	      <container>
//	        <entry key="outline" selected="true"></entry>
//	      </container>
//	      <bridge key="documents"></bridge>
//	    </split>
//	  </arrangement>
//	</set>
package xmldoc

import (
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// DefaultVersion is the document version written when none is configured.
const DefaultVersion = "1"

const (
	elemSet         = "set"
	elemArrangement = "arrangement"
	elemSplit       = "split"
	elemContainer   = "container"
	elemEntry       = "entry"
	elemBridge      = "bridge"

	attrVersion     = "version"
	attrX           = "x"
	attrY           = "y"
	attrWidth       = "width"
	attrHeight      = "height"
	attrOrientation = "orientation"
	attrWeight      = "weight"
	attrKey         = "key"
	attrSelected    = "selected"
	attrNull        = "null"

	valueTrue = "true"
)

// Codec implements port.LayoutCodec.
type Codec struct {
	version string
	keys    port.KeyCodec
	indent  string
}

var _ port.LayoutCodec = (*Codec)(nil)

// Option configures a Codec.
type Option func(*Codec)

// WithVersion sets the version written to and required from documents.
// An empty version accepts any document.
func WithVersion(version string) Option {
	return func(c *Codec) { c.version = version }
}

// WithKeyCodec replaces the string-only key representation.
func WithKeyCodec(keys port.KeyCodec) Option {
	return func(c *Codec) {
		if keys != nil {
			c.keys = keys
		}
	}
}

// WithIndent sets the per-level indentation. An empty indent writes the
// document on a single line.
func WithIndent(indent string) Option {
	return func(c *Codec) { c.indent = indent }
}

// New creates a codec writing DefaultVersion documents with string keys.
func New(opts ...Option) *Codec {
	c := &Codec{
		version: DefaultVersion,
		keys:    StringKeys{},
		indent:  "  ",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Version implements port.LayoutCodec.
func (c *Codec) Version() string { return c.version }

// StringKeys persists keys that are Go strings and reads every key back as a string.
type StringKeys struct{}

// FormatKey implements port.KeyCodec.
func (StringKeys) FormatKey(key entity.Key) (string, error) {
	s, ok := key.(string)
	if !ok {
		return "", fmt.Errorf("%w: only string keys can be persisted, got %T", entity.ErrFormat, key)
	}
	return s, nil
}

// ParseKey implements port.KeyCodec.
func (StringKeys) ParseKey(s string) (entity.Key, error) {
	return s, nil
}
