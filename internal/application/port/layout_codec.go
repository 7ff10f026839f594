package port

import (
	"context"
	"io"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// KeyCodec converts keys to and from their persisted string form.
type KeyCodec interface {
	FormatKey(key entity.Key) (string, error)
	ParseKey(s string) (entity.Key, error)
}

// ItemResolver supplies the live item or content for a persisted key.
// A nil result leaves the key reserved but hidden.
type ItemResolver interface {
	ResolveItem(key entity.Key) entity.Item
	ResolveContent(key entity.Key) entity.Content
}

// LayoutCodec writes and reads layout documents.
type LayoutCodec interface {
	// Encode writes the arrangements as one document.
	Encode(ctx context.Context, w io.Writer, arrangements []*entity.Arrangement) error
	// Decode reads a document into new, detached arrangements built with
	// factory. Nothing is returned unless the whole document is valid.
	Decode(ctx context.Context, r io.Reader, factory *entity.Factory, resolver ItemResolver) ([]*entity.Arrangement, error)
	// Version returns the document version written and accepted.
	Version() string
}
