package repository

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutRepository persists named layout documents.
type LayoutRepository interface {
	// Save inserts or replaces the layout with the same name.
	Save(ctx context.Context, layout *entity.SavedLayout) error

	// Get returns the layout with the given name, or nil if none exists.
	Get(ctx context.Context, name string) (*entity.SavedLayout, error)

	// List returns every stored layout, most recently saved first.
	List(ctx context.Context) ([]*entity.SavedLayout, error)

	// Delete removes a layout. Deleting an unknown name is not an error.
	Delete(ctx context.Context, name string) error
}
