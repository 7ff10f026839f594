package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
)

// LazyLayoutRepository opens the database behind provider on first use.
type LazyLayoutRepository struct {
	provider port.DatabaseProvider

	mu   sync.Mutex
	repo repository.LayoutRepository
}

var _ repository.LayoutRepository = (*LazyLayoutRepository)(nil)

// NewLazyLayoutRepository creates a layout repository that defers opening the database.
func NewLazyLayoutRepository(provider port.DatabaseProvider) *LazyLayoutRepository {
	return &LazyLayoutRepository{provider: provider}
}

func (r *LazyLayoutRepository) get(ctx context.Context) (repository.LayoutRepository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.repo != nil {
		return r.repo, nil
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	r.repo = NewLayoutRepository(db)
	return r.repo, nil
}

func (r *LazyLayoutRepository) Save(ctx context.Context, layout *entity.SavedLayout) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, layout)
}

func (r *LazyLayoutRepository) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, name)
}

func (r *LazyLayoutRepository) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func (r *LazyLayoutRepository) Delete(ctx context.Context, name string) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, name)
}
