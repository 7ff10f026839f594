package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

type layoutRepo struct {
	db *sql.DB
}

// NewLayoutRepository returns a LayoutRepository stored in db.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db}
}

func (r *layoutRepo) Save(ctx context.Context, layout *entity.SavedLayout) error {
	log := logging.FromContext(ctx)
	if err := entity.ValidateLayoutName(layout.Name); err != nil {
		return err
	}

	log.Debug().Str("name", layout.Name).Int("bytes", len(layout.Document)).Msg("saving layout")

	_, err := r.db.ExecContext(ctx, `
	INSERT INTO layouts(name, version, document, arrangement_count, key_count, saved_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
	 version=excluded.version,
	 document=excluded.document,
	 arrangement_count=excluded.arrangement_count,
	 key_count=excluded.key_count,
	 saved_at=excluded.saved_at;
	`, layout.Name, layout.Version, layout.Document, layout.Arrangements, layout.Keys, layout.SavedAt.UTC())
	return err
}

func (r *layoutRepo) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT name, version, document, arrangement_count, key_count, saved_at
	FROM layouts WHERE name = ?`, name)

	layout, err := scanLayout(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return layout, nil
}

func (r *layoutRepo) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT name, version, document, arrangement_count, key_count, saved_at
	FROM layouts ORDER BY saved_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.SavedLayout
	for rows.Next() {
		layout, err := scanLayout(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, layout)
	}
	return out, rows.Err()
}

func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("name", name).Msg("deleting layout")
	_, err := r.db.ExecContext(ctx, `DELETE FROM layouts WHERE name = ?`, name)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLayout(s scanner) (*entity.SavedLayout, error) {
	var (
		layout  entity.SavedLayout
		savedAt time.Time
	)
	if err := s.Scan(&layout.Name, &layout.Version, &layout.Document, &layout.Arrangements, &layout.Keys, &savedAt); err != nil {
		return nil, err
	}
	layout.SavedAt = savedAt.UTC()
	return &layout, nil
}
