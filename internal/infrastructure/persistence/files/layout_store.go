// Package files stores saved layouts as one JSON file per layout using diskv.
package files

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	fileSuffix = ".layout.json"

	// DefaultCacheSizeMax bounds diskv's read cache when none is configured.
	DefaultCacheSizeMax uint64 = 1 << 20
)

// envelope is the on-disk form of a saved layout.
type envelope struct {
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Arrangements int       `json:"arrangements"`
	Keys         int       `json:"keys"`
	SavedAt      time.Time `json:"saved_at"`
	Document     string    `json:"document"`
}

// LayoutStore is a LayoutRepository over a directory of JSON files.
type LayoutStore struct {
	d        *diskv.Diskv
	basePath string
}

var _ repository.LayoutRepository = (*LayoutStore)(nil)

// NewLayoutStore opens (lazily creating) the layout directory at basePath.
func NewLayoutStore(basePath string, cacheSizeMax uint64) *LayoutStore {
	if cacheSizeMax == 0 {
		cacheSizeMax = DefaultCacheSizeMax
	}
	return &LayoutStore{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: nameToPath,
			InverseTransform:  pathToName,
			CacheSizeMax:      cacheSizeMax,
		}),
		basePath: basePath,
	}
}

// BasePath returns the directory holding the layout files.
func (s *LayoutStore) BasePath() string {
	return s.basePath
}

func (s *LayoutStore) Save(ctx context.Context, layout *entity.SavedLayout) error {
	if err := entity.ValidateLayoutName(layout.Name); err != nil {
		return err
	}
	data, err := json.MarshalIndent(envelope{
		Name:         layout.Name,
		Version:      layout.Version,
		Arrangements: layout.Arrangements,
		Keys:         layout.Keys,
		SavedAt:      layout.SavedAt.UTC(),
		Document:     string(layout.Document),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout %q: %w", layout.Name, err)
	}

	logging.FromContext(ctx).Debug().
		Str("name", layout.Name).
		Str("dir", s.basePath).
		Msg("writing layout file")

	return s.d.Write(layout.Name, data)
}

func (s *LayoutStore) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	if err := entity.ValidateLayoutName(name); err != nil {
		return nil, err
	}
	if !s.d.Has(name) {
		return nil, nil
	}
	return s.read(name)
}

func (s *LayoutStore) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	log := logging.FromContext(ctx)

	var out []*entity.SavedLayout
	for name := range s.d.Keys(ctx.Done()) {
		if name == "" {
			continue
		}
		layout, err := s.read(name)
		if err != nil {
			log.Warn().Err(err).Str("name", name).Msg("skipping unreadable layout file")
			continue
		}
		out = append(out, layout)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b *entity.SavedLayout) int {
		if c := b.SavedAt.Compare(a.SavedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (s *LayoutStore) Delete(ctx context.Context, name string) error {
	if err := entity.ValidateLayoutName(name); err != nil {
		return err
	}
	if !s.d.Has(name) {
		return nil
	}
	logging.FromContext(ctx).Debug().Str("name", name).Msg("removing layout file")
	return s.d.Erase(name)
}

func (s *LayoutStore) read(name string) (*entity.SavedLayout, error) {
	data, err := s.d.Read(name)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: layout file %q: %v", entity.ErrFormat, name, err)
	}
	return &entity.SavedLayout{
		Name:         name,
		Version:      env.Version,
		Document:     []byte(env.Document),
		Arrangements: env.Arrangements,
		Keys:         env.Keys,
		SavedAt:      env.SavedAt.UTC(),
	}, nil
}

func nameToPath(name string) *diskv.PathKey {
	return &diskv.PathKey{FileName: name + fileSuffix}
}

// pathToName maps foreign files to the empty key so List can skip them.
func pathToName(pk *diskv.PathKey) string {
	if len(pk.Path) > 0 || !strings.HasSuffix(pk.FileName, fileSuffix) {
		return ""
	}
	return strings.TrimSuffix(pk.FileName, fileSuffix)
}
