package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

// ErrLayoutNotFound is returned when no layout is stored under a name.
var ErrLayoutNotFound = errors.New("layout not found")

const verifyConcurrency = 4

// SaveLayoutUseCase encodes arrangements and stores them under a name.
type SaveLayoutUseCase struct {
	repo    repository.LayoutRepository
	codec   port.LayoutCodec
	docking *ManageDockingUseCase
	now     func() time.Time
}

// NewSaveLayoutUseCase creates a save use case. docking may be nil when
// only SaveDocument is used.
func NewSaveLayoutUseCase(repo repository.LayoutRepository, codec port.LayoutCodec, docking *ManageDockingUseCase) *SaveLayoutUseCase {
	return &SaveLayoutUseCase{
		repo:    repo,
		codec:   codec,
		docking: docking,
		now:     time.Now,
	}
}

// SaveLayoutInput names the layout to write.
type SaveLayoutInput struct {
	Name string
}

// SaveLayoutOutput contains the stored layout.
type SaveLayoutOutput struct {
	Layout *entity.SavedLayout
}

// Execute encodes the current arrangement set and stores it.
func (uc *SaveLayoutUseCase) Execute(ctx context.Context, input SaveLayoutInput) (*SaveLayoutOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("name", input.Name).Msg("saving layout")

	if err := entity.ValidateLayoutName(input.Name); err != nil {
		return nil, err
	}
	if uc.docking == nil {
		return nil, fmt.Errorf("%w: no docking surface to save", entity.ErrState)
	}

	var buf bytes.Buffer
	arrangements := uc.docking.Set().Arrangements()
	if err := uc.codec.Encode(ctx, &buf, arrangements); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}

	layout := &entity.SavedLayout{
		Name:         input.Name,
		Version:      uc.codec.Version(),
		Document:     buf.Bytes(),
		Arrangements: len(arrangements),
		Keys:         len(uc.docking.Set().AllKeys()),
		SavedAt:      uc.now().UTC(),
	}
	if err := uc.repo.Save(ctx, layout); err != nil {
		return nil, fmt.Errorf("store layout: %w", err)
	}

	log.Info().Str("name", layout.Name).Int("bytes", len(layout.Document)).Msg("layout saved")
	return &SaveLayoutOutput{Layout: layout}, nil
}

// Export writes the current arrangement set to w without storing it.
func (uc *SaveLayoutUseCase) Export(ctx context.Context, w io.Writer) error {
	if uc.docking == nil {
		return fmt.Errorf("%w: no docking surface to export", entity.ErrState)
	}
	return uc.codec.Encode(ctx, w, uc.docking.Set().Arrangements())
}

// SaveDocument validates an already encoded document and stores it.
func (uc *SaveLayoutUseCase) SaveDocument(ctx context.Context, name string, doc []byte) (*entity.SavedLayout, error) {
	if err := entity.ValidateLayoutName(name); err != nil {
		return nil, err
	}

	arrangements, err := uc.codec.Decode(ctx, bytes.NewReader(doc), entity.NewFactory(nil), EmptyResolver{})
	if err != nil {
		return nil, err
	}
	keys := 0
	for _, arr := range arrangements {
		keys += len(arr.Keys())
	}

	layout := &entity.SavedLayout{
		Name:         name,
		Version:      uc.codec.Version(),
		Document:     doc,
		Arrangements: len(arrangements),
		Keys:         keys,
		SavedAt:      uc.now().UTC(),
	}
	if err := uc.repo.Save(ctx, layout); err != nil {
		return nil, fmt.Errorf("store layout: %w", err)
	}
	logging.FromContext(ctx).Info().Str("name", name).Msg("layout imported")
	return layout, nil
}

// RestoreLayoutUseCase loads a stored layout into the docking surface.
type RestoreLayoutUseCase struct {
	repo     repository.LayoutRepository
	codec    port.LayoutCodec
	docking  *ManageDockingUseCase
	resolver port.ItemResolver
}

// NewRestoreLayoutUseCase creates a restore use case.
func NewRestoreLayoutUseCase(
	repo repository.LayoutRepository,
	codec port.LayoutCodec,
	docking *ManageDockingUseCase,
	resolver port.ItemResolver,
) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{
		repo:     repo,
		codec:    codec,
		docking:  docking,
		resolver: resolver,
	}
}

// RestoreLayoutInput names the layout to load.
type RestoreLayoutInput struct {
	Name string
}

// RestoreLayoutOutput summarizes the loaded layout.
type RestoreLayoutOutput struct {
	Arrangements int
	Keys         int
}

// Execute loads the named layout. On any error the current arrangements
// are left untouched.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, input RestoreLayoutInput) (*RestoreLayoutOutput, error) {
	ctx = logging.WithLayout(ctx, input.Name)
	log := logging.FromContext(ctx)
	log.Debug().Msg("restoring layout")

	if input.Name == "" {
		return nil, fmt.Errorf("%w: layout name is required", entity.ErrInvalidArgument)
	}
	layout, err := uc.repo.Get(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	if layout == nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, input.Name)
	}
	return uc.Import(ctx, bytes.NewReader(layout.Document))
}

// Import decodes a document from r and swaps it in.
func (uc *RestoreLayoutUseCase) Import(ctx context.Context, r io.Reader) (*RestoreLayoutOutput, error) {
	if uc.resolver == nil {
		return nil, fmt.Errorf("%w: no item resolver configured", entity.ErrState)
	}
	arrangements, err := uc.codec.Decode(ctx, r, uc.docking.Set().Factory(), uc.resolver)
	if err != nil {
		return nil, err
	}
	if err := uc.docking.ReplaceArrangements(ctx, arrangements); err != nil {
		return nil, err
	}

	out := &RestoreLayoutOutput{
		Arrangements: uc.docking.Set().Len(),
		Keys:         len(uc.docking.Set().AllKeys()),
	}
	logging.FromContext(ctx).Info().
		Int("arrangements", out.Arrangements).
		Int("keys", out.Keys).
		Msg("layout restored")
	return out, nil
}

// ListLayoutsUseCase lists stored layouts.
type ListLayoutsUseCase struct {
	repo repository.LayoutRepository
}

// NewListLayoutsUseCase creates a list use case.
func NewListLayoutsUseCase(repo repository.LayoutRepository) *ListLayoutsUseCase {
	return &ListLayoutsUseCase{repo: repo}
}

// Execute returns stored layouts, most recent first.
func (uc *ListLayoutsUseCase) Execute(ctx context.Context) ([]*entity.SavedLayout, error) {
	layouts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return layouts, nil
}

// Get returns one stored layout.
func (uc *ListLayoutsUseCase) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	layout, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	if layout == nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	return layout, nil
}

// DeleteLayoutUseCase removes stored layouts.
type DeleteLayoutUseCase struct {
	repo repository.LayoutRepository
}

// NewDeleteLayoutUseCase creates a delete use case.
func NewDeleteLayoutUseCase(repo repository.LayoutRepository) *DeleteLayoutUseCase {
	return &DeleteLayoutUseCase{repo: repo}
}

// Execute deletes the named layout.
func (uc *DeleteLayoutUseCase) Execute(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)

	existing, err := uc.repo.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	if err := uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}

	log.Info().Str("name", name).Msg("layout deleted")
	return nil
}

// LayoutCheck is the verification result of one stored layout.
type LayoutCheck struct {
	Name         string
	Arrangements int
	Keys         int
	Err          error
}

// VerifyLayoutsUseCase decodes every stored layout to find broken ones.
type VerifyLayoutsUseCase struct {
	repo  repository.LayoutRepository
	codec port.LayoutCodec
}

// NewVerifyLayoutsUseCase creates a verify use case.
func NewVerifyLayoutsUseCase(repo repository.LayoutRepository, codec port.LayoutCodec) *VerifyLayoutsUseCase {
	return &VerifyLayoutsUseCase{repo: repo, codec: codec}
}

// Execute decodes all layouts concurrently. Decoding failures are reported
// per layout; only storage errors fail the whole run.
func (uc *VerifyLayoutsUseCase) Execute(ctx context.Context) ([]LayoutCheck, error) {
	layouts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	checks := make([]LayoutCheck, len(layouts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)
	for i, layout := range layouts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			check := LayoutCheck{Name: layout.Name}
			arrangements, err := uc.codec.Decode(gctx, bytes.NewReader(layout.Document), entity.NewFactory(nil), EmptyResolver{})
			if err != nil {
				check.Err = err
			} else {
				check.Arrangements = len(arrangements)
				for _, arr := range arrangements {
					check.Keys += len(arr.Keys())
				}
			}
			checks[i] = check
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	broken := 0
	for _, c := range checks {
		if c.Err != nil {
			broken++
		}
	}
	logging.FromContext(ctx).Info().Int("layouts", len(checks)).Int("broken", broken).Msg("layouts verified")
	return checks, nil
}

// EmptyResolver resolves every key to nothing, leaving keys reserved.
type EmptyResolver struct{}

func (EmptyResolver) ResolveItem(entity.Key) entity.Item       { return nil }
func (EmptyResolver) ResolveContent(entity.Key) entity.Content { return nil }
