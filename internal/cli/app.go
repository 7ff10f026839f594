// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/infrastructure/codec/xmldoc"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/files"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	// ConfigErr is set when the config file could not be loaded and
	// defaults are in use.
	ConfigErr error
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	Layouts     repository.LayoutRepository
	Codec       *xmldoc.Codec
	StoragePath string

	// Use cases
	ListLayoutsUC   *usecase.ListLayoutsUseCase
	DeleteLayoutUC  *usecase.DeleteLayoutUseCase
	VerifyLayoutsUC *usecase.VerifyLayoutsUseCase
	// ImportLayoutUC stores documents without touching a live surface.
	ImportLayoutUC *usecase.SaveLayoutUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()
	theme := styles.NewTheme(cfg)

	logDir := cfg.Logging.LogDir
	if logDir == "" {
		logDir, _ = config.GetLogDir()
	}
	// Terminal UIs own the screen, so nothing goes to stderr.
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: cfg.Logging.EnableFileLog && logDir != "", LogDir: logDir, WriteToStderr: false},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	if mgr != nil {
		mgr.SetLogger(logger.With().Str("component", "config").Logger())
	}
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("config not loaded, using defaults")
	}

	layouts, db, path, err := openLayouts(cfg)
	if err != nil {
		logCleanup()
		return nil, err
	}
	logger.Debug().
		Str("backend", string(cfg.Storage.Backend)).
		Str("path", path).
		Msg("layout storage ready")

	codec := xmldoc.New(xmldoc.WithVersion(cfg.Layout.DocumentVersion))

	return &App{
		Config:          cfg,
		ConfigErr:       cfgErr,
		Manager:         mgr,
		Theme:           theme,
		Layouts:         layouts,
		Codec:           codec,
		StoragePath:     path,
		ListLayoutsUC:   usecase.NewListLayoutsUseCase(layouts),
		DeleteLayoutUC:  usecase.NewDeleteLayoutUseCase(layouts),
		VerifyLayoutsUC: usecase.NewVerifyLayoutsUseCase(layouts, codec),
		ImportLayoutUC:  usecase.NewSaveLayoutUseCase(layouts, codec, nil),
		db:              db,
		ctx:             ctx,
		logCleanup:      logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// CheckStorage opens the layout store and describes it.
func (a *App) CheckStorage(ctx context.Context) (string, error) {
	layouts, err := a.Layouts.List(ctx)
	if err != nil {
		return "", err
	}
	detail := fmt.Sprintf("%d layouts", len(layouts))
	if a.db == nil {
		return detail, nil
	}
	db, err := a.db.DB(ctx)
	if err != nil {
		return "", err
	}
	version, err := sqlite.MigrationVersion(ctx, db)
	if err != nil {
		return "", fmt.Errorf("read schema version: %w", err)
	}
	return fmt.Sprintf("schema v%d, %s", version, detail), nil
}

// DockingOptions maps the layout and label settings onto the docking surface.
func DockingOptions(cfg *config.Config) usecase.DockingOptions {
	return usecase.DockingOptions{
		Layout: entity.LayoutOptions{
			Spacing:   cfg.Layout.Spacing,
			TabWidth:  cfg.Layout.TabWidth,
			TabHeight: cfg.Layout.TabHeight,
		},
		Labels: usecase.MenuLabels{
			Close:       cfg.Labels.Close,
			CloseOthers: cfg.Labels.CloseOthers,
			CloseAll:    cfg.Labels.CloseAll,
			Detach:      cfg.Labels.Detach,
		},
	}
}

// openLayouts builds the layout repository for the configured backend.
// The SQLite database is opened on first use.
func openLayouts(cfg *config.Config) (repository.LayoutRepository, *sqlite.LazyDB, string, error) {
	path := cfg.Storage.Path
	if path == "" {
		var err error
		if path, err = config.DefaultStoragePath(cfg.Storage.Backend); err != nil {
			return nil, nil, "", fmt.Errorf("resolve storage path: %w", err)
		}
	}

	switch cfg.Storage.Backend {
	case config.StorageFiles:
		return files.NewLayoutStore(path, cfg.Storage.CacheSizeMax), nil, path, nil
	case config.StorageSQLite, "":
		db := sqlite.NewLazyDB(path)
		return sqlite.NewLazyLayoutRepository(db), db, path, nil
	default:
		return nil, nil, "", fmt.Errorf("%w: unknown storage backend %q", entity.ErrInvalidArgument, cfg.Storage.Backend)
	}
}

// loadConfig loads configuration from standard locations, falling back
// to defaults when the file is unusable.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}
