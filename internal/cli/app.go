// Package cli wires the shade command-line tools.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/shade/internal/application/usecase"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
	"github.com/bnema/shade/internal/infrastructure/catalog"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/infrastructure/interfacefile"
	"github.com/bnema/shade/internal/infrastructure/memtoolkit"
	"github.com/bnema/shade/internal/infrastructure/project"
	"github.com/bnema/shade/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme

	Toolkit *memtoolkit.Toolkit
	Catalog *catalog.Catalog
	Session *shadow.Session
	Codec   *interfacefile.Codec

	// Use cases
	LoadInterfaceUC   *usecase.LoadInterfaceUseCase
	SaveInterfaceUC   *usecase.SaveInterfaceUseCase
	ClipboardUC       *usecase.ClipboardUseCase
	SetPropertyUC     *usecase.SetPropertyUseCase
	GetConfigSchemaUC *usecase.GetConfigSchemaUseCase

	loader *catalog.Loader
	logger zerolog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp loads the configuration and the widget catalogs and builds an
// editing session over the in-memory toolkit. An empty configPath uses the
// default config location.
func NewApp(configPath string) (*App, error) {
	mgr, err := config.NewManager(configPath)
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))

	loader := catalog.NewLoader(logger)
	loader.WithBuiltin = cfg.Catalog.Builtin
	classes, err := loader.Load(ctx, catalogPaths(cfg)...)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("load catalogs: %w", err)
	}

	tk := memtoolkit.New(logger)
	cat := catalog.New(func(c *entity.WidgetClass) shadow.Adaptor {
		return memtoolkit.NewAdaptor(tk, c)
	}, classes)
	session := shadow.NewSession(cat, tk, logger)
	codec := interfacefile.NewCodec()

	a := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),

		Toolkit: tk,
		Catalog: cat,
		Session: session,
		Codec:   codec,

		LoadInterfaceUC:   usecase.NewLoadInterfaceUseCase(codec, session),
		SaveInterfaceUC:   usecase.NewSaveInterfaceUseCase(codec, session),
		ClipboardUC:       usecase.NewClipboardUseCase(session, cfg.Clipboard.ExactOnCut),
		SetPropertyUC:     usecase.NewSetPropertyUseCase(session),
		GetConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),

		loader: loader,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	if cfg.Catalog.Watch {
		if err := a.watch(); err != nil {
			a.Close()
			return nil, err
		}
	}

	logger.Debug().
		Str("config", mgr.ConfigFileUsed()).
		Int("classes", len(classes)).
		Msg("app initialized")
	return a, nil
}

// watch reloads the catalogs when catalog files or the config file change.
func (a *App) watch() error {
	if paths := catalogPaths(a.Config); len(paths) > 0 {
		err := a.loader.Watch(a.ctx, a.Catalog, paths, func(classes []*entity.WidgetClass) {
			a.logger.Info().Int("classes", len(classes)).Msg("catalogs reloaded")
		})
		if err != nil {
			return err
		}
	}

	a.ConfigManager.OnConfigChange(func(prev, cfg *config.Config) {
		if !config.CatalogChanged(prev, cfg) {
			return
		}
		loader := catalog.NewLoader(a.logger)
		loader.WithBuiltin = cfg.Catalog.Builtin
		classes, err := loader.Load(a.ctx, catalogPaths(cfg)...)
		if err != nil {
			a.logger.Warn().Err(err).Msg("failed to reload catalogs after config change")
			return
		}
		a.Catalog.Replace(classes)
	})
	return a.ConfigManager.Watch(a.logger)
}

// catalogPaths returns the configured catalog paths, preceded by the user
// catalog directory when it exists.
func catalogPaths(cfg *config.Config) []string {
	var paths []string
	if dir, err := config.GetCatalogDir(); err == nil {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			paths = append(paths, dir)
		}
	}
	return append(paths, cfg.Catalog.Paths...)
}

// NewDocument creates an empty document named after the config.
func (a *App) NewDocument() *project.Document {
	return project.New(a.Config.Document.Name, a.logger)
}

// Close stops the watchers.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
