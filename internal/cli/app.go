package cli

import (
	"os"

	"github.com/amterp/swatch/internal/catalog"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/resolver"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/store"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	Paths          *config.Paths
	ConfigStore    store.ConfigStore
	Config         *model.Config
	Catalog        *catalog.Catalog
	CatalogSource  string
	CatalogService *service.CatalogService
	Prompter       prompt.Prompter
	ColorResolver  *resolver.ColorResolver
	WallResolver   *resolver.WallResolver
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}
	return newApp(config.DefaultPaths(), prompter)
}

func newApp(paths *config.Paths, prompter prompt.Prompter) (*App, error) {
	configStore := store.NewConfigStore(paths)
	cfg, err := configStore.Load()
	if err != nil {
		return nil, err
	}

	cat, source, err := loadCatalog(paths, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Paths:          paths,
		ConfigStore:    configStore,
		Config:         cfg,
		Catalog:        cat,
		CatalogSource:  source,
		CatalogService: service.NewCatalogService(cat),
		Prompter:       prompter,
		ColorResolver:  resolver.NewColorResolver(cat, prompter),
		WallResolver:   resolver.NewWallResolver(prompter),
	}, nil
}

// loadCatalog returns the catalog the config points at, or the built-in one.
// The second value names where the catalog came from.
func loadCatalog(paths *config.Paths, cfg *model.Config) (*catalog.Catalog, string, error) {
	path := paths.CatalogPath(cfg.Catalog)
	if path == "" {
		return catalog.Default(), service.BuiltinSource, nil
	}

	colors, err := store.NewCatalogStore(path).Load()
	if err != nil {
		return nil, "", err
	}
	cat, err := catalog.New(colors)
	if err != nil {
		return nil, "", err
	}
	return cat, path, nil
}

// NewSessionService starts a painting session over the app's catalog,
// seeded with the configured room and search delay.
func (a *App) NewSessionService() *service.SessionService {
	session := service.NewSessionService(a.Catalog, a.Config.DefaultRoom())
	session.SetSearchDelay(a.Config.SearchDelay())
	return session
}

// Fatal prints an error and exits.
func Fatal(err error) {
	PrintError("%v", err)
	os.Exit(1)
}
