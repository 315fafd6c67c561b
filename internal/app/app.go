package app

import (
	"fmt"

	"github.com/dori/goalboard/internal/board"
	"github.com/dori/goalboard/internal/catalog"
	"github.com/dori/goalboard/internal/log"
	"github.com/dori/goalboard/internal/notify"
	"github.com/dori/goalboard/internal/ui/component"
	"github.com/rs/zerolog"
)

// App holds the application state and dependencies
type App struct {
	Config     Config
	Resolver   *catalog.Resolver
	Board      *board.Board
	Components *component.Registry
	Notifier   *notify.Notifier
	Logger     zerolog.Logger
}

// New creates a new application instance. The logger must already be
// configured.
func New(cfg Config) (*App, error) {
	resolver := catalog.NewResolver(cfg.Schema)

	b, err := board.New(resolver, cfg.Goals...)
	if err != nil {
		return nil, fmt.Errorf("failed to seed goals: %w", err)
	}

	registry := component.NewRegistry()
	if err := component.RegisterDefaults(registry); err != nil {
		return nil, fmt.Errorf("failed to register components: %w", err)
	}

	a := &App{
		Config:     cfg,
		Resolver:   resolver,
		Board:      b,
		Components: registry,
		Notifier:   notify.NewNotifier(cfg.Notifications),
		Logger:     log.WithComponent("app"),
	}
	a.Logger.Info().
		Str("theme", cfg.Theme.String()).
		Str("font", cfg.Font.String()).
		Str("schema", string(resolver.Schema())).
		Int("goals", b.Len()).
		Msg("application initialised")

	return a, nil
}

// Close cleans up application resources
func (a *App) Close() error {
	a.Logger.Info().Msg("application closed")
	return log.Close()
}
