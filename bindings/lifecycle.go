package bindings

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/robinvb/scorebord/internal/config"
	"github.com/robinvb/scorebord/internal/scoring"
	"github.com/robinvb/scorebord/internal/store"
)

const sessionDBName = "scorebord.db"

// App is the root Wails-bound object. It owns the session store and
// hands it to the per-game modules on startup.
type App struct {
	ctx   context.Context
	cfg   config.Config
	log   zerolog.Logger
	store store.Store

	Jokeren     *JokerenModule
	Tienduizend *TienduizendModule
}

// New builds the app and its game modules. Nothing touches disk until
// Startup runs.
func New(cfg config.Config, logger zerolog.Logger) *App {
	return &App{
		cfg:         cfg,
		log:         logger,
		Jokeren:     NewJokerenModule(logger),
		Tienduizend: NewTienduizendModule(logger),
	}
}

// Startup opens the session database and restores both game sessions.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		panic(err)
	}
	db, err := store.NewSQLite(filepath.Join(a.cfg.DataDir, sessionDBName))
	if err != nil {
		panic(err)
	}
	a.store = db
	a.log.Info().Str("dir", a.cfg.DataDir).Msg("session store ready")

	a.Jokeren.startup(ctx, db)
	a.Tienduizend.startup(ctx, db)
	a.Jokeren.fx = wailsCelebrator{ctx: ctx}
	a.Tienduizend.fx = wailsCelebrator{ctx: ctx}
}

// Variants lists the metadata of all registered game variants.
func (a *App) Variants() []scoring.VariantSpec {
	return scoring.ListVariants()
}

// Shutdown closes the session store.
func (a *App) Shutdown(ctx context.Context) {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("closing session store")
	}
}
