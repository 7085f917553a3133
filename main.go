package main

import (
	"context"
	"embed"
	"os"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/robinvb/scorebord/bindings"
	"github.com/robinvb/scorebord/internal/config"
)

//go:embed all:frontend/dist
var assets embed.FS

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := newLogger(cfg.LogLevel)

	app := bindings.New(cfg, logger)

	err = wails.Run(&options.App{
		Title:     "Scorebord",
		Width:     1024,
		Height:    768,
		MinWidth:  420,
		MinHeight: 640,

		BackgroundColour: &options.RGBA{R: 26, G: 26, B: 46, A: 255},

		AssetServer: &assetserver.Options{
			Assets: assets,
		},

		OnStartup:  app.Startup,
		OnShutdown: app.Shutdown,
		OnBeforeClose: func(ctx context.Context) (prevent bool) {
			logger.Info().Msg("application closing")
			return false
		},

		Bind: []interface{}{app, app.Jokeren, app.Tienduizend},

		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: "nl.robinvb.scorebord",
		},

		Windows: &windows.Options{
			Theme:           windows.SystemDefault,
			WindowClassName: "ScorebordWindow",
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   "Scorebord",
				Message: "Score tracker for Amerikaans Jokeren and Tienduizend.\nAll data stays on this device.",
			},
		},
		Linux: &linux.Options{
			ProgramName: "scorebord",
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("running app")
	}
}
