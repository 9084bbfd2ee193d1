package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/didley/decimal-input/modules/decimalfield"
	"github.com/didley/decimal-input/pkg/config"
	"github.com/didley/decimal-input/pkg/httpserver"
	"github.com/didley/decimal-input/pkg/logger"
	"github.com/didley/decimal-input/pkg/requestid"
	"github.com/didley/decimal-input/svc/preset"
)

func main() {
	var app config.App
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithLevel(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), app, log); err != nil {
		log.Error("decimald stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app config.App, log *slog.Logger) error {
	if err := app.Validate(); err != nil {
		return err
	}

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	src := preset.NewInMemSource(preset.Defaults()...)
	if app.PresetsFile != "" {
		src = preset.NewYAMLSource(app.PresetsFile)
	}
	presets, err := preset.NewService(ctx, src, preset.WithLogger(log))
	if err != nil {
		return err
	}

	field := decimalfield.NewService(decimalfield.Config{
		Title:          app.Name,
		DefaultDigits:  app.Digits(),
		MaxInputLength: app.MaxInputLength,
	}, presets, decimalfield.Views{}, log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)
	r.Get("/health", httpserver.HealthHandler(log))
	r.Get("/ready", httpserver.HealthHandler(log, presets.Check))
	r.Mount("/", field.Handle())

	return httpserver.New(srvCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
