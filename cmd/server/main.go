package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/leadcapture/pkg/config"
	"github.com/dmitrymomot/leadcapture/pkg/httpserver"
	"github.com/dmitrymomot/leadcapture/pkg/lead"
	"github.com/dmitrymomot/leadcapture/pkg/logger"
	"github.com/dmitrymomot/leadcapture/pkg/mailer"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
	// CORSOrigins lists the landing page origins allowed to post the form.
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		app    appConfig
		cfg    lead.Config
		srvCfg httpserver.Config
	)
	config.MustLoad(&app)
	config.MustLoad(&cfg)
	config.MustLoad(&srvCfg)

	log := logger.New(logger.WithEnvironment(app.Env, "leadcapture"))
	slog.SetDefault(log)

	sender, err := mailer.New(cfg.Mail)
	if err != nil {
		log.Error("mailer init failed", logger.Error(err))
		os.Exit(1)
	}
	svc := lead.NewService(cfg, sender, lead.WithLogger(log))

	r := chi.NewRouter()
	r.Use(httpserver.RequestID)
	r.Use(httpserver.RequestLogger(log))
	r.Use(lead.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/api", lead.NewHandler(svc).Routes())

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
