package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/billing"
	"github.com/sidereusnuntius/blocipedia/internal/config"
	db "github.com/sidereusnuntius/blocipedia/internal/db/impl"
	"github.com/sidereusnuntius/blocipedia/internal/initialization"
	service "github.com/sidereusnuntius/blocipedia/internal/service/impl"
	"github.com/sidereusnuntius/blocipedia/internal/web"
	"github.com/stripe/stripe-go/v82"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().
		Str("db", cfg.DbUrl).
		Uint16("port", cfg.Port).
		Object("stripe_secret_key", cfg.Stripe.SecretKey).
		Object("stripe_webhook_secret", cfg.Stripe.WebhookSecret).
		Msg("loaded configuration")

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer d.Close()
	log.Info().Msg("database connection established")

	if err = initialization.SetupDB(d, cfg.MigrationsFolder, cfg.DbUrl); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	stripe.Key = cfg.Stripe.SecretKey.Reveal()
	if cfg.Stripe.WebhookSecret == "" {
		log.Warn().Msg("no webhook signing secret configured; billing events will be refused")
	}

	store := db.New(d)
	app := service.New(store)

	// The event table is fixed here, before the server accepts any request.
	events := billing.NewRouter(map[stripe.EventType]billing.Handler{
		stripe.EventTypeChargeSucceeded: billing.NewChargeRecorder(store),
	})

	manager := scs.NewCookieManager(cfg.SessionKey.Reveal())
	manager.Secure(cfg.Https)

	handler := web.New(&cfg, app, manager, events)
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	handler.Mount(router)

	s := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("name", cfg.Name).Uint16("port", cfg.Port).Msg("started server")
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}
