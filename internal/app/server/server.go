package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"simgaji/internal/domain/auth"
	"simgaji/internal/domain/payroll"
	"simgaji/internal/platform/config"
	"simgaji/internal/platform/kv"
	"simgaji/internal/platform/logger"
	authhandler "simgaji/internal/transport/http/handlers/auth"
	recordshandler "simgaji/internal/transport/http/handlers/records"
	"simgaji/internal/transport/http/middleware"
)

func Run() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("logger setup failed")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	kvs, err := kv.Open(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataPath).Msg("opening data file failed")
	}
	defer kvs.Close()

	store := payroll.NewStore(kvs)
	if err := store.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("initializing record slot failed")
	}

	authService, err := auth.NewService(
		auth.NewSessions(kvs),
		cfg.JWTSecret,
		cfg.AdminUsername,
		cfg.AdminPassword,
		cfg.AdminName,
		cfg.TokenTTL,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("auth setup failed")
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(authService))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := kvs.Ping(); err != nil {
			http.Error(w, "data file not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authService).RegisterRoutes(r)
		recordshandler.NewHandler(store).RegisterRoutes(r)
	})

	log.Info().Str("addr", cfg.Addr).Str("data", cfg.DataPath).Msg("simgaji server listening")
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
