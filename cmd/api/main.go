package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "pets-api/docs"

	pg "pets-api/internal/adapters/storage/postgres"
	"pets-api/internal/config"
	"pets-api/internal/platform/logger"
	"pets-api/internal/router"
)

// @title pets-api
// @version 1.0
// @description CRUD de mascotas con grupo taxonómico y traits.
// @BasePath /
func main() {
	config.LoadDotEnvUp(8)

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config load failed", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	defer func() { _ = log.Sync() }()

	var db *sql.DB
	if cfg.Postgres.DSN != "" {
		if cfg.Postgres.AutoMigrate {
			if err := pg.Migrate(cfg.Postgres.DSN, false, 0); err != nil {
				log.Error("auto migrate failed", map[string]any{"err": err})
				os.Exit(1)
			}
			log.Info("migrations applied", nil)
		}

		db, err = pg.Open(cfg.Postgres)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err})
			os.Exit(1)
		}
		defer db.Close()
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.NewRouter(router.Options{
			DB:       db,
			Logger:   log,
			PageSize: cfg.PageSize,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", map[string]any{"err": err})
	}
	log.Info("server stopped", nil)
}
