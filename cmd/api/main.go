package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-hub/internal/adapters/storage/sqlstore"
	"pet-care-hub/internal/config"
	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/router"
)

// @title Pet Care Hub API
// @version 1.0
// @description Mascotas, recordatorios de cuidado, comunidad y notificaciones.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	var db *sql.DB
	if cfg.Storage.Driver != config.StorageMemory {
		dsn := cfg.Storage.DSN
		if cfg.Storage.Driver == config.StorageSQLite {
			dsn = cfg.Storage.SQLitePath
		}
		opened, err := sqlstore.Open(cfg.Storage.Driver, dsn)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened
	}

	app, err := router.NewRouter(router.Options{Config: cfg, Logger: log, DB: db})
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("closing dependencies", map[string]any{"error": err.Error()})
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Sin WriteTimeout: las conexiones websocket son largas.
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	app.Hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
