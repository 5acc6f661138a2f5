// cmd/server/serve.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/database"
	"github.com/sportsfed/fedsite/internal/i18n"
	"github.com/sportsfed/fedsite/internal/router"
	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/storage"
	"github.com/sportsfed/fedsite/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := prepareDatabase(ctx, cfg, db); err != nil {
		return err
	}

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		return err
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	listCache := cache.New(ctx, cfg.Redis)
	defer listCache.Close()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		if !errors.Is(err, storage.ErrNotConfigured) {
			return err
		}
		logrus.Warn("STORAGE_PROVIDER not set; uploads are disabled")
	}

	r := router.Initialize(router.Dependencies{
		DB:       db,
		Config:   cfg,
		Cache:    listCache,
		Store:    store,
		JWT:      utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.TTL(), cfg.JWT.Issuer),
		Notifier: services.NewNotificationService(cfg.Email),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return err
	case <-sigCtx.Done():
	}
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logrus.Info("Server exited")
	return nil
}
