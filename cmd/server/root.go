// cmd/server/root.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/database"
	"github.com/sportsfed/fedsite/internal/logging"
	"github.com/sportsfed/fedsite/internal/router"
	"github.com/sportsfed/fedsite/internal/services"
)

// rootCmd runs the API server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "fedsite",
	Short: "Federation website API",
	Long: `JSON API behind the federation's public website and admin panel.

Configuration is read from the environment and an optional .env file.`,
	Version:       router.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, bootstrapAdminCmd)
}

// setup loads configuration, configures logging and opens the database.
func setup() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Setup(cfg.Environment, cfg.LogLevel)

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, db, nil
}

// prepareDatabase migrates the schema, seeds default settings and makes
// sure the bootstrap super-admin exists.
func prepareDatabase(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	if err := database.RunMigrations(db); err != nil {
		return err
	}
	if err := database.SeedInitialData(db); err != nil {
		return fmt.Errorf("failed to seed initial data: %w", err)
	}
	if _, err := services.NewAdminService(db).EnsureBootstrapAdmin(ctx, cfg.Bootstrap); err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	logrus.Debug("Database ready")
	return nil
}
