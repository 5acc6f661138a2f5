// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	pgConfig := postgres.Config{DSN: cfg.DSN()}
	if cfg.Driver == "postgres" {
		// lib/pq registers itself as "postgres"; the default is pgx.
		pgConfig.DriverName = "postgres"
	}

	db, err := Open(postgres.New(pgConfig), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Database connection established successfully")
	return db, nil
}

// Open connects through any gorm dialector with the settings shared by
// production and tests.
func Open(dialector gorm.Dialector, logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(logLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

// Ping reports whether the database answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	createIndexes(db)

	logrus.Info("Database migrations completed successfully")
	return nil
}

// createIndexes adds the composite indexes used by list ordering. Failures
// are logged and skipped.
func createIndexes(db *gorm.DB) {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_news_published ON news(published_at DESC, id DESC)",
		"CREATE INDEX IF NOT EXISTS idx_events_date ON events(event_date DESC, id DESC)",
		"CREATE INDEX IF NOT EXISTS idx_players_ranking ON players(total_points DESC, name, id)",
		"CREATE INDEX IF NOT EXISTS idx_media_category_created ON media(category, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_contacts_unread ON contacts(is_read, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}
}

func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// defaultSettings are created on first migration so the public site has
// something to render before an admin edits them.
var defaultSettings = []models.SiteSetting{
	{Key: "site_name", Value: "National Sports Federation"},
	{Key: "site_tagline", Value: ""},
	{Key: "contact_email", Value: ""},
	{Key: "contact_phone", Value: ""},
	{Key: "address", Value: ""},
}

// SeedInitialData inserts missing default settings. Existing values are
// left alone.
func SeedInitialData(db *gorm.DB) error {
	for _, setting := range defaultSettings {
		var count int64
		if err := db.Model(&models.SiteSetting{}).Where("key = ?", setting.Key).Count(&count).Error; err != nil {
			return fmt.Errorf("checking setting %s: %w", setting.Key, err)
		}
		if count > 0 {
			continue
		}

		s := setting
		if err := db.Create(&s).Error; err != nil {
			return fmt.Errorf("creating setting %s: %w", setting.Key, err)
		}
	}
	return nil
}
