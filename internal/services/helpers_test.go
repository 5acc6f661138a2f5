package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/database"
	"github.com/sportsfed/fedsite/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:"), "silent")
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func ptr[T any](v T) *T {
	return &v
}

func createAdmin(t *testing.T, db *gorm.DB, email string, role models.AdminRole, protected bool) *models.Admin {
	t.Helper()

	admin := &models.Admin{Name: "Admin " + email, Email: email, Role: role, Protected: protected}
	require.NoError(t, admin.SetPassword("correct-horse"))
	require.NoError(t, db.Create(admin).Error)
	return admin
}
