package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupSQLite opens a private in-memory database with the full schema.
func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &config.Config{
		Env:          "test",
		DBDriver:     database.DriverSQLite,
		DBSQLitePath: fmt.Sprintf("file:repo_%s?mode=memory&cache=shared&_foreign_keys=1", name),
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(context.Background(), db, cfg))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// setupMockDB returns a postgres-dialect gorm handle backed by sqlmock.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func strPtr(s string) *string { return &s }
