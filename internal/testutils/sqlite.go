package testutils

import (
	"fmt"
	"testing"

	"curr-backend/internal/config"
	"curr-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB returns a migrated, isolated in-memory SQLite database that is closed when t ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps every connection of this test on the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := database.Initialize(config.DatabaseClientSQLite, dsn, &database.Options{
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
