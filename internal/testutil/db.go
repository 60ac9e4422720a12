// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/capsyncer/capsyncer/db"
)

// NewTestDB opens a migrated SQLite database in a per-test temp directory.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.ConnectDatabase("sqlite", filepath.Join(t.TempDir(), "capsyncer.db"))
	require.NoError(t, err)
	require.NoError(t, db.MigrateDatabase(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}
