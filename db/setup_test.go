package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capsyncer/capsyncer/internal/models"
)

func TestConnectDatabase_UnsupportedDriver(t *testing.T) {
	_, err := ConnectDatabase("oracle", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrateDatabase_Idempotent(t *testing.T) {
	gdb, err := ConnectDatabase("sqlite", filepath.Join(t.TempDir(), "capsyncer.db"))
	require.NoError(t, err)

	require.NoError(t, MigrateDatabase(gdb))
	require.NoError(t, MigrateDatabase(gdb))

	migrator := gdb.Migrator()
	for _, model := range []interface{}{&models.Coworker{}, &models.Project{}, &models.Task{}, &models.Assignment{}} {
		assert.True(t, migrator.HasTable(model), "%T table missing", model)
	}
	assert.True(t, migrator.HasColumn(&models.Coworker{}, "IsActive"))
	assert.True(t, migrator.HasColumn(&models.Assignment{}, "AssignedBy"))
}

func TestConnectDatabase_SQLiteEnforcesForeignKeys(t *testing.T) {
	gdb, err := ConnectDatabase("sqlite", filepath.Join(t.TempDir(), "capsyncer.db"))
	require.NoError(t, err)
	require.NoError(t, MigrateDatabase(gdb))

	var enabled int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	orphan := models.Task{ProjectID: 12345, Name: "orphan", Priority: "Normal", Status: "Not started"}
	assert.Error(t, gdb.Create(&orphan).Error)
}

func TestSQLiteDSN(t *testing.T) {
	cases := []struct {
		dsn  string
		want string
	}{
		{dsn: "data/capsyncer.db", want: "data/capsyncer.db?_foreign_keys=on"},
		{dsn: "file:capsyncer.db?cache=shared", want: "file:capsyncer.db?cache=shared&_foreign_keys=on"},
		{dsn: "capsyncer.db?_foreign_keys=off", want: "capsyncer.db?_foreign_keys=off"},
		{dsn: "capsyncer.db?_fk=1", want: "capsyncer.db?_fk=1"},
	}

	for _, tc := range cases {
		t.Run(tc.dsn, func(t *testing.T) {
			assert.Equal(t, tc.want, sqliteDSN(tc.dsn))
		})
	}
}

func TestConnectDatabase_SQLiteForeignKeysOnEveryConnection(t *testing.T) {
	gdb, err := ConnectDatabase("sqlite", filepath.Join(t.TempDir(), "capsyncer.db"))
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(3)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		conn, err := sqlDB.Conn(ctx)
		require.NoError(t, err)
		defer conn.Close()

		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled, "connection %d", i)
	}
}
