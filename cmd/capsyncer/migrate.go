package main

import (
	"log/slog"

	"gorm.io/gorm"
)

// migrate applies the schema when enabled and reports whether it did. A
// failure is logged, never fatal: the server keeps starting against a
// possibly stale schema.
func migrate(logger *slog.Logger, gdb *gorm.DB, enabled bool, apply func(*gorm.DB) error) bool {
	if !enabled {
		logger.Info("database migration skipped")
		return false
	}

	if err := apply(gdb); err != nil {
		logger.Error("database migration failed", slog.String("error", err.Error()))
		return false
	}

	logger.Info("database migrated")
	return true
}
