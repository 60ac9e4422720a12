// Package store persists coworkers, projects, tasks and assignments through
// gorm. Every mutation is written immediately; there is no cross-entity
// transaction and updates are last-write-wins.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Omit(clause.Associations)
}

func list[T any](ctx context.Context, s *Store, target string) ([]T, error) {
	var rows []T
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", target, err)
	}
	return rows, nil
}

func get[T any](ctx context.Context, s *Store, target string, id uint) (T, error) {
	var row T
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, fmt.Errorf("%s %d: %w", target, id, ErrNotFound)
	}
	if err != nil {
		return row, fmt.Errorf("get %s %d: %w", target, id, err)
	}
	return row, nil
}

func create[T any](ctx context.Context, s *Store, target string, row *T) error {
	if err := s.conn(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert %s: %w", target, err)
	}
	return nil
}

// update writes only columns of row, keyed by its primary key. It never
// inserts: a row deleted since it was read yields ErrNotFound.
func update[T any](ctx context.Context, s *Store, target string, id uint, row *T, columns ...string) error {
	res := s.conn(ctx).Model(row).Select(columns).Updates(row)
	if res.Error != nil {
		return fmt.Errorf("update %s %d: %w", target, id, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports unchanged rows as unaffected.
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("update %s %d: %w", target, id, err)
	}
	if count == 0 {
		return fmt.Errorf("%s %d: %w", target, id, ErrNotFound)
	}
	return nil
}

func remove[T any](ctx context.Context, s *Store, target string, id uint) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", target, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", target, id, ErrNotFound)
	}
	return nil
}

// Ping checks that the database answers within timeout. Zero means ten
// seconds.
func (s *Store) Ping(ctx context.Context, timeout time.Duration) error {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}
