package store

import (
	"context"

	"github.com/capsyncer/capsyncer/internal/models"
)

func (s *Store) ListCoworkers(ctx context.Context) ([]models.Coworker, error) {
	return list[models.Coworker](ctx, s, "coworkers")
}

func (s *Store) GetCoworker(ctx context.Context, id uint) (models.Coworker, error) {
	return get[models.Coworker](ctx, s, "coworker", id)
}

// CreateCoworker inserts c and fills in its id. A nil IsActive becomes true.
func (s *Store) CreateCoworker(ctx context.Context, c *models.Coworker) error {
	c.ID = 0
	if c.IsActive == nil {
		active := true
		c.IsActive = &active
	}
	return create(ctx, s, "coworker", c)
}

// UpdateCoworker copies name and capacity onto the stored coworker. The
// active flag is left as it is.
func (s *Store) UpdateCoworker(ctx context.Context, id uint, input models.Coworker) (models.Coworker, error) {
	c, err := s.GetCoworker(ctx, id)
	if err != nil {
		return models.Coworker{}, err
	}

	c.Name = input.Name
	c.Capacity = input.Capacity

	if err := update(ctx, s, "coworker", id, &c, "Name", "Capacity"); err != nil {
		return models.Coworker{}, err
	}
	return c, nil
}

// DeleteCoworker removes the coworker; its assignments go with it.
func (s *Store) DeleteCoworker(ctx context.Context, id uint) error {
	return remove[models.Coworker](ctx, s, "coworker", id)
}
